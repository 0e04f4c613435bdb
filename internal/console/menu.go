package console

import (
	"fmt"
	"io"
)

// Selection is a main menu choice
type Selection int

const (
	AddBill Selection = iota + 1
	ViewBills
	RemoveBills
	EditBill
	Exit
)

const menuText = `
Welcome to Bill Tracker!

1. Add Bill
2. View Bills
3. Remove Bills
4. Edit Bill
5. Exit

Please select an option:

`

// ParseSelection maps "1".."5" to a menu choice.
func ParseSelection(s string) (Selection, bool) {
	switch s {
	case "1":
		return AddBill, true
	case "2":
		return ViewBills, true
	case "3":
		return RemoveBills, true
	case "4":
		return EditBill, true
	case "5":
		return Exit, true
	default:
		return 0, false
	}
}

func (s Selection) String() string {
	switch s {
	case AddBill:
		return "add_bill"
	case ViewBills:
		return "view_bills"
	case RemoveBills:
		return "remove_bill"
	case EditBill:
		return "edit_bill"
	case Exit:
		return "exit"
	default:
		return fmt.Sprintf("selection(%d)", int(s))
	}
}

// ShowMenu writes the main menu.
func ShowMenu(w io.Writer) {
	fmt.Fprint(w, menuText)
}
