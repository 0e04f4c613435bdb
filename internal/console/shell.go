package console

import (
	"context"
	"fmt"
	"io"

	"billtracker/internal/core"
	applog "billtracker/internal/log"
	"billtracker/internal/store"
)

const (
	msgEnterName     = "Please enter the bill name:"
	msgEnterAmount   = "Please enter the bill amount:"
	msgAdded         = "Bill added successfully!"
	msgRemoved       = "Bill removed successfully!"
	msgUpdated       = "Bill updated successfully!"
	msgNotFound      = "Bill not found!"
	msgNoBills       = "No bills found!"
	msgInvalidOption = "Invalid option, please try again..."
	msgStoreFailure  = "Something went wrong, please try again."
)

// Shell is the menu loop. It owns no state besides the store it was given.
type Shell struct {
	bills  store.BillStore
	in     *Input
	out    io.Writer
	logger *applog.Logger
}

func NewShell(bills store.BillStore, in *Input, out io.Writer, logger *applog.Logger) *Shell {
	if logger == nil {
		logger = applog.Discard()
	}
	return &Shell{
		bills:  bills,
		in:     in,
		out:    out,
		logger: logger.WithComponent(applog.ComponentShell),
	}
}

// Run shows the menu and dispatches selections until the user picks Exit
// or the input runs out. Both end the session normally and return nil.
func (s *Shell) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		ShowMenu(s.out)
		line, _ := s.in.ReadLine()
		if s.in.Exhausted() {
			s.logger.InfoContext(ctx, "Input exhausted, leaving shell")
			return nil
		}

		sel, ok := ParseSelection(line)
		if !ok {
			fmt.Fprint(s.out, msgInvalidOption+"\n\n")
			continue
		}
		s.logger.DebugContext(ctx, "Menu selection", "selection", sel)

		switch sel {
		case AddBill:
			s.addBill(ctx)
		case ViewBills:
			s.viewBills(ctx)
		case RemoveBills:
			s.removeBill(ctx)
		case EditBill:
			s.editBill(ctx)
		case Exit:
			return nil
		}
	}
}

func (s *Shell) addBill(ctx context.Context) {
	s.println(msgEnterName)
	name, ok := s.in.ReadLine()
	if !ok {
		return
	}

	s.println(msgEnterAmount)
	amount, ok := s.in.ReadAmount()
	if !ok {
		return
	}

	if err := s.bills.Add(ctx, core.Bill{Name: name, Amount: amount}); err != nil {
		s.fail(ctx, applog.OpAdd, err)
		return
	}
	s.println(msgAdded)
}

// viewBills prints every bill and reports whether there was any.
func (s *Shell) viewBills(ctx context.Context) bool {
	bills, err := s.bills.List(ctx)
	if err != nil {
		s.fail(ctx, applog.OpList, err)
		return false
	}

	if len(bills) == 0 {
		s.println(msgNoBills)
		return false
	}
	for _, b := range bills {
		s.println(b.String())
	}
	return true
}

func (s *Shell) removeBill(ctx context.Context) {
	if !s.viewBills(ctx) {
		return
	}

	s.println(msgEnterName)
	name, ok := s.in.ReadLine()
	if !ok {
		return
	}

	_, found, err := s.bills.Remove(ctx, name)
	if err != nil {
		s.fail(ctx, applog.OpRemove, err)
		return
	}
	if found {
		s.println(msgRemoved)
	} else {
		s.println(msgNotFound)
	}
}

func (s *Shell) editBill(ctx context.Context) {
	if !s.viewBills(ctx) {
		return
	}

	s.println(msgEnterName)
	name, ok := s.in.ReadLine()
	if !ok {
		return
	}

	s.println(msgEnterAmount)
	amount, ok := s.in.ReadAmount()
	if !ok {
		return
	}

	_, found, err := s.bills.Update(ctx, name, amount)
	if err != nil {
		s.fail(ctx, applog.OpUpdate, err)
		return
	}
	if found {
		s.println(msgUpdated)
	} else {
		s.println(msgNotFound)
	}
}

func (s *Shell) fail(ctx context.Context, op string, err error) {
	s.logger.ErrorContext(ctx, "Bill operation failed",
		applog.FieldOperation, op,
		applog.FieldError, err)
	s.println(msgStoreFailure)
}

func (s *Shell) println(msg string) {
	fmt.Fprintln(s.out, msg)
}
