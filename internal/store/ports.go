package store

import (
	"context"

	"billtracker/internal/core"
)

// Ports for bill storage backends.
type (
	BillWriter interface {
		// Add stores the bill under its name, replacing any bill already there.
		Add(ctx context.Context, b core.Bill) error
	}

	BillLister interface {
		// List returns a snapshot of every stored bill.
		List(ctx context.Context) ([]core.Bill, error)
	}

	BillEditor interface {
		// Update sets the amount of the named bill. found is false when no
		// bill has that name, in which case nothing changes.
		Update(ctx context.Context, name string, amount float64) (b core.Bill, found bool, err error)
		// Remove deletes the named bill and returns it. found is false when
		// no bill has that name.
		Remove(ctx context.Context, name string) (b core.Bill, found bool, err error)
	}

	// BillStore is the full set of operations the shell needs.
	BillStore interface {
		BillWriter
		BillLister
		BillEditor
	}
)
