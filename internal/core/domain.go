package core

import (
	"errors"
	"strings"
)

type (
	// Bill is a named amount. The name is the key a bill is stored under.
	Bill struct {
		Name   string
		Amount float64
	}
)

var (
	ErrEmptyName     = errors.New("empty bill name")
	ErrInvalidAmount = errors.New("invalid amount")
)

// Validate reports whether the bill can be stored. Amounts are not checked:
// zero and negative values are legitimate.
func (b Bill) Validate() error {
	if strings.TrimSpace(b.Name) == "" {
		return ErrEmptyName
	}
	return nil
}

// WithAmount returns a copy of the bill carrying the new amount.
func (b Bill) WithAmount(amount float64) Bill {
	b.Amount = amount
	return b
}

// String renders the bill as a listing line, e.g. "Rent - 1200".
func (b Bill) String() string {
	return b.Name + " - " + FormatAmount(b.Amount)
}
