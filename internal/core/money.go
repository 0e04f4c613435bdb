// Package core provides the bill domain type and amount parsing.
//
// This file contains the conversions between user-entered text and
// amounts, and back again for display.
package core

import (
	"math"
	"strconv"
	"strings"
)

// ParseAmount converts user input into an amount.
//
// Surrounding whitespace is ignored. Any finite decimal or exponent
// notation accepted by strconv is valid, including zero and negative
// values. NaN and infinities are rejected.
//
// Examples:
//
//	ParseAmount("42.5")  -> 42.5, nil
//	ParseAmount("-3")    -> -3, nil
//	ParseAmount("abc")   -> 0, ErrInvalidAmount
func ParseAmount(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, ErrInvalidAmount
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, ErrInvalidAmount
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, ErrInvalidAmount
	}
	return v, nil
}

// FormatAmount renders an amount with the fewest digits that parse back to
// the same value, without exponent notation: 1200 -> "1200", 42.5 -> "42.5".
func FormatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
