package core

import (
	"errors"
	"testing"
)

func TestParseAmount(t *testing.T) {
	cases := []struct {
		in  string
		out float64
		ok  bool
	}{
		{"42.5", 42.5, true},
		{"1200", 1200, true},
		{" 10 ", 10, true},
		{"0", 0, true},
		{"-3.25", -3.25, true},
		{"1e3", 1000, true},
		{"abc", 0, false},
		{"1,23", 0, false},
		{"1.2.3", 0, false},
		{"NaN", 0, false},
		{"inf", 0, false},
		{"", 0, false},
	}
	for _, tc := range cases {
		got, err := ParseAmount(tc.in)
		if tc.ok {
			if err != nil || got != tc.out {
				t.Fatalf("%q expected %v, got %v (err=%v)", tc.in, tc.out, got, err)
			}
		} else if !errors.Is(err, ErrInvalidAmount) {
			t.Fatalf("%q expected ErrInvalidAmount, got %v", tc.in, err)
		}
	}
}

func TestFormatAmount(t *testing.T) {
	cases := map[float64]string{
		1200:       "1200",
		1300.5:     "1300.5",
		42.25:      "42.25",
		0:          "0",
		-7:         "-7",
		0.1:        "0.1",
		1e21:       "1000000000000000000000",
		0.00000125: "0.00000125",
	}
	for in, want := range cases {
		if got := FormatAmount(in); got != want {
			t.Errorf("FormatAmount(%v) = %q, want %q", in, got, want)
		}
	}
}
