package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"billtracker/internal/core"
)

const (
	msgReadError     = "Error reading input, please try again..."
	msgInvalidAmount = "Invalid amount, please try again."
)

// DefaultMaxReadRetries is how many consecutive read failures a line read
// survives before the input is treated as exhausted.
const DefaultMaxReadRetries = 3

// Input reads trimmed lines from a text stream. An empty line means the
// user cancelled the current prompt.
type Input struct {
	r          *bufio.Reader
	out        io.Writer
	maxRetries int
	pending    strings.Builder
	exhausted  bool
}

func NewInput(r io.Reader, out io.Writer, maxRetries int) *Input {
	if maxRetries < 1 {
		maxRetries = DefaultMaxReadRetries
	}
	return &Input{
		r:          bufio.NewReader(r),
		out:        out,
		maxRetries: maxRetries,
	}
}

// ReadLine returns the next line with surrounding whitespace removed.
// ok is false when the line is blank or the input is exhausted; use
// Exhausted to tell the two apart.
func (in *Input) ReadLine() (line string, ok bool) {
	if in.exhausted {
		return "", false
	}

	failures := 0
	for {
		chunk, err := in.r.ReadString('\n')
		in.pending.WriteString(chunk)

		if err != nil && !errors.Is(err, io.EOF) {
			failures++
			fmt.Fprintln(in.out, msgReadError)
			if failures >= in.maxRetries {
				in.pending.Reset()
				in.exhausted = true
				return "", false
			}
			continue
		}

		raw := in.pending.String()
		in.pending.Reset()
		if err != nil && raw == "" {
			in.exhausted = true
			return "", false
		}

		line = strings.TrimSpace(raw)
		return line, line != ""
	}
}

// ReadAmount reads lines until one parses as an amount. A blank line or
// the end of input cancels.
func (in *Input) ReadAmount() (float64, bool) {
	for {
		line, ok := in.ReadLine()
		if !ok {
			return 0, false
		}

		amount, err := core.ParseAmount(line)
		if err == nil {
			return amount, true
		}
		fmt.Fprint(in.out, msgInvalidAmount+"\n\n")
	}
}

// Exhausted reports whether the end of the input has been reached.
func (in *Input) Exhausted() bool {
	return in.exhausted
}
