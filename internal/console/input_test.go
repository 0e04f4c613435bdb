package console

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// flakyReader fails the first `failures` reads before serving data.
type flakyReader struct {
	failures int
	data     io.Reader
}

func (f *flakyReader) Read(p []byte) (int, error) {
	if f.failures > 0 {
		f.failures--
		return 0, errors.New("transient read failure")
	}
	return f.data.Read(p)
}

type brokenReader struct{}

func (brokenReader) Read([]byte) (int, error) { return 0, errors.New("device gone") }

func newTestInput(script string) (*Input, *bytes.Buffer) {
	var out bytes.Buffer
	return NewInput(strings.NewReader(script), &out, DefaultMaxReadRetries), &out
}

func TestReadLine(t *testing.T) {
	in, _ := newTestInput("  Rent  \n\n\t\nWater\r\nlast")

	line, ok := in.ReadLine()
	assert.True(t, ok)
	assert.Equal(t, "Rent", line)

	_, ok = in.ReadLine()
	assert.False(t, ok, "blank line cancels")
	_, ok = in.ReadLine()
	assert.False(t, ok, "whitespace-only line cancels")
	assert.False(t, in.Exhausted())

	line, ok = in.ReadLine()
	assert.True(t, ok)
	assert.Equal(t, "Water", line)

	line, ok = in.ReadLine()
	assert.True(t, ok, "final line without newline is still a line")
	assert.Equal(t, "last", line)
	assert.False(t, in.Exhausted())

	_, ok = in.ReadLine()
	assert.False(t, ok)
	assert.True(t, in.Exhausted())
}

func TestReadLine_RetriesTransientFailures(t *testing.T) {
	var out bytes.Buffer
	in := NewInput(&flakyReader{failures: 2, data: strings.NewReader("Rent\n")}, &out, 3)

	line, ok := in.ReadLine()
	assert.True(t, ok)
	assert.Equal(t, "Rent", line)
	assert.Equal(t, 2, strings.Count(out.String(), msgReadError))
	assert.False(t, in.Exhausted())
}

func TestReadLine_GivesUpAfterMaxRetries(t *testing.T) {
	var out bytes.Buffer
	in := NewInput(brokenReader{}, &out, 2)

	_, ok := in.ReadLine()
	assert.False(t, ok)
	assert.True(t, in.Exhausted())
	assert.Equal(t, 2, strings.Count(out.String(), msgReadError))

	_, ok = in.ReadLine()
	assert.False(t, ok)
	assert.Equal(t, 2, strings.Count(out.String(), msgReadError), "no further reads once exhausted")
}

func TestReadAmount(t *testing.T) {
	tests := []struct {
		name         string
		script       string
		want         float64
		wantOK       bool
		wantRejected int
	}{
		{name: "decimal", script: "42.5\n", want: 42.5, wantOK: true},
		{name: "blank cancels", script: "\n10\n", wantOK: false},
		{name: "end of input cancels", script: "", wantOK: false},
		{name: "invalid then valid", script: "abc\n10\n", want: 10, wantOK: true, wantRejected: 1},
		{name: "invalid then blank", script: "abc\nxyz\n\n", wantOK: false, wantRejected: 2},
		{name: "negative", script: "-12\n", want: -12, wantOK: true},
		{name: "zero", script: "0\n", want: 0, wantOK: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in, out := newTestInput(tt.script)

			got, ok := in.ReadAmount()
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.want, got)
			}
			assert.Equal(t, tt.wantRejected, strings.Count(out.String(), msgInvalidAmount))
		})
	}
}

func TestNewInput_DefaultsRetries(t *testing.T) {
	in := NewInput(strings.NewReader(""), io.Discard, 0)
	assert.Equal(t, DefaultMaxReadRetries, in.maxRetries)
}
