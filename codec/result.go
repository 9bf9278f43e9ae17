// file: kata/codec/result.go
package codec

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

// ----------------------------------------------------
// Result envelope
// ----------------------------------------------------

// Result is the outcome of one CLI operation.
type Result struct {
	Op    string `json:"op"`
	Line  int    `json:"line,omitempty"`
	Input any    `json:"input"`
	Value any    `json:"value,omitempty"`
	Error string `json:"error,omitempty"`
}

// NewResult builds a successful result.
func NewResult(op string, input, value any) Result {
	return Result{Op: op, Input: input, Value: value}
}

// ErrResult builds a failed result; Value stays empty.
func ErrResult(op string, input any, err error) Result {
	return Result{Op: op, Input: input, Error: err.Error()}
}

// Failed reports whether the result carries an error.
func (r Result) Failed() bool { return r.Error != "" }

// Text renders the result for humans. Slices print one item per line
// except int slices, which print space separated.
func (r Result) Text() string {
	var body string
	if r.Failed() {
		body = "error: " + r.Error
	} else {
		body = formatValue(r.Value)
	}
	if r.Line > 0 {
		return fmt.Sprintf("[%d] %s: %s", r.Line, r.Op, body)
	}
	return body
}

func formatValue(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimRight(x, "\n")
	case []string:
		return strings.Join(x, "\n")
	case []int:
		parts := make([]string, len(x))
		for i, n := range x {
			parts[i] = fmt.Sprint(n)
		}
		return strings.Join(parts, " ")
	default:
		return fmt.Sprint(x)
	}
}

// ----------------------------------------------------
// Writer
// ----------------------------------------------------

// Writer prints results as text or as JSON lines.
type Writer struct {
	out    io.Writer
	asJSON bool
}

// NewWriter returns a Writer on out.
func NewWriter(out io.Writer, asJSON bool) *Writer {
	return &Writer{out: out, asJSON: asJSON}
}

// Write prints one result followed by a newline.
func (w *Writer) Write(r Result) error {
	var line []byte
	if w.asJSON {
		data, err := json.Marshal(r)
		if err != nil {
			return fmt.Errorf("encode result: %w", err)
		}
		line = data
	} else {
		line = []byte(r.Text())
	}
	line = append(line, '\n')
	if _, err := w.out.Write(line); err != nil {
		return fmt.Errorf("write result: %w", err)
	}
	return nil
}
