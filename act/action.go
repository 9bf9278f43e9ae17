// file:kata/act/action.go
package act

import (
	"strings"

	"github.com/google/shlex"
	"github.com/rskv-p/kata/pkg/x_err"
)

//---------------------
// Action
//---------------------

// Action is one named operation with its raw string inputs, as typed on
// the command line or read from a batch script.
type Action struct {
	Name   string
	Inputs []string
}

// NewAction returns an action for name with the given inputs.
func NewAction(name string, inputs ...string) *Action {
	return &Action{Name: name, Inputs: inputs}
}

// ParseLine splits a script line with shell quoting rules. Blank lines and
// lines starting with '#' yield a nil action and no error.
func ParseLine(line string) (*Action, error) {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" || strings.HasPrefix(trimmed, "#") {
		return nil, nil
	}

	parts, err := shlex.Split(trimmed)
	if err != nil {
		return nil, x_err.InvalidArgument("split %q: %v", trimmed, err)
	}
	if len(parts) == 0 {
		return nil, nil
	}
	return NewAction(parts[0], parts[1:]...), nil
}
