// file:kata/act/input.go
package act

import (
	"strconv"

	"github.com/rskv-p/kata/pkg/x_err"
)

//---------------------
// Input Validation
//---------------------

// ValidateInputsNumber checks if the number of inputs is sufficient
func (action *Action) ValidateInputsNumber(length int) error {
	if len(action.Inputs) < length {
		return x_err.InvalidArgument("%s requires at least %d args, got %d", action.Name, length, len(action.Inputs))
	}
	return nil
}

// NumberOfInputsIs checks if the number of inputs equals the specified number
func (action *Action) NumberOfInputsIs(num int) bool {
	return len(action.Inputs) == num
}

//---------------------
// Common Parsers
//---------------------

// InputString returns input i, or the first default when it is missing.
func (action *Action) InputString(i int, defaults ...string) string {
	if len(action.Inputs) <= i {
		if len(defaults) > 0 {
			return defaults[0]
		}
		return ""
	}
	return action.Inputs[i]
}

// InputInt parses input i as an integer.
func (action *Action) InputInt(i int) (int, error) {
	if len(action.Inputs) <= i {
		return 0, x_err.InvalidArgument("%s: missing argument %d", action.Name, i)
	}
	n, err := strconv.Atoi(action.Inputs[i])
	if err != nil {
		return 0, x_err.InvalidArgument("%s: argument %d %q is not an integer", action.Name, i, action.Inputs[i])
	}
	return n, nil
}

// InputInts parses every input from index from onwards as integers.
func (action *Action) InputInts(from int) ([]int, error) {
	if from > len(action.Inputs) {
		return nil, nil
	}
	out := make([]int, 0, len(action.Inputs)-from)
	for i := from; i < len(action.Inputs); i++ {
		n, err := action.InputInt(i)
		if err != nil {
			return nil, err
		}
		out = append(out, n)
	}
	return out, nil
}
