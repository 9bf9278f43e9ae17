// file:kata/act/run.go
package act

import (
	"context"
	"sort"
	"strings"

	"github.com/rskv-p/kata/codec"
	"github.com/rskv-p/kata/pkg/x_decode"
	"github.com/rskv-p/kata/pkg/x_err"
	"github.com/rskv-p/kata/pkg/x_log"
	"github.com/rskv-p/kata/pkg/x_tree"
)

// Operation names.
const (
	OpKth        = "kth"
	OpKthLargest = "kth_largest"
	OpSorted     = "sorted"
	OpDump       = "dump"
	OpCount      = "count"
	OpList       = "list"
)

// Options tune operations that have knobs.
type Options struct {
	// DecodeListLimit caps the number of decodings OpList returns; 0 means no cap.
	DecodeListLimit int
}

type handler func(a *Action, opts Options) (input, value any, err error)

var handlers = map[string]handler{
	OpKth:        runKth(x_tree.KthSmallest[int]),
	OpKthLargest: runKth(x_tree.KthLargest[int]),
	OpSorted:     runSorted,
	OpDump:       runDump,
	OpCount:      runCount,
	OpList:       runList,
}

// Names returns the supported operation names, sorted.
func Names() []string {
	names := make([]string, 0, len(handlers))
	for n := range handlers {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Run executes a and returns its result. On failure the result carries the
// error message and the error is returned too.
func Run(ctx context.Context, a *Action, opts Options) (codec.Result, error) {
	log := x_log.From(ctx)

	h, ok := handlers[a.Name]
	if !ok {
		err := x_err.InvalidArgument("unknown operation %q (want one of %s)", a.Name, strings.Join(Names(), ", "))
		log.Warn().Str("op", a.Name).Err(err).Msg("operation failed")
		return codec.ErrResult(a.Name, a.Inputs, err), err
	}

	input, value, err := h(a, opts)
	if input == nil {
		input = a.Inputs
	}
	if err != nil {
		log.Warn().Str("op", a.Name).Interface("input", input).Err(err).Msg("operation failed")
		return codec.ErrResult(a.Name, input, err), err
	}

	log.Debug().Str("op", a.Name).Interface("input", input).Interface("value", value).Msg("operation done")
	return codec.NewResult(a.Name, input, value), nil
}

//---------------------
// Tree Operations
//---------------------

type kthInput struct {
	K      int   `json:"k"`
	Values []int `json:"values"`
}

// runKth expects: K v1 v2 ...
func runKth(sel func(*x_tree.Node[int], int) (int, error)) handler {
	return func(a *Action, _ Options) (any, any, error) {
		if err := a.ValidateInputsNumber(1); err != nil {
			return nil, nil, err
		}
		k, err := a.InputInt(0)
		if err != nil {
			return nil, nil, err
		}
		values, err := a.InputInts(1)
		if err != nil {
			return nil, nil, err
		}

		in := kthInput{K: k, Values: values}
		v, err := sel(x_tree.FromValues(values...), k)
		if err != nil {
			return in, nil, err
		}
		return in, v, nil
	}
}

func runSorted(a *Action, _ Options) (any, any, error) {
	values, err := a.InputInts(0)
	if err != nil {
		return nil, nil, err
	}
	out := []int{}
	for v := range x_tree.All(x_tree.FromValues(values...)) {
		out = append(out, v)
	}
	return values, out, nil
}

func runDump(a *Action, _ Options) (any, any, error) {
	values, err := a.InputInts(0)
	if err != nil {
		return nil, nil, err
	}
	var b strings.Builder
	x_tree.Dump(&b, x_tree.FromValues(values...))
	return values, b.String(), nil
}

//---------------------
// Decode Operations
//---------------------

// decodeInput returns the single digit-string argument. An explicit empty
// argument ("") is a valid input with zero decodings.
func decodeInput(a *Action) (string, error) {
	if !a.NumberOfInputsIs(1) {
		return "", x_err.InvalidArgument("%s requires exactly 1 arg, got %d", a.Name, len(a.Inputs))
	}
	return a.InputString(0), nil
}

func runCount(a *Action, _ Options) (any, any, error) {
	s, err := decodeInput(a)
	if err != nil {
		return nil, nil, err
	}
	n, err := x_decode.NumDecodings(s)
	if err != nil {
		return s, nil, err
	}
	return s, n, nil
}

func runList(a *Action, opts Options) (any, any, error) {
	s, err := decodeInput(a)
	if err != nil {
		return nil, nil, err
	}
	list, err := x_decode.Decodings(s, opts.DecodeListLimit)
	if err != nil {
		return s, nil, err
	}
	return s, list, nil
}
