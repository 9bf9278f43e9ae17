// file:kata/act/action_test.go
package act_test

import (
	"testing"

	"github.com/rskv-p/kata/act"
	"github.com/rskv-p/kata/pkg/x_err"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLine(t *testing.T) {
	a, err := act.ParseLine(`  kth 3 5 3 6 2 4  `)
	require.NoError(t, err)
	require.NotNil(t, a)
	assert.Equal(t, "kth", a.Name)
	assert.Equal(t, []string{"3", "5", "3", "6", "2", "4"}, a.Inputs)

	a, err = act.ParseLine(`count ""`)
	require.NoError(t, err)
	assert.Equal(t, []string{""}, a.Inputs)

	a, err = act.ParseLine(`count '226'  # trailing comment`)
	require.NoError(t, err)
	assert.Equal(t, []string{"226"}, a.Inputs)
}

func TestParseLine_Skipped(t *testing.T) {
	for _, line := range []string{"", "   ", "# comment", "\t# indented"} {
		a, err := act.ParseLine(line)
		assert.NoError(t, err, line)
		assert.Nil(t, a, line)
	}
}

func TestParseLine_BadQuoting(t *testing.T) {
	_, err := act.ParseLine(`count "226`)
	assert.ErrorIs(t, err, x_err.ErrInvalidArgument)
}

func TestAction_Parsers(t *testing.T) {
	a := act.NewAction("kth", "3", "5", "x")

	require.NoError(t, a.ValidateInputsNumber(3))
	assert.ErrorIs(t, a.ValidateInputsNumber(4), x_err.ErrInvalidArgument)
	assert.True(t, a.NumberOfInputsIs(3))

	assert.Equal(t, "3", a.InputString(0))
	assert.Equal(t, "fallback", a.InputString(9, "fallback"))
	assert.Equal(t, "", a.InputString(9))

	n, err := a.InputInt(1)
	require.NoError(t, err)
	assert.Equal(t, 5, n)

	_, err = a.InputInt(2)
	assert.ErrorIs(t, err, x_err.ErrInvalidArgument)
	_, err = a.InputInt(7)
	assert.ErrorIs(t, err, x_err.ErrInvalidArgument)

	ints, err := a.InputInts(0)
	assert.ErrorIs(t, err, x_err.ErrInvalidArgument)
	assert.Nil(t, ints)

	ints, err = act.NewAction("sorted", "4", "-1").InputInts(0)
	require.NoError(t, err)
	assert.Equal(t, []int{4, -1}, ints)

	ints, err = act.NewAction("sorted").InputInts(1)
	require.NoError(t, err)
	assert.Empty(t, ints)
}
