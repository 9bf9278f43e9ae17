// file:kata/act/script_test.go
package act_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/rskv-p/kata/act"
	"github.com/rskv-p/kata/codec"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const script = `# sample
kth 3 5 3 6 2 4

count 226
count 1a
list 12
`

func collect(results *[]codec.Result) func(codec.Result) error {
	return func(r codec.Result) error {
		*results = append(*results, r)
		return nil
	}
}

func TestRunScript(t *testing.T) {
	var results []codec.Result
	stats, err := act.RunScript(context.Background(), strings.NewReader(script), act.ScriptOptions{}, collect(&results))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "1 of 4 lines failed")
	assert.Equal(t, act.ScriptStats{Lines: 4, Failed: 1}, stats)

	require.Len(t, results, 4)
	assert.Equal(t, 2, results[0].Line)
	assert.Equal(t, 4, results[0].Value)
	assert.Equal(t, 4, results[1].Line)
	assert.Equal(t, 3, results[1].Value)
	assert.Equal(t, 5, results[2].Line)
	assert.True(t, results[2].Failed())
	assert.Equal(t, []string{"AB", "L"}, results[3].Value)
}

func TestRunScript_StopOnError(t *testing.T) {
	var results []codec.Result
	stats, err := act.RunScript(context.Background(), strings.NewReader(script),
		act.ScriptOptions{StopOnError: true}, collect(&results))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 5")
	assert.Equal(t, 3, stats.Lines)
	assert.Len(t, results, 3)
}

func TestRunScript_AllGood(t *testing.T) {
	var results []codec.Result
	stats, err := act.RunScript(context.Background(), strings.NewReader("count 12\nkth 1 9\n"),
		act.ScriptOptions{}, collect(&results))

	require.NoError(t, err)
	assert.Equal(t, 2, stats.Lines)
	assert.Equal(t, 0, stats.Failed)
}

func TestRunScript_ParseError(t *testing.T) {
	var results []codec.Result
	_, err := act.RunScript(context.Background(), strings.NewReader(`count "12`), act.ScriptOptions{}, collect(&results))

	require.Error(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "parse", results[0].Op)
	assert.True(t, results[0].Failed())
}

func TestRunScript_EmitError(t *testing.T) {
	boom := errors.New("closed pipe")
	_, err := act.RunScript(context.Background(), strings.NewReader("count 12\n"), act.ScriptOptions{},
		func(codec.Result) error { return boom })
	assert.ErrorIs(t, err, boom)
}

func TestRunScript_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := act.RunScript(ctx, strings.NewReader("count 12\n"), act.ScriptOptions{}, func(codec.Result) error { return nil })
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRunScript_LongLine(t *testing.T) {
	digits := strings.Repeat("10", 100_000)
	var results []codec.Result
	stats, err := act.RunScript(context.Background(), strings.NewReader("count "+digits+"\n"), act.ScriptOptions{}, collect(&results))

	require.NoError(t, err)
	assert.Equal(t, 1, stats.Lines)
	require.Len(t, results, 1)
	assert.Equal(t, 1, results[0].Value)
}

func TestRunScript_LineTooLong(t *testing.T) {
	line := "count " + strings.Repeat("1", act.MaxScriptLine)
	_, err := act.RunScript(context.Background(), strings.NewReader(line), act.ScriptOptions{}, collect(new([]codec.Result)))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "read script")
}
