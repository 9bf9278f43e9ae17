// file:kata/act/script.go
package act

import (
	"bufio"
	"context"
	"fmt"
	"io"

	"github.com/rskv-p/kata/codec"
	"github.com/rskv-p/kata/pkg/x_log"
	"github.com/rskv-p/kata/recover"
)

//---------------------
// Batch Scripts
//---------------------

// MaxScriptLine is the longest script line RunScript accepts, in bytes.
const MaxScriptLine = 4 << 20

// ScriptOptions controls RunScript.
type ScriptOptions struct {
	Options
	StopOnError bool
}

// ScriptStats summarises a script run.
type ScriptStats struct {
	Lines  int // operations executed
	Failed int
}

// RunScript executes one operation per line of r and hands every result to
// emit. Failing lines are reported and skipped unless StopOnError is set.
// A panic inside an operation is recovered and reported as that line's error.
//
// The returned error is non-nil when emit fails, the reader fails, or at
// least one line failed.
func RunScript(ctx context.Context, r io.Reader, opts ScriptOptions, emit func(codec.Result) error) (ScriptStats, error) {
	log := x_log.From(ctx)
	var stats ScriptStats

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), MaxScriptLine)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		if err := ctx.Err(); err != nil {
			return stats, err
		}

		a, err := ParseLine(sc.Text())
		if err == nil && a == nil {
			continue
		}
		stats.Lines++

		var res codec.Result
		if err != nil {
			res = codec.ErrResult("parse", sc.Text(), err)
		} else {
			res, err = runGuarded(ctx, a, opts.Options)
		}
		res.Line = lineNo

		if err != nil {
			stats.Failed++
			log.Warn().Int("line", lineNo).Err(err).Msg("batch line failed")
		}
		if emitErr := emit(res); emitErr != nil {
			return stats, emitErr
		}
		if err != nil && opts.StopOnError {
			return stats, fmt.Errorf("line %d: %w", lineNo, err)
		}
	}
	if err := sc.Err(); err != nil {
		return stats, fmt.Errorf("read script: %w", err)
	}

	log.Info().Int("lines", stats.Lines).Int("failed", stats.Failed).Msg("batch finished")
	if stats.Failed > 0 {
		return stats, fmt.Errorf("%d of %d lines failed", stats.Failed, stats.Lines)
	}
	return stats, nil
}

// runGuarded runs a, turning a panic into an error result.
func runGuarded(ctx context.Context, a *Action, opts Options) (codec.Result, error) {
	var res codec.Result
	err := recover.WrapRecover("batch", a.Name, func(ctx context.Context) error {
		var runErr error
		res, runErr = Run(ctx, a, opts)
		return runErr
	})(ctx)
	if err != nil && !res.Failed() {
		res = codec.ErrResult(a.Name, a.Inputs, err)
	}
	return res, err
}
