// file: kata/recover/recover.go
package recover

import (
	"context"
	"fmt"
	"runtime/debug"

	"github.com/rs/zerolog"
	"github.com/rskv-p/kata/pkg/x_log"
)

const (
	tagService  = "service"
	tagFunction = "function"
	tagContext  = "context"
)

var custom *zerolog.Logger

// SetLogger allows injecting a custom logger instance (e.g. for testing).
func SetLogger(l zerolog.Logger) {
	custom = &l
}

func logger() zerolog.Logger {
	if custom != nil {
		return *custom
	}
	return x_log.New("recover")
}

// ----------------------------------------------------
// Panic recovery functions
// ----------------------------------------------------

// RecoverWithContext captures and logs a panic with metadata and optional
// data. It must be called directly by defer.
func RecoverWithContext(service, function string, data any) {
	if r := recover(); r != nil {
		RecoverExplicit(service, function, r, data)
	}
}

// RecoverExplicit logs a known recovered panic with metadata and context.
func RecoverExplicit(service, function string, recovered any, data any) {
	if recovered == nil {
		return
	}

	l := logger()
	ev := l.Error().
		Str(tagService, service).
		Str(tagFunction, function)
	if data != nil {
		ev = ev.Str(tagContext, fmt.Sprintf("%+v", data))
	}
	ev.Str("stack", string(debug.Stack())).Msgf("panic: %v", recovered)
}

// ----------------------------------------------------
// Universal wrapper
// ----------------------------------------------------

// RecoverableFunc is a context-aware function that may panic.
type RecoverableFunc func(ctx context.Context) error

// WrapRecover wraps a context-aware function with panic protection; a panic
// is logged and returned as an error.
func WrapRecover(service, function string, f RecoverableFunc) RecoverableFunc {
	return func(ctx context.Context) (err error) {
		defer func() {
			if r := recover(); r != nil {
				RecoverExplicit(service, function, r, nil)
				err = fmt.Errorf("panic recovered in %s.%s: %v", service, function, r)
			}
		}()
		return f(ctx)
	}
}
