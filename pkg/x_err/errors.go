// Package x_err holds the error kinds shared by the kata algorithms.
package x_err

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidArgument marks a call that broke the operation's contract
	// (rank out of range, non-digit input, malformed CLI value).
	ErrInvalidArgument = errors.New("invalid_argument")
)

// InvalidArgument returns an error wrapping ErrInvalidArgument with a formatted reason.
func InvalidArgument(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidArgument, fmt.Sprintf(format, args...))
}

// IsInvalidArgument reports whether err carries the InvalidArgument kind.
func IsInvalidArgument(err error) bool {
	return errors.Is(err, ErrInvalidArgument)
}
