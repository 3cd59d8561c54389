package core

import (
	"errors"
	"fmt"
)

// Kind classifies everything that can go wrong on a run. Each kind maps
// to exactly one process exit code.
type Kind int

const (
	KindArgument Kind = iota
	KindConnectivity
	KindResponseFormat
	KindNoResults
	KindBookingRejected
)

// Error is the one error type the pipeline produces. Every failure path
// below main returns one of these; main maps it to a message and an exit
// code.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

func Errorf(kind Kind, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

func Wrap(kind Kind, err error, message string) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}

// IsKind reports whether err carries the given kind.
func IsKind(err error, kind Kind) bool {
	var cerr *Error
	return errors.As(err, &cerr) && cerr.Kind == kind
}

// ExitCode maps an error to the process exit code: 0 for nil, 2 for
// argument problems, 1 for everything that fails after the arguments
// were accepted. Errors outside the taxonomy can only come from flag
// parsing, so they count as argument problems too.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var cerr *Error
	if errors.As(err, &cerr) {
		if cerr.Kind == KindArgument {
			return 2
		}
		return 1
	}
	return 2
}
