// Package puzzleerr defines the typed error taxonomy shared by every layer
// of the solver: board validation, PDB loading and PDB generation all
// surface one of these codes rather than an ad-hoc string.
package puzzleerr

import (
	"fmt"

	"github.com/pkg/errors"
)

// Code identifies the category of failure. Callers should compare against
// the sentinel *Error values below with errors.Is, not against Code
// directly, since a wrapped error still satisfies errors.Is.
type Code string

const (
	InvalidSize    Code = "invalid_size"
	WrongLength    Code = "wrong_length"
	NotPermutation Code = "not_permutation"
	Unsolvable     Code = "unsolvable"
	MissingPdb     Code = "missing_pdb"
	CorruptPdb     Code = "corrupt_pdb"
	IoError        Code = "io_error"
)

// Error is the concrete error type for every failure this module produces.
type Error struct {
	Code    Code
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error { return e.Cause }

// Is makes errors.Is(err, SentinelForCode) match any *Error with the same
// Code, regardless of Message or Cause.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// New builds an *Error carrying the given code and message.
func New(code Code, message string) *Error {
	return &Error{Code: code, Message: message}
}

// Newf builds an *Error with a formatted message.
func Newf(code Code, format string, args ...interface{}) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// Wrap builds an *Error that preserves an underlying cause for errors.Unwrap
// and %w formatting.
func Wrap(code Code, message string, cause error) *Error {
	return &Error{Code: code, Message: message, Cause: cause}
}

// WrapIO builds an IoError whose cause carries a stack trace from the point
// of failure, for disk operations (PDB reads/writes, config loads) where a
// bare error string is not enough to tell which call on the path failed.
func WrapIO(message string, cause error) *Error {
	return &Error{Code: IoError, Message: message, Cause: errors.Wrap(cause, message)}
}

// Sentinels for errors.Is comparisons, e.g. errors.Is(err, puzzleerr.ErrUnsolvable).
var (
	ErrInvalidSize    = &Error{Code: InvalidSize}
	ErrWrongLength    = &Error{Code: WrongLength}
	ErrNotPermutation = &Error{Code: NotPermutation}
	ErrUnsolvable     = &Error{Code: Unsolvable}
	ErrMissingPdb     = &Error{Code: MissingPdb}
	ErrCorruptPdb     = &Error{Code: CorruptPdb}
	ErrIoError        = &Error{Code: IoError}
)
