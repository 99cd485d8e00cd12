package finder

import (
	"errors"
	"fmt"
)

// Kind classifies a failed run.
type Kind int

const (
	// KindValidation is a rejected file name.
	KindValidation Kind = iota
	// KindEnvironment is a missing or unusable environment variable.
	KindEnvironment
	// KindUnexpected is any other failure.
	KindUnexpected
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindEnvironment:
		return "environment"
	default:
		return "unexpected"
	}
}

// Error is the error returned by Finder.Find. Every Error ends the run with StatusError.
type Error struct {
	Kind Kind
	Err  error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s error: %v", e.Kind, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// ValidationError wraps err as KindValidation.
func ValidationError(err error) *Error {
	return &Error{Kind: KindValidation, Err: err}
}

// EnvironmentError wraps err as KindEnvironment.
func EnvironmentError(err error) *Error {
	return &Error{Kind: KindEnvironment, Err: err}
}

// UnexpectedError wraps err as KindUnexpected.
func UnexpectedError(err error) *Error {
	return &Error{Kind: KindUnexpected, Err: err}
}

// PanicError carries a value recovered from a panic.
type PanicError struct {
	Value any
}

func (e *PanicError) Error() string {
	return fmt.Sprint(e.Value)
}

// Category names the type of the underlying failure, as shown to the user.
func Category(err error) string {
	var pe *PanicError
	if errors.As(err, &pe) {
		if inner, ok := pe.Value.(error); ok {
			return fmt.Sprintf("%T", inner)
		}
		return fmt.Sprintf("%T", pe.Value)
	}
	var fe *Error
	if errors.As(err, &fe) && fe.Err != nil {
		return fmt.Sprintf("%T", fe.Err)
	}
	return fmt.Sprintf("%T", err)
}

// KindOf returns the Kind of err. Errors that are not *Error are KindUnexpected.
func KindOf(err error) Kind {
	var fe *Error
	if errors.As(err, &fe) {
		return fe.Kind
	}
	return KindUnexpected
}
