package bootstrap

import (
	"errors"
	"fmt"
)

// Kind classifies a bootstrap failure.
type Kind string

// Failure kinds. All of them are terminal for the run.
const (
	InterpreterNotFound      Kind = "InterpreterNotFound"
	DirectoryCreationFailure Kind = "DirectoryCreationFailure"
	InstallationFailure      Kind = "InstallationFailure"
)

// Error is the error type returned by Bootstrapper.Run.
type Error struct {
	Kind  Kind
	Msg   string
	Cause error
}

// Error returns "Kind: message: cause".
func (e *Error) Error() string {
	if e.Cause == nil {
		return fmt.Sprintf("%s: %s", e.Kind, e.Msg)
	}
	return fmt.Sprintf("%s: %s: %v", e.Kind, e.Msg, e.Cause)
}

// Unwrap returns the underlying cause for errors.Is/As.
func (e *Error) Unwrap() error {
	return e.Cause
}

func newError(kind Kind, msg string, cause error) error {
	return &Error{Kind: kind, Msg: msg, Cause: cause}
}

// KindOf returns the kind of err, or "" when err is not a bootstrap error.
func KindOf(err error) Kind {
	var be *Error
	if errors.As(err, &be) {
		return be.Kind
	}
	return ""
}
