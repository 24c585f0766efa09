// Package errors provides the coded errors huegrid reports to users.
//
// Every failure that reaches a person, whether as a CLI message, a toast
// in the terminal view or a JSON body from the HTTP viewer, carries a [Code].
// Callers branch on the code and show [UserMessage]; the full Error() string
// with code and cause chain goes to the logs.
//
//	err := errors.New(errors.ErrCodeOutOfRange, "rows must be between %d and %d", 1, 99)
//	if errors.Is(err, errors.ErrCodeOutOfRange) {
//	    // reject the setting
//	}
//
//	err = errors.Wrap(errors.ErrCodeClipboardWrite, cause, "clipboard write failed")
//
// [Is] and [GetCode] look at the outermost *Error in a chain, so wrapping a
// coded error re-classifies it.
package errors

import (
	"errors"
	"fmt"
)

// Code is a machine-readable error class.
type Code string

const (
	// Settings coming from flags, files or query parameters.
	ErrCodeInvalidInput  Code = "INVALID_INPUT"
	ErrCodeInvalidFormat Code = "INVALID_FORMAT" // unknown color encoding or output
	ErrCodeInvalidConfig Code = "INVALID_CONFIG" // settings file does not parse or validate
	ErrCodeOutOfRange    Code = "OUT_OF_RANGE"   // rows or columns outside the panel bounds
	ErrCodeInvalidPath   Code = "INVALID_PATH"   // export destination

	// Copying a color. These end up in error toasts.
	ErrCodeClipboardDenied      Code = "CLIPBOARD_DENIED"
	ErrCodeClipboardUnavailable Code = "CLIPBOARD_UNAVAILABLE"
	ErrCodeClipboardWrite       Code = "CLIPBOARD_WRITE"

	ErrCodeNotFound     Code = "NOT_FOUND" // no tile at a position
	ErrCodeFileNotFound Code = "FILE_NOT_FOUND"

	ErrCodeInternal    Code = "INTERNAL_ERROR"
	ErrCodeUnsupported Code = "UNSUPPORTED" // surface without a copier
)

// Input reports whether the code blames what the user supplied rather than
// huegrid or its environment. The CLI exits with status 2 and the HTTP
// viewer answers 400 for these.
func (c Code) Input() bool {
	switch c {
	case ErrCodeInvalidInput, ErrCodeInvalidFormat, ErrCodeInvalidConfig,
		ErrCodeOutOfRange, ErrCodeInvalidPath, ErrCodeFileNotFound:
		return true
	}
	return false
}

// Error is a coded error with an optional cause.
type Error struct {
	Code    Code
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause == nil {
		return fmt.Sprintf("%s: %s", e.Code, e.Message)
	}
	return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
}

func (e *Error) Unwrap() error { return e.Cause }

// New returns an Error with a formatted message.
func New(code Code, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// Wrap returns an Error with a formatted message and cause.
func Wrap(code Code, cause error, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...), Cause: cause}
}

// Is reports whether the outermost *Error in err's chain has code.
func Is(err error, code Code) bool {
	return GetCode(err) == code && code != ""
}

// GetCode returns the code of the outermost *Error in err's chain, or "".
func GetCode(err error) Code {
	if e, ok := outermost(err); ok {
		return e.Code
	}
	return ""
}

// UserMessage returns the text shown to people: the message and cause of
// the outermost *Error without its code, or err.Error() for other errors.
func UserMessage(err error) string {
	e, ok := outermost(err)
	switch {
	case !ok:
		return err.Error()
	case e.Cause != nil:
		return e.Message + ": " + e.Cause.Error()
	default:
		return e.Message
	}
}

func outermost(err error) (*Error, bool) {
	var e *Error
	ok := errors.As(err, &e)
	return e, ok
}
