package util

import (
	"errors"
	"fmt"
	"strings"
)

// -----------------------------------------------------------------------------

type extendedError struct {
	message string
	err     error
}

// -----------------------------------------------------------------------------

// NewExtendedError creates a new error that wraps err and prefixes it with the given message.
// errors.Is and errors.As still see the wrapped error.
func NewExtendedError(err error, message string) error {
	return &extendedError{
		message: message,
		err:     err,
	}
}

// NewExtendedErrorf is like NewExtendedError but builds the message with fmt.Sprintf.
func NewExtendedErrorf(err error, format string, args ...interface{}) error {
	return NewExtendedError(err, fmt.Sprintf(format, args...))
}

// Error renders the message chain flattened as "message [err=inner] [err=...]".
func (w *extendedError) Error() string {
	sb := strings.Builder{}
	_, _ = sb.WriteString(w.message)
	for err := w.err; err != nil; {
		var childW *extendedError

		_, _ = sb.WriteString(" [err=")
		if errors.As(err, &childW) {
			_, _ = sb.WriteString(childW.message)
			err = childW.err
		} else {
			_, _ = sb.WriteString(err.Error())
			err = errors.Unwrap(err)
		}
		_, _ = sb.WriteString("]")
	}
	return sb.String()
}

// Unwrap returns the underlying error.
func (w *extendedError) Unwrap() error {
	return w.err
}
