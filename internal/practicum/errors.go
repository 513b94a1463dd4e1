package practicum

import (
	"fmt"

	"github.com/Fornello2023/homework-bot/pkg/errors"
)

// Kind tags an API error with the failure category the caller
// dispatches on.
type Kind int

const (
	KindUnknown Kind = iota

	// KindTransport: the API was unreachable (DNS, refused connection,
	// broken body read).
	KindTransport

	// KindResponseFormat: the API replied, but not with what we expect
	// (non-200 status, body that is not a proper statuses payload).
	KindResponseFormat

	// KindRecordFormat: a homework record lacks a required field.
	KindRecordFormat

	// KindUnknownStatus: a homework status outside the verdict table.
	KindUnknownStatus
)

type Error struct {
	Kind  Kind
	cause error
	msg   string
}

func (e *Error) Error() string {
	if e.cause == nil {
		return e.msg
	}
	return fmt.Sprintf("%s: %s", e.msg, e.cause)
}

func (e *Error) Unwrap() error {
	return e.cause
}

// KindOf extracts the Kind of err, or KindUnknown if err does not
// originate from this package.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

func newError(kind Kind, cause error, format string, args ...any) *Error {
	return &Error{
		Kind:  kind,
		cause: cause,
		msg:   fmt.Sprintf(format, args...),
	}
}
