package errors

import (
	"errors"
	"fmt"
)

// ErrorKind tags an Exception so callers can branch on the failure class
// without matching message text.
type ErrorKind string

const (
	KindConnection     ErrorKind = "connection"
	KindSchema         ErrorKind = "schema"
	KindDuplicateKey   ErrorKind = "duplicate_key"
	KindConstraint     ErrorKind = "constraint"
	KindIO             ErrorKind = "io"
	KindInvalidPayload ErrorKind = "invalid_payload"
)

type Exception struct {
	Kind    ErrorKind
	Message string
	Err     error
}

func (e *Exception) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Exception) Unwrap() error {
	return e.Err
}

// Is reports whether target is an Exception of the same kind, so wrapped
// copies still match their sentinel.
func (e *Exception) Is(target error) bool {
	t, ok := target.(*Exception)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

// Wrap returns a copy of e carrying err as its cause.
func (e *Exception) Wrap(err error) *Exception {
	return &Exception{
		Kind:    e.Kind,
		Message: e.Message,
		Err:     err,
	}
}

// KindOf returns the kind of the first Exception in err's chain. Errors
// that never passed through this package are treated as I/O failures.
func KindOf(err error) ErrorKind {
	if err == nil {
		return ""
	}

	var appErr *Exception
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindIO
}
