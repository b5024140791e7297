package errs

import (
	cr "github.com/cockroachdb/errors"
)

// Kind tells the caller whether a failure is worth retrying and how to present it.
type Kind string

const (
	KindValidation         Kind = "VALIDATION"
	KindConflict           Kind = "CONFLICT"
	KindStateConflict      Kind = "STATE_CONFLICT"
	KindUnavailable        Kind = "UNAVAILABLE"
	KindInvariantViolation Kind = "INVARIANT_VIOLATION"
	KindNotFound           Kind = "NOT_FOUND"
	KindForbidden          Kind = "FORBIDDEN"
	KindInternal           Kind = "INTERNAL"
)

// Error is a classified sentinel. Wrap or Mark it to add context; Classify still finds it.
type Error struct {
	kind Kind
	code string
	msg  string
}

func (e *Error) Error() string { return e.msg }
func (e *Error) Kind() Kind    { return e.kind }
func (e *Error) Code() string  { return e.code }

var registry []*Error

// Define registers a sentinel. Call only from package-level var blocks.
func Define(kind Kind, code, msg string) *Error {
	e := &Error{kind: kind, code: code, msg: msg}
	registry = append(registry, e)
	return e
}

// Classify returns the sentinel carried by err, either in its cause chain or as a mark.
func Classify(err error) (*Error, bool) {
	if err == nil {
		return nil, false
	}
	var de *Error
	if cr.As(err, &de) {
		return de, true
	}
	for _, d := range registry {
		if cr.Is(err, d) {
			return d, true
		}
	}
	return nil, false
}

func KindOf(err error) Kind {
	if d, ok := Classify(err); ok {
		return d.kind
	}
	return KindInternal
}

func CodeOf(err error) string {
	if d, ok := Classify(err); ok {
		return d.code
	}
	return "INTERNAL"
}
