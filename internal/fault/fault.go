// Package fault carries the pipeline error taxonomy. Every fallible
// pipeline operation tags its errors with a Kind so callers can decide
// between aborting an invocation and skipping a single input.
package fault

import (
	"errors"
	"fmt"
)

// Kind classifies a pipeline failure.
type Kind string

const (
	// FetchError covers upstream HTTP failures: transport errors and
	// non-2xx responses. The invocation aborts; the next tick retries.
	FetchError Kind = "FETCH_ERROR"

	// ParseError covers malformed payloads. At payload level the
	// invocation aborts; at line level the caller skips the line.
	ParseError Kind = "PARSE_ERROR"

	// ReadError covers object-store get failures on a child input.
	// The input is skipped and the batch continues.
	ReadError Kind = "READ_ERROR"

	// StorageError covers object-store put failures. The invocation
	// aborts and nothing is published.
	StorageError Kind = "STORAGE_ERROR"

	// ListError covers object-store list failures. Same policy as
	// StorageError.
	ListError Kind = "LIST_ERROR"
)

// Error is a kinded pipeline error. Op names the failing operation in
// "package.Func" or "verb key" form for logs.
type Error struct {
	Kind Kind
	Op   string
	Err  error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: %s", e.Kind, e.Op)
	}
	return fmt.Sprintf("%s: %s: %v", e.Kind, e.Op, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// New wraps err with a kind and operation name. err may be nil when the
// condition itself is the failure (e.g. a non-2xx status).
func New(kind Kind, op string, err error) *Error {
	return &Error{Kind: kind, Op: op, Err: err}
}

// Newf is New with a formatted condition and no wrapped error.
func Newf(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Op: fmt.Sprintf(format, args...)}
}

// KindOf reports the kind of err, or "" if err carries no kind.
func KindOf(err error) Kind {
	var fe *Error
	if errors.As(err, &fe) {
		return fe.Kind
	}
	return ""
}

// IsKind reports whether err is tagged with kind.
func IsKind(err error, kind Kind) bool {
	return KindOf(err) == kind
}
