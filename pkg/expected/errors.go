package expected

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	// ErrAmbiguousFailureType is raised by FromError when the dynamic type of
	// the error differs from its static type parameter.
	ErrAmbiguousFailureType = errors.New("expected: ambiguous failure type")
	// ErrNoFailureInFlight is raised by FromCurrentFailure when nothing was
	// recovered.
	ErrNoFailureInFlight = errors.New("expected: no failure in flight")
	// ErrNilFailure is raised when a nil error or nil handle is captured.
	ErrNilFailure = errors.New("expected: nil failure")
	// ErrValueIsFailure is raised when T or *T is an error type.
	ErrValueIsFailure = errors.New("expected: value type is a failure type")
	// ErrSharedResource is raised by Clone when the value is a Releaser that
	// cannot be cloned, since both copies would release it.
	ErrSharedResource = errors.New("expected: releaser value is not a cloner")
)

// PanicError wraps a raised value that is not an error.
type PanicError struct {
	Value any
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("expected: panic: %v", e.Value)
}

func violation(sentinel error, format string, args ...any) {
	panic(errors.Wrapf(sentinel, format, args...))
}
