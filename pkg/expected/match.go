package expected

import "github.com/pkg/errors"

// HasFailure reports whether o holds a failure matching E. It finds out by
// re-raising the failure and recovering it, which is slow. Callers that need
// the concrete error more than once should Propagate once and inspect the
// recovered value, or use Match.
func HasFailure[E error, T any](o Outcome[T]) (matched bool) {
	defer func() {
		if r := recover(); r != nil {
			var target E
			matched = errors.As(asError(r), &target)
		}
	}()
	o.Propagate()
	return false
}

// HasFailureIs is HasFailure for sentinel errors, matched with errors.Is.
func HasFailureIs[T any](o Outcome[T], target error) (matched bool) {
	defer func() {
		if r := recover(); r != nil {
			matched = errors.Is(asError(r), target)
		}
	}()
	o.Propagate()
	return false
}

// Match extracts the captured error as E without re-raising it.
func Match[E error, T any](o Outcome[T]) (E, bool) {
	var target E
	if o.failure == nil {
		return target, false
	}
	ok := errors.As(o.failure.err, &target)
	return target, ok
}
