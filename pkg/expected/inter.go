package expected

type ValueProvider[T any] interface {
	// Get returns the value or re-raises the failure
	Get() T
}

// WithError is the checked view of an Outcome.
type WithError[T any] interface {
	ValueProvider[T]
	// Value returns the value or the failure as an error
	Value() (T, error)
	// Err returns the failure as an error, nil when present
	Err() error
	// IsPresent returns true if a value is held
	IsPresent() bool
}

// Raising is the propagate-by-panic view of an Outcome.
type Raising interface {
	// Propagate re-raises the failure, if any
	Propagate()
}
