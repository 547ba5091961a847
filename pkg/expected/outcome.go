package expected

import (
	"fmt"
	"reflect"
)

// Outcome holds either a value of type T or the *Failure that prevented its
// computation. The zero Outcome is present and holds the zero T.
type Outcome[T any] struct {
	value   T
	failure *Failure // non-nil iff failed
}

// Cloner is implemented by values that need a deep copy in Clone.
type Cloner[T any] interface {
	Clone() T
}

// Releaser is implemented by values that own resources released by
// Outcome.Release.
type Releaser interface {
	Release()
}

var (
	_ WithError[int] = Outcome[int]{}
	_ Raising        = Outcome[int]{}
)

var errorType = reflect.TypeFor[error]()

func checkValueType[T any]() {
	if t := reflect.TypeFor[T](); t.Implements(errorType) || reflect.PointerTo(t).Implements(errorType) {
		violation(ErrValueIsFailure, "Outcome[%s]", t)
	}
}

func Of[T any](v T) Outcome[T] {
	checkValueType[T]()
	return Outcome[T]{value: v}
}

// Fail captures an interface-typed error. Interfaces keep the dynamic type,
// so no slicing check is needed here; see FromError for concrete types.
func Fail[T any](err error) Outcome[T] {
	checkValueType[T]()
	if IsNil(err) {
		violation(ErrNilFailure, "Fail[%s]", reflect.TypeFor[T]())
	}
	return Outcome[T]{failure: capture(err)}
}

// FromError captures e, which must have E as its exact dynamic type. Passing
// a concrete error through an interface type parameter panics with
// ErrAmbiguousFailureType.
func FromError[T any, E error](e E) Outcome[T] {
	checkValueType[T]()
	if IsNil(e) {
		violation(ErrNilFailure, "FromError[%s]", reflect.TypeFor[T]())
	}
	if dynamic, static := reflect.TypeOf(e), reflect.TypeFor[E](); dynamic != static {
		violation(ErrAmbiguousFailureType, "%s captured as %s", dynamic, static)
	}
	return Outcome[T]{failure: capture(e)}
}

// FromFailure transplants a failure captured elsewhere.
func FromFailure[T any](f *Failure) Outcome[T] {
	checkValueType[T]()
	if f == nil {
		violation(ErrNilFailure, "FromFailure[%s]", reflect.TypeFor[T]())
	}
	return Outcome[T]{failure: f}
}

// FromCurrentFailure captures the value returned by recover(). Use it from
// a deferred function:
//
//	defer func() {
//		if r := recover(); r != nil {
//			out = expected.FromCurrentFailure[int](r)
//		}
//	}()
func FromCurrentFailure[T any](recovered any) Outcome[T] {
	checkValueType[T]()
	if recovered == nil {
		violation(ErrNoFailureInFlight, "FromCurrentFailure[%s]", reflect.TypeFor[T]())
	}
	return Outcome[T]{failure: capture(recovered)}
}

// FromCode runs f and returns its Outcome. A panic raised by f is captured
// into a failed Outcome. Capturing a panic is slow; code on a hot path
// should return Outcome values directly.
func FromCode[T any](f func() Outcome[T]) (out Outcome[T]) {
	defer func() {
		if r := recover(); r != nil {
			out = FromCurrentFailure[T](r)
		}
	}()
	return f()
}

// FromFunc wraps an expression that either returns T or panics.
func FromFunc[T any](f func() T) Outcome[T] {
	return FromCode(func() Outcome[T] {
		return Of(f())
	})
}

// FromPair converts a (T, error) return into an Outcome.
func FromPair[T any](v T, err error) Outcome[T] {
	if err != nil {
		return Fail[T](err)
	}
	return Of(v)
}

func (o Outcome[T]) IsPresent() bool {
	return o.failure == nil
}

// Get returns the value, or re-raises the captured failure.
func (o Outcome[T]) Get() T {
	o.Propagate()
	return o.value
}

// Value returns the value and a nil error, or the zero T and the *Failure.
func (o Outcome[T]) Value() (T, error) {
	if o.failure != nil {
		var zero T
		return zero, o.failure
	}
	return o.value, nil
}

// Err returns the *Failure as an error, or nil when present.
func (o Outcome[T]) Err() error {
	if o.failure == nil {
		return nil
	}
	return o.failure
}

func (o Outcome[T]) Failure() *Failure {
	return o.failure
}

// Propagate re-raises the captured failure. It is a no-op when present.
func (o Outcome[T]) Propagate() {
	if o.failure != nil {
		o.failure.Rethrow()
	}
}

// Clone copies o. Values implementing Cloner[T] are deep-copied; the
// failure handle is immutable and shared. A Releaser that is not a Cloner
// cannot be owned twice, so cloning it panics with ErrSharedResource.
func (o Outcome[T]) Clone() Outcome[T] {
	if o.failure != nil || isZero(o.value) {
		return o
	}
	if c, ok := any(o.value).(Cloner[T]); ok {
		return Outcome[T]{value: c.Clone()}
	}
	if _, ok := any(o.value).(Releaser); ok {
		violation(ErrSharedResource, "Clone of %T", o.value)
	}
	return o
}

// Take moves the payload out of o and leaves o as the zero Outcome.
func (o *Outcome[T]) Take() Outcome[T] {
	moved := *o
	*o = Outcome[T]{}
	return moved
}

func (o *Outcome[T]) Swap(other *Outcome[T]) {
	*o, *other = *other, *o
}

// Release releases the live payload and leaves o as the zero Outcome.
// A present value implementing Releaser is released once; zero values own
// nothing and are skipped, so releasing a moved-from Outcome is a no-op.
func (o *Outcome[T]) Release() {
	if o.failure == nil && !isZero(o.value) {
		if r, ok := any(o.value).(Releaser); ok {
			r.Release()
		}
	}
	*o = Outcome[T]{}
}

func (o Outcome[T]) String() string {
	if o.failure != nil {
		return "failure: " + o.failure.Error()
	}
	return fmt.Sprint(o.value)
}
