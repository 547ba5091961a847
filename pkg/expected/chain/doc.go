// Package chain provides a fluent wrapper around expected.Outcome[T]
// for building synchronous chains using solo primitives.
//
// Key operations:
// - Start/FromValue/FromCode: begin a chain from an Outcome, a value or panicking code
// - Then: switch to a new Outcome[U] via a function
// - ThenTry: call a function (U, error) and convert error to failure
// - Map: transform the present value (T -> U)
// - Ensure: run side effects on success without changing the result
// - Finally: collapse the chain into a final value via handlers
package chain
