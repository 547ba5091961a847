// Package solo contains single-value, synchronous primitives that operate
// on expected.Outcome[T]. Every callback runs through expected.FromCode, so
// a panicking step yields a failed Outcome instead of unwinding the caller.
//
// Highlights:
// - Succeed/Fail: construct Outcome[T]
// - Validate/AndValidate/ValidateAll: apply validation producing failure on invalid input
// - Switch: move from Outcome[In] to Outcome[Out]
// - Map: transform present values
// - Try: call a function (Out, error) and convert error to failure
// - Tee/DoubleTee: side-effect helpers
// - Recover: explicitly turn a failure back into a value
// - Finally: reduce to a concrete value via success/error/cancel handlers
//
// Failed inputs keep their original *expected.Failure handle.
package solo
