// Package expected provides Outcome[T], a value that holds either a
// successfully computed T or the captured failure that prevented it.
//
// The same Outcome supports two styles of error handling:
// - checked: IsPresent, Value, Err, Match
// - raising: Get and Propagate re-panic the captured failure
//
// Failures are captured into an immutable *Failure handle which can be
// stored, sent to another goroutine and re-raised later with the original
// panic value.
//
// Highlights:
// - Of/Fail/FromError/FromFailure: construct Outcome[T]
// - FromCurrentFailure: capture the value returned by recover()
// - FromCode/FromFunc/FromPair: bridge panicking or (T, error) code
// - HasFailure/HasFailureIs: re-raise and match (slow, not for hot paths)
package expected
