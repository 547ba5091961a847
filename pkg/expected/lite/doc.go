// Package lite provides lightweight channel-lifted helpers that run solo
// primitives on worker goroutines and deliver expected.Outcome values to the
// consumer. A failure raised on a worker is captured there and re-raised
// only when the consumer calls Get or Propagate.
//
// Common usage:
// - Go: run one computation on its own goroutine
// - Run/Turnout: execute a step over an input channel with a fixed number of lines
// - Validate/Try/Switch/Map: lift solo operations into steps
// - Finally: map Outcome[In] to Out on completion
//
// Cancellation routing follows core.IsProcessRemainingEnabled.
package lite
