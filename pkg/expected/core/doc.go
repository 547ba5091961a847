// Package core contains pipeline plumbing for moving expected.Outcome values
// between goroutines: channel helpers, worker configuration via context, and
// the locomotive that drives a step. Failures captured on a worker travel as
// *expected.Failure handles and are re-raised wherever the consumer calls Get.
package core
