package core

import (
	"context"

	"github.com/ib-77/expected/pkg/expected"
)

// CancelRemaining drains inputCh after cancellation. When remaining inputs
// are processed, present ones become failures carrying ctx.Err() and failed
// ones keep their own failure.
func CancelRemaining[In, Out any](ctx context.Context,
	inputCh <-chan expected.Outcome[In], outCh chan<- expected.Outcome[Out]) {

	if !IsProcessRemainingEnabled(ctx, false) {
		return
	}

	for in := range inputCh {
		outCh <- cancelled[In, Out](ctx, in)
	}
}

func CancelUnprocessed[In, Out any](ctx context.Context, in expected.Outcome[In],
	outCh chan<- expected.Outcome[Out]) {

	if IsProcessRemainingEnabled(ctx, false) {
		outCh <- cancelled[In, Out](ctx, in)
	}
}

// CancelProcessed still delivers an Outcome computed before cancellation.
func CancelProcessed[In, Out any](ctx context.Context, _ expected.Outcome[In],
	processed expected.Outcome[Out], outCh chan<- expected.Outcome[Out]) {

	if IsProcessRemainingEnabled(ctx, false) {
		outCh <- processed
	}
}

func CancellationHandlersFor[In, Out any]() CancellationHandlers[In, Out] {
	return CancellationHandlers[In, Out]{
		OnCancel:            CancelRemaining[In, Out],
		OnCancelUnprocessed: CancelUnprocessed[In, Out],
		OnCancelProcessed:   CancelProcessed[In, Out],
	}
}

func cancelled[In, Out any](ctx context.Context, in expected.Outcome[In]) expected.Outcome[Out] {
	if f := in.Failure(); f != nil {
		return expected.FromFailure[Out](f)
	}
	return expected.Fail[Out](context.Cause(ctx))
}
