package core

import (
	"context"
	"sync"

	"github.com/apex/log"
	"github.com/ib-77/expected/pkg/expected"
)

type CancellationHandlers[In, Out any] struct {
	OnCancel            func(ctx context.Context, inputCh <-chan expected.Outcome[In], outCh chan<- expected.Outcome[Out])
	OnCancelUnprocessed func(ctx context.Context, unprocessed expected.Outcome[In], outCh chan<- expected.Outcome[Out])
	OnCancelProcessed   func(ctx context.Context, in expected.Outcome[In], processed expected.Outcome[Out], outCh chan<- expected.Outcome[Out])
}

// Locomotive drives step over inputCh until it is closed or ctx is done.
// step runs through expected.FromCode, so a panic becomes a failed Outcome
// on outCh instead of killing the worker goroutine.
func Locomotive[In, Out any](ctx context.Context, inputCh <-chan expected.Outcome[In], outCh chan<- expected.Outcome[Out],
	step func(ctx context.Context, input expected.Outcome[In]) expected.Outcome[Out],
	handlers CancellationHandlers[In, Out],
	onSuccess func(ctx context.Context, out expected.Outcome[Out]), wg *sync.WaitGroup) {
	defer wg.Done()

	logger := Logger(ctx)

	for {
		select {
		case <-ctx.Done():
			if handlers.OnCancel != nil {
				handlers.OnCancel(ctx, inputCh, outCh)
			}
			return
		case in, ok := <-inputCh:
			if !ok {
				return
			}

			if ctx.Err() != nil {
				if handlers.OnCancelUnprocessed != nil {
					handlers.OnCancelUnprocessed(ctx, in, outCh)
				}
				if handlers.OnCancel != nil {
					handlers.OnCancel(ctx, inputCh, outCh)
				}
				return
			}

			pr := expected.FromCode(func() expected.Outcome[Out] {
				return step(ctx, in)
			})
			if f := pr.Failure(); f != nil && in.Failure() != f {
				logger.WithFields(log.Fields{
					"failure_id": f.ID().String(),
				}).WithError(f).Debug("step failed")
			}

			select {
			case <-ctx.Done():
				if handlers.OnCancelProcessed != nil {
					handlers.OnCancelProcessed(ctx, in, pr, outCh)
				}
				if handlers.OnCancel != nil {
					handlers.OnCancel(ctx, inputCh, outCh)
				}
				return
			case outCh <- pr:
				if onSuccess != nil {
					onSuccess(ctx, pr)
				}
			}
		}
	}
}
