package lite

import (
	"context"
	"sync"

	"github.com/ib-77/expected/pkg/expected"
	"github.com/ib-77/expected/pkg/expected/core"
	"github.com/ib-77/expected/pkg/expected/solo"
)

// Step turns one Outcome into the next.
type Step[In, Out any] func(ctx context.Context, input expected.Outcome[In]) expected.Outcome[Out]

type FinallyHandlers[In, Out any] struct {
	OnSuccess func(ctx context.Context, in In) Out
	OnError   func(ctx context.Context, err error) Out
	OnCancel  func(ctx context.Context, err error) Out
}

// Go runs f on a new goroutine. The returned channel yields exactly one
// Outcome and is then closed.
func Go[T any](ctx context.Context, f func(ctx context.Context) T) <-chan expected.Outcome[T] {
	out := make(chan expected.Outcome[T], 1)

	go func() {
		defer close(out)
		out <- expected.FromFunc(func() T {
			return f(ctx)
		})
	}()

	return out
}

func Run[T any](ctx context.Context, inputCh <-chan expected.Outcome[T], step Step[T, T], lines int) <-chan expected.Outcome[T] {
	return Turnout(ctx, inputCh, step, lines)
}

// Turnout runs step on lines workers. Lines below one fall back to the
// worker count in ctx, or one. Output order is not preserved with more than
// one line.
func Turnout[In, Out any](ctx context.Context, inputCh <-chan expected.Outcome[In], step Step[In, Out],
	lines int) <-chan expected.Outcome[Out] {

	if lines < 1 {
		lines = core.GetWorkerMaxCount(ctx, 1)
	}

	out := make(chan expected.Outcome[Out])
	wg := &sync.WaitGroup{}
	handlers := core.CancellationHandlersFor[In, Out]()

	for range lines {
		wg.Add(1)
		go core.Locomotive[In, Out](ctx, inputCh, out, step, handlers, nil, wg)
	}

	go func() {
		wg.Wait()
		close(out)
	}()

	return out
}

func Validate[T any](validate func(ctx context.Context, in T) (valid bool, errMsg string)) Step[T, T] {
	return func(ctx context.Context, input expected.Outcome[T]) expected.Outcome[T] {
		return solo.AndValidate(ctx, input, validate)
	}
}

func Switch[In, Out any](switchOnSuccess func(ctx context.Context, r In) expected.Outcome[Out]) Step[In, Out] {
	return func(ctx context.Context, input expected.Outcome[In]) expected.Outcome[Out] {
		return solo.Switch(ctx, input, switchOnSuccess)
	}
}

func Map[In, Out any](mapOnSuccess func(ctx context.Context, r In) Out) Step[In, Out] {
	return func(ctx context.Context, input expected.Outcome[In]) expected.Outcome[Out] {
		return solo.Map(ctx, input, mapOnSuccess)
	}
}

func Try[In, Out any](onTryExecute func(ctx context.Context, r In) (Out, error)) Step[In, Out] {
	return func(ctx context.Context, input expected.Outcome[In]) expected.Outcome[Out] {
		return solo.Try(ctx, input, onTryExecute)
	}
}

// Finally reduces every Outcome from input until it is closed. After
// cancellation it keeps delivering only when remaining inputs are processed;
// the consumer must then drain the returned channel (see core.FromChanMany).
func Finally[In, Out any](ctx context.Context, input <-chan expected.Outcome[In],
	handlers FinallyHandlers[In, Out]) <-chan Out {

	out := make(chan Out)

	go func() {
		defer close(out)

		for in := range input {
			res := solo.Finally(ctx, in, handlers.OnSuccess, handlers.OnError, handlers.OnCancel)

			select {
			case out <- res:
			case <-ctx.Done():
				if !core.IsProcessRemainingEnabled(ctx, false) {
					return
				}
				out <- res
			}
		}
	}()

	return out
}
