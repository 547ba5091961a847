package core

import (
	"context"

	"github.com/ib-77/expected/pkg/expected"
)

type ToChanHandlers[T any] struct {
	OnStartFail func(ctx context.Context, input []T)
	OnSuccess   func(ctx context.Context, input T)
	OnBreak     func(ctx context.Context, rest []T)
}

func ToChanFromArgs[T any](ctx context.Context, values ...T) <-chan T {
	in := make(chan T)

	go func() {
		defer close(in)

		for _, v := range values {
			if ctx.Err() != nil {
				return
			}

			select {
			case in <- v:
			case <-ctx.Done():
				return
			}
		}
	}()

	return in
}

func ToChanFromArgsOutcomes[T any](ctx context.Context, handlers ToChanHandlers[T], values ...T) <-chan expected.Outcome[T] {
	in := make(chan expected.Outcome[T])

	go func() {
		defer close(in)

		if ctx.Err() != nil {
			if handlers.OnStartFail != nil {
				handlers.OnStartFail(ctx, values)
			}
			return
		}

		for i, v := range values {
			select {
			case in <- expected.Of(v):
				if handlers.OnSuccess != nil {
					handlers.OnSuccess(ctx, v)
				}
			case <-ctx.Done():
				if handlers.OnBreak != nil {
					handlers.OnBreak(ctx, values[i:])
				}
				return
			}
		}
	}()

	return in
}

func ToChan[T any](ctx context.Context, value T) <-chan T {
	return ToChanFromArgs(ctx, value)
}

func ToChanMany[T any](ctx context.Context, values []T) <-chan T {
	return ToChanFromArgs(ctx, values...)
}

func ToChanManyOutcomesWithHandlers[T any](ctx context.Context, handlers ToChanHandlers[T], values []T) <-chan expected.Outcome[T] {
	return ToChanFromArgsOutcomes(ctx, handlers, values...)
}

func ToChanManyOutcomes[T any](ctx context.Context, values []T) <-chan expected.Outcome[T] {
	return ToChanFromArgsOutcomes(ctx, ToChanHandlers[T]{}, values...)
}

// FromChanFirstOrDefault returns the first value received from out, or
// defaultV when out is closed or ctx is done first.
func FromChanFirstOrDefault[T any](ctx context.Context, out <-chan T, defaultV T) T {
	select {
	case v, ok := <-out:
		if !ok {
			return defaultV
		}
		return v
	case <-ctx.Done():
		return defaultV
	}
}

// FromChanMany collects values until out is closed or ctx is done. When
// remaining inputs are processed after cancellation, producers keep sending,
// so FromChanMany keeps draining out until it is closed.
func FromChanMany[T any](ctx context.Context, out <-chan T) []T {
	res := make([]T, 0)

	for {
		select {
		case v, ok := <-out:
			if !ok {
				return res
			}
			res = append(res, v)
		case <-ctx.Done():
			if !IsProcessRemainingEnabled(ctx, false) {
				return res
			}
			for v := range out {
				res = append(res, v)
			}
			return res
		}
	}
}
