package chain

import (
	"context"

	"github.com/ib-77/expected/pkg/expected"
	"github.com/ib-77/expected/pkg/expected/solo"
)

// Chain wraps an expected.Outcome with context to enable fluent chaining
type Chain[T any] struct {
	ctx     context.Context
	outcome expected.Outcome[T]
}

// Start creates a new chain from an expected.Outcome
func Start[T any](ctx context.Context, outcome expected.Outcome[T]) *Chain[T] {
	return &Chain[T]{
		ctx:     ctx,
		outcome: outcome,
	}
}

// FromValue creates a new chain from a present value
func FromValue[T any](ctx context.Context, value T) *Chain[T] {
	return Start(ctx, expected.Of(value))
}

// FromCode creates a new chain from code that may panic
func FromCode[T any](ctx context.Context, f func(context.Context) T) *Chain[T] {
	return Start(ctx, expected.FromFunc(func() T {
		return f(ctx)
	}))
}

// Result returns the underlying expected.Outcome
func (c *Chain[T]) Result() expected.Outcome[T] {
	return c.outcome
}

// Then chains a function that returns expected.Outcome[U]
func Then[T, U any](c *Chain[T], onSuccess func(context.Context, T) expected.Outcome[U]) *Chain[U] {
	return Start(c.ctx, solo.Switch(c.ctx, c.outcome, onSuccess))
}

// ThenTry chains a function that returns (U, error)
func ThenTry[T, U any](c *Chain[T], tryOnSuccess func(context.Context, T) (U, error)) *Chain[U] {
	return Start(c.ctx, solo.Try(c.ctx, c.outcome, tryOnSuccess))
}

// Map chains a pure transformation function
func Map[T, U any](c *Chain[T], onSuccess func(context.Context, T) U) *Chain[U] {
	return Start(c.ctx, solo.Map(c.ctx, c.outcome, onSuccess))
}

// Ensure performs a side effect without changing the result
func (c *Chain[T]) Ensure(onSuccess func(context.Context, T)) *Chain[T] {
	return Start(c.ctx, solo.Tee(c.ctx, c.outcome,
		func(ctx context.Context, outcome expected.Outcome[T]) {
			onSuccess(ctx, outcome.Get())
		}))
}

// Finally collapses the chain into a final result using solo.Finally
func Finally[T, U any](c *Chain[T], onSuccess func(context.Context, T) U, onFailure func(context.Context, error) U, onCancel func(context.Context, error) U) U {
	return solo.Finally(c.ctx, c.outcome, onSuccess, onFailure, onCancel)
}
