package chain

import (
	"context"
	"errors"
	"strconv"
	"testing"

	"github.com/ib-77/expected/pkg/expected"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChain_SuccessPath(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	var ensured int
	c := Map(
		ThenTry(FromValue(ctx, "21"), func(ctx context.Context, s string) (int, error) {
			return strconv.Atoi(s)
		}),
		func(ctx context.Context, v int) int { return v * 2 },
	).Ensure(func(ctx context.Context, v int) { ensured = v })

	require.True(t, c.Result().IsPresent())
	assert.Equal(t, 42, c.Result().Get())
	assert.Equal(t, 42, ensured)
}

func TestChain_ShortCircuitOnFailure(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	called := false
	c := Then(Start(ctx, expected.Fail[int](errors.New("boom"))), func(ctx context.Context, v int) expected.Outcome[string] {
		called = true
		return expected.Of("unreachable")
	})

	out := c.Result()
	if out.IsPresent() || out.Err() == nil || out.Err().Error() != "boom" {
		t.Fatalf("expected failure 'boom', got: %v", out)
	}
	if called {
		t.Fatalf("onSuccess should not be called when initial result is failure")
	}
}

func TestChain_FromCode(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	c := FromCode(ctx, func(ctx context.Context) int32 {
		v, err := strconv.ParseInt("23482374812", 10, 32)
		if err != nil {
			panic(err)
		}
		return int32(v)
	})

	assert.True(t, expected.HasFailureIs(c.Result(), strconv.ErrRange))
}

func TestChain_Finally(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	onSuccess := func(ctx context.Context, v int) string { return "val:" + strconv.Itoa(v) }
	onFailure := func(ctx context.Context, err error) string { return "err" }
	onCancel := func(ctx context.Context, err error) string { return "cancel" }

	assert.Equal(t, "val:3", Finally(FromValue(ctx, 3), onSuccess, onFailure, onCancel))
	assert.Equal(t, "err", Finally(Start(ctx, expected.Fail[int](errors.New("x"))), onSuccess, onFailure, onCancel))
	assert.Equal(t, "cancel", Finally(Start(ctx, expected.Fail[int](context.Canceled)), onSuccess, onFailure, onCancel))
}
