package core

import (
	"context"
	"testing"

	"github.com/apex/log"
	"github.com/apex/log/handlers/discard"
	"github.com/stretchr/testify/assert"
)

func TestOptions_Defaults(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	assert.Equal(t, 4, GetWorkerMaxCount(ctx, 4))
	assert.False(t, IsProcessRemainingEnabled(ctx, false))
	assert.Same(t, log.Log, Logger(ctx))
}

func TestOptions_FromContext(t *testing.T) {
	t.Parallel()

	logger := &log.Logger{Handler: discard.Default, Level: log.InfoLevel}
	ctx := WithLogger(WithProcessOptions(WithWorkerOptions(context.Background(), 2), true), logger)

	assert.Equal(t, 2, GetWorkerMaxCount(ctx, 5))
	assert.True(t, IsProcessRemainingEnabled(ctx, false))
	assert.Same(t, logger, Logger(ctx))

	assert.Equal(t, 5, GetWorkerMaxCount(WithWorkerOptions(context.Background(), 0), 5))
}

func TestToChanAndBack(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	assert.Equal(t, []int{1, 2, 3}, FromChanMany(ctx, ToChanMany(ctx, []int{1, 2, 3})))
	assert.Equal(t, 7, FromChanFirstOrDefault(ctx, ToChan(ctx, 7), -1))

	empty := make(chan int)
	close(empty)
	assert.Equal(t, -1, FromChanFirstOrDefault(ctx, empty, -1))
}

func TestToChanManyOutcomes_Handlers(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var startFail []int
	out := ToChanManyOutcomesWithHandlers(ctx, ToChanHandlers[int]{
		OnStartFail: func(ctx context.Context, input []int) { startFail = input },
	}, []int{1, 2})

	for range out {
		t.Fatalf("no outcome expected from a cancelled context")
	}
	assert.Equal(t, []int{1, 2}, startFail)
}

func TestToChanManyOutcomes(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	var sent []int
	out := ToChanManyOutcomesWithHandlers(ctx, ToChanHandlers[int]{
		OnSuccess: func(ctx context.Context, v int) { sent = append(sent, v) },
	}, []int{4, 5})

	var got []int
	for o := range out {
		got = append(got, o.Get())
	}

	assert.Equal(t, []int{4, 5}, got)
	assert.Equal(t, []int{4, 5}, sent)
}
