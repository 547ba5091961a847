package core

import (
	"context"

	"github.com/apex/log"
)

type OptionKey string

const (
	ProcessOptionKey OptionKey = "process_options"
	WorkerOptionKey  OptionKey = "worker_options"
)

type MaxLimitOption struct {
	Value int
}

type WorkerOptions struct {
	MaxCount MaxLimitOption
}

// ProcessOptions controls what happens to inputs still queued when the
// context is cancelled. With ProcessRemaining they are emitted as failures
// carrying ctx.Err(); otherwise they are dropped. Sends after cancellation
// block until read, so a consumer of a pipeline with ProcessRemaining must
// drain the output until it is closed, as FromChanMany does.
type ProcessOptions struct {
	ProcessRemaining bool
}

func WithProcessOptions(ctx context.Context, processRemaining bool) context.Context {
	return context.WithValue(ctx, ProcessOptionKey, ProcessOptions{ProcessRemaining: processRemaining})
}

func WithWorkerOptions(ctx context.Context, maxWorkers int) context.Context {
	return context.WithValue(ctx, WorkerOptionKey, WorkerOptions{MaxLimitOption{Value: maxWorkers}})
}

// GetWorkerMaxCount returns the configured worker count, or defaultMaxWorkers
// when none is set or the configured value is not positive.
func GetWorkerMaxCount(ctx context.Context, defaultMaxWorkers int) int {
	options, ok := ctx.Value(WorkerOptionKey).(WorkerOptions)
	if ok && options.MaxCount.Value > 0 {
		return options.MaxCount.Value
	}
	return defaultMaxWorkers
}

func IsProcessRemainingEnabled(ctx context.Context, defaultProcessRemaining bool) bool {
	options, ok := ctx.Value(ProcessOptionKey).(ProcessOptions)
	if ok {
		return options.ProcessRemaining
	}
	return defaultProcessRemaining
}

func WithLogger(ctx context.Context, logger log.Interface) context.Context {
	return log.NewContext(ctx, logger)
}

// Logger returns the logger stored in ctx, or log.Log.
func Logger(ctx context.Context) log.Interface {
	return log.FromContext(ctx)
}
