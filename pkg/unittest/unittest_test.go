package unittest

import (
	"context"
	"testing"

	"github.com/apex/log"
	"github.com/apex/log/handlers/memory"
	"github.com/ib-77/expected/pkg/expected"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var globalRuns []string

var _ = Register("registered first", func() {
	globalRuns = append(globalRuns, "first")
})

var _ = Register("registered second", func() {
	globalRuns = append(globalRuns, "second")
})

func TestRunAll_ReverseOrder(t *testing.T) {
	require.NoError(t, RunAll(context.Background()))
	assert.Equal(t, []string{"second", "first"}, globalRuns)
}

func TestSuite_StopsAtFirstFailure(t *testing.T) {
	t.Parallel()

	var runs []string
	s := NewSuite()
	s.Register("never reached", func() { runs = append(runs, "a") })
	s.Register("fails", func() {
		runs = append(runs, "b")
		ExpectTrue(1+1 == 3)
	})
	s.Register("passes", func() {
		runs = append(runs, "c")
		ExpectTrue(true)
	})

	err := s.Run(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrExpectationFailed)
	assert.Contains(t, err.Error(), `unittest "fails"`)
	assert.Equal(t, []string{"c", "b"}, runs)
	assert.Equal(t, 3, s.Len())
}

func TestSuite_CapturesAnyPanic(t *testing.T) {
	t.Parallel()

	s := NewSuite()
	s.Register("index", func() {
		var values []int
		_ = values[1]
	})

	err := s.Run(context.Background())
	require.Error(t, err)

	var failure *expected.Failure
	require.True(t, errors.As(err, &failure))
	assert.NotEmpty(t, failure.StackTrace())
}

func TestSuite_Cancelled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	ran := false
	s := NewSuite()
	s.Register("skipped", func() { ran = true })

	assert.ErrorIs(t, s.Run(ctx), context.Canceled)
	assert.False(t, ran)
}

func TestSuite_Logging(t *testing.T) {
	t.Parallel()

	handler := memory.New()
	ctx := log.NewContext(context.Background(), &log.Logger{Handler: handler, Level: log.DebugLevel})

	s := NewSuite()
	s.Register("ok", func() {})
	s.Register("broken", func() { panic("nope") })
	require.Error(t, s.Run(ctx))

	require.Len(t, handler.Entries, 1)
	assert.Equal(t, "test failed", handler.Entries[0].Message)
	assert.Equal(t, "broken", handler.Entries[0].Fields["test"])

	s = NewSuite()
	s.Register("ok", func() {})
	require.NoError(t, s.Run(ctx))

	require.Len(t, handler.Entries, 3)
	assert.Equal(t, "test passed", handler.Entries[1].Message)
	assert.Equal(t, "all tests passed", handler.Entries[2].Message)
	assert.Equal(t, 1, handler.Entries[2].Fields["count"])
}
