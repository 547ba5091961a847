// Package unittest registers test closures during package initialization
// and runs them later from a thin driver:
//
//	var _ = unittest.Register("square", func() {
//		unittest.ExpectTrue(square(3) == 9)
//	})
//
//	func main() {
//		if err := unittest.RunAll(context.Background()); err != nil {
//			log.WithError(err).Fatal("unit tests failed")
//		}
//	}
//
// Tests run in reverse registration order, so lower level tests declared
// later in a file run first.
package unittest

import (
	"context"
	"sync"
	"time"

	"github.com/apex/log"
	"github.com/ib-77/expected/pkg/expected"
	"github.com/pkg/errors"
)

var ErrExpectationFailed = errors.New("expectation failed")

type test struct {
	name string
	fn   func()
}

type Suite struct {
	mu    sync.Mutex
	tests []test
}

func NewSuite() *Suite {
	return &Suite{}
}

var suite = NewSuite()

// Register adds fn to the process-wide suite. It returns true so it can be
// used in a package-level var declaration.
func Register(name string, fn func()) bool {
	return suite.Register(name, fn)
}

// RunAll runs the process-wide suite.
func RunAll(ctx context.Context) error {
	return suite.Run(ctx)
}

func (s *Suite) Register(name string, fn func()) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.tests = append(s.tests, test{name: name, fn: fn})
	return true
}

func (s *Suite) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.tests)
}

// Run executes the registered tests, last registered first. A panicking test
// is captured and stops the run; the returned error wraps the captured
// failure with the test name.
func (s *Suite) Run(ctx context.Context) error {
	s.mu.Lock()
	tests := append([]test(nil), s.tests...)
	s.mu.Unlock()

	logger := log.FromContext(ctx)

	for i := len(tests) - 1; i >= 0; i-- {
		if err := ctx.Err(); err != nil {
			return err
		}

		t := tests[i]
		entry := logger.WithField("test", t.name)
		start := time.Now()

		res := expected.FromCode(func() expected.Outcome[struct{}] {
			t.fn()
			return expected.Of(struct{}{})
		})

		if !res.IsPresent() {
			entry.WithError(res.Err()).Error("test failed")
			return errors.Wrapf(res.Err(), "unittest %q", t.name)
		}
		entry.WithDuration(time.Since(start)).Debug("test passed")
	}

	logger.WithField("count", len(tests)).Info("all tests passed")
	return nil
}

// ExpectTrue panics with ErrExpectationFailed when condition is false.
func ExpectTrue(condition bool) {
	if !condition {
		panic(ErrExpectationFailed)
	}
}
