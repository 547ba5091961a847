package expected

import (
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

type stackTracer interface {
	StackTrace() errors.StackTrace
}

// Failure is an opaque, immutable handle to a captured failure. Copies of an
// Outcome share the same *Failure.
type Failure struct {
	id         uuid.UUID
	capturedAt time.Time
	raised     any
	err        error
	stack      errors.StackTrace
}

// capture builds a Failure from a raised value. A *Failure is returned as is.
func capture(raised any) *Failure {
	if f, ok := raised.(*Failure); ok {
		return f
	}

	err := asError(raised)
	var stack errors.StackTrace
	if st, ok := errors.WithStack(err).(stackTracer); ok {
		stack = st.StackTrace()
	}

	return &Failure{
		id:         uuid.New(),
		capturedAt: time.Now().UTC(),
		raised:     raised,
		err:        err,
		stack:      stack,
	}
}

// asError views raised as an error. Typed nil errors are wrapped like any
// other non-error value.
func asError(raised any) error {
	if err, ok := raised.(error); ok && !IsNil(err) {
		return err
	}
	return &PanicError{Value: raised}
}

// ID identifies the capture. It survives copies and transplants.
func (f *Failure) ID() uuid.UUID {
	return f.id
}

// CapturedAt time of capture (UTC)
func (f *Failure) CapturedAt() time.Time {
	return f.capturedAt
}

// Raised returns exactly the value that was raised or captured.
func (f *Failure) Raised() any {
	return f.raised
}

func (f *Failure) Error() string {
	return f.err.Error()
}

func (f *Failure) Unwrap() error {
	return f.err
}

// StackTrace returns the frames recorded when the failure was captured.
func (f *Failure) StackTrace() errors.StackTrace {
	return f.stack
}

// Rethrow panics with the original raised value. It never returns.
func (f *Failure) Rethrow() {
	panic(f.raised)
}

// Format prints the stack trace with %+v.
func (f *Failure) Format(s fmt.State, verb rune) {
	switch verb {
	case 'v':
		if s.Flag('+') {
			_, _ = fmt.Fprintf(s, "%s [%s]", f.Error(), f.id)
			f.stack.Format(s, verb)
			return
		}
		fallthrough
	case 's':
		_, _ = io.WriteString(s, f.Error())
	case 'q':
		_, _ = fmt.Fprintf(s, "%q", f.Error())
	}
}
