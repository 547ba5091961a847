package expected

import (
	"strconv"
	"sync/atomic"
)

type overflowError struct {
	msg string
}

func (e *overflowError) Error() string { return e.msg }

type invalidArgumentError struct {
	msg string
}

func (e *invalidArgumentError) Error() string { return e.msg }

// recovered runs f and returns what it panicked with.
func recovered(f func()) (r any) {
	defer func() {
		r = recover()
	}()
	f()
	return nil
}

// parseInt is a native Outcome producer: no panics on the failure paths.
func parseInt(s string) Outcome[int32] {
	if len(s) > 10 {
		return FromError[int32](&strconv.NumError{Func: "parseInt", Num: s, Err: strconv.ErrRange})
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return FromError[int32](&strconv.NumError{Func: "parseInt", Num: s, Err: strconv.ErrSyntax})
		}
	}
	v, err := strconv.ParseInt(s, 10, 32)
	return FromPair(int32(v), err)
}

// mustParseInt is throwing code bridged with FromFunc.
func mustParseInt(s string) int32 {
	v, err := strconv.ParseInt(s, 10, 32)
	if err != nil {
		panic(err)
	}
	return int32(v)
}

// resource counts live instances.
type resource struct {
	live     *atomic.Int64
	released atomic.Bool
}

func newResource(live *atomic.Int64) *resource {
	live.Add(1)
	return &resource{live: live}
}

func (r *resource) Release() {
	if !r.released.CompareAndSwap(false, true) {
		panic("double release")
	}
	r.live.Add(-1)
}

func (r *resource) Clone() *resource {
	return newResource(r.live)
}

// handle owns a resource but cannot be cloned.
type handle struct {
	res *resource
}

func (h *handle) Release() {
	h.res.Release()
}

type bag struct {
	Items []int
}

func (b bag) Clone() bag {
	return bag{Items: append([]int(nil), b.Items...)}
}
