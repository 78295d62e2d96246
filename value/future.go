package value

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
)

// ComputeFunc is the body of a pending computation. It must honor ctx:
// after a join aborts, cancellation of ctx is the only signal a still-running
// computation receives.
type ComputeFunc func(ctx context.Context) (Value, error)

// Future is an owned handle to a pending computation.
//
// The computation is lazy: nothing runs until the first Await, which launches
// the backing goroutine with the awaiting context. A Future has a single
// owner who awaits it to completion at most once; transferring the handle
// transfers that obligation.
type Future struct {
	compute ComputeFunc
	done    chan struct{}
	result  Value
	err     error
	start   sync.Once
	running atomic.Bool
}

// NewFuture records fn as a pending computation without starting it.
func NewFuture(fn ComputeFunc) *Future {
	return &Future{compute: fn, done: make(chan struct{})}
}

// Resolved returns an already-completed future holding v.
func Resolved(v Value) *Future {
	f := &Future{done: make(chan struct{}), result: v}
	close(f.done)
	return f
}

// Failed returns an already-completed future holding err.
func Failed(err error) *Future {
	f := &Future{done: make(chan struct{}), err: err}
	close(f.done)
	return f
}

// Await drives the computation to completion and returns its outcome.
// It returns early with ctx.Err() if ctx is cancelled first; the backing
// goroutine still observes the same cancellation through its context.
func (f *Future) Await(ctx context.Context) (Value, error) {
	f.start.Do(func() {
		if f.compute == nil {
			return
		}
		f.running.Store(true)
		go func() {
			defer func() {
				if r := recover(); r != nil {
					f.err = fmt.Errorf("computation panic: %v", r)
				}
				f.running.Store(false)
				close(f.done)
			}()
			f.result, f.err = f.compute(ctx)
		}()
	})

	select {
	case <-f.done:
		return f.result, f.err
	case <-ctx.Done():
		return Unit(), ctx.Err()
	}
}

// Done reports completion without blocking. It is closed once the outcome
// is available.
func (f *Future) Done() <-chan struct{} {
	return f.done
}

func (f *Future) stateName() string {
	select {
	case <-f.done:
		if f.err != nil {
			return "failed"
		}
		return "completed"
	default:
		if f.running.Load() {
			return "running"
		}
		return "pending"
	}
}
