package correlate

import (
	"context"
	"sync/atomic"

	"github.com/casualjim/courier/pkg/stdx"
)

// State is the settlement state of an Outcome.
type State int32

const (
	Pending State = iota
	Resolved
	Rejected
)

func (s State) String() string {
	switch s {
	case Pending:
		return "pending"
	case Resolved:
		return "resolved"
	case Rejected:
		return "rejected"
	default:
		return "unknown"
	}
}

type settlement[T any] struct {
	value T
	err   error
}

// Outcome is the single settlement slot for one operation invocation.
// It is created when the invocation begins and settled exactly once by
// the first of: a decoded response, a decode failure, or a synchronous
// setup failure. Message handlers may fire concurrently from
// transport-owned goroutines; the Pending to Resolved/Rejected
// transition is a compare-and-swap, so only one of them wins.
type Outcome[T any] struct {
	state atomic.Int32
	done  chan struct{}
	res   settlement[T]
}

func NewOutcome[T any]() *Outcome[T] {
	return &Outcome[T]{done: make(chan struct{})}
}

// Resolve settles the outcome with a success value. It reports whether
// this call performed the settlement; once settled, later calls are
// no-ops.
func (o *Outcome[T]) Resolve(value T) bool {
	if !o.state.CompareAndSwap(int32(Pending), int32(Resolved)) {
		return false
	}
	o.res = settlement[T]{value: value}
	close(o.done)
	return true
}

// Reject settles the outcome with an error. It reports whether this
// call performed the settlement.
func (o *Outcome[T]) Reject(err error) bool {
	if !o.state.CompareAndSwap(int32(Pending), int32(Rejected)) {
		return false
	}
	o.res = settlement[T]{err: err}
	close(o.done)
	return true
}

// Settled reports whether the outcome has left the pending state.
func (o *Outcome[T]) Settled() bool {
	return State(o.state.Load()) != Pending
}

// State returns the current settlement state.
func (o *Outcome[T]) State() State {
	return State(o.state.Load())
}

// Get blocks until the outcome settles or the context ends. The
// context is the caller's place to layer a deadline; the outcome
// itself never times out.
func (o *Outcome[T]) Get(ctx context.Context) (T, error) {
	select {
	case <-o.done:
		return o.res.value, o.res.err
	case <-ctx.Done():
		return stdx.Zero[T](), ctx.Err()
	}
}
