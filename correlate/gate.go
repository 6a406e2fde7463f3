package correlate

import (
	"fmt"
	"sync/atomic"
)

// Gate counts the subscription acknowledgements expected for one
// operation invocation and invokes its completion callback exactly
// once, when the last acknowledgement arrives. A gate constructed for
// zero subscriptions completes immediately.
//
// Acks may race from multiple transport goroutines; the counter is a
// compare-and-swap loop that never goes negative, so a duplicate ack
// can neither re-trigger completion nor corrupt the count.
type Gate struct {
	remaining atomic.Int32
	complete  func() error
	fail      func(error)
}

// NewGate builds a gate expecting n acknowledgements. When the count
// reaches zero the complete callback runs once; if it returns an error
// or panics, the failure is handed to fail instead of propagating into
// the transport's delivery path.
func NewGate(n int, complete func() error, fail func(error)) *Gate {
	g := &Gate{complete: complete, fail: fail}
	g.remaining.Store(int32(n))
	if n <= 0 {
		g.fire()
	}
	return g
}

// Ack records one acknowledgement. Safe for concurrent use; acks beyond
// the expected count are ignored.
func (g *Gate) Ack() {
	for {
		n := g.remaining.Load()
		if n <= 0 {
			return
		}
		if g.remaining.CompareAndSwap(n, n-1) {
			if n == 1 {
				g.fire()
			}
			return
		}
	}
}

func (g *Gate) fire() {
	defer func() {
		if r := recover(); r != nil {
			g.failWith(&CallbackError{Recovered: r})
		}
	}()
	if err := g.complete(); err != nil {
		g.failWith(err)
	}
}

func (g *Gate) failWith(err error) {
	if g.fail != nil {
		g.fail(err)
	}
}

// CallbackError wraps a panic recovered from a completion callback or a
// route decoder so it can settle the pending outcome as a rejection.
type CallbackError struct {
	Recovered any
}

func (e *CallbackError) Error() string {
	return fmt.Sprintf("correlate: callback panicked: %v", e.Recovered)
}
