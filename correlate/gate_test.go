package correlate

import (
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGateFiresAfterAllAcks(t *testing.T) {
	var fired atomic.Int32
	g := NewGate(3, func() error {
		fired.Add(1)
		return nil
	}, nil)

	g.Ack()
	g.Ack()
	assert.EqualValues(t, 0, fired.Load(), "must not fire before the last ack")

	g.Ack()
	assert.EqualValues(t, 1, fired.Load())
}

func TestGateZeroSubscriptionsFiresImmediately(t *testing.T) {
	var fired atomic.Int32
	NewGate(0, func() error {
		fired.Add(1)
		return nil
	}, nil)

	assert.EqualValues(t, 1, fired.Load())
}

func TestGateIgnoresDuplicateAcks(t *testing.T) {
	var fired atomic.Int32
	g := NewGate(1, func() error {
		fired.Add(1)
		return nil
	}, nil)

	g.Ack()
	g.Ack()
	g.Ack()
	assert.EqualValues(t, 1, fired.Load(), "duplicate acks must not re-trigger completion")
}

func TestGateConcurrentAcks(t *testing.T) {
	const subscriptions = 32

	var fired atomic.Int32
	g := NewGate(subscriptions, func() error {
		fired.Add(1)
		return nil
	}, nil)

	var wg sync.WaitGroup
	start := make(chan struct{})
	// twice as many acks as expected, racing
	for i := 0; i < subscriptions*2; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start
			g.Ack()
		}()
	}
	close(start)
	wg.Wait()

	assert.EqualValues(t, 1, fired.Load())
}

func TestGateCompletionErrorGoesToFail(t *testing.T) {
	boom := errors.New("publish blew up")
	var got error
	NewGate(0, func() error {
		return boom
	}, func(err error) {
		got = err
	})

	assert.ErrorIs(t, got, boom)
}

func TestGateCompletionPanicBecomesCallbackError(t *testing.T) {
	var got error
	g := NewGate(1, func() error {
		panic("kaboom")
	}, func(err error) {
		got = err
	})

	require.NotPanics(t, g.Ack, "panics must not escape into the ack path")

	var cbErr *CallbackError
	require.ErrorAs(t, got, &cbErr)
	assert.Equal(t, "kaboom", cbErr.Recovered)
}
