package transport

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalDeliversAck(t *testing.T) {
	local := Local()
	acked := make(chan string, 1)

	err := local.Subscribe(context.Background(), "topic", 1,
		func(string, []byte) {},
		func(id string) { acked <- id },
	)
	require.NoError(t, err)

	select {
	case id := <-acked:
		assert.NotEmpty(t, id)
	case <-time.After(time.Second):
		t.Fatal("ack was never delivered")
	}
}

func TestLocalFansOutToAllSubscribers(t *testing.T) {
	local := Local()

	const subscribers = 3
	var wg sync.WaitGroup
	wg.Add(subscribers)

	var mu sync.Mutex
	var got []string

	for i := 0; i < subscribers; i++ {
		err := local.Subscribe(context.Background(), "news", 1,
			func(_ string, payload []byte) {
				mu.Lock()
				got = append(got, string(payload))
				mu.Unlock()
				wg.Done()
			}, nil)
		require.NoError(t, err)
	}

	require.NoError(t, local.Publish(context.Background(), "news", []byte("hello"), 1, false))
	wg.Wait()

	assert.Equal(t, []string{"hello", "hello", "hello"}, got)
}

func TestLocalIsolatesTopics(t *testing.T) {
	local := Local()

	received := make(chan []byte, 1)
	require.NoError(t, local.Subscribe(context.Background(), "a", 1,
		func(_ string, payload []byte) { received <- payload }, nil))

	require.NoError(t, local.Publish(context.Background(), "b", []byte("wrong room"), 1, false))
	require.NoError(t, local.Publish(context.Background(), "a", []byte("right room"), 1, false))

	select {
	case payload := <-received:
		assert.Equal(t, "right room", string(payload))
	case <-time.After(time.Second):
		t.Fatal("message was never delivered")
	}
}

func TestLocalRequiresMessageHandler(t *testing.T) {
	local := Local()
	err := local.Subscribe(context.Background(), "topic", 1, nil, nil)
	assert.Error(t, err)
}

func TestLocalPublishWithoutSubscribers(t *testing.T) {
	local := Local()
	assert.NoError(t, local.Publish(context.Background(), "empty", []byte("x"), 1, false))
}
