package transport

import (
	"context"
	"fmt"

	"github.com/alphadose/haxmap"

	"github.com/casualjim/courier/pkg/uuidx"
)

type localTransport struct {
	topics *haxmap.Map[string, *localTopic]
}

// Local returns an in-process transport that fans published payloads
// out to every subscriber of the exact topic. Acks and messages are
// delivered from separate goroutines, mimicking the asynchrony of a
// real broker round-trip; tests and examples use it in place of a
// server.
func Local() Transport {
	return &localTransport{topics: haxmap.New[string, *localTopic]()}
}

type localTopic struct {
	subscribers *haxmap.Map[string, MessageHandler]
}

func (t *localTransport) topic(name string) *localTopic {
	top, _ := t.topics.GetOrCompute(name, func() *localTopic {
		return &localTopic{subscribers: haxmap.New[string, MessageHandler]()}
	})
	return top
}

func (t *localTransport) Subscribe(_ context.Context, topic string, _ byte, onMessage MessageHandler, onAck AckHandler) error {
	if onMessage == nil {
		return fmt.Errorf("transport: message handler is required")
	}
	id := uuidx.NewString()
	t.topic(topic).subscribers.Set(id, onMessage)
	if onAck != nil {
		go onAck(id)
	}
	return nil
}

func (t *localTransport) Publish(_ context.Context, topic string, payload []byte, _ byte, _ bool) error {
	t.topic(topic).subscribers.ForEach(func(_ string, handler MessageHandler) bool {
		go handler(topic, payload)
		return true
	})
	return nil
}
