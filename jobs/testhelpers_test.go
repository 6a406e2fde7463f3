package jobs

import (
	"context"
	"sync"

	"github.com/casualjim/courier/transport"
)

// scriptedTransport plays the broker and the service side of an
// exchange: the test decides when acks and responses are delivered.
// Handlers run synchronously on the caller's goroutine.
type scriptedTransport struct {
	mu        sync.Mutex
	subs      []*scriptedSub
	published []scriptedPublish
}

type scriptedSub struct {
	topic     string
	onMessage transport.MessageHandler
	onAck     transport.AckHandler
}

type scriptedPublish struct {
	topic   string
	payload []byte
}

func newScriptedTransport() *scriptedTransport {
	return &scriptedTransport{}
}

func (s *scriptedTransport) Subscribe(_ context.Context, topic string, _ byte, onMessage transport.MessageHandler, onAck transport.AckHandler) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subs = append(s.subs, &scriptedSub{topic: topic, onMessage: onMessage, onAck: onAck})
	return nil
}

func (s *scriptedTransport) Publish(_ context.Context, topic string, payload []byte, _ byte, _ bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.published = append(s.published, scriptedPublish{topic: topic, payload: payload})
	return nil
}

// ackTopic delivers the suback for every subscription of a topic.
func (s *scriptedTransport) ackTopic(topic string) {
	for _, sub := range s.subscriptions() {
		if sub.topic == topic && sub.onAck != nil {
			sub.onAck("ack-" + topic)
		}
	}
}

// deliver pushes a message to every subscription of a topic.
func (s *scriptedTransport) deliver(topic string, payload []byte) {
	for _, sub := range s.subscriptions() {
		if sub.topic == topic {
			sub.onMessage(topic, payload)
		}
	}
}

func (s *scriptedTransport) subscriptions() []*scriptedSub {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*scriptedSub, len(s.subs))
	copy(out, s.subs)
	return out
}

func (s *scriptedTransport) publishes() []scriptedPublish {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]scriptedPublish, len(s.published))
	copy(out, s.published)
	return out
}

func (s *scriptedTransport) topics() []string {
	var out []string
	for _, sub := range s.subscriptions() {
		out = append(out, sub.topic)
	}
	return out
}
