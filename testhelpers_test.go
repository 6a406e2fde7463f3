package courier

import (
	"context"
	"fmt"
	"sync"

	"github.com/casualjim/courier/transport"
)

// scriptedTransport records subscribe and publish calls and lets the
// test deliver acks and messages at exactly the moments it wants.
// Handlers run synchronously on the caller's goroutine.
type scriptedTransport struct {
	mu           sync.Mutex
	subs         []*scriptedSub
	published    []scriptedPublish
	subscribeErr error
	publishErr   error
}

type scriptedSub struct {
	topic     string
	onMessage transport.MessageHandler
	onAck     transport.AckHandler
}

type scriptedPublish struct {
	topic   string
	payload []byte
	qos     byte
	retain  bool
}

func newScriptedTransport() *scriptedTransport {
	return &scriptedTransport{}
}

func (s *scriptedTransport) Subscribe(_ context.Context, topic string, _ byte, onMessage transport.MessageHandler, onAck transport.AckHandler) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.subscribeErr != nil {
		return s.subscribeErr
	}
	s.subs = append(s.subs, &scriptedSub{topic: topic, onMessage: onMessage, onAck: onAck})
	return nil
}

func (s *scriptedTransport) Publish(_ context.Context, topic string, payload []byte, qos byte, retain bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.publishErr != nil {
		return s.publishErr
	}
	s.published = append(s.published, scriptedPublish{topic: topic, payload: payload, qos: qos, retain: retain})
	return nil
}

// ack delivers the suback for the i-th subscribe call.
func (s *scriptedTransport) ack(i int) {
	s.mu.Lock()
	sub := s.subs[i]
	s.mu.Unlock()
	if sub.onAck != nil {
		sub.onAck(fmt.Sprintf("ack-%d", i))
	}
}

// ackTopic delivers subacks for every subscription of a topic.
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
