// Package transport defines the pub/sub connection contract consumed by
// the correlation layer, plus two implementations: a NATS adapter and a
// local in-process transport.
//
// The connection is a black box to the rest of the module: topic
// semantics, delivery guarantees, reconnection and session persistence
// all belong here or below. The correlation layer only relies on
// subscribe acknowledgements being delivered asynchronously and at most
// once per subscribe call.
package transport

import "context"

// MessageHandler receives inbound messages for a subscribed topic. It
// is invoked from transport-owned goroutines, potentially concurrently
// with other handlers and with the code that registered it.
type MessageHandler func(topic string, payload []byte)

// AckHandler is invoked once the server acknowledges a subscription.
// The id is opaque.
type AckHandler func(id string)

// Transport is the pub/sub connection shared by all in-flight
// operations.
type Transport interface {
	// Subscribe registers interest in a topic. Message and ack delivery
	// are asynchronous and decoupled from each other. A non-nil error
	// means the subscription was not registered.
	Subscribe(ctx context.Context, topic string, qos byte, onMessage MessageHandler, onAck AckHandler) error

	// Publish sends a payload to a topic. A non-nil error reports a
	// synchronous failure; asynchronous delivery failures are the
	// transport's own concern.
	Publish(ctx context.Context, topic string, payload []byte, qos byte, retain bool) error
}
