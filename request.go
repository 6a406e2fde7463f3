package courier

import (
	"context"
	"log/slog"

	"github.com/casualjim/courier/correlate"
	"github.com/casualjim/courier/pkg/slogx"
	"github.com/casualjim/courier/transport"
	"github.com/casualjim/courier/wire"
)

// Call describes one request/response exchange: the topic the encoded
// request is published to and the response routes that can settle it.
// Each route is tagged success or error through its decode functions;
// any number of routes is valid, including zero, in which case the
// request publishes immediately.
type Call[T any] struct {
	Topic   string
	Payload wire.Document
	Routes  []correlate.Route[T]
}

// Request performs a request/response exchange. Per invocation it
// subscribes to every route, counts acknowledgements through a gate,
// publishes the request only once all subscriptions are acknowledged,
// and returns the pending outcome that the first matching response
// settles.
//
// Setup failures reject the returned outcome: a subscribe call that
// fails synchronously, or a publish failure surfaced through the gate's
// completion callback as a PublishError. The outcome carries no
// timeout; layer one with the context passed to Get.
func Request[T any](ctx context.Context, c *Client, call Call[T]) *correlate.Outcome[T] {
	outcome := correlate.NewOutcome[T]()

	gate := correlate.NewGate(len(call.Routes), func() error {
		c.log.Debug("publishing request", slog.String("topic", call.Topic), slogx.ByteString("payload", call.Payload))
		if err := c.conn.Publish(ctx, call.Topic, call.Payload, c.qos, false); err != nil {
			return &PublishError{Topic: call.Topic, Err: err}
		}
		return nil
	}, func(err error) {
		outcome.Reject(err)
	})

	for _, route := range call.Routes {
		handler := transport.MessageHandler(correlate.Bind(outcome, route))
		err := c.conn.Subscribe(ctx, route.Topic, c.qos, handler, func(_ string) { gate.Ack() })
		if err != nil {
			c.log.Error("failed to subscribe", slogx.Error(err), slog.String("topic", route.Topic))
			outcome.Reject(err)
			return outcome
		}
	}
	return outcome
}
