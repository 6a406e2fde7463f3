package courier

import (
	"context"
	"log/slog"

	"github.com/casualjim/courier/correlate"
	"github.com/casualjim/courier/pkg/slogx"
)

// StreamRoute describes one event topic of a streaming subscription.
// Build one with Event; the decode capability and the caller's callback
// live inside the handler.
type StreamRoute struct {
	Topic   string
	handler func(topic string, payload []byte)
}

// Event builds a StreamRoute that decodes every inbound message on
// topic and hands it to fn as a Result. A message that fails to decode
// is still delivered, with the decode error set, so the caller's event
// count never skips an index; the subscription stays alive either way.
func Event[T any](topic string, decode func(payload []byte) (T, error), fn func(correlate.Result[T])) StreamRoute {
	return StreamRoute{
		Topic: topic,
		handler: func(_ string, payload []byte) {
			defer func() {
				if rec := recover(); rec != nil {
					fn(correlate.Result[T]{Err: &correlate.CallbackError{Recovered: rec}})
				}
			}()
			value, err := decode(payload)
			if err != nil {
				fn(correlate.Result[T]{Err: err})
				return
			}
			fn(correlate.Result[T]{Value: value})
		},
	}
}

// Subscribe establishes the event subscriptions for a streaming
// operation. There is no publish step; the returned outcome resolves
// once every subscription is acknowledged, telling the caller that no
// event from that point forward will be missed. Events keep flowing to
// the route callbacks for the lifetime of the transport connection.
func Subscribe(ctx context.Context, c *Client, routes ...StreamRoute) *correlate.Outcome[struct{}] {
	outcome := correlate.NewOutcome[struct{}]()

	gate := correlate.NewGate(len(routes), func() error {
		outcome.Resolve(struct{}{})
		return nil
	}, func(err error) {
		outcome.Reject(err)
	})

	for _, route := range routes {
		err := c.conn.Subscribe(ctx, route.Topic, c.qos, route.handler, func(_ string) { gate.Ack() })
		if err != nil {
			c.log.Error("failed to subscribe", slogx.Error(err), slog.String("topic", route.Topic))
			outcome.Reject(err)
			return outcome
		}
	}
	return outcome
}
