package transport

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/nats-io/nats.go"

	"github.com/casualjim/courier/pkg/slogx"
	"github.com/casualjim/courier/pkg/uuidx"
)

type natsTransport struct {
	client *nats.Conn
}

// NATS wraps an established NATS connection as a Transport. The
// subscription acknowledgement is delivered after a flush round-trip to
// the server, so an ack means the server has seen the subscription.
// QoS and retain flags are accepted for interface compatibility and
// ignored; core NATS has no equivalent.
func NATS(client *nats.Conn) Transport {
	return &natsTransport{client: client}
}

func (t *natsTransport) Subscribe(ctx context.Context, topic string, _ byte, onMessage MessageHandler, onAck AckHandler) error {
	if onMessage == nil {
		return fmt.Errorf("transport: message handler is required")
	}

	if _, err := t.client.Subscribe(topic, func(msg *nats.Msg) {
		onMessage(msg.Subject, msg.Data)
	}); err != nil {
		return err
	}

	id := uuidx.NewString()
	go func() {
		if err := t.client.FlushWithContext(ctx); err != nil {
			slog.Error("failed to confirm subscription", slogx.Error(err), slog.String("topic", topic))
			return
		}
		if onAck != nil {
			onAck(id)
		}
	}()
	return nil
}

func (t *natsTransport) Publish(_ context.Context, topic string, payload []byte, _ byte, _ bool) error {
	return t.client.Publish(topic, payload)
}
