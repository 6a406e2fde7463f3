package courier

import (
	"fmt"
	"log/slog"

	"github.com/fogfish/opts"

	"github.com/casualjim/courier/transport"
)

// DefaultQOS is the delivery quality-of-service requested for every
// subscribe and publish unless overridden with WithQOS.
const DefaultQOS byte = 1

// Client drives typed exchanges over a shared transport connection. A
// single client serves any number of concurrent invocations.
type Client struct {
	conn transport.Transport
	qos  byte
	log  *slog.Logger
}

var (
	// WithQOS overrides the quality-of-service level used for
	// subscribes and publishes.
	WithQOS = opts.ForName[Client, byte]("qos")

	// WithLogger overrides the logger used for transport diagnostics.
	WithLogger = opts.ForName[Client, *slog.Logger]("log")
)

// New builds a client around an established transport connection.
func New(conn transport.Transport, options ...opts.Option[Client]) (*Client, error) {
	if conn == nil {
		return nil, fmt.Errorf("courier: transport is required")
	}
	c := &Client{conn: conn, qos: DefaultQOS, log: slog.Default()}
	if err := opts.Apply(c, options); err != nil {
		return nil, err
	}
	return c, nil
}
