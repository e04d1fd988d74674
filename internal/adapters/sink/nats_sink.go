package sink

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/nats-io/nats.go"

	"github.com/ScottSyms/RustAISe/internal/domain"
	"github.com/ScottSyms/RustAISe/internal/ports"
)

// NATSSink publishes each decoded record as a JSON message on a fixed
// subject. Batches map to one publish per record followed by a flush, so a
// slow broker pushes back on the whole pipeline.
type NATSSink struct {
	conn    *nats.Conn
	subject string
}

func NewNATSSink(url, subject string) (*NATSSink, error) {
	nc, err := nats.Connect(url,
		nats.RetryOnFailedConnect(true),
		nats.MaxReconnects(60),
		nats.ReconnectWait(2*time.Second),
	)
	if err != nil {
		return nil, fmt.Errorf("nats connect: %w", err)
	}
	return &NATSSink{conn: nc, subject: subject}, nil
}

// NewNATSSinkWithConn wraps an existing connection; the caller keeps
// ownership of it.
func NewNATSSinkWithConn(nc *nats.Conn, subject string) *NATSSink {
	return &NATSSink{conn: nc, subject: subject}
}

func (n *NATSSink) Name() string { return "nats:" + n.subject }

func (n *NATSSink) WriteBatch(records []*domain.Record) error {
	if len(records) == 0 {
		return nil
	}
	for _, rec := range records {
		payload, err := json.Marshal(rec)
		if err != nil {
			return fmt.Errorf("marshal record: %w", err)
		}
		if err := n.conn.Publish(n.subject, payload); err != nil {
			return fmt.Errorf("publish %s: %w", n.subject, err)
		}
	}
	if err := n.conn.FlushTimeout(10 * time.Second); err != nil {
		return fmt.Errorf("flush %s: %w", n.subject, err)
	}
	return nil
}

// Close drains the connection so buffered publishes reach the broker.
func (n *NATSSink) Close() error {
	if n.conn == nil || n.conn.IsClosed() {
		return nil
	}
	return n.conn.Drain()
}

var _ ports.RecordSink = (*NATSSink)(nil)
