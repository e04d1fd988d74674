package sink

import (
	"encoding/json"
	"os"
	"testing"
	"time"

	"github.com/nats-io/nats.go"

	"github.com/ScottSyms/RustAISe/internal/domain"
)

func TestNATSSinkName(t *testing.T) {
	s := NewNATSSinkWithConn(nil, "ais.records")
	if got := s.Name(); got != "nats:ais.records" {
		t.Fatalf("name = %q", got)
	}
}

// Integration test; runs only against a live server.
//
//	NATS_URL=nats://localhost:4222 go test ./internal/adapters/sink/
func TestNATSSinkPublishIntegration(t *testing.T) {
	url := os.Getenv("NATS_URL")
	if url == "" {
		t.Skip("NATS_URL not set; skipping integration test")
	}

	nc, err := nats.Connect(url)
	if err != nil {
		t.Fatalf("connect: %v", err)
	}
	defer nc.Close()

	sub, err := nc.SubscribeSync("ais.records.test")
	if err != nil {
		t.Fatalf("subscribe: %v", err)
	}

	s, err := NewNATSSink(url, "ais.records.test")
	if err != nil {
		t.Fatalf("sink: %v", err)
	}
	defer s.Close()

	records := []*domain.Record{
		{MessageType: 1, MessageClass: domain.ClassSingleline, MMSI: "316001245"},
		{MessageType: 18, MessageClass: domain.ClassSingleline, MMSI: "338123456"},
	}
	if err := s.WriteBatch(records); err != nil {
		t.Fatalf("write batch: %v", err)
	}

	for _, want := range records {
		msg, err := sub.NextMsg(5 * time.Second)
		if err != nil {
			t.Fatalf("next message: %v", err)
		}
		var got domain.Record
		if err := json.Unmarshal(msg.Data, &got); err != nil {
			t.Fatalf("unmarshal: %v", err)
		}
		if got.MMSI != want.MMSI {
			t.Fatalf("mmsi = %q, want %q", got.MMSI, want.MMSI)
		}
	}
}

func TestNATSSinkEmptyBatch(t *testing.T) {
	s := NewNATSSinkWithConn(nil, "ais.records")
	if err := s.WriteBatch(nil); err != nil {
		t.Fatalf("empty batch should be a no-op, got %v", err)
	}
}
