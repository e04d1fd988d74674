package sink

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ScottSyms/RustAISe/internal/domain"
)

func TestJSONLSinkWritesOneRecordPerLine(t *testing.T) {
	var buf bytes.Buffer
	s := NewJSONLWriterSink(&buf, "test")

	records := []*domain.Record{
		{MessageType: 1, MessageClass: domain.ClassSingleline, MMSI: "316001245"},
		{MessageType: 5, MessageClass: domain.ClassMultiline, Name: "ATLANTIC CARRIER"},
	}
	if err := s.WriteBatch(records); err != nil {
		t.Fatalf("write batch: %v", err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}

	var first map[string]any
	if err := json.Unmarshal([]byte(lines[0]), &first); err != nil {
		t.Fatalf("line 0 is not JSON: %v", err)
	}
	if first["mmsi"] != "316001245" {
		t.Fatalf("mmsi = %v", first["mmsi"])
	}
}

func TestJSONLSinkEmptyBatch(t *testing.T) {
	var buf bytes.Buffer
	s := NewJSONLWriterSink(&buf, "")
	if err := s.WriteBatch(nil); err != nil {
		t.Fatalf("empty batch should be a no-op, got %v", err)
	}
	if s.Name() != "jsonl" {
		t.Fatalf("name = %q", s.Name())
	}
}

func TestJSONLSinkFlushesOnClose(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.jsonl")

	s, err := NewJSONLSink(path)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := s.WriteBatch([]*domain.Record{{MessageType: 18}}); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if !strings.Contains(string(raw), `"message_type":18`) {
		t.Fatalf("record not flushed to disk: %s", raw)
	}
}
