package sink

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/ScottSyms/RustAISe/internal/domain"
	"github.com/ScottSyms/RustAISe/internal/ports"
)

// JSONLSink writes one JSON record per line through a large buffered writer,
// so the per-record cost is a marshal and a memory copy; the file is only
// touched when the buffer fills or the sink is closed.
type JSONLSink struct {
	mu     sync.Mutex
	w      *bufio.Writer
	closer io.Closer
	name   string
}

// NewJSONLSink creates or truncates the output file at path.
func NewJSONLSink(path string) (*JSONLSink, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("create output: %w", err)
	}
	return &JSONLSink{
		w:      bufio.NewWriterSize(f, 1<<20),
		closer: f,
		name:   "jsonl:" + path,
	}, nil
}

// NewJSONLWriterSink wraps an arbitrary writer, for tests and embedding.
func NewJSONLWriterSink(w io.Writer, name string) *JSONLSink {
	if name == "" {
		name = "jsonl"
	}
	return &JSONLSink{w: bufio.NewWriterSize(w, 1<<20), name: name}
}

func (s *JSONLSink) Name() string { return s.name }

func (s *JSONLSink) WriteBatch(records []*domain.Record) error {
	if len(records) == 0 {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, rec := range records {
		line, err := json.Marshal(rec)
		if err != nil {
			return fmt.Errorf("marshal record: %w", err)
		}
		if _, err := s.w.Write(line); err != nil {
			return fmt.Errorf("write output: %w", err)
		}
		if err := s.w.WriteByte('\n'); err != nil {
			return fmt.Errorf("write output: %w", err)
		}
	}
	return nil
}

// Close flushes the buffer and closes the underlying file, if any.
func (s *JSONLSink) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.w.Flush(); err != nil {
		return fmt.Errorf("flush output: %w", err)
	}
	if s.closer != nil {
		return s.closer.Close()
	}
	return nil
}

var _ ports.RecordSink = (*JSONLSink)(nil)
