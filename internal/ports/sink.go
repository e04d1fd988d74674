package ports

import "github.com/ScottSyms/RustAISe/internal/domain"

// RecordSink consumes ordered batches of decoded records and persists them
// to any downstream system.
type RecordSink interface {
	WriteBatch(records []*domain.Record) error
	Name() string
}
