package rustaise

import (
	"github.com/ScottSyms/RustAISe/internal/domain"
	"github.com/ScottSyms/RustAISe/internal/ports"
)

// Record is the decoded output unit. It mirrors internal/domain.Record and
// is exported so custom sinks can reference it.
type Record = domain.Record

// Message classes stamped on every record.
const (
	ClassSingleline = domain.ClassSingleline
	ClassMultiline  = domain.ClassMultiline
)

// LineSource streams raw sentence lines into the pipeline.
type LineSource = ports.LineSource

// RecordSink consumes ordered batches of decoded records.
type RecordSink = ports.RecordSink

// Observability emits metrics and logs about throughput and cache growth.
type Observability = ports.Observability

// Field is a structured log field used by Observability implementations.
type Field = ports.Field

// Limits bounds channel capacities, worker counts and batch sizes.
type Limits = ports.Limits
