// Package pipeline wires ingestion, extraction, reassembly and output into a
// single bounded run.
package pipeline

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/ScottSyms/RustAISe/internal/decode"
	"github.com/ScottSyms/RustAISe/internal/domain"
	"github.com/ScottSyms/RustAISe/internal/nmea"
	"github.com/ScottSyms/RustAISe/internal/ports"
	"github.com/ScottSyms/RustAISe/internal/reassembly"
)

const progressEvery = 100_000

// Run drives the whole pipeline to completion: the source streams raw lines,
// a pool of workers tags and decodes them, a single reassembler merges
// multiline groups, and the output stage hands batches to the sink. All
// inter-stage channels share one capacity, so a slow sink throttles the
// reader; end of stream propagates by closing channels, never by timeout.
//
// Shutdown order falls out of the channel topology: the ingestion goroutine
// closes the raw channel when the input is exhausted, the last extraction
// worker closes the fragment channel, the reassembler closes the record
// channel once its input is drained (the workers are gone by then, so it is
// the sole remaining producer), and the output stage flushes after draining.
func Run(ctx context.Context, src ports.LineSource, sink ports.RecordSink, limits ports.Limits, obs ports.Observability) error {
	workers := limits.ExtractWorkers
	if workers < 1 {
		workers = 1
	}
	capacity := limits.FlowLimit
	if capacity < 1 {
		capacity = 1
	}
	batchSize := limits.MaxBatchSize
	if batchSize < 1 {
		batchSize = 1
	}

	rawCh := make(chan string, capacity)
	fragmentCh := make(chan *domain.Record, capacity)
	recordCh := make(chan *domain.Record, capacity)

	g, ctx := errgroup.WithContext(ctx)

	// Ingestion: sole producer of raw lines.
	g.Go(func() error {
		defer close(rawCh)
		if err := src.Stream(ctx, rawCh); err != nil {
			return fmt.Errorf("ingest %s: %w", src.Name(), err)
		}
		obs.LogInfo("input exhausted", ports.Field{Key: "source", Value: src.Name()})
		return nil
	})

	// Extraction: embarrassingly parallel over lines. The fragment channel
	// closes only after every worker has finished.
	var (
		extractWG sync.WaitGroup
		extracted atomic.Uint64
	)
	extractWG.Add(workers)
	for i := 0; i < workers; i++ {
		g.Go(func() error {
			defer extractWG.Done()
			for line := range rawCh {
				rec := &domain.Record{Sentence: line}
				nmea.Tag(rec)
				obs.IncCounter("ais_lines_extracted_total", 1)
				if n := extracted.Add(1); n%progressEvery == 0 {
					obs.LogInfo("lines extracted", ports.Field{Key: "count", Value: groupDigits(n)})
				}

				var dest chan *domain.Record
				if rec.Group == "" {
					rec.MessageClass = domain.ClassSingleline
					decode.Decode(rec)
					dest = recordCh
				} else {
					rec.MessageClass = domain.ClassMultiline
					dest = fragmentCh
				}
				select {
				case dest <- rec:
				case <-ctx.Done():
					return ctx.Err()
				}
			}
			return nil
		})
	}
	g.Go(func() error {
		extractWG.Wait()
		close(fragmentCh)
		return nil
	})

	// Reassembly: single owner of the correlation caches, no locking.
	g.Go(func() error {
		defer close(recordCh)
		asm := reassembly.New()
		var received uint64
		for rec := range fragmentCh {
			obs.IncCounter("ais_fragments_received_total", 1)
			received++
			if received%progressEvery == 0 {
				obs.LogInfo("fragments received", ports.Field{Key: "count", Value: groupDigits(received)})
			}

			merged, ok := asm.Add(rec)
			obs.SetGauge("ais_orphan_fragments", float64(asm.Pending()))
			if !ok {
				continue
			}
			obs.IncCounter("ais_groups_completed_total", 1)
			select {
			case recordCh <- merged:
			case <-ctx.Done():
				return ctx.Err()
			}
		}
		if pending := asm.Pending(); pending > 0 {
			obs.LogInfo("unmatched fragments abandoned", ports.Field{Key: "count", Value: groupDigits(uint64(pending))})
		}
		return nil
	})

	// Output: batch records to amortize the sink handoff, flush on drain.
	g.Go(func() error {
		batch := make([]*domain.Record, 0, batchSize)
		var written uint64

		flush := func() error {
			if len(batch) == 0 {
				return nil
			}
			start := time.Now()
			if err := sink.WriteBatch(batch); err != nil {
				return fmt.Errorf("write %s: %w", sink.Name(), err)
			}
			obs.ObserveLatency("ais_sink_write_latency_seconds", time.Since(start).Seconds())
			obs.IncCounter("ais_records_written_total", float64(len(batch)))
			prev := written
			written += uint64(len(batch))
			if prev/progressEvery != written/progressEvery {
				obs.LogInfo("records written", ports.Field{Key: "count", Value: groupDigits(written)})
			}
			batch = batch[:0]
			return nil
		}

		for rec := range recordCh {
			batch = append(batch, rec)
			if len(batch) >= batchSize {
				if err := flush(); err != nil {
					return err
				}
			}
		}
		return flush()
	})

	return g.Wait()
}
