package observability

import (
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/ScottSyms/RustAISe/internal/ports"
)

// PromObs backs the Observability port with Prometheus metrics and
// structured JSON logs.
type PromObs struct {
	logger   *slog.Logger
	counters map[string]prometheus.Counter
	gauges   map[string]prometheus.Gauge
	histos   map[string]prometheus.Observer
}

func NewPromObs(logger *slog.Logger) *PromObs {
	if logger == nil {
		logger = slog.Default()
	}

	extracted := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "ais_lines_extracted_total",
		Help: "Sentence lines tagged by the extraction workers.",
	})
	fragments := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "ais_fragments_received_total",
		Help: "Multiline fragments handed to the reassembler.",
	})
	completed := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "ais_groups_completed_total",
		Help: "Two-part sentence groups reassembled into a record.",
	})
	written := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "ais_records_written_total",
		Help: "Decoded records accepted by the output sink.",
	})
	orphans := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "ais_orphan_fragments",
		Help: "Cached fragment payloads still waiting for a partner.",
	})
	latency := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "ais_sink_write_latency_seconds",
		Help:    "Latency of one batched sink write.",
		Buckets: prometheus.ExponentialBuckets(0.001, 2, 12),
	})

	prometheus.MustRegister(extracted, fragments, completed, written, orphans, latency)

	return &PromObs{
		logger: logger,
		counters: map[string]prometheus.Counter{
			"ais_lines_extracted_total":    extracted,
			"ais_fragments_received_total": fragments,
			"ais_groups_completed_total":   completed,
			"ais_records_written_total":    written,
		},
		gauges: map[string]prometheus.Gauge{
			"ais_orphan_fragments": orphans,
		},
		histos: map[string]prometheus.Observer{
			"ais_sink_write_latency_seconds": latency,
		},
	}
}

func (p *PromObs) LogInfo(msg string, fields ...ports.Field) {
	p.logger.Info(msg, attrs(fields)...)
}

func (p *PromObs) LogError(msg string, err error, fields ...ports.Field) {
	if err != nil {
		fields = append(fields, ports.Field{Key: "error", Value: err.Error()})
	}
	p.logger.Error(msg, attrs(fields)...)
}

func (p *PromObs) LogCritical(msg string, err error, fields ...ports.Field) {
	if err != nil {
		fields = append(fields, ports.Field{Key: "error", Value: err.Error()})
	}
	fields = append(fields, ports.Field{Key: "critical", Value: true})
	p.logger.Error(msg, attrs(fields)...)
}

func (p *PromObs) IncCounter(name string, v float64) {
	if c, ok := p.counters[name]; ok {
		c.Add(v)
	}
}

func (p *PromObs) ObserveLatency(name string, seconds float64) {
	if h, ok := p.histos[name]; ok {
		h.Observe(seconds)
	}
}

func (p *PromObs) SetGauge(name string, v float64) {
	if g, ok := p.gauges[name]; ok {
		g.Set(v)
	}
}

func attrs(fields []ports.Field) []any {
	out := make([]any, 0, len(fields)*2)
	for _, f := range fields {
		out = append(out, f.Key, f.Value)
	}
	return out
}

var _ ports.Observability = (*PromObs)(nil)
