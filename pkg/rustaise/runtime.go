package rustaise

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"time"

	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/ScottSyms/RustAISe/internal/adapters/observability"
	"github.com/ScottSyms/RustAISe/internal/adapters/sink"
	"github.com/ScottSyms/RustAISe/internal/adapters/source"
	"github.com/ScottSyms/RustAISe/internal/app/pipeline"
	"github.com/ScottSyms/RustAISe/internal/ports"
)

// Option customizes the dependencies used by Runtime.
type Option func(*overrides)

type overrides struct {
	source        ports.LineSource
	sink          ports.RecordSink
	observability ports.Observability
}

// WithSource injects a custom line source (network capture, decompressor,
// test fixture, etc.).
func WithSource(src LineSource) Option {
	return func(o *overrides) {
		o.source = src
	}
}

// WithSink injects a custom sink so records can go to any store or API.
func WithSink(s RecordSink) Option {
	return func(o *overrides) {
		o.sink = s
	}
}

// WithObservability plugs in a custom observability backend.
func WithObservability(obs Observability) Option {
	return func(o *overrides) {
		o.observability = obs
	}
}

// Runtime wires the ingestion → extraction → reassembly → output pipeline
// and owns the optional metrics endpoint and sink lifecycles.
type Runtime struct {
	cfg        *Config
	limits     ports.Limits
	obs        ports.Observability
	source     ports.LineSource
	sink       ports.RecordSink
	db         *sql.DB
	metricsSrv *http.Server
}

// NewRuntime bootstraps the default adapters (file source, sink selected by
// configuration, Prometheus observability). Option values override any
// dependency.
func NewRuntime(cfg *Config, opts ...Option) (*Runtime, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config is required")
	}

	var ov overrides
	for _, opt := range opts {
		if opt != nil {
			opt(&ov)
		}
	}

	obs := ov.observability
	if obs == nil {
		obs = observability.NewPromObs(slog.Default())
	}

	src := ov.source
	if src == nil {
		src = source.NewFileSource(cfg.Input)
	}

	rt := &Runtime{
		cfg:    cfg,
		limits: cfg.Limits,
		obs:    obs,
		source: src,
	}

	snk := ov.sink
	if snk == nil {
		var err error
		snk, err = rt.buildSink()
		if err != nil {
			return nil, err
		}
	}
	rt.sink = snk

	return rt, nil
}

func (r *Runtime) buildSink() (ports.RecordSink, error) {
	switch r.cfg.Sink.Kind {
	case "file":
		return sink.NewJSONLSink(r.cfg.Output)
	case "postgres":
		db, err := sql.Open("postgres", r.cfg.Sink.Postgres.ConnString)
		if err != nil {
			return nil, fmt.Errorf("open postgres: %w", err)
		}
		r.db = db
		return sink.NewPostgresSink(db, r.cfg.Sink.Postgres.Table), nil
	case "nats":
		return sink.NewNATSSink(r.cfg.Sink.NATS.URL, r.cfg.Sink.NATS.Subject)
	default:
		return nil, fmt.Errorf("unknown sink kind %q", r.cfg.Sink.Kind)
	}
}

// Run processes the input to completion and returns once the output has
// been flushed. The metrics endpoint, when configured, serves for the
// duration of the run. Cancelling the context aborts mid-stream; in-flight
// caches are abandoned, they are not durable state.
func (r *Runtime) Run(ctx context.Context) error {
	r.startMetrics()
	start := time.Now()

	runErr := pipeline.Run(ctx, r.source, r.sink, r.limits, r.obs)
	if runErr == nil {
		r.obs.LogInfo("run complete",
			Field{Key: "elapsed", Value: time.Since(start).String()},
			Field{Key: "sink", Value: r.sink.Name()})
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := r.Shutdown(shutdownCtx); err != nil && runErr == nil {
		runErr = err
	}
	return runErr
}

// Shutdown flushes and closes the sink, the database handle and the metrics
// server. It is idempotent enough to be called after a failed Run.
func (r *Runtime) Shutdown(ctx context.Context) error {
	var errs []error

	if c, ok := r.sink.(io.Closer); ok {
		if err := c.Close(); err != nil {
			errs = append(errs, err)
		}
	}

	if r.db != nil {
		if err := r.db.Close(); err != nil {
			errs = append(errs, err)
		}
		r.db = nil
	}

	if r.metricsSrv != nil {
		if err := r.metricsSrv.Shutdown(ctx); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errs = append(errs, err)
		}
		r.metricsSrv = nil
	}

	return errors.Join(errs...)
}

func (r *Runtime) startMetrics() {
	if r.cfg.Metrics.Addr == "" {
		return
	}

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.metricsSrv = &http.Server{
		Addr:    r.cfg.Metrics.Addr,
		Handler: mux,
	}

	go func() {
		if err := r.metricsSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("metrics server exited", "error", err)
		}
	}()
}

// SetupLogging installs a JSON slog handler at the given level as the
// process default.
func SetupLogging(level string) {
	var lvl slog.Level
	switch level {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}
	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: lvl})
	slog.SetDefault(slog.New(handler))
}
