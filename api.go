package rustaise

import (
	base "github.com/ScottSyms/RustAISe/pkg/rustaise"
)

// Re-exported errors for convenience.
var ErrChannelSinkClosed = base.ErrChannelSinkClosed

// Type aliases so consumers can import github.com/ScottSyms/RustAISe directly.
type (
	Config          = base.Config
	SinkConfig      = base.SinkConfig
	PostgresConfig  = base.PostgresConfig
	NATSConfig      = base.NATSConfig
	MetricsConfig   = base.MetricsConfig
	Limits          = base.Limits
	Flow            = base.Flow
	FlowOption      = base.FlowOption
	Runtime         = base.Runtime
	Option          = base.Option
	Record          = base.Record
	RecordBatchSink = base.RecordBatchSink
	LineSource      = base.LineSource
	RecordSink      = base.RecordSink
	Observability   = base.Observability
	Field           = base.Field
)

// Message classes stamped on every record.
const (
	ClassSingleline = base.ClassSingleline
	ClassMultiline  = base.ClassMultiline
)

// Config helpers.
func LoadConfig(path string) (*Config, error) {
	return base.LoadConfig(path)
}

func DefaultConfig() *Config {
	return base.DefaultConfig()
}

// Flow builder helpers.
func Conf(path string, opts ...FlowOption) (*Flow, error) {
	return base.Conf(path, opts...)
}

func ConfFromConfig(cfg *Config, opts ...FlowOption) (*Flow, error) {
	return base.ConfFromConfig(cfg, opts...)
}

func WithFlowOptions(opts ...Option) FlowOption {
	return base.WithFlowOptions(opts...)
}

// Runtime and options.
func NewRuntime(cfg *Config, opts ...Option) (*Runtime, error) {
	return base.NewRuntime(cfg, opts...)
}

func WithSource(src LineSource) Option {
	return base.WithSource(src)
}

func WithSink(s RecordSink) Option {
	return base.WithSink(s)
}

func WithObservability(obs Observability) Option {
	return base.WithObservability(obs)
}

// Sink adapters.
func NewCallbackSink(name string, fn RecordBatchSink) RecordSink {
	return base.NewCallbackSink(name, fn)
}

func NewChannelSink(name string, buffer int) (RecordSink, <-chan []Record, func()) {
	return base.NewChannelSink(name, buffer)
}

// SetupLogging installs the default JSON log handler.
func SetupLogging(level string) {
	base.SetupLogging(level)
}
