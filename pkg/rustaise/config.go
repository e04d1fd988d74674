package rustaise

import "github.com/ScottSyms/RustAISe/internal/app/config"

// Config re-exports the root configuration struct so downstream projects can
// construct or modify it programmatically.
type Config = config.Config

type (
	// SinkConfig selects and configures the output adapter.
	SinkConfig = config.SinkConfig
	// PostgresConfig configures the Postgres sink.
	PostgresConfig = config.PostgresConfig
	// NATSConfig configures the NATS publishing sink.
	NATSConfig = config.NATSConfig
	// MetricsConfig configures the metrics HTTP endpoint.
	MetricsConfig = config.MetricsConfig
)

// LoadConfig loads YAML from disk using the internal config reader.
func LoadConfig(path string) (*Config, error) {
	return config.Load(path)
}

// DefaultConfig returns a configuration with defaults applied and no paths
// set.
func DefaultConfig() *Config {
	return config.Default()
}
