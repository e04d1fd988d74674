package config

import (
	"fmt"
	"os"
	"runtime"

	"gopkg.in/yaml.v3"

	"github.com/ScottSyms/RustAISe/internal/ports"
)

type Config struct {
	Input   string        `yaml:"input"`
	Output  string        `yaml:"output"`
	Limits  ports.Limits  `yaml:"limits"`
	Sink    SinkConfig    `yaml:"sink"`
	Metrics MetricsConfig `yaml:"metrics"`
}

type SinkConfig struct {
	// Kind selects the output adapter: "file", "postgres" or "nats".
	Kind     string         `yaml:"kind"`
	Postgres PostgresConfig `yaml:"postgres"`
	NATS     NATSConfig     `yaml:"nats"`
}

type PostgresConfig struct {
	ConnString string `yaml:"conn_string"`
	Table      string `yaml:"table"`
}

type NATSConfig struct {
	URL     string `yaml:"url"`
	Subject string `yaml:"subject"`
}

type MetricsConfig struct {
	// Addr is the listen address of the /metrics endpoint; empty disables it.
	Addr string `yaml:"addr"`
}

// Load reads YAML from disk, applies defaults and validates the result.
func Load(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return nil, err
	}

	if err := cfg.Finalize(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Default returns a configuration with every default applied and no paths
// set; callers fill in Input/Output and call Finalize.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Finalize applies defaults and validates; it is safe to call on a config
// assembled by hand.
func (c *Config) Finalize() error {
	c.applyDefaults()
	return c.validate()
}

func (c *Config) applyDefaults() {
	if c.Limits.FlowLimit == 0 {
		c.Limits.FlowLimit = 500_000
	}
	if c.Limits.ExtractWorkers == 0 {
		c.Limits.ExtractWorkers = runtime.NumCPU()
	}
	if c.Limits.MaxBatchSize == 0 {
		c.Limits.MaxBatchSize = 5_000
	}
	if c.Sink.Kind == "" {
		c.Sink.Kind = "file"
	}
	if c.Sink.Postgres.Table == "" {
		c.Sink.Postgres.Table = "ais_records"
	}
	if c.Sink.NATS.Subject == "" {
		c.Sink.NATS.Subject = "ais.records"
	}
}

func (c *Config) validate() error {
	if c.Input == "" {
		return fmt.Errorf("input is required")
	}
	if c.Limits.FlowLimit < 1 {
		return fmt.Errorf("limits.flow_limit must be >= 1")
	}
	if c.Limits.ExtractWorkers < 1 {
		return fmt.Errorf("limits.extract_workers must be >= 1")
	}
	if c.Limits.MaxBatchSize < 1 {
		return fmt.Errorf("limits.max_batch_size must be >= 1")
	}

	switch c.Sink.Kind {
	case "file":
		if c.Output == "" {
			return fmt.Errorf("output is required for the file sink")
		}
	case "postgres":
		if c.Sink.Postgres.ConnString == "" {
			return fmt.Errorf("sink.postgres.conn_string is required")
		}
	case "nats":
		if c.Sink.NATS.URL == "" {
			return fmt.Errorf("sink.nats.url is required")
		}
	default:
		return fmt.Errorf("unknown sink kind %q", c.Sink.Kind)
	}
	return nil
}
