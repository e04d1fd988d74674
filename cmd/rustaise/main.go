package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	rustaise "github.com/ScottSyms/RustAISe"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	cmd := os.Args[1]
	var err error

	switch cmd {
	case "run":
		err = runCommand(os.Args[2:])
	case "validate":
		err = validateCommand(os.Args[2:])
	case "stats":
		err = statsCommand(os.Args[2:])
	case "help", "-h", "--help":
		printUsage()
		return
	default:
		printUsage()
		err = fmt.Errorf("unknown command %q", cmd)
	}

	if err != nil {
		log.Fatalf("rustaise %s: %v", cmd, err)
	}
}

func runCommand(args []string) error {
	fs := flag.NewFlagSet("run", flag.ExitOnError)
	cfgPath := fs.String("config", "", "Path to a YAML configuration file (optional)")
	input := fs.String("input", "", "Input file of raw AIS sentences")
	output := fs.String("output", "", "Output file of decoded JSON records")
	flowLimit := fs.Int("flow-limit", 0, "Maximum in-flight messages per pipeline stage")
	workers := fs.Int("workers", 0, "Number of extraction workers (default: CPU count)")
	sinkKind := fs.String("sink", "", "Sink kind: file, postgres or nats")
	metricsAddr := fs.String("metrics", "", "Listen address for /metrics (empty: disabled)")
	logLevel := fs.String("log-level", "info", "Log level: debug, info, warn or error")
	if err := fs.Parse(args); err != nil {
		return err
	}

	rustaise.SetupLogging(*logLevel)

	cfg := rustaise.DefaultConfig()
	if *cfgPath != "" {
		loaded, err := rustaise.LoadConfig(*cfgPath)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		cfg = loaded
	}

	// Flags override whatever the file said.
	if *input != "" {
		cfg.Input = *input
	}
	if *output != "" {
		cfg.Output = *output
	}
	if *flowLimit > 0 {
		cfg.Limits.FlowLimit = *flowLimit
	}
	if *workers > 0 {
		cfg.Limits.ExtractWorkers = *workers
	}
	if *sinkKind != "" {
		cfg.Sink.Kind = *sinkKind
	}
	if *metricsAddr != "" {
		cfg.Metrics.Addr = *metricsAddr
	}
	if err := cfg.Finalize(); err != nil {
		return fmt.Errorf("config: %w", err)
	}

	flow, err := rustaise.ConfFromConfig(cfg)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	return flow.Run(ctx)
}

func validateCommand(args []string) error {
	fs := flag.NewFlagSet("validate", flag.ExitOnError)
	cfgPath := fs.String("config", "./config.yaml", "Path to configuration file to validate")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if _, err := rustaise.LoadConfig(*cfgPath); err != nil {
		return err
	}
	fmt.Printf("config %s looks good\n", *cfgPath)
	return nil
}

func statsCommand(args []string) error {
	fs := flag.NewFlagSet("stats", flag.ExitOnError)
	url := fs.String("url", "http://localhost:9100/metrics", "Prometheus metrics endpoint")
	interval := fs.Duration("interval", 2*time.Second, "Refresh interval")
	if err := fs.Parse(args); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	ticker := time.NewTicker(*interval)
	defer ticker.Stop()

	fmt.Printf("Streaming metrics from %s (Ctrl+C to stop)\n", *url)
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			if err := printMetricsSnapshot(*url); err != nil {
				fmt.Fprintf(os.Stderr, "stats error: %v\n", err)
			}
		}
	}
}

func printMetricsSnapshot(url string) error {
	resp, err := http.Get(url)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %s", resp.Status)
	}

	targets := map[string]float64{
		"ais_lines_extracted_total":  0,
		"ais_groups_completed_total": 0,
		"ais_records_written_total":  0,
		"ais_orphan_fragments":       0,
	}

	scanner := bufio.NewScanner(resp.Body)
	for scanner.Scan() {
		line := scanner.Text()
		if strings.HasPrefix(line, "#") {
			continue
		}
		for key := range targets {
			if strings.HasPrefix(line, key+" ") {
				var value float64
				if _, err := fmt.Sscanf(line, key+" %f", &value); err == nil {
					targets[key] = value
				}
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return err
	}

	fmt.Printf("[%s] extracted=%.0f completed=%.0f written=%.0f orphans=%.0f\n",
		time.Now().Format(time.RFC3339),
		targets["ais_lines_extracted_total"],
		targets["ais_groups_completed_total"],
		targets["ais_records_written_total"],
		targets["ais_orphan_fragments"],
	)
	return nil
}

func printUsage() {
	fmt.Printf(`RustAISe CLI

Usage:
  rustaise <command> [flags]

Commands:
  run        Decode an AIS capture file into structured records
  validate   Load and validate a config file without running
  stats      Poll the Prometheus metrics endpoint and print live counters

Examples:
  rustaise run -input ./nmea-sample.txt -output ./decoded.jsonl
  rustaise run -config ./config.yaml -metrics :9100
  rustaise validate -config ./config.yaml
  rustaise stats -url http://localhost:9100/metrics -interval 1s
`)
}
