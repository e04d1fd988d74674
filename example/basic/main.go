package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	rustaise "github.com/ScottSyms/RustAISe"
)

func main() {
	cfg := rustaise.DefaultConfig()
	cfg.Input = "../../data/nmea-sample.txt"
	cfg.Output = "../../data/decoded.jsonl"
	if err := cfg.Finalize(); err != nil {
		log.Fatalf("config: %v", err)
	}

	flow, err := rustaise.ConfFromConfig(cfg)
	if err != nil {
		log.Fatalf("build flow: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := flow.Run(ctx); err != nil && err != context.Canceled {
		log.Fatalf("pipeline exited: %v", err)
	}
}
