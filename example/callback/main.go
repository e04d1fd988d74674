package main

import (
	"context"
	"fmt"
	"log"

	"github.com/ScottSyms/RustAISe/pkg/rustaise"
)

func main() {
	cfg := rustaise.DefaultConfig()
	cfg.Input = "../../data/nmea-sample.txt"
	cfg.Output = "/dev/null"
	if err := cfg.Finalize(); err != nil {
		log.Fatalf("config: %v", err)
	}

	flow, err := rustaise.ConfFromConfig(cfg)
	if err != nil {
		log.Fatalf("build flow: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	callback := func(batch []rustaise.Record) error {
		for _, rec := range batch {
			if rec.MessageType != 5 {
				continue
			}
			fmt.Printf("mmsi=%s name=%q destination=%q eta=%s\n",
				rec.MMSI, rec.Name, rec.Destination, rec.ETA)
		}
		return nil
	}

	if err := flow.Run(ctx, rustaise.WithSink(rustaise.NewCallbackSink("stdout", callback))); err != nil && err != context.Canceled {
		log.Fatalf("pipeline error: %v", err)
	}
}
