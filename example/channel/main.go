package main

import (
	"context"
	"fmt"
	"log"

	rustaise "github.com/ScottSyms/RustAISe"
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

	sink, batches, closeBatches := rustaise.NewChannelSink("fanout", 32)

	done := make(chan struct{})
	go func() {
		defer close(done)
		for batch := range batches {
			for _, rec := range batch {
				fmt.Printf("type=%d class=%s mmsi=%s lat=%.4f lon=%.4f\n",
					rec.MessageType, rec.MessageClass, rec.MMSI, rec.Latitude, rec.Longitude)
			}
		}
	}()

	err = flow.Run(ctx, rustaise.WithSink(sink))
	closeBatches()
	<-done
	if err != nil && err != context.Canceled {
		log.Fatalf("pipeline error: %v", err)
	}
}
