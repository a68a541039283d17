package main

import (
	"context"
	"log"

	"tux-be/internal/bootstrap"
	"tux-be/internal/config"
	"tux-be/internal/server"
	"tux-be/internal/tracer"
)

func main() {
	// 1. Load Configuration (must come first: .env carries the OTEL keys)
	cfg := config.Load()

	// 2. Initialize Tracer (no-op unless OTEL_ENABLED=true)
	shutdownTracer := tracer.InitTracer(cfg.Otel.Enabled, cfg.Otel.Endpoint)
	defer shutdownTracer(context.Background())

	// 3. Bootstrap Dependencies (Container)
	container := bootstrap.NewContainer(cfg)
	defer container.Logger.Sync()

	// 4. Initialize and Run Server
	srv := server.New(cfg, container)
	log.Fatal(srv.Run())
}
