package main

import (
	"context"
	"log"
	"os"

	gfshutdown "github.com/gelmium/graceful-shutdown"

	"github.com/krisly/beauty-store/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	log.Println("=== Krisly Beauty API ===")
	log.Printf("HTTP Port: %d", cfg.HTTPPort)
	log.Printf("Seed demo data: %t", cfg.SeedDemoData)

	app, err := newStoreApp(cfg)
	if err != nil {
		log.Fatalf("Failed to build app: %v", err)
	}

	ctx := context.Background()
	if err := app.mono.Start(ctx); err != nil {
		log.Fatalf("Failed to start app: %v", err)
	}

	log.Println("=== Application Started ===")
	log.Printf("API available at http://localhost:%d", cfg.HTTPPort)
	log.Println("Press Ctrl+C to shutdown")

	wait := gfshutdown.GracefulShutdown(
		context.Background(),
		cfg.ShutdownTimeout,
		map[string]gfshutdown.Operation{
			"mono-app": func(ctx context.Context) error {
				log.Println("Graceful shutdown initiated...")
				return app.mono.Stop(ctx)
			},
		},
	)

	exitCode := <-wait
	log.Printf("Application exited with code: %d", exitCode)
	os.Exit(exitCode)
}
