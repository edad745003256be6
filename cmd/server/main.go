package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"ednalyzer/internal/catalog"
	"ednalyzer/internal/config"
	"ednalyzer/internal/metrics"
	"ednalyzer/internal/server"
)

func main() {
	cfg := config.Load()

	// Create the upload staging directory
	if err := os.MkdirAll(cfg.UploadDir, 0o755); err != nil {
		log.Fatalf("Failed to create upload directory: %v", err)
	}

	cat := catalog.New()
	metrics.Init()

	srv := server.New(cfg)
	srv.RegisterRoutes(cat)

	// Graceful shutdown
	go func() {
		if err := srv.Start(); err != nil {
			log.Printf("Server error: %v", err)
		}
	}()

	log.Printf("Server started on %s (%d databases available)", cfg.ServerAddr, cat.Count())

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	if err := srv.Shutdown(); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}
	log.Println("Server exited")
}
