package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"hotel-cancellation-backend/config"
	"hotel-cancellation-backend/internal/api"
	"hotel-cancellation-backend/internal/classifier"
	"hotel-cancellation-backend/internal/encode"
	"hotel-cancellation-backend/internal/predict"
)

func main() {
	// Setup logger
	logger := log.New(os.Stdout, "hotel-backend ", log.LstdFlags)

	// Load configuration
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "./config/config.yaml" // Default path for local development
	}

	cfg, err := config.Load(configPath)
	switch {
	case errors.Is(err, os.ErrNotExist):
		logger.Printf("no configuration at %s, using defaults", configPath)
		cfg = config.Default()
	case err != nil:
		logger.Fatalf("failed to load configuration from %s: %v", configPath, err)
	default:
		logger.Printf("configuration loaded successfully from %s", configPath)
	}

	// Load the classifier once; every request shares it.
	modelPath, err := cfg.ResolveModelPath()
	if err != nil {
		logger.Fatalf("failed to resolve model path: %v", err)
	}
	model, err := classifier.Load(modelPath)
	if err != nil {
		logger.Fatalf("failed to load classifier: %v", err)
	}
	if err := classifier.CheckSchema(model, encode.ColumnNames()); err != nil {
		logger.Fatalf("classifier at %s is incompatible with the encoder: %v", modelPath, err)
	}
	logger.Printf("classifier ready (%d features)", model.NumFeatures())

	presenter := predict.NewPresenter(model)
	handler := api.NewHandler(presenter, modelPath)

	// Initialize router
	router := api.NewRouter(handler, cfg.Server)
	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: router,
	}

	// Start the server in a goroutine
	go func() {
		logger.Printf("HTTP server starting on port %d", cfg.Server.Port)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatalf("HTTP server ListenAndServe: %v", err)
		}
	}()

	// Setup signal handling for graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	<-stop
	logger.Println("Shutdown signal received, stopping server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Fatalf("HTTP server Shutdown: %v", err)
	}

	logger.Println("Server gracefully stopped")
}
