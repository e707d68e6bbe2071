package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"pdf-extract-server/internal/config"
	"pdf-extract-server/internal/handler"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found or could not be loaded: %v", err)
	}

	// Wiring
	container, err := config.NewContainer()
	if err != nil {
		log.Fatalf("Failed to initialize: %v", err)
	}
	cfg := container.GetConfig()
	appLogger := container.GetLogger()

	// Handlers
	extractHandler := handler.NewExtractHandler(
		container.GetExtractionService(),
		appLogger,
		cfg.GetMultipartMaxMemory(),
		cfg.IsDebug(),
	)

	// Router
	router := handler.NewRouter(
		extractHandler,
		handler.RequestID,
		mux.MiddlewareFunc(handler.NewRequestLogger(appLogger).Middleware),
		mux.MiddlewareFunc(handler.NewRecoverer(appLogger, cfg.IsDebug()).Middleware),
	)

	server := &http.Server{
		Addr:              ":" + cfg.GetServerPort(),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	// Run server
	go func() {
		appLogger.Info("Server listening",
			"address", server.Addr,
			"backend", container.Extractor.Name(),
			"debug", cfg.IsDebug(),
		)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			appLogger.Error("Server failed to start", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), cfg.GetShutdownTimeout())
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		appLogger.Error("Graceful shutdown failed", err)
		_ = server.Close()
	}

	appLogger.Info("Server exited")
}
