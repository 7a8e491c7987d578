package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"qa-backend/cmd"
	"qa-backend/internal/api"
	"qa-backend/internal/config"
	"qa-backend/internal/database"
	"qa-backend/internal/inference"
	"qa-backend/internal/metrics"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus"
)

func createServer(store *database.ConversationStore, model inference.Model, m *metrics.Metrics, port int, requestTimeout time.Duration) *http.Server {
	r := chi.NewRouter()

	// Middleware
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "HEAD", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		ExposedHeaders:   []string{"*"},
		AllowCredentials: true,
		MaxAge:           300, // Cache preflight response for 5 minutes
	}))
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(requestTimeout))

	apiHandler := api.NewConversationService(store, model, m)
	apiHandler.AddRoutes(r)

	r.Handle("/metrics", m.Handler())

	return &http.Server{
		Addr:    fmt.Sprintf(":%d", port),
		Handler: r,
	}
}

func main() {
	cmd.LoadEnvFile()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("error loading config: %v", err)
	}

	level, err := cfg.SlogLevel()
	if err != nil {
		log.Fatalf("error loading config: %v", err)
	}
	logFile, err := cmd.SetupLogging(cfg.LogPath(), level)
	if err != nil {
		log.Fatalf("error setting up logging: %v", err)
	}
	defer logFile.Close()

	slog.Info("starting backend", "port", cfg.Port, "data_dir", cfg.DataDir, "provider", cfg.InferenceProvider, "model", cfg.ModelName, "inference_timeout", cfg.InferenceTimeout)

	db, err := database.NewDatabase(cfg.DatabaseURL, cfg.SqlitePath())
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}

	model, err := inference.NewModel(cfg.Inference())
	if err != nil {
		log.Fatalf("could not create inference model: %v", err)
	}

	m := metrics.NewMetrics("qa_backend", prometheus.NewRegistry())

	server := createServer(database.NewConversationStore(db), model, m, cfg.Port, cfg.RequestTimeout)

	// Goroutine for graceful shutdown
	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit
		slog.Info("shutting down server")

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := server.Shutdown(ctx); err != nil {
			log.Fatalf("Server forced to shutdown: %v", err)
		}
	}()

	slog.Info("server started", "port", cfg.Port)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("Could not listen on %d: %v\n", cfg.Port, err)
	}

	if sqlDB, err := db.DB(); err == nil {
		if err := sqlDB.Close(); err != nil {
			slog.Error("error closing database", "error", err)
		}
	}

	slog.Info("server stopped")
}
