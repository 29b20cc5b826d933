package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/DanielPopoola/cardform/internal/api"
	"github.com/DanielPopoola/cardform/internal/application/services"
	"github.com/DanielPopoola/cardform/internal/config"
	"github.com/DanielPopoola/cardform/internal/infrastructure/submission"
	"github.com/DanielPopoola/cardform/internal/interfaces/rest/handlers"
	"github.com/DanielPopoola/cardform/internal/interfaces/rest/middleware"
	"github.com/DanielPopoola/cardform/internal/worker"
	"github.com/gorilla/mux"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	logger := cfg.Logger.NewLogger()
	slog.SetDefault(logger)

	logger.Info("starting card form service",
		"env", cfg.Primary.Env,
		"port", cfg.Server.Port,
		"log_level", cfg.Logger.Level,
		"endpoint", cfg.Submission.EndpointURL,
	)

	ctx := context.Background()

	doc, err := api.LoadSpec(ctx)
	if err != nil {
		logger.Error("failed to load openapi document", "error", err)
		os.Exit(1)
	}

	submissionClient := submission.NewSubmissionClient(cfg.Submission)

	sessions := services.NewSessionStore(func() *services.FormController {
		return services.NewFormController(submissionClient, time.Now, logger)
	}, time.Now)

	h, err := handlers.NewHandlers(sessions, cfg.Session.CookieName, logger)
	if err != nil {
		logger.Error("failed to parse templates", "error", err)
		os.Exit(1)
	}

	router := mux.NewRouter()
	h.RegisterRoutes(router)

	validateRequests, err := middleware.OpenAPIValidator(doc, logger)
	if err != nil {
		logger.Error("failed to build request validator", "error", err)
		os.Exit(1)
	}

	handler := validateRequests(router)
	handler = middleware.Recovery(logger)(handler)
	handler = middleware.Logging(logger)(handler)
	handler = middleware.Timeout(cfg.Server.HandlerTimeout)(handler)

	server := &http.Server{
		Addr:         "0.0.0.0:" + cfg.Server.Port,
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	sessionWorker := worker.NewSessionWorker(
		sessions,
		cfg.Session.IdleTTL,
		cfg.Worker.Interval,
		logger,
	)

	workerCtx, cancelWorkers := context.WithCancel(ctx)
	defer cancelWorkers()

	go sessionWorker.Start(workerCtx)

	go func() {
		logger.Info("server starting", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server...")

	cancelWorkers()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
	}

	logger.Info("server exited")
}
