// Package main is the entry point for the snaplate translation service.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/snaplate/snaplate/internal/config"
	"github.com/snaplate/snaplate/internal/handler"
	"github.com/snaplate/snaplate/internal/security"
	"github.com/snaplate/snaplate/internal/translate"
	"github.com/snaplate/snaplate/internal/ui"
)

func main() {
	logger := setupLogger()

	logger.Info("starting snaplate")

	cfg, err := config.GetConfig()
	if err != nil {
		logger.Error("failed to load configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("configuration loaded",
		slog.String("host", cfg.Server.Host),
		slog.Int("port", cfg.Server.Port),
		slog.String("provider", string(cfg.Provider)),
		slog.String("target_language", string(cfg.TargetLanguage)),
		slog.String("display_mode", string(cfg.DisplayMode)),
	)

	translator := translate.New(translate.WithLogger(logger))
	translateHandler := handler.NewTranslateHandler(cfg, translator, handler.WithLogger(logger))

	if cfg.Logging.Level != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(handler.RecoveryMiddleware(logger))
	router.Use(handler.CORSMiddleware())
	router.Use(handler.LoggingMiddleware(logger))

	translateHandler.Routes(router)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeoutSeconds) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeoutSeconds) * time.Second,
	}

	go func() {
		logger.Info("server starting", slog.String("address", addr))
		ui.PrintStartupInfo(cfg.Server.Host, cfg.Server.Port, string(cfg.Provider), string(cfg.TargetLanguage))

		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit

	logger.Info("shutdown signal received", slog.String("signal", sig.String()))
	ui.PrintShutdown()

	shutdownTimeout := time.Duration(cfg.Server.ShutdownTimeoutSeconds) * time.Second
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server shutdown error", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("server stopped gracefully")
}

// setupLogger creates a structured JSON logger wrapped in the credential
// redactor, so nothing key-shaped ever reaches log output.
func setupLogger() *slog.Logger {
	level := slog.LevelInfo

	if envLevel := os.Getenv("SNAPLATE_LOGGING_LEVEL"); envLevel != "" {
		switch envLevel {
		case "debug":
			level = slog.LevelDebug
		case "info":
			level = slog.LevelInfo
		case "warn":
			level = slog.LevelWarn
		case "error":
			level = slog.LevelError
		}
	}

	opts := &slog.HandlerOptions{
		Level: level,
	}

	jsonHandler := slog.NewJSONHandler(os.Stdout, opts)
	logger := slog.New(security.NewHandler(jsonHandler))

	slog.SetDefault(logger)

	return logger
}
