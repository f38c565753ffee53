// Package main Scoring API
//
// @title           Scoring API
// @version         1.0
// @description     API для расчета оценки и выборки интересов клиентов
//
// @host      localhost:8080
// @BasePath  /
package main

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	scoringapi "github.com/magabrotheeeer/scoring-api/internal/app/scoring-api"
	"github.com/magabrotheeeer/scoring-api/internal/config"
)

func main() {
	cfg := config.MustLoad()

	var out io.Writer = os.Stdout
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			slog.Error("failed to open log file", slog.String("path", cfg.LogFile), slog.Any("err", err))
			os.Exit(1)
		}
		defer f.Close()
		out = f
	}
	logger := slog.New(slog.NewTextHandler(out, &slog.HandlerOptions{Level: slog.LevelDebug}))

	logger.Info("starting scoring-api", slog.String("env", cfg.Env))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	app := scoringapi.New(ctx, cfg, logger)

	if err := app.Run(ctx); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Error("app stopped with error", slog.Any("err", err))
		os.Exit(1)
	}

	logger.Info("scoring-api stopped gracefully")
}
