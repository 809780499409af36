package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"

	"github.com/graceolivia/ToDoistChoreQueue/internal/config"
	"github.com/graceolivia/ToDoistChoreQueue/internal/domain/queue"
	"github.com/graceolivia/ToDoistChoreQueue/internal/runner"
	"github.com/graceolivia/ToDoistChoreQueue/internal/todoist"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config error: %v\n", err)
		os.Exit(1)
	}

	// Logs go to stderr so stdout stays clean for status lines.
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: parseLogLevel(cfg.Log.Level),
	}))
	logger = logger.With("run_id", uuid.NewString())

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	client := todoist.NewClient(cfg.API.BaseURL, cfg.Token, logger)
	service := queue.NewService(client, logger)
	reporter := runner.NewReporter(os.Stdout, os.Stderr)

	runner.New(service, reporter, logger).Run(ctx, cfg.QueueConfigs())
}

func parseLogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
