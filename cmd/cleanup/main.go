// Command cleanup removes pending summary stats that were never accepted or
// rejected within the configured retention period. It is intended to be
// invoked by an external cron job, not as an in-process goroutine.
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/heartmarshall/knowtes-backend/internal/adapter/postgres"
	"github.com/heartmarshall/knowtes-backend/internal/adapter/postgres/summarystat"
	"github.com/heartmarshall/knowtes-backend/internal/app"
	"github.com/heartmarshall/knowtes-backend/internal/config"
	"github.com/heartmarshall/knowtes-backend/internal/service/summary"
)

func main() {
	cfg, err := config.LoadMaintenance()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	purger := summary.NewPurger(logger, summarystat.New(pool))

	deleted, err := purger.PurgeStalePending(ctx, cfg.Summary.PendingRetention)
	if err != nil {
		logger.Error("purge stale summaries failed",
			slog.String("error", err.Error()),
			slog.Duration("retention", cfg.Summary.PendingRetention),
		)
		os.Exit(1)
	}

	logger.Info("purge stale summaries completed",
		slog.Int64("deleted", deleted),
		slog.Duration("retention", cfg.Summary.PendingRetention),
	)
}
