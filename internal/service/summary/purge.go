package summary

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/heartmarshall/knowtes-backend/internal/domain"
)

//go:generate moq -out pending_stat_store_mock_test.go -pkg summary . pendingStatStore

type pendingStatStore interface {
	DeletePendingOlderThan(ctx context.Context, threshold time.Time) (int64, error)
}

// Purger removes pending summary stats that clients abandoned. It needs only
// the stat store, so maintenance jobs can run it without the AI provider.
type Purger struct {
	stats pendingStatStore
	log   *slog.Logger
}

// NewPurger creates a new Purger.
func NewPurger(log *slog.Logger, stats pendingStatStore) *Purger {
	return &Purger{
		stats: stats,
		log:   log.With("service", "summary_purge"),
	}
}

// PurgeStalePending deletes pending stats created more than olderThan ago,
// across all users. It returns the number of removed stats.
func (p *Purger) PurgeStalePending(ctx context.Context, olderThan time.Duration) (int64, error) {
	if olderThan <= 0 {
		return 0, domain.NewValidationError("older_than", "must be greater than 0")
	}

	threshold := time.Now().Add(-olderThan)
	n, err := p.stats.DeletePendingOlderThan(ctx, threshold)
	if err != nil {
		return 0, fmt.Errorf("summary.PurgeStalePending: %w", err)
	}

	p.log.InfoContext(ctx, "stale pending summaries purged",
		slog.Int64("deleted", n),
		slog.Time("threshold", threshold),
	)
	return n, nil
}
