package summary

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/heartmarshall/knowtes-backend/internal/domain"
	"github.com/heartmarshall/knowtes-backend/pkg/ctxutil"
)

// List returns the summary stats of an owned topic, newest first.
func (s *Service) List(ctx context.Context, topicID uuid.UUID) ([]domain.SummaryStat, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if _, err := s.topics.GetByID(ctx, userID, topicID); err != nil {
		return nil, fmt.Errorf("summary.List get topic: %w", err)
	}

	stats, err := s.stats.ListByTopic(ctx, userID, topicID)
	if err != nil {
		return nil, fmt.Errorf("summary.List: %w", err)
	}
	return stats, nil
}
