package topic

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/knowtes-backend/internal/domain"
	"github.com/heartmarshall/knowtes-backend/pkg/ctxutil"
)

// CreateTopic creates a topic for the authenticated user. A parent, when
// given, must be one of the caller's topics.
func (s *Service) CreateTopic(ctx context.Context, input CreateTopicInput) (*domain.Topic, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}
	input = input.normalize()

	if input.ParentID != nil {
		if _, err := s.topics.GetByID(ctx, userID, *input.ParentID); err != nil {
			return nil, fmt.Errorf("topic.CreateTopic get parent: %w", err)
		}
	}

	topic, err := s.topics.Create(ctx, &domain.Topic{
		UserID:   userID,
		ParentID: input.ParentID,
		Title:    input.Title,
	})
	if err != nil {
		return nil, fmt.Errorf("topic.CreateTopic: %w", err)
	}

	s.log.InfoContext(ctx, "topic created",
		slog.String("user_id", userID.String()),
		slog.String("topic_id", topic.ID.String()),
	)

	return topic, nil
}
