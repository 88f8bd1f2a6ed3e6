package topic

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/heartmarshall/knowtes-backend/internal/domain"
	"github.com/heartmarshall/knowtes-backend/pkg/ctxutil"
)

// GetTopic returns an owned topic with its newest notes attached.
func (s *Service) GetTopic(ctx context.Context, topicID uuid.UUID) (*domain.Topic, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	topic, err := s.topics.GetByID(ctx, userID, topicID)
	if err != nil {
		return nil, fmt.Errorf("topic.GetTopic: %w", err)
	}

	notes, err := s.notes.ListByTopic(ctx, userID, topicID, domain.NoteFilter{Limit: domain.MaxPageLimit})
	if err != nil {
		return nil, fmt.Errorf("topic.GetTopic list notes: %w", err)
	}
	topic.Notes = notes.Items

	return topic, nil
}
