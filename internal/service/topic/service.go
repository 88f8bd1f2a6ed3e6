package topic

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/knowtes-backend/internal/domain"
)

//go:generate moq -out topic_repo_mock_test.go -pkg topic . topicRepo
//go:generate moq -out note_repo_mock_test.go -pkg topic . noteRepo

type topicRepo interface {
	GetByID(ctx context.Context, userID, topicID uuid.UUID) (*domain.Topic, error)
	List(ctx context.Context, userID uuid.UUID, filter domain.TopicFilter) (domain.Page[domain.Topic], error)
	Create(ctx context.Context, t *domain.Topic) (*domain.Topic, error)
	Update(ctx context.Context, userID, topicID uuid.UUID, title string) (*domain.Topic, error)
	Delete(ctx context.Context, userID, topicID uuid.UUID) error
}

type noteRepo interface {
	ListByTopic(ctx context.Context, userID, topicID uuid.UUID, filter domain.NoteFilter) (domain.Page[domain.Note], error)
}

// Service provides topic management operations.
type Service struct {
	topics topicRepo
	notes  noteRepo
	log    *slog.Logger
}

// NewService creates a new Topic service.
func NewService(log *slog.Logger, topics topicRepo, notes noteRepo) *Service {
	return &Service{
		topics: topics,
		notes:  notes,
		log:    log.With("service", "topic"),
	}
}
