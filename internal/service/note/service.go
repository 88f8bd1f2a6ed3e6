package note

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/knowtes-backend/internal/domain"
)

//go:generate moq -out note_repo_mock_test.go -pkg note . noteRepo
//go:generate moq -out topic_repo_mock_test.go -pkg note . topicRepo

type noteRepo interface {
	GetByID(ctx context.Context, userID, noteID uuid.UUID) (*domain.Note, error)
	ListByTopic(ctx context.Context, userID, topicID uuid.UUID, filter domain.NoteFilter) (domain.Page[domain.Note], error)
	Create(ctx context.Context, n *domain.Note) (*domain.Note, error)
	Update(ctx context.Context, userID, noteID uuid.UUID, title, content *string) (*domain.Note, error)
	Delete(ctx context.Context, userID, noteID uuid.UUID) error
}

type topicRepo interface {
	GetByID(ctx context.Context, userID, topicID uuid.UUID) (*domain.Topic, error)
}

// Service provides note operations scoped to the authenticated user.
type Service struct {
	notes  noteRepo
	topics topicRepo
	log    *slog.Logger
}

// NewService creates a new Note service.
func NewService(log *slog.Logger, notes noteRepo, topics topicRepo) *Service {
	return &Service{
		notes:  notes,
		topics: topics,
		log:    log.With("service", "note"),
	}
}
