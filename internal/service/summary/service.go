// Package summary implements the AI summary lifecycle of a topic:
// generate a draft, then accept it as a summary note or reject it.
package summary

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/knowtes-backend/internal/adapter/provider/openrouter"
	"github.com/heartmarshall/knowtes-backend/internal/domain"
)

//go:generate moq -out tx_manager_mock_test.go -pkg summary . txManager
//go:generate moq -out topic_repo_mock_test.go -pkg summary . topicRepo
//go:generate moq -out note_repo_mock_test.go -pkg summary . noteRepo
//go:generate moq -out stat_repo_mock_test.go -pkg summary . statRepo
//go:generate moq -out summarizer_mock_test.go -pkg summary . summarizer

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

type topicRepo interface {
	GetByID(ctx context.Context, userID, topicID uuid.UUID) (*domain.Topic, error)
}

type noteRepo interface {
	ListSourceNotes(ctx context.Context, userID, topicID uuid.UUID) ([]domain.Note, error)
	Create(ctx context.Context, n *domain.Note) (*domain.Note, error)
}

type statRepo interface {
	GetForUpdate(ctx context.Context, userID, statID uuid.UUID) (*domain.SummaryStat, error)
	ListByTopic(ctx context.Context, userID, topicID uuid.UUID) ([]domain.SummaryStat, error)
	Create(ctx context.Context, s *domain.SummaryStat) (*domain.SummaryStat, error)
	MarkAccepted(ctx context.Context, userID, statID, noteID uuid.UUID) (*domain.SummaryStat, error)
	Delete(ctx context.Context, userID, statID uuid.UUID) error
}

type summarizer interface {
	GenerateSummary(ctx context.Context, req openrouter.SummaryRequest) (*openrouter.Summary, error)
}

// Config holds summary workflow settings.
type Config struct {
	MaxTokens int
}

// Service orchestrates summary generation and its accept/reject decision.
type Service struct {
	tx     txManager
	topics topicRepo
	notes  noteRepo
	stats  statRepo
	ai     summarizer
	cfg    Config
	log    *slog.Logger
}

// NewService creates a new Summary service.
func NewService(
	log *slog.Logger,
	tx txManager,
	topics topicRepo,
	notes noteRepo,
	stats statRepo,
	ai summarizer,
	cfg Config,
) *Service {
	return &Service{
		tx:     tx,
		topics: topics,
		notes:  notes,
		stats:  stats,
		ai:     ai,
		cfg:    cfg,
		log:    log.With("service", "summary"),
	}
}
