package note

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/knowtes-backend/internal/domain"
	"github.com/heartmarshall/knowtes-backend/pkg/ctxutil"
)

// CreateNote adds a regular (non-summary) note to an owned topic.
func (s *Service) CreateNote(ctx context.Context, input CreateNoteInput) (*domain.Note, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}
	input = input.normalize()

	if _, err := s.topics.GetByID(ctx, userID, input.TopicID); err != nil {
		return nil, fmt.Errorf("note.CreateNote get topic: %w", err)
	}

	note, err := s.notes.Create(ctx, &domain.Note{
		TopicID: input.TopicID,
		UserID:  userID,
		Title:   input.Title,
		Content: input.Content,
	})
	if err != nil {
		return nil, fmt.Errorf("note.CreateNote: %w", err)
	}

	s.log.InfoContext(ctx, "note created",
		slog.String("user_id", userID.String()),
		slog.String("topic_id", input.TopicID.String()),
		slog.String("note_id", note.ID.String()),
	)

	return note, nil
}
