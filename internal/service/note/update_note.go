package note

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/knowtes-backend/internal/domain"
	"github.com/heartmarshall/knowtes-backend/pkg/ctxutil"
)

// UpdateNote changes the title and/or content of an owned note.
func (s *Service) UpdateNote(ctx context.Context, input UpdateNoteInput) (*domain.Note, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}
	input = input.normalize()

	note, err := s.notes.Update(ctx, userID, input.NoteID, input.Title, input.Content)
	if err != nil {
		return nil, fmt.Errorf("note.UpdateNote: %w", err)
	}

	s.log.InfoContext(ctx, "note updated",
		slog.String("user_id", userID.String()),
		slog.String("note_id", note.ID.String()),
	)

	return note, nil
}

// DeleteNote removes an owned note. A summary stat pointing at it keeps its
// accepted state and loses the link.
func (s *Service) DeleteNote(ctx context.Context, noteID uuid.UUID) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	if err := s.notes.Delete(ctx, userID, noteID); err != nil {
		return fmt.Errorf("note.DeleteNote: %w", err)
	}

	s.log.InfoContext(ctx, "note deleted",
		slog.String("user_id", userID.String()),
		slog.String("note_id", noteID.String()),
	)

	return nil
}
