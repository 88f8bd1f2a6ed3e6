package note

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/heartmarshall/knowtes-backend/internal/domain"
	"github.com/heartmarshall/knowtes-backend/pkg/ctxutil"
)

// GetNote returns an owned note.
func (s *Service) GetNote(ctx context.Context, noteID uuid.UUID) (*domain.Note, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	note, err := s.notes.GetByID(ctx, userID, noteID)
	if err != nil {
		return nil, fmt.Errorf("note.GetNote: %w", err)
	}
	return note, nil
}

// ListNotes returns a page of an owned topic's notes, newest first.
// A foreign or missing topic yields domain.ErrNotFound rather than an empty page.
func (s *Service) ListNotes(ctx context.Context, input ListNotesInput) (domain.Page[domain.Note], error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.Page[domain.Note]{}, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return domain.Page[domain.Note]{}, err
	}

	if _, err := s.topics.GetByID(ctx, userID, input.TopicID); err != nil {
		return domain.Page[domain.Note]{}, fmt.Errorf("note.ListNotes get topic: %w", err)
	}

	limit, offset := domain.PageBounds(input.Limit, input.Offset)
	page, err := s.notes.ListByTopic(ctx, userID, input.TopicID, domain.NoteFilter{
		IsSummary: input.IsSummary,
		Limit:     limit,
		Offset:    offset,
	})
	if err != nil {
		return domain.Page[domain.Note]{}, fmt.Errorf("note.ListNotes: %w", err)
	}

	return page, nil
}
