package note

import (
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/knowtes-backend/internal/domain"
	"github.com/heartmarshall/knowtes-backend/internal/validate"
)

// CreateNoteInput holds the parameters for creating a note in a topic.
type CreateNoteInput struct {
	TopicID uuid.UUID `json:"topic_id" validate:"required"`
	Title   string    `json:"title" validate:"required,max=150"`
	Content string    `json:"content" validate:"max=3000"`
}

func (i CreateNoteInput) normalize() CreateNoteInput {
	i.Title = strings.TrimSpace(i.Title)
	return i
}

// Validate checks all fields and collects all errors.
func (i CreateNoteInput) Validate() error {
	return validate.Struct(i.normalize())
}

// ListNotesInput holds the parameters for listing a topic's notes.
type ListNotesInput struct {
	TopicID   uuid.UUID `json:"topic_id" validate:"required"`
	IsSummary *bool     `json:"is_summary"`
	Limit     *int      `json:"limit" validate:"omitempty,gte=1,lte=100"`
	Offset    *int      `json:"offset" validate:"omitempty,gte=0"`
}

// Validate checks all fields and collects all errors.
func (i ListNotesInput) Validate() error {
	return validate.Struct(i)
}

// UpdateNoteInput holds the parameters for editing a note.
// Nil fields are left unchanged; at least one must be set.
type UpdateNoteInput struct {
	NoteID  uuid.UUID `json:"note_id" validate:"required"`
	Title   *string   `json:"title" validate:"omitempty,max=150"`
	Content *string   `json:"content" validate:"omitempty,max=3000"`
}

func (i UpdateNoteInput) normalize() UpdateNoteInput {
	if i.Title != nil {
		t := strings.TrimSpace(*i.Title)
		i.Title = &t
	}
	return i
}

// Validate checks all fields and collects all errors.
func (i UpdateNoteInput) Validate() error {
	n := i.normalize()
	var extra []domain.FieldError
	if n.Title == nil && n.Content == nil {
		extra = append(extra, domain.FieldError{Field: "input", Message: "at least one field must be provided"})
	}
	if n.Title != nil && *n.Title == "" {
		extra = append(extra, domain.FieldError{Field: "title", Message: "required"})
	}
	return validate.Merge(validate.Struct(n), extra...)
}
