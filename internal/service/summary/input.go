package summary

import (
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/knowtes-backend/internal/domain"
	"github.com/heartmarshall/knowtes-backend/internal/validate"
)

// GenerateResult is an unsaved summary draft tied to its pending stat.
type GenerateResult struct {
	SummaryStatID uuid.UUID
	Title         string
	Content       string
}

// AcceptInput carries the (possibly user-edited) draft to persist.
type AcceptInput struct {
	TopicID       uuid.UUID `json:"topic_id" validate:"required"`
	SummaryStatID uuid.UUID `json:"summary_stat_id" validate:"required"`
	Title         string    `json:"title" validate:"required,max=150"`
	Content       string    `json:"content" validate:"max=3000"`
}

func (i AcceptInput) normalize() AcceptInput {
	i.Title = strings.TrimSpace(i.Title)
	i.Content = strings.TrimSpace(i.Content)
	return i
}

// Validate checks all fields and collects all errors.
func (i AcceptInput) Validate() error {
	return validate.Struct(i.normalize())
}

// AcceptResult holds the accepted stat and the summary note it now links to.
type AcceptResult struct {
	Stat domain.SummaryStat
	Note domain.Note
}

// RejectInput identifies the pending summary to discard.
type RejectInput struct {
	TopicID       uuid.UUID `json:"topic_id" validate:"required"`
	SummaryStatID uuid.UUID `json:"summary_stat_id" validate:"required"`
}

// Validate checks all fields and collects all errors.
func (i RejectInput) Validate() error {
	return validate.Struct(i)
}
