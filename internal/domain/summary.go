package domain

import (
	"time"

	"github.com/google/uuid"
)

// SummaryStat tracks one AI summary generation attempt for a topic.
// It is created pending, and either accepted once (linked to the
// materialized summary note) or deleted on rejection.
type SummaryStat struct {
	ID            uuid.UUID
	UserID        uuid.UUID
	TopicID       uuid.UUID
	SummaryNoteID *uuid.UUID
	Accepted      bool
	CreatedAt     time.Time
}

// IsPending reports whether the stat still awaits accept or reject.
func (s *SummaryStat) IsPending() bool {
	return !s.Accepted
}
