package domain

import (
	"time"

	"github.com/google/uuid"
)

// Note field limits, in characters.
const (
	MaxNoteTitleLength   = 150
	MaxNoteContentLength = 3000
)

// Note is a user-owned text record belonging to a topic.
// IsSummary marks notes materialized from an accepted AI summary.
type Note struct {
	ID        uuid.UUID
	TopicID   uuid.UUID
	UserID    uuid.UUID
	Title     string
	Content   string
	IsSummary bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NoteFilter narrows a listing of a topic's notes.
type NoteFilter struct {
	IsSummary *bool
	Limit     int
	Offset    int
}
