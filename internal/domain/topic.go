package domain

import (
	"time"

	"github.com/google/uuid"
)

// MaxTopicTitleLength is the maximum topic title length in characters.
const MaxTopicTitleLength = 150

// Topic is a user-owned container node organizing notes. ParentID links a
// topic to its parent when topics are nested.
type Topic struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	ParentID  *uuid.UUID
	Title     string
	CreatedAt time.Time
	UpdatedAt time.Time

	Notes []Note // populated only by reads that load the topic's notes
}

// TopicFilter narrows a topic listing.
type TopicFilter struct {
	ParentID *uuid.UUID
	Limit    int
	Offset   int
}
