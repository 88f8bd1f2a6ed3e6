package topic

import (
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/knowtes-backend/internal/validate"
)

// CreateTopicInput holds the parameters for creating a topic.
type CreateTopicInput struct {
	Title    string     `json:"title" validate:"required,max=150"`
	ParentID *uuid.UUID `json:"parent_id"`
}

func (i CreateTopicInput) normalize() CreateTopicInput {
	i.Title = strings.TrimSpace(i.Title)
	return i
}

// Validate checks all fields and collects all errors.
func (i CreateTopicInput) Validate() error {
	return validate.Struct(i.normalize())
}

// ListTopicsInput holds the parameters for listing topics.
type ListTopicsInput struct {
	ParentID *uuid.UUID `json:"parent_id"`
	Limit    *int       `json:"limit" validate:"omitempty,gte=1,lte=100"`
	Offset   *int       `json:"offset" validate:"omitempty,gte=0"`
}

// Validate checks all fields and collects all errors.
func (i ListTopicsInput) Validate() error {
	return validate.Struct(i)
}

// UpdateTopicInput holds the parameters for renaming a topic.
type UpdateTopicInput struct {
	TopicID uuid.UUID `json:"topic_id" validate:"required"`
	Title   string    `json:"title" validate:"required,max=150"`
}

func (i UpdateTopicInput) normalize() UpdateTopicInput {
	i.Title = strings.TrimSpace(i.Title)
	return i
}

// Validate checks all fields and collects all errors.
func (i UpdateTopicInput) Validate() error {
	return validate.Struct(i.normalize())
}
