package rest

import (
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/knowtes-backend/internal/domain"
)

type topicResponse struct {
	ID        uuid.UUID  `json:"id"`
	UserID    uuid.UUID  `json:"user_id"`
	ParentID  *uuid.UUID `json:"parent_id"`
	Title     string     `json:"title"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

type topicWithNotesResponse struct {
	topicResponse
	Notes []noteResponse `json:"notes"`
}

type noteResponse struct {
	ID        uuid.UUID `json:"id"`
	TopicID   uuid.UUID `json:"topic_id"`
	UserID    uuid.UUID `json:"user_id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	IsSummary bool      `json:"is_summary"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type summaryStatResponse struct {
	ID            uuid.UUID  `json:"id"`
	UserID        uuid.UUID  `json:"user_id"`
	TopicID       uuid.UUID  `json:"topic_id"`
	SummaryNoteID *uuid.UUID `json:"summary_note_id"`
	Accepted      bool       `json:"accepted"`
	CreatedAt     time.Time  `json:"created_at"`
}

func toTopicResponse(t *domain.Topic) topicResponse {
	return topicResponse{
		ID:        t.ID,
		UserID:    t.UserID,
		ParentID:  t.ParentID,
		Title:     t.Title,
		CreatedAt: t.CreatedAt,
		UpdatedAt: t.UpdatedAt,
	}
}

func toTopicWithNotesResponse(t *domain.Topic) topicWithNotesResponse {
	return topicWithNotesResponse{
		topicResponse: toTopicResponse(t),
		Notes:         toNoteResponses(t.Notes),
	}
}

func toTopicResponses(topics []domain.Topic) []topicResponse {
	out := make([]topicResponse, 0, len(topics))
	for i := range topics {
		out = append(out, toTopicResponse(&topics[i]))
	}
	return out
}

func toNoteResponse(n *domain.Note) noteResponse {
	return noteResponse{
		ID:        n.ID,
		TopicID:   n.TopicID,
		UserID:    n.UserID,
		Title:     n.Title,
		Content:   n.Content,
		IsSummary: n.IsSummary,
		CreatedAt: n.CreatedAt,
		UpdatedAt: n.UpdatedAt,
	}
}

func toNoteResponses(notes []domain.Note) []noteResponse {
	out := make([]noteResponse, 0, len(notes))
	for i := range notes {
		out = append(out, toNoteResponse(&notes[i]))
	}
	return out
}

func toSummaryStatResponse(s *domain.SummaryStat) summaryStatResponse {
	return summaryStatResponse{
		ID:            s.ID,
		UserID:        s.UserID,
		TopicID:       s.TopicID,
		SummaryNoteID: s.SummaryNoteID,
		Accepted:      s.Accepted,
		CreatedAt:     s.CreatedAt,
	}
}

func toSummaryStatResponses(stats []domain.SummaryStat) []summaryStatResponse {
	out := make([]summaryStatResponse, 0, len(stats))
	for i := range stats {
		out = append(out, toSummaryStatResponse(&stats[i]))
	}
	return out
}
