package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/knowtes-backend/internal/domain"
	"github.com/heartmarshall/knowtes-backend/internal/service/note"
)

//go:generate moq -out note_service_mock_test.go -pkg rest . noteService

type noteService interface {
	CreateNote(ctx context.Context, input note.CreateNoteInput) (*domain.Note, error)
	GetNote(ctx context.Context, noteID uuid.UUID) (*domain.Note, error)
	ListNotes(ctx context.Context, input note.ListNotesInput) (domain.Page[domain.Note], error)
	UpdateNote(ctx context.Context, input note.UpdateNoteInput) (*domain.Note, error)
	DeleteNote(ctx context.Context, noteID uuid.UUID) error
}

// NoteHandler serves note endpoints.
type NoteHandler struct {
	svc noteService
	log *slog.Logger
}

// NewNoteHandler creates a NoteHandler.
func NewNoteHandler(svc noteService, logger *slog.Logger) *NoteHandler {
	return &NoteHandler{svc: svc, log: logger.With("handler", "note")}
}

type createNoteRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

type updateNoteRequest struct {
	Title   *string `json:"title"`
	Content *string `json:"content"`
}

// ListByTopic handles GET /topics/{topicId}/notes.
func (h *NoteHandler) ListByTopic(w http.ResponseWriter, r *http.Request) {
	topicID, err := pathUUID(r, "topicId")
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	input := note.ListNotesInput{TopicID: topicID}
	if input.IsSummary, err = queryBool(r, "is_summary"); err != nil {
		respondError(w, r, h.log, err)
		return
	}
	if input.Limit, err = queryInt(r, "limit"); err != nil {
		respondError(w, r, h.log, err)
		return
	}
	if input.Offset, err = queryInt(r, "offset"); err != nil {
		respondError(w, r, h.log, err)
		return
	}

	page, err := h.svc.ListNotes(r.Context(), input)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, newListResponse(toNoteResponses(page.Items), page.Total))
}

// Create handles POST /topics/{topicId}/notes. Notes created here are never
// summaries; summary notes only come from accepting a generated summary.
func (h *NoteHandler) Create(w http.ResponseWriter, r *http.Request) {
	topicID, err := pathUUID(r, "topicId")
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	var req createNoteRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respondError(w, r, h.log, err)
		return
	}

	n, err := h.svc.CreateNote(r.Context(), note.CreateNoteInput{
		TopicID: topicID,
		Title:   req.Title,
		Content: req.Content,
	})
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, toNoteResponse(n))
}

// Get handles GET /notes/{id}.
func (h *NoteHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	n, err := h.svc.GetNote(r.Context(), id)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toNoteResponse(n))
}

// Update handles PUT /notes/{id}.
func (h *NoteHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	var req updateNoteRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respondError(w, r, h.log, err)
		return
	}

	n, err := h.svc.UpdateNote(r.Context(), note.UpdateNoteInput{
		NoteID:  id,
		Title:   req.Title,
		Content: req.Content,
	})
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toNoteResponse(n))
}

// Delete handles DELETE /notes/{id}.
func (h *NoteHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	if err := h.svc.DeleteNote(r.Context(), id); err != nil {
		respondError(w, r, h.log, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
