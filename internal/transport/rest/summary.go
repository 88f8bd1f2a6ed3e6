package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/knowtes-backend/internal/domain"
	"github.com/heartmarshall/knowtes-backend/internal/service/summary"
)

//go:generate moq -out summary_service_mock_test.go -pkg rest . summaryService

type summaryService interface {
	Generate(ctx context.Context, topicID uuid.UUID) (*summary.GenerateResult, error)
	Accept(ctx context.Context, input summary.AcceptInput) (*summary.AcceptResult, error)
	Reject(ctx context.Context, input summary.RejectInput) error
	List(ctx context.Context, topicID uuid.UUID) ([]domain.SummaryStat, error)
}

// SummaryHandler serves /topics/{topicId}/summaries endpoints.
type SummaryHandler struct {
	svc summaryService
	log *slog.Logger
}

// NewSummaryHandler creates a SummaryHandler.
func NewSummaryHandler(svc summaryService, logger *slog.Logger) *SummaryHandler {
	return &SummaryHandler{svc: svc, log: logger.With("handler", "summary")}
}

type generateSummaryResponse struct {
	SummaryStatID uuid.UUID `json:"summary_stat_id"`
	Title         string    `json:"title"`
	Content       string    `json:"content"`
}

type acceptSummaryRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

type acceptSummaryResponse struct {
	SummaryStat summaryStatResponse `json:"summary_stat"`
	Note        noteResponse        `json:"note"`
}

// List handles GET /topics/{topicId}/summaries.
func (h *SummaryHandler) List(w http.ResponseWriter, r *http.Request) {
	topicID, err := pathUUID(r, "topicId")
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	stats, err := h.svc.List(r.Context(), topicID)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, newListResponse(toSummaryStatResponses(stats), len(stats)))
}

// Generate handles POST /topics/{topicId}/summaries.
func (h *SummaryHandler) Generate(w http.ResponseWriter, r *http.Request) {
	topicID, err := pathUUID(r, "topicId")
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	result, err := h.svc.Generate(r.Context(), topicID)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, generateSummaryResponse{
		SummaryStatID: result.SummaryStatID,
		Title:         result.Title,
		Content:       result.Content,
	})
}

// Accept handles PUT /topics/{topicId}/summaries/{summaryId}/accept. The body
// carries the draft, possibly edited by the user.
func (h *SummaryHandler) Accept(w http.ResponseWriter, r *http.Request) {
	topicID, statID, err := summaryPath(r)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	var req acceptSummaryRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respondError(w, r, h.log, err)
		return
	}

	result, err := h.svc.Accept(r.Context(), summary.AcceptInput{
		TopicID:       topicID,
		SummaryStatID: statID,
		Title:         req.Title,
		Content:       req.Content,
	})
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, acceptSummaryResponse{
		SummaryStat: toSummaryStatResponse(&result.Stat),
		Note:        toNoteResponse(&result.Note),
	})
}

// Reject handles PUT /topics/{topicId}/summaries/{summaryId}/reject.
func (h *SummaryHandler) Reject(w http.ResponseWriter, r *http.Request) {
	topicID, statID, err := summaryPath(r)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	err = h.svc.Reject(r.Context(), summary.RejectInput{TopicID: topicID, SummaryStatID: statID})
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func summaryPath(r *http.Request) (uuid.UUID, uuid.UUID, error) {
	topicID, err := pathUUID(r, "topicId")
	if err != nil {
		return uuid.Nil, uuid.Nil, err
	}
	statID, err := pathUUID(r, "summaryId")
	if err != nil {
		return uuid.Nil, uuid.Nil, err
	}
	return topicID, statID, nil
}
