package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/knowtes-backend/internal/domain"
)

//go:generate moq -out user_service_mock_test.go -pkg rest . userService

type userService interface {
	GetProfile(ctx context.Context) (*domain.User, error)
}

// UserHandler serves the /me endpoint.
type UserHandler struct {
	svc userService
	log *slog.Logger
}

// NewUserHandler creates a UserHandler.
func NewUserHandler(svc userService, logger *slog.Logger) *UserHandler {
	return &UserHandler{svc: svc, log: logger.With("handler", "user")}
}

// Me handles GET /me.
func (h *UserHandler) Me(w http.ResponseWriter, r *http.Request) {
	u, err := h.svc.GetProfile(r.Context())
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, userResponse{ID: u.ID.String(), Email: u.Email})
}
