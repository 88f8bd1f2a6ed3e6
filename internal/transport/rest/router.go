package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/knowtes-backend/internal/config"
	"github.com/heartmarshall/knowtes-backend/internal/transport/middleware"
)

type tokenValidator interface {
	ValidateToken(ctx context.Context, token string) (uuid.UUID, error)
}

// RouterDeps bundles what NewRouter needs to mount every endpoint.
type RouterDeps struct {
	Logger      *slog.Logger
	Auth        *AuthHandler
	Users       *UserHandler
	Topics      *TopicHandler
	Notes       *NoteHandler
	Summaries   *SummaryHandler
	Health      *HealthHandler
	Tokens      tokenValidator
	RateLimiter *middleware.RateLimiter
	CORS        config.CORSConfig
	Limits      config.RateLimitConfig
}

// NewRouter builds the HTTP handler of the API. Every route except the auth
// entry points and health probes requires a bearer token.
func NewRouter(d RouterDeps) http.Handler {
	mux := http.NewServeMux()

	requireAuth := middleware.Auth(d.Tokens)
	authLimit := d.RateLimiter.Limit("auth", d.Limits.AuthPerMinute)
	summaryLimit := d.RateLimiter.Limit("summary", d.Limits.SummaryPerMinute)

	protected := func(h http.HandlerFunc) http.Handler {
		return requireAuth(h)
	}

	mux.HandleFunc("GET /live", d.Health.Live)
	mux.HandleFunc("GET /ready", d.Health.Ready)
	mux.HandleFunc("GET /health", d.Health.Health)

	mux.Handle("POST /auth/register", authLimit(http.HandlerFunc(d.Auth.Register)))
	mux.Handle("POST /auth/login", authLimit(http.HandlerFunc(d.Auth.Login)))
	mux.Handle("POST /auth/refresh", authLimit(http.HandlerFunc(d.Auth.Refresh)))
	mux.Handle("POST /auth/logout", protected(d.Auth.Logout))
	mux.Handle("GET /me", protected(d.Users.Me))

	mux.Handle("GET /topics", protected(d.Topics.List))
	mux.Handle("POST /topics", protected(d.Topics.Create))
	mux.Handle("GET /topics/{id}", protected(d.Topics.Get))
	mux.Handle("PUT /topics/{id}", protected(d.Topics.Update))
	mux.Handle("DELETE /topics/{id}", protected(d.Topics.Delete))

	mux.Handle("GET /topics/{topicId}/notes", protected(d.Notes.ListByTopic))
	mux.Handle("POST /topics/{topicId}/notes", protected(d.Notes.Create))
	mux.Handle("GET /notes/{id}", protected(d.Notes.Get))
	mux.Handle("PUT /notes/{id}", protected(d.Notes.Update))
	mux.Handle("DELETE /notes/{id}", protected(d.Notes.Delete))

	mux.Handle("GET /topics/{topicId}/summaries", protected(d.Summaries.List))
	mux.Handle("POST /topics/{topicId}/summaries",
		requireAuth(summaryLimit(http.HandlerFunc(d.Summaries.Generate))))
	mux.Handle("PUT /topics/{topicId}/summaries/{summaryId}/accept", protected(d.Summaries.Accept))
	mux.Handle("PUT /topics/{topicId}/summaries/{summaryId}/reject", protected(d.Summaries.Reject))

	return middleware.Chain(
		middleware.Recovery(d.Logger),
		middleware.RequestID,
		middleware.Logger(d.Logger),
		middleware.CORS(d.CORS),
	)(mux)
}
