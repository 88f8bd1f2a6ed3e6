// Package ctxutil carries request-scoped values (the authenticated principal
// and the request id) through context.Context.
package ctxutil

import (
	"context"

	"github.com/google/uuid"
)

type (
	userIDKey     struct{}
	requestIDKey  struct{}
	userHolderKey struct{}
)

// WithUserID stores the authenticated user's ID in the context.
func WithUserID(ctx context.Context, id uuid.UUID) context.Context {
	return context.WithValue(ctx, userIDKey{}, id)
}

// UserIDFromCtx extracts the authenticated user's ID.
// Returns uuid.Nil and false if the value is missing or is the nil UUID.
func UserIDFromCtx(ctx context.Context) (uuid.UUID, bool) {
	id, ok := ctx.Value(userIDKey{}).(uuid.UUID)
	if !ok || id == uuid.Nil {
		return uuid.Nil, false
	}
	return id, true
}

// WithRequestID stores the request ID in the context.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

// RequestIDFromCtx extracts the request ID, or "" if absent.
func RequestIDFromCtx(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}

// UserHolder lets an outer middleware learn the user that an inner one
// authenticated. It is written and read on the request goroutine.
type UserHolder struct {
	id uuid.UUID
}

// Set records the authenticated user.
func (h *UserHolder) Set(id uuid.UUID) { h.id = id }

// Get returns the recorded user, if any.
func (h *UserHolder) Get() (uuid.UUID, bool) {
	return h.id, h.id != uuid.Nil
}

// WithUserHolder stores h in the context.
func WithUserHolder(ctx context.Context, h *UserHolder) context.Context {
	return context.WithValue(ctx, userHolderKey{}, h)
}

// UserHolderFromCtx returns the holder placed by WithUserHolder, or nil.
func UserHolderFromCtx(ctx context.Context) *UserHolder {
	h, _ := ctx.Value(userHolderKey{}).(*UserHolder)
	return h
}
