package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"

	"github.com/heartmarshall/knowtes-backend/internal/domain"
)

type sessionData struct {
	UserID    uuid.UUID `json:"user_id"`
	ExpiresAt time.Time `json:"expires_at"`
	CreatedAt time.Time `json:"created_at"`
}

// SessionStore keeps refresh-token sessions keyed by token hash. Each user
// also has a set of their live hashes so all sessions can be revoked at once.
type SessionStore struct {
	client *goredis.Client
	prefix string
}

// NewSessionStore creates a session store. prefix namespaces every key.
func NewSessionStore(client *goredis.Client, prefix string) *SessionStore {
	return &SessionStore{client: client, prefix: prefix}
}

func (s *SessionStore) tokenKey(hash string) string {
	return s.prefix + "refresh:" + hash
}

func (s *SessionStore) userKey(userID uuid.UUID) string {
	return s.prefix + "user_sessions:" + userID.String()
}

// Create stores a refresh session until its expiry.
func (s *SessionStore) Create(ctx context.Context, token *domain.RefreshToken) error {
	createdAt := token.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}

	ttl := time.Until(token.ExpiresAt)
	if ttl <= 0 {
		return fmt.Errorf("store refresh session: already expired")
	}

	payload, err := json.Marshal(sessionData{
		UserID:    token.UserID,
		ExpiresAt: token.ExpiresAt,
		CreatedAt: createdAt,
	})
	if err != nil {
		return fmt.Errorf("marshal refresh session: %w", err)
	}

	userKey := s.userKey(token.UserID)
	_, err = s.client.TxPipelined(ctx, func(pipe goredis.Pipeliner) error {
		pipe.Set(ctx, s.tokenKey(token.TokenHash), payload, ttl)
		pipe.SAdd(ctx, userKey, token.TokenHash)
		// The index lives as long as the newest session.
		pipe.Expire(ctx, userKey, ttl)
		return nil
	})
	if err != nil {
		return fmt.Errorf("store refresh session: %w", err)
	}

	return nil
}

// Consume atomically fetches and deletes a session, so a refresh token can be
// rotated at most once. Returns domain.ErrNotFound for unknown, expired or
// already used tokens.
func (s *SessionStore) Consume(ctx context.Context, hash string) (*domain.RefreshToken, error) {
	raw, err := s.client.GetDel(ctx, s.tokenKey(hash)).Bytes()
	if errors.Is(err, goredis.Nil) {
		return nil, fmt.Errorf("refresh session: %w", domain.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("consume refresh session: %w", err)
	}

	var data sessionData
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("unmarshal refresh session: %w", err)
	}

	if err := s.client.SRem(ctx, s.userKey(data.UserID), hash).Err(); err != nil {
		return nil, fmt.Errorf("unindex refresh session: %w", err)
	}

	return &domain.RefreshToken{
		UserID:    data.UserID,
		TokenHash: hash,
		ExpiresAt: data.ExpiresAt,
		CreatedAt: data.CreatedAt,
	}, nil
}

// RevokeAllByUser deletes every session of the user.
func (s *SessionStore) RevokeAllByUser(ctx context.Context, userID uuid.UUID) error {
	userKey := s.userKey(userID)

	hashes, err := s.client.SMembers(ctx, userKey).Result()
	if err != nil {
		return fmt.Errorf("list refresh sessions: %w", err)
	}

	keys := make([]string, 0, len(hashes)+1)
	for _, h := range hashes {
		keys = append(keys, s.tokenKey(h))
	}
	keys = append(keys, userKey)

	if err := s.client.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("revoke refresh sessions: %w", err)
	}

	return nil
}
