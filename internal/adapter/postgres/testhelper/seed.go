package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/knowtes-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

func now() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}

// SeedUser inserts a user with a unique email.
func SeedUser(t *testing.T, pool *pgxpool.Pool) domain.User {
	t.Helper()

	ts := now()
	user := domain.User{
		ID:           uuid.New(),
		Email:        "user-" + uniqueSuffix() + "@example.com",
		PasswordHash: "$2a$04$seededhashseededhashseededhashseededhashseededhashse",
		CreatedAt:    ts,
		UpdatedAt:    ts,
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO users (id, email, password_hash, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5)`,
		user.ID, user.Email, user.PasswordHash, user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedUser: %v", err)
	}

	return user
}

// SeedTopic inserts a root topic owned by userID.
func SeedTopic(t *testing.T, pool *pgxpool.Pool, userID uuid.UUID) domain.Topic {
	t.Helper()

	ts := now()
	topic := domain.Topic{
		ID:        uuid.New(),
		UserID:    userID,
		Title:     "Topic " + uniqueSuffix(),
		CreatedAt: ts,
		UpdatedAt: ts,
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO topics (id, user_id, title, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5)`,
		topic.ID, topic.UserID, topic.Title, topic.CreatedAt, topic.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedTopic: %v", err)
	}

	return topic
}

// SeedNote inserts a note under topicID.
func SeedNote(t *testing.T, pool *pgxpool.Pool, userID, topicID uuid.UUID, isSummary bool) domain.Note {
	t.Helper()

	ts := now()
	suffix := uniqueSuffix()
	note := domain.Note{
		ID:        uuid.New(),
		TopicID:   topicID,
		UserID:    userID,
		Title:     "Note " + suffix,
		Content:   "Content of note " + suffix,
		IsSummary: isSummary,
		CreatedAt: ts,
		UpdatedAt: ts,
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO notes (id, topic_id, user_id, title, content, is_summary, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		note.ID, note.TopicID, note.UserID, note.Title, note.Content, note.IsSummary, note.CreatedAt, note.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedNote: %v", err)
	}

	return note
}

// SeedSummaryStat inserts a pending summary stat for topicID.
func SeedSummaryStat(t *testing.T, pool *pgxpool.Pool, userID, topicID uuid.UUID, createdAt time.Time) domain.SummaryStat {
	t.Helper()

	stat := domain.SummaryStat{
		ID:        uuid.New(),
		UserID:    userID,
		TopicID:   topicID,
		CreatedAt: createdAt.UTC().Truncate(time.Microsecond),
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO summary_stats (id, user_id, topic_id, accepted, created_at)
		 VALUES ($1, $2, $3, false, $4)`,
		stat.ID, stat.UserID, stat.TopicID, stat.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedSummaryStat: %v", err)
	}

	return stat
}
