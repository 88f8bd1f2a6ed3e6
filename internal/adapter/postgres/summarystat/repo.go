// Package summarystat implements the SummaryStat repository using PostgreSQL.
package summarystat

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	"github.com/heartmarshall/knowtes-backend/internal/adapter/postgres"
	"github.com/heartmarshall/knowtes-backend/internal/domain"
)

const table = "summary_stats"

var (
	columns   = []string{"id", "user_id", "topic_id", "summary_note_id", "accepted", "created_at"}
	returning = "RETURNING " + strings.Join(columns, ", ")
)

type row struct {
	ID            uuid.UUID  `db:"id"`
	UserID        uuid.UUID  `db:"user_id"`
	TopicID       uuid.UUID  `db:"topic_id"`
	SummaryNoteID *uuid.UUID `db:"summary_note_id"`
	Accepted      bool       `db:"accepted"`
	CreatedAt     time.Time  `db:"created_at"`
}

func (r row) toDomain() domain.SummaryStat {
	return domain.SummaryStat{
		ID:            r.ID,
		UserID:        r.UserID,
		TopicID:       r.TopicID,
		SummaryNoteID: r.SummaryNoteID,
		Accepted:      r.Accepted,
		CreatedAt:     r.CreatedAt,
	}
}

// Repo provides summary stat persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new summary stat repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// GetByID returns a summary stat owned by userID.
func (r *Repo) GetByID(ctx context.Context, userID, statID uuid.UUID) (*domain.SummaryStat, error) {
	return r.get(ctx, userID, statID, "")
}

// GetForUpdate is GetByID that also row-locks the stat until the surrounding
// transaction ends, so concurrent accept and reject calls serialize.
func (r *Repo) GetForUpdate(ctx context.Context, userID, statID uuid.UUID) (*domain.SummaryStat, error) {
	return r.get(ctx, userID, statID, "FOR UPDATE")
}

func (r *Repo) get(ctx context.Context, userID, statID uuid.UUID, suffix string) (*domain.SummaryStat, error) {
	b := postgres.Builder().
		Select(columns...).
		From(table).
		Where(squirrel.Eq{"id": statID}).
		Where(squirrel.Eq{"user_id": userID})
	if suffix != "" {
		b = b.Suffix(suffix)
	}

	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get summary stat query: %w", err)
	}

	var rw row
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &rw, query, args...); err != nil {
		return nil, postgres.MapError(err, "summary_stat", statID)
	}

	s := rw.toDomain()
	return &s, nil
}

// ListByTopic returns all summary stats of a topic, newest first.
func (r *Repo) ListByTopic(ctx context.Context, userID, topicID uuid.UUID) ([]domain.SummaryStat, error) {
	query, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where(squirrel.Eq{"topic_id": topicID}).
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("created_at DESC", "id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list summary stats query: %w", err)
	}

	var rows []row
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list summary stats: %w", err)
	}

	stats := make([]domain.SummaryStat, len(rows))
	for i, rw := range rows {
		stats[i] = rw.toDomain()
	}
	return stats, nil
}

// Create inserts a pending summary stat.
func (r *Repo) Create(ctx context.Context, s *domain.SummaryStat) (*domain.SummaryStat, error) {
	id := s.ID
	if id == uuid.Nil {
		id = uuid.New()
	}

	query, args, err := postgres.Builder().
		Insert(table).
		Columns("id", "user_id", "topic_id", "accepted").
		Values(id, s.UserID, s.TopicID, false).
		Suffix(returning).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert summary stat query: %w", err)
	}

	var rw row
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &rw, query, args...); err != nil {
		return nil, postgres.MapError(err, "summary_stat", id)
	}

	created := rw.toDomain()
	return &created, nil
}

// MarkAccepted moves a pending stat to accepted and links the summary note.
// Returns domain.ErrNotFound if no pending stat with that id is owned by userID.
func (r *Repo) MarkAccepted(ctx context.Context, userID, statID, noteID uuid.UUID) (*domain.SummaryStat, error) {
	query, args, err := postgres.Builder().
		Update(table).
		Set("accepted", true).
		Set("summary_note_id", noteID).
		Where(squirrel.Eq{"id": statID}).
		Where(squirrel.Eq{"user_id": userID}).
		Where(squirrel.Eq{"accepted": false}).
		Suffix(returning).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build accept summary stat query: %w", err)
	}

	var rw row
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &rw, query, args...); err != nil {
		return nil, postgres.MapError(err, "summary_stat", statID)
	}

	accepted := rw.toDomain()
	return &accepted, nil
}

// Delete removes a summary stat owned by userID.
func (r *Repo) Delete(ctx context.Context, userID, statID uuid.UUID) error {
	query, args, err := postgres.Builder().
		Delete(table).
		Where(squirrel.Eq{"id": statID}).
		Where(squirrel.Eq{"user_id": userID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete summary stat query: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, query, args...)
	if err != nil {
		return postgres.MapError(err, "summary_stat", statID)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("summary_stat %s: %w", statID, domain.ErrNotFound)
	}

	return nil
}

// DeletePendingOlderThan removes pending stats of all users created before
// the threshold and returns how many were deleted.
func (r *Repo) DeletePendingOlderThan(ctx context.Context, threshold time.Time) (int64, error) {
	query, args, err := postgres.Builder().
		Delete(table).
		Where(squirrel.Eq{"accepted": false}).
		Where(squirrel.Lt{"created_at": threshold}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build purge summary stats query: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("purge pending summary stats: %w", err)
	}

	return tag.RowsAffected(), nil
}
