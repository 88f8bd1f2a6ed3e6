// Package note implements the Note repository using PostgreSQL.
package note

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

const table = "notes"

var (
	columns   = []string{"id", "topic_id", "user_id", "title", "content", "is_summary", "created_at", "updated_at"}
	returning = "RETURNING " + strings.Join(columns, ", ")
)

type row struct {
	ID        uuid.UUID `db:"id"`
	TopicID   uuid.UUID `db:"topic_id"`
	UserID    uuid.UUID `db:"user_id"`
	Title     string    `db:"title"`
	Content   string    `db:"content"`
	IsSummary bool      `db:"is_summary"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

func (r row) toDomain() domain.Note {
	return domain.Note{
		ID:        r.ID,
		TopicID:   r.TopicID,
		UserID:    r.UserID,
		Title:     r.Title,
		Content:   r.Content,
		IsSummary: r.IsSummary,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

func toDomainSlice(rows []row) []domain.Note {
	notes := make([]domain.Note, len(rows))
	for i, rw := range rows {
		notes[i] = rw.toDomain()
	}
	return notes
}

// Repo provides note persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new note repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// GetByID returns a note owned by userID.
// Returns domain.ErrNotFound if the note does not exist or belongs to another user.
func (r *Repo) GetByID(ctx context.Context, userID, noteID uuid.UUID) (*domain.Note, error) {
	query, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where(squirrel.Eq{"id": noteID}).
		Where(squirrel.Eq{"user_id": userID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get note query: %w", err)
	}

	var rw row
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &rw, query, args...); err != nil {
		return nil, postgres.MapError(err, "note", noteID)
	}

	n := rw.toDomain()
	return &n, nil
}

// ListByTopic returns a page of a topic's notes, newest first.
func (r *Repo) ListByTopic(ctx context.Context, userID, topicID uuid.UUID, filter domain.NoteFilter) (domain.Page[domain.Note], error) {
	where := squirrel.And{
		squirrel.Eq{"topic_id": topicID},
		squirrel.Eq{"user_id": userID},
	}
	if filter.IsSummary != nil {
		where = append(where, squirrel.Eq{"is_summary": *filter.IsSummary})
	}

	q := postgres.QuerierFromCtx(ctx, r.db)

	countSQL, countArgs, err := postgres.Builder().Select("count(*)").From(table).Where(where).ToSql()
	if err != nil {
		return domain.Page[domain.Note]{}, fmt.Errorf("build count notes query: %w", err)
	}

	var total int
	if err := q.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return domain.Page[domain.Note]{}, fmt.Errorf("count notes: %w", err)
	}

	query, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where(where).
		OrderBy("created_at DESC", "id").
		Limit(uint64(filter.Limit)).
		Offset(uint64(filter.Offset)).
		ToSql()
	if err != nil {
		return domain.Page[domain.Note]{}, fmt.Errorf("build list notes query: %w", err)
	}

	var rows []row
	if err := pgxscan.Select(ctx, q, &rows, query, args...); err != nil {
		return domain.Page[domain.Note]{}, fmt.Errorf("list notes: %w", err)
	}

	return domain.Page[domain.Note]{Items: toDomainSlice(rows), Total: total}, nil
}

// ListSourceNotes returns every non-summary note of a topic, oldest first.
// These are the notes fed to summary generation.
func (r *Repo) ListSourceNotes(ctx context.Context, userID, topicID uuid.UUID) ([]domain.Note, error) {
	query, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where(squirrel.Eq{"topic_id": topicID}).
		Where(squirrel.Eq{"user_id": userID}).
		Where(squirrel.Eq{"is_summary": false}).
		OrderBy("created_at", "id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build source notes query: %w", err)
	}

	var rows []row
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list source notes: %w", err)
	}

	return toDomainSlice(rows), nil
}

// Create inserts a note and returns it with generated id and timestamps.
func (r *Repo) Create(ctx context.Context, n *domain.Note) (*domain.Note, error) {
	id := n.ID
	if id == uuid.Nil {
		id = uuid.New()
	}

	query, args, err := postgres.Builder().
		Insert(table).
		Columns("id", "topic_id", "user_id", "title", "content", "is_summary").
		Values(id, n.TopicID, n.UserID, n.Title, n.Content, n.IsSummary).
		Suffix(returning).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert note query: %w", err)
	}

	var rw row
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &rw, query, args...); err != nil {
		return nil, postgres.MapError(err, "note", id)
	}

	created := rw.toDomain()
	return &created, nil
}

// Update sets the provided fields of a note and bumps updated_at.
// Nil fields are left unchanged.
func (r *Repo) Update(ctx context.Context, userID, noteID uuid.UUID, title, content *string) (*domain.Note, error) {
	b := postgres.Builder().Update(table)
	if title != nil {
		b = b.Set("title", *title)
	}
	if content != nil {
		b = b.Set("content", *content)
	}

	query, args, err := b.
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": noteID}).
		Where(squirrel.Eq{"user_id": userID}).
		Suffix(returning).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update note query: %w", err)
	}

	var rw row
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &rw, query, args...); err != nil {
		return nil, postgres.MapError(err, "note", noteID)
	}

	updated := rw.toDomain()
	return &updated, nil
}

// Delete removes a note owned by userID.
func (r *Repo) Delete(ctx context.Context, userID, noteID uuid.UUID) error {
	query, args, err := postgres.Builder().
		Delete(table).
		Where(squirrel.Eq{"id": noteID}).
		Where(squirrel.Eq{"user_id": userID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete note query: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, query, args...)
	if err != nil {
		return postgres.MapError(err, "note", noteID)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("note %s: %w", noteID, domain.ErrNotFound)
	}

	return nil
}
