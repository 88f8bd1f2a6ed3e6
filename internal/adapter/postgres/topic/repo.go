// Package topic implements the Topic repository using PostgreSQL.
// Every operation is scoped to the owning user.
package topic

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

const table = "topics"

var (
	columns   = []string{"id", "user_id", "parent_id", "title", "created_at", "updated_at"}
	returning = "RETURNING " + strings.Join(columns, ", ")
)

// row mirrors a topics table row.
type row struct {
	ID        uuid.UUID  `db:"id"`
	UserID    uuid.UUID  `db:"user_id"`
	ParentID  *uuid.UUID `db:"parent_id"`
	Title     string     `db:"title"`
	CreatedAt time.Time  `db:"created_at"`
	UpdatedAt time.Time  `db:"updated_at"`
}

func (r row) toDomain() domain.Topic {
	return domain.Topic{
		ID:        r.ID,
		UserID:    r.UserID,
		ParentID:  r.ParentID,
		Title:     r.Title,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

// Repo provides topic persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new topic repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// GetByID returns a topic by primary key with user_id filter.
// Returns domain.ErrNotFound if the topic does not exist or belongs to another user.
func (r *Repo) GetByID(ctx context.Context, userID, topicID uuid.UUID) (*domain.Topic, error) {
	query, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where(squirrel.Eq{"id": topicID}).
		Where(squirrel.Eq{"user_id": userID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get topic query: %w", err)
	}

	var rw row
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &rw, query, args...); err != nil {
		return nil, postgres.MapError(err, "topic", topicID)
	}

	t := rw.toDomain()
	return &t, nil
}

// List returns a page of the user's topics, newest first. A non-nil
// filter.ParentID restricts the page to direct children of that topic.
func (r *Repo) List(ctx context.Context, userID uuid.UUID, filter domain.TopicFilter) (domain.Page[domain.Topic], error) {
	where := squirrel.And{squirrel.Eq{"user_id": userID}}
	if filter.ParentID != nil {
		where = append(where, squirrel.Eq{"parent_id": *filter.ParentID})
	}

	q := postgres.QuerierFromCtx(ctx, r.db)

	countSQL, countArgs, err := postgres.Builder().Select("count(*)").From(table).Where(where).ToSql()
	if err != nil {
		return domain.Page[domain.Topic]{}, fmt.Errorf("build count topics query: %w", err)
	}

	var total int
	if err := q.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return domain.Page[domain.Topic]{}, fmt.Errorf("count topics: %w", err)
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
		return domain.Page[domain.Topic]{}, fmt.Errorf("build list topics query: %w", err)
	}

	var rows []row
	if err := pgxscan.Select(ctx, q, &rows, query, args...); err != nil {
		return domain.Page[domain.Topic]{}, fmt.Errorf("list topics: %w", err)
	}

	items := make([]domain.Topic, len(rows))
	for i, rw := range rows {
		items[i] = rw.toDomain()
	}

	return domain.Page[domain.Topic]{Items: items, Total: total}, nil
}

// Create inserts a new topic and returns it with generated id and timestamps.
// A missing parent surfaces as domain.ErrNotFound.
func (r *Repo) Create(ctx context.Context, t *domain.Topic) (*domain.Topic, error) {
	id := t.ID
	if id == uuid.Nil {
		id = uuid.New()
	}

	query, args, err := postgres.Builder().
		Insert(table).
		Columns("id", "user_id", "parent_id", "title").
		Values(id, t.UserID, t.ParentID, t.Title).
		Suffix(returning).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert topic query: %w", err)
	}

	var rw row
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &rw, query, args...); err != nil {
		return nil, postgres.MapError(err, "topic", id)
	}

	created := rw.toDomain()
	return &created, nil
}

// Update changes the title of a topic and bumps updated_at.
// Returns domain.ErrNotFound if the topic does not exist or belongs to another user.
func (r *Repo) Update(ctx context.Context, userID, topicID uuid.UUID, title string) (*domain.Topic, error) {
	query, args, err := postgres.Builder().
		Update(table).
		Set("title", title).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": topicID}).
		Where(squirrel.Eq{"user_id": userID}).
		Suffix(returning).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update topic query: %w", err)
	}

	var rw row
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &rw, query, args...); err != nil {
		return nil, postgres.MapError(err, "topic", topicID)
	}

	updated := rw.toDomain()
	return &updated, nil
}

// Delete removes a topic. Notes, summary stats and child topics go with it
// through ON DELETE CASCADE.
// Returns domain.ErrNotFound if the topic does not exist or belongs to another user.
func (r *Repo) Delete(ctx context.Context, userID, topicID uuid.UUID) error {
	query, args, err := postgres.Builder().
		Delete(table).
		Where(squirrel.Eq{"id": topicID}).
		Where(squirrel.Eq{"user_id": userID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete topic query: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, query, args...)
	if err != nil {
		return postgres.MapError(err, "topic", topicID)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("topic %s: %w", topicID, domain.ErrNotFound)
	}

	return nil
}
