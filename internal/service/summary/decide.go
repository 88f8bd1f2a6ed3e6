package summary

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/knowtes-backend/internal/domain"
	"github.com/heartmarshall/knowtes-backend/pkg/ctxutil"
)

const reasonAlreadyAccepted = "Summary already accepted"

// Accept stores the draft as a summary note and marks the stat accepted.
// Both writes share one transaction.
func (s *Service) Accept(ctx context.Context, input AcceptInput) (*AcceptResult, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}
	input = input.normalize()

	var result AcceptResult
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		if _, err := s.lockPending(ctx, userID, input.TopicID, input.SummaryStatID); err != nil {
			return err
		}

		note, err := s.notes.Create(ctx, &domain.Note{
			TopicID:   input.TopicID,
			UserID:    userID,
			Title:     input.Title,
			Content:   input.Content,
			IsSummary: true,
		})
		if err != nil {
			return fmt.Errorf("create note: %w", err)
		}

		stat, err := s.stats.MarkAccepted(ctx, userID, input.SummaryStatID, note.ID)
		if err != nil {
			return fmt.Errorf("mark accepted: %w", err)
		}

		result = AcceptResult{Stat: *stat, Note: *note}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("summary.Accept: %w", err)
	}

	s.log.InfoContext(ctx, "summary accepted",
		slog.String("user_id", userID.String()),
		slog.String("topic_id", input.TopicID.String()),
		slog.String("summary_stat_id", result.Stat.ID.String()),
		slog.String("note_id", result.Note.ID.String()),
	)

	return &result, nil
}

// Reject discards a pending summary by deleting its stat.
func (s *Service) Reject(ctx context.Context, input RejectInput) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return err
	}

	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		if _, err := s.lockPending(ctx, userID, input.TopicID, input.SummaryStatID); err != nil {
			return err
		}
		if err := s.stats.Delete(ctx, userID, input.SummaryStatID); err != nil {
			return fmt.Errorf("delete stat: %w", err)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("summary.Reject: %w", err)
	}

	s.log.InfoContext(ctx, "summary rejected",
		slog.String("user_id", userID.String()),
		slog.String("topic_id", input.TopicID.String()),
		slog.String("summary_stat_id", input.SummaryStatID.String()),
	)

	return nil
}

// lockPending loads and row-locks a stat, checking that the topic is owned,
// the stat belongs to that topic, and it is still pending.
func (s *Service) lockPending(ctx context.Context, userID, topicID, statID uuid.UUID) (*domain.SummaryStat, error) {
	if _, err := s.topics.GetByID(ctx, userID, topicID); err != nil {
		return nil, fmt.Errorf("get topic: %w", err)
	}

	stat, err := s.stats.GetForUpdate(ctx, userID, statID)
	if err != nil {
		return nil, fmt.Errorf("get stat: %w", err)
	}
	if stat.TopicID != topicID {
		return nil, fmt.Errorf("get stat: %w", domain.ErrNotFound)
	}
	if !stat.IsPending() {
		return nil, domain.NewStateError(reasonAlreadyAccepted)
	}

	return stat, nil
}
