package summary

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/knowtes-backend/internal/adapter/provider/openrouter"
	"github.com/heartmarshall/knowtes-backend/internal/domain"
	"github.com/heartmarshall/knowtes-backend/pkg/ctxutil"
)

const reasonNoNotes = "No notes found to summarize"

// Generate drafts a summary of an owned topic's regular notes and records a
// pending stat for it. The draft itself is not stored; the client sends it
// back on Accept.
func (s *Service) Generate(ctx context.Context, topicID uuid.UUID) (*GenerateResult, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if _, err := s.topics.GetByID(ctx, userID, topicID); err != nil {
		return nil, fmt.Errorf("summary.Generate get topic: %w", err)
	}

	notes, err := s.notes.ListSourceNotes(ctx, userID, topicID)
	if err != nil {
		return nil, fmt.Errorf("summary.Generate list notes: %w", err)
	}
	if len(notes) == 0 {
		return nil, domain.NewStateError(reasonNoNotes)
	}

	stat, err := s.stats.Create(ctx, &domain.SummaryStat{
		UserID:  userID,
		TopicID: topicID,
	})
	if err != nil {
		return nil, fmt.Errorf("summary.Generate create stat: %w", err)
	}

	req := openrouter.SummaryRequest{Parts: formatNotes(notes)}
	if s.cfg.MaxTokens > 0 {
		req.MaxTokens = &s.cfg.MaxTokens
	}

	draft, err := s.ai.GenerateSummary(ctx, req)
	if err != nil {
		s.discardStat(ctx, userID, stat.ID)
		return nil, fmt.Errorf("summary.Generate: %w", err)
	}

	s.log.InfoContext(ctx, "summary generated",
		slog.String("user_id", userID.String()),
		slog.String("topic_id", topicID.String()),
		slog.String("summary_stat_id", stat.ID.String()),
		slog.Int("notes", len(notes)),
	)

	return &GenerateResult{
		SummaryStatID: stat.ID,
		Title:         draft.Title,
		Content:       draft.Content,
	}, nil
}

// discardStat removes a stat whose generation failed. The caller's request
// may already be cancelled, so the delete runs detached from it.
func (s *Service) discardStat(ctx context.Context, userID, statID uuid.UUID) {
	if err := s.stats.Delete(context.WithoutCancel(ctx), userID, statID); err != nil {
		s.log.ErrorContext(ctx, "failed to discard summary stat",
			slog.String("summary_stat_id", statID.String()),
			slog.String("error", err.Error()),
		)
	}
}

func formatNotes(notes []domain.Note) []string {
	parts := make([]string, 0, len(notes))
	for _, n := range notes {
		parts = append(parts, fmt.Sprintf("Title: %s\nContent: %s", n.Title, n.Content))
	}
	return parts
}
