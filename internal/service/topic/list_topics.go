package topic

import (
	"context"
	"fmt"

	"github.com/heartmarshall/knowtes-backend/internal/domain"
	"github.com/heartmarshall/knowtes-backend/pkg/ctxutil"
)

// ListTopics returns a page of the caller's topics, newest first.
func (s *Service) ListTopics(ctx context.Context, input ListTopicsInput) (domain.Page[domain.Topic], error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.Page[domain.Topic]{}, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return domain.Page[domain.Topic]{}, err
	}

	limit, offset := domain.PageBounds(input.Limit, input.Offset)
	page, err := s.topics.List(ctx, userID, domain.TopicFilter{
		ParentID: input.ParentID,
		Limit:    limit,
		Offset:   offset,
	})
	if err != nil {
		return domain.Page[domain.Topic]{}, fmt.Errorf("topic.ListTopics: %w", err)
	}

	return page, nil
}
