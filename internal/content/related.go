package content

import (
	"context"

	"go.uber.org/zap"

	"github.com/technest/technest/internal/models"
	"github.com/technest/technest/pkg/logging"
)

// Selector picks sibling posts sharing a post's primary category. When
// the primary store yields nothing, or errors, it degrades to the
// built-in sample pool instead of an empty section.
type Selector struct {
	source   Source
	fallback *SamplePool
	limit    int
	logger   *zap.Logger
}

// NewSelector creates a related-content selector
func NewSelector(source Source, fallback *SamplePool, limit int) *Selector {
	return &Selector{
		source:   source,
		fallback: fallback,
		limit:    limit,
		logger:   logging.WithComponent("related-selector"),
	}
}

// Select returns up to the configured number of published posts sharing
// the source post's primary category, never including the source post.
// A post with no categories gets an empty result with no fallback.
func (s *Selector) Select(ctx context.Context, post *models.Post) []models.Post {
	primary := post.PrimaryCategory()
	if primary == nil {
		return nil
	}

	related, err := s.source.ListPostsByCategory(ctx, primary.ID, post.ID, s.limit)
	if err != nil {
		s.logger.Warn("related-content query failed, using sample pool",
			zap.String("slug", post.Slug),
			zap.Error(err))
		related = nil
	}
	related = excludeSource(related, post)
	if len(related) > 0 {
		if len(related) > s.limit {
			related = related[:s.limit]
		}
		return related
	}

	return s.fallback.PostsByCategory(primary.Slug, post.ID, post.Slug, s.limit)
}

// excludeSource drops the source post from a candidate list. The store
// is asked to exclude it already; this guards against a misbehaving
// backend echoing it back.
func excludeSource(candidates []models.Post, source *models.Post) []models.Post {
	filtered := make([]models.Post, 0, len(candidates))
	for _, candidate := range candidates {
		if candidate.ID == source.ID || candidate.Slug == source.Slug {
			continue
		}
		filtered = append(filtered, candidate)
	}
	return filtered
}
