package store

import (
	"context"

	"github.com/technest/technest/internal/models"
)

// ContentSource bundles the read surface the publication pipeline
// needs, backed by the primary database with cached settings.
type ContentSource struct {
	posts      *PostRepository
	affiliates *AffiliateRepository
	settings   *SettingsLoader
}

// NewContentSource creates a content source over a repository
func NewContentSource(repo *Repository, settings *SettingsLoader) *ContentSource {
	return &ContentSource{
		posts:      NewPostRepository(repo),
		affiliates: NewAffiliateRepository(repo),
		settings:   settings,
	}
}

// GetPostBySlug retrieves a post by slug
func (s *ContentSource) GetPostBySlug(ctx context.Context, slug string, publishedOnly bool) (*models.Post, error) {
	return s.posts.GetBySlug(ctx, slug, publishedOnly)
}

// ListAffiliates retrieves all affiliates
func (s *ContentSource) ListAffiliates(ctx context.Context) ([]models.Affiliate, error) {
	return s.affiliates.List(ctx)
}

// ListPostsByCategory retrieves published posts in a category, excluding one post
func (s *ContentSource) ListPostsByCategory(ctx context.Context, categoryID, excludePostID int64, limit int) ([]models.Post, error) {
	return s.posts.ListByCategory(ctx, categoryID, excludePostID, limit)
}

// GetSettings retrieves the site settings
func (s *ContentSource) GetSettings(ctx context.Context) (models.Settings, error) {
	return s.settings.Load(ctx)
}
