package store

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/technest/technest/internal/models"
)

// Repository provides database access methods
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new repository
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// PostRepository provides post-related database operations
type PostRepository struct {
	*Repository
}

// NewPostRepository creates a new post repository
func NewPostRepository(repo *Repository) *PostRepository {
	return &PostRepository{Repository: repo}
}

// preloadCategories loads the category links in insertion order so the
// first category is stable across reads.
func preloadCategories(db *gorm.DB) *gorm.DB {
	return db.Order("categories.id")
}

// GetBySlug retrieves a post by slug. When publishedOnly is set, drafts
// resolve to a miss.
func (r *PostRepository) GetBySlug(ctx context.Context, slug string, publishedOnly bool) (*models.Post, error) {
	query := r.db.WithContext(ctx).
		Preload("Categories", preloadCategories).
		Where("slug = ?", slug)
	if publishedOnly {
		query = query.Where("published = ?", true)
	}

	var post models.Post
	if err := query.First(&post).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &post, nil
}

// ListByCategory retrieves published posts linked to a category, most
// recently published first with id as the tie-break, excluding one post.
func (r *PostRepository) ListByCategory(ctx context.Context, categoryID, excludePostID int64, limit int) ([]models.Post, error) {
	var posts []models.Post
	err := r.db.WithContext(ctx).
		Joins("JOIN post_categories ON post_categories.post_id = posts.id").
		Where("post_categories.category_id = ?", categoryID).
		Where("posts.published = ?", true).
		Where("posts.id <> ?", excludePostID).
		Order("posts.published_at DESC, posts.id DESC").
		Limit(limit).
		Find(&posts).Error
	if err != nil {
		return nil, err
	}
	return posts, nil
}

// ListRecent retrieves the most recently published posts
func (r *PostRepository) ListRecent(ctx context.Context, limit int) ([]models.Post, error) {
	var posts []models.Post
	err := r.db.WithContext(ctx).
		Preload("Categories", preloadCategories).
		Where("published = ?", true).
		Order("published_at DESC, id DESC").
		Limit(limit).
		Find(&posts).Error
	if err != nil {
		return nil, err
	}
	return posts, nil
}

// ListPublishedSlugs retrieves the slugs of all published posts with
// their last-modified times, for sitemap generation.
func (r *PostRepository) ListPublishedSlugs(ctx context.Context) ([]models.Post, error) {
	var posts []models.Post
	err := r.db.WithContext(ctx).
		Select("slug", "updated_at").
		Where("published = ?", true).
		Order("published_at DESC, id DESC").
		Find(&posts).Error
	if err != nil {
		return nil, err
	}
	return posts, nil
}

// CategoryRepository provides category-related database operations
type CategoryRepository struct {
	*Repository
}

// NewCategoryRepository creates a new category repository
func NewCategoryRepository(repo *Repository) *CategoryRepository {
	return &CategoryRepository{Repository: repo}
}

// GetBySlug retrieves a category by slug
func (r *CategoryRepository) GetBySlug(ctx context.Context, slug string) (*models.Category, error) {
	var category models.Category
	if err := r.db.WithContext(ctx).Where("slug = ?", slug).First(&category).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &category, nil
}

// AffiliateRepository provides affiliate-related database operations
type AffiliateRepository struct {
	*Repository
}

// NewAffiliateRepository creates a new affiliate repository
func NewAffiliateRepository(repo *Repository) *AffiliateRepository {
	return &AffiliateRepository{Repository: repo}
}

// List retrieves all affiliates
func (r *AffiliateRepository) List(ctx context.Context) ([]models.Affiliate, error) {
	var affiliates []models.Affiliate
	if err := r.db.WithContext(ctx).Order("id").Find(&affiliates).Error; err != nil {
		return nil, err
	}
	return affiliates, nil
}

// SettingRepository provides settings-related database operations
type SettingRepository struct {
	*Repository
}

// NewSettingRepository creates a new setting repository
func NewSettingRepository(repo *Repository) *SettingRepository {
	return &SettingRepository{Repository: repo}
}

// GetAll loads the settings table into a flat map
func (r *SettingRepository) GetAll(ctx context.Context) (models.Settings, error) {
	var rows []models.Setting
	if err := r.db.WithContext(ctx).Find(&rows).Error; err != nil {
		return nil, err
	}
	settings := make(models.Settings, len(rows))
	for _, row := range rows {
		settings[row.Key] = row.Value
	}
	return settings, nil
}
