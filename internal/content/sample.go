package content

import (
	"database/sql"
	"time"

	"github.com/technest/technest/internal/models"
)

// SamplePool is the built-in demo content served when the primary store
// has nothing for a query, so a fresh or unreachable deployment never
// renders an empty related section.
type SamplePool struct {
	posts []models.Post
}

// NewSamplePool creates the fixture pool
func NewSamplePool() *SamplePool {
	return &SamplePool{posts: samplePosts()}
}

// PostsByCategory returns up to limit sample posts linked to the named
// category, excluding the source post. The pool is pre-sorted newest
// first, so selection order is deterministic.
func (p *SamplePool) PostsByCategory(categorySlug string, excludePostID int64, excludeSlug string, limit int) []models.Post {
	if limit <= 0 {
		return nil
	}
	var matched []models.Post
	for _, post := range p.posts {
		if post.ID == excludePostID || post.Slug == excludeSlug {
			continue
		}
		if !p.inCategory(&post, categorySlug) {
			continue
		}
		matched = append(matched, post)
		if len(matched) == limit {
			break
		}
	}
	return matched
}

func (p *SamplePool) inCategory(post *models.Post, categorySlug string) bool {
	for _, category := range post.Categories {
		if category.Slug == categorySlug {
			return true
		}
	}
	return false
}

func publishedAt(value string) sql.NullTime {
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: t, Valid: true}
}

func samplePosts() []models.Post {
	keyboards := models.Category{ID: 9101, Name: "Keyboards", Slug: "keyboards"}
	audio := models.Category{ID: 9102, Name: "Audio", Slug: "audio"}
	accessories := models.Category{ID: 9103, Name: "Accessories", Slug: "accessories"}

	return []models.Post{
		{
			ID:          9001,
			Slug:        "nuphy-air75-v2-review",
			Title:       "NuPhy Air75 V2: The Low-Profile King Gets Better",
			Excerpt:     "Gasket-mounted low-profile switches in a board thin enough to travel with.",
			Published:   true,
			PublishedAt: publishedAt("2025-11-18T09:00:00Z"),
			Categories:  []models.Category{keyboards},
			Review: models.Review{
				HasReview:   true,
				Rating:      8.5,
				ProductName: "NuPhy Air75 V2",
			},
		},
		{
			ID:          9002,
			Slug:        "royal-kludge-r65-budget-pick",
			Title:       "Royal Kludge R65: Our Budget Keyboard Pick",
			Excerpt:     "A hot-swappable 65% board that undercuts everything else we tested.",
			Published:   true,
			PublishedAt: publishedAt("2025-10-02T09:00:00Z"),
			Categories:  []models.Category{keyboards},
		},
		{
			ID:          9003,
			Slug:        "sony-wh1000xm5-long-term",
			Title:       "Sony WH-1000XM5, Eighteen Months Later",
			Excerpt:     "How the class-leading noise cancellers hold up after daily commuting.",
			Published:   true,
			PublishedAt: publishedAt("2025-09-12T09:00:00Z"),
			Categories:  []models.Category{audio},
		},
		{
			ID:          9004,
			Slug:        "desk-mat-roundup-2025",
			Title:       "The Desk Mat Roundup",
			Excerpt:     "Twelve mats, one winner, and a surprising amount of stitching talk.",
			Published:   true,
			PublishedAt: publishedAt("2025-08-25T09:00:00Z"),
			Categories:  []models.Category{accessories, keyboards},
		},
	}
}
