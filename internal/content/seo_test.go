package content

import (
	"database/sql"
	"testing"
	"time"

	"github.com/technest/technest/internal/models"
)

func testSettings() models.Settings {
	return models.Settings{
		models.SettingSiteTitle:       "TechNest",
		models.SettingSiteDescription: "Honest reviews of the tech that matters",
		models.SettingSiteURL:         "https://technest.dev",
	}
}

func TestSynthesizeMeta_TitleResolution(t *testing.T) {
	tests := []struct {
		name      string
		metaTitle string
		title     string
		template  string
		expected  string
	}{
		{
			name:      "meta title wins",
			metaTitle: "Keychron Q1 Pro Review (2026)",
			title:     "Keychron Q1 Pro Review",
			expected:  "Keychron Q1 Pro Review (2026)",
		},
		{
			name:     "falls back to post title",
			title:    "Keychron Q1 Pro Review",
			expected: "Keychron Q1 Pro Review",
		},
		{
			name:     "falls back to site title",
			expected: "TechNest",
		},
		{
			name:     "template embeds site name",
			title:    "Keychron Q1 Pro Review",
			template: "{title} | {site}",
			expected: "Keychron Q1 Pro Review | TechNest",
		},
		{
			name:     "template skipped when title is already the site title",
			template: "{title} | {site}",
			expected: "TechNest",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			post := &models.Post{
				MetaTitle: tt.metaTitle,
				Title:     tt.title,
			}
			settings := testSettings()
			if tt.template != "" {
				settings[models.SettingTitleTemplate] = tt.template
			}

			meta := SynthesizeMeta(post, settings, "/blog/test")
			if meta.Title != tt.expected {
				t.Errorf("Title = %q, want %q", meta.Title, tt.expected)
			}
		})
	}
}

func TestSynthesizeMeta_DescriptionResolution(t *testing.T) {
	tests := []struct {
		name            string
		metaDescription string
		excerpt         string
		expected        string
	}{
		{
			name:            "meta description wins",
			metaDescription: "Hand-tuned description",
			excerpt:         "The excerpt",
			expected:        "Hand-tuned description",
		},
		{
			name:     "falls back to excerpt",
			excerpt:  "The excerpt",
			expected: "The excerpt",
		},
		{
			name:     "falls back to site description",
			expected: "Honest reviews of the tech that matters",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			post := &models.Post{
				Title:           "Test",
				MetaDescription: tt.metaDescription,
				Excerpt:         tt.excerpt,
			}

			meta := SynthesizeMeta(post, testSettings(), "/blog/test")
			if meta.Description != tt.expected {
				t.Errorf("Description = %q, want %q", meta.Description, tt.expected)
			}
		})
	}
}

func TestSynthesizeMeta_CanonicalURL(t *testing.T) {
	tests := []struct {
		name     string
		baseURL  string
		path     string
		expected string
	}{
		{
			name:     "plain join",
			baseURL:  "https://technest.dev",
			path:     "/blog/test",
			expected: "https://technest.dev/blog/test",
		},
		{
			name:     "trailing slash not doubled",
			baseURL:  "https://technest.dev/",
			path:     "/blog/test",
			expected: "https://technest.dev/blog/test",
		},
		{
			name:     "missing leading slash handled",
			baseURL:  "https://technest.dev",
			path:     "blog/test",
			expected: "https://technest.dev/blog/test",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			settings := testSettings()
			settings[models.SettingSiteURL] = tt.baseURL

			meta := SynthesizeMeta(&models.Post{Title: "Test"}, settings, tt.path)
			if meta.Canonical != tt.expected {
				t.Errorf("Canonical = %q, want %q", meta.Canonical, tt.expected)
			}
		})
	}
}

func TestSynthesizeMeta_ArticleDates(t *testing.T) {
	created := time.Date(2026, 1, 10, 8, 0, 0, 0, time.UTC)
	updated := time.Date(2026, 2, 1, 9, 30, 0, 0, time.UTC)
	published := time.Date(2026, 1, 15, 12, 0, 0, 0, time.UTC)

	post := &models.Post{
		Title:       "Test",
		CreatedAt:   created,
		UpdatedAt:   updated,
		PublishedAt: sql.NullTime{Time: published, Valid: true},
	}

	meta := SynthesizeMeta(post, testSettings(), "/blog/test")
	if meta.Article.DatePublished != "2026-01-15T12:00:00Z" {
		t.Errorf("DatePublished = %q, want published_at", meta.Article.DatePublished)
	}
	if meta.Article.DateModified != "2026-02-01T09:30:00Z" {
		t.Errorf("DateModified = %q, want updated_at", meta.Article.DateModified)
	}

	// Without published_at, created_at stands in.
	post.PublishedAt = sql.NullTime{}
	meta = SynthesizeMeta(post, testSettings(), "/blog/test")
	if meta.Article.DatePublished != "2026-01-10T08:00:00Z" {
		t.Errorf("DatePublished = %q, want created_at fallback", meta.Article.DatePublished)
	}
}

func TestSynthesizeMeta_Publisher(t *testing.T) {
	meta := SynthesizeMeta(&models.Post{Title: "Test"}, testSettings(), "/blog/test")

	if meta.Article.Publisher.Name != "TechNest" {
		t.Errorf("Publisher.Name = %q, want site title", meta.Article.Publisher.Name)
	}
	if meta.Article.Publisher.Logo == nil || meta.Article.Publisher.Logo.URL != "https://technest.dev/logo.png" {
		t.Errorf("Publisher.Logo = %+v, want logo URL derived from base URL", meta.Article.Publisher.Logo)
	}
	if meta.Article.Context != "https://schema.org" || meta.Article.Type != "Article" {
		t.Errorf("unexpected schema envelope: %q %q", meta.Article.Context, meta.Article.Type)
	}
}
