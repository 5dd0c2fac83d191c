package content

import (
	"strings"
	"time"

	"github.com/technest/technest/internal/models"
)

// PageMeta is the page-metadata contract handed to the renderer: the
// resolved title and description, the canonical URL, and the JSON-LD
// Article record embedded for search engines.
type PageMeta struct {
	Title         string        `json:"title"`
	Description   string        `json:"description"`
	Canonical     string        `json:"canonical"`
	Image         string        `json:"image,omitempty"`
	SiteName      string        `json:"site_name"`
	AllowIndexing bool          `json:"allow_indexing"`
	AnalyticsID   string        `json:"analytics_id,omitempty"`
	Article       ArticleSchema `json:"article"`
}

// ArticleSchema is a schema.org Article record
type ArticleSchema struct {
	Context       string       `json:"@context"`
	Type          string       `json:"@type"`
	Headline      string       `json:"headline"`
	Description   string       `json:"description,omitempty"`
	Image         string       `json:"image,omitempty"`
	DatePublished string       `json:"datePublished"`
	DateModified  string       `json:"dateModified"`
	Author        SchemaEntity `json:"author"`
	Publisher     SchemaEntity `json:"publisher"`
}

// SchemaEntity is a schema.org Organization or Person reference
type SchemaEntity struct {
	Type string       `json:"@type"`
	Name string       `json:"name"`
	Logo *SchemaImage `json:"logo,omitempty"`
}

// SchemaImage is a schema.org ImageObject reference
type SchemaImage struct {
	Type string `json:"@type"`
	URL  string `json:"url"`
}

// Placeholders understood by the title template setting.
const (
	titlePlaceholder = "{title}"
	sitePlaceholder  = "{site}"
)

// SynthesizeMeta derives the page metadata for a post from the site
// settings and the post's canonical path. It is a pure function of its
// inputs; timestamps are emitted as stored, including zero values from
// upstream data defects.
func SynthesizeMeta(post *models.Post, settings models.Settings, canonicalPath string) PageMeta {
	siteName := settings.SiteTitle()

	// Per-post SEO override, then the post title, then the site default.
	title := post.MetaTitle
	if title == "" {
		title = post.Title
	}
	if title == "" {
		title = siteName
	}
	if template := settings.Get(models.SettingTitleTemplate, ""); template != "" && siteName != "" && title != siteName {
		title = strings.ReplaceAll(template, titlePlaceholder, title)
		title = strings.ReplaceAll(title, sitePlaceholder, siteName)
	}

	description := post.MetaDescription
	if description == "" {
		description = post.Excerpt
	}
	if description == "" {
		description = settings.SiteDescription()
	}

	baseURL := settings.SiteURL()
	canonical := joinURL(baseURL, canonicalPath)

	published := post.CreatedAt
	if post.PublishedAt.Valid {
		published = post.PublishedAt.Time
	}

	return PageMeta{
		Title:         title,
		Description:   description,
		Canonical:     canonical,
		Image:         post.HeroImage,
		SiteName:      siteName,
		AllowIndexing: settings.GetBool(models.SettingAllowIndexing, true),
		AnalyticsID:   settings.Get(models.SettingAnalyticsID, ""),
		Article: ArticleSchema{
			Context:       "https://schema.org",
			Type:          "Article",
			Headline:      title,
			Description:   description,
			Image:         post.HeroImage,
			DatePublished: published.Format(time.RFC3339),
			DateModified:  post.UpdatedAt.Format(time.RFC3339),
			Author: SchemaEntity{
				Type: "Organization",
				Name: siteName,
			},
			Publisher: SchemaEntity{
				Type: "Organization",
				Name: siteName,
				Logo: &SchemaImage{
					Type: "ImageObject",
					URL:  joinURL(baseURL, "/logo.png"),
				},
			},
		},
	}
}

// joinURL concatenates a base URL and a path without doubling the
// separator between them.
func joinURL(baseURL, path string) string {
	if baseURL == "" {
		return path
	}
	if path == "" {
		return baseURL
	}
	return strings.TrimSuffix(baseURL, "/") + "/" + strings.TrimPrefix(path, "/")
}
