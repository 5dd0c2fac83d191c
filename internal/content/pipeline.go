package content

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/technest/technest/internal/models"
	"github.com/technest/technest/pkg/config"
	"github.com/technest/technest/pkg/logging"
	"github.com/technest/technest/pkg/telemetry"
)

// ErrNotFound reports that no published post matches the requested slug.
var ErrNotFound = errors.New("post not found")

// Source is the read contract the pipeline has on the content store.
// Misses return (nil, nil); errors are reserved for store failures.
type Source interface {
	GetPostBySlug(ctx context.Context, slug string, publishedOnly bool) (*models.Post, error)
	ListAffiliates(ctx context.Context) ([]models.Affiliate, error)
	ListPostsByCategory(ctx context.Context, categoryID, excludePostID int64, limit int) ([]models.Post, error)
	GetSettings(ctx context.Context) (models.Settings, error)
}

// Page is the assembled page document handed to the external renderer.
type Page struct {
	Post     *models.Post  `json:"post"`
	Body     string        `json:"body"`
	Meta     PageMeta      `json:"meta"`
	Related  []models.Post `json:"related"`
	ReadTime int           `json:"read_time"`
	Headings []Heading     `json:"headings"`
}

// Pipeline assembles a published page from a requested slug: it
// resolves the post, rewrites affiliate shortcodes, synthesizes the SEO
// metadata, and selects related content. Each invocation is
// request-scoped; the pipeline performs no writes and keeps no state
// between invocations.
type Pipeline struct {
	source         Source
	related        *Selector
	defaults       models.Settings
	wordsPerMinute int
	logger         *zap.Logger
}

// NewPipeline creates a publication pipeline
func NewPipeline(source Source, fallback *SamplePool, contentCfg *config.ContentConfig, siteCfg *config.SiteConfig) *Pipeline {
	return &Pipeline{
		source:         source,
		related:        NewSelector(source, fallback, contentCfg.RelatedLimit),
		defaults:       defaultSettings(siteCfg),
		wordsPerMinute: contentCfg.ReadWordsPerMin,
		logger:         logging.WithComponent("pipeline"),
	}
}

// defaultSettings builds the settings used when the settings table is
// unreachable, so a store outage never blocks the article itself.
func defaultSettings(siteCfg *config.SiteConfig) models.Settings {
	return models.Settings{
		models.SettingSiteTitle:       siteCfg.Title,
		models.SettingSiteDescription: siteCfg.Description,
		models.SettingSiteURL:         siteCfg.BaseURL,
	}
}

// Assemble builds the page document for a slug. Unknown slugs and
// unpublished posts yield ErrNotFound; failures in the enrichment reads
// (affiliates, settings, related posts) degrade to empty or default
// sections rather than failing the page.
func (p *Pipeline) Assemble(ctx context.Context, slug string) (*Page, error) {
	ctx, span := telemetry.StartSpan(ctx, "pipeline.assemble")
	defer span.End()

	post, err := p.source.GetPostBySlug(ctx, slug, true)
	if err != nil {
		// A failed primary lookup is indistinguishable from a miss to
		// the reader.
		p.logger.Error("post lookup failed", zap.String("slug", slug), zap.Error(err))
		return nil, ErrNotFound
	}
	if post == nil {
		return nil, ErrNotFound
	}

	var (
		affiliates []models.Affiliate
		settings   models.Settings
		related    []models.Post
	)

	// The enrichment reads target disjoint entities, so they fan out
	// concurrently. Each one swallows its own failure.
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		list, err := p.source.ListAffiliates(gctx)
		if err != nil {
			p.logger.Warn("affiliate load failed, shortcodes left verbatim",
				zap.String("slug", slug), zap.Error(err))
			return nil
		}
		affiliates = list
		return nil
	})
	g.Go(func() error {
		loaded, err := p.source.GetSettings(gctx)
		if err != nil {
			p.logger.Warn("settings load failed, using configured defaults",
				zap.String("slug", slug), zap.Error(err))
			return nil
		}
		settings = loaded
		return nil
	})
	g.Go(func() error {
		related = p.related.Select(gctx, post)
		return nil
	})
	_ = g.Wait()

	if settings == nil {
		settings = p.defaults
	}

	body := ResolveShortcodes(post.Body, affiliates)

	return &Page{
		Post:     post,
		Body:     body,
		Meta:     SynthesizeMeta(post, settings, "/blog/"+post.Slug),
		Related:  related,
		ReadTime: ReadTime(body, p.wordsPerMinute),
		Headings: HeadingIndex(body),
	}, nil
}
