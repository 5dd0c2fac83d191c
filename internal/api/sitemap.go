package api

import (
	"bytes"
	"encoding/xml"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/technest/technest/internal/models"
)

type sitemapURLSet struct {
	XMLName xml.Name     `xml:"urlset"`
	XMLNS   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

type sitemapURL struct {
	Loc        string `xml:"loc"`
	LastMod    string `xml:"lastmod,omitempty"`
	ChangeFreq string `xml:"changefreq,omitempty"`
}

// sitemapHandler serves the sitemap of published posts
func (r *Router) sitemapHandler(c *gin.Context) {
	ctx := c.Request.Context()

	settings, err := r.settings.Load(ctx)
	if err != nil {
		r.logger.Warn("settings load failed for sitemap", zap.Error(err))
		settings = models.Settings{}
	}
	base := settings.Get(models.SettingSiteURL, r.cfg.Site.BaseURL)
	freq := settings.Get(models.SettingSitemapFreq, "weekly")

	posts, err := r.posts.ListPublishedSlugs(ctx)
	if err != nil {
		r.logger.Error("slug listing failed for sitemap", zap.Error(err))
		respondError(c, http.StatusInternalServerError, "failed to build sitemap")
		return
	}

	urls := []sitemapURL{
		{Loc: base, ChangeFreq: freq},
	}
	for _, post := range posts {
		urls = append(urls, sitemapURL{
			Loc:        strings.TrimSuffix(base, "/") + "/blog/" + post.Slug,
			LastMod:    post.UpdatedAt.Format(time.RFC3339),
			ChangeFreq: freq,
		})
	}

	var buf bytes.Buffer
	buf.WriteString(xml.Header)
	if err := xml.NewEncoder(&buf).Encode(sitemapURLSet{
		XMLNS: "http://www.sitemaps.org/schemas/sitemap/0.9",
		URLs:  urls,
	}); err != nil {
		r.logger.Error("sitemap encoding failed", zap.Error(err))
		respondError(c, http.StatusInternalServerError, "failed to build sitemap")
		return
	}
	c.Data(http.StatusOK, "application/xml; charset=utf-8", buf.Bytes())
}
