package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// categoryHandler serves a category index: the category record plus its
// published posts, newest first.
func (r *Router) categoryHandler(c *gin.Context) {
	slug := c.Param("slug")
	ctx := c.Request.Context()

	category, err := r.categories.GetBySlug(ctx, slug)
	if err != nil {
		r.logger.Error("category lookup failed", zap.String("slug", slug), zap.Error(err))
		respondError(c, http.StatusInternalServerError, "failed to load category")
		return
	}
	if category == nil {
		respondError(c, http.StatusNotFound, "category not found")
		return
	}

	posts, err := r.posts.ListByCategory(ctx, category.ID, 0, r.cfg.Content.HomeLimit)
	if err != nil {
		r.logger.Warn("category post listing failed", zap.String("slug", slug), zap.Error(err))
		posts = nil
	}

	c.JSON(http.StatusOK, gin.H{
		"category": category,
		"posts":    posts,
	})
}
