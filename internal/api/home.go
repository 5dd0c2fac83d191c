package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// homeHandler serves the latest published posts
func (r *Router) homeHandler(c *gin.Context) {
	posts, err := r.posts.ListRecent(c.Request.Context(), r.cfg.Content.HomeLimit)
	if err != nil {
		r.logger.Error("recent post listing failed", zap.Error(err))
		respondError(c, http.StatusInternalServerError, "failed to load posts")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"posts": posts,
	})
}
