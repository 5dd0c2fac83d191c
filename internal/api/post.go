package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/technest/technest/internal/content"
)

// postHandler serves the assembled page document for a single post
func (r *Router) postHandler(c *gin.Context) {
	slug := c.Param("slug")

	page, err := r.pipeline.Assemble(c.Request.Context(), slug)
	if err != nil {
		if errors.Is(err, content.ErrNotFound) {
			respondError(c, http.StatusNotFound, "post not found")
			return
		}
		r.logger.Error("page assembly failed", zap.String("slug", slug), zap.Error(err))
		respondError(c, http.StatusInternalServerError, "failed to assemble page")
		return
	}

	c.JSON(http.StatusOK, page)
}
