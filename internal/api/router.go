package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/technest/technest/internal/cache"
	"github.com/technest/technest/internal/content"
	"github.com/technest/technest/internal/store"
	"github.com/technest/technest/pkg/config"
	"github.com/technest/technest/pkg/logging"
)

// Router sets up the public page routes
type Router struct {
	pipeline   *content.Pipeline
	posts      *store.PostRepository
	categories *store.CategoryRepository
	settings   *store.SettingsLoader
	db         *store.DB
	cache      *cache.Cache
	cfg        *config.Config
	logger     *zap.Logger
}

// NewRouter creates a new router
func NewRouter(database *store.DB, redisCache *cache.Cache, pipeline *content.Pipeline, settings *store.SettingsLoader, cfg *config.Config) *Router {
	repo := store.NewRepository(database.DB)
	return &Router{
		pipeline:   pipeline,
		posts:      store.NewPostRepository(repo),
		categories: store.NewCategoryRepository(repo),
		settings:   settings,
		db:         database,
		cache:      redisCache,
		cfg:        cfg,
		logger:     logging.WithComponent("api-router"),
	}
}

// SetupRoutes sets up all routes
func (r *Router) SetupRoutes(engine *gin.Engine) {
	// Health check endpoints
	engine.GET("/health", r.healthHandler)
	engine.GET("/.well-known/healthcheck.json", r.healthHandler)

	// Public page documents
	engine.GET("/", r.homeHandler)
	engine.GET("/blog/:slug", r.postHandler)
	engine.GET("/category/:slug", r.categoryHandler)
	engine.GET("/sitemap.xml", r.sitemapHandler)
}

func (r *Router) healthHandler(c *gin.Context) {
	status := http.StatusOK
	health := gin.H{
		"status":  "OK",
		"service": "technest",
	}

	if err := r.db.Health(c.Request.Context()); err != nil {
		status = http.StatusServiceUnavailable
		health["status"] = "DEGRADED"
		health["database"] = err.Error()
	}

	if err := r.cache.Health(c.Request.Context()); err != nil && err != cache.ErrCacheDisabled {
		health["cache"] = err.Error()
	}

	c.JSON(status, health)
}
