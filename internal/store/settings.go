package store

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"github.com/technest/technest/internal/cache"
	"github.com/technest/technest/internal/models"
	"github.com/technest/technest/pkg/logging"
)

const settingsCacheKey = "settings"

// SettingsLoader reads site settings once per request, with a
// short-lived Redis cache in front of the settings table.
type SettingsLoader struct {
	repo   *SettingRepository
	cache  *cache.Cache
	ttl    time.Duration
	logger *zap.Logger
}

// NewSettingsLoader creates a new settings loader
func NewSettingsLoader(repo *SettingRepository, redisCache *cache.Cache, ttl time.Duration) *SettingsLoader {
	return &SettingsLoader{
		repo:   repo,
		cache:  redisCache,
		ttl:    ttl,
		logger: logging.WithComponent("settings-loader"),
	}
}

// Load returns the current site settings, serving from cache when possible.
func (l *SettingsLoader) Load(ctx context.Context) (models.Settings, error) {
	if cached, err := l.cache.Get(settingsCacheKey); err == nil {
		var settings models.Settings
		if err := json.Unmarshal([]byte(cached), &settings); err == nil {
			return settings, nil
		}
		// Corrupt entry; drop it and fall through to the table
		_ = l.cache.Delete(settingsCacheKey)
	} else if !errors.Is(err, cache.ErrCacheDisabled) && !errors.Is(err, redis.Nil) {
		l.logger.Warn("settings cache read failed", zap.Error(err))
	}

	settings, err := l.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	if encoded, err := json.Marshal(settings); err == nil {
		if err := l.cache.Set(settingsCacheKey, encoded, l.ttl); err != nil && !errors.Is(err, cache.ErrCacheDisabled) {
			l.logger.Warn("settings cache write failed", zap.Error(err))
		}
	}

	return settings, nil
}

// Invalidate drops the cached settings after an admin-side update.
func (l *SettingsLoader) Invalidate() {
	if err := l.cache.Delete(settingsCacheKey); err != nil && !errors.Is(err, cache.ErrCacheDisabled) {
		l.logger.Warn("settings cache invalidation failed", zap.Error(err))
	}
}
