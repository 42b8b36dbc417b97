package repositories

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/css-society/events-api/internal/logger"
	"github.com/css-society/events-api/internal/models"
)

// CatalogCacheRepository caches merged per-section event lists in Redis.
type CatalogCacheRepository struct {
	client *redis.Client
	exp    time.Duration
}

// NewCatalogCacheRepository creates a new cache repository with the given TTL.
func NewCatalogCacheRepository(client *redis.Client, expiration time.Duration) *CatalogCacheRepository {
	return &CatalogCacheRepository{
		client: client,
		exp:    expiration,
	}
}

func sectionKey(section string) string {
	return fmt.Sprintf("catalog:%s", section)
}

// GetSection returns the cached list for a section, or nil on a miss.
func (r *CatalogCacheRepository) GetSection(ctx context.Context, section string) ([]models.EventDB, error) {
	key := sectionKey(section)

	val, err := r.client.Get(ctx, key).Result()
	if err != nil {
		logger.Log.Infow(
			"key", key,
			"result", val,
			"error", err,
		)
		if err == redis.Nil {
			return nil, nil
		}
		return nil, err
	}

	var events []models.EventDB
	if err := json.Unmarshal([]byte(val), &events); err != nil {
		logger.Log.Infow(
			"key", key,
			"result", 0,
			"error", err,
		)
		return nil, err
	}

	logger.Log.Infow(
		"key", key,
		"result", len(events),
		"error", nil,
	)

	return events, nil
}

// SetSection caches a section's merged list with the configured TTL.
func (r *CatalogCacheRepository) SetSection(ctx context.Context, section string, events []models.EventDB) error {
	key := sectionKey(section)

	data, err := json.Marshal(events)
	if err != nil {
		return err
	}

	err = r.client.Set(ctx, key, data, r.exp).Err()

	logger.Log.Infow(
		"key", key,
		"count", len(events),
		"result", "ok",
		"error", err,
	)

	return err
}

// InvalidateAll drops every section's cache entry.
func (r *CatalogCacheRepository) InvalidateAll(ctx context.Context) error {
	keys := make([]string, 0, len(models.Sections()))
	for _, s := range models.Sections() {
		keys = append(keys, sectionKey(s))
	}

	err := r.client.Del(ctx, keys...).Err()

	logger.Log.Infow(
		"keys", keys,
		"result", "ok",
		"error", err,
	)

	return err
}
