package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sbilibin2017/gw-expense-tracker/internal/logger"
	"github.com/sbilibin2017/gw-expense-tracker/internal/models"
)

// ErrCacheMiss is returned when the requested key is not cached.
var ErrCacheMiss = errors.New("not found in cache")

// CategoryCacheRepository caches lookup lists in Redis
type CategoryCacheRepository struct {
	client *redis.Client
	exp    time.Duration // expiration duration for cached lists
}

// NewCategoryCacheRepository creates a new repository instance
func NewCategoryCacheRepository(client *redis.Client, expiration time.Duration) *CategoryCacheRepository {
	return &CategoryCacheRepository{
		client: client,
		exp:    expiration,
	}
}

// ListByKind returns the cached lookup list for a ledger.
func (r *CategoryCacheRepository) ListByKind(ctx context.Context, kind models.Kind) ([]models.CategoryDB, error) {
	key := cacheKey(kind)

	val, err := r.client.Get(ctx, key).Bytes()
	if err != nil {
		logger.Log.Infow(
			"key", key,
			"result", nil,
			"error", err,
		)
		if errors.Is(err, redis.Nil) {
			return nil, ErrCacheMiss
		}
		return nil, err
	}

	var categories []models.CategoryDB
	if err := json.Unmarshal(val, &categories); err != nil {
		logger.Log.Infow(
			"key", key,
			"value", string(val),
			"result", nil,
			"error", err,
		)
		return nil, err
	}

	logger.Log.Infow(
		"key", key,
		"result", len(categories),
		"error", nil,
	)

	return categories, nil
}

// SetByKind caches a lookup list with expiration.
func (r *CategoryCacheRepository) SetByKind(ctx context.Context, kind models.Kind, categories []models.CategoryDB) error {
	key := cacheKey(kind)

	data, err := json.Marshal(categories)
	if err != nil {
		return err
	}
	err = r.client.Set(ctx, key, data, r.exp).Err()

	logger.Log.Infow(
		"key", key,
		"result", len(categories),
		"error", err,
	)

	return err
}

func cacheKey(kind models.Kind) string {
	return fmt.Sprintf("categories:%s", kind)
}
