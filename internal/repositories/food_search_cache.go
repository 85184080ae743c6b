package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sbilibin2017/insighteats/internal/logger"
	"github.com/sbilibin2017/insighteats/internal/models"
)

// FoodSearchCacheRepository caches external food searches and image lookups in Redis.
type FoodSearchCacheRepository struct {
	client *redis.Client
	exp    time.Duration
}

// NewFoodSearchCacheRepository creates a new repository instance with the given TTL.
func NewFoodSearchCacheRepository(client *redis.Client, expiration time.Duration) *FoodSearchCacheRepository {
	return &FoodSearchCacheRepository{
		client: client,
		exp:    expiration,
	}
}

func normalizeKey(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func externalFoodsKey(term string) string {
	return fmt.Sprintf("food_search:%s", normalizeKey(term))
}

func imageURLKey(name string) string {
	return fmt.Sprintf("food_image:%s", normalizeKey(name))
}

// GetExternalFoods returns the cached search result for term. found is false on a cache miss.
func (r *FoodSearchCacheRepository) GetExternalFoods(ctx context.Context, term string) (foods []models.ExternalFoodCandidate, found bool, err error) {
	key := externalFoodsKey(term)

	val, err := r.client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		logger.FromContext(ctx).Infow("cache miss", "key", key)
		return nil, false, nil
	}
	if err != nil {
		logger.FromContext(ctx).Infow("cache get", "key", key, "error", err)
		return nil, false, err
	}

	if err := json.Unmarshal([]byte(val), &foods); err != nil {
		logger.FromContext(ctx).Infow("cache decode", "key", key, "error", err)
		return nil, false, err
	}

	logger.FromContext(ctx).Infow("cache hit", "key", key, "result", len(foods))
	return foods, true, nil
}

// SetExternalFoods caches the search result for term.
func (r *FoodSearchCacheRepository) SetExternalFoods(ctx context.Context, term string, foods []models.ExternalFoodCandidate) error {
	key := externalFoodsKey(term)

	data, err := json.Marshal(foods)
	if err != nil {
		return err
	}

	err = r.client.Set(ctx, key, data, r.exp).Err()

	logger.FromContext(ctx).Infow("cache set", "key", key, "result", len(foods), "error", err)

	return err
}

// GetImageURL returns the cached image URL for a food name. found is false on a cache miss.
func (r *FoodSearchCacheRepository) GetImageURL(ctx context.Context, name string) (url string, found bool, err error) {
	key := imageURLKey(name)

	url, err = r.client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		logger.FromContext(ctx).Infow("cache miss", "key", key)
		return "", false, nil
	}

	logger.FromContext(ctx).Infow("cache get", "key", key, "result", url, "error", err)

	if err != nil {
		return "", false, err
	}
	return url, true, nil
}

// SetImageURL caches the image URL for a food name.
func (r *FoodSearchCacheRepository) SetImageURL(ctx context.Context, name, url string) error {
	key := imageURLKey(name)
	err := r.client.Set(ctx, key, url, r.exp).Err()

	logger.FromContext(ctx).Infow("cache set", "key", key, "result", url, "error", err)

	return err
}
