package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/listing-monitor/internal/domain/repository"
)

// Ключи для кеша идентификаторов заглушек "unknown".
// Таксономия может административно редактироваться, поэтому значения
// живут с коротким TTL, а не бесконечно.
const (
	sentinelCityKey      = "sentinel:city_id"
	sentinelDistrictsKey = "sentinel:district_ids"
)

type cacheRepository struct {
	client *redis.Client
	logger *zap.Logger
}

func NewCacheRepository(redis *Redis) repository.CacheRepository {
	return &cacheRepository{
		client: redis.Client(),
		logger: redis.logger,
	}
}

func (r *cacheRepository) Get(ctx context.Context, key string) ([]byte, error) {
	val, err := r.client.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return nil, nil // Cache miss
	}
	if err != nil {
		r.logger.Error("Failed to get from cache", zap.String("key", key), zap.Error(err))
		return nil, fmt.Errorf("cache get error: %w", err)
	}

	r.logger.Debug("Cache hit", zap.String("key", key))
	return val, nil
}

func (r *cacheRepository) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	err := r.client.Set(ctx, key, value, ttl).Err()
	if err != nil {
		r.logger.Error("Failed to set cache", zap.String("key", key), zap.Error(err))
		return fmt.Errorf("cache set error: %w", err)
	}

	r.logger.Debug("Cache set", zap.String("key", key), zap.Duration("ttl", ttl))
	return nil
}

func (r *cacheRepository) Delete(ctx context.Context, key string) error {
	err := r.client.Del(ctx, key).Err()
	if err != nil {
		r.logger.Error("Failed to delete from cache", zap.String("key", key), zap.Error(err))
		return fmt.Errorf("cache delete error: %w", err)
	}

	r.logger.Debug("Cache deleted", zap.String("key", key))
	return nil
}

func (r *cacheRepository) GetSentinelCityID(ctx context.Context) (int64, bool, error) {
	val, err := r.Get(ctx, sentinelCityKey)
	if err != nil {
		return 0, false, err
	}
	if val == nil {
		return 0, false, nil
	}

	id, err := strconv.ParseInt(string(val), 10, 64)
	if err != nil {
		return 0, false, fmt.Errorf("corrupt sentinel city cache: %w", err)
	}
	return id, true, nil
}

func (r *cacheRepository) SetSentinelCityID(ctx context.Context, id int64, ttl time.Duration) error {
	return r.Set(ctx, sentinelCityKey, []byte(strconv.FormatInt(id, 10)), ttl)
}

func (r *cacheRepository) GetSentinelDistrictIDs(ctx context.Context) ([]int64, bool, error) {
	val, err := r.Get(ctx, sentinelDistrictsKey)
	if err != nil {
		return nil, false, err
	}
	if val == nil {
		return nil, false, nil
	}

	var ids []int64
	if err := json.Unmarshal(val, &ids); err != nil {
		return nil, false, fmt.Errorf("corrupt sentinel district cache: %w", err)
	}
	return ids, true, nil
}

func (r *cacheRepository) SetSentinelDistrictIDs(ctx context.Context, ids []int64, ttl time.Duration) error {
	data, err := json.Marshal(ids)
	if err != nil {
		return fmt.Errorf("marshal sentinel district IDs: %w", err)
	}
	return r.Set(ctx, sentinelDistrictsKey, data, ttl)
}

func (r *cacheRepository) InvalidateSentinels(ctx context.Context) error {
	err := r.client.Del(ctx, sentinelCityKey, sentinelDistrictsKey).Err()
	if err != nil {
		r.logger.Error("Failed to invalidate sentinel cache", zap.Error(err))
		return fmt.Errorf("cache delete error: %w", err)
	}
	return nil
}
