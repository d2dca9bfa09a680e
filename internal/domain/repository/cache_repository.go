package repository

import (
	"context"
	"time"
)

// CacheRepository определяет методы для работы с кешем
type CacheRepository interface {
	// Get получает значение из кеша по ключу; промах - (nil, nil)
	Get(ctx context.Context, key string) ([]byte, error)

	// Set сохраняет значение в кеше с TTL
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// Delete удаляет значение из кеша
	Delete(ctx context.Context, key string) error

	// GetSentinelCityID получает закешированный ID города-заглушки.
	// Второй результат false - промах кеша.
	GetSentinelCityID(ctx context.Context) (int64, bool, error)

	// SetSentinelCityID кеширует ID города-заглушки
	SetSentinelCityID(ctx context.Context, id int64, ttl time.Duration) error

	// GetSentinelDistrictIDs получает закешированные ID районов-заглушек
	GetSentinelDistrictIDs(ctx context.Context) ([]int64, bool, error)

	// SetSentinelDistrictIDs кеширует ID районов-заглушек
	SetSentinelDistrictIDs(ctx context.Context, ids []int64, ttl time.Duration) error

	// InvalidateSentinels сбрасывает закешированные ID заглушек
	InvalidateSentinels(ctx context.Context) error
}
