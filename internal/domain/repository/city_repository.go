package repository

import (
	"context"

	"github.com/listing-monitor/internal/domain"
)

// CityRepository определяет методы для работы с городами
type CityRepository interface {
	// GetByID возвращает город по ID
	GetByID(ctx context.Context, id int64) (*domain.City, error)

	// GetByNormalizedName возвращает город по нормализованному имени
	GetByNormalizedName(ctx context.Context, nameNormalized string) (*domain.City, error)

	// GetAll возвращает все города, отсортированные по нормализованному имени
	GetAll(ctx context.Context) ([]*domain.City, error)

	// GetOrCreate атомарно возвращает существующий город или создаёт новый.
	// Под конкуренцией оба вызова получают одну и ту же строку.
	GetOrCreate(ctx context.Context, nameRaw, nameNormalized string) (*domain.City, error)

	// Create создаёт город; конфликт нормализованного имени - ошибка
	Create(ctx context.Context, city *domain.City) (*domain.City, error)

	// Update обновляет город
	Update(ctx context.Context, city *domain.City) (*domain.City, error)

	// Delete удаляет город вместе с его районами
	Delete(ctx context.Context, id int64) error
}
