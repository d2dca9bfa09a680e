package repository

import (
	"context"

	"github.com/listing-monitor/internal/domain"
)

// DistrictRepository определяет методы для работы с районами
type DistrictRepository interface {
	// GetByID возвращает район по ID
	GetByID(ctx context.Context, id int64) (*domain.District, error)

	// GetAll возвращает все районы
	GetAll(ctx context.Context) ([]*domain.District, error)

	// GetByCityID возвращает районы города
	GetByCityID(ctx context.Context, cityID int64) ([]*domain.District, error)

	// GetByIDs возвращает районы по списку идентификаторов
	GetByIDs(ctx context.Context, ids []int64) ([]*domain.District, error)

	// GetSentinelIDs возвращает идентификаторы всех районов-заглушек
	// (name_normalized == "unknown") по всем городам
	GetSentinelIDs(ctx context.Context) ([]int64, error)

	// GetOrCreate атомарно возвращает существующий район города или создаёт новый
	GetOrCreate(ctx context.Context, cityID int64, nameRaw, nameNormalized string) (*domain.District, error)

	// Create создаёт район; конфликт (city_id, name_normalized) - ошибка
	Create(ctx context.Context, district *domain.District) (*domain.District, error)

	// Update обновляет район
	Update(ctx context.Context, district *domain.District) (*domain.District, error)

	// Delete удаляет район
	Delete(ctx context.Context, id int64) error
}
