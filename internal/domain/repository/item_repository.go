package repository

import (
	"context"
	"time"

	"github.com/listing-monitor/internal/domain"
)

// ItemRepository определяет методы для работы с записями объявлений
type ItemRepository interface {
	// Create сохраняет новое объявление и возвращает его с ID
	Create(ctx context.Context, item *domain.Item) (*domain.Item, error)

	// GetByID возвращает объявление по ID
	GetByID(ctx context.Context, id int64) (*domain.Item, error)

	// GetByURL возвращает объявление по его уникальному URL
	GetByURL(ctx context.Context, itemURL string) (*domain.Item, error)

	// GetAll возвращает объявления с пагинацией
	GetAll(ctx context.Context, skip, limit int) ([]*domain.Item, error)

	// Count возвращает общее число объявлений
	Count(ctx context.Context) (int, error)

	// GetBySourceURL возвращает объявления одного источника, новые первыми
	GetBySourceURL(ctx context.Context, sourceURL string, limit int) ([]*domain.Item, error)

	// GetBySource возвращает объявления по имени источника (OLX, Otodom)
	GetBySource(ctx context.Context, source string, limit int) ([]*domain.Item, error)

	// GetSeenAfter возвращает объявления с first_seen позже указанного времени
	GetSeenAfter(ctx context.Context, after time.Time, limit int) ([]*domain.Item, error)

	// ListToSend возвращает объявления, подходящие под фильтр диспатча,
	// упорядоченные по first_seen по убыванию
	ListToSend(ctx context.Context, filter domain.DispatchFilter) ([]*domain.Item, error)

	// Delete удаляет объявление по ID
	Delete(ctx context.Context, id int64) error

	// DeleteOlderThan удаляет объявления с first_seen раньше cutoff
	// и возвращает удалённые записи
	DeleteOlderThan(ctx context.Context, cutoff time.Time) ([]*domain.Item, error)
}
