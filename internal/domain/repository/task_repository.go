package repository

import (
	"context"
	"time"

	"github.com/listing-monitor/internal/domain"
)

// TaskRepository определяет методы для работы с задачами мониторинга
type TaskRepository interface {
	// GetByID возвращает задачу с загруженными разрешёнными районами
	GetByID(ctx context.Context, id int64) (*domain.MonitoringTask, error)

	// GetAll возвращает все задачи
	GetAll(ctx context.Context) ([]*domain.MonitoringTask, error)

	// GetByChatID возвращает задачи чата
	GetByChatID(ctx context.Context, chatID string) ([]*domain.MonitoringTask, error)

	// GetByChatAndName возвращает задачу чата по имени
	GetByChatAndName(ctx context.Context, chatID, name string) (*domain.MonitoringTask, error)

	// HasURLForChat проверяет, мониторится ли уже URL для чата
	HasURLForChat(ctx context.Context, chatID, url string) (bool, error)

	// Create создаёт задачу и её список разрешённых районов
	Create(ctx context.Context, task *domain.MonitoringTask, allowedDistrictIDs []int64) (*domain.MonitoringTask, error)

	// Update обновляет задачу; non-nil allowedDistrictIDs заменяет список районов
	Update(ctx context.Context, task *domain.MonitoringTask, allowedDistrictIDs []int64) (*domain.MonitoringTask, error)

	// Delete удаляет задачу по ID
	Delete(ctx context.Context, id int64) error

	// DeleteByChatID удаляет все задачи чата, возвращает их число
	DeleteByChatID(ctx context.Context, chatID string) (int, error)

	// GetPending возвращает задачи, у которых last_got_item пуст
	// или старше порога
	GetPending(ctx context.Context, threshold time.Time) ([]*domain.MonitoringTask, error)

	// TouchLastGotItem проставляет last_got_item задаче
	TouchLastGotItem(ctx context.Context, id int64, at time.Time) error

	// TouchLastGotItemByChat проставляет last_got_item первой задаче чата
	TouchLastGotItemByChat(ctx context.Context, chatID string, at time.Time) error
}
