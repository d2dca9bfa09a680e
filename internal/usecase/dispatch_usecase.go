package usecase

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/listing-monitor/internal/config"
	"github.com/listing-monitor/internal/domain"
	"github.com/listing-monitor/internal/domain/repository"
	"github.com/listing-monitor/internal/pkg/errors"
)

// DispatchUseCase - use case вычисления объявлений к отправке по задаче.
// Фильтрует по источнику, времени и географии; география включающая:
// записи с локацией-заглушкой не отбрасываются.
type DispatchUseCase struct {
	itemRepo repository.ItemRepository
	taskRepo repository.TaskRepository
	taxonomy *TaxonomyUseCase
	logger   *zap.Logger
	monitor  config.MonitorConfig

	// now подменяется в тестах
	now func() time.Time
}

// NewDispatchUseCase создает новый DispatchUseCase
func NewDispatchUseCase(
	itemRepo repository.ItemRepository,
	taskRepo repository.TaskRepository,
	taxonomy *TaxonomyUseCase,
	logger *zap.Logger,
	monitor config.MonitorConfig,
) *DispatchUseCase {
	return &DispatchUseCase{
		itemRepo: itemRepo,
		taskRepo: taskRepo,
		taxonomy: taxonomy,
		logger:   logger,
		monitor:  monitor,
		now:      domain.NowWarsaw,
	}
}

// ItemsToSendForTask возвращает объявления, подходящие задаче,
// упорядоченные по first_seen по убыванию
func (uc *DispatchUseCase) ItemsToSendForTask(ctx context.Context, task *domain.MonitoringTask) ([]*domain.Item, error) {
	filter := domain.DispatchFilter{
		SourceURL: task.URL,
		Since:     uc.sinceThreshold(task),
		CityID:    task.CityID,
	}

	if task.CityID != nil {
		sentinelCityID, err := uc.taxonomy.SentinelCityID(ctx)
		if err != nil {
			return nil, err
		}
		filter.SentinelCityID = sentinelCityID
	}

	if districtIDs := task.AllowedDistrictIDs(); len(districtIDs) > 0 {
		filter.DistrictIDs = districtIDs

		sentinelDistrictIDs, err := uc.taxonomy.SentinelDistrictIDs(ctx)
		if err != nil {
			return nil, err
		}
		filter.SentinelDistrictIDs = sentinelDistrictIDs
	}

	items, err := uc.itemRepo.ListToSend(ctx, filter)
	if err != nil {
		uc.logger.Error("Failed to list items to send",
			zap.Int64("task_id", task.ID), zap.Error(err))
		return nil, err
	}

	uc.logger.Debug("Items to send computed",
		zap.Int64("task_id", task.ID),
		zap.Time("since", filter.Since),
		zap.Int("count", len(items)))
	return items, nil
}

// ItemsToSendForTaskID - вариант по идентификатору задачи.
// Отсутствующая задача означает "отправлять нечего", а не ошибку.
func (uc *DispatchUseCase) ItemsToSendForTaskID(ctx context.Context, taskID int64) ([]*domain.Item, error) {
	task, err := uc.taskRepo.GetByID(ctx, taskID)
	if err == errors.ErrTaskNotFound {
		return []*domain.Item{}, nil
	}
	if err != nil {
		return nil, err
	}
	return uc.ItemsToSendForTask(ctx, task)
}

// sinceThreshold выбирает нижнюю границу first_seen: момент последней
// успешной отправки, а для ни разу не отправлявшейся задачи - больший
// из двух настроенных интервалов назад от текущего момента
func (uc *DispatchUseCase) sinceThreshold(task *domain.MonitoringTask) time.Time {
	if task.LastGotItem != nil {
		return *task.LastGotItem
	}

	lookback := uc.monitor.SendingFrequencyMinutes
	if uc.monitor.LastMinutesGetting > lookback {
		lookback = uc.monitor.LastMinutesGetting
	}
	return uc.now().Add(-time.Duration(lookback) * time.Minute)
}
