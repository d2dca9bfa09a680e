package usecase

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/listing-monitor/internal/config"
	"github.com/listing-monitor/internal/domain"
	"github.com/listing-monitor/internal/domain/repository"
	"github.com/listing-monitor/internal/pkg/errors"
	"github.com/listing-monitor/internal/usecase/dto"
)

// TaskUseCase - use case управления задачами мониторинга
type TaskUseCase struct {
	taskRepo     repository.TaskRepository
	districtRepo repository.DistrictRepository
	logger       *zap.Logger
	monitor      config.MonitorConfig

	now func() time.Time
}

// NewTaskUseCase создает новый TaskUseCase
func NewTaskUseCase(
	taskRepo repository.TaskRepository,
	districtRepo repository.DistrictRepository,
	logger *zap.Logger,
	monitor config.MonitorConfig,
) *TaskUseCase {
	return &TaskUseCase{
		taskRepo:     taskRepo,
		districtRepo: districtRepo,
		logger:       logger,
		monitor:      monitor,
		now:          domain.NowWarsaw,
	}
}

// GetAllTasks возвращает все задачи
func (uc *TaskUseCase) GetAllTasks(ctx context.Context) ([]*domain.MonitoringTask, error) {
	return uc.taskRepo.GetAll(ctx)
}

// GetTaskByID возвращает задачу по ID
func (uc *TaskUseCase) GetTaskByID(ctx context.Context, id int64) (*domain.MonitoringTask, error) {
	return uc.taskRepo.GetByID(ctx, id)
}

// GetTasksByChatID возвращает задачи чата
func (uc *TaskUseCase) GetTasksByChatID(ctx context.Context, chatID string) ([]*domain.MonitoringTask, error) {
	return uc.taskRepo.GetByChatID(ctx, chatID)
}

// CreateTask создаёт задачу мониторинга. Один чат не может мониторить
// один URL дважды; неизвестные ID районов молча отбрасываются.
func (uc *TaskUseCase) CreateTask(ctx context.Context, req dto.CreateTaskRequest) (*domain.MonitoringTask, error) {
	monitored, err := uc.taskRepo.HasURLForChat(ctx, req.ChatID, req.URL)
	if err != nil {
		return nil, err
	}
	if monitored {
		return nil, errors.ErrTaskURLMonitored
	}

	districtIDs, err := uc.existingDistrictIDs(ctx, req.AllowedDistrictIDs)
	if err != nil {
		return nil, err
	}

	task := &domain.MonitoringTask{
		ChatID:      req.ChatID,
		Name:        req.Name,
		URL:         req.URL,
		LastUpdated: uc.now(),
		CityID:      req.CityID,
	}

	created, err := uc.taskRepo.Create(ctx, task, districtIDs)
	if err != nil {
		return nil, err
	}

	uc.logger.Info("Monitoring task created",
		zap.Int64("id", created.ID),
		zap.String("chat_id", created.ChatID),
		zap.String("name", created.Name))
	return created, nil
}

// UpdateTask обновляет задачу; nil AllowedDistrictIDs оставляет список
// районов без изменений, пустой список очищает его
func (uc *TaskUseCase) UpdateTask(ctx context.Context, id int64, req dto.UpdateTaskRequest) (*domain.MonitoringTask, error) {
	task, err := uc.taskRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		task.Name = *req.Name
	}
	if req.URL != nil {
		task.URL = *req.URL
	}
	if req.CityID != nil {
		task.CityID = req.CityID
	}
	task.LastUpdated = uc.now()

	var districtIDs []int64
	if req.AllowedDistrictIDs != nil {
		districtIDs, err = uc.existingDistrictIDs(ctx, *req.AllowedDistrictIDs)
		if err != nil {
			return nil, err
		}
		if districtIDs == nil {
			districtIDs = []int64{} // пустой список очищает, nil оставил бы как есть
		}
	}

	return uc.taskRepo.Update(ctx, task, districtIDs)
}

// DeleteTaskByID удаляет задачу по ID
func (uc *TaskUseCase) DeleteTaskByID(ctx context.Context, id int64) error {
	return uc.taskRepo.Delete(ctx, id)
}

// DeleteTasksByChat удаляет задачи чата; при непустом name удаляется
// только одноимённая задача
func (uc *TaskUseCase) DeleteTasksByChat(ctx context.Context, chatID, name string) (int, error) {
	if name != "" {
		task, err := uc.taskRepo.GetByChatAndName(ctx, chatID, name)
		if err != nil {
			return 0, err
		}
		if err := uc.taskRepo.Delete(ctx, task.ID); err != nil {
			return 0, err
		}
		return 1, nil
	}

	deleted, err := uc.taskRepo.DeleteByChatID(ctx, chatID)
	if err != nil {
		return 0, err
	}
	if deleted == 0 {
		return 0, errors.ErrTaskNotFound
	}
	return deleted, nil
}

// GetPendingTasks возвращает задачи, у которых last_got_item пуст или
// старше настроенной частоты отправки
func (uc *TaskUseCase) GetPendingTasks(ctx context.Context) ([]*domain.MonitoringTask, error) {
	threshold := uc.now().Add(-time.Duration(uc.monitor.SendingFrequencyMinutes) * time.Minute)
	return uc.taskRepo.GetPending(ctx, threshold)
}

// TouchLastGotItem отмечает момент успешной отправки по задаче
func (uc *TaskUseCase) TouchLastGotItem(ctx context.Context, id int64) error {
	return uc.taskRepo.TouchLastGotItem(ctx, id, uc.now())
}

// TouchLastGotItemByChat отмечает момент успешной отправки по чату
func (uc *TaskUseCase) TouchLastGotItemByChat(ctx context.Context, chatID string) error {
	return uc.taskRepo.TouchLastGotItemByChat(ctx, chatID, uc.now())
}

// existingDistrictIDs оставляет только идентификаторы существующих районов
func (uc *TaskUseCase) existingDistrictIDs(ctx context.Context, ids []int64) ([]int64, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	districts, err := uc.districtRepo.GetByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	existing := make([]int64, 0, len(districts))
	for _, d := range districts {
		existing = append(existing, d.ID)
	}
	return existing, nil
}
