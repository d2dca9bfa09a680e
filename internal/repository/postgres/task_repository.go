package postgres

import (
	"context"
	"database/sql"
	goerrors "errors"
	"time"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/listing-monitor/internal/domain"
	"github.com/listing-monitor/internal/domain/repository"
	"github.com/listing-monitor/internal/pkg/errors"
)

const taskColumns = `id, chat_id, name, url, last_updated, last_got_item, city_id`

type taskRepository struct {
	db     *sqlx.DB
	logger *zap.Logger
}

// NewTaskRepository создает новый экземпляр TaskRepository
func NewTaskRepository(db *DB) repository.TaskRepository {
	return &taskRepository{
		db:     db.DB,
		logger: db.logger,
	}
}

// GetByID возвращает задачу с загруженными разрешёнными районами
func (r *taskRepository) GetByID(ctx context.Context, id int64) (*domain.MonitoringTask, error) {
	var task domain.MonitoringTask
	err := r.db.GetContext(ctx, &task,
		`SELECT `+taskColumns+` FROM monitoring_tasks WHERE id = $1`, id)
	if goerrors.Is(err, sql.ErrNoRows) {
		return nil, errors.ErrTaskNotFound
	}
	if err != nil {
		r.logger.Error("Failed to get task by ID", zap.Int64("id", id), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	if err := r.loadAllowedDistricts(ctx, &task); err != nil {
		return nil, err
	}
	return &task, nil
}

// GetAll возвращает все задачи
func (r *taskRepository) GetAll(ctx context.Context) ([]*domain.MonitoringTask, error) {
	var tasks []*domain.MonitoringTask
	err := r.db.SelectContext(ctx, &tasks,
		`SELECT `+taskColumns+` FROM monitoring_tasks ORDER BY id`)
	if err != nil {
		r.logger.Error("Failed to list tasks", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}
	return tasks, nil
}

// GetByChatID возвращает задачи чата
func (r *taskRepository) GetByChatID(ctx context.Context, chatID string) ([]*domain.MonitoringTask, error) {
	var tasks []*domain.MonitoringTask
	err := r.db.SelectContext(ctx, &tasks,
		`SELECT `+taskColumns+` FROM monitoring_tasks WHERE chat_id = $1 ORDER BY id`, chatID)
	if err != nil {
		r.logger.Error("Failed to list tasks by chat", zap.String("chat_id", chatID), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}
	return tasks, nil
}

// GetByChatAndName возвращает задачу чата по имени
func (r *taskRepository) GetByChatAndName(ctx context.Context, chatID, name string) (*domain.MonitoringTask, error) {
	var task domain.MonitoringTask
	err := r.db.GetContext(ctx, &task,
		`SELECT `+taskColumns+` FROM monitoring_tasks WHERE chat_id = $1 AND name = $2`, chatID, name)
	if goerrors.Is(err, sql.ErrNoRows) {
		return nil, errors.ErrTaskNotFound
	}
	if err != nil {
		r.logger.Error("Failed to get task by chat and name",
			zap.String("chat_id", chatID), zap.String("name", name), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	if err := r.loadAllowedDistricts(ctx, &task); err != nil {
		return nil, err
	}
	return &task, nil
}

// HasURLForChat проверяет, мониторится ли уже URL для чата
func (r *taskRepository) HasURLForChat(ctx context.Context, chatID, url string) (bool, error) {
	var exists bool
	err := r.db.GetContext(ctx, &exists,
		`SELECT EXISTS (SELECT 1 FROM monitoring_tasks WHERE chat_id = $1 AND url = $2)`, chatID, url)
	if err != nil {
		r.logger.Error("Failed to check task URL for chat", zap.String("chat_id", chatID), zap.Error(err))
		return false, errors.ErrDatabaseError
	}
	return exists, nil
}

// Create создаёт задачу и её список разрешённых районов в одной транзакции
func (r *taskRepository) Create(ctx context.Context, task *domain.MonitoringTask, allowedDistrictIDs []int64) (*domain.MonitoringTask, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		r.logger.Error("Failed to begin transaction", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}
	defer tx.Rollback()

	var created domain.MonitoringTask
	err = tx.GetContext(ctx, &created,
		`INSERT INTO monitoring_tasks (chat_id, name, url, last_updated, last_got_item, city_id)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING `+taskColumns,
		task.ChatID, task.Name, task.URL, task.LastUpdated, task.LastGotItem, task.CityID)
	if isUniqueViolation(err) {
		return nil, errors.ErrTaskExists
	}
	if err != nil {
		r.logger.Error("Failed to create task",
			zap.String("chat_id", task.ChatID), zap.String("name", task.Name), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	if err := insertAllowedDistricts(ctx, tx, created.ID, allowedDistrictIDs); err != nil {
		r.logger.Error("Failed to insert allowed districts", zap.Int64("task_id", created.ID), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	if err := tx.Commit(); err != nil {
		r.logger.Error("Failed to commit task creation", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	return r.GetByID(ctx, created.ID)
}

// Update обновляет задачу; non-nil allowedDistrictIDs заменяет список районов
func (r *taskRepository) Update(ctx context.Context, task *domain.MonitoringTask, allowedDistrictIDs []int64) (*domain.MonitoringTask, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		r.logger.Error("Failed to begin transaction", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}
	defer tx.Rollback()

	var updated domain.MonitoringTask
	err = tx.GetContext(ctx, &updated,
		`UPDATE monitoring_tasks
		 SET name = $2, url = $3, last_updated = $4, city_id = $5
		 WHERE id = $1
		 RETURNING `+taskColumns,
		task.ID, task.Name, task.URL, task.LastUpdated, task.CityID)
	if goerrors.Is(err, sql.ErrNoRows) {
		return nil, errors.ErrTaskNotFound
	}
	if isUniqueViolation(err) {
		return nil, errors.ErrTaskExists
	}
	if err != nil {
		r.logger.Error("Failed to update task", zap.Int64("id", task.ID), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	if allowedDistrictIDs != nil {
		if _, err := tx.ExecContext(ctx,
			`DELETE FROM task_allowed_districts WHERE task_id = $1`, task.ID); err != nil {
			r.logger.Error("Failed to clear allowed districts", zap.Int64("task_id", task.ID), zap.Error(err))
			return nil, errors.ErrDatabaseError
		}
		if err := insertAllowedDistricts(ctx, tx, task.ID, allowedDistrictIDs); err != nil {
			r.logger.Error("Failed to replace allowed districts", zap.Int64("task_id", task.ID), zap.Error(err))
			return nil, errors.ErrDatabaseError
		}
	}

	if err := tx.Commit(); err != nil {
		r.logger.Error("Failed to commit task update", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	return r.GetByID(ctx, task.ID)
}

// Delete удаляет задачу по ID
func (r *taskRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM monitoring_tasks WHERE id = $1`, id)
	if err != nil {
		r.logger.Error("Failed to delete task", zap.Int64("id", id), zap.Error(err))
		return errors.ErrDatabaseError
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return errors.ErrDatabaseError
	}
	if affected == 0 {
		return errors.ErrTaskNotFound
	}
	return nil
}

// DeleteByChatID удаляет все задачи чата
func (r *taskRepository) DeleteByChatID(ctx context.Context, chatID string) (int, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM monitoring_tasks WHERE chat_id = $1`, chatID)
	if err != nil {
		r.logger.Error("Failed to delete tasks by chat", zap.String("chat_id", chatID), zap.Error(err))
		return 0, errors.ErrDatabaseError
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return 0, errors.ErrDatabaseError
	}
	return int(affected), nil
}

// GetPending возвращает задачи, которым пора получать объявления
func (r *taskRepository) GetPending(ctx context.Context, threshold time.Time) ([]*domain.MonitoringTask, error) {
	var tasks []*domain.MonitoringTask
	err := r.db.SelectContext(ctx, &tasks,
		`SELECT `+taskColumns+` FROM monitoring_tasks
		 WHERE last_got_item IS NULL OR last_got_item < $1
		 ORDER BY id`, threshold)
	if err != nil {
		r.logger.Error("Failed to list pending tasks", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}
	return tasks, nil
}

// TouchLastGotItem проставляет last_got_item задаче
func (r *taskRepository) TouchLastGotItem(ctx context.Context, id int64, at time.Time) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE monitoring_tasks SET last_got_item = $2 WHERE id = $1`, id, at)
	if err != nil {
		r.logger.Error("Failed to touch last_got_item", zap.Int64("id", id), zap.Error(err))
		return errors.ErrDatabaseError
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return errors.ErrDatabaseError
	}
	if affected == 0 {
		return errors.ErrTaskNotFound
	}
	return nil
}

// TouchLastGotItemByChat проставляет last_got_item первой задаче чата
func (r *taskRepository) TouchLastGotItemByChat(ctx context.Context, chatID string, at time.Time) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE monitoring_tasks SET last_got_item = $2
		 WHERE id = (SELECT id FROM monitoring_tasks WHERE chat_id = $1 ORDER BY id LIMIT 1)`,
		chatID, at)
	if err != nil {
		r.logger.Error("Failed to touch last_got_item by chat", zap.String("chat_id", chatID), zap.Error(err))
		return errors.ErrDatabaseError
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return errors.ErrDatabaseError
	}
	if affected == 0 {
		return errors.ErrTaskNotFound
	}
	return nil
}

func (r *taskRepository) loadAllowedDistricts(ctx context.Context, task *domain.MonitoringTask) error {
	var districts []domain.District
	err := r.db.SelectContext(ctx, &districts,
		`SELECT d.id, d.city_id, d.name_raw, d.name_normalized
		 FROM districts d
		 JOIN task_allowed_districts tad ON tad.district_id = d.id
		 WHERE tad.task_id = $1
		 ORDER BY d.name_normalized`, task.ID)
	if err != nil {
		r.logger.Error("Failed to load allowed districts", zap.Int64("task_id", task.ID), zap.Error(err))
		return errors.ErrDatabaseError
	}
	task.AllowedDistricts = districts
	return nil
}

func insertAllowedDistricts(ctx context.Context, tx *sqlx.Tx, taskID int64, districtIDs []int64) error {
	for _, districtID := range districtIDs {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO task_allowed_districts (task_id, district_id)
			 VALUES ($1, $2) ON CONFLICT DO NOTHING`, taskID, districtID); err != nil {
			return err
		}
	}
	return nil
}
