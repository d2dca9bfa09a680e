package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/listing-monitor/internal/domain"
	"github.com/listing-monitor/internal/pkg/errors"
	"github.com/listing-monitor/internal/pkg/utils"
	"github.com/listing-monitor/internal/pkg/validator"
	"github.com/listing-monitor/internal/usecase"
	"github.com/listing-monitor/internal/usecase/dto"
)

// TaskHandler - обработчик запросов к задачам мониторинга
type TaskHandler struct {
	taskUC     *usecase.TaskUseCase
	dispatchUC *usecase.DispatchUseCase
	logger     *zap.Logger
}

// NewTaskHandler - создание нового TaskHandler
func NewTaskHandler(taskUC *usecase.TaskUseCase, dispatchUC *usecase.DispatchUseCase, logger *zap.Logger) *TaskHandler {
	return &TaskHandler{
		taskUC:     taskUC,
		dispatchUC: dispatchUC,
		logger:     logger,
	}
}

// GetAll возвращает все задачи мониторинга
func (h *TaskHandler) GetAll(c *fiber.Ctx) error {
	tasks, err := h.taskUC.GetAllTasks(c.Context())
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, dto.TaskListResponse{Tasks: tasks, Total: len(tasks)}, nil)
}

// GetByID возвращает задачу по ID
func (h *TaskHandler) GetByID(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	task, err := h.taskUC.GetTaskByID(c.Context(), int64(id))
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, task, nil)
}

// GetByChatID возвращает задачи одного чата
func (h *TaskHandler) GetByChatID(c *fiber.Ctx) error {
	chatID := c.Params("chatID")
	if chatID == "" {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	tasks, err := h.taskUC.GetTasksByChatID(c.Context(), chatID)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, dto.TaskListResponse{Tasks: tasks, Total: len(tasks)}, nil)
}

// GetPending возвращает задачи, по которым пора выполнить проверку
func (h *TaskHandler) GetPending(c *fiber.Ctx) error {
	tasks, err := h.taskUC.GetPendingTasks(c.Context())
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, dto.TaskListResponse{Tasks: tasks, Total: len(tasks)}, nil)
}

// Create создаёт новую задачу мониторинга
func (h *TaskHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateTaskRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	task, err := h.taskUC.CreateTask(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	c.Status(fiber.StatusCreated)
	return utils.SendSuccess(c, task, nil)
}

// Update обновляет задачу мониторинга
func (h *TaskHandler) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	var req dto.UpdateTaskRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	task, err := h.taskUC.UpdateTask(c.Context(), int64(id), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, task, nil)
}

// Delete удаляет задачу по ID
func (h *TaskHandler) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	if err := h.taskUC.DeleteTaskByID(c.Context(), int64(id)); err != nil {
		return utils.SendError(c, err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// DeleteByChat удаляет задачи чата, опционально только с заданным именем
func (h *TaskHandler) DeleteByChat(c *fiber.Ctx) error {
	chatID := c.Params("chatID")
	if chatID == "" {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	deleted, err := h.taskUC.DeleteTasksByChat(c.Context(), chatID, c.Query("name"))
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, fiber.Map{"deleted_count": deleted}, nil)
}

// ItemsToSend возвращает объявления к отправке по задаче.
// Неизвестная задача даёт пустой список, а не 404.
func (h *TaskHandler) ItemsToSend(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	task, err := h.taskUC.GetTaskByID(c.Context(), int64(id))
	if err != nil {
		if err == errors.ErrTaskNotFound {
			return utils.SendSuccess(c, dto.ItemsToSendResponse{
				TaskID: int64(id),
				Items:  []*domain.Item{},
			}, nil)
		}
		return utils.SendError(c, err)
	}

	items, err := h.dispatchUC.ItemsToSendForTask(c.Context(), task)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, dto.ItemsToSendResponse{
		TaskID:   task.ID,
		TaskName: task.Name,
		ChatID:   task.ChatID,
		Items:    items,
		Count:    len(items),
	}, nil)
}

// GotItems отмечает успешную доставку по задаче
func (h *TaskHandler) GotItems(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	if err := h.taskUC.TouchLastGotItem(c.Context(), int64(id)); err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, fiber.Map{"status": "ok"}, nil)
}
