package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/listing-monitor/internal/pkg/errors"
	"github.com/listing-monitor/internal/pkg/utils"
	"github.com/listing-monitor/internal/pkg/validator"
	"github.com/listing-monitor/internal/usecase"
	"github.com/listing-monitor/internal/usecase/dto"
)

// ItemHandler - обработчик запросов к объявлениям
type ItemHandler struct {
	itemUC *usecase.ItemUseCase
	logger *zap.Logger
}

// NewItemHandler - создание нового ItemHandler
func NewItemHandler(itemUC *usecase.ItemUseCase, logger *zap.Logger) *ItemHandler {
	return &ItemHandler{
		itemUC: itemUC,
		logger: logger,
	}
}

// GetAll возвращает объявления с пагинацией
func (h *ItemHandler) GetAll(c *fiber.Ctx) error {
	skip := c.QueryInt("skip", 0)
	limit := c.QueryInt("limit", 100)
	if skip < 0 || limit < 1 || limit > 1000 {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	items, total, err := h.itemUC.GetAllItems(c.Context(), skip, limit)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, dto.ItemListResponse{Items: items, Total: total}, &utils.Meta{
		Total: total,
		Limit: limit,
	})
}

// GetBySourceURL возвращает объявления одного источника
func (h *ItemHandler) GetBySourceURL(c *fiber.Ctx) error {
	sourceURL := c.Query("source_url")
	if sourceURL == "" {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}
	limit := c.QueryInt("limit", 100)
	if limit < 1 || limit > 10000 {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	items, err := h.itemUC.GetItemsBySourceURL(c.Context(), sourceURL, limit)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, dto.ItemListResponse{Items: items, Total: len(items)}, nil)
}

// GetRecent возвращает объявления за последние N часов
func (h *ItemHandler) GetRecent(c *fiber.Ctx) error {
	hours := c.QueryInt("hours", 24)
	limit := c.QueryInt("limit", 100)
	if hours < 1 || hours > 168 || limit < 1 || limit > 1000 {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	items, err := h.itemUC.GetRecentItems(c.Context(), hours, limit)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, dto.ItemListResponse{Items: items, Total: len(items)}, nil)
}

// GetByID возвращает объявление по ID
func (h *ItemHandler) GetByID(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	item, err := h.itemUC.GetItemByID(c.Context(), int64(id))
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, item, nil)
}

// GetByURL возвращает объявление по его URL (wildcard-параметр)
func (h *ItemHandler) GetByURL(c *fiber.Ctx) error {
	itemURL := c.Params("*")
	if itemURL == "" {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	item, err := h.itemUC.GetItemByURL(c.Context(), itemURL)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, item, nil)
}

// Create принимает новое объявление от скрапера
func (h *ItemHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateItemRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	item, err := h.itemUC.CreateItem(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	c.Status(fiber.StatusCreated)
	return utils.SendSuccess(c, item, nil)
}

// Delete удаляет объявление по ID
func (h *ItemHandler) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	if err := h.itemUC.DeleteItem(c.Context(), int64(id)); err != nil {
		return utils.SendError(c, err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// CleanupOlderThan удаляет объявления старше N дней
func (h *ItemHandler) CleanupOlderThan(c *fiber.Ctx) error {
	days, err := c.ParamsInt("days")
	if err != nil || days < 1 {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	deleted, err := h.itemUC.DeleteItemsOlderThanDays(c.Context(), days)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, dto.CleanupResponse{
		DeletedCount: len(deleted),
		DeletedItems: deleted,
	}, nil)
}

// ResolveLocation разбирает строку локации без сохранения объявления
func (h *ItemHandler) ResolveLocation(c *fiber.Ctx) error {
	result, err := h.itemUC.ResolveLocation(c.Context(), c.Query("location"))
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, result, nil)
}
