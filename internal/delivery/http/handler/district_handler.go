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

// DistrictHandler - обработчик запросов к справочнику районов
type DistrictHandler struct {
	taxonomyUC *usecase.TaxonomyUseCase
	logger     *zap.Logger
}

// NewDistrictHandler - создание нового DistrictHandler
func NewDistrictHandler(taxonomyUC *usecase.TaxonomyUseCase, logger *zap.Logger) *DistrictHandler {
	return &DistrictHandler{
		taxonomyUC: taxonomyUC,
		logger:     logger,
	}
}

// GetAll возвращает все районы
func (h *DistrictHandler) GetAll(c *fiber.Ctx) error {
	districts, err := h.taxonomyUC.GetAllDistricts(c.Context())
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, dto.DistrictListResponse{Districts: districts, Total: len(districts)}, nil)
}

// GetByID возвращает район по ID
func (h *DistrictHandler) GetByID(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	district, err := h.taxonomyUC.GetDistrictByID(c.Context(), int64(id))
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, district, nil)
}

// Create создаёт новый район
func (h *DistrictHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateDistrictRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	district, err := h.taxonomyUC.CreateDistrict(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	c.Status(fiber.StatusCreated)
	return utils.SendSuccess(c, district, nil)
}

// Update обновляет район
func (h *DistrictHandler) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	var req dto.UpdateDistrictRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	district, err := h.taxonomyUC.UpdateDistrict(c.Context(), int64(id), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, district, nil)
}

// Delete удаляет район
func (h *DistrictHandler) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	if err := h.taxonomyUC.DeleteDistrict(c.Context(), int64(id)); err != nil {
		return utils.SendError(c, err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}
