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

// CityHandler - обработчик запросов к справочнику городов
type CityHandler struct {
	taxonomyUC *usecase.TaxonomyUseCase
	logger     *zap.Logger
}

// NewCityHandler - создание нового CityHandler
func NewCityHandler(taxonomyUC *usecase.TaxonomyUseCase, logger *zap.Logger) *CityHandler {
	return &CityHandler{
		taxonomyUC: taxonomyUC,
		logger:     logger,
	}
}

// GetAll возвращает все города
func (h *CityHandler) GetAll(c *fiber.Ctx) error {
	cities, err := h.taxonomyUC.GetAllCities(c.Context())
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, dto.CityListResponse{Cities: cities, Total: len(cities)}, nil)
}

// GetByID возвращает город по ID
func (h *CityHandler) GetByID(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	city, err := h.taxonomyUC.GetCityByID(c.Context(), int64(id))
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, city, nil)
}

// GetDistricts возвращает районы города
func (h *CityHandler) GetDistricts(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	districts, err := h.taxonomyUC.GetDistrictsByCityID(c.Context(), int64(id))
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, dto.DistrictListResponse{Districts: districts, Total: len(districts)}, nil)
}

// Create создаёт новый город
func (h *CityHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateCityRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	city, err := h.taxonomyUC.CreateCity(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	c.Status(fiber.StatusCreated)
	return utils.SendSuccess(c, city, nil)
}

// Update обновляет город
func (h *CityHandler) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	var req dto.UpdateCityRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	city, err := h.taxonomyUC.UpdateCity(c.Context(), int64(id), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, city, nil)
}

// Delete удаляет город
func (h *CityHandler) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	if err := h.taxonomyUC.DeleteCity(c.Context(), int64(id)); err != nil {
		return utils.SendError(c, err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}
