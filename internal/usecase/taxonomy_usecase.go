package usecase

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/listing-monitor/internal/domain"
	"github.com/listing-monitor/internal/domain/repository"
	"github.com/listing-monitor/internal/pkg/errors"
	"github.com/listing-monitor/internal/pkg/normalize"
	"github.com/listing-monitor/internal/usecase/dto"
)

// TaxonomyUseCase - use case для таксономии городов и районов.
// Используется и резолвером локаций (get-or-create), и диспатчем
// (идентификаторы заглушек "unknown").
type TaxonomyUseCase struct {
	cityRepo     repository.CityRepository
	districtRepo repository.DistrictRepository
	cacheRepo    repository.CacheRepository
	logger       *zap.Logger
	sentinelTTL  time.Duration
}

// NewTaxonomyUseCase создает новый TaxonomyUseCase
func NewTaxonomyUseCase(
	cityRepo repository.CityRepository,
	districtRepo repository.DistrictRepository,
	cacheRepo repository.CacheRepository,
	logger *zap.Logger,
	sentinelTTL time.Duration,
) *TaxonomyUseCase {
	return &TaxonomyUseCase{
		cityRepo:     cityRepo,
		districtRepo: districtRepo,
		cacheRepo:    cacheRepo,
		logger:       logger,
		sentinelTTL:  sentinelTTL,
	}
}

// GetOrCreateCity возвращает город по сырому имени, создавая его при
// первой встрече. Ключом служит нормализованная форма имени.
func (uc *TaxonomyUseCase) GetOrCreateCity(ctx context.Context, nameRaw string) (*domain.City, error) {
	return uc.cityRepo.GetOrCreate(ctx, nameRaw, normalize.Name(nameRaw))
}

// GetOrCreateDistrict возвращает район города по сырому имени,
// создавая его при первой встрече
func (uc *TaxonomyUseCase) GetOrCreateDistrict(ctx context.Context, cityID int64, nameRaw string) (*domain.District, error) {
	return uc.districtRepo.GetOrCreate(ctx, cityID, nameRaw, normalize.Name(nameRaw))
}

// SentinelCityID возвращает ID города-заглушки "unknown" или nil,
// если заглушка ещё не создана. Значение кешируется; ошибки кеша
// не фатальны и приводят к походу в базу.
func (uc *TaxonomyUseCase) SentinelCityID(ctx context.Context) (*int64, error) {
	if id, ok, err := uc.cacheRepo.GetSentinelCityID(ctx); err == nil && ok {
		return &id, nil
	} else if err != nil {
		uc.logger.Warn("Sentinel city cache unavailable", zap.Error(err))
	}

	city, err := uc.cityRepo.GetByNormalizedName(ctx, domain.UnknownNameNormalized)
	if err == errors.ErrCityNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	if err := uc.cacheRepo.SetSentinelCityID(ctx, city.ID, uc.sentinelTTL); err != nil {
		uc.logger.Warn("Failed to cache sentinel city ID", zap.Error(err))
	}
	return &city.ID, nil
}

// SentinelDistrictIDs возвращает ID районов-заглушек по всем городам
func (uc *TaxonomyUseCase) SentinelDistrictIDs(ctx context.Context) ([]int64, error) {
	if ids, ok, err := uc.cacheRepo.GetSentinelDistrictIDs(ctx); err == nil && ok {
		return ids, nil
	} else if err != nil {
		uc.logger.Warn("Sentinel district cache unavailable", zap.Error(err))
	}

	ids, err := uc.districtRepo.GetSentinelIDs(ctx)
	if err != nil {
		return nil, err
	}

	if err := uc.cacheRepo.SetSentinelDistrictIDs(ctx, ids, uc.sentinelTTL); err != nil {
		uc.logger.Warn("Failed to cache sentinel district IDs", zap.Error(err))
	}
	return ids, nil
}

// GetAllCities возвращает все города
func (uc *TaxonomyUseCase) GetAllCities(ctx context.Context) ([]*domain.City, error) {
	return uc.cityRepo.GetAll(ctx)
}

// GetCityByID возвращает город по ID
func (uc *TaxonomyUseCase) GetCityByID(ctx context.Context, id int64) (*domain.City, error) {
	return uc.cityRepo.GetByID(ctx, id)
}

// CreateCity создаёт город по административному запросу
func (uc *TaxonomyUseCase) CreateCity(ctx context.Context, req dto.CreateCityRequest) (*domain.City, error) {
	nameNormalized := req.NameNormalized
	if nameNormalized == "" {
		nameNormalized = normalize.Name(req.NameRaw)
	}
	return uc.cityRepo.Create(ctx, &domain.City{
		NameRaw:        req.NameRaw,
		NameNormalized: nameNormalized,
	})
}

// UpdateCity обновляет город
func (uc *TaxonomyUseCase) UpdateCity(ctx context.Context, id int64, req dto.UpdateCityRequest) (*domain.City, error) {
	city, err := uc.cityRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.NameRaw != nil {
		city.NameRaw = *req.NameRaw
	}
	if req.NameNormalized != nil {
		city.NameNormalized = *req.NameNormalized
	}

	updated, err := uc.cityRepo.Update(ctx, city)
	if err != nil {
		return nil, err
	}
	uc.invalidateSentinels(ctx)
	return updated, nil
}

// DeleteCity удаляет город вместе с районами
func (uc *TaxonomyUseCase) DeleteCity(ctx context.Context, id int64) error {
	if err := uc.cityRepo.Delete(ctx, id); err != nil {
		return err
	}
	uc.invalidateSentinels(ctx)
	return nil
}

// GetAllDistricts возвращает все районы
func (uc *TaxonomyUseCase) GetAllDistricts(ctx context.Context) ([]*domain.District, error) {
	return uc.districtRepo.GetAll(ctx)
}

// GetDistrictByID возвращает район по ID
func (uc *TaxonomyUseCase) GetDistrictByID(ctx context.Context, id int64) (*domain.District, error) {
	return uc.districtRepo.GetByID(ctx, id)
}

// GetDistrictsByCityID возвращает районы города
func (uc *TaxonomyUseCase) GetDistrictsByCityID(ctx context.Context, cityID int64) ([]*domain.District, error) {
	if _, err := uc.cityRepo.GetByID(ctx, cityID); err != nil {
		return nil, err
	}
	return uc.districtRepo.GetByCityID(ctx, cityID)
}

// CreateDistrict создаёт район по административному запросу
func (uc *TaxonomyUseCase) CreateDistrict(ctx context.Context, req dto.CreateDistrictRequest) (*domain.District, error) {
	if _, err := uc.cityRepo.GetByID(ctx, req.CityID); err != nil {
		return nil, err
	}

	nameNormalized := req.NameNormalized
	if nameNormalized == "" {
		nameNormalized = normalize.Name(req.NameRaw)
	}
	return uc.districtRepo.Create(ctx, &domain.District{
		CityID:         req.CityID,
		NameRaw:        req.NameRaw,
		NameNormalized: nameNormalized,
	})
}

// UpdateDistrict обновляет район
func (uc *TaxonomyUseCase) UpdateDistrict(ctx context.Context, id int64, req dto.UpdateDistrictRequest) (*domain.District, error) {
	district, err := uc.districtRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.CityID != nil {
		district.CityID = *req.CityID
	}
	if req.NameRaw != nil {
		district.NameRaw = *req.NameRaw
	}
	if req.NameNormalized != nil {
		district.NameNormalized = *req.NameNormalized
	}

	updated, err := uc.districtRepo.Update(ctx, district)
	if err != nil {
		return nil, err
	}
	uc.invalidateSentinels(ctx)
	return updated, nil
}

// DeleteDistrict удаляет район
func (uc *TaxonomyUseCase) DeleteDistrict(ctx context.Context, id int64) error {
	if err := uc.districtRepo.Delete(ctx, id); err != nil {
		return err
	}
	uc.invalidateSentinels(ctx)
	return nil
}

// invalidateSentinels сбрасывает кеш заглушек после административных
// правок таксономии; заглушки от переименования/удаления не защищены
func (uc *TaxonomyUseCase) invalidateSentinels(ctx context.Context) {
	if err := uc.cacheRepo.InvalidateSentinels(ctx); err != nil {
		uc.logger.Warn("Failed to invalidate sentinel cache", zap.Error(err))
	}
}
