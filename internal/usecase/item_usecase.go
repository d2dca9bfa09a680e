package usecase

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/listing-monitor/internal/domain"
	"github.com/listing-monitor/internal/domain/repository"
	"github.com/listing-monitor/internal/usecase/dto"
)

// ItemUseCase - use case приёма и выборки объявлений
type ItemUseCase struct {
	itemRepo repository.ItemRepository
	resolver *LocationResolver
	logger   *zap.Logger

	now func() time.Time
}

// NewItemUseCase создает новый ItemUseCase
func NewItemUseCase(
	itemRepo repository.ItemRepository,
	resolver *LocationResolver,
	logger *zap.Logger,
) *ItemUseCase {
	return &ItemUseCase{
		itemRepo: itemRepo,
		resolver: resolver,
		logger:   logger,
		now:      domain.NowWarsaw,
	}
}

// CreateItem принимает объявление от скрапера: резолвит локацию,
// определяет источник и сохраняет запись. Город и район назначаются
// один раз при создании и дальше не пересчитываются.
func (uc *ItemUseCase) CreateItem(ctx context.Context, req dto.CreateItemRequest) (*domain.Item, error) {
	item := &domain.Item{
		ItemURL:         req.ItemURL,
		SourceURL:       req.SourceURL,
		Title:           req.Title,
		Price:           req.Price,
		CreatedAt:       req.CreatedAt,
		CreatedAtPretty: req.CreatedAtPretty,
		ImageURL:        req.ImageURL,
		Description:     req.Description,
		Source:          req.Source,
		FirstSeen:       uc.now(),
	}

	if item.Source == nil || *item.Source == "" {
		if detected := domain.DetectSource(req.ItemURL); detected != "" {
			item.Source = &detected
		}
	}

	rawLocation := ""
	if req.Location != nil {
		rawLocation = *req.Location
	}

	resolved, cleaned, err := uc.resolver.Resolve(ctx, rawLocation)
	if err != nil {
		return nil, err
	}
	item.CityID = &resolved.City.ID
	item.DistrictID = &resolved.District.ID
	if req.Location != nil {
		item.Location = &cleaned
	}

	created, err := uc.itemRepo.Create(ctx, item)
	if err != nil {
		return nil, err
	}

	uc.logger.Info("Item created",
		zap.Int64("id", created.ID),
		zap.String("item_url", created.ItemURL),
		zap.Int64("city_id", resolved.City.ID),
		zap.Int64("district_id", resolved.District.ID))
	return created, nil
}

// GetItemByID возвращает объявление по ID
func (uc *ItemUseCase) GetItemByID(ctx context.Context, id int64) (*domain.Item, error) {
	return uc.itemRepo.GetByID(ctx, id)
}

// GetItemByURL возвращает объявление по его URL
func (uc *ItemUseCase) GetItemByURL(ctx context.Context, itemURL string) (*domain.Item, error) {
	return uc.itemRepo.GetByURL(ctx, itemURL)
}

// GetAllItems возвращает объявления с пагинацией и общее количество
func (uc *ItemUseCase) GetAllItems(ctx context.Context, skip, limit int) ([]*domain.Item, int, error) {
	items, err := uc.itemRepo.GetAll(ctx, skip, limit)
	if err != nil {
		return nil, 0, err
	}
	total, err := uc.itemRepo.Count(ctx)
	if err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

// GetItemsBySourceURL возвращает объявления одного источника
func (uc *ItemUseCase) GetItemsBySourceURL(ctx context.Context, sourceURL string, limit int) ([]*domain.Item, error) {
	return uc.itemRepo.GetBySourceURL(ctx, sourceURL, limit)
}

// GetItemsBySource возвращает объявления по имени источника
func (uc *ItemUseCase) GetItemsBySource(ctx context.Context, source string, limit int) ([]*domain.Item, error) {
	return uc.itemRepo.GetBySource(ctx, source, limit)
}

// GetRecentItems возвращает объявления за последние hours часов
func (uc *ItemUseCase) GetRecentItems(ctx context.Context, hours, limit int) ([]*domain.Item, error) {
	after := uc.now().Add(-time.Duration(hours) * time.Hour)
	return uc.itemRepo.GetSeenAfter(ctx, after, limit)
}

// DeleteItem удаляет объявление по ID
func (uc *ItemUseCase) DeleteItem(ctx context.Context, id int64) error {
	return uc.itemRepo.Delete(ctx, id)
}

// DeleteItemsOlderThanDays удаляет объявления старше указанного числа
// дней и возвращает удалённые записи
func (uc *ItemUseCase) DeleteItemsOlderThanDays(ctx context.Context, days int) ([]*domain.Item, error) {
	cutoff := uc.now().AddDate(0, 0, -days)
	deleted, err := uc.itemRepo.DeleteOlderThan(ctx, cutoff)
	if err != nil {
		return nil, err
	}

	if len(deleted) > 0 {
		uc.logger.Info("Old items deleted",
			zap.Int("count", len(deleted)),
			zap.Time("cutoff", cutoff))
	}
	return deleted, nil
}

// ResolveLocation разбирает строку локации без сохранения объявления
func (uc *ItemUseCase) ResolveLocation(ctx context.Context, rawLocation string) (*dto.ResolveLocationResponse, error) {
	resolved, cleaned, err := uc.resolver.Resolve(ctx, rawLocation)
	if err != nil {
		return nil, err
	}
	return &dto.ResolveLocationResponse{
		RawLocation:     rawLocation,
		CleanedLocation: cleaned,
		City:            resolved.City,
		District:        resolved.District,
	}, nil
}
