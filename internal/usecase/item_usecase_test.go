package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"

	"github.com/listing-monitor/internal/domain"
	"github.com/listing-monitor/internal/usecase/dto"
)

func newItemUseCase(
	itemRepo *MockItemRepository,
	cityRepo *MockCityRepository,
	districtRepo *MockDistrictRepository,
	now time.Time,
) *ItemUseCase {
	logger := zap.NewNop()
	taxonomy := NewTaxonomyUseCase(cityRepo, districtRepo, &MockCacheRepository{}, logger, time.Minute)
	resolver := NewLocationResolver(taxonomy, logger)
	uc := NewItemUseCase(itemRepo, resolver, logger)
	uc.now = func() time.Time { return now }
	return uc
}

func expectSentinelResolve(cityRepo *MockCityRepository, districtRepo *MockDistrictRepository, ctx context.Context) {
	city := &domain.City{ID: 1, NameRaw: domain.UnknownName, NameNormalized: domain.UnknownNameNormalized}
	district := &domain.District{ID: 1, CityID: 1, NameRaw: domain.UnknownName, NameNormalized: domain.UnknownNameNormalized}
	cityRepo.On("GetOrCreate", ctx, domain.UnknownName, domain.UnknownNameNormalized).Return(city, nil)
	districtRepo.On("GetOrCreate", ctx, int64(1), domain.UnknownName, domain.UnknownNameNormalized).Return(district, nil)
}

func TestItemUseCase_CreateItem(t *testing.T) {
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	ctx := context.Background()

	t.Run("resolves location and stamps first_seen", func(t *testing.T) {
		itemRepo := &MockItemRepository{}
		cityRepo := &MockCityRepository{}
		districtRepo := &MockDistrictRepository{}
		uc := newItemUseCase(itemRepo, cityRepo, districtRepo, now)

		city := &domain.City{ID: 2, NameRaw: "Warszawa", NameNormalized: "warszawa"}
		district := &domain.District{ID: 21, CityID: 2, NameRaw: "Mokotów", NameNormalized: "mokotow"}
		cityRepo.On("GetOrCreate", ctx, "Warszawa", "warszawa").Return(city, nil)
		districtRepo.On("GetOrCreate", ctx, int64(2), "Mokotów", "mokotow").Return(district, nil)

		location := "Warszawa, Mokotów - Odświeżono"
		itemRepo.On("Create", ctx, mock.MatchedBy(func(item *domain.Item) bool {
			return item.FirstSeen.Equal(now) &&
				item.CityID != nil && *item.CityID == 2 &&
				item.DistrictID != nil && *item.DistrictID == 21 &&
				item.Location != nil && *item.Location == "Warszawa, Mokotów"
		})).Return(&domain.Item{ID: 100, ItemURL: "https://www.olx.pl/oferta/1"}, nil)

		created, err := uc.CreateItem(ctx, dto.CreateItemRequest{
			ItemURL:   "https://www.olx.pl/oferta/1",
			SourceURL: "https://www.olx.pl/search",
			Location:  &location,
		})

		assert.NoError(t, err)
		assert.Equal(t, int64(100), created.ID)
		itemRepo.AssertExpectations(t)
	})

	t.Run("detects source from item URL", func(t *testing.T) {
		itemRepo := &MockItemRepository{}
		cityRepo := &MockCityRepository{}
		districtRepo := &MockDistrictRepository{}
		uc := newItemUseCase(itemRepo, cityRepo, districtRepo, now)

		expectSentinelResolve(cityRepo, districtRepo, ctx)

		itemRepo.On("Create", ctx, mock.MatchedBy(func(item *domain.Item) bool {
			return item.Source != nil && *item.Source == domain.SourceOtodom
		})).Return(&domain.Item{ID: 1}, nil)

		_, err := uc.CreateItem(ctx, dto.CreateItemRequest{
			ItemURL:   "https://www.otodom.pl/pl/oferta/mieszkanie-1",
			SourceURL: "https://www.otodom.pl/search",
		})
		assert.NoError(t, err)
		itemRepo.AssertExpectations(t)
	})

	t.Run("missing location leaves location nil but sets sentinels", func(t *testing.T) {
		itemRepo := &MockItemRepository{}
		cityRepo := &MockCityRepository{}
		districtRepo := &MockDistrictRepository{}
		uc := newItemUseCase(itemRepo, cityRepo, districtRepo, now)

		expectSentinelResolve(cityRepo, districtRepo, ctx)

		itemRepo.On("Create", ctx, mock.MatchedBy(func(item *domain.Item) bool {
			return item.Location == nil &&
				item.CityID != nil && item.DistrictID != nil
		})).Return(&domain.Item{ID: 2}, nil)

		_, err := uc.CreateItem(ctx, dto.CreateItemRequest{
			ItemURL:   "https://www.olx.pl/oferta/2",
			SourceURL: "https://www.olx.pl/search",
		})
		assert.NoError(t, err)
		itemRepo.AssertExpectations(t)
	})

	t.Run("explicit source preserved", func(t *testing.T) {
		itemRepo := &MockItemRepository{}
		cityRepo := &MockCityRepository{}
		districtRepo := &MockDistrictRepository{}
		uc := newItemUseCase(itemRepo, cityRepo, districtRepo, now)

		expectSentinelResolve(cityRepo, districtRepo, ctx)

		source := "OLX"
		itemRepo.On("Create", ctx, mock.MatchedBy(func(item *domain.Item) bool {
			return item.Source != nil && *item.Source == "OLX"
		})).Return(&domain.Item{ID: 3}, nil)

		_, err := uc.CreateItem(ctx, dto.CreateItemRequest{
			ItemURL:   "https://example.com/listing/3",
			SourceURL: "https://example.com/search",
			Source:    &source,
		})
		assert.NoError(t, err)
	})
}

func TestItemUseCase_GetRecentItems(t *testing.T) {
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	ctx := context.Background()

	itemRepo := &MockItemRepository{}
	uc := newItemUseCase(itemRepo, &MockCityRepository{}, &MockDistrictRepository{}, now)

	after := time.Date(2024, 5, 1, 6, 0, 0, 0, time.UTC)
	expected := []*domain.Item{{ID: 1}}
	itemRepo.On("GetSeenAfter", ctx, after, 50).Return(expected, nil)

	items, err := uc.GetRecentItems(ctx, 6, 50)
	assert.NoError(t, err)
	assert.Equal(t, expected, items)
}

func TestItemUseCase_DeleteItemsOlderThanDays(t *testing.T) {
	now := time.Date(2024, 5, 31, 12, 0, 0, 0, time.UTC)
	ctx := context.Background()

	itemRepo := &MockItemRepository{}
	uc := newItemUseCase(itemRepo, &MockCityRepository{}, &MockDistrictRepository{}, now)

	cutoff := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	deleted := []*domain.Item{{ID: 1}, {ID: 2}}
	itemRepo.On("DeleteOlderThan", ctx, cutoff).Return(deleted, nil)

	got, err := uc.DeleteItemsOlderThanDays(ctx, 30)
	assert.NoError(t, err)
	assert.Len(t, got, 2)
}
