package usecase

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/listing-monitor/internal/domain"
)

// MockCityRepository is a mock of CityRepository
type MockCityRepository struct {
	mock.Mock
}

func (m *MockCityRepository) GetByID(ctx context.Context, id int64) (*domain.City, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.City), args.Error(1)
}

func (m *MockCityRepository) GetByNormalizedName(ctx context.Context, nameNormalized string) (*domain.City, error) {
	args := m.Called(ctx, nameNormalized)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.City), args.Error(1)
}

func (m *MockCityRepository) GetAll(ctx context.Context) ([]*domain.City, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.City), args.Error(1)
}

func (m *MockCityRepository) GetOrCreate(ctx context.Context, nameRaw, nameNormalized string) (*domain.City, error) {
	args := m.Called(ctx, nameRaw, nameNormalized)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.City), args.Error(1)
}

func (m *MockCityRepository) Create(ctx context.Context, city *domain.City) (*domain.City, error) {
	args := m.Called(ctx, city)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.City), args.Error(1)
}

func (m *MockCityRepository) Update(ctx context.Context, city *domain.City) (*domain.City, error) {
	args := m.Called(ctx, city)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.City), args.Error(1)
}

func (m *MockCityRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockDistrictRepository is a mock of DistrictRepository
type MockDistrictRepository struct {
	mock.Mock
}

func (m *MockDistrictRepository) GetByID(ctx context.Context, id int64) (*domain.District, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.District), args.Error(1)
}

func (m *MockDistrictRepository) GetAll(ctx context.Context) ([]*domain.District, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.District), args.Error(1)
}

func (m *MockDistrictRepository) GetByCityID(ctx context.Context, cityID int64) ([]*domain.District, error) {
	args := m.Called(ctx, cityID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.District), args.Error(1)
}

func (m *MockDistrictRepository) GetByIDs(ctx context.Context, ids []int64) ([]*domain.District, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.District), args.Error(1)
}

func (m *MockDistrictRepository) GetSentinelIDs(ctx context.Context) ([]int64, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]int64), args.Error(1)
}

func (m *MockDistrictRepository) GetOrCreate(ctx context.Context, cityID int64, nameRaw, nameNormalized string) (*domain.District, error) {
	args := m.Called(ctx, cityID, nameRaw, nameNormalized)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.District), args.Error(1)
}

func (m *MockDistrictRepository) Create(ctx context.Context, district *domain.District) (*domain.District, error) {
	args := m.Called(ctx, district)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.District), args.Error(1)
}

func (m *MockDistrictRepository) Update(ctx context.Context, district *domain.District) (*domain.District, error) {
	args := m.Called(ctx, district)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.District), args.Error(1)
}

func (m *MockDistrictRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockItemRepository is a mock of ItemRepository
type MockItemRepository struct {
	mock.Mock
}

func (m *MockItemRepository) Create(ctx context.Context, item *domain.Item) (*domain.Item, error) {
	args := m.Called(ctx, item)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Item), args.Error(1)
}

func (m *MockItemRepository) GetByID(ctx context.Context, id int64) (*domain.Item, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Item), args.Error(1)
}

func (m *MockItemRepository) GetByURL(ctx context.Context, itemURL string) (*domain.Item, error) {
	args := m.Called(ctx, itemURL)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Item), args.Error(1)
}

func (m *MockItemRepository) GetAll(ctx context.Context, skip, limit int) ([]*domain.Item, error) {
	args := m.Called(ctx, skip, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Item), args.Error(1)
}

func (m *MockItemRepository) Count(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func (m *MockItemRepository) GetBySourceURL(ctx context.Context, sourceURL string, limit int) ([]*domain.Item, error) {
	args := m.Called(ctx, sourceURL, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Item), args.Error(1)
}

func (m *MockItemRepository) GetBySource(ctx context.Context, source string, limit int) ([]*domain.Item, error) {
	args := m.Called(ctx, source, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Item), args.Error(1)
}

func (m *MockItemRepository) GetSeenAfter(ctx context.Context, after time.Time, limit int) ([]*domain.Item, error) {
	args := m.Called(ctx, after, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Item), args.Error(1)
}

func (m *MockItemRepository) ListToSend(ctx context.Context, filter domain.DispatchFilter) ([]*domain.Item, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Item), args.Error(1)
}

func (m *MockItemRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockItemRepository) DeleteOlderThan(ctx context.Context, cutoff time.Time) ([]*domain.Item, error) {
	args := m.Called(ctx, cutoff)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Item), args.Error(1)
}

// MockTaskRepository is a mock of TaskRepository
type MockTaskRepository struct {
	mock.Mock
}

func (m *MockTaskRepository) GetByID(ctx context.Context, id int64) (*domain.MonitoringTask, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MonitoringTask), args.Error(1)
}

func (m *MockTaskRepository) GetAll(ctx context.Context) ([]*domain.MonitoringTask, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.MonitoringTask), args.Error(1)
}

func (m *MockTaskRepository) GetByChatID(ctx context.Context, chatID string) ([]*domain.MonitoringTask, error) {
	args := m.Called(ctx, chatID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.MonitoringTask), args.Error(1)
}

func (m *MockTaskRepository) GetByChatAndName(ctx context.Context, chatID, name string) (*domain.MonitoringTask, error) {
	args := m.Called(ctx, chatID, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MonitoringTask), args.Error(1)
}

func (m *MockTaskRepository) HasURLForChat(ctx context.Context, chatID, url string) (bool, error) {
	args := m.Called(ctx, chatID, url)
	return args.Bool(0), args.Error(1)
}

func (m *MockTaskRepository) Create(ctx context.Context, task *domain.MonitoringTask, allowedDistrictIDs []int64) (*domain.MonitoringTask, error) {
	args := m.Called(ctx, task, allowedDistrictIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MonitoringTask), args.Error(1)
}

func (m *MockTaskRepository) Update(ctx context.Context, task *domain.MonitoringTask, allowedDistrictIDs []int64) (*domain.MonitoringTask, error) {
	args := m.Called(ctx, task, allowedDistrictIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MonitoringTask), args.Error(1)
}

func (m *MockTaskRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockTaskRepository) DeleteByChatID(ctx context.Context, chatID string) (int, error) {
	args := m.Called(ctx, chatID)
	return args.Int(0), args.Error(1)
}

func (m *MockTaskRepository) GetPending(ctx context.Context, threshold time.Time) ([]*domain.MonitoringTask, error) {
	args := m.Called(ctx, threshold)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.MonitoringTask), args.Error(1)
}

func (m *MockTaskRepository) TouchLastGotItem(ctx context.Context, id int64, at time.Time) error {
	args := m.Called(ctx, id, at)
	return args.Error(0)
}

func (m *MockTaskRepository) TouchLastGotItemByChat(ctx context.Context, chatID string, at time.Time) error {
	args := m.Called(ctx, chatID, at)
	return args.Error(0)
}

// MockCacheRepository is a mock of CacheRepository
type MockCacheRepository struct {
	mock.Mock
}

func (m *MockCacheRepository) Get(ctx context.Context, key string) ([]byte, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockCacheRepository) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	args := m.Called(ctx, key, value, ttl)
	return args.Error(0)
}

func (m *MockCacheRepository) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func (m *MockCacheRepository) GetSentinelCityID(ctx context.Context) (int64, bool, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Bool(1), args.Error(2)
}

func (m *MockCacheRepository) SetSentinelCityID(ctx context.Context, id int64, ttl time.Duration) error {
	args := m.Called(ctx, id, ttl)
	return args.Error(0)
}

func (m *MockCacheRepository) GetSentinelDistrictIDs(ctx context.Context) ([]int64, bool, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Bool(1), args.Error(2)
	}
	return args.Get(0).([]int64), args.Bool(1), args.Error(2)
}

func (m *MockCacheRepository) SetSentinelDistrictIDs(ctx context.Context, ids []int64, ttl time.Duration) error {
	args := m.Called(ctx, ids, ttl)
	return args.Error(0)
}

func (m *MockCacheRepository) InvalidateSentinels(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
