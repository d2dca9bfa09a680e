package testhelpers

import (
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/listing-monitor/internal/domain/repository"
	"github.com/listing-monitor/internal/repository/postgres"
)

// NewDBForTest creates a postgres.DB with test database and logger
func NewDBForTest(db *sqlx.DB, logger *zap.Logger) *postgres.DB {
	return postgres.NewDBForTest(db, logger)
}

// NewCityRepositoryForTest creates a city repository with test database and logger
func NewCityRepositoryForTest(db *sqlx.DB, logger *zap.Logger) repository.CityRepository {
	return postgres.NewCityRepository(NewDBForTest(db, logger))
}

// NewDistrictRepositoryForTest creates a district repository with test database and logger
func NewDistrictRepositoryForTest(db *sqlx.DB, logger *zap.Logger) repository.DistrictRepository {
	return postgres.NewDistrictRepository(NewDBForTest(db, logger))
}

// NewItemRepositoryForTest creates an item repository with test database and logger
func NewItemRepositoryForTest(db *sqlx.DB, logger *zap.Logger) repository.ItemRepository {
	return postgres.NewItemRepository(NewDBForTest(db, logger))
}

// NewTaskRepositoryForTest creates a task repository with test database and logger
func NewTaskRepositoryForTest(db *sqlx.DB, logger *zap.Logger) repository.TaskRepository {
	return postgres.NewTaskRepository(NewDBForTest(db, logger))
}
