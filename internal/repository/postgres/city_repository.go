package postgres

import (
	"context"
	"database/sql"
	goerrors "errors"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/listing-monitor/internal/domain"
	"github.com/listing-monitor/internal/domain/repository"
	"github.com/listing-monitor/internal/pkg/errors"
)

type cityRepository struct {
	db     *sqlx.DB
	logger *zap.Logger
}

// NewCityRepository создает новый экземпляр CityRepository
func NewCityRepository(db *DB) repository.CityRepository {
	return &cityRepository{
		db:     db.DB,
		logger: db.logger,
	}
}

// GetByID возвращает город по ID
func (r *cityRepository) GetByID(ctx context.Context, id int64) (*domain.City, error) {
	var city domain.City
	err := r.db.GetContext(ctx, &city,
		`SELECT id, name_raw, name_normalized FROM cities WHERE id = $1`, id)
	if goerrors.Is(err, sql.ErrNoRows) {
		return nil, errors.ErrCityNotFound
	}
	if err != nil {
		r.logger.Error("Failed to get city by ID", zap.Int64("id", id), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}
	return &city, nil
}

// GetByNormalizedName возвращает город по нормализованному имени
func (r *cityRepository) GetByNormalizedName(ctx context.Context, nameNormalized string) (*domain.City, error) {
	var city domain.City
	err := r.db.GetContext(ctx, &city,
		`SELECT id, name_raw, name_normalized FROM cities WHERE name_normalized = $1`, nameNormalized)
	if goerrors.Is(err, sql.ErrNoRows) {
		return nil, errors.ErrCityNotFound
	}
	if err != nil {
		r.logger.Error("Failed to get city by normalized name",
			zap.String("name_normalized", nameNormalized), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}
	return &city, nil
}

// GetAll возвращает все города
func (r *cityRepository) GetAll(ctx context.Context) ([]*domain.City, error) {
	var cities []*domain.City
	err := r.db.SelectContext(ctx, &cities,
		`SELECT id, name_raw, name_normalized FROM cities ORDER BY name_normalized`)
	if err != nil {
		r.logger.Error("Failed to list cities", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}
	return cities, nil
}

// GetOrCreate атомарно возвращает существующий город или создаёт новый.
// Upsert с RETURNING отдаёт строку победителя и при конкурентной вставке,
// поэтому повторная выборка после конфликта не нужна.
func (r *cityRepository) GetOrCreate(ctx context.Context, nameRaw, nameNormalized string) (*domain.City, error) {
	query := `
		INSERT INTO cities (name_raw, name_normalized)
		VALUES ($1, $2)
		ON CONFLICT (name_normalized)
		DO UPDATE SET name_normalized = EXCLUDED.name_normalized
		RETURNING id, name_raw, name_normalized
	`

	var city domain.City
	err := r.db.GetContext(ctx, &city, query, nameRaw, nameNormalized)
	if err != nil {
		r.logger.Error("Failed to get or create city",
			zap.String("name_normalized", nameNormalized), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}
	return &city, nil
}

// Create создаёт город
func (r *cityRepository) Create(ctx context.Context, city *domain.City) (*domain.City, error) {
	var created domain.City
	err := r.db.GetContext(ctx, &created,
		`INSERT INTO cities (name_raw, name_normalized) VALUES ($1, $2)
		 RETURNING id, name_raw, name_normalized`,
		city.NameRaw, city.NameNormalized)
	if isUniqueViolation(err) {
		return nil, errors.ErrCityExists
	}
	if err != nil {
		r.logger.Error("Failed to create city",
			zap.String("name_normalized", city.NameNormalized), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}
	return &created, nil
}

// Update обновляет город
func (r *cityRepository) Update(ctx context.Context, city *domain.City) (*domain.City, error) {
	var updated domain.City
	err := r.db.GetContext(ctx, &updated,
		`UPDATE cities SET name_raw = $2, name_normalized = $3 WHERE id = $1
		 RETURNING id, name_raw, name_normalized`,
		city.ID, city.NameRaw, city.NameNormalized)
	if goerrors.Is(err, sql.ErrNoRows) {
		return nil, errors.ErrCityNotFound
	}
	if isUniqueViolation(err) {
		return nil, errors.ErrCityExists
	}
	if err != nil {
		r.logger.Error("Failed to update city", zap.Int64("id", city.ID), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}
	return &updated, nil
}

// Delete удаляет город; его районы удаляются каскадом на уровне схемы
func (r *cityRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM cities WHERE id = $1`, id)
	if err != nil {
		r.logger.Error("Failed to delete city", zap.Int64("id", id), zap.Error(err))
		return errors.ErrDatabaseError
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return errors.ErrDatabaseError
	}
	if affected == 0 {
		return errors.ErrCityNotFound
	}
	return nil
}
