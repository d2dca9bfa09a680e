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

type districtRepository struct {
	db     *sqlx.DB
	logger *zap.Logger
}

// NewDistrictRepository создает новый экземпляр DistrictRepository
func NewDistrictRepository(db *DB) repository.DistrictRepository {
	return &districtRepository{
		db:     db.DB,
		logger: db.logger,
	}
}

// GetByID возвращает район по ID
func (r *districtRepository) GetByID(ctx context.Context, id int64) (*domain.District, error) {
	var district domain.District
	err := r.db.GetContext(ctx, &district,
		`SELECT id, city_id, name_raw, name_normalized FROM districts WHERE id = $1`, id)
	if goerrors.Is(err, sql.ErrNoRows) {
		return nil, errors.ErrDistrictNotFound
	}
	if err != nil {
		r.logger.Error("Failed to get district by ID", zap.Int64("id", id), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}
	return &district, nil
}

// GetAll возвращает все районы
func (r *districtRepository) GetAll(ctx context.Context) ([]*domain.District, error) {
	var districts []*domain.District
	err := r.db.SelectContext(ctx, &districts,
		`SELECT id, city_id, name_raw, name_normalized FROM districts ORDER BY name_normalized`)
	if err != nil {
		r.logger.Error("Failed to list districts", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}
	return districts, nil
}

// GetByCityID возвращает районы города
func (r *districtRepository) GetByCityID(ctx context.Context, cityID int64) ([]*domain.District, error) {
	var districts []*domain.District
	err := r.db.SelectContext(ctx, &districts,
		`SELECT id, city_id, name_raw, name_normalized FROM districts
		 WHERE city_id = $1 ORDER BY name_normalized`, cityID)
	if err != nil {
		r.logger.Error("Failed to list districts by city", zap.Int64("city_id", cityID), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}
	return districts, nil
}

// GetByIDs возвращает районы по списку идентификаторов
func (r *districtRepository) GetByIDs(ctx context.Context, ids []int64) ([]*domain.District, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	query, args, err := sqlx.In(
		`SELECT id, city_id, name_raw, name_normalized FROM districts WHERE id IN (?)`, ids)
	if err != nil {
		return nil, errors.ErrDatabaseError
	}
	query = r.db.Rebind(query)

	var districts []*domain.District
	if err := r.db.SelectContext(ctx, &districts, query, args...); err != nil {
		r.logger.Error("Failed to list districts by IDs", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}
	return districts, nil
}

// GetSentinelIDs возвращает идентификаторы районов-заглушек по всем городам
func (r *districtRepository) GetSentinelIDs(ctx context.Context) ([]int64, error) {
	var ids []int64
	err := r.db.SelectContext(ctx, &ids,
		`SELECT id FROM districts WHERE name_normalized = $1`, domain.UnknownNameNormalized)
	if err != nil {
		r.logger.Error("Failed to get sentinel district IDs", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}
	return ids, nil
}

// GetOrCreate атомарно возвращает существующий район города или создаёт новый
func (r *districtRepository) GetOrCreate(ctx context.Context, cityID int64, nameRaw, nameNormalized string) (*domain.District, error) {
	query := `
		INSERT INTO districts (city_id, name_raw, name_normalized)
		VALUES ($1, $2, $3)
		ON CONFLICT (city_id, name_normalized)
		DO UPDATE SET name_normalized = EXCLUDED.name_normalized
		RETURNING id, city_id, name_raw, name_normalized
	`

	var district domain.District
	err := r.db.GetContext(ctx, &district, query, cityID, nameRaw, nameNormalized)
	if err != nil {
		r.logger.Error("Failed to get or create district",
			zap.Int64("city_id", cityID),
			zap.String("name_normalized", nameNormalized),
			zap.Error(err))
		return nil, errors.ErrDatabaseError
	}
	return &district, nil
}

// Create создаёт район
func (r *districtRepository) Create(ctx context.Context, district *domain.District) (*domain.District, error) {
	var created domain.District
	err := r.db.GetContext(ctx, &created,
		`INSERT INTO districts (city_id, name_raw, name_normalized) VALUES ($1, $2, $3)
		 RETURNING id, city_id, name_raw, name_normalized`,
		district.CityID, district.NameRaw, district.NameNormalized)
	if isUniqueViolation(err) {
		return nil, errors.ErrDistrictExists
	}
	if err != nil {
		r.logger.Error("Failed to create district",
			zap.Int64("city_id", district.CityID),
			zap.String("name_normalized", district.NameNormalized),
			zap.Error(err))
		return nil, errors.ErrDatabaseError
	}
	return &created, nil
}

// Update обновляет район
func (r *districtRepository) Update(ctx context.Context, district *domain.District) (*domain.District, error) {
	var updated domain.District
	err := r.db.GetContext(ctx, &updated,
		`UPDATE districts SET city_id = $2, name_raw = $3, name_normalized = $4 WHERE id = $1
		 RETURNING id, city_id, name_raw, name_normalized`,
		district.ID, district.CityID, district.NameRaw, district.NameNormalized)
	if goerrors.Is(err, sql.ErrNoRows) {
		return nil, errors.ErrDistrictNotFound
	}
	if isUniqueViolation(err) {
		return nil, errors.ErrDistrictExists
	}
	if err != nil {
		r.logger.Error("Failed to update district", zap.Int64("id", district.ID), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}
	return &updated, nil
}

// Delete удаляет район
func (r *districtRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM districts WHERE id = $1`, id)
	if err != nil {
		r.logger.Error("Failed to delete district", zap.Int64("id", id), zap.Error(err))
		return errors.ErrDatabaseError
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return errors.ErrDatabaseError
	}
	if affected == 0 {
		return errors.ErrDistrictNotFound
	}
	return nil
}
