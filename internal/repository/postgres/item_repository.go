package postgres

import (
	"context"
	"database/sql"
	goerrors "errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/listing-monitor/internal/domain"
	"github.com/listing-monitor/internal/domain/repository"
	"github.com/listing-monitor/internal/pkg/errors"
)

const itemColumns = `id, item_url, source_url, title, price, location,
	created_at, created_at_pretty, image_url, description, source,
	first_seen, city_id, district_id`

type itemRepository struct {
	db     *sqlx.DB
	logger *zap.Logger
}

// NewItemRepository создает новый экземпляр ItemRepository
func NewItemRepository(db *DB) repository.ItemRepository {
	return &itemRepository{
		db:     db.DB,
		logger: db.logger,
	}
}

// Create сохраняет новое объявление
func (r *itemRepository) Create(ctx context.Context, item *domain.Item) (*domain.Item, error) {
	query := `
		INSERT INTO item_records (
			item_url, source_url, title, price, location,
			created_at, created_at_pretty, image_url, description, source,
			first_seen, city_id, district_id
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING ` + itemColumns

	var created domain.Item
	err := r.db.GetContext(ctx, &created, query,
		item.ItemURL, item.SourceURL, item.Title, item.Price, item.Location,
		item.CreatedAt, item.CreatedAtPretty, item.ImageURL, item.Description, item.Source,
		item.FirstSeen, item.CityID, item.DistrictID,
	)
	if isUniqueViolation(err) {
		return nil, errors.ErrItemExists
	}
	if err != nil {
		r.logger.Error("Failed to create item", zap.String("item_url", item.ItemURL), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}
	return &created, nil
}

// GetByID возвращает объявление по ID
func (r *itemRepository) GetByID(ctx context.Context, id int64) (*domain.Item, error) {
	var item domain.Item
	err := r.db.GetContext(ctx, &item,
		`SELECT `+itemColumns+` FROM item_records WHERE id = $1`, id)
	if goerrors.Is(err, sql.ErrNoRows) {
		return nil, errors.ErrItemNotFound
	}
	if err != nil {
		r.logger.Error("Failed to get item by ID", zap.Int64("id", id), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}
	return &item, nil
}

// GetByURL возвращает объявление по его уникальному URL
func (r *itemRepository) GetByURL(ctx context.Context, itemURL string) (*domain.Item, error) {
	var item domain.Item
	err := r.db.GetContext(ctx, &item,
		`SELECT `+itemColumns+` FROM item_records WHERE item_url = $1`, itemURL)
	if goerrors.Is(err, sql.ErrNoRows) {
		return nil, errors.ErrItemNotFound
	}
	if err != nil {
		r.logger.Error("Failed to get item by URL", zap.String("item_url", itemURL), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}
	return &item, nil
}

// GetAll возвращает объявления с пагинацией
func (r *itemRepository) GetAll(ctx context.Context, skip, limit int) ([]*domain.Item, error) {
	var items []*domain.Item
	err := r.db.SelectContext(ctx, &items,
		`SELECT `+itemColumns+` FROM item_records ORDER BY id OFFSET $1 LIMIT $2`, skip, limit)
	if err != nil {
		r.logger.Error("Failed to list items", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}
	return items, nil
}

// Count возвращает общее число объявлений
func (r *itemRepository) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM item_records`); err != nil {
		r.logger.Error("Failed to count items", zap.Error(err))
		return 0, errors.ErrDatabaseError
	}
	return count, nil
}

// GetBySourceURL возвращает объявления одного источника, новые первыми
func (r *itemRepository) GetBySourceURL(ctx context.Context, sourceURL string, limit int) ([]*domain.Item, error) {
	var items []*domain.Item
	err := r.db.SelectContext(ctx, &items,
		`SELECT `+itemColumns+` FROM item_records
		 WHERE source_url = $1 ORDER BY first_seen DESC LIMIT $2`, sourceURL, limit)
	if err != nil {
		r.logger.Error("Failed to list items by source URL", zap.String("source_url", sourceURL), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}
	return items, nil
}

// GetBySource возвращает объявления по имени источника
func (r *itemRepository) GetBySource(ctx context.Context, source string, limit int) ([]*domain.Item, error) {
	var items []*domain.Item
	err := r.db.SelectContext(ctx, &items,
		`SELECT `+itemColumns+` FROM item_records
		 WHERE source = $1 ORDER BY first_seen DESC LIMIT $2`, source, limit)
	if err != nil {
		r.logger.Error("Failed to list items by source", zap.String("source", source), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}
	return items, nil
}

// GetSeenAfter возвращает объявления новее указанного времени
func (r *itemRepository) GetSeenAfter(ctx context.Context, after time.Time, limit int) ([]*domain.Item, error) {
	var items []*domain.Item
	err := r.db.SelectContext(ctx, &items,
		`SELECT `+itemColumns+` FROM item_records
		 WHERE first_seen > $1 ORDER BY first_seen DESC LIMIT $2`, after, limit)
	if err != nil {
		r.logger.Error("Failed to list recent items", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}
	return items, nil
}

// ListToSend возвращает объявления, подходящие под фильтр диспатча.
// Условия по городу и району включают записи с локацией-заглушкой:
// пропущенное объявление хуже лишнего.
func (r *itemRepository) ListToSend(ctx context.Context, filter domain.DispatchFilter) ([]*domain.Item, error) {
	query := `SELECT ` + itemColumns + ` FROM item_records
		WHERE source_url = $1 AND first_seen > $2`
	args := []interface{}{filter.SourceURL, filter.Since}
	argIndex := 3

	if filter.CityID != nil {
		if filter.SentinelCityID != nil {
			query += fmt.Sprintf(" AND (city_id = $%d OR city_id = $%d)", argIndex, argIndex+1)
			args = append(args, *filter.CityID, *filter.SentinelCityID)
			argIndex += 2
		} else {
			// Заглушки нет в таксономии - вырождаемся в простое равенство
			query += fmt.Sprintf(" AND city_id = $%d", argIndex)
			args = append(args, *filter.CityID)
			argIndex++
		}
	}

	if len(filter.DistrictIDs) > 0 {
		districtIDs := make([]int64, 0, len(filter.DistrictIDs)+len(filter.SentinelDistrictIDs))
		districtIDs = append(districtIDs, filter.DistrictIDs...)
		districtIDs = append(districtIDs, filter.SentinelDistrictIDs...)

		placeholders := ""
		for i, id := range districtIDs {
			if i > 0 {
				placeholders += ","
			}
			placeholders += fmt.Sprintf("$%d", argIndex)
			args = append(args, id)
			argIndex++
		}
		query += fmt.Sprintf(" AND district_id IN (%s)", placeholders)
	}

	query += " ORDER BY first_seen DESC"

	var items []*domain.Item
	if err := r.db.SelectContext(ctx, &items, query, args...); err != nil {
		r.logger.Error("Failed to list items to send",
			zap.String("source_url", filter.SourceURL), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}
	return items, nil
}

// Delete удаляет объявление по ID
func (r *itemRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM item_records WHERE id = $1`, id)
	if err != nil {
		r.logger.Error("Failed to delete item", zap.Int64("id", id), zap.Error(err))
		return errors.ErrDatabaseError
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return errors.ErrDatabaseError
	}
	if affected == 0 {
		return errors.ErrItemNotFound
	}
	return nil
}

// DeleteOlderThan удаляет устаревшие объявления и возвращает удалённые записи
func (r *itemRepository) DeleteOlderThan(ctx context.Context, cutoff time.Time) ([]*domain.Item, error) {
	var deleted []*domain.Item
	err := r.db.SelectContext(ctx, &deleted,
		`DELETE FROM item_records WHERE first_seen < $1 RETURNING `+itemColumns, cutoff)
	if err != nil {
		r.logger.Error("Failed to delete old items", zap.Time("cutoff", cutoff), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}
	return deleted, nil
}
