package domain

import "time"

// MonitoringTask описывает, какие объявления хочет получать подписчик.
// Пара (chat_id, name) уникальна. Пустой список AllowedDistricts означает
// отсутствие ограничения по районам.
type MonitoringTask struct {
	ID           int64      `json:"id" db:"id"`
	ChatID       string     `json:"chat_id" db:"chat_id"`
	Name         string     `json:"name" db:"name"`
	URL          string     `json:"url" db:"url"`
	LastUpdated  time.Time  `json:"last_updated" db:"last_updated"`
	LastGotItem  *time.Time `json:"last_got_item,omitempty" db:"last_got_item"`
	CityID       *int64     `json:"city_id,omitempty" db:"city_id"`

	AllowedDistricts []District `json:"allowed_districts,omitempty"`
}

// AllowedDistrictIDs возвращает идентификаторы разрешённых районов
func (t *MonitoringTask) AllowedDistrictIDs() []int64 {
	if len(t.AllowedDistricts) == 0 {
		return nil
	}
	ids := make([]int64, 0, len(t.AllowedDistricts))
	for _, d := range t.AllowedDistricts {
		ids = append(ids, d.ID)
	}
	return ids
}
