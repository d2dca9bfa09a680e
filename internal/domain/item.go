package domain

import (
	"strings"
	"time"
)

// Источники объявлений
const (
	SourceOLX    = "OLX"
	SourceOtodom = "Otodom"
)

// Item представляет запись объявления, полученную от скрапера.
// FirstSeen назначается сервером при приёме и является единственной
// меткой времени, по которой работает диспатч; CreatedAt приходит от
// источника и может отсутствовать.
type Item struct {
	ID              int64      `json:"id" db:"id"`
	ItemURL         string     `json:"item_url" db:"item_url"`
	SourceURL       string     `json:"source_url" db:"source_url"`
	Title           *string    `json:"title,omitempty" db:"title"`
	Price           *string    `json:"price,omitempty" db:"price"`
	Location        *string    `json:"location,omitempty" db:"location"`
	CreatedAt       *time.Time `json:"created_at,omitempty" db:"created_at"`
	CreatedAtPretty *string    `json:"created_at_pretty,omitempty" db:"created_at_pretty"`
	ImageURL        *string    `json:"image_url,omitempty" db:"image_url"`
	Description     *string    `json:"description,omitempty" db:"description"`
	Source          *string    `json:"source,omitempty" db:"source"`
	FirstSeen       time.Time  `json:"first_seen" db:"first_seen"`
	CityID          *int64     `json:"city_id,omitempty" db:"city_id"`
	DistrictID      *int64     `json:"district_id,omitempty" db:"district_id"`
}

// DetectSource определяет источник по URL объявления
func DetectSource(itemURL string) string {
	lower := strings.ToLower(itemURL)
	switch {
	case strings.Contains(lower, "olx.pl"):
		return SourceOLX
	case strings.Contains(lower, "otodom.pl"):
		return SourceOtodom
	default:
		return ""
	}
}
