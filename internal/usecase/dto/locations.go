package dto

import "github.com/listing-monitor/internal/domain"

// ResolveLocationResponse - результат разбора сырой строки локации
type ResolveLocationResponse struct {
	RawLocation     string           `json:"raw_location"`
	CleanedLocation string           `json:"cleaned_location"`
	City            *domain.City     `json:"city"`
	District        *domain.District `json:"district"`
}
