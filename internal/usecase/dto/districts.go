package dto

import "github.com/listing-monitor/internal/domain"

// CreateDistrictRequest - запрос на создание района
type CreateDistrictRequest struct {
	CityID         int64  `json:"city_id" validate:"required"`
	NameRaw        string `json:"name_raw" validate:"required"`
	NameNormalized string `json:"name_normalized"`
}

// UpdateDistrictRequest - запрос на обновление района
type UpdateDistrictRequest struct {
	CityID         *int64  `json:"city_id"`
	NameRaw        *string `json:"name_raw"`
	NameNormalized *string `json:"name_normalized"`
}

// DistrictListResponse - список районов
type DistrictListResponse struct {
	Districts []*domain.District `json:"districts"`
	Total     int                `json:"total"`
}
