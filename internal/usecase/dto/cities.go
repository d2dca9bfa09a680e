package dto

import "github.com/listing-monitor/internal/domain"

// CreateCityRequest - запрос на создание города.
// NameNormalized можно не передавать, тогда оно будет выведено из NameRaw.
type CreateCityRequest struct {
	NameRaw        string `json:"name_raw" validate:"required"`
	NameNormalized string `json:"name_normalized"`
}

// UpdateCityRequest - запрос на обновление города
type UpdateCityRequest struct {
	NameRaw        *string `json:"name_raw"`
	NameNormalized *string `json:"name_normalized"`
}

// CityListResponse - список городов
type CityListResponse struct {
	Cities []*domain.City `json:"cities"`
	Total  int            `json:"total"`
}
