package dto

import "github.com/listing-monitor/internal/domain"

// CreateTaskRequest - запрос на создание задачи мониторинга.
// Пустой AllowedDistrictIDs означает отсутствие ограничения по районам.
type CreateTaskRequest struct {
	ChatID             string  `json:"chat_id" validate:"required"`
	Name               string  `json:"name" validate:"required,max=64"`
	URL                string  `json:"url" validate:"required"`
	CityID             *int64  `json:"city_id"`
	AllowedDistrictIDs []int64 `json:"allowed_district_ids"`
}

// UpdateTaskRequest - запрос на обновление задачи.
// nil AllowedDistrictIDs оставляет список районов без изменений,
// пустой список очищает его.
type UpdateTaskRequest struct {
	Name               *string  `json:"name" validate:"omitempty,max=64"`
	URL                *string  `json:"url"`
	CityID             *int64   `json:"city_id"`
	AllowedDistrictIDs *[]int64 `json:"allowed_district_ids"`
}

// TaskListResponse - список задач
type TaskListResponse struct {
	Tasks []*domain.MonitoringTask `json:"tasks"`
	Total int                      `json:"total"`
}
