package dto

import (
	"time"

	"github.com/listing-monitor/internal/domain"
)

// CreateItemRequest - запрос на приём объявления от скрапера
type CreateItemRequest struct {
	ItemURL         string     `json:"item_url" validate:"required"`
	SourceURL       string     `json:"source_url" validate:"required"`
	Title           *string    `json:"title"`
	Price           *string    `json:"price"`
	Location        *string    `json:"location"`
	CreatedAt       *time.Time `json:"created_at"`
	CreatedAtPretty *string    `json:"created_at_pretty"`
	ImageURL        *string    `json:"image_url"`
	Description     *string    `json:"description"`
	Source          *string    `json:"source"`
}

// ItemListResponse - список объявлений
type ItemListResponse struct {
	Items []*domain.Item `json:"items"`
	Total int            `json:"total"`
}

// ItemsToSendResponse - объявления к отправке по задаче
type ItemsToSendResponse struct {
	TaskID   int64          `json:"task_id"`
	TaskName string         `json:"task_name"`
	ChatID   string         `json:"chat_id"`
	Items    []*domain.Item `json:"items"`
	Count    int            `json:"count"`
}

// CleanupResponse - результат удаления устаревших объявлений
type CleanupResponse struct {
	DeletedCount int            `json:"deleted_count"`
	DeletedItems []*domain.Item `json:"deleted_items"`
}
