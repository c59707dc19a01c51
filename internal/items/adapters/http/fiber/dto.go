package fiber

import (
	"time"

	"item-stats-service/internal/items/core/domain"
)

// CreateItemRequest represents item creation payload
// @Description Item creation DTO
type CreateItemRequest struct {
	Value     string   `json:"value" example:"groceries"`
	Name      string   `json:"name" example:"Buy milk"`
	Notes     *string  `json:"notes,omitempty"`
	Completed bool     `json:"completed"`
	Duration  *float64 `json:"duration,omitempty" example:"15"`
}

// UpdateItemRequest only changes the fields present in the body.
type UpdateItemRequest struct {
	Value     *string  `json:"value,omitempty"`
	Name      *string  `json:"name,omitempty"`
	Notes     *string  `json:"notes,omitempty"`
	Completed *bool    `json:"completed,omitempty"`
	Duration  *float64 `json:"duration,omitempty"`
}

type ItemResponse struct {
	ID        int64     `json:"id" example:"1"`
	Value     string    `json:"value"`
	Name      string    `json:"name"`
	Notes     *string   `json:"notes"`
	Completed bool      `json:"completed"`
	Duration  *float64  `json:"duration"`
	Created   time.Time `json:"created"`
	Updated   time.Time `json:"updated"`
}

type DeleteItemResponse struct {
	Success bool `json:"success" example:"true"`
}

type ErrorResponse struct {
	Error   string `json:"error" example:"invalid_item"`
	Message string `json:"message" example:"Item payload is invalid"`
}

func toItemResponse(item domain.Item) ItemResponse {
	return ItemResponse{
		ID:        item.ID,
		Value:     item.Value,
		Name:      item.Name,
		Notes:     item.Notes,
		Completed: item.Completed,
		Duration:  item.Duration,
		Created:   item.Created,
		Updated:   item.Updated,
	}
}
