package fiber

import (
	"context"
	"errors"
	"net/http"

	"item-stats-service/internal/stats/core/domain"
	"item-stats-service/internal/stats/core/usecase"

	"github.com/gofiber/fiber/v2"
)

type GetStatsUseCase interface {
	CompletedCount(ctx context.Context) (int64, error)
	AveragePerUser(ctx context.Context) (float64, error)
	AverageDurationCompleted(ctx context.Context) (*float64, error)
	Totals(ctx context.Context) (*domain.Totals, error)
	ItemAverageDuration(ctx context.Context, id int64) (float64, error)
}

type StatsHandler struct {
	uc GetStatsUseCase
}

func NewStatsHandler(uc GetStatsUseCase) *StatsHandler {
	return &StatsHandler{uc: uc}
}

// Register mounts the public stats routes on the items prefix.
func (h *StatsHandler) Register(r fiber.Router) {
	r.Get("/completed-count", h.CompletedCount)
	r.Get("/average_per_user", h.AveragePerUser)
	r.Get("/average_duration_completed", h.AverageDurationCompleted)
	r.Get("/totals", h.Totals)
	r.Get("/average-duration/:id", h.ItemAverageDuration)
}

// CompletedCount godoc
// @Summary Number of completed items
// @Tags Stats
// @Produce json
// @Success 200 {integer} int64
// @Failure 500 {object} ErrorResponse
// @Router /items/completed-count [get]
func (h *StatsHandler) CompletedCount(c *fiber.Ctx) error {
	count, err := h.uc.CompletedCount(c.UserContext())
	if err != nil {
		return internalError(c)
	}
	return c.Status(http.StatusOK).JSON(count)
}

// AveragePerUser godoc
// @Summary Average number of items per owner
// @Tags Stats
// @Produce json
// @Success 200 {object} AveragePerUserResponse
// @Failure 500 {object} ErrorResponse
// @Router /items/average_per_user [get]
func (h *StatsHandler) AveragePerUser(c *fiber.Ctx) error {
	avg, err := h.uc.AveragePerUser(c.UserContext())
	if err != nil {
		return internalError(c)
	}
	return c.Status(http.StatusOK).JSON(AveragePerUserResponse{AveragePerUser: avg})
}

// AverageDurationCompleted godoc
// @Summary Average duration of completed items
// @Description null when no completed item has a duration
// @Tags Stats
// @Produce json
// @Success 200 {number} float64
// @Failure 500 {object} ErrorResponse
// @Router /items/average_duration_completed [get]
func (h *StatsHandler) AverageDurationCompleted(c *fiber.Ctx) error {
	avg, err := h.uc.AverageDurationCompleted(c.UserContext())
	if err != nil {
		return internalError(c)
	}
	return c.Status(http.StatusOK).JSON(avg)
}

// Totals godoc
// @Summary Per-owner and overall completed durations
// @Tags Stats
// @Produce json
// @Success 200 {object} TotalsResponse
// @Failure 500 {object} ErrorResponse
// @Router /items/totals [get]
func (h *StatsHandler) Totals(c *fiber.Ctx) error {
	res, err := h.uc.Totals(c.UserContext())
	if err != nil {
		return internalError(c)
	}

	resp := TotalsResponse{
		TotalUsers:              res.TotalUsers,
		OverallAverageDuration:  res.OverallAverageDuration,
		AverageDurationsPerUser: make([]UserAverageResponse, 0, len(res.AverageDurationsPerUser)),
	}
	for _, u := range res.AverageDurationsPerUser {
		resp.AverageDurationsPerUser = append(resp.AverageDurationsPerUser, UserAverageResponse{
			UserID:          u.UserID.String(),
			AverageDuration: u.AverageDuration,
		})
	}

	return c.Status(http.StatusOK).JSON(resp)
}

// ItemAverageDuration godoc
// @Summary Minutes between an item's creation and its last update
// @Tags Stats
// @Produce json
// @Param id path int true "Item ID"
// @Success 200 {object} ItemAverageDurationResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /items/average-duration/{id} [get]
func (h *StatsHandler) ItemAverageDuration(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Error:   "invalid_item_id",
			Message: "item id must be a positive integer",
		})
	}

	minutes, err := h.uc.ItemAverageDuration(c.UserContext(), int64(id))
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrInvalidItemID):
			return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
				Error:   "invalid_item_id",
				Message: err.Error(),
			})
		case errors.Is(err, usecase.ErrItemNotFound):
			return c.Status(http.StatusNotFound).JSON(ErrorResponse{
				Error:   "not_found",
				Message: err.Error(),
			})
		default:
			return internalError(c)
		}
	}

	return c.Status(http.StatusOK).JSON(ItemAverageDurationResponse{AverageDurationMinutes: minutes})
}

func internalError(c *fiber.Ctx) error {
	return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
		Error: "internal_server_error",
	})
}
