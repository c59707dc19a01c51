package fiber

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"item-stats-service/internal/items/core/domain"
	"item-stats-service/internal/items/core/usecase"
	"item-stats-service/internal/platform/auth"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type ManageItemsUseCase interface {
	ListOwn(ctx context.Context, owner uuid.UUID, in usecase.ListItemsInput) (usecase.ListItemsResult, error)
	ListAll(ctx context.Context, in usecase.ListItemsInput) (usecase.ListItemsResult, error)
	Create(ctx context.Context, owner uuid.UUID, in usecase.CreateItemInput) (*domain.Item, error)
	Get(ctx context.Context, owner uuid.UUID, id int64) (*domain.Item, error)
	Update(ctx context.Context, owner uuid.UUID, id int64, in usecase.UpdateItemInput) (*domain.Item, error)
	Delete(ctx context.Context, owner uuid.UUID, id int64) error
}

type ItemHandler struct {
	uc ManageItemsUseCase
}

func NewItemHandler(uc ManageItemsUseCase) *ItemHandler {
	return &ItemHandler{uc: uc}
}

// Register mounts the item routes on r. Owner-scoped routes run requireAuth
// first. Fixed paths sharing the prefix must be registered before this, since
// /:id matches any segment.
func (h *ItemHandler) Register(r fiber.Router, requireAuth fiber.Handler) {
	r.Get("/get_all", h.ListAllItems)
	r.Get("", requireAuth, h.ListItems)
	r.Post("", requireAuth, h.CreateItem)
	r.Get("/:id", requireAuth, h.GetItem)
	r.Put("/:id", requireAuth, h.UpdateItem)
	r.Delete("/:id", requireAuth, h.DeleteItem)
}

// ListItems godoc
// @Summary List the caller's items
// @Description Paginated with react-admin style range and sort parameters
// @Tags Items
// @Produce json
// @Security BearerAuth
// @Param range query string false "Inclusive window, e.g. [0,9]"
// @Param sort query string false "Sort, e.g. [\"id\",\"ASC\"]"
// @Success 200 {array} ItemResponse
// @Header 200 {string} Content-Range "start-end/total"
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /items [get]
func (h *ItemHandler) ListItems(c *fiber.Ctx) error {
	owner, ok := auth.UserID(c)
	if !ok {
		return unauthorized(c)
	}

	in, err := parseListParams(c)
	if err != nil {
		return invalidListParams(c, err)
	}

	res, err := h.uc.ListOwn(c.UserContext(), owner, in)
	if err != nil {
		return h.listError(c, err)
	}
	return writeList(c, res)
}

// ListAllItems godoc
// @Summary List items of every user
// @Tags Items
// @Produce json
// @Param range query string false "Inclusive window, e.g. [0,9]"
// @Param sort query string false "Sort, e.g. [\"id\",\"ASC\"]"
// @Success 200 {array} ItemResponse
// @Header 200 {string} Content-Range "start-end/total"
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /items/get_all [get]
func (h *ItemHandler) ListAllItems(c *fiber.Ctx) error {
	in, err := parseListParams(c)
	if err != nil {
		return invalidListParams(c, err)
	}

	res, err := h.uc.ListAll(c.UserContext(), in)
	if err != nil {
		return h.listError(c, err)
	}
	return writeList(c, res)
}

// CreateItem godoc
// @Summary Create an item
// @Tags Items
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateItemRequest true "Item payload"
// @Success 201 {object} ItemResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /items [post]
func (h *ItemHandler) CreateItem(c *fiber.Ctx) error {
	owner, ok := auth.UserID(c)
	if !ok {
		return unauthorized(c)
	}

	var req CreateItemRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Error: "invalid_json",
		})
	}

	item, err := h.uc.Create(c.UserContext(), owner, usecase.CreateItemInput{
		Value:     req.Value,
		Name:      req.Name,
		Notes:     req.Notes,
		Completed: req.Completed,
		Duration:  req.Duration,
	})
	if err != nil {
		return itemError(c, err)
	}

	return c.Status(http.StatusCreated).JSON(toItemResponse(*item))
}

// GetItem godoc
// @Summary Get one of the caller's items
// @Tags Items
// @Produce json
// @Security BearerAuth
// @Param id path int true "Item ID"
// @Success 200 {object} ItemResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /items/{id} [get]
func (h *ItemHandler) GetItem(c *fiber.Ctx) error {
	owner, ok := auth.UserID(c)
	if !ok {
		return unauthorized(c)
	}

	id, err := itemID(c)
	if err != nil {
		return invalidItemID(c)
	}

	item, err := h.uc.Get(c.UserContext(), owner, id)
	if err != nil {
		return itemError(c, err)
	}

	return c.Status(http.StatusOK).JSON(toItemResponse(*item))
}

// UpdateItem godoc
// @Summary Update one of the caller's items
// @Description Only the fields present in the body are changed. A null notes or duration clears it.
// @Tags Items
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Item ID"
// @Param request body UpdateItemRequest true "Fields to change"
// @Success 200 {object} ItemResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /items/{id} [put]
func (h *ItemHandler) UpdateItem(c *fiber.Ctx) error {
	owner, ok := auth.UserID(c)
	if !ok {
		return unauthorized(c)
	}

	id, err := itemID(c)
	if err != nil {
		return invalidItemID(c)
	}

	var req UpdateItemRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Error: "invalid_json",
		})
	}

	nulls, err := nullFields(c)
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Error: "invalid_json",
		})
	}

	item, err := h.uc.Update(c.UserContext(), owner, id, usecase.UpdateItemInput{
		Value:         req.Value,
		Name:          req.Name,
		Notes:         req.Notes,
		Completed:     req.Completed,
		Duration:      req.Duration,
		ClearNotes:    nulls["notes"],
		ClearDuration: nulls["duration"],
	})
	if err != nil {
		return itemError(c, err)
	}

	return c.Status(http.StatusOK).JSON(toItemResponse(*item))
}

// DeleteItem godoc
// @Summary Delete one of the caller's items
// @Tags Items
// @Produce json
// @Security BearerAuth
// @Param id path int true "Item ID"
// @Success 200 {object} DeleteItemResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /items/{id} [delete]
func (h *ItemHandler) DeleteItem(c *fiber.Ctx) error {
	owner, ok := auth.UserID(c)
	if !ok {
		return unauthorized(c)
	}

	id, err := itemID(c)
	if err != nil {
		return invalidItemID(c)
	}

	if err := h.uc.Delete(c.UserContext(), owner, id); err != nil {
		return itemError(c, err)
	}

	return c.Status(http.StatusOK).JSON(DeleteItemResponse{Success: true})
}

func (h *ItemHandler) listError(c *fiber.Ctx, err error) error {
	if errors.Is(err, usecase.ErrInvalidListParams) {
		return invalidListParams(c, err)
	}
	return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
		Error: "internal_server_error",
	})
}

// parseListParams reads range=[start,end] and sort=["field","ASC"].
func parseListParams(c *fiber.Ctx) (usecase.ListItemsInput, error) {
	in := usecase.ListItemsInput{Start: 0, End: 9, SortField: "id", SortOrder: "ASC"}
	decode := c.App().Config().JSONDecoder

	if raw := c.Query("range"); raw != "" {
		var window []int
		if err := decode([]byte(raw), &window); err != nil || len(window) != 2 {
			return in, fmt.Errorf("%w: range must be [start,end]", usecase.ErrInvalidListParams)
		}
		in.Start, in.End = window[0], window[1]
	}

	if raw := c.Query("sort"); raw != "" {
		var sort []string
		if err := decode([]byte(raw), &sort); err != nil || len(sort) != 2 {
			return in, fmt.Errorf("%w: sort must be [field,order]", usecase.ErrInvalidListParams)
		}
		in.SortField, in.SortOrder = sort[0], sort[1]
	}

	return in, nil
}

// nullFields reports the top-level keys sent as an explicit JSON null, which
// pointer fields cannot tell apart from absent ones.
func nullFields(c *fiber.Ctx) (map[string]bool, error) {
	if !c.Is("json") {
		return nil, nil
	}

	var raw map[string]json.RawMessage
	if err := c.App().Config().JSONDecoder(c.Body(), &raw); err != nil {
		return nil, err
	}

	nulls := make(map[string]bool, len(raw))
	for key, value := range raw {
		if string(bytes.TrimSpace(value)) == "null" {
			nulls[key] = true
		}
	}
	return nulls, nil
}

func writeList(c *fiber.Ctx, res usecase.ListItemsResult) error {
	resp := make([]ItemResponse, 0, len(res.Items))
	for _, item := range res.Items {
		resp = append(resp, toItemResponse(item))
	}

	c.Set("Content-Range", fmt.Sprintf("%d-%d/%d", res.Start, res.Start+len(res.Items), res.Total))
	return c.Status(http.StatusOK).JSON(resp)
}

func itemID(c *fiber.Ctx) (int64, error) {
	id, err := c.ParamsInt("id")
	if err != nil {
		return 0, err
	}
	if id <= 0 {
		return 0, errors.New("id must be positive")
	}
	return int64(id), nil
}

func itemError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, usecase.ErrInvalidItem):
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Error:   "invalid_item",
			Message: err.Error(),
		})
	case errors.Is(err, usecase.ErrItemNotFound):
		return c.Status(http.StatusNotFound).JSON(ErrorResponse{
			Error:   "not_found",
			Message: err.Error(),
		})
	default:
		return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
			Error: "internal_server_error",
		})
	}
}

func invalidListParams(c *fiber.Ctx, err error) error {
	return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
		Error:   "invalid_list_params",
		Message: err.Error(),
	})
}

func invalidItemID(c *fiber.Ctx) error {
	return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
		Error:   "invalid_item_id",
		Message: "item id must be a positive integer",
	})
}

func unauthorized(c *fiber.Ctx) error {
	return c.Status(http.StatusUnauthorized).JSON(ErrorResponse{
		Error: "unauthorized",
	})
}
