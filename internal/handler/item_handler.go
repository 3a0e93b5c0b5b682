package handler

import (
	"net/http"
	"strconv"

	"app/internal/domain/model"
	"app/internal/usecase"

	"github.com/labstack/echo/v4"
)

// /items のカタログ管理API
type ItemHandler struct {
	uc *usecase.ItemUsecase
}

func NewItemHandler(uc *usecase.ItemUsecase) *ItemHandler {
	return &ItemHandler{uc: uc}
}

func (h *ItemHandler) RegisterRoutes(e *echo.Echo) {
	e.POST("/items", h.create)
	e.GET("/items", h.list)
	e.GET("/items/:id", h.detail)
	e.PUT("/items/:id", h.update)
}

type ItemCreateRequest struct {
	Kind   string `json:"kind"`
	Name   string `json:"name"`
	Price  int64  `json:"price"`
	Stock  int64  `json:"stock"`
	Author string `json:"author,omitempty"`
	ISBN   string `json:"isbn,omitempty"`
	Artist string `json:"artist,omitempty"`
	Label  string `json:"label,omitempty"`
}

type ItemCreateResponse struct {
	ItemID int64 `json:"item_id"`
}

func (h *ItemHandler) create(c echo.Context) error {
	var req ItemCreateRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	id, err := h.uc.SaveItem(c.Request().Context(), model.Item{
		Kind:   model.ItemKind(req.Kind),
		Name:   req.Name,
		Price:  req.Price,
		Stock:  req.Stock,
		Author: req.Author,
		ISBN:   req.ISBN,
		Artist: req.Artist,
		Label:  req.Label,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, ItemCreateResponse{ItemID: id})
}

func (h *ItemHandler) list(c echo.Context) error {
	items, err := h.uc.ListItems(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, items)
}

func (h *ItemHandler) detail(c echo.Context) error {
	itemID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || itemID <= 0 {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}

	item, err := h.uc.FindOne(c.Request().Context(), itemID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, item)
}

type ItemUpdateRequest struct {
	Name  string `json:"name"`
	Price int64  `json:"price"`
	Stock int64  `json:"stock"`
}

func (h *ItemHandler) update(c echo.Context) error {
	itemID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || itemID <= 0 {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}

	var req ItemUpdateRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	if err := h.uc.UpdateItem(c.Request().Context(), itemID, req.Name, req.Price, req.Stock); err != nil {
		return writeError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
