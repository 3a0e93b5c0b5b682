package handler

import (
	"errors"
	"net/http"
	"strconv"

	"app/internal/config"
	"app/internal/domain/model"
	"app/internal/middleware"
	repo "app/internal/repository"
	"app/internal/usecase"

	"github.com/labstack/echo/v4"
)

type ErrorResponse struct {
	Error string `json:"error"`
}

// ドメインエラーをHTTPステータスへ写す
func writeError(c echo.Context, err error) error {
	if err == nil {
		return nil
	}

	var ise *model.InsufficientStockError
	switch {
	case errors.As(err, &ise):
		return c.JSON(http.StatusConflict, ErrorResponse{Error: ise.Error()})
	case errors.Is(err, repo.ErrOptimisticLock):
		return c.JSON(http.StatusConflict, ErrorResponse{Error: "conflict, please retry"})
	case errors.Is(err, repo.ErrLockTimeout):
		return c.JSON(http.StatusServiceUnavailable, ErrorResponse{Error: "lock timeout"})
	case errors.Is(err, repo.ErrNotFound):
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: "not found"})
	case errors.Is(err, model.ErrOrderAlreadyCancelled):
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "order already cancelled"})
	case errors.Is(err, usecase.ErrInvalidInput):
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	}

	//500
	return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
}

type OrderHandler struct {
	uc *usecase.OrderUsecase
}

func NewOrderHandler(uc *usecase.OrderUsecase) *OrderHandler {
	return &OrderHandler{uc: uc}
}

type OrderCreateRequest struct {
	ItemID int64 `json:"item_id"`
	Count  int64 `json:"count"`
}

type OrderCreateResponse struct {
	OrderID int64 `json:"order_id"`
}

func (h *OrderHandler) RegisterRoutes(e *echo.Echo, cfg config.Config) {
	g := e.Group("/orders")
	g.Use(middleware.AuthJWT(cfg))

	g.POST("", h.create)
	g.POST("/:id/cancel", h.cancel)
	g.GET("/:id", h.detail)
	g.GET("", h.search)
}

func (h *OrderHandler) create(c echo.Context) error {
	memberID, ok := c.Get(middleware.CtxMemberIDKey).(int64)
	if !ok || memberID <= 0 {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
	}

	var req OrderCreateRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if req.ItemID <= 0 {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid item_id"})
	}
	if req.Count <= 0 {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid count"})
	}

	orderID, err := h.uc.Place(c.Request().Context(), memberID, req.ItemID, req.Count)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, OrderCreateResponse{OrderID: orderID})
}

func (h *OrderHandler) cancel(c echo.Context) error {
	orderID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || orderID <= 0 {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}

	if err := h.uc.CancelOrder(c.Request().Context(), orderID); err != nil {
		return writeError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *OrderHandler) detail(c echo.Context) error {
	orderID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || orderID <= 0 {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}

	order, err := h.uc.GetOrder(c.Request().Context(), orderID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, order)
}

type OrderSearchResponse struct {
	Orders []model.Order `json:"orders"`
	Total  int64         `json:"total"`
}

func (h *OrderHandler) search(c echo.Context) error {
	s := repo.OrderSearch{
		MemberName: c.QueryParam("member_name"),
		Status:     c.QueryParam("status"),
		Page:       1,
		Limit:      20,
	}
	if v := c.QueryParam("page"); v != "" {
		p, err := strconv.Atoi(v)
		if err != nil || p < 1 {
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid page"})
		}
		s.Page = p
	}
	if v := c.QueryParam("limit"); v != "" {
		l, err := strconv.Atoi(v)
		if err != nil || l < 1 || l > 100 {
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid limit"})
		}
		s.Limit = l
	}

	orders, total, err := h.uc.SearchOrders(c.Request().Context(), s)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, OrderSearchResponse{Orders: orders, Total: total})
}
