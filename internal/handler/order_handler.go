package handler

import (
	"net/http"

	"app/internal/config"
	"app/internal/middleware"
	"app/internal/usecase"

	"github.com/labstack/echo/v4"
)

type OrderHandler struct {
	uc *usecase.OrderUsecase
}

func NewOrderHandler(uc *usecase.OrderUsecase) *OrderHandler {
	return &OrderHandler{uc: uc}
}

type CreateOrderRequest struct {
	UserID         string `json:"user_id"`
	CartID         string `json:"cart_id"`
	BillingName    string `json:"billing_name"`
	BillingPhone   string `json:"billing_phone"`
	BillingAddress string `json:"billing_address"`
	PaymentStatus  string `json:"payment_status"`
	OrderStatus    string `json:"order_status"`
}

func (h *OrderHandler) RegisterRoutes(e *echo.Echo, cfg config.Config) {
	g := e.Group("/orders")
	g.Use(middleware.AuthJWT(cfg))

	g.POST("", h.create)
	g.GET("", h.list)
	g.GET("/users/:userId", h.listOfUser)
	g.DELETE("/:orderId", h.remove)
}

func (h *OrderHandler) create(c echo.Context) error {
	var req CreateOrderRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	out, err := h.uc.CreateOrder(c.Request().Context(), usecase.CreateOrderInput{
		UserID:         req.UserID,
		CartID:         req.CartID,
		BillingName:    req.BillingName,
		BillingPhone:   req.BillingPhone,
		BillingAddress: req.BillingAddress,
		PaymentStatus:  req.PaymentStatus,
		OrderStatus:    req.OrderStatus,
	})
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusCreated, out)
}

func (h *OrderHandler) remove(c echo.Context) error {
	if err := h.uc.RemoveOrder(c.Request().Context(), c.Param("orderId")); err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "order removed"})
}

func (h *OrderHandler) listOfUser(c echo.Context) error {
	out, err := h.uc.GetAllOrdersOfUser(c.Request().Context(), c.Param("userId"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

type OrderListResponse struct {
	Items []usecase.OrderOutput `json:"items"`
	Total int64                 `json:"total"`
}

func (h *OrderHandler) list(c echo.Context) error {
	in, err := parseListInput(c, "orderedDate")
	if err != nil {
		return writeError(c, err)
	}

	outs, total, err := h.uc.GetAllOrders(c.Request().Context(), usecase.ListOrdersInput{
		PageNumber: in.PageNumber,
		PageSize:   in.PageSize,
		SortBy:     in.SortBy,
		SortDir:    in.SortDir,
	})
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, OrderListResponse{Items: outs, Total: total})
}
