package handler

import (
	"net/http"
	"strconv"

	"app/internal/config"
	"app/internal/middleware"
	"app/internal/usecase"

	"github.com/labstack/echo/v4"
)

// /cartsのHTTP
type CartHandler struct {
	uc *usecase.CartUsecase
}

// DI
func NewCartHandler(uc *usecase.CartUsecase) *CartHandler {
	return &CartHandler{uc: uc}
}

type AddItemRequest struct {
	ProductID string `json:"product_id"`
	Quantity  int64  `json:"quantity"`
}

// /carts/{userId} を登録
func (h *CartHandler) RegisterRoutes(e *echo.Echo, cfg config.Config) {
	g := e.Group("/carts")
	g.Use(middleware.AuthJWT(cfg))

	g.POST("/:userId", h.addItem)
	g.GET("/:userId", h.getCart)
	g.DELETE("/:userId/items/:itemId", h.removeItem)
	g.DELETE("/:userId", h.clearCart)
}

func (h *CartHandler) addItem(c echo.Context) error {
	userID := c.Param("userId")

	var req AddItemRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	out, err := h.uc.AddItemToCart(c.Request().Context(), userID, usecase.AddItemInput{
		ProductID: req.ProductID,
		Quantity:  req.Quantity,
	})
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusCreated, out)
}

func (h *CartHandler) getCart(c echo.Context) error {
	out, err := h.uc.GetCartByUser(c.Request().Context(), c.Param("userId"))
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, out)
}

func (h *CartHandler) removeItem(c echo.Context) error {
	userID := c.Param("userId")

	itemID, err := strconv.ParseInt(c.Param("itemId"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}

	if err := h.uc.RemoveItemFromCart(c.Request().Context(), userID, itemID); err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, map[string]string{"message": "item removed from cart"})
}

func (h *CartHandler) clearCart(c echo.Context) error {
	if err := h.uc.ClearCart(c.Request().Context(), c.Param("userId")); err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, map[string]string{"message": "cart cleared"})
}
