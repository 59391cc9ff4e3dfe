package handler

import (
	"net/http"

	"app/internal/config"
	"app/internal/middleware"
	"app/internal/usecase"

	"github.com/labstack/echo/v4"
)

type CategoryHandler struct {
	categoryUC *usecase.CategoryUsecase
	productUC  *usecase.ProductUsecase
}

// DI
func NewCategoryHandler(categoryUC *usecase.CategoryUsecase, productUC *usecase.ProductUsecase) *CategoryHandler {
	return &CategoryHandler{categoryUC: categoryUC, productUC: productUC}
}

type CategoryRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	CoverImage  string `json:"cover_image"`
}

func (h *CategoryHandler) RegisterRoutes(e *echo.Echo, cfg config.Config) {
	//公開（閲覧）
	e.GET("/categories", h.list)
	e.GET("/categories/:categoryId", h.detail)
	e.GET("/categories/:categoryId/products", h.listProducts)

	//変更系は認証必須
	g := e.Group("/categories")
	g.Use(middleware.AuthJWT(cfg))
	g.POST("", h.create)
	g.PUT("/:categoryId", h.update)
	g.DELETE("/:categoryId", h.remove)
	g.POST("/:categoryId/products", h.createProduct)
}

func (h *CategoryHandler) create(c echo.Context) error {
	var req CategoryRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	out, err := h.categoryUC.CreateCategory(c.Request().Context(), usecase.CategoryInput{
		Title:       req.Title,
		Description: req.Description,
		CoverImage:  req.CoverImage,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, out)
}

func (h *CategoryHandler) update(c echo.Context) error {
	var req CategoryRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	out, err := h.categoryUC.UpdateCategory(c.Request().Context(), c.Param("categoryId"), usecase.CategoryInput{
		Title:       req.Title,
		Description: req.Description,
		CoverImage:  req.CoverImage,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *CategoryHandler) remove(c echo.Context) error {
	if err := h.categoryUC.DeleteCategory(c.Request().Context(), c.Param("categoryId")); err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "category removed"})
}

func (h *CategoryHandler) detail(c echo.Context) error {
	out, err := h.categoryUC.GetCategory(c.Request().Context(), c.Param("categoryId"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *CategoryHandler) list(c echo.Context) error {
	in, err := parseListInput(c, "title")
	if err != nil {
		return writeError(c, err)
	}

	out, err := h.categoryUC.GetAllCategories(c.Request().Context(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

// カテゴリ配下の商品一覧
func (h *CategoryHandler) listProducts(c echo.Context) error {
	in, err := parseListInput(c, "addedDate")
	if err != nil {
		return writeError(c, err)
	}

	out, err := h.productUC.GetProductsByCategory(c.Request().Context(), c.Param("categoryId"), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

// カテゴリ配下に商品を作成
func (h *CategoryHandler) createProduct(c echo.Context) error {
	var req ProductRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	out, err := h.productUC.CreateProductWithCategory(c.Request().Context(), c.Param("categoryId"), req.toInput())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, out)
}
