package handler

import (
	"net/http"

	"app/internal/config"
	"app/internal/middleware"
	"app/internal/storage"
	"app/internal/usecase"

	"github.com/labstack/echo/v4"
)

// /products の公開API
type ProductHandler struct {
	uc    *usecase.ProductUsecase
	files *storage.FileStore
}

// DI
func NewProductHandler(uc *usecase.ProductUsecase, files *storage.FileStore) *ProductHandler {
	return &ProductHandler{uc: uc, files: files}
}

type ProductRequest struct {
	Title           string `json:"title"`
	Description     string `json:"description"`
	Price           int64  `json:"price"`
	DiscountedPrice int64  `json:"discounted_price"`
	Quantity        int64  `json:"quantity"`
	Live            bool   `json:"live"`
	Stock           bool   `json:"stock"`
}

func (r ProductRequest) toInput() usecase.ProductInput {
	return usecase.ProductInput{
		Title:           r.Title,
		Description:     r.Description,
		Price:           r.Price,
		DiscountedPrice: r.DiscountedPrice,
		Quantity:        r.Quantity,
		Live:            r.Live,
		Stock:           r.Stock,
	}
}

func (h *ProductHandler) RegisterRoutes(e *echo.Echo, cfg config.Config) {
	//公開（閲覧）
	e.GET("/products", h.list)
	e.GET("/products/live", h.listLive)
	e.GET("/products/search/:keyword", h.search)
	e.GET("/products/:productId", h.detail)
	e.GET("/products/:productId/image", h.getImage)

	//変更系は認証必須
	g := e.Group("/products")
	g.Use(middleware.AuthJWT(cfg))
	g.POST("", h.create)
	g.PUT("/:productId", h.update)
	g.DELETE("/:productId", h.remove)
	g.PUT("/:productId/category/:categoryId", h.assignCategory)
	g.PUT("/:productId/image", h.uploadImage)
}

func (h *ProductHandler) create(c echo.Context) error {
	var req ProductRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	out, err := h.uc.CreateProduct(c.Request().Context(), req.toInput())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, out)
}

func (h *ProductHandler) update(c echo.Context) error {
	var req ProductRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	out, err := h.uc.UpdateProduct(c.Request().Context(), c.Param("productId"), req.toInput())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *ProductHandler) remove(c echo.Context) error {
	if err := h.uc.DeleteProduct(c.Request().Context(), c.Param("productId")); err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "product removed"})
}

func (h *ProductHandler) detail(c echo.Context) error {
	out, err := h.uc.GetProduct(c.Request().Context(), c.Param("productId"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *ProductHandler) list(c echo.Context) error {
	in, err := parseListInput(c, "addedDate")
	if err != nil {
		return writeError(c, err)
	}

	out, err := h.uc.GetAllProducts(c.Request().Context(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *ProductHandler) listLive(c echo.Context) error {
	in, err := parseListInput(c, "addedDate")
	if err != nil {
		return writeError(c, err)
	}

	out, err := h.uc.GetAllLiveProducts(c.Request().Context(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *ProductHandler) search(c echo.Context) error {
	in, err := parseListInput(c, "addedDate")
	if err != nil {
		return writeError(c, err)
	}

	out, err := h.uc.SearchProducts(c.Request().Context(), c.Param("keyword"), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *ProductHandler) assignCategory(c echo.Context) error {
	out, err := h.uc.AssignCategory(c.Request().Context(), c.Param("productId"), c.Param("categoryId"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

// multipartの"image"フィールドを受け取って保存
func (h *ProductHandler) uploadImage(c echo.Context) error {
	fh, err := c.FormFile("image")
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "image file required"})
	}

	src, err := fh.Open()
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid file"})
	}
	defer src.Close()

	name, err := h.files.Save(src, fh.Filename)
	if err != nil {
		if he, ok := asFileTypeError(err); ok {
			return c.JSON(http.StatusBadRequest, he)
		}
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "could not save file"})
	}

	out, err := h.uc.SetProductImage(c.Request().Context(), c.Param("productId"), name)
	if err != nil {
		//商品が無ければ保存したファイルは捨てる
		_ = h.files.Remove(name)
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *ProductHandler) getImage(c echo.Context) error {
	p, err := h.uc.GetProduct(c.Request().Context(), c.Param("productId"))
	if err != nil {
		return writeError(c, err)
	}
	if p.ProductImage == "" {
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: "image not found"})
	}

	f, err := h.files.Open(p.ProductImage)
	if err != nil {
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: "image not found"})
	}
	defer f.Close()

	return c.Stream(http.StatusOK, "image/jpeg", f)
}
