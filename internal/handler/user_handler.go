package handler

import (
	"net/http"

	"app/internal/config"
	"app/internal/middleware"
	"app/internal/storage"
	"app/internal/usecase"

	"github.com/labstack/echo/v4"
)

type UserHandler struct {
	uc    *usecase.UserUsecase
	files *storage.FileStore
}

// DI
func NewUserHandler(uc *usecase.UserUsecase, files *storage.FileStore) *UserHandler {
	return &UserHandler{uc: uc, files: files}
}

type UpdateUserRequest struct {
	Name   string `json:"name"`
	Gender string `json:"gender"`
	About  string `json:"about"`
}

func (h *UserHandler) RegisterRoutes(e *echo.Echo, cfg config.Config) {
	g := e.Group("/users")
	g.Use(middleware.AuthJWT(cfg))

	g.GET("", h.list)
	g.GET("/:userId", h.detail)
	g.GET("/email/:email", h.byEmail)
	g.PUT("/:userId", h.update)
	g.DELETE("/:userId", h.remove)
	g.PUT("/:userId/image", h.uploadImage)
	g.GET("/:userId/image", h.getImage)
}

func (h *UserHandler) list(c echo.Context) error {
	in, err := parseListInput(c, "name")
	if err != nil {
		return writeError(c, err)
	}

	out, err := h.uc.GetAllUsers(c.Request().Context(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *UserHandler) detail(c echo.Context) error {
	out, err := h.uc.GetUser(c.Request().Context(), c.Param("userId"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *UserHandler) byEmail(c echo.Context) error {
	out, err := h.uc.GetUserByEmail(c.Request().Context(), c.Param("email"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *UserHandler) update(c echo.Context) error {
	var req UpdateUserRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	out, err := h.uc.UpdateUser(c.Request().Context(), c.Param("userId"), usecase.UpdateUserInput{
		Name:   req.Name,
		Gender: req.Gender,
		About:  req.About,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *UserHandler) remove(c echo.Context) error {
	if err := h.uc.DeleteUser(c.Request().Context(), c.Param("userId")); err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "user removed"})
}

// multipartの"image"フィールドを受け取って保存
func (h *UserHandler) uploadImage(c echo.Context) error {
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

	out, err := h.uc.SetUserImage(c.Request().Context(), c.Param("userId"), name)
	if err != nil {
		_ = h.files.Remove(name)
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *UserHandler) getImage(c echo.Context) error {
	u, err := h.uc.GetUser(c.Request().Context(), c.Param("userId"))
	if err != nil {
		return writeError(c, err)
	}
	if u.ImageName == "" {
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: "image not found"})
	}

	f, err := h.files.Open(u.ImageName)
	if err != nil {
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: "image not found"})
	}
	defer f.Close()

	return c.Stream(http.StatusOK, "image/jpeg", f)
}
