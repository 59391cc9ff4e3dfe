package handler

import (
	"errors"
	"net/http"
	"strconv"

	"app/internal/middleware"
	"app/internal/storage"
	"app/internal/usecase"

	"github.com/labstack/echo/v4"
)

type ErrorResponse struct {
	Error string `json:"error"`
}

func writeError(c echo.Context, err error) error {
	if err == nil {
		return nil
	}
	if he, ok := usecase.AsHTTPError(err); ok {
		return c.JSON(he.Status, ErrorResponse{Error: he.Message})
	}

	//500
	return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
}

// 拡張子エラーだけ400で返したいので区別する
func asFileTypeError(err error) (ErrorResponse, bool) {
	if errors.Is(err, storage.ErrInvalidFileType) {
		return ErrorResponse{Error: err.Error()}, true
	}
	return ErrorResponse{}, false
}

// AuthJWTが入れたuser_idを取り出す
func getUserIDFromContext(c echo.Context) (string, bool) {
	v := c.Get(middleware.CtxUserIDKey)
	s, ok := v.(string)
	if !ok || s == "" {
		return "", false
	}
	return s, true
}

// pageNumber/pageSize/sortBy/sortDir のクエリを読む。
// 省略時は pageNumber=0, pageSize=10, sortDir=ASC。
func parseListInput(c echo.Context, defaultSortBy string) (usecase.ListInput, error) {
	in := usecase.ListInput{
		PageNumber: 0,
		PageSize:   10,
		SortBy:     defaultSortBy,
		SortDir:    "ASC",
	}

	if v := c.QueryParam("pageNumber"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			return usecase.ListInput{}, usecase.NewHTTPError(http.StatusBadRequest, "invalid pageNumber")
		}
		in.PageNumber = n
	}
	if v := c.QueryParam("pageSize"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			return usecase.ListInput{}, usecase.NewHTTPError(http.StatusBadRequest, "invalid pageSize")
		}
		in.PageSize = n
	}
	if v := c.QueryParam("sortBy"); v != "" {
		in.SortBy = v
	}
	if v := c.QueryParam("sortDir"); v != "" {
		in.SortDir = v
	}

	return in, nil
}
