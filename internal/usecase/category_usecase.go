package usecase

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"app/internal/domain/model"
	repo "app/internal/repository"
)

type CategoryUsecase struct {
	categoryRepo repo.CategoryRepository
	idGen        IDGenerator
}

func NewCategoryUsecase(categoryRepo repo.CategoryRepository, idGen IDGenerator) *CategoryUsecase {
	return &CategoryUsecase{categoryRepo: categoryRepo, idGen: idGen}
}

type CategoryInput struct {
	Title       string
	Description string
	CoverImage  string
}

type CategoryListOutput struct {
	Items []model.Category `json:"items"`
	Total int64            `json:"total"`
}

func (u *CategoryUsecase) CreateCategory(ctx context.Context, in CategoryInput) (model.Category, error) {
	if strings.TrimSpace(in.Title) == "" {
		return model.Category{}, NewHTTPError(http.StatusBadRequest, "category title required")
	}

	c := model.Category{
		ID:          u.idGen.NewID(),
		Title:       in.Title,
		Description: in.Description,
		CoverImage:  in.CoverImage,
	}

	created, err := u.categoryRepo.Create(ctx, c)
	if err != nil {
		return model.Category{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return created, nil
}

func (u *CategoryUsecase) UpdateCategory(ctx context.Context, categoryID string, in CategoryInput) (model.Category, error) {
	c, err := u.categoryRepo.FindByID(ctx, categoryID)
	if errors.Is(err, repo.ErrNotFound) {
		return model.Category{}, NewHTTPError(http.StatusNotFound, "category not found")
	}
	if err != nil {
		return model.Category{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	c.Title = in.Title
	c.Description = in.Description
	c.CoverImage = in.CoverImage

	if err := u.categoryRepo.Update(ctx, c); err != nil {
		return model.Category{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return c, nil
}

func (u *CategoryUsecase) DeleteCategory(ctx context.Context, categoryID string) error {
	if err := u.categoryRepo.DeleteByID(ctx, categoryID); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return NewHTTPError(http.StatusNotFound, "category not found")
		}
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return nil
}

func (u *CategoryUsecase) GetCategory(ctx context.Context, categoryID string) (model.Category, error) {
	c, err := u.categoryRepo.FindByID(ctx, categoryID)
	if errors.Is(err, repo.ErrNotFound) {
		return model.Category{}, NewHTTPError(http.StatusNotFound, "category not found")
	}
	if err != nil {
		return model.Category{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return c, nil
}

func (u *CategoryUsecase) GetAllCategories(ctx context.Context, in ListInput) (CategoryListOutput, error) {
	items, total, err := u.categoryRepo.List(ctx, toPageQuery(in))
	if err != nil {
		return CategoryListOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return CategoryListOutput{Items: items, Total: total}, nil
}
