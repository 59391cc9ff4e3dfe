package repository

import (
	"context"

	"app/internal/domain/model"
)

type CategoryRepository interface {
	FindByID(ctx context.Context, categoryID string) (model.Category, error)
	List(ctx context.Context, q PageQuery) ([]model.Category, int64, error)
	Create(ctx context.Context, c model.Category) (model.Category, error)
	Update(ctx context.Context, c model.Category) error
	DeleteByID(ctx context.Context, categoryID string) error
}
