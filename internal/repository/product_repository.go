package repository

import (
	"app/internal/domain/model"
	"context"
	"errors"
)

var ErrNotFound = errors.New("not found")

// 商品の永続化（保存・取得）だけを約束。
type ProductRepository interface {
	FindByID(ctx context.Context, productID string) (model.Product, error)
	List(ctx context.Context, q PageQuery) ([]model.Product, int64, error)
	ListLive(ctx context.Context, q PageQuery) ([]model.Product, int64, error)
	ListByCategory(ctx context.Context, categoryID string, q PageQuery) ([]model.Product, int64, error)
	SearchByTitle(ctx context.Context, keyword string, q PageQuery) ([]model.Product, int64, error)

	Create(ctx context.Context, p model.Product) (model.Product, error)
	Update(ctx context.Context, p model.Product) error
	DeleteByID(ctx context.Context, productID string) error
}
