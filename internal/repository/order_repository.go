package repository

import (
	"context"

	"app/internal/domain/model"
)

type OrderRepository interface {
	FindByID(ctx context.Context, orderID string) (model.Order, error)
	ListByUserID(ctx context.Context, userID string) ([]model.Order, error)
	ListAll(ctx context.Context, q PageQuery) ([]model.Order, int64, error)
	Create(ctx context.Context, order model.Order) error
	DeleteByID(ctx context.Context, orderID string) error
}
