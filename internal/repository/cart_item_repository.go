package repository

import (
	"context"

	"app/internal/domain/model"
)

type CartItemRepository interface {
	ListByCartID(ctx context.Context, cartID string) ([]model.CartItem, error)
	FindByID(ctx context.Context, cartItemID int64) (model.CartItem, error)
	FindByCartAndProduct(ctx context.Context, cartID string, productID string) (model.CartItem, error)
	Create(ctx context.Context, item model.CartItem) (model.CartItem, error)
	// 同一商品は数量を置き換え（加算しない）
	ReplaceQuantity(ctx context.Context, cartItemID int64, qty int64, totalPrice int64) error
	DeleteByID(ctx context.Context, cartItemID int64) error
	IsOwnedByUser(ctx context.Context, cartItemID int64, userID string) (bool, error)
}
