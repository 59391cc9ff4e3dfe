package repository

import (
	"context"

	"app/internal/domain/model"
)

type CartRepository interface {
	FindByUserID(ctx context.Context, userID string) (model.Cart, error)
	FindByID(ctx context.Context, cartID string) (model.Cart, error)
	Create(ctx context.Context, cart model.Cart) error
	// カート本体は残して明細を全削除
	Clear(ctx context.Context, cartID string) error
}
