package usecase

import (
	"context"
	"errors"
	"net/http"
	"time"

	"app/internal/domain/model"
	repo "app/internal/repository"
)

// CartUsecase は /carts の業務ロジックです。
// 追加・削除・クリアは全部 TransactionManager の中で1つの原子単位として実行します。
type CartUsecase struct {
	tx       repo.TransactionManager
	userRepo repo.UserRepository
	idGen    IDGenerator
	clock    Clock
}

func NewCartUsecase(
	tx repo.TransactionManager,
	userRepo repo.UserRepository,
	idGen IDGenerator,
	clock Clock,
) *CartUsecase {
	return &CartUsecase{
		tx:       tx,
		userRepo: userRepo,
		idGen:    idGen,
		clock:    clock,
	}
}

// total_price は追加時点のスナップショットを返す。
type CartItemResponse struct {
	ID         int64  `json:"id"`
	ProductID  string `json:"product_id"`
	Title      string `json:"title"`
	Quantity   int64  `json:"quantity"`
	TotalPrice int64  `json:"total_price"`
}

type CartResponse struct {
	CartID      string             `json:"cart_id"`
	UserID      string             `json:"user_id"`
	CreatedDate time.Time          `json:"created_date"`
	Items       []CartItemResponse `json:"items"`
	CartTotal   int64              `json:"cart_total"`
}

type AddItemInput struct {
	ProductID string
	Quantity  int64
}

// AddItemToCart はカートに追加。
// 同一商品がすでにあれば数量を置き換えて total_price を計算し直す（加算しない）。
func (u *CartUsecase) AddItemToCart(ctx context.Context, userID string, in AddItemInput) (CartResponse, error) {
	if userID == "" {
		return CartResponse{}, NewHTTPError(http.StatusBadRequest, "invalid user_id")
	}
	if in.ProductID == "" {
		return CartResponse{}, NewHTTPError(http.StatusBadRequest, "invalid product_id")
	}
	if in.Quantity < 1 {
		return CartResponse{}, NewHTTPError(http.StatusBadRequest, "invalid quantity")
	}

	var out CartResponse

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		//商品チェック
		p, err := r.Products().FindByID(ctx, in.ProductID)
		if errors.Is(err, repo.ErrNotFound) {
			return NewHTTPError(http.StatusNotFound, "product not found")
		}
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		//ユーザーチェック
		if _, err := r.Users().FindByID(ctx, userID); err != nil {
			if errors.Is(err, repo.ErrUserNotFound) {
				return NewHTTPError(http.StatusNotFound, "user not found")
			}
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		//カート取得（無ければ作成）
		cart, err := r.Carts().FindByUserID(ctx, userID)
		if errors.Is(err, repo.ErrNotFound) {
			cart = model.Cart{
				ID:          u.idGen.NewID(),
				UserID:      userID,
				CreatedDate: u.clock.Now(),
			}
			if err := r.Carts().Create(ctx, cart); err != nil {
				return NewHTTPError(http.StatusInternalServerError, "db error")
			}
		} else if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		totalPrice := in.Quantity * p.DiscountedPrice

		//既存明細があれば置き換え、無ければ新規作成
		item, err := r.CartItems().FindByCartAndProduct(ctx, cart.ID, in.ProductID)
		if err == nil {
			if err := r.CartItems().ReplaceQuantity(ctx, item.ID, in.Quantity, totalPrice); err != nil {
				return NewHTTPError(http.StatusInternalServerError, "db error")
			}
		} else if errors.Is(err, repo.ErrNotFound) {
			newItem := model.CartItem{
				CartID:     cart.ID,
				ProductID:  in.ProductID,
				Quantity:   in.Quantity,
				TotalPrice: totalPrice,
			}
			if _, err := r.CartItems().Create(ctx, newItem); err != nil {
				return NewHTTPError(http.StatusInternalServerError, "db error")
			}
		} else {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		resp, err := buildCartResponse(ctx, r, cart)
		if err != nil {
			return err
		}
		out = resp
		return nil
	})

	if err != nil {
		return CartResponse{}, err
	}
	return out, nil
}

// RemoveItemFromCart は明細を1件削除。
// 自分のカートに属さない明細は「存在しない扱い」にする。
func (u *CartUsecase) RemoveItemFromCart(ctx context.Context, userID string, cartItemID int64) error {
	if userID == "" {
		return NewHTTPError(http.StatusBadRequest, "invalid user_id")
	}
	if cartItemID <= 0 {
		return NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	return u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		owned, err := r.CartItems().IsOwnedByUser(ctx, cartItemID, userID)
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}
		if !owned {
			return NewHTTPError(http.StatusNotFound, "cart item not found")
		}

		if err := r.CartItems().DeleteByID(ctx, cartItemID); err != nil {
			if errors.Is(err, repo.ErrNotFound) {
				return NewHTTPError(http.StatusNotFound, "cart item not found")
			}
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}
		return nil
	})
}

// ClearCart は明細を全削除（カート本体は残る）。
func (u *CartUsecase) ClearCart(ctx context.Context, userID string) error {
	if userID == "" {
		return NewHTTPError(http.StatusBadRequest, "invalid user_id")
	}

	return u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		if _, err := r.Users().FindByID(ctx, userID); err != nil {
			if errors.Is(err, repo.ErrUserNotFound) {
				return NewHTTPError(http.StatusNotFound, "user not found")
			}
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		cart, err := r.Carts().FindByUserID(ctx, userID)
		if errors.Is(err, repo.ErrNotFound) {
			return NewHTTPError(http.StatusNotFound, "cart not found")
		}
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		if err := r.Carts().Clear(ctx, cart.ID); err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}
		return nil
	})
}

// GetCartByUser はカート取得。カートがまだ無いユーザーは404。
func (u *CartUsecase) GetCartByUser(ctx context.Context, userID string) (CartResponse, error) {
	if userID == "" {
		return CartResponse{}, NewHTTPError(http.StatusBadRequest, "invalid user_id")
	}

	var out CartResponse

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		if _, err := r.Users().FindByID(ctx, userID); err != nil {
			if errors.Is(err, repo.ErrUserNotFound) {
				return NewHTTPError(http.StatusNotFound, "user not found")
			}
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		cart, err := r.Carts().FindByUserID(ctx, userID)
		if errors.Is(err, repo.ErrNotFound) {
			return NewHTTPError(http.StatusNotFound, "cart not found")
		}
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		resp, err := buildCartResponse(ctx, r, cart)
		if err != nil {
			return err
		}
		out = resp
		return nil
	})

	if err != nil {
		return CartResponse{}, err
	}
	return out, nil
}

// 明細をまとめてCartResponseを作る。
func buildCartResponse(ctx context.Context, r repo.TxRepos, cart model.Cart) (CartResponse, error) {
	items, err := r.CartItems().ListByCartID(ctx, cart.ID)
	if err != nil {
		return CartResponse{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	respItems := make([]CartItemResponse, 0, len(items))
	var total int64 = 0

	for _, it := range items {
		title := ""
		if p, err := r.Products().FindByID(ctx, it.ProductID); err == nil {
			title = p.Title
		}

		respItems = append(respItems, CartItemResponse{
			ID:         it.ID,
			ProductID:  it.ProductID,
			Title:      title,
			Quantity:   it.Quantity,
			TotalPrice: it.TotalPrice,
		})

		total += it.TotalPrice
	}

	return CartResponse{
		CartID:      cart.ID,
		UserID:      cart.UserID,
		CreatedDate: cart.CreatedDate,
		Items:       respItems,
		CartTotal:   total,
	}, nil
}
