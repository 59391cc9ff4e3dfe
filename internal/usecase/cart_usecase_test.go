package usecase_test

import (
	"context"
	"testing"
	"time"

	"app/internal/domain/model"
	repo "app/internal/repository"
	"app/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newCartUsecase(r *txReposStub) *usecase.CartUsecase {
	return usecase.NewCartUsecase(
		&txManagerStub{repos: r},
		r.users,
		&fixedIDGen{id: "cart-1"},
		&fixedClock{now: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)},
	)
}

func TestCartUsecase_AddItemToCart_InvalidQuantity(t *testing.T) {
	r := newTxReposStub()
	uc := newCartUsecase(r)

	_, err := uc.AddItemToCart(context.Background(), "user-1", usecase.AddItemInput{
		ProductID: "prod-1",
		Quantity:  0,
	})
	assertErrContains(t, err, "invalid quantity")
}

func TestCartUsecase_AddItemToCart_ProductNotFound(t *testing.T) {
	r := newTxReposStub()
	uc := newCartUsecase(r)

	r.products.On("FindByID", mock.Anything, "prod-x").Return(model.Product{}, repo.ErrNotFound)

	_, err := uc.AddItemToCart(context.Background(), "user-1", usecase.AddItemInput{
		ProductID: "prod-x",
		Quantity:  1,
	})
	assertErrContains(t, err, "product not found")
}

func TestCartUsecase_AddItemToCart_UserNotFound(t *testing.T) {
	r := newTxReposStub()
	uc := newCartUsecase(r)

	r.products.On("FindByID", mock.Anything, "prod-1").Return(model.Product{ID: "prod-1", DiscountedPrice: 500}, nil)
	r.users.On("FindByID", mock.Anything, "user-x").Return(nil, repo.ErrUserNotFound)

	_, err := uc.AddItemToCart(context.Background(), "user-x", usecase.AddItemInput{
		ProductID: "prod-1",
		Quantity:  1,
	})
	assertErrContains(t, err, "user not found")
}

// 初回追加：カートが無ければ作り、total_priceは数量×割引後価格のスナップショット。
func TestCartUsecase_AddItemToCart_CreatesCartAndItem(t *testing.T) {
	ctx := context.Background()
	r := newTxReposStub()
	uc := newCartUsecase(r)

	r.products.On("FindByID", mock.Anything, "prod-1").Return(model.Product{
		ID:              "prod-1",
		Title:           "Coffee",
		Price:           600,
		DiscountedPrice: 500,
	}, nil)
	r.users.On("FindByID", mock.Anything, "user-1").Return(&model.User{ID: "user-1"}, nil)
	r.carts.On("FindByUserID", mock.Anything, "user-1").Return(model.Cart{}, repo.ErrNotFound)
	r.carts.On("Create", mock.Anything, mock.MatchedBy(func(c model.Cart) bool {
		return c.ID == "cart-1" && c.UserID == "user-1"
	})).Return(nil)
	r.cartItems.On("FindByCartAndProduct", mock.Anything, "cart-1", "prod-1").Return(model.CartItem{}, repo.ErrNotFound)
	r.cartItems.On("Create", mock.Anything, mock.MatchedBy(func(it model.CartItem) bool {
		// 2×500=1000
		return it.CartID == "cart-1" && it.ProductID == "prod-1" && it.Quantity == 2 && it.TotalPrice == 1000
	})).Return(model.CartItem{ID: 1, CartID: "cart-1", ProductID: "prod-1", Quantity: 2, TotalPrice: 1000}, nil)
	r.cartItems.On("ListByCartID", mock.Anything, "cart-1").Return([]model.CartItem{
		{ID: 1, CartID: "cart-1", ProductID: "prod-1", Quantity: 2, TotalPrice: 1000},
	}, nil)

	out, err := uc.AddItemToCart(ctx, "user-1", usecase.AddItemInput{ProductID: "prod-1", Quantity: 2})
	assert.NoError(t, err)
	assert.Equal(t, "cart-1", out.CartID)
	assert.Equal(t, 1, len(out.Items))
	assert.Equal(t, int64(1000), out.CartTotal)

	r.assertExpectations(t)
}

// 同一商品を再追加すると数量は置き換え（加算しない）。
func TestCartUsecase_AddItemToCart_SameProductReplacesQuantity(t *testing.T) {
	ctx := context.Background()
	r := newTxReposStub()
	uc := newCartUsecase(r)

	r.products.On("FindByID", mock.Anything, "prod-1").Return(model.Product{
		ID:              "prod-1",
		Title:           "Coffee",
		DiscountedPrice: 500,
	}, nil)
	r.users.On("FindByID", mock.Anything, "user-1").Return(&model.User{ID: "user-1"}, nil)
	r.carts.On("FindByUserID", mock.Anything, "user-1").Return(model.Cart{ID: "cart-1", UserID: "user-1"}, nil)

	// すでに q=2 の明細がある状態で q=3 を追加
	r.cartItems.On("FindByCartAndProduct", mock.Anything, "cart-1", "prod-1").Return(model.CartItem{
		ID: 7, CartID: "cart-1", ProductID: "prod-1", Quantity: 2, TotalPrice: 1000,
	}, nil)
	// 3×500=1500 に置き換わる（2+3=5にはならない）
	r.cartItems.On("ReplaceQuantity", mock.Anything, int64(7), int64(3), int64(1500)).Return(nil)
	r.cartItems.On("ListByCartID", mock.Anything, "cart-1").Return([]model.CartItem{
		{ID: 7, CartID: "cart-1", ProductID: "prod-1", Quantity: 3, TotalPrice: 1500},
	}, nil)

	out, err := uc.AddItemToCart(ctx, "user-1", usecase.AddItemInput{ProductID: "prod-1", Quantity: 3})
	assert.NoError(t, err)
	assert.Equal(t, int64(3), out.Items[0].Quantity)
	assert.Equal(t, int64(1500), out.CartTotal)

	// 新規明細は作られない
	r.cartItems.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	r.assertExpectations(t)
}

// 別の商品は別の明細になる。
func TestCartUsecase_AddItemToCart_DistinctProductsGetDistinctItems(t *testing.T) {
	ctx := context.Background()
	r := newTxReposStub()
	uc := newCartUsecase(r)

	r.products.On("FindByID", mock.Anything, "prod-2").Return(model.Product{
		ID:              "prod-2",
		Title:           "Beans",
		DiscountedPrice: 1000,
	}, nil)
	r.products.On("FindByID", mock.Anything, "prod-1").Return(model.Product{
		ID:              "prod-1",
		Title:           "Coffee",
		DiscountedPrice: 500,
	}, nil)
	r.users.On("FindByID", mock.Anything, "user-1").Return(&model.User{ID: "user-1"}, nil)
	r.carts.On("FindByUserID", mock.Anything, "user-1").Return(model.Cart{ID: "cart-1", UserID: "user-1"}, nil)

	r.cartItems.On("FindByCartAndProduct", mock.Anything, "cart-1", "prod-2").Return(model.CartItem{}, repo.ErrNotFound)
	r.cartItems.On("Create", mock.Anything, mock.MatchedBy(func(it model.CartItem) bool {
		return it.ProductID == "prod-2" && it.Quantity == 1 && it.TotalPrice == 1000
	})).Return(model.CartItem{ID: 2, CartID: "cart-1", ProductID: "prod-2", Quantity: 1, TotalPrice: 1000}, nil)
	r.cartItems.On("ListByCartID", mock.Anything, "cart-1").Return([]model.CartItem{
		{ID: 1, CartID: "cart-1", ProductID: "prod-1", Quantity: 2, TotalPrice: 1000},
		{ID: 2, CartID: "cart-1", ProductID: "prod-2", Quantity: 1, TotalPrice: 1000},
	}, nil)

	out, err := uc.AddItemToCart(ctx, "user-1", usecase.AddItemInput{ProductID: "prod-2", Quantity: 1})
	assert.NoError(t, err)
	assert.Equal(t, 2, len(out.Items))
	assert.Equal(t, int64(2000), out.CartTotal)

	r.assertExpectations(t)
}

// 他人のカートの明細は「存在しない」扱いで404。
func TestCartUsecase_RemoveItemFromCart_ForeignItemIsNotFound(t *testing.T) {
	r := newTxReposStub()
	uc := newCartUsecase(r)

	r.cartItems.On("IsOwnedByUser", mock.Anything, int64(7), "user-2").Return(false, nil)

	err := uc.RemoveItemFromCart(context.Background(), "user-2", 7)
	assertErrContains(t, err, "cart item not found")

	r.cartItems.AssertNotCalled(t, "DeleteByID", mock.Anything, mock.Anything)
}

func TestCartUsecase_RemoveItemFromCart_Success(t *testing.T) {
	r := newTxReposStub()
	uc := newCartUsecase(r)

	r.cartItems.On("IsOwnedByUser", mock.Anything, int64(7), "user-1").Return(true, nil)
	r.cartItems.On("DeleteByID", mock.Anything, int64(7)).Return(nil)

	err := uc.RemoveItemFromCart(context.Background(), "user-1", 7)
	assert.NoError(t, err)

	r.assertExpectations(t)
}

func TestCartUsecase_ClearCart_Success(t *testing.T) {
	r := newTxReposStub()
	uc := newCartUsecase(r)

	r.users.On("FindByID", mock.Anything, "user-1").Return(&model.User{ID: "user-1"}, nil)
	r.carts.On("FindByUserID", mock.Anything, "user-1").Return(model.Cart{ID: "cart-1", UserID: "user-1"}, nil)
	r.carts.On("Clear", mock.Anything, "cart-1").Return(nil)

	err := uc.ClearCart(context.Background(), "user-1")
	assert.NoError(t, err)

	r.assertExpectations(t)
}

func TestCartUsecase_GetCartByUser_NoCartIsNotFound(t *testing.T) {
	r := newTxReposStub()
	uc := newCartUsecase(r)

	r.users.On("FindByID", mock.Anything, "user-1").Return(&model.User{ID: "user-1"}, nil)
	r.carts.On("FindByUserID", mock.Anything, "user-1").Return(model.Cart{}, repo.ErrNotFound)

	_, err := uc.GetCartByUser(context.Background(), "user-1")
	assertErrContains(t, err, "cart not found")
}

func TestCartUsecase_GetCartByUser_Success(t *testing.T) {
	r := newTxReposStub()
	uc := newCartUsecase(r)

	r.users.On("FindByID", mock.Anything, "user-1").Return(&model.User{ID: "user-1"}, nil)
	r.carts.On("FindByUserID", mock.Anything, "user-1").Return(model.Cart{ID: "cart-1", UserID: "user-1"}, nil)
	r.cartItems.On("ListByCartID", mock.Anything, "cart-1").Return([]model.CartItem{
		{ID: 1, CartID: "cart-1", ProductID: "prod-1", Quantity: 2, TotalPrice: 1000},
		{ID: 2, CartID: "cart-1", ProductID: "prod-2", Quantity: 1, TotalPrice: 1000},
	}, nil)
	r.products.On("FindByID", mock.Anything, "prod-1").Return(model.Product{ID: "prod-1", Title: "Coffee"}, nil)
	r.products.On("FindByID", mock.Anything, "prod-2").Return(model.Product{ID: "prod-2", Title: "Beans"}, nil)

	out, err := uc.GetCartByUser(context.Background(), "user-1")
	assert.NoError(t, err)
	assert.Equal(t, 2, len(out.Items))
	assert.Equal(t, "Coffee", out.Items[0].Title)
	assert.Equal(t, int64(2000), out.CartTotal)

	r.assertExpectations(t)
}
