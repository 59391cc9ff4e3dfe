package usecase

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"app/internal/domain/model"
	repo "app/internal/repository"
)

type OrderUsecase struct {
	tx    repo.TransactionManager
	idGen IDGenerator
	clock Clock
}

func NewOrderUsecase(tx repo.TransactionManager, idGen IDGenerator, clock Clock) *OrderUsecase {
	return &OrderUsecase{tx: tx, idGen: idGen, clock: clock}
}

type CreateOrderInput struct {
	UserID         string
	CartID         string
	BillingName    string
	BillingPhone   string
	BillingAddress string
	PaymentStatus  string
	OrderStatus    string
}

type OrderItemOutput struct {
	ID         int64  `json:"id"`
	ProductID  string `json:"product_id"`
	Quantity   int64  `json:"quantity"`
	TotalPrice int64  `json:"total_price"`
}

type OrderOutput struct {
	OrderID        string            `json:"order_id"`
	UserID         string            `json:"user_id"`
	BillingName    string            `json:"billing_name"`
	BillingPhone   string            `json:"billing_phone"`
	BillingAddress string            `json:"billing_address"`
	OrderAmount    int64             `json:"order_amount"`
	PaymentStatus  string            `json:"payment_status"`
	OrderStatus    string            `json:"order_status"`
	OrderedDate    time.Time         `json:"ordered_date"`
	DeliveredDate  *time.Time        `json:"delivered_date"`
	Items          []OrderItemOutput `json:"items"`
}

type ListOrdersInput struct {
	PageNumber int
	PageSize   int
	SortBy     string
	SortDir    string
}

// CreateOrder はカートを注文に変換する。
// 注文の保存とカートの空化は同じトランザクションで行う。
func (u *OrderUsecase) CreateOrder(ctx context.Context, in CreateOrderInput) (OrderOutput, error) {
	if in.UserID == "" {
		return OrderOutput{}, NewHTTPError(http.StatusBadRequest, "invalid user_id")
	}
	if in.CartID == "" {
		return OrderOutput{}, NewHTTPError(http.StatusBadRequest, "invalid cart_id")
	}
	if strings.TrimSpace(in.BillingName) == "" ||
		strings.TrimSpace(in.BillingPhone) == "" ||
		strings.TrimSpace(in.BillingAddress) == "" {
		return OrderOutput{}, NewHTTPError(http.StatusBadRequest, "billing details required")
	}

	var out OrderOutput

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		if _, err := r.Users().FindByID(ctx, in.UserID); err != nil {
			if errors.Is(err, repo.ErrUserNotFound) {
				return NewHTTPError(http.StatusNotFound, "user not found")
			}
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		cart, err := r.Carts().FindByID(ctx, in.CartID)
		if errors.Is(err, repo.ErrNotFound) {
			return NewHTTPError(http.StatusNotFound, "cart not found")
		}
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		cartItems, err := r.CartItems().ListByCartID(ctx, cart.ID)
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}
		if len(cartItems) == 0 {
			return NewHTTPError(http.StatusBadRequest, "cannot place an order from an empty cart")
		}

		//注文の器を作る（billing・statusは入力をそのまま写す）
		order := model.Order{
			ID:             u.idGen.NewID(),
			UserID:         in.UserID,
			BillingName:    in.BillingName,
			BillingPhone:   in.BillingPhone,
			BillingAddress: in.BillingAddress,
			PaymentStatus:  in.PaymentStatus,
			OrderStatus:    in.OrderStatus,
			OrderedDate:    u.clock.Now(),
			DeliveredDate:  nil,
		}

		//カート明細をそのまま注文明細へ写す（価格の再計算はしない）
		orderItems := make([]model.OrderItem, 0, len(cartItems))
		var orderAmount int64 = 0

		for _, ci := range cartItems {
			orderItems = append(orderItems, model.OrderItem{
				OrderID:    order.ID,
				ProductID:  ci.ProductID,
				Quantity:   ci.Quantity,
				TotalPrice: ci.TotalPrice,
			})
			orderAmount += ci.TotalPrice
		}
		order.OrderAmount = orderAmount

		//カートを空にしてから注文を保存（同一Tx）
		if err := r.Carts().Clear(ctx, cart.ID); err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}
		if err := r.Orders().Create(ctx, order); err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}
		if err := r.OrderItems().CreateBulk(ctx, order.ID, orderItems); err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		out = toOrderOutput(order, orderItems)
		return nil
	})

	if err != nil {
		return OrderOutput{}, err
	}
	return out, nil
}

// RemoveOrder は注文を明細ごと削除する。
func (u *OrderUsecase) RemoveOrder(ctx context.Context, orderID string) error {
	if orderID == "" {
		return NewHTTPError(http.StatusBadRequest, "invalid order_id")
	}

	return u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		if _, err := r.Orders().FindByID(ctx, orderID); err != nil {
			if errors.Is(err, repo.ErrNotFound) {
				return NewHTTPError(http.StatusNotFound, "order not found")
			}
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		if err := r.OrderItems().DeleteByOrderID(ctx, orderID); err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}
		if err := r.Orders().DeleteByID(ctx, orderID); err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}
		return nil
	})
}

// GetAllOrdersOfUser はユーザーの注文を明細付きで返す。
func (u *OrderUsecase) GetAllOrdersOfUser(ctx context.Context, userID string) ([]OrderOutput, error) {
	if userID == "" {
		return []OrderOutput{}, NewHTTPError(http.StatusBadRequest, "invalid user_id")
	}

	var outs []OrderOutput

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		if _, err := r.Users().FindByID(ctx, userID); err != nil {
			if errors.Is(err, repo.ErrUserNotFound) {
				return NewHTTPError(http.StatusNotFound, "user not found")
			}
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		orders, err := r.Orders().ListByUserID(ctx, userID)
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		outs = make([]OrderOutput, 0, len(orders))
		for _, o := range orders {
			items, err := r.OrderItems().ListByOrderID(ctx, o.ID)
			if err != nil {
				return NewHTTPError(http.StatusInternalServerError, "db error")
			}
			outs = append(outs, toOrderOutput(o, items))
		}
		return nil
	})

	if err != nil {
		return []OrderOutput{}, err
	}
	return outs, nil
}

// GetAllOrders は全注文のページング＋ソート一覧。
// sortDir は "ASC" のときだけ昇順。
func (u *OrderUsecase) GetAllOrders(ctx context.Context, in ListOrdersInput) ([]OrderOutput, int64, error) {
	if in.PageNumber < 0 {
		return []OrderOutput{}, 0, NewHTTPError(http.StatusBadRequest, "invalid page")
	}
	if in.PageSize < 0 || in.PageSize > 100 {
		return []OrderOutput{}, 0, NewHTTPError(http.StatusBadRequest, "invalid page size")
	}

	var outs []OrderOutput
	var total int64

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		orders, n, err := r.Orders().ListAll(ctx, repo.PageQuery{
			PageNumber: in.PageNumber,
			PageSize:   in.PageSize,
			SortBy:     in.SortBy,
			SortDir:    in.SortDir,
		})
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}
		total = n

		outs = make([]OrderOutput, 0, len(orders))
		for _, o := range orders {
			items, err := r.OrderItems().ListByOrderID(ctx, o.ID)
			if err != nil {
				return NewHTTPError(http.StatusInternalServerError, "db error")
			}
			outs = append(outs, toOrderOutput(o, items))
		}
		return nil
	})

	if err != nil {
		return []OrderOutput{}, 0, err
	}
	return outs, total, nil
}

func toOrderOutput(o model.Order, items []model.OrderItem) OrderOutput {
	outItems := make([]OrderItemOutput, 0, len(items))
	for _, it := range items {
		outItems = append(outItems, OrderItemOutput{
			ID:         it.ID,
			ProductID:  it.ProductID,
			Quantity:   it.Quantity,
			TotalPrice: it.TotalPrice,
		})
	}

	return OrderOutput{
		OrderID:        o.ID,
		UserID:         o.UserID,
		BillingName:    o.BillingName,
		BillingPhone:   o.BillingPhone,
		BillingAddress: o.BillingAddress,
		OrderAmount:    o.OrderAmount,
		PaymentStatus:  o.PaymentStatus,
		OrderStatus:    o.OrderStatus,
		OrderedDate:    o.OrderedDate,
		DeliveredDate:  o.DeliveredDate,
		Items:          outItems,
	}
}
