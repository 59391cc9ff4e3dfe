package repository

import (
	"context"
	"errors"

	"app/internal/domain/model"
	repo "app/internal/repository"

	"gorm.io/gorm"
)

type OrderGormRepository struct {
	db *gorm.DB
}

func NewOrderGormRepository(db *gorm.DB) *OrderGormRepository {
	return &OrderGormRepository{db: db}
}

func (r *OrderGormRepository) FindByID(ctx context.Context, orderID string) (model.Order, error) {
	var o model.Order
	err := r.db.WithContext(ctx).Where("id = ?", orderID).First(&o).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Order{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Order{}, err
	}
	return o, nil
}

func (r *OrderGormRepository) ListByUserID(ctx context.Context, userID string) ([]model.Order, error) {
	var items []model.Order
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("ordered_date desc").
		Find(&items).Error
	if err != nil {
		return []model.Order{}, err
	}
	return items, nil
}

func (r *OrderGormRepository) ListAll(ctx context.Context, q repo.PageQuery) ([]model.Order, int64, error) {
	if q.PageNumber < 0 {
		q.PageNumber = 0
	}
	if q.PageSize <= 0 || q.PageSize > 100 {
		q.PageSize = 10
	}

	tx := r.db.WithContext(ctx).Model(&model.Order{})

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return []model.Order{}, 0, err
	}

	//ORDER BY はカラム名ホワイトリスト
	col := "ordered_date"
	switch q.SortBy {
	case "orderAmount", "order_amount":
		col = "order_amount"
	case "billingName", "billing_name":
		col = "billing_name"
	case "orderStatus", "order_status":
		col = "order_status"
	}

	dir := "desc"
	if q.SortDir == "ASC" {
		dir = "asc"
	}

	var items []model.Order
	offset := q.PageNumber * q.PageSize
	err := tx.Order(col + " " + dir).Order("id " + dir).
		Limit(q.PageSize).
		Offset(offset).
		Find(&items).Error
	if err != nil {
		return []model.Order{}, 0, err
	}

	return items, total, nil
}

func (r *OrderGormRepository) Create(ctx context.Context, order model.Order) error {
	return r.db.WithContext(ctx).Create(&order).Error
}

// 注文を削除（明細は呼び出し側が同一Txで消す）
func (r *OrderGormRepository) DeleteByID(ctx context.Context, orderID string) error {
	res := r.db.WithContext(ctx).Where("id = ?", orderID).Delete(&model.Order{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}
