package repository

import (
	"context"
	"errors"
	"strings"

	"app/internal/domain/model"
	repo "app/internal/repository"

	"gorm.io/gorm"
)

type ProductGormRepository struct {
	db *gorm.DB
}

// DI
func NewProductGormRepository(db *gorm.DB) *ProductGormRepository {
	return &ProductGormRepository{db: db}
}

// IDで商品を取得
func (r *ProductGormRepository) FindByID(ctx context.Context, productID string) (model.Product, error) {
	var p model.Product
	err := r.db.WithContext(ctx).Where("id = ?", productID).First(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Product{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Product{}, err
	}
	return p, nil
}

func (r *ProductGormRepository) List(ctx context.Context, q repo.PageQuery) ([]model.Product, int64, error) {
	return r.list(ctx, r.db.WithContext(ctx).Model(&model.Product{}), q)
}

// 公開中（live=true）のみ
func (r *ProductGormRepository) ListLive(ctx context.Context, q repo.PageQuery) ([]model.Product, int64, error) {
	tx := r.db.WithContext(ctx).Model(&model.Product{}).Where("live = ?", true)
	return r.list(ctx, tx, q)
}

func (r *ProductGormRepository) ListByCategory(ctx context.Context, categoryID string, q repo.PageQuery) ([]model.Product, int64, error) {
	tx := r.db.WithContext(ctx).Model(&model.Product{}).Where("category_id = ?", categoryID)
	return r.list(ctx, tx, q)
}

// タイトル部分一致検索
func (r *ProductGormRepository) SearchByTitle(ctx context.Context, keyword string, q repo.PageQuery) ([]model.Product, int64, error) {
	like := "%" + strings.TrimSpace(keyword) + "%"
	tx := r.db.WithContext(ctx).Model(&model.Product{}).Where("title ILIKE ?", like)
	return r.list(ctx, tx, q)
}

func (r *ProductGormRepository) list(ctx context.Context, tx *gorm.DB, q repo.PageQuery) ([]model.Product, int64, error) {
	if q.PageNumber < 0 {
		q.PageNumber = 0
	}
	if q.PageSize <= 0 || q.PageSize > 100 {
		q.PageSize = 10
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return []model.Product{}, 0, err
	}

	//ORDER BY はカラム名ホワイトリスト
	col := "added_date"
	switch q.SortBy {
	case "title":
		col = "title"
	case "price":
		col = "price"
	case "discountedPrice", "discounted_price":
		col = "discounted_price"
	}

	dir := "desc"
	if q.SortDir == "ASC" {
		dir = "asc"
	}

	var products []model.Product
	offset := q.PageNumber * q.PageSize
	if err := tx.Order(col + " " + dir).Order("id " + dir).
		Offset(offset).Limit(q.PageSize).
		Find(&products).Error; err != nil {
		return []model.Product{}, 0, err
	}

	return products, total, nil
}

// 商品の作成
func (r *ProductGormRepository) Create(ctx context.Context, p model.Product) (model.Product, error) {
	if err := r.db.WithContext(ctx).Create(&p).Error; err != nil {
		return model.Product{}, err
	}
	return p, nil
}

// 商品の更新
func (r *ProductGormRepository) Update(ctx context.Context, p model.Product) error {
	res := r.db.WithContext(ctx).Model(&model.Product{}).Where("id = ?", p.ID).Updates(map[string]interface{}{
		"title":            p.Title,
		"description":      p.Description,
		"price":            p.Price,
		"discounted_price": p.DiscountedPrice,
		"quantity":         p.Quantity,
		"live":             p.Live,
		"stock":            p.Stock,
		"product_image":    p.ProductImage,
		"category_id":      p.CategoryID,
	})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

// 商品削除
func (r *ProductGormRepository) DeleteByID(ctx context.Context, productID string) error {
	res := r.db.WithContext(ctx).Where("id = ?", productID).Delete(&model.Product{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}
