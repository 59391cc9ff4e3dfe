package repository

import (
	"context"
	"errors"

	"app/internal/domain/model"
	repo "app/internal/repository"

	"gorm.io/gorm"
)

type CategoryGormRepository struct {
	db *gorm.DB
}

// DI
func NewCategoryGormRepository(db *gorm.DB) *CategoryGormRepository {
	return &CategoryGormRepository{db: db}
}

func (r *CategoryGormRepository) FindByID(ctx context.Context, categoryID string) (model.Category, error) {
	var c model.Category
	err := r.db.WithContext(ctx).Where("id = ?", categoryID).First(&c).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Category{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Category{}, err
	}
	return c, nil
}

func (r *CategoryGormRepository) List(ctx context.Context, q repo.PageQuery) ([]model.Category, int64, error) {
	if q.PageNumber < 0 {
		q.PageNumber = 0
	}
	if q.PageSize <= 0 || q.PageSize > 100 {
		q.PageSize = 10
	}

	tx := r.db.WithContext(ctx).Model(&model.Category{})

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return []model.Category{}, 0, err
	}

	col := "title"
	if q.SortBy == "description" {
		col = "description"
	}
	dir := "desc"
	if q.SortDir == "ASC" {
		dir = "asc"
	}

	var items []model.Category
	offset := q.PageNumber * q.PageSize
	if err := tx.Order(col + " " + dir).Offset(offset).Limit(q.PageSize).Find(&items).Error; err != nil {
		return []model.Category{}, 0, err
	}

	return items, total, nil
}

func (r *CategoryGormRepository) Create(ctx context.Context, c model.Category) (model.Category, error) {
	if err := r.db.WithContext(ctx).Create(&c).Error; err != nil {
		return model.Category{}, err
	}
	return c, nil
}

func (r *CategoryGormRepository) Update(ctx context.Context, c model.Category) error {
	res := r.db.WithContext(ctx).Model(&model.Category{}).Where("id = ?", c.ID).Updates(map[string]interface{}{
		"title":       c.Title,
		"description": c.Description,
		"cover_image": c.CoverImage,
	})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

func (r *CategoryGormRepository) DeleteByID(ctx context.Context, categoryID string) error {
	res := r.db.WithContext(ctx).Where("id = ?", categoryID).Delete(&model.Category{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}
