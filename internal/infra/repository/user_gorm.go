package repository

import (
	"app/internal/domain/model"
	domainrepo "app/internal/repository"
	"context"
	"errors"

	"gorm.io/gorm"
)

type userGormRepository struct {
	db *gorm.DB
}

// DI
// main.goでこれをnewしてusecaseに注入します。
func NewUserGormRepository(db *gorm.DB) domainrepo.UserRepository {
	return &userGormRepository{db: db}
}

// Create はユーザーを新規作成
func (r *userGormRepository) Create(ctx context.Context, user *model.User) error {
	if err := r.db.WithContext(ctx).Create(user).Error; err != nil {
		return err
	}
	return nil
}

// IDでユーザーを1件取得
func (r *userGormRepository) FindByID(ctx context.Context, userID string) (*model.User, error) {
	var u model.User

	err := r.db.WithContext(ctx).
		Where("id = ?", userID).
		First(&u).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainrepo.ErrUserNotFound
		}
		return nil, err
	}

	return &u, nil
}

// emailでユーザーを1件取得（見つからなければ nil, nil）
func (r *userGormRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	var u model.User

	err := r.db.WithContext(ctx).
		Where("email = ?", email).
		First(&u).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &u, nil
}

func (r *userGormRepository) List(ctx context.Context, q domainrepo.PageQuery) ([]model.User, int64, error) {
	if q.PageNumber < 0 {
		q.PageNumber = 0
	}
	if q.PageSize <= 0 || q.PageSize > 100 {
		q.PageSize = 10
	}

	tx := r.db.WithContext(ctx).Model(&model.User{})

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return []model.User{}, 0, err
	}

	col := "created_at"
	switch q.SortBy {
	case "name":
		col = "name"
	case "email":
		col = "email"
	}
	dir := "desc"
	if q.SortDir == "ASC" {
		dir = "asc"
	}

	var users []model.User
	offset := q.PageNumber * q.PageSize
	if err := tx.Order(col + " " + dir).Offset(offset).Limit(q.PageSize).Find(&users).Error; err != nil {
		return []model.User{}, 0, err
	}

	return users, total, nil
}

// ユーザーを更新。
func (r *userGormRepository) Update(ctx context.Context, user *model.User) error {
	if err := r.db.WithContext(ctx).Save(user).Error; err != nil {
		return err
	}
	return nil
}

func (r *userGormRepository) DeleteByID(ctx context.Context, userID string) error {
	res := r.db.WithContext(ctx).Where("id = ?", userID).Delete(&model.User{})
	if res.Error != nil {
		return res.Error
	}

	// 0件削除は「対象がない」
	if res.RowsAffected == 0 {
		return domainrepo.ErrUserNotFound
	}
	return nil
}
