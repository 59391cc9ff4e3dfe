package repository

import (
	"app/internal/domain/model"
	"context"
	"errors"
)

// ユーザーが見つかりませんを統一
var ErrUserNotFound = errors.New("user not found")

// 保存・取得を約束
type UserRepository interface {
	//新規ユーザー作成
	Create(ctx context.Context, user *model.User) error
	// IDからユーザーを1件取得する。
	FindByID(ctx context.Context, userID string) (*model.User, error)
	// メールからユーザーを1件取得する。見つからないときは nil を返す。
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	List(ctx context.Context, q PageQuery) ([]model.User, int64, error)
	// ユーザー情報の更新（名前・性別・自己紹介・画像など）
	Update(ctx context.Context, user *model.User) error
	DeleteByID(ctx context.Context, userID string) error
}
