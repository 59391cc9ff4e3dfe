package model

import "time"

// 1ユーザーにつきカートは1つ
type Cart struct {
	ID          string    `gorm:"type:varchar(36);primaryKey" json:"cart_id"`
	UserID      string    `gorm:"type:varchar(36);not null;uniqueIndex" json:"user_id"`
	CreatedDate time.Time `gorm:"not null" json:"created_date"`
}
