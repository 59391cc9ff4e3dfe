package model

import "time"

type User struct {
	ID           string    `gorm:"type:varchar(36);primaryKey" json:"user_id"`
	Name         string    `gorm:"type:varchar(255);not null" json:"name"`
	Email        string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	PasswordHash string    `gorm:"column:password_hash;not null" json:"-"`
	Gender       string    `gorm:"type:varchar(20)" json:"gender"`
	About        string    `gorm:"type:varchar(100)" json:"about"`
	ImageName    string    `gorm:"type:varchar(255)" json:"image_name"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
