package model

import "time"

type Product struct {
	ID              string    `gorm:"type:varchar(36);primaryKey" json:"product_id"`
	Title           string    `gorm:"type:varchar(255);not null" json:"title"`
	Description     string    `gorm:"type:text" json:"description"`
	Price           int64     `gorm:"not null" json:"price"`
	DiscountedPrice int64     `gorm:"not null" json:"discounted_price"`
	Quantity        int64     `gorm:"not null" json:"quantity"`
	AddedDate       time.Time `gorm:"not null" json:"added_date"`
	Live            bool      `gorm:"not null;default:false" json:"live"`
	Stock           bool      `gorm:"not null;default:true" json:"stock"`
	ProductImage    string    `gorm:"type:varchar(255)" json:"product_image"`
	CategoryID      *string   `gorm:"type:varchar(36);index" json:"category_id"`
}
