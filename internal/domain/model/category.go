package model

type Category struct {
	ID          string `gorm:"type:varchar(36);primaryKey" json:"category_id"`
	Title       string `gorm:"type:varchar(60);not null" json:"title"`
	Description string `gorm:"type:text" json:"description"`
	CoverImage  string `gorm:"type:varchar(255)" json:"cover_image"`
}
