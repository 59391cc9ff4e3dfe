package model

// 注文の明細
// quantity / total_price は確定時にカート明細からそのまま写す（再計算しない）。
type OrderItem struct {
	ID         int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	OrderID    string `gorm:"type:varchar(36);not null;index" json:"order_id"`
	ProductID  string `gorm:"type:varchar(36);not null;index" json:"product_id"`
	Quantity   int64  `gorm:"not null" json:"quantity"`
	TotalPrice int64  `gorm:"not null" json:"total_price"`
}
