package model

import "time"

// 注文は作成後に変更しない（削除のみ）。
// payment_status / order_status は呼び出し側から渡される自由文字列。
type Order struct {
	ID             string     `gorm:"type:varchar(36);primaryKey" json:"order_id"`
	UserID         string     `gorm:"type:varchar(36);not null;index" json:"user_id"`
	BillingName    string     `gorm:"type:varchar(255);not null" json:"billing_name"`
	BillingPhone   string     `gorm:"type:varchar(30);not null" json:"billing_phone"`
	BillingAddress string     `gorm:"type:text;not null" json:"billing_address"`
	OrderAmount    int64      `gorm:"not null" json:"order_amount"`
	PaymentStatus  string     `gorm:"type:varchar(30);not null" json:"payment_status"`
	OrderStatus    string     `gorm:"type:varchar(30);not null" json:"order_status"`
	OrderedDate    time.Time  `gorm:"not null" json:"ordered_date"`
	DeliveredDate  *time.Time `json:"delivered_date"`
}
