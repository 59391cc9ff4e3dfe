package model

// カートの明細
// total_price は追加時点の価格スナップショット（quantity × discounted_price）を必ず保存。
// 同一カート×同一商品は1行だけ（複合ユニーク）。
type CartItem struct {
	ID         int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	CartID     string `gorm:"type:varchar(36);not null;uniqueIndex:uq_cart_product" json:"cart_id"`
	ProductID  string `gorm:"type:varchar(36);not null;uniqueIndex:uq_cart_product" json:"product_id"`
	Quantity   int64  `gorm:"not null" json:"quantity"`
	TotalPrice int64  `gorm:"not null" json:"total_price"`
}
