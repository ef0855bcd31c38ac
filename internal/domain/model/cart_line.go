package model

import "time"

// カートの明細。同一商品は1行に数量加算。
type CartLine struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	CartID    int64     `gorm:"not null;uniqueIndex:idx_cart_lines_cart_item" json:"cart_id"`
	ItemID    int64     `gorm:"not null;uniqueIndex:idx_cart_lines_cart_item;index" json:"item_id"`
	Quantity  int64     `gorm:"not null" json:"quantity"`
	CreatedAt time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;autoUpdateTime" json:"updated_at"`
}
