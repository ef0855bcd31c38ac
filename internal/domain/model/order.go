package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// チェックアウト時点のカートの確定。作成後は不変で、削除（キャンセル）だけ許す。
type Order struct {
	ID         int64           `gorm:"primaryKey;autoIncrement" json:"id"`
	CustomerID int64           `gorm:"not null;index" json:"customer_id"`
	TotalPrice decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"total_price"`
	CreatedAt  time.Time       `gorm:"not null;autoCreateTime" json:"created_at"`
}
