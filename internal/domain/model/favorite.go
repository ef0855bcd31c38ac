package model

import "time"

// お気に入りは(user, item)で1件だけ
type Favorite struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID    int64     `gorm:"not null;uniqueIndex:idx_favorites_user_item" json:"user_id"`
	ItemID    int64     `gorm:"not null;uniqueIndex:idx_favorites_user_item;index" json:"item_id"`
	CreatedAt time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
}
