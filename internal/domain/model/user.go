package model

import "time"

// 買い手か売り手かをis_sellerで区別する
type User struct {
	ID           int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	Email        string `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"column:password_hash;not null" json:"-"`
	FullName     string `gorm:"type:varchar(100);not null" json:"full_name"`
	IsSeller     bool   `gorm:"not null;default:false" json:"is_seller"`

	//メール認証済みかどうか
	IsVerified bool `gorm:"not null;default:false" json:"is_verified"`

	//未認証の間だけ持つ6桁コード。認証成功でNULLに戻す。
	//コードで引くので、未解決の間はユニークであること。
	VerificationCode *string `gorm:"type:varchar(6);uniqueIndex" json:"-"`

	CreatedAt time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;autoUpdateTime" json:"updated_at"`
}
