package repository

import (
	"context"

	"github.com/karimovsardorbek/online-market/internal/domain/model"
)

type CartLineRepository interface {
	ListByCartID(ctx context.Context, cartID int64) ([]model.CartLine, error)
	//チェックアウト用。行ロックを取ってから返す。
	ListByCartIDForUpdate(ctx context.Context, cartID int64) ([]model.CartLine, error)
	// 同一商品は数量加算（上書きしない）
	AddQuantity(ctx context.Context, cartID int64, itemID int64, addQty int64) error
	//行ごと削除。部分的な数量減算はしない。
	DeleteByCartAndItem(ctx context.Context, cartID int64, itemID int64) error
}
