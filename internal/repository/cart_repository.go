package repository

import (
	"context"

	"github.com/karimovsardorbek/online-market/internal/domain/model"
)

type CartRepository interface {
	//ユーザーのカートを取得し、無ければ作る。同時初回アクセスでも1つだけ。
	GetOrCreateByUserID(ctx context.Context, userID int64) (model.Cart, error)
	FindByUserID(ctx context.Context, userID int64) (model.Cart, error)
	//明細を全削除（カート自体は残す）
	Clear(ctx context.Context, cartID int64) error
}
