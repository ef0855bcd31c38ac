package repository

import (
	"context"
	"errors"

	"github.com/karimovsardorbek/online-market/internal/domain/model"
)

var ErrNotFound = errors.New("not found")

// unique制約違反（email重複、認証コード衝突など）
var ErrConflict = errors.New("conflict")

// 一覧検索
type ItemListQuery struct {
	Page  int
	Limit int
	Q     string
}

// 商品の永続化（保存・取得）だけを約束。
type ItemRepository interface {
	List(ctx context.Context, q ItemListQuery) ([]model.Item, int64, error)
	FindByID(ctx context.Context, id int64) (model.Item, error)

	Create(ctx context.Context, item model.Item) (model.Item, error)
	Update(ctx context.Context, item model.Item) error
	Delete(ctx context.Context, id int64) error
}
