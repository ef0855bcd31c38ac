package repository

import (
	"context"

	"github.com/karimovsardorbek/online-market/internal/domain/model"
)

type OrderRepository interface {
	FindByID(ctx context.Context, orderID int64) (model.Order, error)
	//新しい順
	ListByCustomerID(ctx context.Context, customerID int64, page int, limit int) ([]model.Order, int64, error)
	Create(ctx context.Context, order model.Order) (int64, error)
	//注文ごと削除（キャンセル）。明細も一緒に消す。
	Delete(ctx context.Context, orderID int64) error
}
