package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/karimovsardorbek/online-market/internal/domain/model"
)

type OrderLineGormRepository struct {
	db *gorm.DB
}

func NewOrderLineGormRepository(db *gorm.DB) *OrderLineGormRepository {
	return &OrderLineGormRepository{db: db}
}

// 注文明細を一括作成
func (r *OrderLineGormRepository) CreateBulk(ctx context.Context, orderID int64, lines []model.OrderLine) error {
	if len(lines) == 0 {
		return nil
	}

	rows := make([]model.OrderLine, 0, len(lines))
	for _, l := range lines {
		l.OrderID = orderID
		rows = append(rows, l)
	}

	return r.db.WithContext(ctx).Create(&rows).Error
}

func (r *OrderLineGormRepository) ListByOrderID(ctx context.Context, orderID int64) ([]model.OrderLine, error) {
	var lines []model.OrderLine

	if err := r.db.WithContext(ctx).
		Where("order_id = ?", orderID).
		Order("id asc").
		Find(&lines).Error; err != nil {
		return []model.OrderLine{}, err
	}

	return lines, nil
}
