package repository

import (
	"context"

	"github.com/karimovsardorbek/online-market/internal/domain/model"
)

type ReviewRepository interface {
	Create(ctx context.Context, review model.Review) (model.Review, error)
	FindByID(ctx context.Context, reviewID int64) (model.Review, error)
	ListByItemID(ctx context.Context, itemID int64) ([]model.Review, error)
	Update(ctx context.Context, review model.Review) error
	Delete(ctx context.Context, reviewID int64) error
}
