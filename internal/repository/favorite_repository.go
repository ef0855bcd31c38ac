package repository

import (
	"context"

	"github.com/karimovsardorbek/online-market/internal/domain/model"
)

type FavoriteRepository interface {
	//既に(user, item)があればErrConflict
	Create(ctx context.Context, fav model.Favorite) (model.Favorite, error)
	DeleteByUserAndItem(ctx context.Context, userID int64, itemID int64) error
	ListByUserID(ctx context.Context, userID int64) ([]model.Favorite, error)
}
