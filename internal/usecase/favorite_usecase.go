package usecase

import (
	"context"
	"net/http"
	"time"

	"github.com/karimovsardorbek/online-market/internal/domain/model"
	repo "github.com/karimovsardorbek/online-market/internal/repository"
)

type FavoriteUsecase struct {
	favRepo  repo.FavoriteRepository
	itemRepo repo.ItemRepository
}

func NewFavoriteUsecase(favRepo repo.FavoriteRepository, itemRepo repo.ItemRepository) *FavoriteUsecase {
	return &FavoriteUsecase{
		favRepo:  favRepo,
		itemRepo: itemRepo,
	}
}

type MarkOutput struct {
	Created bool `json:"created"`
}

type UnmarkOutput struct {
	Removed bool `json:"removed"`
}

type FavoriteOutput struct {
	ItemID    int64     `json:"item_id"`
	CreatedAt time.Time `json:"created_at"`
}

// Mark は冪等。既にあればcreated=falseを返すだけでエラーにしない。
func (u *FavoriteUsecase) Mark(ctx context.Context, userID int64, itemID int64) (MarkOutput, error) {
	if userID <= 0 {
		return MarkOutput{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if itemID <= 0 {
		return MarkOutput{}, NewHTTPError(http.StatusBadRequest, "invalid item id")
	}

	if _, err := u.itemRepo.FindByID(ctx, itemID); err != nil {
		if err == repo.ErrNotFound {
			return MarkOutput{}, NewHTTPError(http.StatusNotFound, "item not found")
		}
		return MarkOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	_, err := u.favRepo.Create(ctx, model.Favorite{
		UserID: userID,
		ItemID: itemID,
	})
	if err == repo.ErrConflict {
		return MarkOutput{Created: false}, nil
	}
	if err != nil {
		return MarkOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return MarkOutput{Created: true}, nil
}

func (u *FavoriteUsecase) Unmark(ctx context.Context, userID int64, itemID int64) (UnmarkOutput, error) {
	if userID <= 0 {
		return UnmarkOutput{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if itemID <= 0 {
		return UnmarkOutput{}, NewHTTPError(http.StatusBadRequest, "invalid item id")
	}

	if _, err := u.itemRepo.FindByID(ctx, itemID); err != nil {
		if err == repo.ErrNotFound {
			return UnmarkOutput{}, NewHTTPError(http.StatusNotFound, "item not found")
		}
		return UnmarkOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	if err := u.favRepo.DeleteByUserAndItem(ctx, userID, itemID); err != nil {
		if err == repo.ErrNotFound {
			return UnmarkOutput{}, NewHTTPError(http.StatusNotFound, "not a favorite")
		}
		return UnmarkOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return UnmarkOutput{Removed: true}, nil
}

func (u *FavoriteUsecase) ListMine(ctx context.Context, userID int64) ([]FavoriteOutput, error) {
	if userID <= 0 {
		return []FavoriteOutput{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}

	favs, err := u.favRepo.ListByUserID(ctx, userID)
	if err != nil {
		return []FavoriteOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	outs := make([]FavoriteOutput, 0, len(favs))
	for _, f := range favs {
		outs = append(outs, FavoriteOutput{
			ItemID:    f.ItemID,
			CreatedAt: f.CreatedAt,
		})
	}
	return outs, nil
}
