package usecase

import (
	"context"
	"net/http"

	"github.com/karimovsardorbek/online-market/internal/domain/model"
	repo "github.com/karimovsardorbek/online-market/internal/repository"
)

type ReviewUsecase struct {
	reviewRepo repo.ReviewRepository
	itemRepo   repo.ItemRepository
}

func NewReviewUsecase(reviewRepo repo.ReviewRepository, itemRepo repo.ItemRepository) *ReviewUsecase {
	return &ReviewUsecase{
		reviewRepo: reviewRepo,
		itemRepo:   itemRepo,
	}
}

type CreateReviewInput struct {
	ItemID  int64
	Rating  int
	Comment string
}

type UpdateReviewInput struct {
	Rating  *int
	Comment *string
}

// 同じ(user, item)に複数投稿できる（ユニーク制約なし）
func (u *ReviewUsecase) Create(ctx context.Context, userID int64, in CreateReviewInput) (model.Review, error) {
	if userID <= 0 {
		return model.Review{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if in.ItemID <= 0 {
		return model.Review{}, NewHTTPError(http.StatusBadRequest, "invalid item_id")
	}
	if in.Rating < 1 || in.Rating > 10 {
		return model.Review{}, NewHTTPError(http.StatusBadRequest, "rating must be 1-10")
	}

	if _, err := u.itemRepo.FindByID(ctx, in.ItemID); err != nil {
		if err == repo.ErrNotFound {
			return model.Review{}, NewHTTPError(http.StatusNotFound, "item not found")
		}
		return model.Review{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	rev, err := u.reviewRepo.Create(ctx, model.Review{
		UserID:  userID,
		ItemID:  in.ItemID,
		Rating:  in.Rating,
		Comment: in.Comment,
	})
	if err != nil {
		return model.Review{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return rev, nil
}

func (u *ReviewUsecase) ListByItem(ctx context.Context, itemID int64) ([]model.Review, error) {
	if itemID <= 0 {
		return []model.Review{}, NewHTTPError(http.StatusBadRequest, "invalid item_id")
	}

	if _, err := u.itemRepo.FindByID(ctx, itemID); err != nil {
		if err == repo.ErrNotFound {
			return []model.Review{}, NewHTTPError(http.StatusNotFound, "item not found")
		}
		return []model.Review{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	revs, err := u.reviewRepo.ListByItemID(ctx, itemID)
	if err != nil {
		return []model.Review{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return revs, nil
}

// 404が先、403が後
func (u *ReviewUsecase) Update(ctx context.Context, userID int64, reviewID int64, in UpdateReviewInput) (model.Review, error) {
	if userID <= 0 {
		return model.Review{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if reviewID <= 0 {
		return model.Review{}, NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	rev, err := u.reviewRepo.FindByID(ctx, reviewID)
	if err == repo.ErrNotFound {
		return model.Review{}, NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return model.Review{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	if rev.UserID != userID {
		return model.Review{}, NewHTTPError(http.StatusForbidden, "forbidden")
	}

	if in.Rating != nil {
		if *in.Rating < 1 || *in.Rating > 10 {
			return model.Review{}, NewHTTPError(http.StatusBadRequest, "rating must be 1-10")
		}
		rev.Rating = *in.Rating
	}
	if in.Comment != nil {
		rev.Comment = *in.Comment
	}

	if err := u.reviewRepo.Update(ctx, rev); err != nil {
		if err == repo.ErrNotFound {
			return model.Review{}, NewHTTPError(http.StatusNotFound, "not found")
		}
		return model.Review{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return rev, nil
}

func (u *ReviewUsecase) Delete(ctx context.Context, userID int64, reviewID int64) error {
	if userID <= 0 {
		return NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if reviewID <= 0 {
		return NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	rev, err := u.reviewRepo.FindByID(ctx, reviewID)
	if err == repo.ErrNotFound {
		return NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	if rev.UserID != userID {
		return NewHTTPError(http.StatusForbidden, "forbidden")
	}

	if err := u.reviewRepo.Delete(ctx, reviewID); err != nil {
		if err == repo.ErrNotFound {
			return NewHTTPError(http.StatusNotFound, "not found")
		}
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return nil
}
