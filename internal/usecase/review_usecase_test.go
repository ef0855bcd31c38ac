package usecase_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/karimovsardorbek/online-market/internal/domain/model"
	repo "github.com/karimovsardorbek/online-market/internal/repository"
	"github.com/karimovsardorbek/online-market/internal/usecase"
)

func TestReviewUsecase_Create_Success(t *testing.T) {
	ctx := context.Background()

	reviewRepo := new(MockReviewRepository)
	itemRepo := new(MockItemRepository)

	itemRepo.On("FindByID", mock.Anything, int64(5)).Return(model.Item{ID: 5}, nil)
	reviewRepo.On("Create", mock.Anything, model.Review{
		UserID:  1,
		ItemID:  5,
		Rating:  8,
		Comment: "good",
	}).Return(model.Review{ID: 1, UserID: 1, ItemID: 5, Rating: 8, Comment: "good"}, nil)

	u := usecase.NewReviewUsecase(reviewRepo, itemRepo)

	rev, err := u.Create(ctx, 1, usecase.CreateReviewInput{ItemID: 5, Rating: 8, Comment: "good"})
	assert.NoError(t, err)
	assert.Equal(t, 8, rev.Rating)
}

// ratingは1〜10
func TestReviewUsecase_Create_RatingOutOfRange(t *testing.T) {
	ctx := context.Background()

	reviewRepo := new(MockReviewRepository)
	itemRepo := new(MockItemRepository)

	u := usecase.NewReviewUsecase(reviewRepo, itemRepo)

	_, err := u.Create(ctx, 1, usecase.CreateReviewInput{ItemID: 5, Rating: 0})
	assertHTTPStatus(t, err, http.StatusBadRequest)

	_, err = u.Create(ctx, 1, usecase.CreateReviewInput{ItemID: 5, Rating: 11})
	assertHTTPStatus(t, err, http.StatusBadRequest)

	reviewRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

// 同じ(user, item)に2回投稿できる
func TestReviewUsecase_Create_DuplicateAllowed(t *testing.T) {
	ctx := context.Background()

	reviewRepo := new(MockReviewRepository)
	itemRepo := new(MockItemRepository)

	itemRepo.On("FindByID", mock.Anything, int64(5)).Return(model.Item{ID: 5}, nil)
	reviewRepo.On("Create", mock.Anything, mock.AnythingOfType("model.Review")).Return(model.Review{ID: 1}, nil).Once()
	reviewRepo.On("Create", mock.Anything, mock.AnythingOfType("model.Review")).Return(model.Review{ID: 2}, nil).Once()

	u := usecase.NewReviewUsecase(reviewRepo, itemRepo)

	_, err := u.Create(ctx, 1, usecase.CreateReviewInput{ItemID: 5, Rating: 7})
	assert.NoError(t, err)
	_, err = u.Create(ctx, 1, usecase.CreateReviewInput{ItemID: 5, Rating: 3})
	assert.NoError(t, err)

	reviewRepo.AssertExpectations(t)
}

func TestReviewUsecase_Update_OthersReviewForbidden(t *testing.T) {
	ctx := context.Background()

	reviewRepo := new(MockReviewRepository)
	itemRepo := new(MockItemRepository)

	reviewRepo.On("FindByID", mock.Anything, int64(1)).Return(model.Review{
		ID:     1,
		UserID: 2,
		Rating: 5,
	}, nil)

	u := usecase.NewReviewUsecase(reviewRepo, itemRepo)

	rating := 1
	_, err := u.Update(ctx, 1, 1, usecase.UpdateReviewInput{Rating: &rating})
	assertHTTPStatus(t, err, http.StatusForbidden)

	reviewRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestReviewUsecase_Delete_NotFound(t *testing.T) {
	ctx := context.Background()

	reviewRepo := new(MockReviewRepository)
	itemRepo := new(MockItemRepository)

	reviewRepo.On("FindByID", mock.Anything, int64(99)).Return(model.Review{}, repo.ErrNotFound)

	u := usecase.NewReviewUsecase(reviewRepo, itemRepo)

	err := u.Delete(ctx, 1, 99)
	assertHTTPStatus(t, err, http.StatusNotFound)
}
