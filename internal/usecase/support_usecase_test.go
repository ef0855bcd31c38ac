package usecase_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/karimovsardorbek/online-market/internal/domain/model"
	"github.com/karimovsardorbek/online-market/internal/usecase"
)

// emailは作成時点のアカウントから写し取られる
func TestSupportUsecase_Create_CapturesEmail(t *testing.T) {
	ctx := context.Background()

	srRepo := new(MockSupportRequestRepository)
	userRepo := new(MockUserRepository)

	userRepo.On("FindByID", mock.Anything, int64(1)).Return(&model.User{
		ID:    1,
		Email: "user@test.com",
	}, nil)

	srRepo.On("Create", mock.Anything, mock.MatchedBy(func(sr model.SupportRequest) bool {
		return sr.Email == "user@test.com" && sr.UserID != nil && *sr.UserID == 1
	})).Return(model.SupportRequest{ID: 1, Email: "user@test.com"}, nil)

	u := usecase.NewSupportUsecase(srRepo, userRepo)

	sr, err := u.Create(ctx, 1, usecase.CreateSupportRequestInput{
		Subject: "broken item",
		Message: "the item arrived damaged",
	})
	assert.NoError(t, err)
	assert.Equal(t, "user@test.com", sr.Email)

	srRepo.AssertExpectations(t)
}

func TestSupportUsecase_Create_EmptySubject(t *testing.T) {
	ctx := context.Background()

	srRepo := new(MockSupportRequestRepository)
	userRepo := new(MockUserRepository)

	u := usecase.NewSupportUsecase(srRepo, userRepo)

	_, err := u.Create(ctx, 1, usecase.CreateSupportRequestInput{Subject: "  ", Message: "x"})
	assertHTTPStatus(t, err, http.StatusBadRequest)

	srRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

// 他人の問い合わせは403
func TestSupportUsecase_Get_OthersRequestForbidden(t *testing.T) {
	ctx := context.Background()

	srRepo := new(MockSupportRequestRepository)
	userRepo := new(MockUserRepository)

	owner := int64(2)
	srRepo.On("FindByID", mock.Anything, int64(10)).Return(model.SupportRequest{
		ID:     10,
		UserID: &owner,
	}, nil)

	u := usecase.NewSupportUsecase(srRepo, userRepo)

	_, err := u.Get(ctx, 1, 10)
	assertHTTPStatus(t, err, http.StatusForbidden)
}

// アカウント削除でuser_idがNULLになったレコードは誰も操作できない
func TestSupportUsecase_Get_OrphanedRequestForbidden(t *testing.T) {
	ctx := context.Background()

	srRepo := new(MockSupportRequestRepository)
	userRepo := new(MockUserRepository)

	srRepo.On("FindByID", mock.Anything, int64(10)).Return(model.SupportRequest{
		ID:     10,
		UserID: nil,
	}, nil)

	u := usecase.NewSupportUsecase(srRepo, userRepo)

	_, err := u.Get(ctx, 1, 10)
	assertHTTPStatus(t, err, http.StatusForbidden)
}

func TestSupportUsecase_Update_Resolve(t *testing.T) {
	ctx := context.Background()

	srRepo := new(MockSupportRequestRepository)
	userRepo := new(MockUserRepository)

	owner := int64(1)
	srRepo.On("FindByID", mock.Anything, int64(10)).Return(model.SupportRequest{
		ID:       10,
		UserID:   &owner,
		Subject:  "broken item",
		Message:  "damaged",
		Resolved: false,
	}, nil)

	srRepo.On("Update", mock.Anything, mock.MatchedBy(func(sr model.SupportRequest) bool {
		return sr.ID == 10 && sr.Resolved && sr.Subject == "broken item"
	})).Return(nil)

	u := usecase.NewSupportUsecase(srRepo, userRepo)

	resolved := true
	sr, err := u.Update(ctx, 1, 10, usecase.UpdateSupportRequestInput{Resolved: &resolved})
	assert.NoError(t, err)
	assert.True(t, sr.Resolved)

	srRepo.AssertExpectations(t)
}
