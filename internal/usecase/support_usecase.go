package usecase

import (
	"context"
	"net/http"
	"strings"

	"github.com/karimovsardorbek/online-market/internal/domain/model"
	repo "github.com/karimovsardorbek/online-market/internal/repository"
)

type SupportUsecase struct {
	srRepo   repo.SupportRequestRepository
	userRepo repo.UserRepository
}

func NewSupportUsecase(srRepo repo.SupportRequestRepository, userRepo repo.UserRepository) *SupportUsecase {
	return &SupportUsecase{
		srRepo:   srRepo,
		userRepo: userRepo,
	}
}

type CreateSupportRequestInput struct {
	Subject string
	Message string
}

type UpdateSupportRequestInput struct {
	Subject  *string
	Message  *string
	Resolved *bool
}

// emailは作成時点のアカウントから取る。
// アカウントが消えてもレコードは残るため。
func (u *SupportUsecase) Create(ctx context.Context, userID int64, in CreateSupportRequestInput) (model.SupportRequest, error) {
	if userID <= 0 {
		return model.SupportRequest{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}

	subject := strings.TrimSpace(in.Subject)
	if subject == "" || len(subject) > 255 {
		return model.SupportRequest{}, NewHTTPError(http.StatusBadRequest, "invalid subject")
	}
	if strings.TrimSpace(in.Message) == "" {
		return model.SupportRequest{}, NewHTTPError(http.StatusBadRequest, "invalid message")
	}

	user, err := u.userRepo.FindByID(ctx, userID)
	if err != nil || user == nil {
		return model.SupportRequest{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}

	uid := userID
	sr, err := u.srRepo.Create(ctx, model.SupportRequest{
		UserID:  &uid,
		Email:   user.Email,
		Subject: subject,
		Message: in.Message,
	})
	if err != nil {
		return model.SupportRequest{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return sr, nil
}

func (u *SupportUsecase) ListMine(ctx context.Context, userID int64) ([]model.SupportRequest, error) {
	if userID <= 0 {
		return []model.SupportRequest{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}

	srs, err := u.srRepo.ListByUserID(ctx, userID)
	if err != nil {
		return []model.SupportRequest{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return srs, nil
}

func (u *SupportUsecase) Get(ctx context.Context, userID int64, id int64) (model.SupportRequest, error) {
	if userID <= 0 {
		return model.SupportRequest{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if id <= 0 {
		return model.SupportRequest{}, NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	sr, err := u.srRepo.FindByID(ctx, id)
	if err == repo.ErrNotFound {
		return model.SupportRequest{}, NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return model.SupportRequest{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	if sr.UserID == nil || *sr.UserID != userID {
		return model.SupportRequest{}, NewHTTPError(http.StatusForbidden, "forbidden")
	}

	return sr, nil
}

func (u *SupportUsecase) Update(ctx context.Context, userID int64, id int64, in UpdateSupportRequestInput) (model.SupportRequest, error) {
	sr, err := u.Get(ctx, userID, id)
	if err != nil {
		return model.SupportRequest{}, err
	}

	if in.Subject != nil {
		subject := strings.TrimSpace(*in.Subject)
		if subject == "" || len(subject) > 255 {
			return model.SupportRequest{}, NewHTTPError(http.StatusBadRequest, "invalid subject")
		}
		sr.Subject = subject
	}
	if in.Message != nil {
		if strings.TrimSpace(*in.Message) == "" {
			return model.SupportRequest{}, NewHTTPError(http.StatusBadRequest, "invalid message")
		}
		sr.Message = *in.Message
	}
	if in.Resolved != nil {
		sr.Resolved = *in.Resolved
	}

	if err := u.srRepo.Update(ctx, sr); err != nil {
		if err == repo.ErrNotFound {
			return model.SupportRequest{}, NewHTTPError(http.StatusNotFound, "not found")
		}
		return model.SupportRequest{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return sr, nil
}

func (u *SupportUsecase) Delete(ctx context.Context, userID int64, id int64) error {
	if _, err := u.Get(ctx, userID, id); err != nil {
		return err
	}

	if err := u.srRepo.Delete(ctx, id); err != nil {
		if err == repo.ErrNotFound {
			return NewHTTPError(http.StatusNotFound, "not found")
		}
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return nil
}
