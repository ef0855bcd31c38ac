package usecase

import (
	"context"
	"net/http"
	"strings"

	"github.com/karimovsardorbek/online-market/internal/domain/model"
	repo "github.com/karimovsardorbek/online-market/internal/repository"
)

type ProfileUsecase struct {
	profileRepo repo.ProfileRepository
}

func NewProfileUsecase(profileRepo repo.ProfileRepository) *ProfileUsecase {
	return &ProfileUsecase{profileRepo: profileRepo}
}

type CreateProfileInput struct {
	FullName string
}

type UpdateProfileInput struct {
	FullName string
}

// 1人1件。2件目は409。
func (u *ProfileUsecase) Create(ctx context.Context, userID int64, in CreateProfileInput) (model.Profile, error) {
	if userID <= 0 {
		return model.Profile{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}

	fullName := strings.TrimSpace(in.FullName)
	if fullName == "" || len(fullName) > 100 {
		return model.Profile{}, NewHTTPError(http.StatusBadRequest, "invalid full_name")
	}

	p, err := u.profileRepo.Create(ctx, model.Profile{
		UserID:   userID,
		FullName: fullName,
	})
	if err == repo.ErrConflict {
		return model.Profile{}, NewHTTPError(http.StatusConflict, "profile already exists")
	}
	if err != nil {
		return model.Profile{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return p, nil
}

func (u *ProfileUsecase) List(ctx context.Context, userID int64) ([]model.Profile, error) {
	if userID <= 0 {
		return []model.Profile{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}

	ps, err := u.profileRepo.List(ctx)
	if err != nil {
		return []model.Profile{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return ps, nil
}

func (u *ProfileUsecase) Update(ctx context.Context, userID int64, profileID int64, in UpdateProfileInput) (model.Profile, error) {
	if userID <= 0 {
		return model.Profile{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if profileID <= 0 {
		return model.Profile{}, NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	fullName := strings.TrimSpace(in.FullName)
	if fullName == "" || len(fullName) > 100 {
		return model.Profile{}, NewHTTPError(http.StatusBadRequest, "invalid full_name")
	}

	p, err := u.profileRepo.FindByID(ctx, profileID)
	if err == repo.ErrNotFound {
		return model.Profile{}, NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return model.Profile{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	if p.UserID != userID {
		return model.Profile{}, NewHTTPError(http.StatusForbidden, "forbidden")
	}

	p.FullName = fullName
	if err := u.profileRepo.Update(ctx, p); err != nil {
		if err == repo.ErrNotFound {
			return model.Profile{}, NewHTTPError(http.StatusNotFound, "not found")
		}
		return model.Profile{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return p, nil
}

func (u *ProfileUsecase) Delete(ctx context.Context, userID int64, profileID int64) error {
	if userID <= 0 {
		return NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if profileID <= 0 {
		return NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	p, err := u.profileRepo.FindByID(ctx, profileID)
	if err == repo.ErrNotFound {
		return NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	if p.UserID != userID {
		return NewHTTPError(http.StatusForbidden, "forbidden")
	}

	if err := u.profileRepo.Delete(ctx, profileID); err != nil {
		if err == repo.ErrNotFound {
			return NewHTTPError(http.StatusNotFound, "not found")
		}
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return nil
}
