package repository

import (
	"context"

	"github.com/karimovsardorbek/online-market/internal/domain/model"
)

type ProfileRepository interface {
	//user_id重複はErrConflict（1人1件）
	Create(ctx context.Context, p model.Profile) (model.Profile, error)
	FindByID(ctx context.Context, profileID int64) (model.Profile, error)
	List(ctx context.Context) ([]model.Profile, error)
	Update(ctx context.Context, p model.Profile) error
	Delete(ctx context.Context, profileID int64) error
}
