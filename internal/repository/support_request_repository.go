package repository

import (
	"context"

	"github.com/karimovsardorbek/online-market/internal/domain/model"
)

type SupportRequestRepository interface {
	Create(ctx context.Context, sr model.SupportRequest) (model.SupportRequest, error)
	FindByID(ctx context.Context, id int64) (model.SupportRequest, error)
	ListByUserID(ctx context.Context, userID int64) ([]model.SupportRequest, error)
	Update(ctx context.Context, sr model.SupportRequest) error
	Delete(ctx context.Context, id int64) error
}
