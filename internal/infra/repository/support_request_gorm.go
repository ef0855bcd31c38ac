package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/karimovsardorbek/online-market/internal/domain/model"
	repo "github.com/karimovsardorbek/online-market/internal/repository"
)

type SupportRequestGormRepository struct {
	db *gorm.DB
}

// DI
func NewSupportRequestGormRepository(db *gorm.DB) *SupportRequestGormRepository {
	return &SupportRequestGormRepository{db: db}
}

func (r *SupportRequestGormRepository) Create(ctx context.Context, sr model.SupportRequest) (model.SupportRequest, error) {
	if err := r.db.WithContext(ctx).Create(&sr).Error; err != nil {
		return model.SupportRequest{}, err
	}
	return sr, nil
}

func (r *SupportRequestGormRepository) FindByID(ctx context.Context, id int64) (model.SupportRequest, error) {
	var sr model.SupportRequest
	err := r.db.WithContext(ctx).First(&sr, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.SupportRequest{}, repo.ErrNotFound
	}
	if err != nil {
		return model.SupportRequest{}, err
	}
	return sr, nil
}

func (r *SupportRequestGormRepository) ListByUserID(ctx context.Context, userID int64) ([]model.SupportRequest, error) {
	var srs []model.SupportRequest

	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("id desc").
		Find(&srs).Error; err != nil {
		return []model.SupportRequest{}, err
	}

	return srs, nil
}

func (r *SupportRequestGormRepository) Update(ctx context.Context, sr model.SupportRequest) error {
	res := r.db.WithContext(ctx).
		Model(&model.SupportRequest{}).
		Where("id = ?", sr.ID).
		Updates(map[string]interface{}{
			"subject":  sr.Subject,
			"message":  sr.Message,
			"resolved": sr.Resolved,
		})

	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

func (r *SupportRequestGormRepository) Delete(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Delete(&model.SupportRequest{}, id)

	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}
