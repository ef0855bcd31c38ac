package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/karimovsardorbek/online-market/internal/domain/model"
	repo "github.com/karimovsardorbek/online-market/internal/repository"
)

type ProfileGormRepository struct {
	db *gorm.DB
}

// DI
func NewProfileGormRepository(db *gorm.DB) *ProfileGormRepository {
	return &ProfileGormRepository{db: db}
}

// user_idのunique制約で1人1件。2件目はErrConflict。
func (r *ProfileGormRepository) Create(ctx context.Context, p model.Profile) (model.Profile, error) {
	if err := r.db.WithContext(ctx).Create(&p).Error; err != nil {
		if isUniqueViolation(err) || errors.Is(err, gorm.ErrDuplicatedKey) {
			return model.Profile{}, repo.ErrConflict
		}
		return model.Profile{}, err
	}
	return p, nil
}

func (r *ProfileGormRepository) FindByID(ctx context.Context, profileID int64) (model.Profile, error) {
	var p model.Profile
	err := r.db.WithContext(ctx).First(&p, profileID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Profile{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Profile{}, err
	}
	return p, nil
}

func (r *ProfileGormRepository) List(ctx context.Context) ([]model.Profile, error) {
	var ps []model.Profile

	if err := r.db.WithContext(ctx).
		Order("id asc").
		Find(&ps).Error; err != nil {
		return []model.Profile{}, err
	}

	return ps, nil
}

func (r *ProfileGormRepository) Update(ctx context.Context, p model.Profile) error {
	res := r.db.WithContext(ctx).
		Model(&model.Profile{}).
		Where("id = ?", p.ID).
		Update("full_name", p.FullName)

	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

func (r *ProfileGormRepository) Delete(ctx context.Context, profileID int64) error {
	res := r.db.WithContext(ctx).Delete(&model.Profile{}, profileID)

	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}
