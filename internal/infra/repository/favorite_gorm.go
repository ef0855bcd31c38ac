package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/karimovsardorbek/online-market/internal/domain/model"
	repo "github.com/karimovsardorbek/online-market/internal/repository"
)

type FavoriteGormRepository struct {
	db *gorm.DB
}

// DI
func NewFavoriteGormRepository(db *gorm.DB) *FavoriteGormRepository {
	return &FavoriteGormRepository{db: db}
}

// (user, item)のunique制約で二重登録を防ぐ。重複はErrConflict。
func (r *FavoriteGormRepository) Create(ctx context.Context, fav model.Favorite) (model.Favorite, error) {
	if err := r.db.WithContext(ctx).Create(&fav).Error; err != nil {
		if isUniqueViolation(err) || errors.Is(err, gorm.ErrDuplicatedKey) {
			return model.Favorite{}, repo.ErrConflict
		}
		return model.Favorite{}, err
	}
	return fav, nil
}

func (r *FavoriteGormRepository) DeleteByUserAndItem(ctx context.Context, userID int64, itemID int64) error {
	res := r.db.WithContext(ctx).
		Where("user_id = ? AND item_id = ?", userID, itemID).
		Delete(&model.Favorite{})

	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

func (r *FavoriteGormRepository) ListByUserID(ctx context.Context, userID int64) ([]model.Favorite, error) {
	var favs []model.Favorite

	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("id desc").
		Find(&favs).Error; err != nil {
		return []model.Favorite{}, err
	}

	return favs, nil
}
