package usecase

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/karimovsardorbek/online-market/internal/domain/model"
	repo "github.com/karimovsardorbek/online-market/internal/repository"
)

type HTTPError struct {
	Status  int
	Message string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("%d: %s", e.Status, e.Message)
}

func NewHTTPError(status int, message string) error {
	return &HTTPError{
		Status:  status,
		Message: message,
	}
}

func AsHTTPError(err error) (*HTTPError, bool) {
	var he *HTTPError
	ok := errors.As(err, &he)
	return he, ok
}

type ItemUsecase struct {
	itemRepo repo.ItemRepository
	userRepo repo.UserRepository
}

// DI
func NewItemUsecase(itemRepo repo.ItemRepository, userRepo repo.UserRepository) *ItemUsecase {
	return &ItemUsecase{
		itemRepo: itemRepo,
		userRepo: userRepo,
	}
}

// GET /itemsの入力DTO
type ListItemsInput struct {
	Page  int
	Limit int
	Q     string
}

type ItemListOutput struct {
	Items []model.Item `json:"items"`
	Total int64        `json:"total"`
	Page  int          `json:"page"`
	Limit int          `json:"limit"`
}

type CreateItemInput struct {
	Name        string
	Description string
	Price       decimal.Decimal
}

// PATCHはnilのフィールドを変更しない
type UpdateItemInput struct {
	Name        *string
	Description *string
	Price       *decimal.Decimal
}

func (u *ItemUsecase) ListItems(ctx context.Context, in ListItemsInput) (ItemListOutput, error) {
	if in.Page < 1 {
		in.Page = 1
	}
	if in.Limit < 1 || in.Limit > 100 {
		in.Limit = 20
	}
	if len(in.Q) > 100 {
		return ItemListOutput{}, NewHTTPError(http.StatusBadRequest, "q too long")
	}

	items, total, err := u.itemRepo.List(ctx, repo.ItemListQuery{
		Page:  in.Page,
		Limit: in.Limit,
		Q:     strings.TrimSpace(in.Q),
	})
	if err != nil {
		return ItemListOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return ItemListOutput{
		Items: items,
		Total: total,
		Page:  in.Page,
		Limit: in.Limit,
	}, nil
}

func (u *ItemUsecase) GetItem(ctx context.Context, itemID int64) (model.Item, error) {
	if itemID <= 0 {
		return model.Item{}, NewHTTPError(http.StatusBadRequest, "invalid item id")
	}

	item, err := u.itemRepo.FindByID(ctx, itemID)
	if err == repo.ErrNotFound {
		return model.Item{}, NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return model.Item{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return item, nil
}

// 出品は売り手のみ
func (u *ItemUsecase) CreateItem(ctx context.Context, userID int64, in CreateItemInput) (model.Item, error) {
	if userID <= 0 {
		return model.Item{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}

	seller, err := u.userRepo.FindByID(ctx, userID)
	if err != nil || seller == nil {
		return model.Item{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if !seller.IsSeller {
		return model.Item{}, NewHTTPError(http.StatusForbidden, "seller only")
	}

	name := strings.TrimSpace(in.Name)
	if name == "" || len(name) > 100 {
		return model.Item{}, NewHTTPError(http.StatusBadRequest, "invalid name")
	}
	if in.Price.IsNegative() {
		return model.Item{}, NewHTTPError(http.StatusBadRequest, "price must be >= 0")
	}

	item, err := u.itemRepo.Create(ctx, model.Item{
		SellerID:    userID,
		Name:        name,
		Description: in.Description,
		Price:       in.Price,
	})
	if err != nil {
		return model.Item{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return item, nil
}

// 存在確認が先（404）、所有チェックが後（403）。混ぜない。
func (u *ItemUsecase) UpdateItem(ctx context.Context, userID int64, itemID int64, in UpdateItemInput) (model.Item, error) {
	if userID <= 0 {
		return model.Item{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if itemID <= 0 {
		return model.Item{}, NewHTTPError(http.StatusBadRequest, "invalid item id")
	}

	item, err := u.itemRepo.FindByID(ctx, itemID)
	if err == repo.ErrNotFound {
		return model.Item{}, NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return model.Item{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	if item.SellerID != userID {
		return model.Item{}, NewHTTPError(http.StatusForbidden, "forbidden")
	}

	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if name == "" || len(name) > 100 {
			return model.Item{}, NewHTTPError(http.StatusBadRequest, "invalid name")
		}
		item.Name = name
	}
	if in.Description != nil {
		item.Description = *in.Description
	}
	if in.Price != nil {
		if in.Price.IsNegative() {
			return model.Item{}, NewHTTPError(http.StatusBadRequest, "price must be >= 0")
		}
		item.Price = *in.Price
	}

	if err := u.itemRepo.Update(ctx, item); err != nil {
		if err == repo.ErrNotFound {
			return model.Item{}, NewHTTPError(http.StatusNotFound, "not found")
		}
		return model.Item{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return item, nil
}

func (u *ItemUsecase) DeleteItem(ctx context.Context, userID int64, itemID int64) error {
	if userID <= 0 {
		return NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if itemID <= 0 {
		return NewHTTPError(http.StatusBadRequest, "invalid item id")
	}

	item, err := u.itemRepo.FindByID(ctx, itemID)
	if err == repo.ErrNotFound {
		return NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}

	if item.SellerID != userID {
		return NewHTTPError(http.StatusForbidden, "forbidden")
	}

	if err := u.itemRepo.Delete(ctx, itemID); err != nil {
		if err == repo.ErrNotFound {
			return NewHTTPError(http.StatusNotFound, "not found")
		}
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return nil
}
