package usecase

import (
	"context"
	"net/http"

	"github.com/shopspring/decimal"

	repo "github.com/karimovsardorbek/online-market/internal/repository"
)

// CartUsecase は /cart の業務ロジックです。
// CartとCartLineはRepositoryを分離して受け取る。
type CartUsecase struct {
	cartRepo     repo.CartRepository
	cartLineRepo repo.CartLineRepository
	itemRepo     repo.ItemRepository
}

func NewCartUsecase(
	cartRepo repo.CartRepository,
	cartLineRepo repo.CartLineRepository,
	itemRepo repo.ItemRepository,
) *CartUsecase {
	return &CartUsecase{
		cartRepo:     cartRepo,
		cartLineRepo: cartLineRepo,
		itemRepo:     itemRepo,
	}
}

// priceは現在の商品価格（カートはスナップショットしない。確定はチェックアウト時）。
type CartLineResponse struct {
	ID       int64           `json:"id"`
	ItemID   int64           `json:"item_id"`
	Name     string          `json:"name"`
	Price    decimal.Decimal `json:"price"`
	Quantity int64           `json:"quantity"`
}

type CartResponse struct {
	ID    int64              `json:"id"`
	Lines []CartLineResponse `json:"lines"`
	Total decimal.Decimal    `json:"total"`
}

type AddCartInput struct {
	ItemID   int64
	Quantity int64
}

type RemoveCartInput struct {
	ItemID int64
}

// GetCart はカート取得（無ければ作って空を返す）。読み取りは404にならない。
func (u *CartUsecase) GetCart(ctx context.Context, userID int64) (CartResponse, error) {
	if userID <= 0 {
		return CartResponse{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}

	cart, err := u.cartRepo.GetOrCreateByUserID(ctx, userID)
	if err != nil {
		return CartResponse{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return u.buildCartResponse(ctx, cart.ID)
}

// Add はカートに追加（同一商品は数量加算、上書きしない）。
func (u *CartUsecase) Add(ctx context.Context, userID int64, in AddCartInput) (CartResponse, error) {
	if userID <= 0 {
		return CartResponse{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if in.ItemID <= 0 {
		return CartResponse{}, NewHTTPError(http.StatusBadRequest, "invalid item_id")
	}
	if in.Quantity < 1 {
		return CartResponse{}, NewHTTPError(http.StatusBadRequest, "invalid quantity")
	}

	//商品チェック
	if _, err := u.itemRepo.FindByID(ctx, in.ItemID); err != nil {
		if err == repo.ErrNotFound {
			return CartResponse{}, NewHTTPError(http.StatusNotFound, "item not found")
		}
		return CartResponse{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	//カート取得（無ければ作成）
	cart, err := u.cartRepo.GetOrCreateByUserID(ctx, userID)
	if err != nil {
		return CartResponse{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	//加算upsert。並行addでも両方反映される。
	if err := u.cartLineRepo.AddQuantity(ctx, cart.ID, in.ItemID, in.Quantity); err != nil {
		return CartResponse{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return u.buildCartResponse(ctx, cart.ID)
}

// Remove は行ごと削除。数量の部分減算はしない。
func (u *CartUsecase) Remove(ctx context.Context, userID int64, in RemoveCartInput) (CartResponse, error) {
	if userID <= 0 {
		return CartResponse{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if in.ItemID <= 0 {
		return CartResponse{}, NewHTTPError(http.StatusBadRequest, "invalid item_id")
	}

	//カートがまだ無ければ404
	cart, err := u.cartRepo.FindByUserID(ctx, userID)
	if err == repo.ErrNotFound {
		return CartResponse{}, NewHTTPError(http.StatusNotFound, "cart not found")
	}
	if err != nil {
		return CartResponse{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	if err := u.cartLineRepo.DeleteByCartAndItem(ctx, cart.ID, in.ItemID); err != nil {
		if err == repo.ErrNotFound {
			return CartResponse{}, NewHTTPError(http.StatusNotFound, "not in cart")
		}
		return CartResponse{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return u.buildCartResponse(ctx, cart.ID)
}

// cartIDの明細をまとめてCartResponseを作る。
func (u *CartUsecase) buildCartResponse(ctx context.Context, cartID int64) (CartResponse, error) {
	lines, err := u.cartLineRepo.ListByCartID(ctx, cartID)
	if err != nil {
		return CartResponse{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	respLines := make([]CartLineResponse, 0, len(lines))
	total := decimal.Zero

	for _, l := range lines {
		item, err := u.itemRepo.FindByID(ctx, l.ItemID)
		if err != nil {
			//商品が消えた行は表示から外す
			continue
		}

		respLines = append(respLines, CartLineResponse{
			ID:       l.ID,
			ItemID:   l.ItemID,
			Name:     item.Name,
			Price:    item.Price,
			Quantity: l.Quantity,
		})

		total = total.Add(item.Price.Mul(decimal.NewFromInt(l.Quantity)))
	}

	return CartResponse{ID: cartID, Lines: respLines, Total: total}, nil
}
