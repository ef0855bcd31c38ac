package usecase

import (
	"context"
	"net/http"
	"time"

	"github.com/shopspring/decimal"

	"github.com/karimovsardorbek/online-market/internal/domain/model"
	repo "github.com/karimovsardorbek/online-market/internal/repository"
)

type OrderUsecase struct {
	tx repo.TransactionManager
}

func NewOrderUsecase(tx repo.TransactionManager) *OrderUsecase {
	return &OrderUsecase{tx: tx}
}

type OrderLineOutput struct {
	ItemID   int64           `json:"item_id"`
	Name     string          `json:"name"`
	Price    decimal.Decimal `json:"price"`
	Quantity int64           `json:"quantity"`
}

type OrderOutput struct {
	ID         int64             `json:"id"`
	CustomerID int64             `json:"customer_id"`
	TotalPrice decimal.Decimal   `json:"total_price"`
	CreatedAt  time.Time         `json:"created_at"`
	Lines      []OrderLineOutput `json:"lines"`
}

// Checkout はカート→注文のmove。コピーではない。
// 注文作成・明細スナップショット・カートのクリアを1トランザクションで行う。
func (u *OrderUsecase) Checkout(ctx context.Context, userID int64) (OrderOutput, error) {
	if userID <= 0 {
		return OrderOutput{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}

	var out OrderOutput

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		cart, err := r.Carts().FindByUserID(ctx, userID)
		if err == repo.ErrNotFound {
			return NewHTTPError(http.StatusConflict, "cart empty")
		}
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		//行ロック付きで明細取得。move中のadd/removeはここでブロックされる。
		cartLines, err := r.CartLines().ListByCartIDForUpdate(ctx, cart.ID)
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}
		if len(cartLines) == 0 {
			return NewHTTPError(http.StatusConflict, "cart empty")
		}

		//明細のスナップショット（商品名・現在価格を確定）
		orderLines := make([]model.OrderLine, 0, len(cartLines))
		total := decimal.Zero
		now := time.Now()

		for _, cl := range cartLines {
			item, err := r.Items().FindByID(ctx, cl.ItemID)
			if err == repo.ErrNotFound {
				//出品が消えた行は注文に含めない
				continue
			}
			if err != nil {
				return NewHTTPError(http.StatusInternalServerError, "db error")
			}

			orderLines = append(orderLines, model.OrderLine{
				ItemID:            cl.ItemID,
				ItemNameSnapshot:  item.Name,
				UnitPriceSnapshot: item.Price,
				Quantity:          cl.Quantity,
				CreatedAt:         now,
			})

			total = total.Add(item.Price.Mul(decimal.NewFromInt(cl.Quantity)))
		}

		if len(orderLines) == 0 {
			return NewHTTPError(http.StatusConflict, "cart empty")
		}

		// 注文作成
		orderID, err := r.Orders().Create(ctx, model.Order{
			CustomerID: userID,
			TotalPrice: total,
			CreatedAt:  now,
		})
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		//注文明細一括作成
		if err := r.OrderLines().CreateBulk(ctx, orderID, orderLines); err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		//カートを空に戻す（カート自体は次回のために残す）
		if err := r.Carts().Clear(ctx, cart.ID); err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		created := model.Order{
			ID:         orderID,
			CustomerID: userID,
			TotalPrice: total,
			CreatedAt:  now,
		}
		out = toOrderOutput(created, orderLines)
		return nil
	})

	if err != nil {
		return OrderOutput{}, err
	}
	return out, nil
}

type OrderListOutput struct {
	Orders []OrderOutput `json:"orders"`
	Total  int64         `json:"total"`
	Page   int           `json:"page"`
	Limit  int           `json:"limit"`
}

// 自分の注文だけを新しい順でページングして返す
func (u *OrderUsecase) ListMyOrders(ctx context.Context, userID int64, page int, limit int) (OrderListOutput, error) {
	if userID <= 0 {
		return OrderListOutput{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 50
	}

	var out OrderListOutput

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		orders, total, err := r.Orders().ListByCustomerID(ctx, userID, page, limit)
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		outs := make([]OrderOutput, 0, len(orders))
		for _, o := range orders {
			lines, err := r.OrderLines().ListByOrderID(ctx, o.ID)
			if err != nil {
				return NewHTTPError(http.StatusInternalServerError, "db error")
			}
			outs = append(outs, toOrderOutput(o, lines))
		}

		out = OrderListOutput{
			Orders: outs,
			Total:  total,
			Page:   page,
			Limit:  limit,
		}
		return nil
	})

	if err != nil {
		return OrderListOutput{}, err
	}
	return out, nil
}

// 存在しなければ404、他人の注文なら403（404で隠さない）。
func (u *OrderUsecase) GetMyOrder(ctx context.Context, userID int64, orderID int64) (OrderOutput, error) {
	if userID <= 0 {
		return OrderOutput{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if orderID <= 0 {
		return OrderOutput{}, NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	var out OrderOutput

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		o, err := r.Orders().FindByID(ctx, orderID)
		if err == repo.ErrNotFound {
			return NewHTTPError(http.StatusNotFound, "not found")
		}
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}
		if o.CustomerID != userID {
			return NewHTTPError(http.StatusForbidden, "forbidden")
		}

		lines, err := r.OrderLines().ListByOrderID(ctx, orderID)
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		out = toOrderOutput(o, lines)
		return nil
	})

	if err != nil {
		return OrderOutput{}, err
	}
	return out, nil
}

// 注文は作成後不変。許される変更は注文ごとの削除（キャンセル）だけ。
func (u *OrderUsecase) CancelOrder(ctx context.Context, userID int64, orderID int64) error {
	if userID <= 0 {
		return NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if orderID <= 0 {
		return NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	return u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		o, err := r.Orders().FindByID(ctx, orderID)
		if err == repo.ErrNotFound {
			return NewHTTPError(http.StatusNotFound, "not found")
		}
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}
		if o.CustomerID != userID {
			return NewHTTPError(http.StatusForbidden, "forbidden")
		}

		if err := r.Orders().Delete(ctx, orderID); err != nil {
			if err == repo.ErrNotFound {
				return NewHTTPError(http.StatusNotFound, "not found")
			}
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}
		return nil
	})
}

func toOrderOutput(o model.Order, lines []model.OrderLine) OrderOutput {
	outLines := make([]OrderLineOutput, 0, len(lines))
	for _, l := range lines {
		outLines = append(outLines, OrderLineOutput{
			ItemID:   l.ItemID,
			Name:     l.ItemNameSnapshot,
			Price:    l.UnitPriceSnapshot,
			Quantity: l.Quantity,
		})
	}

	return OrderOutput{
		ID:         o.ID,
		CustomerID: o.CustomerID,
		TotalPrice: o.TotalPrice,
		CreatedAt:  o.CreatedAt,
		Lines:      outLines,
	}
}
