package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/karimovsardorbek/online-market/internal/usecase"
)

type CartHandler struct {
	cartUsecase *usecase.CartUsecase
}

func NewCartHandler(cartUsecase *usecase.CartUsecase) *CartHandler {
	return &CartHandler{cartUsecase: cartUsecase}
}

type addCartRequest struct {
	ItemID   int64 `json:"item_id"`
	Quantity int64 `json:"quantity"`
}

type removeCartRequest struct {
	ItemID int64 `json:"item_id"`
}

// GET /cart
func (h *CartHandler) Get(c echo.Context) error {
	userID, ok := getUserIDFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
	}

	cart, err := h.cartUsecase.GetCart(c.Request().Context(), userID)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, cart)
}

// POST /cart/add
func (h *CartHandler) Add(c echo.Context) error {
	userID, ok := getUserIDFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
	}

	var req addCartRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
	}

	cart, err := h.cartUsecase.Add(c.Request().Context(), userID, usecase.AddCartInput{
		ItemID:   req.ItemID,
		Quantity: req.Quantity,
	})
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, cart)
}

// POST /cart/remove
func (h *CartHandler) Remove(c echo.Context) error {
	userID, ok := getUserIDFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
	}

	var req removeCartRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
	}

	cart, err := h.cartUsecase.Remove(c.Request().Context(), userID, usecase.RemoveCartInput{
		ItemID: req.ItemID,
	})
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, cart)
}
