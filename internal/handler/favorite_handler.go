package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/karimovsardorbek/online-market/internal/usecase"
)

type FavoriteHandler struct {
	favoriteUsecase *usecase.FavoriteUsecase
}

func NewFavoriteHandler(favoriteUsecase *usecase.FavoriteUsecase) *FavoriteHandler {
	return &FavoriteHandler{favoriteUsecase: favoriteUsecase}
}

// POST /favorites/mark/:item_id
func (h *FavoriteHandler) Mark(c echo.Context) error {
	userID, ok := getUserIDFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
	}

	itemID, err := pathParamID(c, "item_id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid item id"})
	}

	out, err := h.favoriteUsecase.Mark(c.Request().Context(), userID, itemID)
	if err != nil {
		return writeError(c, err)
	}

	//冪等なので新規でも既存でも200
	return c.JSON(http.StatusOK, out)
}

// DELETE /favorites/unmark/:item_id
func (h *FavoriteHandler) Unmark(c echo.Context) error {
	userID, ok := getUserIDFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
	}

	itemID, err := pathParamID(c, "item_id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid item id"})
	}

	out, err := h.favoriteUsecase.Unmark(c.Request().Context(), userID, itemID)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, out)
}

// GET /favorites
func (h *FavoriteHandler) ListMine(c echo.Context) error {
	userID, ok := getUserIDFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
	}

	favs, err := h.favoriteUsecase.ListMine(c.Request().Context(), userID)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, favs)
}
