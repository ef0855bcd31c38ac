package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/karimovsardorbek/online-market/internal/usecase"
)

type SupportHandler struct {
	supportUsecase *usecase.SupportUsecase
}

func NewSupportHandler(supportUsecase *usecase.SupportUsecase) *SupportHandler {
	return &SupportHandler{supportUsecase: supportUsecase}
}

type createSupportRequest struct {
	Subject string `json:"subject"`
	Message string `json:"message"`
}

type updateSupportRequest struct {
	Subject  *string `json:"subject"`
	Message  *string `json:"message"`
	Resolved *bool   `json:"resolved"`
}

// POST /support-requests
func (h *SupportHandler) Create(c echo.Context) error {
	userID, ok := getUserIDFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
	}

	var req createSupportRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
	}

	sr, err := h.supportUsecase.Create(c.Request().Context(), userID, usecase.CreateSupportRequestInput{
		Subject: req.Subject,
		Message: req.Message,
	})
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusCreated, sr)
}

// GET /support-requests
func (h *SupportHandler) ListMine(c echo.Context) error {
	userID, ok := getUserIDFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
	}

	srs, err := h.supportUsecase.ListMine(c.Request().Context(), userID)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, srs)
}

// GET /support-requests/:id
func (h *SupportHandler) Get(c echo.Context) error {
	userID, ok := getUserIDFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
	}

	id, err := pathParamID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}

	sr, err := h.supportUsecase.Get(c.Request().Context(), userID, id)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, sr)
}

// PATCH /support-requests/:id
func (h *SupportHandler) Update(c echo.Context) error {
	userID, ok := getUserIDFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
	}

	id, err := pathParamID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}

	var req updateSupportRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
	}

	sr, err := h.supportUsecase.Update(c.Request().Context(), userID, id, usecase.UpdateSupportRequestInput{
		Subject:  req.Subject,
		Message:  req.Message,
		Resolved: req.Resolved,
	})
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, sr)
}

// DELETE /support-requests/:id
func (h *SupportHandler) Delete(c echo.Context) error {
	userID, ok := getUserIDFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
	}

	id, err := pathParamID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}

	if err := h.supportUsecase.Delete(c.Request().Context(), userID, id); err != nil {
		return writeError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}
