package http

import (
	"net/http"

	"vestra-backend/internal/domain/currency"
	bonusUC "vestra-backend/internal/usecase/bonus"

	"github.com/labstack/echo/v4"
)

type BonusHandler struct{ uc *bonusUC.Usecase }

func NewBonusHandler(uc *bonusUC.Usecase) *BonusHandler { return &BonusHandler{uc: uc} }

func (h *BonusHandler) CheckEligibility(c echo.Context) error {
	userID, ok := userIDFrom(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "missing or invalid Ax-User-Id"})
	}
	dto, err := h.uc.CheckEligibility(c.Request().Context(), userID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

type withdrawBonusReq struct {
	Currency string `json:"currency" validate:"omitempty,currency"`
}

func (h *BonusHandler) WithdrawBonus(c echo.Context) error {
	userID, ok := userIDFrom(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "missing or invalid Ax-User-Id"})
	}
	var req withdrawBonusReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "validation failed", Details: ToFieldErrors(err)})
	}
	cur := currency.Naira
	if req.Currency != "" {
		cur = currency.Currency(req.Currency)
	}
	dto, err := h.uc.WithdrawBonus(c.Request().Context(), userID, cur)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}
