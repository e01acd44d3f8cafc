package http

import (
	"net/http"
	"strings"

	wdUC "vestra-backend/internal/usecase/withdrawal"

	"github.com/labstack/echo/v4"
)

type WithdrawalHandler struct{ uc *wdUC.Usecase }

func NewWithdrawalHandler(uc *wdUC.Usecase) *WithdrawalHandler {
	return &WithdrawalHandler{uc: uc}
}

type requestWithdrawalReq struct {
	Amount   float64 `json:"amount" validate:"required,gt=0,dec2"`
	Currency string  `json:"currency" validate:"required,currency"`
}

func (h *WithdrawalHandler) RequestWithdrawal(c echo.Context) error {
	userID, ok := userIDFrom(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "missing or invalid Ax-User-Id"})
	}
	var req requestWithdrawalReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "validation failed", Details: ToFieldErrors(err)})
	}
	dto, err := h.uc.Request(c.Request().Context(), wdUC.RequestInput{
		UserID:   userID,
		Amount:   req.Amount,
		Currency: req.Currency,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, dto)
}

type payoutOutcomeReq struct {
	Reference string `json:"reference" validate:"required"`
	Status    string `json:"status" validate:"required,oneof=success failed"`
	Reason    string `json:"reason"`
}

// PayoutOutcome is the payout provider's webhook. Duplicate deliveries are
// settled idempotently downstream, so a replay gets the same 200.
func (h *WithdrawalHandler) PayoutOutcome(c echo.Context) error {
	var req payoutOutcomeReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "validation failed", Details: ToFieldErrors(err)})
	}
	success := strings.EqualFold(req.Status, "success")
	dto, err := h.uc.HandlePayoutOutcome(c.Request().Context(), req.Reference, success, req.Reason)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}
