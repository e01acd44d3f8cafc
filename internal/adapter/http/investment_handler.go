package http

import (
	"net/http"

	invUC "vestra-backend/internal/usecase/investment"

	"github.com/labstack/echo/v4"
)

type InvestmentHandler struct{ uc *invUC.Usecase }

func NewInvestmentHandler(uc *invUC.Usecase) *InvestmentHandler {
	return &InvestmentHandler{uc: uc}
}

type createInvestmentReq struct {
	PlanID   string  `json:"plan_id" validate:"required,hex32"`
	Amount   float64 `json:"amount" validate:"required,gt=0,dec2"`
	Currency string  `json:"currency" validate:"required,currency"`
}

func (h *InvestmentHandler) CreateInvestment(c echo.Context) error {
	userID, ok := userIDFrom(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "missing or invalid Ax-User-Id"})
	}
	var req createInvestmentReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "validation failed", Details: ToFieldErrors(err)})
	}
	dto, err := h.uc.Create(c.Request().Context(), invUC.CreateInput{
		UserID:   userID,
		PlanID:   req.PlanID,
		Amount:   req.Amount,
		Currency: req.Currency,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, dto)
}

func (h *InvestmentHandler) GetInvestment(c echo.Context) error {
	dto, err := h.uc.Get(c.Request().Context(), c.Param("investment_id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *InvestmentHandler) CancelInvestment(c echo.Context) error {
	dto, err := h.uc.Cancel(c.Request().Context(), c.Param("investment_id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}
