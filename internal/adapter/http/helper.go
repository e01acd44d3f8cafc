package http

import (
	"errors"
	"net/http"
	"strings"

	invDomain "vestra-backend/internal/domain/investment"
	planDomain "vestra-backend/internal/domain/plan"
	userDomain "vestra-backend/internal/domain/user"
	walletDomain "vestra-backend/internal/domain/wallet"
	wdDomain "vestra-backend/internal/domain/withdrawal"
	invUC "vestra-backend/internal/usecase/investment"
	wdUC "vestra-backend/internal/usecase/withdrawal"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

// writeError maps domain errors to HTTP responses. Insufficiency errors
// carry the numeric shortfall so clients can render it.
func writeError(c echo.Context, err error) error {
	var balErr *invUC.BalanceError
	if errors.As(err, &balErr) {
		return c.JSON(http.StatusUnprocessableEntity, map[string]any{
			"error":     balErr.Error(),
			"required":  balErr.Required,
			"available": balErr.Available,
			"currency":  string(balErr.Currency),
		})
	}
	var earnErr *wdUC.EarningsError
	if errors.As(err, &earnErr) {
		return c.JSON(http.StatusUnprocessableEntity, map[string]any{
			"error":     earnErr.Error(),
			"requested": earnErr.Requested,
			"available": earnErr.Available,
			"currency":  string(earnErr.Currency),
		})
	}

	switch {
	case errors.Is(err, invDomain.ErrNotFound),
		errors.Is(err, wdDomain.ErrNotFound),
		errors.Is(err, planDomain.ErrNotFound),
		errors.Is(err, userDomain.ErrNotFound),
		errors.Is(err, walletDomain.ErrNotFound),
		errors.Is(err, gorm.ErrRecordNotFound):
		return c.JSON(http.StatusNotFound, map[string]string{"error": "not found"})
	case errors.Is(err, walletDomain.ErrInsufficientBalance),
		errors.Is(err, walletDomain.ErrNoLockedBonus),
		errors.Is(err, wdDomain.ErrInsufficientEarnings):
		return c.JSON(http.StatusUnprocessableEntity, map[string]string{"error": err.Error()})
	default:
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}
}

// userIDFrom pulls the authenticated user from the gateway-injected header.
func userIDFrom(c echo.Context) (string, bool) {
	uid := strings.TrimSpace(c.Request().Header.Get("Ax-User-Id"))
	if uid == "" || !reHex32.MatchString(uid) {
		return "", false
	}
	return uid, true
}
