package http

import (
	"net/http"

	walletDomain "vestra-backend/internal/domain/wallet"

	"github.com/labstack/echo/v4"
)

// WalletHandler is a read-only view; balances are mutated exclusively by
// the usecases through the wallet accessor.
type WalletHandler struct{ wallets walletDomain.Repository }

func NewWalletHandler(wallets walletDomain.Repository) *WalletHandler {
	return &WalletHandler{wallets: wallets}
}

func (h *WalletHandler) GetWallet(c echo.Context) error {
	userID, ok := userIDFrom(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "missing or invalid Ax-User-Id"})
	}
	w, err := h.wallets.GetByUserID(c.Request().Context(), userID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, w)
}
