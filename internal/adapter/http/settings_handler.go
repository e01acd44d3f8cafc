package http

import (
	"net/http"

	settingsUC "vestra-backend/internal/usecase/settings"

	"github.com/labstack/echo/v4"
)

type SettingsHandler struct{ uc *settingsUC.Usecase }

func NewSettingsHandler(uc *settingsUC.Usecase) *SettingsHandler {
	return &SettingsHandler{uc: uc}
}

func (h *SettingsHandler) GetSettings(c echo.Context) error {
	s, err := h.uc.Get(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, s)
}

func (h *SettingsHandler) UpdateSettings(c echo.Context) error {
	var in settingsUC.UpdateInput
	if err := c.Bind(&in); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid body"})
	}
	s, err := h.uc.Update(c.Request().Context(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, s)
}
