package http

import (
	"net/http"

	accrualUC "vestra-backend/internal/usecase/accrual"

	"github.com/labstack/echo/v4"
)

type AccrualHandler struct{ engine *accrualUC.Usecase }

func NewAccrualHandler(engine *accrualUC.Usecase) *AccrualHandler {
	return &AccrualHandler{engine: engine}
}

// TriggerTick runs one accrual pass on demand (ops/testing). The scheduled
// worker runs the same engine; overlapping invocations stay idempotent.
func (h *AccrualHandler) TriggerTick(c echo.Context) error {
	report, err := h.engine.Tick(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, report)
}
