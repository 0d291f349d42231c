package handler

import (
	"net/http"
	"time"

	"storefront/config"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// HealthHandler reports process liveness. It does not probe dependencies.
type HealthHandler struct {
	env string
	now func() time.Time
}

// HealthHandlerParams holds dependencies for HealthHandler, injected by Fx.
type HealthHandlerParams struct {
	fx.In

	Config *config.Config
}

// NewHealthHandler is the constructor for HealthHandler.
func NewHealthHandler(params HealthHandlerParams) *HealthHandler {
	return &HealthHandler{
		env: params.Config.Env.Env,
		now: time.Now,
	}
}

type healthView struct {
	Status string    `json:"status"`
	Time   time.Time `json:"time"`
	Env    string    `json:"env"`
}

// Check answers GET /health.
func (h *HealthHandler) Check(c echo.Context) error {
	return c.JSON(http.StatusOK, &healthView{
		Status: "operational",
		Time:   h.now().UTC(),
		Env:    h.env,
	})
}
