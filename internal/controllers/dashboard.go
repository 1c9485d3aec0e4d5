package controllers

import (
	"net/http"

	"github.com/gonzalolionelprieto/cerramientosxya/internal/services"
	"github.com/gonzalolionelprieto/cerramientosxya/pkg/utils"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type DashboardController struct {
	dashboardService *services.DashboardService
	logger           *zap.Logger
}

func NewDashboardController(dashboardService *services.DashboardService, logger *zap.Logger) *DashboardController {
	return &DashboardController{
		dashboardService: dashboardService,
		logger:           logger,
	}
}

func (c *DashboardController) GetContadores(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()

	contadores, err := c.dashboardService.GetContadores(reqCtx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, contadores, "Contadores del tablero obtenidos", http.StatusOK)
}
