package routes

import (
	"github.com/gonzalolionelprieto/cerramientosxya/internal/controllers"
	"github.com/gonzalolionelprieto/cerramientosxya/internal/services"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

func runDashboardRouter(api *echo.Group, dashboardService *services.DashboardService, logger *zap.Logger) {
	dashboardCtrl := controllers.NewDashboardController(dashboardService, logger)

	api.GET("/dashboard/contadores", dashboardCtrl.GetContadores)
}
