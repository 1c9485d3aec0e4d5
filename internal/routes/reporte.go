package routes

import (
	"github.com/gonzalolionelprieto/cerramientosxya/internal/controllers"
	"github.com/gonzalolionelprieto/cerramientosxya/internal/services"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

func runReporteRouter(api *echo.Group, reporteService *services.ReporteService, logger *zap.Logger) {
	reporteCtrl := controllers.NewReporteController(reporteService, logger)

	api.GET("/reportes", reporteCtrl.GetReportePedidos)
}
