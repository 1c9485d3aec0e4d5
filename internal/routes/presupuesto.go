package routes

import (
	"github.com/gonzalolionelprieto/cerramientosxya/internal/controllers"
	"github.com/gonzalolionelprieto/cerramientosxya/internal/services"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

func runPresupuestoRouter(api *echo.Group, secureGroup *echo.Group, presupuestoService *services.PresupuestoService, logger *zap.Logger) {
	presupuestoCtrl := controllers.NewPresupuestoController(presupuestoService, logger)

	api.GET("/presupuestos", presupuestoCtrl.GetPresupuestos)
	api.GET("/presupuestos/:id", presupuestoCtrl.FindPresupuesto)
	// El alta de presupuestos llega desde el formulario público, sin token.
	api.POST("/presupuestos", presupuestoCtrl.SubmitPresupuesto)
	secureGroup.POST("/presupuestos/generar-pdf", presupuestoCtrl.GenerarPDF)
	secureGroup.PUT("/presupuestos/:id", presupuestoCtrl.UpdatePresupuesto)
	secureGroup.DELETE("/presupuestos/:id", presupuestoCtrl.DeletePresupuesto)
}
