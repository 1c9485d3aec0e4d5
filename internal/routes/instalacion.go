package routes

import (
	"github.com/gonzalolionelprieto/cerramientosxya/internal/controllers"
	"github.com/gonzalolionelprieto/cerramientosxya/internal/services"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

func runInstalacionRouter(
	api *echo.Group,
	secureGroup *echo.Group,
	instalacionService *services.InstalacionService,
	logisticaService *services.LogisticaService,
	logger *zap.Logger,
) {
	instalacionCtrl := controllers.NewInstalacionController(instalacionService, logisticaService, logger)

	api.GET("/instalaciones", instalacionCtrl.GetInstalaciones)
	api.GET("/instalaciones/:id", instalacionCtrl.FindInstalacion)
	secureGroup.POST("/instalaciones", instalacionCtrl.CreateInstalacion)
	secureGroup.PUT("/instalaciones/:id", instalacionCtrl.UpdateInstalacion)
	secureGroup.DELETE("/instalaciones/:id", instalacionCtrl.DeleteInstalacion)
	secureGroup.POST("/instalaciones/:id/vehiculo", instalacionCtrl.AsignarVehiculo)
}
