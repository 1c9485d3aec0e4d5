package routes

import (
	"github.com/gonzalolionelprieto/cerramientosxya/internal/controllers"
	"github.com/gonzalolionelprieto/cerramientosxya/internal/services"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

func runVehiculoRouter(api *echo.Group, secureGroup *echo.Group, vehiculoService *services.VehiculoService, logger *zap.Logger) {
	vehiculoCtrl := controllers.NewVehiculoController(vehiculoService, logger)

	api.GET("/vehiculos", vehiculoCtrl.GetVehiculos)
	api.GET("/vehiculos/:id", vehiculoCtrl.FindVehiculo)
	secureGroup.POST("/vehiculos", vehiculoCtrl.CreateVehiculo)
	secureGroup.PUT("/vehiculos/:id", vehiculoCtrl.UpdateVehiculo)
	secureGroup.DELETE("/vehiculos/:id", vehiculoCtrl.DeleteVehiculo)
}
