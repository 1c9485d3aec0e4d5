package routes

import (
	"github.com/gonzalolionelprieto/cerramientosxya/internal/controllers"
	"github.com/gonzalolionelprieto/cerramientosxya/internal/services"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

func runProveedorRouter(api *echo.Group, secureGroup *echo.Group, proveedorService *services.ProveedorService, logger *zap.Logger) {
	proveedorCtrl := controllers.NewProveedorController(proveedorService, logger)

	api.GET("/proveedores", proveedorCtrl.GetProveedores)
	api.GET("/proveedores/:id", proveedorCtrl.FindProveedor)
	secureGroup.POST("/proveedores", proveedorCtrl.CreateProveedor)
	secureGroup.PUT("/proveedores/:id", proveedorCtrl.UpdateProveedor)
	secureGroup.DELETE("/proveedores/:id", proveedorCtrl.DeleteProveedor)
}
