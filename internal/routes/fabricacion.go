package routes

import (
	"github.com/gonzalolionelprieto/cerramientosxya/internal/controllers"
	"github.com/gonzalolionelprieto/cerramientosxya/internal/services"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

func runFabricacionRouter(api *echo.Group, secureGroup *echo.Group, fabricacionService *services.FabricacionService, logger *zap.Logger) {
	fabricacionCtrl := controllers.NewFabricacionController(fabricacionService, logger)

	api.GET("/productos-en-fabricacion", fabricacionCtrl.GetProductosEnFabricacion)
	api.GET("/productos-en-fabricacion/:id", fabricacionCtrl.FindProductoEnFabricacion)
	secureGroup.POST("/productos-en-fabricacion", fabricacionCtrl.CreateProductoEnFabricacion)
	secureGroup.PUT("/productos-en-fabricacion/:id", fabricacionCtrl.UpdateProductoEnFabricacion)
	secureGroup.DELETE("/productos-en-fabricacion/:id", fabricacionCtrl.DeleteProductoEnFabricacion)
}
