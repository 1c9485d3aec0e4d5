package routes

import (
	"github.com/gonzalolionelprieto/cerramientosxya/internal/controllers"
	"github.com/gonzalolionelprieto/cerramientosxya/internal/services"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

func runProductoRouter(api *echo.Group, secureGroup *echo.Group, productoService *services.ProductoService, logger *zap.Logger) {
	productoCtrl := controllers.NewProductoController(productoService, logger)

	api.GET("/productos", productoCtrl.GetProductos)
	api.GET("/productos/:id", productoCtrl.FindProducto)
	secureGroup.POST("/productos", productoCtrl.CreateProducto)
	secureGroup.PUT("/productos/:id", productoCtrl.UpdateProducto)
	secureGroup.DELETE("/productos/:id", productoCtrl.DeleteProducto)
}
