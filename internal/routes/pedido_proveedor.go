package routes

import (
	"github.com/gonzalolionelprieto/cerramientosxya/internal/controllers"
	"github.com/gonzalolionelprieto/cerramientosxya/internal/services"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

func runPedidoProveedorRouter(api *echo.Group, secureGroup *echo.Group, pedidoProveedorService *services.PedidoProveedorService, logger *zap.Logger) {
	pedidoProveedorCtrl := controllers.NewPedidoProveedorController(pedidoProveedorService, logger)

	api.GET("/pedidos-proveedor", pedidoProveedorCtrl.GetPedidosProveedor)
	api.GET("/pedidos-proveedor/:id", pedidoProveedorCtrl.FindPedidoProveedor)
	secureGroup.POST("/pedidos-proveedor", pedidoProveedorCtrl.CreatePedidoProveedor)
	secureGroup.PUT("/pedidos-proveedor/:id", pedidoProveedorCtrl.UpdatePedidoProveedor)
	secureGroup.DELETE("/pedidos-proveedor/:id", pedidoProveedorCtrl.DeletePedidoProveedor)
}
