package routes

import (
	"github.com/gonzalolionelprieto/cerramientosxya/internal/controllers"
	"github.com/gonzalolionelprieto/cerramientosxya/internal/services"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

func runPedidoRouter(api *echo.Group, secureGroup *echo.Group, pedidoService *services.PedidoService, logger *zap.Logger) {
	pedidoCtrl := controllers.NewPedidoController(pedidoService, logger)

	api.GET("/pedidos", pedidoCtrl.GetPedidos)
	api.GET("/pedidos/:id", pedidoCtrl.FindPedido)
	secureGroup.POST("/pedidos", pedidoCtrl.CreatePedido)
	secureGroup.PUT("/pedidos/:id", pedidoCtrl.UpdatePedido)
	secureGroup.DELETE("/pedidos/:id", pedidoCtrl.DeletePedido)
}
