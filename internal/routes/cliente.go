package routes

import (
	"github.com/gonzalolionelprieto/cerramientosxya/internal/controllers"
	"github.com/gonzalolionelprieto/cerramientosxya/internal/services"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

func runClienteRouter(api *echo.Group, secureGroup *echo.Group, clienteService *services.ClienteService, logger *zap.Logger) {
	clienteCtrl := controllers.NewClienteController(clienteService, logger)

	api.GET("/clientes", clienteCtrl.GetClientes)
	api.GET("/clientes/:id", clienteCtrl.FindCliente)
	secureGroup.POST("/clientes", clienteCtrl.CreateCliente)
	secureGroup.PUT("/clientes/:id", clienteCtrl.UpdateCliente)
	// Los clientes no se borran: los presupuestos y pedidos históricos los
	// referencian.
}
