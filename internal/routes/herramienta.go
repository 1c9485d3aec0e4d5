package routes

import (
	"github.com/gonzalolionelprieto/cerramientosxya/internal/controllers"
	"github.com/gonzalolionelprieto/cerramientosxya/internal/services"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

func runHerramientaRouter(api *echo.Group, secureGroup *echo.Group, herramientaService *services.HerramientaService, logger *zap.Logger) {
	herramientaCtrl := controllers.NewHerramientaController(herramientaService, logger)

	api.GET("/herramientas", herramientaCtrl.GetHerramientas)
	api.GET("/herramientas/:id", herramientaCtrl.FindHerramienta)
	secureGroup.POST("/herramientas", herramientaCtrl.CreateHerramienta)
	secureGroup.PUT("/herramientas/:id", herramientaCtrl.UpdateHerramienta)
	secureGroup.DELETE("/herramientas/:id", herramientaCtrl.DeleteHerramienta)
}
