package routes

import (
	"github.com/gonzalolionelprieto/cerramientosxya/internal/controllers"
	"github.com/gonzalolionelprieto/cerramientosxya/internal/services"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

func runInstaladorRouter(api *echo.Group, secureGroup *echo.Group, instaladorService *services.InstaladorService, logger *zap.Logger) {
	instaladorCtrl := controllers.NewInstaladorController(instaladorService, logger)

	api.GET("/instaladores", instaladorCtrl.GetInstaladores)
	api.GET("/instaladores/:id", instaladorCtrl.FindInstalador)
	secureGroup.POST("/instaladores", instaladorCtrl.CreateInstalador)
	secureGroup.PUT("/instaladores/:id", instaladorCtrl.UpdateInstalador)
	secureGroup.DELETE("/instaladores/:id", instaladorCtrl.DeactivateInstalador)
}
