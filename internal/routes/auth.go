package routes

import (
	"github.com/gonzalolionelprieto/cerramientosxya/internal/controllers"
	"github.com/gonzalolionelprieto/cerramientosxya/internal/services"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

func runAuthRouter(api *echo.Group, authService *services.AuthService, logger *zap.Logger) {
	authCtrl := controllers.NewAuthController(authService, logger)

	api.POST("/auth/login", authCtrl.Login)
	api.POST("/auth/refresh", authCtrl.Refresh)
}
