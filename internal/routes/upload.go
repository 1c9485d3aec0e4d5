package routes

import (
	"github.com/gonzalolionelprieto/cerramientosxya/internal/controllers"
	"github.com/gonzalolionelprieto/cerramientosxya/pkg/filestorage"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

func runUploadRouter(secureGroup *echo.Group, fileStorage filestorage.FileStorageInterface, logger *zap.Logger) {
	uploadCtrl := controllers.NewUploadController(fileStorage, logger)

	secureGroup.POST("/uploads/:context", uploadCtrl.Upload)
}
