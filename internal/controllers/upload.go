package controllers

import (
	"net/http"

	"github.com/gonzalolionelprieto/cerramientosxya/pkg/config"
	apperrors "github.com/gonzalolionelprieto/cerramientosxya/pkg/errors"
	"github.com/gonzalolionelprieto/cerramientosxya/pkg/filestorage"
	"github.com/gonzalolionelprieto/cerramientosxya/pkg/utils"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type UploadController struct {
	fileStorage filestorage.FileStorageInterface
	logger      *zap.Logger
}

func NewUploadController(fileStorage filestorage.FileStorageInterface, logger *zap.Logger) *UploadController {
	return &UploadController{
		fileStorage: fileStorage,
		logger:      logger,
	}
}

func (c *UploadController) Upload(ctx echo.Context) error {
	uploadContext := ctx.Param("context")

	rules, ok := config.UploadContexts[uploadContext]
	if !ok {
		return utils.ErrorResponse(ctx,
			apperrors.NewHttpError(
				http.StatusBadRequest,
				"Contexto de subida desconocido",
				apperrors.ErrBadRequest,
				map[string]interface{}{"context": uploadContext},
			),
			c.logger,
		)
	}

	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		return utils.ErrorResponse(ctx,
			apperrors.NewHttpError(http.StatusBadRequest, "No se envió ningún archivo", apperrors.ErrBadRequest, nil),
			c.logger,
		)
	}

	if err := utils.ValidateFile(fileHeader, rules); err != nil {
		return utils.ErrorResponse(ctx,
			apperrors.NewHttpError(http.StatusBadRequest, err.Error(), apperrors.ErrBadRequest, nil),
			c.logger,
		)
	}

	src, err := fileHeader.Open()
	if err != nil {
		return utils.ErrorResponse(ctx,
			apperrors.NewHttpError(http.StatusInternalServerError, "No se pudo leer el archivo", err, nil),
			c.logger,
		)
	}
	defer src.Close()

	savedPath, err := c.fileStorage.Save(src, fileHeader.Filename, rules.PathPrefix)
	if err != nil {
		c.logger.Error("Error al guardar el archivo subido", zap.Error(err), zap.String("context", uploadContext))
		return utils.ErrorResponse(ctx,
			apperrors.NewHttpError(http.StatusInternalServerError, "No se pudo guardar el archivo", err, nil),
			c.logger,
		)
	}

	c.logger.Info("Archivo subido", zap.String("context", uploadContext), zap.String("path", savedPath))
	return utils.SuccessResponse(ctx, map[string]string{"url": savedPath}, "Archivo subido", http.StatusCreated)
}
