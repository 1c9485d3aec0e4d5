package controllers

import (
	"net/http"

	"github.com/gonzalolionelprieto/cerramientosxya/internal/dto"
	"github.com/gonzalolionelprieto/cerramientosxya/internal/services"
	apperrors "github.com/gonzalolionelprieto/cerramientosxya/pkg/errors"
	"github.com/gonzalolionelprieto/cerramientosxya/pkg/utils"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type InstalacionController struct {
	instalacionService *services.InstalacionService
	logisticaService   *services.LogisticaService
	logger             *zap.Logger
}

func NewInstalacionController(
	instalacionService *services.InstalacionService,
	logisticaService *services.LogisticaService,
	logger *zap.Logger,
) *InstalacionController {
	return &InstalacionController{
		instalacionService: instalacionService,
		logisticaService:   logisticaService,
		logger:             logger,
	}
}

func (c *InstalacionController) GetInstalaciones(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()
	filter := utils.ParseFilterFromQuery(ctx.QueryParams())
	// La agenda del día se pide como ?fecha=AAAA-MM-DD.
	if fecha := ctx.QueryParam("fecha"); fecha != "" {
		filter.Filter["fecha"] = fecha
	}

	instalaciones, total, err := c.instalacionService.GetInstalaciones(reqCtx, filter)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, instalaciones, "Listado de instalaciones obtenido", http.StatusOK, total)
}

func (c *InstalacionController) FindInstalacion(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()
	id, err := parseIDParam(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	instalacion, err := c.instalacionService.FindInstalacion(reqCtx, id)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, instalacion, "Instalación encontrada", http.StatusOK)
}

func (c *InstalacionController) CreateInstalacion(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()
	var payload dto.CreateInstalacionDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewHttpError(http.StatusBadRequest, "Formato de datos inválido", err, nil), c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	instalacion, err := c.instalacionService.CreateInstalacion(reqCtx, payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, instalacion, "Instalación programada", http.StatusCreated)
}

func (c *InstalacionController) UpdateInstalacion(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()
	id, err := parseIDParam(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	var payload dto.UpdateInstalacionDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewHttpError(http.StatusBadRequest, "Formato de datos inválido", err, nil), c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	instalacion, err := c.instalacionService.UpdateInstalacion(reqCtx, id, payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, instalacion, "Instalación actualizada", http.StatusOK)
}

func (c *InstalacionController) DeleteInstalacion(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()
	id, err := parseIDParam(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	if err := c.instalacionService.DeleteInstalacion(reqCtx, id); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return ctx.NoContent(http.StatusNoContent)
}

func (c *InstalacionController) AsignarVehiculo(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()
	id, err := parseIDParam(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	var payload dto.AsignarVehiculoDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewHttpError(http.StatusBadRequest, "Formato de datos inválido", err, nil), c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	instalacion, err := c.logisticaService.AsignarVehiculo(reqCtx, id, payload.VehiculoID)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, instalacion, "Vehículo asignado", http.StatusOK)
}
