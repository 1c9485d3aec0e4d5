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

type VehiculoController struct {
	vehiculoService *services.VehiculoService
	logger          *zap.Logger
}

func NewVehiculoController(vehiculoService *services.VehiculoService, logger *zap.Logger) *VehiculoController {
	return &VehiculoController{
		vehiculoService: vehiculoService,
		logger:          logger,
	}
}

func (c *VehiculoController) GetVehiculos(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()
	filter := utils.ParseFilterFromQuery(ctx.QueryParams())
	// El selector de asignación pide ?disponible=true.
	if disponible := ctx.QueryParam("disponible"); disponible != "" {
		filter.Filter["disponible"] = disponible
	}

	vehiculos, total, err := c.vehiculoService.GetVehiculos(reqCtx, filter)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, vehiculos, "Listado de vehículos obtenido", http.StatusOK, total)
}

func (c *VehiculoController) FindVehiculo(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()
	id, err := parseIDParam(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	vehiculo, err := c.vehiculoService.FindVehiculo(reqCtx, id)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, vehiculo, "Vehículo encontrado", http.StatusOK)
}

func (c *VehiculoController) CreateVehiculo(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()
	var payload dto.CreateVehiculoDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewHttpError(http.StatusBadRequest, "Formato de datos inválido", err, nil), c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	vehiculo, err := c.vehiculoService.CreateVehiculo(reqCtx, payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, vehiculo, "Vehículo creado", http.StatusCreated)
}

func (c *VehiculoController) UpdateVehiculo(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()
	id, err := parseIDParam(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	var payload dto.UpdateVehiculoDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewHttpError(http.StatusBadRequest, "Formato de datos inválido", err, nil), c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	vehiculo, err := c.vehiculoService.UpdateVehiculo(reqCtx, id, payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, vehiculo, "Vehículo actualizado", http.StatusOK)
}

func (c *VehiculoController) DeleteVehiculo(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()
	id, err := parseIDParam(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	if err := c.vehiculoService.DeleteVehiculo(reqCtx, id); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return ctx.NoContent(http.StatusNoContent)
}
