package controllers

import (
	"fmt"
	"net/http"

	"github.com/gonzalolionelprieto/cerramientosxya/internal/dto"
	"github.com/gonzalolionelprieto/cerramientosxya/internal/services"
	apperrors "github.com/gonzalolionelprieto/cerramientosxya/pkg/errors"
	"github.com/gonzalolionelprieto/cerramientosxya/pkg/utils"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type PresupuestoController struct {
	presupuestoService *services.PresupuestoService
	logger             *zap.Logger
}

func NewPresupuestoController(presupuestoService *services.PresupuestoService, logger *zap.Logger) *PresupuestoController {
	return &PresupuestoController{
		presupuestoService: presupuestoService,
		logger:             logger,
	}
}

func (c *PresupuestoController) GetPresupuestos(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()
	filter := utils.ParseFilterFromQuery(ctx.QueryParams())

	presupuestos, total, err := c.presupuestoService.GetPresupuestos(reqCtx, filter)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, presupuestos, "Listado de presupuestos obtenido", http.StatusOK, total)
}

func (c *PresupuestoController) FindPresupuesto(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()
	id, err := parseIDParam(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	presupuesto, err := c.presupuestoService.FindPresupuesto(reqCtx, id)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, presupuesto, "Presupuesto encontrado", http.StatusOK)
}

func (c *PresupuestoController) SubmitPresupuesto(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()
	var payload dto.CreatePresupuestoDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewHttpError(http.StatusBadRequest, "Formato de datos inválido", err, nil), c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	presupuesto, err := c.presupuestoService.Submit(reqCtx, payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, presupuesto, "Presupuesto registrado", http.StatusCreated)
}

func (c *PresupuestoController) UpdatePresupuesto(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()
	id, err := parseIDParam(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	var payload dto.UpdatePresupuestoDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewHttpError(http.StatusBadRequest, "Formato de datos inválido", err, nil), c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	presupuesto, err := c.presupuestoService.Update(reqCtx, id, payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, presupuesto, "Presupuesto actualizado", http.StatusOK)
}

func (c *PresupuestoController) DeletePresupuesto(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()
	id, err := parseIDParam(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	if err := c.presupuestoService.Delete(reqCtx, id); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// GenerarPDF devuelve el documento relleno y aplanado. El cuerpo es el tipo
// de sistema más un mapa plano de campos; un tipo sin plantilla corta con 400
// antes de tocar el disco y un fallo del rellenado es 500.
func (c *PresupuestoController) GenerarPDF(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()
	var payload map[string]string
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewHttpError(http.StatusBadRequest, "Formato de datos inválido", err, nil), c.logger)
	}

	tipo := payload["tipo_sistema_presupuesto"]
	delete(payload, "tipo_sistema_presupuesto")

	documento, nombreArchivo, err := c.presupuestoService.GenerarDocumento(reqCtx, tipo, payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	ctx.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf("inline; filename=%q", nombreArchivo))
	return ctx.Blob(http.StatusOK, "application/pdf", documento)
}
