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

type InstaladorController struct {
	instaladorService *services.InstaladorService
	logger            *zap.Logger
}

func NewInstaladorController(instaladorService *services.InstaladorService, logger *zap.Logger) *InstaladorController {
	return &InstaladorController{
		instaladorService: instaladorService,
		logger:            logger,
	}
}

func (c *InstaladorController) GetInstaladores(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()
	filter := utils.ParseFilterFromQuery(ctx.QueryParams())

	instaladores, total, err := c.instaladorService.GetInstaladores(reqCtx, filter)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, instaladores, "Listado de instaladores obtenido", http.StatusOK, total)
}

func (c *InstaladorController) FindInstalador(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()
	id, err := parseIDParam(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	instalador, err := c.instaladorService.FindInstalador(reqCtx, id)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, instalador, "Instalador encontrado", http.StatusOK)
}

func (c *InstaladorController) CreateInstalador(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()
	var payload dto.CreateInstaladorDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewHttpError(http.StatusBadRequest, "Formato de datos inválido", err, nil), c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	instalador, err := c.instaladorService.CreateInstalador(reqCtx, payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, instalador, "Instalador creado", http.StatusCreated)
}

func (c *InstaladorController) UpdateInstalador(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()
	id, err := parseIDParam(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	var payload dto.UpdateInstaladorDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewHttpError(http.StatusBadRequest, "Formato de datos inválido", err, nil), c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	instalador, err := c.instaladorService.UpdateInstalador(reqCtx, id, payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, instalador, "Instalador actualizado", http.StatusOK)
}

// DeactivateInstalador responde al DELETE de la ruta pero solo hace baja
// lógica.
func (c *InstaladorController) DeactivateInstalador(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()
	id, err := parseIDParam(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	if err := c.instaladorService.DeactivateInstalador(reqCtx, id); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return ctx.NoContent(http.StatusNoContent)
}
