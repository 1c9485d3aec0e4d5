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

type HerramientaController struct {
	herramientaService *services.HerramientaService
	logger             *zap.Logger
}

func NewHerramientaController(herramientaService *services.HerramientaService, logger *zap.Logger) *HerramientaController {
	return &HerramientaController{
		herramientaService: herramientaService,
		logger:             logger,
	}
}

func (c *HerramientaController) GetHerramientas(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()
	filter := utils.ParseFilterFromQuery(ctx.QueryParams())

	herramientas, total, err := c.herramientaService.GetHerramientas(reqCtx, filter)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, herramientas, "Listado de herramientas obtenido", http.StatusOK, total)
}

func (c *HerramientaController) FindHerramienta(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()
	id, err := parseIDParam(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	herramienta, err := c.herramientaService.FindHerramienta(reqCtx, id)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, herramienta, "Herramienta encontrada", http.StatusOK)
}

func (c *HerramientaController) CreateHerramienta(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()
	var payload dto.CreateHerramientaDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewHttpError(http.StatusBadRequest, "Formato de datos inválido", err, nil), c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	herramienta, err := c.herramientaService.CreateHerramienta(reqCtx, payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, herramienta, "Herramienta creada", http.StatusCreated)
}

func (c *HerramientaController) UpdateHerramienta(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()
	id, err := parseIDParam(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	var payload dto.UpdateHerramientaDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewHttpError(http.StatusBadRequest, "Formato de datos inválido", err, nil), c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	herramienta, err := c.herramientaService.UpdateHerramienta(reqCtx, id, payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, herramienta, "Herramienta actualizada", http.StatusOK)
}

func (c *HerramientaController) DeleteHerramienta(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()
	id, err := parseIDParam(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	if err := c.herramientaService.DeleteHerramienta(reqCtx, id); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return ctx.NoContent(http.StatusNoContent)
}
