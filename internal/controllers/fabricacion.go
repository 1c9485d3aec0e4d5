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

type FabricacionController struct {
	fabricacionService *services.FabricacionService
	logger             *zap.Logger
}

func NewFabricacionController(fabricacionService *services.FabricacionService, logger *zap.Logger) *FabricacionController {
	return &FabricacionController{
		fabricacionService: fabricacionService,
		logger:             logger,
	}
}

func (c *FabricacionController) GetProductosEnFabricacion(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()
	filter := utils.ParseFilterFromQuery(ctx.QueryParams())

	productos, total, err := c.fabricacionService.GetProductosEnFabricacion(reqCtx, filter)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, productos, "Listado de productos en fabricación obtenido", http.StatusOK, total)
}

func (c *FabricacionController) FindProductoEnFabricacion(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()
	id, err := parseIDParam(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	producto, err := c.fabricacionService.FindProductoEnFabricacion(reqCtx, id)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, producto, "Producto en fabricación encontrado", http.StatusOK)
}

func (c *FabricacionController) CreateProductoEnFabricacion(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()
	var payload dto.CreateProductoEnFabricacionDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewHttpError(http.StatusBadRequest, "Formato de datos inválido", err, nil), c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	producto, err := c.fabricacionService.CreateProductoEnFabricacion(reqCtx, payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, producto, "Producto en fabricación registrado", http.StatusCreated)
}

func (c *FabricacionController) UpdateProductoEnFabricacion(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()
	id, err := parseIDParam(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	var payload dto.UpdateProductoEnFabricacionDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewHttpError(http.StatusBadRequest, "Formato de datos inválido", err, nil), c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	producto, err := c.fabricacionService.UpdateProductoEnFabricacion(reqCtx, id, payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, producto, "Producto en fabricación actualizado", http.StatusOK)
}

func (c *FabricacionController) DeleteProductoEnFabricacion(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()
	id, err := parseIDParam(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	if err := c.fabricacionService.DeleteProductoEnFabricacion(reqCtx, id); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return ctx.NoContent(http.StatusNoContent)
}
