package controllers

import (
	"net/http"
	"strconv"

	"github.com/gonzalolionelprieto/cerramientosxya/internal/dto"
	"github.com/gonzalolionelprieto/cerramientosxya/internal/services"
	apperrors "github.com/gonzalolionelprieto/cerramientosxya/pkg/errors"
	"github.com/gonzalolionelprieto/cerramientosxya/pkg/utils"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type ProductoController struct {
	productoService *services.ProductoService
	logger          *zap.Logger
}

func NewProductoController(productoService *services.ProductoService, logger *zap.Logger) *ProductoController {
	return &ProductoController{
		productoService: productoService,
		logger:          logger,
	}
}

func (c *ProductoController) GetProductos(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()
	filter := utils.ParseFilterFromQuery(ctx.QueryParams())
	soloPlantillas, _ := strconv.ParseBool(ctx.QueryParam("plantillas"))

	productos, total, err := c.productoService.GetProductos(reqCtx, filter, soloPlantillas)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, productos, "Listado de productos obtenido", http.StatusOK, total)
}

func (c *ProductoController) FindProducto(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()
	id, err := parseIDParam(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	producto, err := c.productoService.FindProducto(reqCtx, id)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, producto, "Producto encontrado", http.StatusOK)
}

func (c *ProductoController) CreateProducto(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()
	var payload dto.CreateProductoDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewHttpError(http.StatusBadRequest, "Formato de datos inválido", err, nil), c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	producto, err := c.productoService.CreateProducto(reqCtx, payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, producto, "Producto creado", http.StatusCreated)
}

func (c *ProductoController) UpdateProducto(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()
	id, err := parseIDParam(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	var payload dto.UpdateProductoDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewHttpError(http.StatusBadRequest, "Formato de datos inválido", err, nil), c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	producto, err := c.productoService.UpdateProducto(reqCtx, id, payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, producto, "Producto actualizado", http.StatusOK)
}

func (c *ProductoController) DeleteProducto(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()
	id, err := parseIDParam(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	if err := c.productoService.DeleteProducto(reqCtx, id); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return ctx.NoContent(http.StatusNoContent)
}
