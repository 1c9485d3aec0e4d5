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

type PedidoProveedorController struct {
	pedidoProveedorService *services.PedidoProveedorService
	logger                 *zap.Logger
}

func NewPedidoProveedorController(pedidoProveedorService *services.PedidoProveedorService, logger *zap.Logger) *PedidoProveedorController {
	return &PedidoProveedorController{
		pedidoProveedorService: pedidoProveedorService,
		logger:                 logger,
	}
}

func (c *PedidoProveedorController) GetPedidosProveedor(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()
	filter := utils.ParseFilterFromQuery(ctx.QueryParams())

	pedidos, total, err := c.pedidoProveedorService.GetPedidosProveedor(reqCtx, filter)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, pedidos, "Listado de pedidos a proveedor obtenido", http.StatusOK, total)
}

func (c *PedidoProveedorController) FindPedidoProveedor(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()
	id, err := parseIDParam(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	pedido, err := c.pedidoProveedorService.FindPedidoProveedor(reqCtx, id)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, pedido, "Pedido a proveedor encontrado", http.StatusOK)
}

func (c *PedidoProveedorController) CreatePedidoProveedor(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()
	var payload dto.CreatePedidoProveedorDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewHttpError(http.StatusBadRequest, "Formato de datos inválido", err, nil), c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	pedido, err := c.pedidoProveedorService.CreatePedidoProveedor(reqCtx, payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, pedido, "Pedido a proveedor creado", http.StatusCreated)
}

func (c *PedidoProveedorController) UpdatePedidoProveedor(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()
	id, err := parseIDParam(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	var payload dto.UpdatePedidoProveedorDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewHttpError(http.StatusBadRequest, "Formato de datos inválido", err, nil), c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	pedido, err := c.pedidoProveedorService.UpdatePedidoProveedor(reqCtx, id, payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, pedido, "Pedido a proveedor actualizado", http.StatusOK)
}

func (c *PedidoProveedorController) DeletePedidoProveedor(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()
	id, err := parseIDParam(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	if err := c.pedidoProveedorService.DeletePedidoProveedor(reqCtx, id); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return ctx.NoContent(http.StatusNoContent)
}
