package controllers

import (
	"net/http"

	"github.com/gonzalolionelprieto/cerramientosxya/internal/dto"
	"github.com/gonzalolionelprieto/cerramientosxya/internal/services"
	apperrors "github.com/gonzalolionelprieto/cerramientosxya/pkg/errors"
	"github.com/gonzalolionelprieto/cerramientosxya/pkg/utils"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type ClienteController struct {
	clienteService *services.ClienteService
	logger         *zap.Logger
}

func NewClienteController(clienteService *services.ClienteService, logger *zap.Logger) *ClienteController {
	return &ClienteController{
		clienteService: clienteService,
		logger:         logger,
	}
}

// parseIDParam valida que el :id de la ruta sea un UUID.
func parseIDParam(ctx echo.Context) (string, error) {
	id := ctx.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		return "", apperrors.NewHttpError(http.StatusBadRequest, "El ID de la ruta no es un UUID válido", err, nil)
	}
	return id, nil
}

func (c *ClienteController) GetClientes(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()
	filter := utils.ParseFilterFromQuery(ctx.QueryParams())

	clientes, total, err := c.clienteService.GetClientes(reqCtx, filter)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, clientes, "Listado de clientes obtenido", http.StatusOK, total)
}

func (c *ClienteController) FindCliente(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()
	id, err := parseIDParam(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	cliente, err := c.clienteService.FindCliente(reqCtx, id)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, cliente, "Cliente encontrado", http.StatusOK)
}

func (c *ClienteController) CreateCliente(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()
	var payload dto.CreateClienteDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewHttpError(http.StatusBadRequest, "Formato de datos inválido", err, nil), c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	cliente, err := c.clienteService.CreateCliente(reqCtx, payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, cliente, "Cliente creado", http.StatusCreated)
}

func (c *ClienteController) UpdateCliente(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()
	id, err := parseIDParam(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	var payload dto.UpdateClienteDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewHttpError(http.StatusBadRequest, "Formato de datos inválido", err, nil), c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	cliente, err := c.clienteService.UpdateCliente(reqCtx, id, payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, cliente, "Cliente actualizado", http.StatusOK)
}
