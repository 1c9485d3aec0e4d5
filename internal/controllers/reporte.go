package controllers

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gonzalolionelprieto/cerramientosxya/internal/entities"
	"github.com/gonzalolionelprieto/cerramientosxya/internal/services"
	"github.com/gonzalolionelprieto/cerramientosxya/pkg/utils"

	"github.com/labstack/echo/v4"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

type ReporteController struct {
	reporteService *services.ReporteService
	logger         *zap.Logger
}

func NewReporteController(reporteService *services.ReporteService, logger *zap.Logger) *ReporteController {
	return &ReporteController{
		reporteService: reporteService,
		logger:         logger,
	}
}

func parseReporteFilter(ctx echo.Context) (entities.ReporteFilter, string) {
	filter := entities.ReporteFilter{}
	format := ctx.QueryParam("format")
	if format == "" {
		format = "json"
	}

	const dateFmt = "2006-01-02"
	if desde := ctx.QueryParam("date_from"); desde != "" {
		if t, err := time.Parse(dateFmt, desde); err == nil {
			filter.DateFrom = &t
		}
	}
	if hasta := ctx.QueryParam("date_to"); hasta != "" {
		if t, err := time.Parse(dateFmt, hasta); err == nil {
			// Inclusivo hasta el final del día.
			fin := t.Add(24*time.Hour - time.Second)
			filter.DateTo = &fin
		}
	}
	if estados := ctx.QueryParam("estados"); estados != "" {
		filter.Estados = strings.Split(estados, ",")
	}
	if urgentes := ctx.QueryParam("urgentes"); urgentes != "" {
		if v, err := strconv.ParseBool(urgentes); err == nil {
			filter.Urgentes = &v
		}
	}
	if page, err := strconv.Atoi(ctx.QueryParam("page")); err == nil && page > 0 {
		filter.Page = page
	}
	if perPage, err := strconv.Atoi(ctx.QueryParam("per_page")); err == nil && perPage > 0 {
		filter.PerPage = perPage
	}
	return filter, format
}

func (c *ReporteController) GetReportePedidos(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()
	filter, format := parseReporteFilter(ctx)

	items, resumen, err := c.reporteService.GetReportePedidos(reqCtx, filter)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	if format == "xlsx" {
		return c.respondWithXLSX(ctx, items, resumen)
	}

	body := map[string]interface{}{
		"items":   items,
		"resumen": resumen,
	}
	return utils.SuccessResponse(ctx, body, "Reporte de pedidos generado", http.StatusOK)
}

var reporteHeaders = []string{
	"N° de orden", "Cliente", "Tipo de ventana", "Estado", "Precio", "Urgente",
	"Fecha del pedido", "Entrega estimada", "Días abierto",
}

func filaReporte(item entities.ReporteItem) []interface{} {
	const dateFmt = "02/01/2006"
	precio := ""
	if item.Precio != nil {
		precio = fmt.Sprintf("%.2f", *item.Precio)
	}
	entrega := ""
	if item.FechaEntregaEstimada != nil {
		entrega = item.FechaEntregaEstimada.Format(dateFmt)
	}
	urgente := "No"
	if item.Urgente {
		urgente = "Sí"
	}

	return []interface{}{
		item.NumeroOrden, item.ClienteNombre, item.TipoVentana, item.Estado, precio,
		urgente, item.FechaPedido.Format(dateFmt), entrega, item.DiasAbierto,
	}
}

func (c *ReporteController) respondWithXLSX(ctx echo.Context, items []entities.ReporteItem, resumen *entities.ReporteResumen) error {
	f := excelize.NewFile()
	sheet := "Reporte de pedidos"
	f.SetSheetName("Sheet1", sheet)
	f.SetSheetRow(sheet, "A1", &reporteHeaders)
	style, _ := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	f.SetCellStyle(sheet, "A1", "I1", style)

	for i, item := range items {
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		row := filaReporte(item)
		f.SetSheetRow(sheet, cell, &row)
	}
	f.SetColWidth(sheet, "A", "B", 25)
	f.SetColWidth(sheet, "C", "D", 18)
	f.SetColWidth(sheet, "G", "H", 16)

	if resumen != nil {
		base := len(items) + 3
		f.SetSheetRow(sheet, fmt.Sprintf("A%d", base), &[]interface{}{"Total de pedidos", resumen.TotalPedidos})
		f.SetSheetRow(sheet, fmt.Sprintf("A%d", base+1), &[]interface{}{"Total facturado", resumen.TotalFacturado})
		f.SetSheetRow(sheet, fmt.Sprintf("A%d", base+2), &[]interface{}{"Pedidos urgentes", resumen.PedidosUrgentes})
		f.SetSheetRow(sheet, fmt.Sprintf("A%d", base+3), &[]interface{}{"Presupuestos abiertos", resumen.PresupuestosAbiertos})
	}

	fileName := fmt.Sprintf("reporte_pedidos_%s.xlsx", time.Now().Format("2006-01-02"))
	ctx.Response().Header().Set(echo.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	ctx.Response().Header().Set(echo.HeaderContentDisposition, "attachment; filename="+fileName)
	ctx.Response().WriteHeader(http.StatusOK)
	return f.Write(ctx.Response().Writer)
}
