package repositories

import (
	"context"

	"github.com/gonzalolionelprieto/cerramientosxya/internal/entities"
	"github.com/gonzalolionelprieto/cerramientosxya/pkg/constants"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ReporteRepositoryInterface interface {
	GetReportePedidos(ctx context.Context, filter entities.ReporteFilter) ([]entities.ReporteItem, *entities.ReporteResumen, error)
}

type ReporteRepository struct {
	storage *pgxpool.Pool
}

func NewReporteRepository(storage *pgxpool.Pool) ReporteRepositoryInterface {
	return &ReporteRepository{storage: storage}
}

func reportePredicados(filter entities.ReporteFilter) []sq.Sqlizer {
	preds := []sq.Sqlizer{}
	if filter.DateFrom != nil {
		preds = append(preds, sq.GtOrEq{"p.fecha_pedido": *filter.DateFrom})
	}
	if filter.DateTo != nil {
		preds = append(preds, sq.LtOrEq{"p.fecha_pedido": *filter.DateTo})
	}
	if len(filter.Estados) > 0 {
		preds = append(preds, sq.Eq{"p.estado": filter.Estados})
	}
	if filter.Urgentes != nil {
		preds = append(preds, sq.Eq{"p.urgente": *filter.Urgentes})
	}
	return preds
}

func (r *ReporteRepository) GetReportePedidos(ctx context.Context, filter entities.ReporteFilter) ([]entities.ReporteItem, *entities.ReporteResumen, error) {
	items, err := r.filas(ctx, filter)
	if err != nil {
		return nil, nil, err
	}
	resumen, err := r.resumen(ctx, filter)
	if err != nil {
		return nil, nil, err
	}
	return items, resumen, nil
}

func (r *ReporteRepository) filas(ctx context.Context, filter entities.ReporteFilter) ([]entities.ReporteItem, error) {
	builder := psql.
		Select(
			"p.numero_orden", "c.nombre", "p.tipo_ventana", "p.estado", "p.precio",
			"p.urgente", "p.fecha_pedido", "p.fecha_entrega_estimada",
			"GREATEST(0, (CURRENT_DATE - p.fecha_pedido::date))",
		).
		From(pedidoTable + " p").
		Join(clienteTable + " c ON c.id = p.cliente_id").
		OrderBy("p.fecha_pedido DESC")

	for _, pred := range reportePredicados(filter) {
		builder = builder.Where(pred)
	}
	if filter.PerPage > 0 {
		builder = builder.Limit(uint64(filter.PerPage))
		if filter.Page > 1 {
			builder = builder.Offset(uint64((filter.Page - 1) * filter.PerPage))
		}
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []entities.ReporteItem{}
	for rows.Next() {
		var item entities.ReporteItem
		err := rows.Scan(
			&item.NumeroOrden,
			&item.ClienteNombre,
			&item.TipoVentana,
			&item.Estado,
			&item.Precio,
			&item.Urgente,
			&item.FechaPedido,
			&item.FechaEntregaEstimada,
			&item.DiasAbierto,
		)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

func (r *ReporteRepository) resumen(ctx context.Context, filter entities.ReporteFilter) (*entities.ReporteResumen, error) {
	builder := psql.
		Select("p.estado", "COUNT(*)", "COALESCE(SUM(p.precio), 0)", "COUNT(*) FILTER (WHERE p.urgente)").
		From(pedidoTable + " p").
		GroupBy("p.estado")
	for _, pred := range reportePredicados(filter) {
		builder = builder.Where(pred)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	resumen := &entities.ReporteResumen{
		CuentaPorEstado: map[string]uint64{},
		MontoPorEstado:  map[string]float64{},
	}
	for rows.Next() {
		var estado string
		var cuenta, urgentes uint64
		var monto float64
		if err := rows.Scan(&estado, &cuenta, &monto, &urgentes); err != nil {
			return nil, err
		}
		resumen.CuentaPorEstado[estado] = cuenta
		resumen.MontoPorEstado[estado] = monto
		resumen.TotalPedidos += cuenta
		resumen.TotalFacturado += monto
		resumen.PedidosUrgentes += urgentes
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	abiertosQuery, abiertosArgs, err := psql.
		Select("COUNT(*)").
		From(presupuestoTable).
		Where(sq.Eq{"estado": constants.PresupuestoPendiente}).
		ToSql()
	if err != nil {
		return nil, err
	}
	if err := r.storage.QueryRow(ctx, abiertosQuery, abiertosArgs...).Scan(&resumen.PresupuestosAbiertos); err != nil {
		return nil, err
	}
	return resumen, nil
}
