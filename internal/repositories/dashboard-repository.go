package repositories

import (
	"context"
	"fmt"

	"github.com/gonzalolionelprieto/cerramientosxya/internal/dto"
	"github.com/gonzalolionelprieto/cerramientosxya/internal/entities"
	"github.com/gonzalolionelprieto/cerramientosxya/pkg/constants"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"
)

type DashboardRepositoryInterface interface {
	GetContadores(ctx context.Context) (*dto.DashboardContadoresDTO, error)
}

type DashboardRepository struct {
	storage *pgxpool.Pool
}

func NewDashboardRepository(storage *pgxpool.Pool) DashboardRepositoryInterface {
	return &DashboardRepository{storage: storage}
}

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

func (r *DashboardRepository) contar(ctx context.Context, table string, pred interface{}, args ...interface{}) (uint64, error) {
	query, queryArgs, err := psql.Select("COUNT(*)").From(table).Where(pred, args...).ToSql()
	if err != nil {
		return 0, err
	}
	var total uint64
	if err := r.storage.QueryRow(ctx, query, queryArgs...).Scan(&total); err != nil {
		return 0, err
	}
	return total, nil
}

// GetContadores arma los contadores del tablero en una sola pasada. Cada
// contador es una consulta independiente; no hay snapshot transaccional entre
// ellos.
func (r *DashboardRepository) GetContadores(ctx context.Context) (*dto.DashboardContadoresDTO, error) {
	contadores := &dto.DashboardContadoresDTO{}

	var err error
	if contadores.PedidosPendientes, err = r.contar(ctx, pedidoTable, sq.Eq{"estado": constants.PedidoPendiente}); err != nil {
		return nil, fmt.Errorf("contador de pedidos pendientes: %w", err)
	}
	if contadores.InstalacionesHoy, err = r.contar(ctx, instalacionTable, sq.Expr("fecha = CURRENT_DATE")); err != nil {
		return nil, fmt.Errorf("contador de instalaciones de hoy: %w", err)
	}
	if contadores.VehiculosDisponibles, err = r.contar(ctx, vehiculoTable, sq.Eq{"disponible": true}); err != nil {
		return nil, fmt.Errorf("contador de vehículos disponibles: %w", err)
	}
	if contadores.PresupuestosPendientes, err = r.contar(ctx, presupuestoTable, sq.Eq{"estado": constants.PresupuestoPendiente}); err != nil {
		return nil, fmt.Errorf("contador de presupuestos pendientes: %w", err)
	}
	if contadores.EnFabricacion, err = r.contar(ctx, fabricacionTable, sq.NotEq{"estado": []string{constants.FabricacionCompletado, constants.FabricacionCancelado}}); err != nil {
		return nil, fmt.Errorf("contador de fabricación: %w", err)
	}

	recientes, err := r.pedidosRecientes(ctx, 5)
	if err != nil {
		return nil, fmt.Errorf("pedidos recientes: %w", err)
	}
	contadores.PedidosRecientes = recientes

	return contadores, nil
}

func (r *DashboardRepository) pedidosRecientes(ctx context.Context, limit uint64) ([]entities.Pedido, error) {
	query, args, err := psql.
		Select(
			"p.id", "p.numero_orden", "p.cliente_id", "p.tipo_ventana", "p.estado",
			"p.urgente", "p.fecha_pedido", "c.nombre",
		).
		From(pedidoTable + " p").
		Join(clienteTable + " c ON c.id = p.cliente_id").
		OrderBy("p.fecha_pedido DESC").
		Limit(limit).
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	pedidos := []entities.Pedido{}
	for rows.Next() {
		var p entities.Pedido
		var cliente entities.Cliente
		err := rows.Scan(
			&p.ID,
			&p.NumeroOrden,
			&p.ClienteID,
			&p.TipoVentana,
			&p.Estado,
			&p.Urgente,
			&p.FechaPedido,
			&cliente.Nombre,
		)
		if err != nil {
			return nil, err
		}
		cliente.ID = p.ClienteID
		p.Cliente = &cliente
		pedidos = append(pedidos, p)
	}
	return pedidos, rows.Err()
}
