package repositories

import (
	"context"
	"fmt"

	"github.com/gonzalolionelprieto/cerramientosxya/internal/dto"
	"github.com/gonzalolionelprieto/cerramientosxya/internal/entities"
	apperrors "github.com/gonzalolionelprieto/cerramientosxya/pkg/errors"
	"github.com/gonzalolionelprieto/cerramientosxya/pkg/types"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const pedidoTable = "pedidos"
const pedidoFields = `id, numero_orden, cliente_id, tipo_ventana, medidas, descripcion, color, estado,
	precio, urgente, fecha_pedido, fecha_entrega_estimada, comentarios, created_at, updated_at`

type PedidoRepositoryInterface interface {
	GetPedidos(ctx context.Context, filter types.Filter) ([]entities.Pedido, uint64, error)
	FindPedido(ctx context.Context, id string) (*entities.Pedido, error)
	CreatePedido(ctx context.Context, payload dto.CreatePedidoDTO) (*entities.Pedido, error)
	UpdatePedido(ctx context.Context, id string, payload dto.UpdatePedidoDTO) error
	DeletePedido(ctx context.Context, id string) error
}

type PedidoRepository struct {
	storage *pgxpool.Pool
}

func NewPedidoRepository(storage *pgxpool.Pool) PedidoRepositoryInterface {
	return &PedidoRepository{storage: storage}
}

func scanPedido(row pgx.Row) (*entities.Pedido, error) {
	var p entities.Pedido
	err := row.Scan(
		&p.ID,
		&p.NumeroOrden,
		&p.ClienteID,
		&p.TipoVentana,
		&p.Medidas,
		&p.Descripcion,
		&p.Color,
		&p.Estado,
		&p.Precio,
		&p.Urgente,
		&p.FechaPedido,
		&p.FechaEntregaEstimada,
		&p.Comentarios,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (r *PedidoRepository) GetPedidos(ctx context.Context, filter types.Filter) ([]entities.Pedido, uint64, error) {
	where := ""
	args := []interface{}{}
	if estado, ok := filter.Filter["estado"]; ok {
		where = "WHERE p.estado = $1"
		args = append(args, estado)
	}

	var total uint64
	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM %s p %s", pedidoTable, where)
	if err := r.storage.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := fmt.Sprintf(`
        SELECT
            p.id, p.numero_orden, p.cliente_id, p.tipo_ventana, p.medidas, p.descripcion, p.color, p.estado,
            p.precio, p.urgente, p.fecha_pedido, p.fecha_entrega_estimada, p.comentarios, p.created_at, p.updated_at,
            c.nombre, c.telefono
        FROM %s p
        JOIN %s c ON c.id = p.cliente_id
        %s
        ORDER BY p.fecha_pedido DESC
        LIMIT $%d OFFSET $%d
    `, pedidoTable, clienteTable, where, len(args)+1, len(args)+2)
	args = append(args, filter.Limit, filter.Offset)

	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
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
			&p.Medidas,
			&p.Descripcion,
			&p.Color,
			&p.Estado,
			&p.Precio,
			&p.Urgente,
			&p.FechaPedido,
			&p.FechaEntregaEstimada,
			&p.Comentarios,
			&p.CreatedAt,
			&p.UpdatedAt,
			&cliente.Nombre,
			&cliente.Telefono,
		)
		if err != nil {
			return nil, 0, err
		}
		cliente.ID = p.ClienteID
		p.Cliente = &cliente
		pedidos = append(pedidos, p)
	}
	return pedidos, total, rows.Err()
}

func (r *PedidoRepository) FindPedido(ctx context.Context, id string) (*entities.Pedido, error) {
	query := fmt.Sprintf("SELECT %s FROM %s WHERE id = $1", pedidoFields, pedidoTable)
	p, err := scanPedido(r.storage.QueryRow(ctx, query, id))
	if err != nil {
		return nil, err
	}

	clienteQuery := fmt.Sprintf("SELECT %s FROM %s WHERE id = $1", clienteFields, clienteTable)
	cliente, err := scanCliente(r.storage.QueryRow(ctx, clienteQuery, p.ClienteID))
	if err == nil {
		p.Cliente = cliente
	}
	return p, nil
}

func (r *PedidoRepository) CreatePedido(ctx context.Context, payload dto.CreatePedidoDTO) (*entities.Pedido, error) {
	query := fmt.Sprintf(`
        INSERT INTO %s (numero_orden, cliente_id, tipo_ventana, medidas, descripcion, color, precio, urgente, fecha_entrega_estimada, comentarios)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
        RETURNING %s
    `, pedidoTable, pedidoFields)

	return scanPedido(r.storage.QueryRow(ctx, query,
		payload.NumeroOrden,
		payload.ClienteID,
		payload.TipoVentana,
		payload.Medidas,
		payload.Descripcion,
		payload.Color,
		payload.Precio,
		payload.Urgente,
		payload.FechaEntregaEstimada,
		payload.Comentarios,
	))
}

func (r *PedidoRepository) UpdatePedido(ctx context.Context, id string, payload dto.UpdatePedidoDTO) error {
	query := fmt.Sprintf(`
        UPDATE %s SET
            numero_orden           = COALESCE($1, numero_orden),
            tipo_ventana           = COALESCE($2, tipo_ventana),
            medidas                = COALESCE($3, medidas),
            descripcion            = COALESCE($4, descripcion),
            color                  = COALESCE($5, color),
            estado                 = COALESCE($6, estado),
            precio                 = COALESCE($7, precio),
            urgente                = COALESCE($8, urgente),
            fecha_entrega_estimada = COALESCE($9, fecha_entrega_estimada),
            comentarios            = COALESCE($10, comentarios),
            updated_at             = CURRENT_TIMESTAMP
        WHERE id = $11
    `, pedidoTable)

	result, err := r.storage.Exec(ctx, query,
		payload.NumeroOrden,
		payload.TipoVentana,
		payload.Medidas,
		payload.Descripcion,
		payload.Color,
		payload.Estado,
		payload.Precio,
		payload.Urgente,
		payload.FechaEntregaEstimada,
		payload.Comentarios,
		id,
	)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PedidoRepository) DeletePedido(ctx context.Context, id string) error {
	query := fmt.Sprintf("DELETE FROM %s WHERE id = $1", pedidoTable)
	result, err := r.storage.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
