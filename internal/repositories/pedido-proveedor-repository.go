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

const pedidoProveedorTable = "pedidos_proveedor"
const pedidoProveedorFields = `id, numero_pedido, proveedor_id, pedido_cliente_id, descripcion, cantidad, precio,
	estado, fecha_pedido, fecha_entrega_estimada, fecha_entrega_real, notas, created_at, updated_at`

type PedidoProveedorRepositoryInterface interface {
	GetPedidosProveedor(ctx context.Context, filter types.Filter) ([]entities.PedidoProveedor, uint64, error)
	FindPedidoProveedor(ctx context.Context, id string) (*entities.PedidoProveedor, error)
	CreatePedidoProveedor(ctx context.Context, payload dto.CreatePedidoProveedorDTO) (*entities.PedidoProveedor, error)
	UpdatePedidoProveedor(ctx context.Context, id string, payload dto.UpdatePedidoProveedorDTO) error
	DeletePedidoProveedor(ctx context.Context, id string) error
}

type PedidoProveedorRepository struct {
	storage *pgxpool.Pool
}

func NewPedidoProveedorRepository(storage *pgxpool.Pool) PedidoProveedorRepositoryInterface {
	return &PedidoProveedorRepository{storage: storage}
}

func scanPedidoProveedor(row pgx.Row) (*entities.PedidoProveedor, error) {
	var p entities.PedidoProveedor
	err := row.Scan(
		&p.ID,
		&p.NumeroPedido,
		&p.ProveedorID,
		&p.PedidoClienteID,
		&p.Descripcion,
		&p.Cantidad,
		&p.Precio,
		&p.Estado,
		&p.FechaPedido,
		&p.FechaEntregaEstimada,
		&p.FechaEntregaReal,
		&p.Notas,
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

func (r *PedidoProveedorRepository) GetPedidosProveedor(ctx context.Context, filter types.Filter) ([]entities.PedidoProveedor, uint64, error) {
	where := ""
	args := []interface{}{}
	if estado, ok := filter.Filter["estado"]; ok {
		where = "WHERE pp.estado = $1"
		args = append(args, estado)
	}

	var total uint64
	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM %s pp %s", pedidoProveedorTable, where)
	if err := r.storage.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := fmt.Sprintf(`
        SELECT
            pp.id, pp.numero_pedido, pp.proveedor_id, pp.pedido_cliente_id, pp.descripcion, pp.cantidad, pp.precio,
            pp.estado, pp.fecha_pedido, pp.fecha_entrega_estimada, pp.fecha_entrega_real, pp.notas, pp.created_at, pp.updated_at,
            pr.nombre
        FROM %s pp
        LEFT JOIN %s pr ON pr.id = pp.proveedor_id
        %s
        ORDER BY pp.fecha_pedido DESC
        LIMIT $%d OFFSET $%d
    `, pedidoProveedorTable, proveedorTable, where, len(args)+1, len(args)+2)
	args = append(args, filter.Limit, filter.Offset)

	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	pedidos := []entities.PedidoProveedor{}
	for rows.Next() {
		var p entities.PedidoProveedor
		var proveedorNombre *string
		err := rows.Scan(
			&p.ID,
			&p.NumeroPedido,
			&p.ProveedorID,
			&p.PedidoClienteID,
			&p.Descripcion,
			&p.Cantidad,
			&p.Precio,
			&p.Estado,
			&p.FechaPedido,
			&p.FechaEntregaEstimada,
			&p.FechaEntregaReal,
			&p.Notas,
			&p.CreatedAt,
			&p.UpdatedAt,
			&proveedorNombre,
		)
		if err != nil {
			return nil, 0, err
		}
		if p.ProveedorID != nil && proveedorNombre != nil {
			p.Proveedor = &entities.Proveedor{ID: *p.ProveedorID, Nombre: *proveedorNombre}
		}
		pedidos = append(pedidos, p)
	}
	return pedidos, total, rows.Err()
}

func (r *PedidoProveedorRepository) FindPedidoProveedor(ctx context.Context, id string) (*entities.PedidoProveedor, error) {
	query := fmt.Sprintf("SELECT %s FROM %s WHERE id = $1", pedidoProveedorFields, pedidoProveedorTable)
	p, err := scanPedidoProveedor(r.storage.QueryRow(ctx, query, id))
	if err != nil {
		return nil, err
	}

	if p.ProveedorID != nil {
		proveedorQuery := fmt.Sprintf("SELECT %s FROM %s WHERE id = $1", proveedorFields, proveedorTable)
		if proveedor, err := scanProveedor(r.storage.QueryRow(ctx, proveedorQuery, *p.ProveedorID)); err == nil {
			p.Proveedor = proveedor
		}
	}
	return p, nil
}

func (r *PedidoProveedorRepository) CreatePedidoProveedor(ctx context.Context, payload dto.CreatePedidoProveedorDTO) (*entities.PedidoProveedor, error) {
	query := fmt.Sprintf(`
        INSERT INTO %s (numero_pedido, proveedor_id, pedido_cliente_id, descripcion, cantidad, precio, fecha_entrega_estimada, notas)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
        RETURNING %s
    `, pedidoProveedorTable, pedidoProveedorFields)

	return scanPedidoProveedor(r.storage.QueryRow(ctx, query,
		payload.NumeroPedido,
		payload.ProveedorID,
		payload.PedidoClienteID,
		payload.Descripcion,
		payload.Cantidad,
		payload.Precio,
		payload.FechaEntregaEstimada,
		payload.Notas,
	))
}

func (r *PedidoProveedorRepository) UpdatePedidoProveedor(ctx context.Context, id string, payload dto.UpdatePedidoProveedorDTO) error {
	query := fmt.Sprintf(`
        UPDATE %s SET
            numero_pedido          = COALESCE($1, numero_pedido),
            proveedor_id           = COALESCE($2, proveedor_id),
            pedido_cliente_id      = COALESCE($3, pedido_cliente_id),
            descripcion            = COALESCE($4, descripcion),
            cantidad               = COALESCE($5, cantidad),
            precio                 = COALESCE($6, precio),
            estado                 = COALESCE($7, estado),
            fecha_entrega_estimada = COALESCE($8, fecha_entrega_estimada),
            fecha_entrega_real     = COALESCE($9, fecha_entrega_real),
            notas                  = COALESCE($10, notas),
            updated_at             = CURRENT_TIMESTAMP
        WHERE id = $11
    `, pedidoProveedorTable)

	result, err := r.storage.Exec(ctx, query,
		payload.NumeroPedido,
		payload.ProveedorID,
		payload.PedidoClienteID,
		payload.Descripcion,
		payload.Cantidad,
		payload.Precio,
		payload.Estado,
		payload.FechaEntregaEstimada,
		payload.FechaEntregaReal,
		payload.Notas,
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

func (r *PedidoProveedorRepository) DeletePedidoProveedor(ctx context.Context, id string) error {
	query := fmt.Sprintf("DELETE FROM %s WHERE id = $1", pedidoProveedorTable)
	result, err := r.storage.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
