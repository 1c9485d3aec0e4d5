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

const fabricacionTable = "productos_en_fabricacion"
const fabricacionFields = "id, nombre_producto, estado, cantidad, fecha_estimada_finalizacion, fecha_real_finalizacion, created_at, updated_at"

type FabricacionRepositoryInterface interface {
	GetProductosEnFabricacion(ctx context.Context, filter types.Filter) ([]entities.ProductoEnFabricacion, uint64, error)
	FindProductoEnFabricacion(ctx context.Context, id string) (*entities.ProductoEnFabricacion, error)
	CreateProductoEnFabricacion(ctx context.Context, payload dto.CreateProductoEnFabricacionDTO) (*entities.ProductoEnFabricacion, error)
	UpdateProductoEnFabricacion(ctx context.Context, id string, payload dto.UpdateProductoEnFabricacionDTO) error
	DeleteProductoEnFabricacion(ctx context.Context, id string) error
}

type FabricacionRepository struct {
	storage *pgxpool.Pool
}

func NewFabricacionRepository(storage *pgxpool.Pool) FabricacionRepositoryInterface {
	return &FabricacionRepository{storage: storage}
}

func scanProductoEnFabricacion(row pgx.Row) (*entities.ProductoEnFabricacion, error) {
	var p entities.ProductoEnFabricacion
	err := row.Scan(
		&p.ID,
		&p.NombreProducto,
		&p.Estado,
		&p.Cantidad,
		&p.FechaEstimadaFinalizacion,
		&p.FechaRealFinalizacion,
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

func (r *FabricacionRepository) GetProductosEnFabricacion(ctx context.Context, filter types.Filter) ([]entities.ProductoEnFabricacion, uint64, error) {
	where := ""
	args := []interface{}{}
	if estado, ok := filter.Filter["estado"]; ok {
		where = "WHERE estado = $1"
		args = append(args, estado)
	}

	var total uint64
	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM %s %s", fabricacionTable, where)
	if err := r.storage.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := fmt.Sprintf(
		"SELECT %s FROM %s %s ORDER BY created_at DESC LIMIT $%d OFFSET $%d",
		fabricacionFields, fabricacionTable, where, len(args)+1, len(args)+2,
	)
	args = append(args, filter.Limit, filter.Offset)

	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	productos := []entities.ProductoEnFabricacion{}
	for rows.Next() {
		p, err := scanProductoEnFabricacion(rows)
		if err != nil {
			return nil, 0, err
		}
		productos = append(productos, *p)
	}
	return productos, total, rows.Err()
}

func (r *FabricacionRepository) FindProductoEnFabricacion(ctx context.Context, id string) (*entities.ProductoEnFabricacion, error) {
	query := fmt.Sprintf("SELECT %s FROM %s WHERE id = $1", fabricacionFields, fabricacionTable)
	return scanProductoEnFabricacion(r.storage.QueryRow(ctx, query, id))
}

func (r *FabricacionRepository) CreateProductoEnFabricacion(ctx context.Context, payload dto.CreateProductoEnFabricacionDTO) (*entities.ProductoEnFabricacion, error) {
	query := fmt.Sprintf(`
        INSERT INTO %s (nombre_producto, cantidad, fecha_estimada_finalizacion)
        VALUES ($1, $2, $3)
        RETURNING %s
    `, fabricacionTable, fabricacionFields)

	return scanProductoEnFabricacion(r.storage.QueryRow(ctx, query,
		payload.NombreProducto,
		payload.Cantidad,
		payload.FechaEstimadaFinalizacion,
	))
}

func (r *FabricacionRepository) UpdateProductoEnFabricacion(ctx context.Context, id string, payload dto.UpdateProductoEnFabricacionDTO) error {
	query := fmt.Sprintf(`
        UPDATE %s SET
            nombre_producto             = COALESCE($1, nombre_producto),
            estado                      = COALESCE($2, estado),
            cantidad                    = COALESCE($3, cantidad),
            fecha_estimada_finalizacion = COALESCE($4, fecha_estimada_finalizacion),
            fecha_real_finalizacion     = COALESCE($5, fecha_real_finalizacion),
            updated_at                  = CURRENT_TIMESTAMP
        WHERE id = $6
    `, fabricacionTable)

	result, err := r.storage.Exec(ctx, query,
		payload.NombreProducto,
		payload.Estado,
		payload.Cantidad,
		payload.FechaEstimadaFinalizacion,
		payload.FechaRealFinalizacion,
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

func (r *FabricacionRepository) DeleteProductoEnFabricacion(ctx context.Context, id string) error {
	query := fmt.Sprintf("DELETE FROM %s WHERE id = $1", fabricacionTable)
	result, err := r.storage.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
