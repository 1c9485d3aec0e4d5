package repositories

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/gonzalolionelprieto/cerramientosxya/internal/dto"
	"github.com/gonzalolionelprieto/cerramientosxya/internal/entities"
	apperrors "github.com/gonzalolionelprieto/cerramientosxya/pkg/errors"
	"github.com/gonzalolionelprieto/cerramientosxya/pkg/types"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const productoTable = "productos"
const productoFields = "id, tipo_sistema, descripcion, medidas_alto, medidas_ancho, medidas_profundidad, opciones, imagen_url, es_plantilla, created_at, updated_at"

type ProductoRepositoryInterface interface {
	GetProductos(ctx context.Context, filter types.Filter, soloPlantillas bool) ([]entities.Producto, uint64, error)
	FindProducto(ctx context.Context, id string) (*entities.Producto, error)
	CreateProducto(ctx context.Context, payload dto.CreateProductoDTO) (*entities.Producto, error)
	UpdateProducto(ctx context.Context, id string, payload dto.UpdateProductoDTO) error
	DeleteProducto(ctx context.Context, id string) error
}

type ProductoRepository struct {
	storage *pgxpool.Pool
}

func NewProductoRepository(storage *pgxpool.Pool) ProductoRepositoryInterface {
	return &ProductoRepository{storage: storage}
}

func scanProducto(row pgx.Row) (*entities.Producto, error) {
	var p entities.Producto
	var opciones []byte
	err := row.Scan(
		&p.ID,
		&p.TipoSistema,
		&p.Descripcion,
		&p.MedidasAlto,
		&p.MedidasAncho,
		&p.MedidasProfundidad,
		&opciones,
		&p.ImagenURL,
		&p.EsPlantilla,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	if len(opciones) > 0 {
		if err := json.Unmarshal(opciones, &p.Opciones); err != nil {
			return nil, fmt.Errorf("opciones corruptas en producto %s: %w", p.ID, err)
		}
	}
	return &p, nil
}

func (r *ProductoRepository) GetProductos(ctx context.Context, filter types.Filter, soloPlantillas bool) ([]entities.Producto, uint64, error) {
	where := ""
	args := []interface{}{}
	if soloPlantillas {
		where = "WHERE es_plantilla = TRUE"
	}
	if tipo, ok := filter.Filter["tipo_sistema"]; ok {
		if where == "" {
			where = "WHERE tipo_sistema = $1"
		} else {
			where += " AND tipo_sistema = $1"
		}
		args = append(args, tipo)
	}

	var total uint64
	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM %s %s", productoTable, where)
	if err := r.storage.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := fmt.Sprintf(
		"SELECT %s FROM %s %s ORDER BY created_at DESC LIMIT $%d OFFSET $%d",
		productoFields, productoTable, where, len(args)+1, len(args)+2,
	)
	args = append(args, filter.Limit, filter.Offset)

	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	productos := []entities.Producto{}
	for rows.Next() {
		p, err := scanProducto(rows)
		if err != nil {
			return nil, 0, err
		}
		productos = append(productos, *p)
	}
	return productos, total, rows.Err()
}

func (r *ProductoRepository) FindProducto(ctx context.Context, id string) (*entities.Producto, error) {
	query := fmt.Sprintf("SELECT %s FROM %s WHERE id = $1", productoFields, productoTable)
	return scanProducto(r.storage.QueryRow(ctx, query, id))
}

func (r *ProductoRepository) CreateProducto(ctx context.Context, payload dto.CreateProductoDTO) (*entities.Producto, error) {
	opciones, err := json.Marshal(payload.Opciones)
	if err != nil {
		return nil, err
	}

	query := fmt.Sprintf(`
        INSERT INTO %s (tipo_sistema, descripcion, medidas_alto, medidas_ancho, medidas_profundidad, opciones, imagen_url, es_plantilla)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
        RETURNING %s
    `, productoTable, productoFields)

	return scanProducto(r.storage.QueryRow(ctx, query,
		payload.TipoSistema,
		payload.Descripcion,
		payload.MedidasAlto,
		payload.MedidasAncho,
		payload.MedidasProfundidad,
		opciones,
		payload.ImagenURL,
		payload.EsPlantilla,
	))
}

func (r *ProductoRepository) UpdateProducto(ctx context.Context, id string, payload dto.UpdateProductoDTO) error {
	var opciones []byte
	if payload.Opciones != nil {
		var err error
		opciones, err = json.Marshal(payload.Opciones)
		if err != nil {
			return err
		}
	}

	query := fmt.Sprintf(`
        UPDATE %s SET
            tipo_sistema        = COALESCE($1, tipo_sistema),
            descripcion         = COALESCE($2, descripcion),
            medidas_alto        = COALESCE($3, medidas_alto),
            medidas_ancho       = COALESCE($4, medidas_ancho),
            medidas_profundidad = COALESCE($5, medidas_profundidad),
            opciones            = COALESCE($6, opciones),
            imagen_url          = COALESCE($7, imagen_url),
            es_plantilla        = COALESCE($8, es_plantilla),
            updated_at          = CURRENT_TIMESTAMP
        WHERE id = $9
    `, productoTable)

	result, err := r.storage.Exec(ctx, query,
		payload.TipoSistema,
		payload.Descripcion,
		payload.MedidasAlto,
		payload.MedidasAncho,
		payload.MedidasProfundidad,
		opciones,
		payload.ImagenURL,
		payload.EsPlantilla,
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

func (r *ProductoRepository) DeleteProducto(ctx context.Context, id string) error {
	query := fmt.Sprintf("DELETE FROM %s WHERE id = $1", productoTable)
	result, err := r.storage.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
