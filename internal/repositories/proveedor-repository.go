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

const proveedorTable = "proveedores"
const proveedorFields = "id, nombre, contacto, telefono, email, direccion, especialidad, activo, created_at, updated_at"

type ProveedorRepositoryInterface interface {
	GetProveedores(ctx context.Context, filter types.Filter) ([]entities.Proveedor, uint64, error)
	FindProveedor(ctx context.Context, id string) (*entities.Proveedor, error)
	CreateProveedor(ctx context.Context, payload dto.CreateProveedorDTO) (*entities.Proveedor, error)
	UpdateProveedor(ctx context.Context, id string, payload dto.UpdateProveedorDTO) error
	DeleteProveedor(ctx context.Context, id string) error
}

type ProveedorRepository struct {
	storage *pgxpool.Pool
}

func NewProveedorRepository(storage *pgxpool.Pool) ProveedorRepositoryInterface {
	return &ProveedorRepository{storage: storage}
}

func scanProveedor(row pgx.Row) (*entities.Proveedor, error) {
	var p entities.Proveedor
	err := row.Scan(
		&p.ID,
		&p.Nombre,
		&p.Contacto,
		&p.Telefono,
		&p.Email,
		&p.Direccion,
		&p.Especialidad,
		&p.Activo,
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

func (r *ProveedorRepository) GetProveedores(ctx context.Context, filter types.Filter) ([]entities.Proveedor, uint64, error) {
	where := ""
	args := []interface{}{}
	if filter.Search != "" {
		where = "WHERE nombre ILIKE $1 OR especialidad ILIKE $1"
		args = append(args, "%"+filter.Search+"%")
	}

	var total uint64
	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM %s %s", proveedorTable, where)
	if err := r.storage.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := fmt.Sprintf(
		"SELECT %s FROM %s %s ORDER BY nombre ASC LIMIT $%d OFFSET $%d",
		proveedorFields, proveedorTable, where, len(args)+1, len(args)+2,
	)
	args = append(args, filter.Limit, filter.Offset)

	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	proveedores := []entities.Proveedor{}
	for rows.Next() {
		p, err := scanProveedor(rows)
		if err != nil {
			return nil, 0, err
		}
		proveedores = append(proveedores, *p)
	}
	return proveedores, total, rows.Err()
}

func (r *ProveedorRepository) FindProveedor(ctx context.Context, id string) (*entities.Proveedor, error) {
	query := fmt.Sprintf("SELECT %s FROM %s WHERE id = $1", proveedorFields, proveedorTable)
	return scanProveedor(r.storage.QueryRow(ctx, query, id))
}

func (r *ProveedorRepository) CreateProveedor(ctx context.Context, payload dto.CreateProveedorDTO) (*entities.Proveedor, error) {
	query := fmt.Sprintf(`
        INSERT INTO %s (nombre, contacto, telefono, email, direccion, especialidad)
        VALUES ($1, $2, $3, $4, $5, $6)
        RETURNING %s
    `, proveedorTable, proveedorFields)

	return scanProveedor(r.storage.QueryRow(ctx, query,
		payload.Nombre,
		payload.Contacto,
		payload.Telefono,
		payload.Email,
		payload.Direccion,
		payload.Especialidad,
	))
}

func (r *ProveedorRepository) UpdateProveedor(ctx context.Context, id string, payload dto.UpdateProveedorDTO) error {
	query := fmt.Sprintf(`
        UPDATE %s SET
            nombre       = COALESCE($1, nombre),
            contacto     = COALESCE($2, contacto),
            telefono     = COALESCE($3, telefono),
            email        = COALESCE($4, email),
            direccion    = COALESCE($5, direccion),
            especialidad = COALESCE($6, especialidad),
            activo       = COALESCE($7, activo),
            updated_at   = CURRENT_TIMESTAMP
        WHERE id = $8
    `, proveedorTable)

	result, err := r.storage.Exec(ctx, query,
		payload.Nombre,
		payload.Contacto,
		payload.Telefono,
		payload.Email,
		payload.Direccion,
		payload.Especialidad,
		payload.Activo,
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

func (r *ProveedorRepository) DeleteProveedor(ctx context.Context, id string) error {
	query := fmt.Sprintf("DELETE FROM %s WHERE id = $1", proveedorTable)
	result, err := r.storage.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
