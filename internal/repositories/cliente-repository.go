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

const clienteTable = "clientes"
const clienteFields = "id, nombre, telefono, email, direccion, ciudad, codigo_postal, created_at, updated_at"

type ClienteRepositoryInterface interface {
	GetClientes(ctx context.Context, filter types.Filter) ([]entities.Cliente, uint64, error)
	FindCliente(ctx context.Context, id string) (*entities.Cliente, error)
	FindClienteByNombre(ctx context.Context, nombre string) (*entities.Cliente, error)
	CreateCliente(ctx context.Context, payload dto.CreateClienteDTO) (*entities.Cliente, error)
	UpdateCliente(ctx context.Context, id string, payload dto.UpdateClienteDTO) error
}

type ClienteRepository struct {
	storage *pgxpool.Pool
}

func NewClienteRepository(storage *pgxpool.Pool) ClienteRepositoryInterface {
	return &ClienteRepository{storage: storage}
}

func scanCliente(row pgx.Row) (*entities.Cliente, error) {
	var c entities.Cliente
	err := row.Scan(
		&c.ID,
		&c.Nombre,
		&c.Telefono,
		&c.Email,
		&c.Direccion,
		&c.Ciudad,
		&c.CodigoPostal,
		&c.CreatedAt,
		&c.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &c, nil
}

func (r *ClienteRepository) GetClientes(ctx context.Context, filter types.Filter) ([]entities.Cliente, uint64, error) {
	where := ""
	args := []interface{}{}
	if filter.Search != "" {
		where = "WHERE nombre ILIKE $1"
		args = append(args, "%"+filter.Search+"%")
	}

	var total uint64
	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM %s %s", clienteTable, where)
	if err := r.storage.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := fmt.Sprintf(
		"SELECT %s FROM %s %s ORDER BY nombre ASC LIMIT $%d OFFSET $%d",
		clienteFields, clienteTable, where, len(args)+1, len(args)+2,
	)
	args = append(args, filter.Limit, filter.Offset)

	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	clientes := []entities.Cliente{}
	for rows.Next() {
		c, err := scanCliente(rows)
		if err != nil {
			return nil, 0, err
		}
		clientes = append(clientes, *c)
	}
	return clientes, total, rows.Err()
}

func (r *ClienteRepository) FindCliente(ctx context.Context, id string) (*entities.Cliente, error) {
	query := fmt.Sprintf("SELECT %s FROM %s WHERE id = $1", clienteFields, clienteTable)
	return scanCliente(r.storage.QueryRow(ctx, query, id))
}

// FindClienteByNombre busca por nombre exacto. No hay restricción de unicidad
// sobre nombre: si existen duplicados devuelve el más antiguo.
func (r *ClienteRepository) FindClienteByNombre(ctx context.Context, nombre string) (*entities.Cliente, error) {
	query := fmt.Sprintf(
		"SELECT %s FROM %s WHERE nombre = $1 ORDER BY created_at ASC LIMIT 1",
		clienteFields, clienteTable,
	)
	return scanCliente(r.storage.QueryRow(ctx, query, nombre))
}

func (r *ClienteRepository) CreateCliente(ctx context.Context, payload dto.CreateClienteDTO) (*entities.Cliente, error) {
	query := fmt.Sprintf(`
        INSERT INTO %s (nombre, telefono, email, direccion, ciudad, codigo_postal)
        VALUES ($1, $2, $3, $4, $5, $6)
        RETURNING %s
    `, clienteTable, clienteFields)

	return scanCliente(r.storage.QueryRow(ctx, query,
		payload.Nombre,
		payload.Telefono,
		payload.Email,
		payload.Direccion,
		payload.Ciudad,
		payload.CodigoPostal,
	))
}

func (r *ClienteRepository) UpdateCliente(ctx context.Context, id string, payload dto.UpdateClienteDTO) error {
	query := fmt.Sprintf(`
        UPDATE %s SET
            nombre        = COALESCE($1, nombre),
            telefono      = COALESCE($2, telefono),
            email         = COALESCE($3, email),
            direccion     = COALESCE($4, direccion),
            ciudad        = COALESCE($5, ciudad),
            codigo_postal = COALESCE($6, codigo_postal),
            updated_at    = CURRENT_TIMESTAMP
        WHERE id = $7
    `, clienteTable)

	result, err := r.storage.Exec(ctx, query,
		payload.Nombre,
		payload.Telefono,
		payload.Email,
		payload.Direccion,
		payload.Ciudad,
		payload.CodigoPostal,
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
