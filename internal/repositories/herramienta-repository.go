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

const herramientaTable = "herramientas"
const herramientaFields = "id, nombre, categoria, cantidad_total, cantidad_disponible, estado, ubicacion, created_at, updated_at"

type HerramientaRepositoryInterface interface {
	GetHerramientas(ctx context.Context, filter types.Filter) ([]entities.Herramienta, uint64, error)
	FindHerramienta(ctx context.Context, id string) (*entities.Herramienta, error)
	CreateHerramienta(ctx context.Context, payload dto.CreateHerramientaDTO) (*entities.Herramienta, error)
	UpdateHerramienta(ctx context.Context, id string, payload dto.UpdateHerramientaDTO) error
	DeleteHerramienta(ctx context.Context, id string) error
}

type HerramientaRepository struct {
	storage *pgxpool.Pool
}

func NewHerramientaRepository(storage *pgxpool.Pool) HerramientaRepositoryInterface {
	return &HerramientaRepository{storage: storage}
}

func scanHerramienta(row pgx.Row) (*entities.Herramienta, error) {
	var h entities.Herramienta
	err := row.Scan(
		&h.ID,
		&h.Nombre,
		&h.Categoria,
		&h.CantidadTotal,
		&h.CantidadDisponible,
		&h.Estado,
		&h.Ubicacion,
		&h.CreatedAt,
		&h.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &h, nil
}

func (r *HerramientaRepository) GetHerramientas(ctx context.Context, filter types.Filter) ([]entities.Herramienta, uint64, error) {
	where := ""
	args := []interface{}{}
	if categoria, ok := filter.Filter["categoria"]; ok {
		where = "WHERE categoria = $1"
		args = append(args, categoria)
	}

	var total uint64
	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM %s %s", herramientaTable, where)
	if err := r.storage.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := fmt.Sprintf(
		"SELECT %s FROM %s %s ORDER BY nombre ASC LIMIT $%d OFFSET $%d",
		herramientaFields, herramientaTable, where, len(args)+1, len(args)+2,
	)
	args = append(args, filter.Limit, filter.Offset)

	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	herramientas := []entities.Herramienta{}
	for rows.Next() {
		h, err := scanHerramienta(rows)
		if err != nil {
			return nil, 0, err
		}
		herramientas = append(herramientas, *h)
	}
	return herramientas, total, rows.Err()
}

func (r *HerramientaRepository) FindHerramienta(ctx context.Context, id string) (*entities.Herramienta, error) {
	query := fmt.Sprintf("SELECT %s FROM %s WHERE id = $1", herramientaFields, herramientaTable)
	return scanHerramienta(r.storage.QueryRow(ctx, query, id))
}

func (r *HerramientaRepository) CreateHerramienta(ctx context.Context, payload dto.CreateHerramientaDTO) (*entities.Herramienta, error) {
	query := fmt.Sprintf(`
        INSERT INTO %s (nombre, categoria, cantidad_total, cantidad_disponible, ubicacion)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING %s
    `, herramientaTable, herramientaFields)

	return scanHerramienta(r.storage.QueryRow(ctx, query,
		payload.Nombre,
		payload.Categoria,
		payload.CantidadTotal,
		payload.CantidadDisponible,
		payload.Ubicacion,
	))
}

func (r *HerramientaRepository) UpdateHerramienta(ctx context.Context, id string, payload dto.UpdateHerramientaDTO) error {
	query := fmt.Sprintf(`
        UPDATE %s SET
            nombre              = COALESCE($1, nombre),
            categoria           = COALESCE($2, categoria),
            cantidad_total      = COALESCE($3, cantidad_total),
            cantidad_disponible = COALESCE($4, cantidad_disponible),
            estado              = COALESCE($5, estado),
            ubicacion           = COALESCE($6, ubicacion),
            updated_at          = CURRENT_TIMESTAMP
        WHERE id = $7
    `, herramientaTable)

	result, err := r.storage.Exec(ctx, query,
		payload.Nombre,
		payload.Categoria,
		payload.CantidadTotal,
		payload.CantidadDisponible,
		payload.Estado,
		payload.Ubicacion,
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

func (r *HerramientaRepository) DeleteHerramienta(ctx context.Context, id string) error {
	query := fmt.Sprintf("DELETE FROM %s WHERE id = $1", herramientaTable)
	result, err := r.storage.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
