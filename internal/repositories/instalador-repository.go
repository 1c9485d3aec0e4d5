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

const instaladorTable = "instaladores"
const instaladorFields = "id, nombre, usuario, password_hash, email, telefono, especialidad, activo, created_at, updated_at"

type InstaladorRepositoryInterface interface {
	GetInstaladores(ctx context.Context, filter types.Filter) ([]entities.Instalador, uint64, error)
	FindInstalador(ctx context.Context, id string) (*entities.Instalador, error)
	FindInstaladorByUsuario(ctx context.Context, usuario string) (*entities.Instalador, error)
	CreateInstalador(ctx context.Context, payload dto.CreateInstaladorDTO, passwordHash *string) (*entities.Instalador, error)
	UpdateInstalador(ctx context.Context, id string, payload dto.UpdateInstaladorDTO, passwordHash *string) error
	// DeactivateInstalador marca activo = false; las filas nunca se borran
	// porque las instalaciones históricas las referencian.
	DeactivateInstalador(ctx context.Context, id string) error
}

type InstaladorRepository struct {
	storage *pgxpool.Pool
}

func NewInstaladorRepository(storage *pgxpool.Pool) InstaladorRepositoryInterface {
	return &InstaladorRepository{storage: storage}
}

func scanInstalador(row pgx.Row) (*entities.Instalador, error) {
	var i entities.Instalador
	err := row.Scan(
		&i.ID,
		&i.Nombre,
		&i.Usuario,
		&i.PasswordHash,
		&i.Email,
		&i.Telefono,
		&i.Especialidad,
		&i.Activo,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &i, nil
}

func (r *InstaladorRepository) GetInstaladores(ctx context.Context, filter types.Filter) ([]entities.Instalador, uint64, error) {
	where := "WHERE activo = TRUE"
	if activo, ok := filter.Filter["activo"]; ok && activo == "false" {
		where = "WHERE activo = FALSE"
	}

	var total uint64
	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM %s %s", instaladorTable, where)
	if err := r.storage.QueryRow(ctx, countQuery).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := fmt.Sprintf(
		"SELECT %s FROM %s %s ORDER BY nombre ASC LIMIT $1 OFFSET $2",
		instaladorFields, instaladorTable, where,
	)
	rows, err := r.storage.Query(ctx, query, filter.Limit, filter.Offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	instaladores := []entities.Instalador{}
	for rows.Next() {
		i, err := scanInstalador(rows)
		if err != nil {
			return nil, 0, err
		}
		instaladores = append(instaladores, *i)
	}
	return instaladores, total, rows.Err()
}

func (r *InstaladorRepository) FindInstalador(ctx context.Context, id string) (*entities.Instalador, error) {
	query := fmt.Sprintf("SELECT %s FROM %s WHERE id = $1", instaladorFields, instaladorTable)
	return scanInstalador(r.storage.QueryRow(ctx, query, id))
}

func (r *InstaladorRepository) FindInstaladorByUsuario(ctx context.Context, usuario string) (*entities.Instalador, error) {
	query := fmt.Sprintf("SELECT %s FROM %s WHERE usuario = $1", instaladorFields, instaladorTable)
	return scanInstalador(r.storage.QueryRow(ctx, query, usuario))
}

func (r *InstaladorRepository) CreateInstalador(ctx context.Context, payload dto.CreateInstaladorDTO, passwordHash *string) (*entities.Instalador, error) {
	query := fmt.Sprintf(`
        INSERT INTO %s (nombre, usuario, password_hash, email, telefono, especialidad)
        VALUES ($1, $2, $3, $4, $5, $6)
        RETURNING %s
    `, instaladorTable, instaladorFields)

	return scanInstalador(r.storage.QueryRow(ctx, query,
		payload.Nombre,
		payload.Usuario,
		passwordHash,
		payload.Email,
		payload.Telefono,
		payload.Especialidad,
	))
}

func (r *InstaladorRepository) UpdateInstalador(ctx context.Context, id string, payload dto.UpdateInstaladorDTO, passwordHash *string) error {
	query := fmt.Sprintf(`
        UPDATE %s SET
            nombre        = COALESCE($1, nombre),
            usuario       = COALESCE($2, usuario),
            password_hash = COALESCE($3, password_hash),
            email         = COALESCE($4, email),
            telefono      = COALESCE($5, telefono),
            especialidad  = COALESCE($6, especialidad),
            activo        = COALESCE($7, activo),
            updated_at    = CURRENT_TIMESTAMP
        WHERE id = $8
    `, instaladorTable)

	result, err := r.storage.Exec(ctx, query,
		payload.Nombre,
		payload.Usuario,
		passwordHash,
		payload.Email,
		payload.Telefono,
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

func (r *InstaladorRepository) DeactivateInstalador(ctx context.Context, id string) error {
	query := fmt.Sprintf("UPDATE %s SET activo = FALSE, updated_at = CURRENT_TIMESTAMP WHERE id = $1", instaladorTable)
	result, err := r.storage.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
