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

const vehiculoTable = "vehiculos"
const vehiculoFields = "id, matricula, modelo, disponible, ubicacion_actual, conductor_id, created_at, updated_at"

type VehiculoRepositoryInterface interface {
	GetVehiculos(ctx context.Context, filter types.Filter) ([]entities.Vehiculo, uint64, error)
	FindVehiculo(ctx context.Context, id string) (*entities.Vehiculo, error)
	CreateVehiculo(ctx context.Context, payload dto.CreateVehiculoDTO) (*entities.Vehiculo, error)
	UpdateVehiculo(ctx context.Context, id string, payload dto.UpdateVehiculoDTO) error
	DeleteVehiculo(ctx context.Context, id string) error
}

type VehiculoRepository struct {
	storage *pgxpool.Pool
}

func NewVehiculoRepository(storage *pgxpool.Pool) VehiculoRepositoryInterface {
	return &VehiculoRepository{storage: storage}
}

func scanVehiculo(row pgx.Row) (*entities.Vehiculo, error) {
	var v entities.Vehiculo
	err := row.Scan(
		&v.ID,
		&v.Matricula,
		&v.Modelo,
		&v.Disponible,
		&v.UbicacionActual,
		&v.ConductorID,
		&v.CreatedAt,
		&v.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &v, nil
}

func (r *VehiculoRepository) GetVehiculos(ctx context.Context, filter types.Filter) ([]entities.Vehiculo, uint64, error) {
	where := ""
	if disponible, ok := filter.Filter["disponible"]; ok {
		if disponible == "true" {
			where = "WHERE v.disponible = TRUE"
		} else {
			where = "WHERE v.disponible = FALSE"
		}
	}

	var total uint64
	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM %s v %s", vehiculoTable, where)
	if err := r.storage.QueryRow(ctx, countQuery).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := fmt.Sprintf(`
        SELECT
            v.id, v.matricula, v.modelo, v.disponible, v.ubicacion_actual, v.conductor_id, v.created_at, v.updated_at,
            i.nombre
        FROM %s v
        LEFT JOIN %s i ON i.id = v.conductor_id
        %s
        ORDER BY v.matricula ASC
        LIMIT $1 OFFSET $2
    `, vehiculoTable, instaladorTable, where)

	rows, err := r.storage.Query(ctx, query, filter.Limit, filter.Offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	vehiculos := []entities.Vehiculo{}
	for rows.Next() {
		var v entities.Vehiculo
		var conductorNombre *string
		err := rows.Scan(
			&v.ID,
			&v.Matricula,
			&v.Modelo,
			&v.Disponible,
			&v.UbicacionActual,
			&v.ConductorID,
			&v.CreatedAt,
			&v.UpdatedAt,
			&conductorNombre,
		)
		if err != nil {
			return nil, 0, err
		}
		if v.ConductorID != nil && conductorNombre != nil {
			v.Conductor = &entities.Instalador{ID: *v.ConductorID, Nombre: *conductorNombre}
		}
		vehiculos = append(vehiculos, v)
	}
	return vehiculos, total, rows.Err()
}

func (r *VehiculoRepository) FindVehiculo(ctx context.Context, id string) (*entities.Vehiculo, error) {
	query := fmt.Sprintf("SELECT %s FROM %s WHERE id = $1", vehiculoFields, vehiculoTable)
	return scanVehiculo(r.storage.QueryRow(ctx, query, id))
}

func (r *VehiculoRepository) CreateVehiculo(ctx context.Context, payload dto.CreateVehiculoDTO) (*entities.Vehiculo, error) {
	query := fmt.Sprintf(`
        INSERT INTO %s (matricula, modelo, ubicacion_actual, conductor_id)
        VALUES ($1, $2, $3, $4)
        RETURNING %s
    `, vehiculoTable, vehiculoFields)

	return scanVehiculo(r.storage.QueryRow(ctx, query,
		payload.Matricula,
		payload.Modelo,
		payload.UbicacionActual,
		payload.ConductorID,
	))
}

func (r *VehiculoRepository) UpdateVehiculo(ctx context.Context, id string, payload dto.UpdateVehiculoDTO) error {
	query := fmt.Sprintf(`
        UPDATE %s SET
            matricula        = COALESCE($1, matricula),
            modelo           = COALESCE($2, modelo),
            disponible       = COALESCE($3, disponible),
            ubicacion_actual = COALESCE($4, ubicacion_actual),
            conductor_id     = COALESCE($5, conductor_id),
            updated_at       = CURRENT_TIMESTAMP
        WHERE id = $6
    `, vehiculoTable)

	result, err := r.storage.Exec(ctx, query,
		payload.Matricula,
		payload.Modelo,
		payload.Disponible,
		payload.UbicacionActual,
		payload.ConductorID,
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

func (r *VehiculoRepository) DeleteVehiculo(ctx context.Context, id string) error {
	query := fmt.Sprintf("DELETE FROM %s WHERE id = $1", vehiculoTable)
	result, err := r.storage.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
