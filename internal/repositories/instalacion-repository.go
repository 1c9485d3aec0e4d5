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

const instalacionTable = "instalaciones"
const instalacionFields = `id, codigo, pedido_id, instalador_id, vehiculo_id, fecha, hora_inicio, hora_fin,
	herramientas_requeridas, estado, comentarios, planos_url, firma_cliente, created_at, updated_at`

type InstalacionRepositoryInterface interface {
	GetInstalaciones(ctx context.Context, filter types.Filter) ([]entities.Instalacion, uint64, error)
	FindInstalacion(ctx context.Context, id string) (*entities.Instalacion, error)
	CreateInstalacion(ctx context.Context, payload dto.CreateInstalacionDTO) (*entities.Instalacion, error)
	UpdateInstalacion(ctx context.Context, id string, payload dto.UpdateInstalacionDTO) error
	DeleteInstalacion(ctx context.Context, id string) error
}

type InstalacionRepository struct {
	storage *pgxpool.Pool
}

func NewInstalacionRepository(storage *pgxpool.Pool) InstalacionRepositoryInterface {
	return &InstalacionRepository{storage: storage}
}

func scanInstalacion(row pgx.Row) (*entities.Instalacion, error) {
	var i entities.Instalacion
	err := row.Scan(
		&i.ID,
		&i.Codigo,
		&i.PedidoID,
		&i.InstaladorID,
		&i.VehiculoID,
		&i.Fecha,
		&i.HoraInicio,
		&i.HoraFin,
		&i.HerramientasRequeridas,
		&i.Estado,
		&i.Comentarios,
		&i.PlanosURL,
		&i.FirmaCliente,
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

func (r *InstalacionRepository) GetInstalaciones(ctx context.Context, filter types.Filter) ([]entities.Instalacion, uint64, error) {
	where := ""
	args := []interface{}{}
	if fecha, ok := filter.Filter["fecha"]; ok {
		where = fmt.Sprintf("WHERE i.fecha = $%d", len(args)+1)
		args = append(args, fecha)
	}
	if estado, ok := filter.Filter["estado"]; ok {
		if where == "" {
			where = fmt.Sprintf("WHERE i.estado = $%d", len(args)+1)
		} else {
			where += fmt.Sprintf(" AND i.estado = $%d", len(args)+1)
		}
		args = append(args, estado)
	}

	var total uint64
	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM %s i %s", instalacionTable, where)
	if err := r.storage.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := fmt.Sprintf(`
        SELECT
            i.id, i.codigo, i.pedido_id, i.instalador_id, i.vehiculo_id, i.fecha, i.hora_inicio, i.hora_fin,
            i.herramientas_requeridas, i.estado, i.comentarios, i.planos_url, i.firma_cliente, i.created_at, i.updated_at,
            ins.nombre, v.matricula, v.modelo
        FROM %s i
        LEFT JOIN %s ins ON ins.id = i.instalador_id
        LEFT JOIN %s v ON v.id = i.vehiculo_id
        %s
        ORDER BY i.fecha ASC, i.hora_inicio ASC NULLS LAST
        LIMIT $%d OFFSET $%d
    `, instalacionTable, instaladorTable, vehiculoTable, where, len(args)+1, len(args)+2)
	args = append(args, filter.Limit, filter.Offset)

	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	instalaciones := []entities.Instalacion{}
	for rows.Next() {
		var i entities.Instalacion
		var instaladorNombre *string
		var matricula, modelo *string
		err := rows.Scan(
			&i.ID,
			&i.Codigo,
			&i.PedidoID,
			&i.InstaladorID,
			&i.VehiculoID,
			&i.Fecha,
			&i.HoraInicio,
			&i.HoraFin,
			&i.HerramientasRequeridas,
			&i.Estado,
			&i.Comentarios,
			&i.PlanosURL,
			&i.FirmaCliente,
			&i.CreatedAt,
			&i.UpdatedAt,
			&instaladorNombre,
			&matricula,
			&modelo,
		)
		if err != nil {
			return nil, 0, err
		}
		if i.InstaladorID != nil && instaladorNombre != nil {
			i.Instalador = &entities.Instalador{ID: *i.InstaladorID, Nombre: *instaladorNombre}
		}
		if i.VehiculoID != nil && matricula != nil && modelo != nil {
			i.Vehiculo = &entities.Vehiculo{ID: *i.VehiculoID, Matricula: *matricula, Modelo: *modelo}
		}
		instalaciones = append(instalaciones, i)
	}
	return instalaciones, total, rows.Err()
}

func (r *InstalacionRepository) FindInstalacion(ctx context.Context, id string) (*entities.Instalacion, error) {
	query := fmt.Sprintf("SELECT %s FROM %s WHERE id = $1", instalacionFields, instalacionTable)
	i, err := scanInstalacion(r.storage.QueryRow(ctx, query, id))
	if err != nil {
		return nil, err
	}

	if i.InstaladorID != nil {
		instaladorQuery := fmt.Sprintf("SELECT %s FROM %s WHERE id = $1", instaladorFields, instaladorTable)
		if instalador, err := scanInstalador(r.storage.QueryRow(ctx, instaladorQuery, *i.InstaladorID)); err == nil {
			i.Instalador = instalador
		}
	}
	if i.VehiculoID != nil {
		vehiculoQuery := fmt.Sprintf("SELECT %s FROM %s WHERE id = $1", vehiculoFields, vehiculoTable)
		if vehiculo, err := scanVehiculo(r.storage.QueryRow(ctx, vehiculoQuery, *i.VehiculoID)); err == nil {
			i.Vehiculo = vehiculo
		}
	}
	if i.PedidoID != nil {
		pedidoQuery := fmt.Sprintf("SELECT %s FROM %s WHERE id = $1", pedidoFields, pedidoTable)
		if pedido, err := scanPedido(r.storage.QueryRow(ctx, pedidoQuery, *i.PedidoID)); err == nil {
			i.Pedido = pedido
		}
	}
	return i, nil
}

func (r *InstalacionRepository) CreateInstalacion(ctx context.Context, payload dto.CreateInstalacionDTO) (*entities.Instalacion, error) {
	herramientas := payload.HerramientasRequeridas
	if herramientas == nil {
		herramientas = []string{}
	}

	query := fmt.Sprintf(`
        INSERT INTO %s (codigo, pedido_id, instalador_id, vehiculo_id, fecha, hora_inicio, hora_fin, herramientas_requeridas, comentarios, planos_url)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
        RETURNING %s
    `, instalacionTable, instalacionFields)

	return scanInstalacion(r.storage.QueryRow(ctx, query,
		payload.Codigo,
		payload.PedidoID,
		payload.InstaladorID,
		payload.VehiculoID,
		payload.Fecha,
		payload.HoraInicio,
		payload.HoraFin,
		herramientas,
		payload.Comentarios,
		payload.PlanosURL,
	))
}

func (r *InstalacionRepository) UpdateInstalacion(ctx context.Context, id string, payload dto.UpdateInstalacionDTO) error {
	query := fmt.Sprintf(`
        UPDATE %s SET
            codigo                  = COALESCE($1, codigo),
            pedido_id               = COALESCE($2, pedido_id),
            instalador_id           = COALESCE($3, instalador_id),
            fecha                   = COALESCE($4, fecha),
            hora_inicio             = COALESCE($5, hora_inicio),
            hora_fin                = COALESCE($6, hora_fin),
            herramientas_requeridas = COALESCE($7, herramientas_requeridas),
            estado                  = COALESCE($8, estado),
            comentarios             = COALESCE($9, comentarios),
            planos_url              = COALESCE($10, planos_url),
            firma_cliente           = COALESCE($11, firma_cliente),
            updated_at              = CURRENT_TIMESTAMP
        WHERE id = $12
    `, instalacionTable)

	result, err := r.storage.Exec(ctx, query,
		payload.Codigo,
		payload.PedidoID,
		payload.InstaladorID,
		payload.Fecha,
		payload.HoraInicio,
		payload.HoraFin,
		payload.HerramientasRequeridas,
		payload.Estado,
		payload.Comentarios,
		payload.PlanosURL,
		payload.FirmaCliente,
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

func (r *InstalacionRepository) DeleteInstalacion(ctx context.Context, id string) error {
	query := fmt.Sprintf("DELETE FROM %s WHERE id = $1", instalacionTable)
	result, err := r.storage.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
