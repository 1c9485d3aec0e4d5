package repositories

import (
	"context"
	"fmt"

	apperrors "github.com/gonzalolionelprieto/cerramientosxya/pkg/errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type LogisticaRepositoryInterface interface {
	// AsignarVehiculo fija el vehículo de la instalación, marca el nuevo como
	// no disponible y libera el anterior si lo había, todo en una transacción.
	AsignarVehiculo(ctx context.Context, instalacionID string, vehiculoID string) error
}

type LogisticaRepository struct {
	storage *pgxpool.Pool
}

func NewLogisticaRepository(storage *pgxpool.Pool) LogisticaRepositoryInterface {
	return &LogisticaRepository{storage: storage}
}

func (r *LogisticaRepository) AsignarVehiculo(ctx context.Context, instalacionID string, vehiculoID string) error {
	return WithTx(ctx, r.storage, func(tx pgx.Tx) error {
		var anteriorID *string
		err := tx.QueryRow(ctx,
			fmt.Sprintf("SELECT vehiculo_id FROM %s WHERE id = $1 FOR UPDATE", instalacionTable),
			instalacionID,
		).Scan(&anteriorID)
		if err != nil {
			if err == pgx.ErrNoRows {
				return apperrors.ErrNotFound
			}
			return err
		}

		var disponible bool
		err = tx.QueryRow(ctx,
			fmt.Sprintf("SELECT disponible FROM %s WHERE id = $1 FOR UPDATE", vehiculoTable),
			vehiculoID,
		).Scan(&disponible)
		if err != nil {
			if err == pgx.ErrNoRows {
				return apperrors.ErrNotFound
			}
			return err
		}
		if !disponible {
			if anteriorID == nil || *anteriorID != vehiculoID {
				return apperrors.ErrVehiculoNoDisponible
			}
			// Reasignar el mismo vehículo es un no-op válido.
			return nil
		}

		_, err = tx.Exec(ctx,
			fmt.Sprintf("UPDATE %s SET vehiculo_id = $1, updated_at = CURRENT_TIMESTAMP WHERE id = $2", instalacionTable),
			vehiculoID, instalacionID,
		)
		if err != nil {
			return err
		}

		_, err = tx.Exec(ctx,
			fmt.Sprintf("UPDATE %s SET disponible = FALSE, updated_at = CURRENT_TIMESTAMP WHERE id = $1", vehiculoTable),
			vehiculoID,
		)
		if err != nil {
			return err
		}

		if anteriorID != nil && *anteriorID != vehiculoID {
			_, err = tx.Exec(ctx,
				fmt.Sprintf("UPDATE %s SET disponible = TRUE, updated_at = CURRENT_TIMESTAMP WHERE id = $1", vehiculoTable),
				*anteriorID,
			)
			if err != nil {
				return err
			}
		}
		return nil
	})
}
