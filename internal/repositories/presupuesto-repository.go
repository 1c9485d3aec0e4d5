package repositories

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/gonzalolionelprieto/cerramientosxya/internal/dto"
	"github.com/gonzalolionelprieto/cerramientosxya/internal/entities"
	"github.com/gonzalolionelprieto/cerramientosxya/pkg/constants"
	apperrors "github.com/gonzalolionelprieto/cerramientosxya/pkg/errors"
	"github.com/gonzalolionelprieto/cerramientosxya/pkg/types"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const presupuestoTable = "presupuestos"
const presupuestoFields = `id, cliente_id, producto_plantilla_id, tipo_sistema_presupuesto, cantidad_panos, medidas,
	materiales, opciones_adicionales, campos_adicionales, precio_total, estado, imagen_url, documento_url,
	composicion, accesorios_incluidos, trabajos_incluidos, forma_pago, tiempo_estimado, validez_presupuesto,
	aclaraciones, incluye_riesgo_anclaje, garantia, created_at, updated_at`

type PresupuestoRepositoryInterface interface {
	GetPresupuestos(ctx context.Context, filter types.Filter) ([]entities.Presupuesto, uint64, error)
	FindPresupuesto(ctx context.Context, id string) (*entities.Presupuesto, error)
	// SubmitPresupuesto resuelve el cliente (busca por nombre exacto y lo crea
	// si no existe) e inserta el presupuesto, todo en una transacción. El bool
	// indica si hubo que crear el cliente.
	SubmitPresupuesto(ctx context.Context, payload dto.CreatePresupuestoDTO) (*entities.Presupuesto, bool, error)
	UpdatePresupuesto(ctx context.Context, id string, payload dto.UpdatePresupuestoDTO) error
	SetDocumentoURL(ctx context.Context, id string, url string) error
	DeletePresupuesto(ctx context.Context, id string) error
}

type PresupuestoRepository struct {
	storage *pgxpool.Pool
}

func NewPresupuestoRepository(storage *pgxpool.Pool) PresupuestoRepositoryInterface {
	return &PresupuestoRepository{storage: storage}
}

func scanPresupuesto(row pgx.Row) (*entities.Presupuesto, error) {
	var p entities.Presupuesto
	var medidas, opciones, campos []byte
	err := row.Scan(
		&p.ID,
		&p.ClienteID,
		&p.ProductoPlantillaID,
		&p.TipoSistema,
		&p.CantidadPanos,
		&medidas,
		&p.Materiales,
		&opciones,
		&campos,
		&p.PrecioTotal,
		&p.Estado,
		&p.ImagenURL,
		&p.DocumentoURL,
		&p.Composicion,
		&p.AccesoriosIncluidos,
		&p.TrabajosIncluidos,
		&p.FormaPago,
		&p.TiempoEstimado,
		&p.ValidezPresupuesto,
		&p.Aclaraciones,
		&p.IncluyeRiesgoAnclaje,
		&p.Garantia,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	if len(medidas) > 0 {
		if err := json.Unmarshal(medidas, &p.Medidas); err != nil {
			return nil, fmt.Errorf("medidas corruptas en presupuesto %s: %w", p.ID, err)
		}
	}
	if len(opciones) > 0 {
		if err := json.Unmarshal(opciones, &p.OpcionesAdicionales); err != nil {
			return nil, fmt.Errorf("opciones corruptas en presupuesto %s: %w", p.ID, err)
		}
	}
	if len(campos) > 0 {
		if err := json.Unmarshal(campos, &p.CamposAdicionales); err != nil {
			return nil, fmt.Errorf("campos corruptos en presupuesto %s: %w", p.ID, err)
		}
	}
	return &p, nil
}

func (r *PresupuestoRepository) GetPresupuestos(ctx context.Context, filter types.Filter) ([]entities.Presupuesto, uint64, error) {
	where := ""
	args := []interface{}{}
	if estado, ok := filter.Filter["estado"]; ok {
		where = "WHERE estado = $1"
		args = append(args, estado)
	}

	var total uint64
	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM %s %s", presupuestoTable, where)
	if err := r.storage.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := fmt.Sprintf(
		"SELECT %s FROM %s %s ORDER BY created_at DESC LIMIT $%d OFFSET $%d",
		presupuestoFields, presupuestoTable, where, len(args)+1, len(args)+2,
	)
	args = append(args, filter.Limit, filter.Offset)

	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	presupuestos := []entities.Presupuesto{}
	for rows.Next() {
		p, err := scanPresupuesto(rows)
		if err != nil {
			return nil, 0, err
		}
		presupuestos = append(presupuestos, *p)
	}
	return presupuestos, total, rows.Err()
}

func (r *PresupuestoRepository) FindPresupuesto(ctx context.Context, id string) (*entities.Presupuesto, error) {
	query := fmt.Sprintf("SELECT %s FROM %s WHERE id = $1", presupuestoFields, presupuestoTable)
	p, err := scanPresupuesto(r.storage.QueryRow(ctx, query, id))
	if err != nil {
		return nil, err
	}

	clienteQuery := fmt.Sprintf("SELECT %s FROM %s WHERE id = $1", clienteFields, clienteTable)
	cliente, err := scanCliente(r.storage.QueryRow(ctx, clienteQuery, p.ClienteID))
	if err == nil {
		p.Cliente = cliente
	}
	return p, nil
}

// resolverCliente devuelve el id del cliente del payload y si hubo que crear
// la fila. Con cliente_id verifica que exista; con nombre busca por igualdad
// exacta y crea la fila si no hay resultado. La búsqueda y el insert no están
// protegidos por ninguna restricción de unicidad: dos envíos simultáneos para
// un cliente nuevo con el mismo nombre pueden crear dos filas.
func resolverCliente(ctx context.Context, q querier, payload dto.CreatePresupuestoDTO) (string, bool, error) {
	if payload.ClienteID != nil {
		var id string
		err := q.QueryRow(ctx,
			fmt.Sprintf("SELECT id FROM %s WHERE id = $1", clienteTable),
			*payload.ClienteID,
		).Scan(&id)
		if err == pgx.ErrNoRows {
			return "", false, apperrors.ErrNotFound
		}
		return id, false, err
	}

	var id string
	err := q.QueryRow(ctx,
		fmt.Sprintf("SELECT id FROM %s WHERE nombre = $1 ORDER BY created_at ASC LIMIT 1", clienteTable),
		payload.ClienteNombre,
	).Scan(&id)
	if err == nil {
		return id, false, nil
	}
	if err != pgx.ErrNoRows {
		return "", false, err
	}

	err = q.QueryRow(ctx,
		fmt.Sprintf("INSERT INTO %s (nombre) VALUES ($1) RETURNING id", clienteTable),
		payload.ClienteNombre,
	).Scan(&id)
	return id, err == nil, err
}

func (r *PresupuestoRepository) SubmitPresupuesto(ctx context.Context, payload dto.CreatePresupuestoDTO) (*entities.Presupuesto, bool, error) {
	medidas, err := json.Marshal(payload.Medidas)
	if err != nil {
		return nil, false, err
	}
	opciones, err := json.Marshal(payload.OpcionesAdicionales)
	if err != nil {
		return nil, false, err
	}
	campos, err := json.Marshal(payload.CamposAdicionales)
	if err != nil {
		return nil, false, err
	}

	estado := payload.Estado
	if estado == "" {
		estado = constants.PresupuestoPendiente
	}

	var presupuesto *entities.Presupuesto
	var clienteCreado bool
	err = WithTx(ctx, r.storage, func(tx pgx.Tx) error {
		clienteID, creado, err := resolverCliente(ctx, tx, payload)
		if err != nil {
			return fmt.Errorf("no se pudo resolver el cliente: %w", err)
		}
		clienteCreado = creado

		query := fmt.Sprintf(`
            INSERT INTO %s (
                cliente_id, producto_plantilla_id, tipo_sistema_presupuesto, cantidad_panos, medidas,
                materiales, opciones_adicionales, campos_adicionales, precio_total, estado, imagen_url,
                composicion, accesorios_incluidos, trabajos_incluidos, forma_pago, tiempo_estimado,
                validez_presupuesto, aclaraciones, incluye_riesgo_anclaje, garantia
            )
            VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20)
            RETURNING %s
        `, presupuestoTable, presupuestoFields)

		presupuesto, err = scanPresupuesto(tx.QueryRow(ctx, query,
			clienteID,
			payload.ProductoPlantillaID,
			payload.TipoSistema,
			payload.CantidadPanos,
			medidas,
			payload.Materiales,
			opciones,
			campos,
			payload.PrecioTotal,
			estado,
			payload.ImagenURL,
			payload.Composicion,
			payload.AccesoriosIncluidos,
			payload.TrabajosIncluidos,
			payload.FormaPago,
			payload.TiempoEstimado,
			payload.ValidezPresupuesto,
			payload.Aclaraciones,
			payload.IncluyeRiesgoAnclaje,
			payload.Garantia,
		))
		return err
	})
	if err != nil {
		return nil, false, err
	}
	return presupuesto, clienteCreado, nil
}

func (r *PresupuestoRepository) UpdatePresupuesto(ctx context.Context, id string, payload dto.UpdatePresupuestoDTO) error {
	var medidas, opciones, campos []byte
	var err error
	if payload.Medidas != nil {
		if medidas, err = json.Marshal(payload.Medidas); err != nil {
			return err
		}
	}
	if payload.OpcionesAdicionales != nil {
		if opciones, err = json.Marshal(payload.OpcionesAdicionales); err != nil {
			return err
		}
	}
	if payload.CamposAdicionales != nil {
		if campos, err = json.Marshal(payload.CamposAdicionales); err != nil {
			return err
		}
	}

	query := fmt.Sprintf(`
        UPDATE %s SET
            tipo_sistema_presupuesto = COALESCE($1, tipo_sistema_presupuesto),
            cantidad_panos           = COALESCE($2, cantidad_panos),
            medidas                  = COALESCE($3, medidas),
            materiales               = COALESCE($4, materiales),
            opciones_adicionales     = COALESCE($5, opciones_adicionales),
            campos_adicionales       = COALESCE($6, campos_adicionales),
            precio_total             = COALESCE($7, precio_total),
            estado                   = COALESCE($8, estado),
            imagen_url               = COALESCE($9, imagen_url),
            composicion              = COALESCE($10, composicion),
            accesorios_incluidos     = COALESCE($11, accesorios_incluidos),
            trabajos_incluidos       = COALESCE($12, trabajos_incluidos),
            forma_pago               = COALESCE($13, forma_pago),
            tiempo_estimado          = COALESCE($14, tiempo_estimado),
            validez_presupuesto      = COALESCE($15, validez_presupuesto),
            aclaraciones             = COALESCE($16, aclaraciones),
            incluye_riesgo_anclaje   = COALESCE($17, incluye_riesgo_anclaje),
            garantia                 = COALESCE($18, garantia),
            updated_at               = CURRENT_TIMESTAMP
        WHERE id = $19
    `, presupuestoTable)

	result, err := r.storage.Exec(ctx, query,
		payload.TipoSistema,
		payload.CantidadPanos,
		medidas,
		payload.Materiales,
		opciones,
		campos,
		payload.PrecioTotal,
		payload.Estado,
		payload.ImagenURL,
		payload.Composicion,
		payload.AccesoriosIncluidos,
		payload.TrabajosIncluidos,
		payload.FormaPago,
		payload.TiempoEstimado,
		payload.ValidezPresupuesto,
		payload.Aclaraciones,
		payload.IncluyeRiesgoAnclaje,
		payload.Garantia,
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

func (r *PresupuestoRepository) SetDocumentoURL(ctx context.Context, id string, url string) error {
	query := fmt.Sprintf("UPDATE %s SET documento_url = $1, updated_at = CURRENT_TIMESTAMP WHERE id = $2", presupuestoTable)
	result, err := r.storage.Exec(ctx, query, url, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PresupuestoRepository) DeletePresupuesto(ctx context.Context, id string) error {
	query := fmt.Sprintf("DELETE FROM %s WHERE id = $1", presupuestoTable)
	result, err := r.storage.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
