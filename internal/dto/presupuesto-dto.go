package dto

// PanoDTO es la medida de un paño. Ancho y alto en milímetros, siempre
// positivos: cero o negativo bloquea el envío.
type PanoDTO struct {
	Ancho float64 `json:"ancho" validate:"required,gt=0"`
	Alto  float64 `json:"alto" validate:"required,gt=0"`
}

// MedidasVacias arma la sub-lista de medidas para una cantidad de paños
// dada: exactamente n entradas vacías, descartando cualquier valor previo.
func MedidasVacias(n int) []PanoDTO {
	if n <= 0 {
		return []PanoDTO{}
	}
	return make([]PanoDTO, n)
}

// CreatePresupuestoDTO es el esquema canónico del formulario de presupuesto:
// medidas como lista de paños y precio_total como campo de dinero.
type CreatePresupuestoDTO struct {
	// Cliente por id, o por nombre para buscarlo/crearlo al enviar.
	ClienteID     *string `json:"cliente_id" validate:"omitempty,uuid4"`
	ClienteNombre string  `json:"cliente_nombre" validate:"required_without=ClienteID"`

	TipoSistema   string    `json:"tipo_sistema_presupuesto" validate:"required,tipo_sistema"`
	CantidadPanos int       `json:"cantidad_panos" validate:"required,gt=0"`
	Medidas       []PanoDTO `json:"medidas" validate:"required,min=1,dive"`

	ProductoPlantillaID *string           `json:"producto_plantilla_id" validate:"omitempty,uuid4"`
	Materiales          *string           `json:"materiales" validate:"omitempty"`
	OpcionesAdicionales []OpcionDTO       `json:"opciones_adicionales" validate:"omitempty,dive"`
	CamposAdicionales   map[string]string `json:"campos_adicionales" validate:"omitempty"`

	PrecioTotal float64 `json:"precio_total" validate:"required,gt=0"`
	Estado      string  `json:"estado" validate:"omitempty,oneof=pendiente aprobado rechazado"`

	ImagenURL            *string `json:"imagen_url" validate:"omitempty"`
	Composicion          *string `json:"composicion" validate:"omitempty"`
	AccesoriosIncluidos  *string `json:"accesorios_incluidos" validate:"omitempty"`
	TrabajosIncluidos    *string `json:"trabajos_incluidos" validate:"omitempty"`
	FormaPago            *string `json:"forma_pago" validate:"omitempty"`
	TiempoEstimado       *string `json:"tiempo_estimado" validate:"omitempty"`
	ValidezPresupuesto   *string `json:"validez_presupuesto" validate:"omitempty"`
	Aclaraciones         *string `json:"aclaraciones" validate:"omitempty"`
	IncluyeRiesgoAnclaje bool    `json:"incluye_riesgo_anclaje"`
	Garantia             *string `json:"garantia" validate:"omitempty"`
}

type UpdatePresupuestoDTO struct {
	TipoSistema         *string           `json:"tipo_sistema_presupuesto,omitempty" validate:"omitempty,tipo_sistema"`
	CantidadPanos       *int              `json:"cantidad_panos,omitempty" validate:"omitempty,gt=0"`
	Medidas             []PanoDTO         `json:"medidas,omitempty" validate:"omitempty,min=1,dive"`
	Materiales          *string           `json:"materiales,omitempty" validate:"omitempty"`
	OpcionesAdicionales []OpcionDTO       `json:"opciones_adicionales,omitempty" validate:"omitempty,dive"`
	CamposAdicionales   map[string]string `json:"campos_adicionales,omitempty" validate:"omitempty"`
	PrecioTotal         *float64          `json:"precio_total,omitempty" validate:"omitempty,gt=0"`
	Estado              *string           `json:"estado,omitempty" validate:"omitempty,oneof=pendiente aprobado rechazado"`

	ImagenURL            *string `json:"imagen_url,omitempty" validate:"omitempty"`
	Composicion          *string `json:"composicion,omitempty" validate:"omitempty"`
	AccesoriosIncluidos  *string `json:"accesorios_incluidos,omitempty" validate:"omitempty"`
	TrabajosIncluidos    *string `json:"trabajos_incluidos,omitempty" validate:"omitempty"`
	FormaPago            *string `json:"forma_pago,omitempty" validate:"omitempty"`
	TiempoEstimado       *string `json:"tiempo_estimado,omitempty" validate:"omitempty"`
	ValidezPresupuesto   *string `json:"validez_presupuesto,omitempty" validate:"omitempty"`
	Aclaraciones         *string `json:"aclaraciones,omitempty" validate:"omitempty"`
	IncluyeRiesgoAnclaje *bool   `json:"incluye_riesgo_anclaje,omitempty"`
	Garantia             *string `json:"garantia,omitempty" validate:"omitempty"`
}
