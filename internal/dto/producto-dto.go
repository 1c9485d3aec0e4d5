package dto

type CreateProductoDTO struct {
	TipoSistema        string      `json:"tipo_sistema" validate:"required,tipo_sistema"`
	Descripcion        *string     `json:"descripcion" validate:"omitempty"`
	MedidasAlto        *float64    `json:"medidas_alto" validate:"omitempty,gt=0"`
	MedidasAncho       *float64    `json:"medidas_ancho" validate:"omitempty,gt=0"`
	MedidasProfundidad *float64    `json:"medidas_profundidad" validate:"omitempty,gt=0"`
	Opciones           []OpcionDTO `json:"opciones" validate:"omitempty,dive"`
	ImagenURL          *string     `json:"imagen_url" validate:"omitempty"`
	EsPlantilla        bool        `json:"es_plantilla"`
}

type UpdateProductoDTO struct {
	TipoSistema        *string     `json:"tipo_sistema,omitempty" validate:"omitempty,tipo_sistema"`
	Descripcion        *string     `json:"descripcion,omitempty" validate:"omitempty"`
	MedidasAlto        *float64    `json:"medidas_alto,omitempty" validate:"omitempty,gt=0"`
	MedidasAncho       *float64    `json:"medidas_ancho,omitempty" validate:"omitempty,gt=0"`
	MedidasProfundidad *float64    `json:"medidas_profundidad,omitempty" validate:"omitempty,gt=0"`
	Opciones           []OpcionDTO `json:"opciones,omitempty" validate:"omitempty,dive"`
	ImagenURL          *string     `json:"imagen_url,omitempty" validate:"omitempty"`
	EsPlantilla        *bool       `json:"es_plantilla,omitempty"`
}
