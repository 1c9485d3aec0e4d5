package errors

import "fmt"

var (
	// Tokens
	ErrInvalidSigningMethod = fmt.Errorf("método de firma del token inválido")
	ErrInvalidToken         = fmt.Errorf("token inválido")
	ErrTokenExpired         = fmt.Errorf("el token expiró")
	ErrTokenIsNotRefresh    = fmt.Errorf("el token no es un refresh token")

	// Autenticación
	ErrEmptyAuthHeader    = fmt.Errorf("falta el encabezado de autorización")
	ErrInvalidAuthHeader  = fmt.Errorf("formato de encabezado de autorización inválido")
	ErrInvalidCredentials = fmt.Errorf("credenciales inválidas")
	ErrInstaladorInactivo = fmt.Errorf("el instalador está inactivo")

	// Generales
	ErrNotFound   = fmt.Errorf("registro no encontrado")
	ErrBadRequest = fmt.Errorf("solicitud inválida")

	// Dominio
	ErrTipoSistemaNoSoportado = fmt.Errorf("tipo de sistema no soportado")
	ErrVehiculoNoDisponible   = fmt.Errorf("el vehículo no está disponible")
)

// HttpError lleva el código HTTP y el mensaje para el usuario; Err conserva
// la causa técnica para el log.
type HttpError struct {
	Code    int
	Message string
	Err     error
	Context map[string]interface{}
	Details interface{}
}

func (e *HttpError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *HttpError) Unwrap() error { return e.Err }

func NewHttpError(code int, message string, err error, context map[string]interface{}) *HttpError {
	return &HttpError{
		Code:    code,
		Message: message,
		Err:     err,
		Context: context,
	}
}

type InvalidInputError struct {
	Message string
}

func (e *InvalidInputError) Error() string { return e.Message }

func NewInvalidInputError(format string, args ...interface{}) error {
	return &InvalidInputError{Message: fmt.Sprintf(format, args...)}
}
