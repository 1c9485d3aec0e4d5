package customvalidator

import (
	"regexp"

	"github.com/gonzalolionelprieto/cerramientosxya/internal/tiposistema"

	"github.com/go-playground/validator/v10"
)

// RegisterCustomValidations registra las reglas propias del dominio en el
// validador compartido.
func RegisterCustomValidations(v *validator.Validate) error {
	if err := v.RegisterValidation("tipo_sistema", isTipoSistema); err != nil {
		return err
	}
	if err := v.RegisterValidation("matricula", isMatricula); err != nil {
		return err
	}
	if err := v.RegisterValidation("hora", isHora); err != nil {
		return err
	}
	return nil
}

func isTipoSistema(fl validator.FieldLevel) bool {
	return tiposistema.EsValido(fl.Field().String())
}

// Matrícula argentina: formato viejo AAA123 o Mercosur AA123BB.
func isMatricula(fl validator.FieldLevel) bool {
	re := regexp.MustCompile(`^([A-Z]{3}\s?\d{3}|[A-Z]{2}\s?\d{3}\s?[A-Z]{2})$`)
	return re.MatchString(fl.Field().String())
}

func isHora(fl validator.FieldLevel) bool {
	re := regexp.MustCompile(`^([01]\d|2[0-3]):[0-5]\d$`)
	return re.MatchString(fl.Field().String())
}
