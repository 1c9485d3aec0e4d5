package customvalidator

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newValidator(t *testing.T) *validator.Validate {
	t.Helper()
	v := validator.New()
	require.NoError(t, RegisterCustomValidations(v))
	return v
}

func TestTipoSistema(t *testing.T) {
	v := newValidator(t)
	type payload struct {
		Tipo string `validate:"tipo_sistema"`
	}

	assert.NoError(t, v.Struct(payload{Tipo: "techo"}))
	assert.NoError(t, v.Struct(payload{Tipo: "baranda_click"}))
	assert.Error(t, v.Struct(payload{Tipo: "pergola"}))
	assert.Error(t, v.Struct(payload{Tipo: "TECHO"}))
	assert.Error(t, v.Struct(payload{Tipo: ""}))
}

func TestMatricula(t *testing.T) {
	v := newValidator(t)
	type payload struct {
		Matricula string `validate:"matricula"`
	}

	// Formato viejo y Mercosur, con o sin espacios.
	for _, ok := range []string{"ABC123", "ABC 123", "AB123CD", "AB 123 CD"} {
		assert.NoError(t, v.Struct(payload{Matricula: ok}), ok)
	}
	for _, mala := range []string{"abc123", "A123BC", "ABCD123", "AB1234CD", ""} {
		assert.Error(t, v.Struct(payload{Matricula: mala}), mala)
	}
}

func TestHora(t *testing.T) {
	v := newValidator(t)
	type payload struct {
		Hora string `validate:"hora"`
	}

	for _, ok := range []string{"00:00", "09:30", "23:59"} {
		assert.NoError(t, v.Struct(payload{Hora: ok}), ok)
	}
	for _, mala := range []string{"24:00", "9:30", "12:60", "12h30", ""} {
		assert.Error(t, v.Struct(payload{Hora: mala}), mala)
	}
}
