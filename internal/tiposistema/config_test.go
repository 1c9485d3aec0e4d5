package tiposistema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookupTiposConocidos(t *testing.T) {
	for _, tipo := range []Tipo{Techo, BarandaPostes, BarandaClick, Cerramiento, BarandaEscalera, BarandaBalcon} {
		cfg, ok := Lookup(tipo)
		require.True(t, ok, "tipo %s debería tener configuración", tipo)
		assert.NotEmpty(t, cfg.ArchivoPlantilla)
		assert.NotEmpty(t, cfg.NombreParaPDF)
		assert.NotEmpty(t, cfg.CamposEnPDF)
	}
}

func TestLookupTipoDesconocido(t *testing.T) {
	for _, s := range []string{"", "ventana", "TECHO", "techo ", "baranda"} {
		_, ok := Lookup(Tipo(s))
		assert.False(t, ok, "%q no debería resolver configuración", s)
		assert.False(t, EsValido(s))
	}
}

func TestTraduccionTecho(t *testing.T) {
	cfg, ok := Lookup(Techo)
	require.True(t, ok)

	// El techo mide ancho x largo en la plantilla.
	assert.Equal(t, "ancho", cfg.CamposEnPDF["medidas_ancho"])
	assert.Equal(t, "largo", cfg.CamposEnPDF["medidas_alto"])
	assert.Equal(t, "Techo.pdf", cfg.ArchivoPlantilla)
}

func TestCamposAdicionalesTienenTraduccion(t *testing.T) {
	// Todo campo adicional declarado debe poder volcarse al PDF.
	for tipo, cfg := range configs {
		for _, campo := range cfg.CamposAdicionales {
			_, ok := cfg.CamposEnPDF[campo]
			assert.True(t, ok, "tipo %s: campo %s sin traducción a PDF", tipo, campo)
		}
	}
}

func TestTipos(t *testing.T) {
	assert.Len(t, Tipos(), 6)
}
