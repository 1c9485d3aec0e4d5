package pdf

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const formTecho = `{
	"header": {"source": "Techo.pdf", "version": "pdfcpu"},
	"forms": [
		{
			"textfield": [
				{"pages": [1], "id": "30", "name": "ancho", "value": "", "locked": false},
				{"pages": [1], "id": "31", "name": "largo", "value": "", "locked": false},
				{"pages": [1], "id": "32", "name": "pendiente", "value": "10%", "locked": false}
			],
			"checkbox": [
				{"pages": [1], "id": "40", "name": "riesgo_anclaje", "value": false}
			]
		}
	]
}`

func decodeTextfields(t *testing.T, raw []byte) map[string]string {
	t.Helper()
	var doc struct {
		Forms []struct {
			Textfield []struct {
				Name  string `json:"name"`
				Value string `json:"value"`
			} `json:"textfield"`
		} `json:"forms"`
	}
	require.NoError(t, json.Unmarshal(raw, &doc))
	out := map[string]string{}
	for _, f := range doc.Forms {
		for _, tf := range f.Textfield {
			out[tf.Name] = tf.Value
		}
	}
	return out
}

func TestMergeCamposEscribeValores(t *testing.T) {
	out, omitidos, err := mergeCampos([]byte(formTecho), map[string]string{
		"ancho": "1000",
		"largo": "1200",
	})
	require.NoError(t, err)
	assert.Empty(t, omitidos)

	campos := decodeTextfields(t, out)
	assert.Equal(t, "1000", campos["ancho"])
	assert.Equal(t, "1200", campos["largo"])
}

func TestMergeCamposConservaDefaults(t *testing.T) {
	// Un campo de la plantilla sin valor en el mapa mantiene su default.
	out, _, err := mergeCampos([]byte(formTecho), map[string]string{"ancho": "800"})
	require.NoError(t, err)

	campos := decodeTextfields(t, out)
	assert.Equal(t, "10%", campos["pendiente"])
}

func TestMergeCamposOmiteDesconocidos(t *testing.T) {
	out, omitidos, err := mergeCampos([]byte(formTecho), map[string]string{
		"ancho":          "1000",
		"campo_fantasma": "x",
		"otro_fantasma":  "y",
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"campo_fantasma", "otro_fantasma"}, omitidos)

	campos := decodeTextfields(t, out)
	assert.Equal(t, "1000", campos["ancho"])
	_, existe := campos["campo_fantasma"]
	assert.False(t, existe)
}

func TestMergeCamposJSONInvalido(t *testing.T) {
	_, _, err := mergeCampos([]byte("{no es json"), map[string]string{"a": "b"})
	assert.Error(t, err)
}
