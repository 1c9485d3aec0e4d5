package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMedidasVacias(t *testing.T) {
	assert.Empty(t, MedidasVacias(0))
	assert.Empty(t, MedidasVacias(-2))

	medidas := MedidasVacias(3)
	assert.Len(t, medidas, 3)
	for _, pano := range medidas {
		assert.Zero(t, pano.Ancho)
		assert.Zero(t, pano.Alto)
	}
}
