package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndValidateTokens(t *testing.T) {
	svc := NewJWTService("clave-de-prueba", time.Minute*15, time.Hour*24)

	access, refresh, err := svc.GenerateTokens("ins-1", "Martín García")
	require.NoError(t, err)
	require.NotEmpty(t, access)
	require.NotEmpty(t, refresh)

	claims, err := svc.ValidateToken(access)
	require.NoError(t, err)
	assert.Equal(t, "ins-1", claims.InstaladorID)
	assert.Equal(t, "Martín García", claims.Nombre)
	assert.False(t, claims.IsRefreshToken)

	claims, err = svc.ValidateToken(refresh)
	require.NoError(t, err)
	assert.True(t, claims.IsRefreshToken)
}

func TestValidateTokenOtroSecreto(t *testing.T) {
	svc := NewJWTService("clave-a", time.Minute, time.Minute)
	otro := NewJWTService("clave-b", time.Minute, time.Minute)

	access, _, err := svc.GenerateTokens("ins-1", "Martín García")
	require.NoError(t, err)

	_, err = otro.ValidateToken(access)
	assert.Error(t, err)
}

func TestValidateTokenExpirado(t *testing.T) {
	svc := NewJWTService("clave-de-prueba", -time.Minute, -time.Minute)

	access, _, err := svc.GenerateTokens("ins-1", "Martín García")
	require.NoError(t, err)

	_, err = svc.ValidateToken(access)
	assert.Error(t, err)
}

func TestValidateTokenBasura(t *testing.T) {
	svc := NewJWTService("clave-de-prueba", time.Minute, time.Minute)

	_, err := svc.ValidateToken("no.es.jwt")
	assert.Error(t, err)
}
