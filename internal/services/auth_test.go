package services

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/gonzalolionelprieto/cerramientosxya/internal/dto"
	"github.com/gonzalolionelprieto/cerramientosxya/internal/entities"
	apperrors "github.com/gonzalolionelprieto/cerramientosxya/pkg/errors"
	"github.com/gonzalolionelprieto/cerramientosxya/pkg/service"
	"github.com/gonzalolionelprieto/cerramientosxya/pkg/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

type fakeInstaladorRepo struct {
	instalador *entities.Instalador
	findErr    error
}

func (f *fakeInstaladorRepo) GetInstaladores(_ context.Context, _ types.Filter) ([]entities.Instalador, uint64, error) {
	return nil, 0, nil
}

func (f *fakeInstaladorRepo) FindInstalador(_ context.Context, _ string) (*entities.Instalador, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	return f.instalador, nil
}

func (f *fakeInstaladorRepo) FindInstaladorByUsuario(_ context.Context, _ string) (*entities.Instalador, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	return f.instalador, nil
}

func (f *fakeInstaladorRepo) CreateInstalador(_ context.Context, _ dto.CreateInstaladorDTO, _ *string) (*entities.Instalador, error) {
	return f.instalador, nil
}

func (f *fakeInstaladorRepo) UpdateInstalador(_ context.Context, _ string, _ dto.UpdateInstaladorDTO, _ *string) error {
	return nil
}

func (f *fakeInstaladorRepo) DeactivateInstalador(_ context.Context, _ string) error { return nil }

func instaladorConClave(t *testing.T, password string, activo bool) *entities.Instalador {
	t.Helper()
	hashBytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	hash := string(hashBytes)
	usuario := "mgarcia"
	return &entities.Instalador{
		ID:           "ins-1",
		Nombre:       "Martín García",
		Usuario:      &usuario,
		PasswordHash: &hash,
		Activo:       activo,
	}
}

func newAuthService(repo *fakeInstaladorRepo) *AuthService {
	jwtSvc := service.NewJWTService("clave-de-prueba", time.Minute*15, time.Hour*24)
	return NewAuthService(repo, jwtSvc, zap.NewNop())
}

func TestLoginOK(t *testing.T) {
	repo := &fakeInstaladorRepo{instalador: instaladorConClave(t, "secreta123", true)}
	svc := newAuthService(repo)

	resp, err := svc.Login(context.Background(), dto.LoginDTO{Usuario: "mgarcia", Password: "secreta123"})

	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)
	assert.NotEmpty(t, resp.RefreshToken)
	assert.Equal(t, "ins-1", resp.Instalador.ID)
}

func TestLoginPasswordIncorrecta(t *testing.T) {
	repo := &fakeInstaladorRepo{instalador: instaladorConClave(t, "secreta123", true)}
	svc := newAuthService(repo)

	_, err := svc.Login(context.Background(), dto.LoginDTO{Usuario: "mgarcia", Password: "otra"})

	var httpErr *apperrors.HttpError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusUnauthorized, httpErr.Code)
}

func TestLoginUsuarioInexistente(t *testing.T) {
	svc := newAuthService(&fakeInstaladorRepo{findErr: apperrors.ErrNotFound})

	_, err := svc.Login(context.Background(), dto.LoginDTO{Usuario: "nadie", Password: "x"})

	// El mensaje no distingue usuario inexistente de clave incorrecta.
	var httpErr *apperrors.HttpError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusUnauthorized, httpErr.Code)
	assert.Equal(t, "Usuario o contraseña incorrectos", httpErr.Message)
}

func TestLoginSinClaveConfigurada(t *testing.T) {
	instalador := instaladorConClave(t, "secreta123", true)
	instalador.PasswordHash = nil
	svc := newAuthService(&fakeInstaladorRepo{instalador: instalador})

	_, err := svc.Login(context.Background(), dto.LoginDTO{Usuario: "mgarcia", Password: "secreta123"})

	var httpErr *apperrors.HttpError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusUnauthorized, httpErr.Code)
}

func TestLoginInstaladorInactivo(t *testing.T) {
	repo := &fakeInstaladorRepo{instalador: instaladorConClave(t, "secreta123", false)}
	svc := newAuthService(repo)

	_, err := svc.Login(context.Background(), dto.LoginDTO{Usuario: "mgarcia", Password: "secreta123"})

	var httpErr *apperrors.HttpError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusForbidden, httpErr.Code)
	assert.ErrorIs(t, err, apperrors.ErrInstaladorInactivo)
}

func TestRefreshOK(t *testing.T) {
	repo := &fakeInstaladorRepo{instalador: instaladorConClave(t, "secreta123", true)}
	svc := newAuthService(repo)

	login, err := svc.Login(context.Background(), dto.LoginDTO{Usuario: "mgarcia", Password: "secreta123"})
	require.NoError(t, err)

	resp, err := svc.Refresh(context.Background(), dto.RefreshDTO{RefreshToken: login.RefreshToken})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)
}

func TestRefreshConAccessToken(t *testing.T) {
	repo := &fakeInstaladorRepo{instalador: instaladorConClave(t, "secreta123", true)}
	svc := newAuthService(repo)

	login, err := svc.Login(context.Background(), dto.LoginDTO{Usuario: "mgarcia", Password: "secreta123"})
	require.NoError(t, err)

	// Un access token no sirve para renovar.
	_, err = svc.Refresh(context.Background(), dto.RefreshDTO{RefreshToken: login.AccessToken})

	var httpErr *apperrors.HttpError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusUnauthorized, httpErr.Code)
	assert.ErrorIs(t, err, apperrors.ErrTokenIsNotRefresh)
}

func TestRefreshTokenInvalido(t *testing.T) {
	svc := newAuthService(&fakeInstaladorRepo{})

	_, err := svc.Refresh(context.Background(), dto.RefreshDTO{RefreshToken: "no-es-un-jwt"})

	var httpErr *apperrors.HttpError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusUnauthorized, httpErr.Code)
}
