package services

import (
	"context"
	"errors"
	"net/http"

	"github.com/gonzalolionelprieto/cerramientosxya/internal/dto"
	"github.com/gonzalolionelprieto/cerramientosxya/internal/repositories"
	apperrors "github.com/gonzalolionelprieto/cerramientosxya/pkg/errors"
	"github.com/gonzalolionelprieto/cerramientosxya/pkg/service"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

type AuthService struct {
	instaladorRepository repositories.InstaladorRepositoryInterface
	jwtService           service.JWTService
	logger               *zap.Logger
}

func NewAuthService(
	instaladorRepository repositories.InstaladorRepositoryInterface,
	jwtService service.JWTService,
	logger *zap.Logger,
) *AuthService {
	return &AuthService{
		instaladorRepository: instaladorRepository,
		jwtService:           jwtService,
		logger:               logger,
	}
}

func credencialesInvalidas() error {
	return apperrors.NewHttpError(
		http.StatusUnauthorized,
		"Usuario o contraseña incorrectos",
		apperrors.ErrInvalidCredentials,
		nil,
	)
}

func (s *AuthService) Login(ctx context.Context, payload dto.LoginDTO) (*dto.LoginResponseDTO, error) {
	instalador, err := s.instaladorRepository.FindInstaladorByUsuario(ctx, payload.Usuario)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, credencialesInvalidas()
		}
		s.logger.Error("Error al buscar el instalador para el login", zap.Error(err))
		return nil, err
	}

	if instalador.PasswordHash == nil {
		return nil, credencialesInvalidas()
	}
	if err := bcrypt.CompareHashAndPassword([]byte(*instalador.PasswordHash), []byte(payload.Password)); err != nil {
		s.logger.Warn("Login fallido", zap.String("usuario", payload.Usuario))
		return nil, credencialesInvalidas()
	}

	if !instalador.Activo {
		return nil, apperrors.NewHttpError(
			http.StatusForbidden,
			"El instalador está inactivo",
			apperrors.ErrInstaladorInactivo,
			map[string]interface{}{"instalador_id": instalador.ID},
		)
	}

	accessToken, refreshToken, err := s.jwtService.GenerateTokens(instalador.ID, instalador.Nombre)
	if err != nil {
		s.logger.Error("Error al generar los tokens", zap.Error(err), zap.String("instalador_id", instalador.ID))
		return nil, err
	}

	s.logger.Info("Login exitoso", zap.String("instalador_id", instalador.ID))
	return &dto.LoginResponseDTO{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		Instalador:   *instalador,
	}, nil
}

func (s *AuthService) Refresh(ctx context.Context, payload dto.RefreshDTO) (*dto.LoginResponseDTO, error) {
	claims, err := s.jwtService.ValidateToken(payload.RefreshToken)
	if err != nil {
		return nil, apperrors.NewHttpError(http.StatusUnauthorized, "Refresh token inválido", err, nil)
	}
	if !claims.IsRefreshToken {
		return nil, apperrors.NewHttpError(
			http.StatusUnauthorized,
			"El token no es un refresh token",
			apperrors.ErrTokenIsNotRefresh,
			nil,
		)
	}

	instalador, err := s.instaladorRepository.FindInstalador(ctx, claims.InstaladorID)
	if err != nil {
		return nil, apperrors.NewHttpError(http.StatusUnauthorized, "Refresh token inválido", err, nil)
	}
	if !instalador.Activo {
		return nil, apperrors.NewHttpError(
			http.StatusForbidden,
			"El instalador está inactivo",
			apperrors.ErrInstaladorInactivo,
			map[string]interface{}{"instalador_id": instalador.ID},
		)
	}

	accessToken, refreshToken, err := s.jwtService.GenerateTokens(instalador.ID, instalador.Nombre)
	if err != nil {
		s.logger.Error("Error al renovar los tokens", zap.Error(err), zap.String("instalador_id", instalador.ID))
		return nil, err
	}

	return &dto.LoginResponseDTO{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		Instalador:   *instalador,
	}, nil
}
