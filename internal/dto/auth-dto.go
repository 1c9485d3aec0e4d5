package dto

import (
	"github.com/gonzalolionelprieto/cerramientosxya/internal/entities"
)

type LoginDTO struct {
	Usuario  string `json:"usuario" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type LoginResponseDTO struct {
	AccessToken  string              `json:"access_token"`
	RefreshToken string              `json:"refresh_token"`
	Instalador   entities.Instalador `json:"instalador"`
}

type RefreshDTO struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}
