package service

import (
	"context"

	"github.com/fweber/authgate/internal/domain/auth/dto"
	"github.com/fweber/authgate/internal/domain/auth/jwt"
	"github.com/fweber/authgate/internal/domain/auth/model"
	"github.com/fweber/authgate/internal/domain/auth/repo"
	"github.com/fweber/authgate/internal/infra/config"
	"github.com/go-playground/validator/v10"
)

// Service owns the token lifecycle: credentials in, signed cookies out.
// Registration and login are decoupled operations; registering does not
// log the user in.
type Service interface {
	Register(context.Context, dto.RegisterDTO) (model.User, error)
	Login(context.Context, dto.LoginDTO) (model.TokenPair, model.User, error)
	Validate(context.Context, dto.ValidateDTO) (model.User, error)
	Refresh(context.Context, dto.RefreshDTO) (model.AccessToken, error)
	Logout(context.Context, dto.LogoutDTO) error
}

func New(
	ur repo.UserRepo,
	tr repo.TokenRepo,
	jm jwt.JWTUtil,
	cfg *config.Config,
	v *validator.Validate,
) Service {
	return &authService{
		userRepo: ur, tokenRepo: tr, jwtUtil: jm, cfg: cfg, v: v,
	}
}
