package service

import (
	"context"
	"errors"
	"time"

	"github.com/fweber/authgate/internal/domain/auth/dto"
	customErrors "github.com/fweber/authgate/internal/domain/auth/errors"
	"github.com/fweber/authgate/internal/domain/auth/jwt"
	"github.com/fweber/authgate/internal/domain/auth/model"
	"github.com/fweber/authgate/internal/domain/auth/repo"
	"github.com/fweber/authgate/internal/infra/config"
	"github.com/go-playground/validator/v10"

	"github.com/alexedwards/argon2id"
	"github.com/google/uuid"
)

var argonParams = &argon2id.Params{
	Memory:      64 * 1024, // 64 MiB
	Iterations:  2,
	Parallelism: 4,
	SaltLength:  16,
	KeyLength:   32,
}

type authService struct {
	userRepo  repo.UserRepo
	tokenRepo repo.TokenRepo
	jwtUtil   jwt.JWTUtil
	cfg       *config.Config
	v         *validator.Validate
}

func (a *authService) Register(ctx context.Context, dto dto.RegisterDTO) (model.User, error) {

	if err := a.v.Struct(dto); err != nil {
		return model.User{}, customErrors.NewInvalidArgument(err.Error())
	}

	passwordHash, err := argon2id.CreateHash(dto.Password+a.cfg.PasswordPepper, argonParams)
	if err != nil {
		return model.User{}, customErrors.WrapInternal(err, "Register")
	}

	user := model.User{
		ID:           uuid.New(),
		Username:     dto.Username,
		Email:        dto.Email,
		PasswordHash: passwordHash,
	}
	if _, err = a.userRepo.CreateUser(ctx, user); err != nil {
		if errors.Is(err, customErrors.ErrAlreadyExists) {
			return model.User{}, customErrors.ErrAlreadyExists
		}
		return model.User{}, customErrors.WrapInternal(err, "Register")
	}

	return user, nil
}

func (a *authService) Login(ctx context.Context, dto dto.LoginDTO) (model.TokenPair, model.User, error) {
	if err := a.v.Struct(dto); err != nil {
		return model.TokenPair{}, model.User{}, customErrors.NewInvalidArgument(err.Error())
	}

	// unknown user and wrong password collapse into the same error so the
	// response cannot be used to enumerate accounts
	user, err := a.userRepo.GetUserByUsername(ctx, dto.Username)
	switch {
	case errors.Is(err, customErrors.ErrNotFound):
		return model.TokenPair{}, model.User{}, customErrors.ErrInvalidCredentials
	case err != nil:
		return model.TokenPair{}, model.User{}, customErrors.WrapInternal(err, "Login")
	}

	ok, err := argon2id.ComparePasswordAndHash(dto.Password+a.cfg.PasswordPepper, user.PasswordHash)
	if err != nil {
		return model.TokenPair{}, model.User{}, customErrors.WrapInternal(err, "Login")
	}
	if !ok {
		return model.TokenPair{}, model.User{}, customErrors.ErrInvalidCredentials
	}

	at, atExp, _, err := a.jwtUtil.GenerateAccessToken(user.ID)
	if err != nil {
		return model.TokenPair{}, model.User{}, customErrors.WrapInternal(err, "GenerateAccessToken")
	}
	rt, rtExp, _, err := a.jwtUtil.GenerateRefreshToken(user.ID)
	if err != nil {
		return model.TokenPair{}, model.User{}, customErrors.WrapInternal(err, "GenerateRefreshToken")
	}

	now := time.Now()

	return model.TokenPair{
		AccessToken:  at,
		RefreshToken: rt,
		AccessTTL:    atExp.Sub(now),
		RefreshTTL:   rtExp.Sub(now),
		UserId:       user.ID,
	}, user, nil
}

func (a *authService) Validate(ctx context.Context, dto dto.ValidateDTO) (model.User, error) {

	if err := a.v.Struct(dto); err != nil {
		return model.User{}, customErrors.NewInvalidArgument(err.Error())
	}

	claims, err := a.jwtUtil.ValidateAccessToken(dto.AccessToken)
	if err != nil {
		return model.User{}, customErrors.ErrInvalidToken
	}

	revoked, err := a.tokenRepo.IsAccessRevoked(ctx, claims.ID)
	if err != nil {
		return model.User{}, customErrors.WrapInternal(err, "Validate")
	}
	if revoked {
		return model.User{}, customErrors.ErrInvalidToken
	}

	uid, err := uuid.Parse(claims.Subject)
	if err != nil {
		return model.User{}, customErrors.ErrInvalidToken
	}
	user, err := a.userRepo.GetUserByID(ctx, uid)
	if err != nil {
		return model.User{}, customErrors.ErrInvalidToken
	}
	return user, nil
}

// Refresh mints a fresh access token for the refresh token's subject. The
// refresh token itself is not rotated: it stays valid until its own expiry
// or until logout revokes it.
func (a *authService) Refresh(ctx context.Context, dto dto.RefreshDTO) (model.AccessToken, error) {

	if err := a.v.Struct(dto); err != nil {
		return model.AccessToken{}, customErrors.NewInvalidArgument(err.Error())
	}

	claims, err := a.jwtUtil.ValidateRefreshToken(dto.RefreshToken)
	if err != nil {
		return model.AccessToken{}, customErrors.ErrInvalidToken
	}

	revoked, err := a.tokenRepo.IsRevoked(ctx, claims.ID)
	if err != nil {
		return model.AccessToken{}, customErrors.WrapInternal(err, "Refresh")
	}
	if revoked {
		return model.AccessToken{}, customErrors.ErrInvalidToken
	}

	uid, err := uuid.Parse(claims.Subject)
	if err != nil {
		return model.AccessToken{}, customErrors.ErrInvalidToken
	}

	at, atExp, _, err := a.jwtUtil.GenerateAccessToken(uid)
	if err != nil {
		return model.AccessToken{}, customErrors.WrapInternal(err, "GenerateAccessToken")
	}

	return model.AccessToken{
		Token:     at,
		TTL:       time.Until(atExp),
		ExpiresAt: atExp,
		UserId:    uid,
	}, nil
}

// Logout requires a currently valid access token. Both token jtis land on
// the denylist; the cookie clearing itself is the transport layer's job.
func (a *authService) Logout(ctx context.Context, dto dto.LogoutDTO) error {

	if err := a.v.Struct(dto); err != nil {
		return customErrors.ErrUnauthenticated
	}

	claims, err := a.jwtUtil.ValidateAccessToken(dto.AccessToken)
	if err != nil {
		return customErrors.ErrUnauthenticated
	}

	revoked, err := a.tokenRepo.IsAccessRevoked(ctx, claims.ID)
	if err != nil {
		return customErrors.WrapInternal(err, "Logout")
	}
	if revoked {
		return customErrors.ErrUnauthenticated
	}

	if err := a.tokenRepo.RevokeAccess(ctx, claims.ID, claims.ExpiresAt.Time); err != nil {
		return customErrors.WrapInternal(err, "Logout")
	}

	// a copied-out token stays cryptographically valid, so the refresh jti
	// goes on the denylist too when the cookie is presented
	if dto.RefreshToken != "" {
		if rc, err := a.jwtUtil.ValidateRefreshToken(dto.RefreshToken); err == nil {
			if err := a.tokenRepo.Revoke(ctx, rc.ID, rc.ExpiresAt.Time); err != nil {
				return customErrors.WrapInternal(err, "Logout")
			}
		}
	}

	return nil
}
