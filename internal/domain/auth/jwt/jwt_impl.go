package jwt

import (
	"crypto/rsa"
	"os"
	"time"

	customErrors "github.com/fweber/authgate/internal/domain/auth/errors"
	"github.com/fweber/authgate/internal/infra/config"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

type jwtUtilImpl struct {
	privateKey *rsa.PrivateKey
	publicKey  *rsa.PublicKey
	accessTTL  time.Duration
	refreshTTL time.Duration
	issuer     string
	audience   string
}

func NewJWTUtil(cfg *config.Config) (JWTUtil, error) {
	privPem, err := os.ReadFile(cfg.JWTPrivateKeyPath)
	if err != nil {
		return nil, customErrors.WrapInternal(err, "read private key")
	}
	privKey, err := jwt.ParseRSAPrivateKeyFromPEM(privPem)
	if err != nil {
		return nil, customErrors.WrapInternal(err, "parse private key")
	}

	pubPem, err := os.ReadFile(cfg.JWTPublicKeyPath)
	if err != nil {
		return nil, customErrors.WrapInternal(err, "read public key")
	}
	pubKey, err := jwt.ParseRSAPublicKeyFromPEM(pubPem)
	if err != nil {
		return nil, customErrors.WrapInternal(err, "parse public key")
	}

	return &jwtUtilImpl{
		privateKey: privKey,
		publicKey:  pubKey,
		accessTTL:  cfg.AccessTokenTTL,
		refreshTTL: cfg.RefreshTokenTTL,
		issuer:     cfg.Issuer,
		audience:   cfg.Audience,
	}, nil
}

func (j *jwtUtilImpl) generate(userID uuid.UUID, tokenType string, ttl time.Duration) (string, time.Time, string, error) {
	jti := uuid.NewString()
	now := time.Now()

	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			Issuer:    j.issuer,
			Audience:  jwt.ClaimStrings{j.audience},
			ID:        jti,
		},
		TokenType: tokenType,
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodRS256, claims).SignedString(j.privateKey)
	if err != nil {
		return "", time.Time{}, "", customErrors.WrapInternal(err, "sign "+tokenType+" token")
	}

	return signed, claims.ExpiresAt.Time, jti, nil
}

func (j *jwtUtilImpl) GenerateAccessToken(userID uuid.UUID) (string, time.Time, string, error) {
	return j.generate(userID, TypeAccess, j.accessTTL)
}

func (j *jwtUtilImpl) GenerateRefreshToken(userID uuid.UUID) (string, time.Time, string, error) {
	return j.generate(userID, TypeRefresh, j.refreshTTL)
}

func (j *jwtUtilImpl) validate(raw, wantType string) (Claims, error) {
	token, err := jwt.ParseWithClaims(raw, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodRS256.Alg() {
			return nil, customErrors.ErrInvalidToken
		}
		return j.publicKey, nil
	},
		jwt.WithIssuer(j.issuer),
		jwt.WithAudience(j.audience),
		jwt.WithExpirationRequired(),
	)

	if err != nil || !token.Valid {
		return Claims{}, customErrors.ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok {
		return Claims{}, customErrors.ErrInvalidToken
	}

	// type confusion check: refresh is never accepted as access and vice versa
	if claims.TokenType != wantType {
		return Claims{}, customErrors.ErrInvalidToken
	}

	return *claims, nil
}

func (j *jwtUtilImpl) ValidateAccessToken(raw string) (Claims, error) {
	return j.validate(raw, TypeAccess)
}

func (j *jwtUtilImpl) ValidateRefreshToken(raw string) (Claims, error) {
	return j.validate(raw, TypeRefresh)
}
