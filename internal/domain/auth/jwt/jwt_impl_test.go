package jwt

import (
	"testing"
	"time"

	customErrors "github.com/fweber/authgate/internal/domain/auth/errors"
	"github.com/fweber/authgate/internal/infra/config"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

func testConfig() *config.Config {
	return &config.Config{
		JWTPrivateKeyPath: "testdata/priv.pem",
		JWTPublicKeyPath:  "testdata/pub.pem",
		AccessTokenTTL:    time.Minute,
		RefreshTokenTTL:   time.Hour,
		Issuer:            "test",
		Audience:          "test",
	}
}

func TestJWTUtil_GenerateValidate(t *testing.T) {
	util, err := NewJWTUtil(testConfig())
	if err != nil {
		t.Fatal(err)
	}
	uid := uuid.New()
	token, exp, jti, err := util.GenerateAccessToken(uid)
	if err != nil || exp.IsZero() || jti == "" {
		t.Fatalf("bad generate: %v", err)
	}
	claims, err := util.ValidateAccessToken(token)
	if err != nil {
		t.Fatal(err)
	}
	if claims.Subject != uid.String() {
		t.Fatalf("want %s got %s", uid, claims.Subject)
	}
	if claims.TokenType != TypeAccess {
		t.Fatalf("want access type, got %s", claims.TokenType)
	}
}

func TestJWTUtil_TypeConfusionRejected(t *testing.T) {
	util, _ := NewJWTUtil(testConfig())
	uid := uuid.New()

	refresh, _, _, err := util.GenerateRefreshToken(uid)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := util.ValidateAccessToken(refresh); !customErrors.IsInvalidToken(err) {
		t.Fatal("refresh token must not validate as access")
	}

	access, _, _, err := util.GenerateAccessToken(uid)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := util.ValidateRefreshToken(access); !customErrors.IsInvalidToken(err) {
		t.Fatal("access token must not validate as refresh")
	}
}

func TestJWTUtil_ValidateErrors(t *testing.T) {
	util, _ := NewJWTUtil(testConfig())
	if _, err := util.ValidateAccessToken("bad"); err == nil {
		t.Fatal("expected error")
	}

	otherCfg := testConfig()
	otherCfg.Issuer = "wrong"
	other, _ := NewJWTUtil(otherCfg)
	tok, _, _, _ := other.GenerateAccessToken(uuid.New())
	if _, err := util.ValidateAccessToken(tok); err == nil {
		t.Fatal("expected issuer error")
	}
}

func TestJWTUtil_ExpiredRejected(t *testing.T) {
	cfg := testConfig()
	cfg.AccessTokenTTL = -time.Minute
	util, _ := NewJWTUtil(cfg)
	tok, _, _, err := util.GenerateAccessToken(uuid.New())
	if err != nil {
		t.Fatal(err)
	}
	if _, err := util.ValidateAccessToken(tok); !customErrors.IsInvalidToken(err) {
		t.Fatal("expired token must be rejected")
	}
}

func TestJWTUtil_RefreshCycle(t *testing.T) {
	util, _ := NewJWTUtil(testConfig())
	uid := uuid.New()
	rTok, exp, jti, err := util.GenerateRefreshToken(uid)
	if err != nil || exp.IsZero() || jti == "" {
		t.Fatalf("bad generate: %v", err)
	}
	cl, err := util.ValidateRefreshToken(rTok)
	if err != nil || cl.Subject != uid.String() {
		t.Fatalf("validate error: %v", err)
	}
}

func TestJWTUtil_InvalidAlg(t *testing.T) {
	util, _ := NewJWTUtil(testConfig())
	token, _ := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"sub": "1"}).SignedString([]byte("x"))
	if _, err := util.ValidateAccessToken(token); err == nil {
		t.Fatal("expected invalid alg")
	}
}
