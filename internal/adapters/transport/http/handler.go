package http

import (
	"crypto/sha256"
	"fmt"
	"net/http"

	appsvc "github.com/fweber/authgate/internal/app/auth/service"
	"github.com/fweber/authgate/internal/domain/auth/dto"
	authErrors "github.com/fweber/authgate/internal/domain/auth/errors"
	"github.com/fweber/authgate/internal/infra/config"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Handler is the cookie transport adapter: it moves tokens between cookies
// and the auth service and maps the service's errors to statuses. No
// business rules live here.
type Handler struct {
	svc appsvc.Service
	cfg *config.Config
	log *zap.Logger
}

func NewHandler(svc appsvc.Service, cfg *config.Config, log *zap.Logger) *Handler {
	return &Handler{svc: svc, cfg: cfg, log: log}
}

func (h *Handler) RegisterRoutes(r gin.IRouter) {
	r.POST("/register", h.Register)
	r.POST("/login", h.Login)
	r.POST("/token/refresh", h.Refresh)
	r.POST("/logout", h.Logout)
	r.GET("/health", h.Health)
}

func (h *Handler) Register(c *gin.Context) {
	var body dto.RegisterDTO
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	h.log.Info("/register",
		zap.String("user", fmt.Sprintf("%x", sha256.Sum256([]byte(body.Email)))),
	)

	if _, err := h.svc.Register(c.Request.Context(), body); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"detail": "User created successfully!"})
}

func (h *Handler) Login(c *gin.Context) {
	var body dto.LoginDTO
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	h.log.Info("/login",
		zap.String("user", fmt.Sprintf("%x", sha256.Sum256([]byte(body.Username)))),
	)

	pair, user, err := h.svc.Login(c.Request.Context(), body)
	if err != nil {
		h.handleError(c, err)
		return
	}

	issueTokenPair(c, pair, h.cfg.CookieDomain)
	c.JSON(http.StatusOK, gin.H{
		"detail": "Login successfully!",
		"user": dto.UserView{
			ID:       user.ID.String(),
			Username: user.Username,
			Email:    user.Email,
		},
	})
}

func (h *Handler) Refresh(c *gin.Context) {
	refreshToken, err := c.Cookie(refreshCookie)
	if err != nil || refreshToken == "" {
		h.handleError(c, authErrors.ErrMissingToken)
		return
	}

	access, err := h.svc.Refresh(c.Request.Context(), dto.RefreshDTO{RefreshToken: refreshToken})
	if err != nil {
		h.handleError(c, err)
		return
	}

	// the one documented exception: the new access token is also returned
	// in the body for clients that need it outside the cookie jar
	issueAccessToken(c, access, h.cfg.CookieDomain)
	c.JSON(http.StatusOK, gin.H{
		"detail": "Token refreshed",
		"access": access.Token,
	})
}

func (h *Handler) Logout(c *gin.Context) {
	accessToken, err := c.Cookie(accessCookie)
	if err != nil || accessToken == "" {
		h.handleError(c, authErrors.ErrUnauthenticated)
		return
	}
	// best effort: revoke the refresh token too when its cookie is present
	refreshToken, _ := c.Cookie(refreshCookie)

	h.log.Info("/logout")

	if err := h.svc.Logout(c.Request.Context(), dto.LogoutDTO{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}); err != nil {
		h.handleError(c, err)
		return
	}

	clearTokenPair(c, h.cfg.CookieDomain)
	c.JSON(http.StatusOK, gin.H{
		"detail": "Log-Out successfully! All Tokens will be deleted. Refresh token is now invalid.",
	})
}

func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h *Handler) handleError(c *gin.Context, err error) {
	switch {
	case authErrors.IsInvalidArgument(err):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case authErrors.IsAlreadyExists(err):
		c.JSON(http.StatusBadRequest, gin.H{"error": "username or email already taken"})
	case authErrors.IsMissingToken(err):
		c.JSON(http.StatusBadRequest, gin.H{"error": "refresh token not found"})
	case authErrors.IsInvalidCredentials(err):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
	case authErrors.IsInvalidToken(err):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
	case authErrors.IsUnauthenticated(err):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthenticated"})
	default:
		h.log.Error("handler error", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
