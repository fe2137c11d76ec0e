package http

import (
	"net/http"

	"github.com/fweber/authgate/internal/domain/auth/model"
	"github.com/gin-gonic/gin"
)

// Cookie names the clients hold. Attributes are fixed: HTTP-only, secure,
// SameSite=Lax, path "/".
const (
	accessCookie  = "access_token"
	refreshCookie = "refresh_token"
	cookiePath    = "/"
)

func issueTokenPair(c *gin.Context, pair model.TokenPair, domain string) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(
		accessCookie,
		pair.AccessToken,
		int(pair.AccessTTL.Seconds()),
		cookiePath,
		domain,
		true, // secure
		true, // httpOnly
	)
	c.SetCookie(
		refreshCookie,
		pair.RefreshToken,
		int(pair.RefreshTTL.Seconds()),
		cookiePath,
		domain,
		true,
		true,
	)
}

// issueAccessToken replaces only the access cookie; the refresh cookie is
// left untouched.
func issueAccessToken(c *gin.Context, access model.AccessToken, domain string) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(
		accessCookie,
		access.Token,
		int(access.TTL.Seconds()),
		cookiePath,
		domain,
		true,
		true,
	)
}

func clearTokenPair(c *gin.Context, domain string) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(accessCookie, "", -1, cookiePath, domain, true, true)
	c.SetCookie(refreshCookie, "", -1, cookiePath, domain, true, true)
}
