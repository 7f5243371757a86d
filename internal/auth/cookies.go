package auth

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/rekib0023/expense-sharing-backend/internal/config"
)

// Session cookie names. logged_in is readable by frontend code; the token
// cookies are httponly.
const (
	AccessTokenCookie  = "access_token"
	RefreshTokenCookie = "refresh_token"
	LoggedInCookie     = "logged_in"
)

// SetSessionCookies sets the access, refresh, and logged_in cookies on the
// response, with max-ages matching the token TTLs.
func SetSessionCookies(c *gin.Context, accessToken, refreshToken string) {
	cfg := config.Get()
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(RefreshTokenCookie, refreshToken, int(cfg.RefreshTokenTTL.Seconds()), "/", cfg.CookieDomain, cfg.CookieSecure, true)
	SetAccessCookies(c, accessToken)
}

// SetAccessCookies sets the access_token and logged_in cookies. Used alone
// by the refresh endpoint, which leaves the refresh cookie untouched.
func SetAccessCookies(c *gin.Context, accessToken string) {
	cfg := config.Get()
	maxAge := int(cfg.AccessTokenTTL.Seconds())
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(AccessTokenCookie, accessToken, maxAge, "/", cfg.CookieDomain, cfg.CookieSecure, true)
	c.SetCookie(LoggedInCookie, "true", maxAge, "/", cfg.CookieDomain, false, false)
}

// ClearSessionCookies expires all session cookies.
func ClearSessionCookies(c *gin.Context) {
	cfg := config.Get()
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(AccessTokenCookie, "", -1, "/", cfg.CookieDomain, cfg.CookieSecure, true)
	c.SetCookie(RefreshTokenCookie, "", -1, "/", cfg.CookieDomain, cfg.CookieSecure, true)
	c.SetCookie(LoggedInCookie, "", -1, "/", cfg.CookieDomain, false, false)
}

// AccessTokenFromRequest extracts the access token from the Authorization
// header (Bearer scheme) or the access_token cookie. Returns "" when neither
// is present.
func AccessTokenFromRequest(c *gin.Context) string {
	if header := c.GetHeader("Authorization"); header != "" {
		parts := strings.SplitN(header, " ", 2)
		if len(parts) == 2 && parts[0] == "Bearer" {
			return parts[1]
		}
		return ""
	}
	if cookie, err := c.Cookie(AccessTokenCookie); err == nil {
		return cookie
	}
	return ""
}

// RefreshTokenFromRequest extracts the refresh token cookie. Returns "" when
// absent.
func RefreshTokenFromRequest(c *gin.Context) string {
	cookie, err := c.Cookie(RefreshTokenCookie)
	if err != nil {
		return ""
	}
	return cookie
}
