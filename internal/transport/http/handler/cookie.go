package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"bookshelf/internal/config"
)

// CookieHelper writes and clears the session cookie.
type CookieHelper struct {
	cfg config.SessionConfig
}

func NewCookieHelper(cfg config.SessionConfig) *CookieHelper {
	return &CookieHelper{cfg: cfg}
}

// SetSession attaches the session token to the response. Always httpOnly; the
// cookie lifetime matches the server-side session TTL.
func (h *CookieHelper) SetSession(c *gin.Context, token string) {
	maxAge := int((time.Duration(h.cfg.TTLMinute) * time.Minute).Seconds())
	h.set(c, token, maxAge)
}

// ClearSession expires the session cookie immediately.
func (h *CookieHelper) ClearSession(c *gin.Context) {
	h.set(c, "", -1)
}

// Token reads the session token from the request, or "" when absent.
func (h *CookieHelper) Token(c *gin.Context) string {
	token, err := c.Cookie(h.cfg.CookieName)
	if err != nil {
		return ""
	}
	return token
}

func (h *CookieHelper) set(c *gin.Context, value string, maxAge int) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(
		h.cfg.CookieName,
		value,
		maxAge,
		"/",
		h.cfg.CookieDomain,
		h.cfg.CookieSecure,
		true, // httpOnly, the token never needs to be script-readable
	)
}
