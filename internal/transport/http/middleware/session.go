package middleware

import (
	"context"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"bookshelf/internal/session"
)

const (
	ContextPrincipalKey = "session_principal"
	ContextTokenKey     = "session_token"
)

// SessionResolver resolves an opaque cookie token to a principal.
type SessionResolver interface {
	Resolve(ctx context.Context, token string) (*session.Principal, error)
}

// LoadSession resolves the session cookie when one is present and stashes the
// principal in the request context. It never blocks a request; a missing or
// stale token just leaves the request unauthenticated.
func LoadSession(cookieName string, sessions SessionResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(cookieName)
		if err != nil || token == "" {
			c.Next()
			return
		}

		principal, err := sessions.Resolve(c.Request.Context(), token)
		if err != nil {
			log.Printf("resolve session failed: %v", err)
			c.Next()
			return
		}
		if principal != nil {
			c.Set(ContextPrincipalKey, principal)
			c.Set(ContextTokenKey, token)
		}
		c.Next()
	}
}

// RequireAuth gates a route on a loaded session. Browser-form app: the
// unauthenticated answer is a redirect to the login form, not a 401.
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := CurrentPrincipal(c); !ok {
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}
		c.Next()
	}
}

// CurrentPrincipal returns the principal loaded by LoadSession, if any.
func CurrentPrincipal(c *gin.Context) (*session.Principal, bool) {
	value, exists := c.Get(ContextPrincipalKey)
	if !exists {
		return nil, false
	}
	principal, ok := value.(*session.Principal)
	if !ok || principal == nil {
		return nil, false
	}
	return principal, true
}

// SessionToken returns the raw token the current principal was resolved from.
func SessionToken(c *gin.Context) (string, bool) {
	value, exists := c.Get(ContextTokenKey)
	if !exists {
		return "", false
	}
	token, ok := value.(string)
	return token, ok && token != ""
}
