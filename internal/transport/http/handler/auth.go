package handler

import (
	"context"
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"bookshelf/internal/app"
	"bookshelf/internal/model"
	"bookshelf/internal/session"
	"bookshelf/internal/transport/http/middleware"
)

// SessionStore is the session manager surface the auth handler drives.
type SessionStore interface {
	Establish(ctx context.Context, principal session.Principal) (string, error)
	Terminate(ctx context.Context, token string) error
}

type AuthHandler struct {
	authService *app.AuthService
	sessions    SessionStore
	cookies     *CookieHelper
}

type RegisterRequest struct {
	Email    string `form:"email" binding:"required,email,max=128"`
	Username string `form:"username" binding:"required,max=64"`
	Password string `form:"password" binding:"required,min=6,max=128"`
}

type LoginRequest struct {
	Email    string `form:"email" binding:"required,max=128"`
	Password string `form:"password" binding:"required,max=128"`
}

func NewAuthHandler(authService *app.AuthService, sessions SessionStore, cookies *CookieHelper) *AuthHandler {
	return &AuthHandler{authService: authService, sessions: sessions, cookies: cookies}
}

func (h *AuthHandler) Home(c *gin.Context) {
	principal, _ := middleware.CurrentPrincipal(c)
	c.HTML(http.StatusOK, "home.html", gin.H{"user": principal})
}

func (h *AuthHandler) LoginPage(c *gin.Context) {
	c.HTML(http.StatusOK, "login.html", nil)
}

func (h *AuthHandler) RegisterPage(c *gin.Context) {
	c.HTML(http.StatusOK, "register.html", nil)
}

// Register creates the account and logs the new user straight in. A taken
// email lands on the login form, same as a failed login would.
func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBind(&req); err != nil {
		c.Redirect(http.StatusFound, "/register")
		return
	}

	user, err := h.authService.Register(app.RegisterInput{
		Email:    req.Email,
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		switch {
		case errors.Is(err, app.ErrEmailExists):
			c.Redirect(http.StatusFound, "/login")
		case errors.Is(err, app.ErrInvalidInput):
			c.Redirect(http.StatusFound, "/register")
		default:
			log.Printf("register failed: %v", err)
			c.Redirect(http.StatusFound, "/register")
		}
		return
	}

	h.establishAndRedirect(c, user)
}

// Login verifies credentials, then establishes the session, then redirects;
// strictly in that order. Failures land back on the login form without
// detail.
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBind(&req); err != nil {
		c.Redirect(http.StatusFound, "/login")
		return
	}

	user, err := h.authService.Login(app.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		if !errors.Is(err, app.ErrInvalidCredential) && !errors.Is(err, app.ErrInvalidInput) {
			log.Printf("login failed: %v", err)
		}
		c.Redirect(http.StatusFound, "/login")
		return
	}

	h.establishAndRedirect(c, user)
}

// Logout tears the session down and clears the cookie. Without a session it
// is a no-op redirect home; a session-store failure is surfaced, not hidden
// behind a redirect.
func (h *AuthHandler) Logout(c *gin.Context) {
	token := h.cookies.Token(c)
	if token != "" {
		if err := h.sessions.Terminate(c.Request.Context(), token); err != nil {
			log.Printf("terminate session failed: %v", err)
			c.String(http.StatusInternalServerError, "logout failed")
			return
		}
	}
	h.cookies.ClearSession(c)
	c.Redirect(http.StatusFound, "/")
}

func (h *AuthHandler) establishAndRedirect(c *gin.Context, user *model.User) {
	// Only the principal goes into the session store, never the hash.
	token, err := h.sessions.Establish(c.Request.Context(), session.Principal{
		UserID:   user.ID,
		Username: user.Username,
		Email:    user.Email,
	})
	if err != nil {
		log.Printf("establish session failed: %v", err)
		c.Redirect(http.StatusFound, "/login")
		return
	}

	h.cookies.SetSession(c, token)
	c.Redirect(http.StatusFound, "/main")
}
