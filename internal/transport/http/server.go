package http

import (
	"time"

	"github.com/gin-gonic/gin"

	appsvc "bookshelf/internal/app"
	"bookshelf/internal/bootstrap"
	"bookshelf/internal/repository"
	"bookshelf/internal/session"
	"bookshelf/internal/transport/http/handler"
	"bookshelf/internal/transport/http/middleware"
)

func NewRouter(app *bootstrap.App) *gin.Engine {
	gin.SetMode(app.Config.App.GinMode)
	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery())
	router.LoadHTMLGlob("web/templates/*.html")
	router.Static("/public", "web/public")

	userRepo := repository.NewUserRepository(app.MySQL)
	bookRepo := repository.NewBookRepository(app.MySQL)
	sessions := session.NewManager(app.Redis, time.Duration(app.Config.Session.TTLMinute)*time.Minute)
	cookies := handler.NewCookieHelper(app.Config.Session)

	authService := appsvc.NewAuthService(userRepo, app.Config.Auth.BcryptCost)
	bookService := appsvc.NewBookService(bookRepo)

	healthHandler := handler.NewHealthHandler(app)
	authHandler := handler.NewAuthHandler(authService, sessions, cookies)
	bookHandler := handler.NewBookHandler(bookService)

	router.Use(middleware.LoadSession(app.Config.Session.CookieName, sessions))

	router.GET("/", authHandler.Home)
	router.GET("/login", authHandler.LoginPage)
	router.GET("/register", authHandler.RegisterPage)
	router.GET("/logout", authHandler.Logout)
	router.POST("/login", authHandler.Login)
	router.POST("/register", authHandler.Register)
	router.GET("/healthz", healthHandler.Check)

	authed := router.Group("", middleware.RequireAuth())
	authed.GET("/main", bookHandler.Dashboard)
	authed.POST("/books/add", bookHandler.Add)
	authed.POST("/books/edit", bookHandler.Edit)
	authed.POST("/books/delete", bookHandler.Delete)

	return router
}
