package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/campverse/campground-service/internal/container"
	handlers "github.com/campverse/campground-service/internal/interface/http"
	"github.com/campverse/campground-service/internal/interface/middleware"
)

// AuthModule wires registration, login, logout and the current-user route.
// Public: POST /register, POST /login
// Protected: POST /logout, GET /me

type AuthModule struct {
	Handler *handlers.AuthHandler
}

func NewAuthModule(h *handlers.AuthHandler) *AuthModule {
	return &AuthModule{Handler: h}
}

func (m *AuthModule) Register(rg *gin.RouterGroup) {
	// Public endpoints with IP-based rate limits
	registerLimiter := middleware.RateLimit(container.GetRedis(), 10, time.Minute, middleware.KeyByIPAndPath(), nil)
	loginLimiter := middleware.RateLimit(container.GetRedis(), 10, time.Minute, middleware.KeyByIP(), nil)

	rg.POST("/register", registerLimiter, m.Handler.Register)
	rg.POST("/login", loginLimiter, m.Handler.Login)

	// Protected
	auth := rg.Group("/")
	auth.Use(middleware.RequireAuth())
	{
		auth.POST("/logout", m.Handler.Logout)
		auth.GET("/me", m.Handler.Me)
	}
}
