package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/campverse/campground-service/internal/application"
	"github.com/campverse/campground-service/internal/interface/middleware"
	"github.com/campverse/campground-service/internal/session"
	"github.com/campverse/campground-service/pkg/helpers"
	"github.com/campverse/campground-service/pkg/response"
	"github.com/campverse/campground-service/pkg/validation"
)

// AuthHandler exposes registration, login, logout and the current-user
// surface. Identity lives in the server-side session; handlers only bind
// and unbind it.
type AuthHandler struct {
	Svc      *application.AuthService
	Sessions session.Store
	Cookies  *helpers.CookieManager
	Logger   *logrus.Logger
}

func NewAuthHandler(svc *application.AuthService, sessions session.Store, cookies *helpers.CookieManager, logger *logrus.Logger) *AuthHandler {
	return &AuthHandler{Svc: svc, Sessions: sessions, Cookies: cookies, Logger: logger}
}

type registerRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required,pwd"`
}

type loginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Register POST /register
func (h *AuthHandler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	u, err := h.Svc.Register(c.Request.Context(), req.Email, req.Username, req.Password)
	if err != nil {
		respondServiceError(c, h.Logger, err)
		return
	}
	// Registration logs the user in, same as the login flow.
	if err := h.Sessions.BindUser(c.Request.Context(), c.GetString(middleware.CtxSessionID), u); err != nil {
		respondServiceError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusCreated, u, "registered", nil)
}

// Login POST /login
func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	u, err := h.Svc.Authenticate(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		respondServiceError(c, h.Logger, err)
		return
	}
	sid := c.GetString(middleware.CtxSessionID)
	if err := h.Sessions.BindUser(c.Request.Context(), sid, u); err != nil {
		respondServiceError(c, h.Logger, err)
		return
	}
	var meta map[string]any
	if target, err := h.Sessions.TakeReturnTo(c.Request.Context(), sid); err == nil && target != "" {
		meta = map[string]any{"redirect_to": target}
	}
	response.Success(c, http.StatusOK, u, "login successful", meta)
}

// Logout POST /logout
func (h *AuthHandler) Logout(c *gin.Context) {
	sid := c.GetString(middleware.CtxSessionID)
	if err := h.Sessions.Destroy(c.Request.Context(), sid); err != nil {
		respondServiceError(c, h.Logger, err)
		return
	}
	h.Cookies.Clear(c)
	response.Success[any](c, http.StatusOK, map[string]any{"logged_out": true}, "logged out", nil)
}

// Me GET /me
func (h *AuthHandler) Me(c *gin.Context) {
	u, err := h.Svc.GetUser(c.Request.Context(), c.GetString(middleware.CtxUserID))
	if err != nil {
		respondServiceError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, u, "current user", nil)
}
