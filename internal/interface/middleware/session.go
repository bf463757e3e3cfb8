package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/campverse/campground-service/internal/session"
	"github.com/campverse/campground-service/pkg/helpers"
	"github.com/campverse/campground-service/pkg/response"
)

// Gin context keys populated by Session and consumed by guards and handlers.
const (
	CtxSessionID = "sessionID"
	CtxUserID    = "userID"
	CtxUsername  = "userName"
)

// Session resolves the per-request identity from the signed session cookie.
// A missing or invalid cookie yields a fresh anonymous session, so the
// return-to target can be recorded before login. For unauthenticated GETs
// outside the auth and static surfaces, the request path is stored as the
// return-to target, overwriting any previous value.
func Session(store session.Store, tokens *helpers.TokenManager, cookies *helpers.CookieManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		var sess *session.Session
		if tok, err := c.Cookie(helpers.SessionCookieName); err == nil && tok != "" {
			if claims, err := tokens.ParseSessionToken(tok); err == nil {
				if s, err := store.Get(ctx, claims.SessionID); err == nil {
					sess = s
				}
			}
		}
		if sess == nil {
			s, err := store.Create(ctx)
			if err != nil {
				response.Error[any](c, http.StatusInternalServerError, "session unavailable", nil)
				c.Abort()
				return
			}
			tok, exp, err := tokens.GenerateSessionToken(s.ID)
			if err != nil {
				response.Error[any](c, http.StatusInternalServerError, "session unavailable", nil)
				c.Abort()
				return
			}
			cookies.SetSession(c, tok, exp)
			sess = s
		}

		c.Set(CtxSessionID, sess.ID)
		if sess.Authenticated() {
			c.Set(CtxUserID, sess.UserID)
			c.Set(CtxUsername, sess.Username)
		} else if c.Request.Method == http.MethodGet && recordsReturnTo(c.Request.URL.Path) {
			_ = store.SetReturnTo(ctx, sess.ID, c.Request.URL.Path)
		}
		c.Next()
	}
}

var skippedReturnToPrefixes = []string{
	"/login", "/register", "/logout",
	"/css", "/js", "/images", "/favicon.ico",
}

func recordsReturnTo(path string) bool {
	for _, p := range skippedReturnToPrefixes {
		if strings.HasPrefix(path, p) {
			return false
		}
	}
	return true
}
