package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/campverse/campground-service/pkg/response"
)

// RequireAuth short-circuits requests that have no user bound to their
// session. It assumes Session has already run; the return-to target for GETs
// was recorded there before this guard rejects.
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetString(CtxUserID) == "" {
			response.Error[any](c, http.StatusUnauthorized, "you must be signed in", nil)
			c.Abort()
			return
		}
		c.Next()
	}
}
