package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	repo "github.com/campverse/campground-service/internal/domain/repository"
	"github.com/campverse/campground-service/pkg/response"
)

// RequireCampgroundOwner loads the campground named by the :id route param
// and rejects the request unless the acting user is its owner. Ids are
// opaque strings compared by value. A missing campground is a 404, never a
// crash. Runs after Session (and normally after RequireAuth).
func RequireCampgroundOwner(campgrounds repo.CampgroundRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		cg, err := campgrounds.GetByID(c.Request.Context(), c.Param("id"))
		if err != nil {
			if errors.Is(err, repo.ErrNotFound) {
				response.Error[any](c, http.StatusNotFound, "campground not found", nil)
			} else {
				response.Error[any](c, http.StatusInternalServerError, "failed to load campground", nil)
			}
			c.Abort()
			return
		}
		if cg.OwnerID != c.GetString(CtxUserID) {
			response.Error[any](c, http.StatusForbidden, "you are not the author", nil)
			c.Abort()
			return
		}
		c.Next()
	}
}

// RequireReviewOwner is the review-scoped counterpart, keyed by :revid.
func RequireReviewOwner(reviews repo.ReviewRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		rv, err := reviews.GetByID(c.Request.Context(), c.Param("revid"))
		if err != nil {
			if errors.Is(err, repo.ErrNotFound) {
				response.Error[any](c, http.StatusNotFound, "review not found", nil)
			} else {
				response.Error[any](c, http.StatusInternalServerError, "failed to load review", nil)
			}
			c.Abort()
			return
		}
		if rv.OwnerID != c.GetString(CtxUserID) {
			response.Error[any](c, http.StatusForbidden, "you are not the author", nil)
			c.Abort()
			return
		}
		c.Next()
	}
}
