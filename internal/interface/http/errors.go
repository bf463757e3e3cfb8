package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/campverse/campground-service/internal/application"
	"github.com/campverse/campground-service/pkg/response"
)

// respondServiceError translates the application failure taxonomy into HTTP
// statuses at the request boundary. Anything unrecognized is a 500; the
// original error stays in the log, not the response.
func respondServiceError(c *gin.Context, logger *logrus.Logger, err error) {
	switch {
	case errors.Is(err, application.ErrValidation):
		response.Error[any](c, http.StatusBadRequest, err.Error(), nil)
	case errors.Is(err, application.ErrDuplicateIdentity):
		response.Error[any](c, http.StatusBadRequest, err.Error(), nil)
	case errors.Is(err, application.ErrInvalidCredential):
		response.Error[any](c, http.StatusUnauthorized, err.Error(), nil)
	case errors.Is(err, application.ErrUnauthenticated):
		response.Error[any](c, http.StatusUnauthorized, err.Error(), nil)
	case errors.Is(err, application.ErrNotAuthorized):
		response.Error[any](c, http.StatusForbidden, err.Error(), nil)
	case errors.Is(err, application.ErrUserNotFound),
		errors.Is(err, application.ErrCampgroundNotFound),
		errors.Is(err, application.ErrReviewNotFound):
		response.Error[any](c, http.StatusNotFound, err.Error(), nil)
	default:
		if logger != nil {
			logger.WithError(err).WithField("path", c.Request.URL.Path).Error("request failed")
		}
		response.Error[any](c, http.StatusInternalServerError, "unexpected error", nil)
	}
}
