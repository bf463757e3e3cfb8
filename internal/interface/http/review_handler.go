package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/campverse/campground-service/internal/application"
	"github.com/campverse/campground-service/internal/interface/middleware"
	"github.com/campverse/campground-service/pkg/response"
	"github.com/campverse/campground-service/pkg/validation"
)

type ReviewHandler struct {
	Svc    *application.ReviewService
	Logger *logrus.Logger
}

func NewReviewHandler(svc *application.ReviewService, logger *logrus.Logger) *ReviewHandler {
	return &ReviewHandler{Svc: svc, Logger: logger}
}

type createReviewRequest struct {
	Body   string `json:"body" binding:"required"`
	Rating *int   `json:"rating" binding:"required,gte=0,lte=5"`
}

// Create POST /campgrounds/:id/reviews
func (h *ReviewHandler) Create(c *gin.Context) {
	var req createReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	rev, err := h.Svc.Create(c.Request.Context(), c.Param("id"), c.GetString(middleware.CtxUserID), req.Body, *req.Rating)
	if err != nil {
		respondServiceError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusCreated, rev, "review created", nil)
}

// List GET /campgrounds/:id/reviews
func (h *ReviewHandler) List(c *gin.Context) {
	list, err := h.Svc.ListByCampground(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, list, "reviews", map[string]any{"total": len(list)})
}

// Delete DELETE /campgrounds/:id/reviews/:revid
func (h *ReviewHandler) Delete(c *gin.Context) {
	if err := h.Svc.Delete(c.Request.Context(), c.Param("revid")); err != nil {
		respondServiceError(c, h.Logger, err)
		return
	}
	response.Success[any](c, http.StatusOK, map[string]any{"deleted": true}, "review deleted", nil)
}
