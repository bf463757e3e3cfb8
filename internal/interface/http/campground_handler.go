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

type CampgroundHandler struct {
	Svc    *application.CampgroundService
	Logger *logrus.Logger
}

func NewCampgroundHandler(svc *application.CampgroundService, logger *logrus.Logger) *CampgroundHandler {
	return &CampgroundHandler{Svc: svc, Logger: logger}
}

// campgroundRequest is shared by create and update: update is a full-field
// replace, so both carry the complete set. Price is a pointer so that 0 still
// satisfies required.
type campgroundRequest struct {
	Title       string   `json:"title" binding:"required"`
	Price       *float64 `json:"price" binding:"required,gte=0"`
	Description string   `json:"description" binding:"required"`
	Location    string   `json:"location" binding:"required"`
	Image       string   `json:"image" binding:"required"`
}

func (r campgroundRequest) input() application.CampgroundInput {
	return application.CampgroundInput{
		Title:       r.Title,
		Price:       *r.Price,
		Description: r.Description,
		Location:    r.Location,
		ImageURL:    r.Image,
	}
}

// List GET /campgrounds
func (h *CampgroundHandler) List(c *gin.Context) {
	list, err := h.Svc.List(c.Request.Context())
	if err != nil {
		respondServiceError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, list, "campgrounds", map[string]any{"total": len(list)})
}

// Get GET /campgrounds/:id
func (h *CampgroundHandler) Get(c *gin.Context) {
	cg, err := h.Svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, cg, "campground", nil)
}

// Create POST /campgrounds
func (h *CampgroundHandler) Create(c *gin.Context) {
	var req campgroundRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	cg, err := h.Svc.Create(c.Request.Context(), c.GetString(middleware.CtxUserID), req.input())
	if err != nil {
		respondServiceError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusCreated, cg, "campground created", nil)
}

// Update PATCH /campgrounds/:id
func (h *CampgroundHandler) Update(c *gin.Context) {
	var req campgroundRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	cg, err := h.Svc.Update(c.Request.Context(), c.Param("id"), req.input())
	if err != nil {
		respondServiceError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, cg, "campground updated", nil)
}

// Delete DELETE /campgrounds/:id
func (h *CampgroundHandler) Delete(c *gin.Context) {
	if err := h.Svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondServiceError(c, h.Logger, err)
		return
	}
	response.Success[any](c, http.StatusOK, map[string]any{"deleted": true}, "campground deleted", nil)
}

// UploadImage POST /campgrounds/:id/image (multipart field "image")
func (h *CampgroundHandler) UploadImage(c *gin.Context) {
	fh, err := c.FormFile("image")
	if err != nil {
		response.Error[any](c, http.StatusBadRequest, "image file is required", nil)
		return
	}
	f, err := fh.Open()
	if err != nil {
		respondServiceError(c, h.Logger, err)
		return
	}
	defer func() { _ = f.Close() }()

	cg, err := h.Svc.UploadImage(c.Request.Context(), c.Param("id"), f, fh.Filename, fh.Header.Get("Content-Type"))
	if err != nil {
		respondServiceError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"image": cg.ImageURL}, "image uploaded", nil)
}

// Search GET /campgrounds/search?q=
func (h *CampgroundHandler) Search(c *gin.Context) {
	q := c.Query("q")
	if q == "" {
		response.Error[any](c, http.StatusBadRequest, "q is required", nil)
		return
	}
	hits, err := h.Svc.Search(c.Request.Context(), q, 10)
	if err != nil {
		respondServiceError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, hits, "search results", map[string]any{"total": len(hits)})
}
