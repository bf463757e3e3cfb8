package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/campverse/campground-service/internal/container"
	repo "github.com/campverse/campground-service/internal/domain/repository"
	handlers "github.com/campverse/campground-service/internal/interface/http"
	"github.com/campverse/campground-service/internal/interface/middleware"
)

// CampgroundModule wires the campground and review routes.
// Reads are public; mutations require a signed-in user, and updates and
// deletes additionally require ownership of the targeted record.

type CampgroundModule struct {
	Campgrounds *handlers.CampgroundHandler
	Reviews     *handlers.ReviewHandler
	CampRepo    repo.CampgroundRepository
	ReviewRepo  repo.ReviewRepository
}

func NewCampgroundModule(cg *handlers.CampgroundHandler, rv *handlers.ReviewHandler, campRepo repo.CampgroundRepository, reviewRepo repo.ReviewRepository) *CampgroundModule {
	return &CampgroundModule{Campgrounds: cg, Reviews: rv, CampRepo: campRepo, ReviewRepo: reviewRepo}
}

func (m *CampgroundModule) Register(rg *gin.RouterGroup) {
	// Public reads
	rg.GET("/campgrounds", m.Campgrounds.List)
	rg.GET("/campgrounds/search", m.Campgrounds.Search)
	rg.GET("/campgrounds/:id", m.Campgrounds.Get)
	rg.GET("/campgrounds/:id/reviews", m.Reviews.List)

	// Mutations require authentication
	auth := rg.Group("/")
	auth.Use(middleware.RequireAuth())
	auth.Use(middleware.RateLimit(container.GetRedis(), 120, time.Minute, middleware.KeyByUserID(), nil))
	{
		auth.POST("/campgrounds", m.Campgrounds.Create)
		auth.POST("/campgrounds/:id/reviews", m.Reviews.Create)

		// Owner-only mutations
		owner := auth.Group("/")
		owner.Use(middleware.RequireCampgroundOwner(m.CampRepo))
		{
			owner.PATCH("/campgrounds/:id", m.Campgrounds.Update)
			owner.DELETE("/campgrounds/:id", m.Campgrounds.Delete)
			owner.POST("/campgrounds/:id/image", m.Campgrounds.UploadImage)
		}

		auth.DELETE("/campgrounds/:id/reviews/:revid",
			middleware.RequireReviewOwner(m.ReviewRepo),
			m.Reviews.Delete,
		)
	}
}
