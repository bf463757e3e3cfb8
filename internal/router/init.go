package router

import (
	"github.com/campverse/campground-service/internal/application"
	"github.com/campverse/campground-service/internal/container"
	repo "github.com/campverse/campground-service/internal/domain/repository"
	pginfra "github.com/campverse/campground-service/internal/infrastructure/postgres"
	handlers "github.com/campverse/campground-service/internal/interface/http"
	"github.com/campverse/campground-service/internal/router/modules"
)

type AuthModuleDeps struct {
	Repo    repo.UserRepository
	Service *application.AuthService
	Handler *handlers.AuthHandler
}

type CampgroundModuleDeps struct {
	CampRepo   repo.CampgroundRepository
	ReviewRepo repo.ReviewRepository
	Campground *handlers.CampgroundHandler
	Review     *handlers.ReviewHandler
}

func buildAuthDeps() AuthModuleDeps {
	cfg := container.GetConfig()

	users := pginfra.NewUserRepository(container.GetPGPool())

	service := application.NewAuthService(
		users,
		container.GetLogger(),
		container.GetRabbitPub(),
		cfg.AppName,
		cfg.MailSendEnabled,
	)

	handler := handlers.NewAuthHandler(
		service,
		container.GetSessions(),
		container.GetCookies(),
		container.GetLogger(),
	)

	return AuthModuleDeps{Repo: users, Service: service, Handler: handler}
}

func buildCampgroundDeps() CampgroundModuleDeps {
	cfg := container.GetConfig()
	pool := container.GetPGPool()

	campgrounds := pginfra.NewCampgroundRepository(pool)
	reviews := pginfra.NewReviewRepository(pool)
	tx := pginfra.NewTxManager(pool)

	campSvc := application.NewCampgroundService(campgrounds, reviews, tx, container.GetLogger())
	campSvc.ES = container.GetES()
	campSvc.ESIndex = cfg.ESCampgroundsIndex
	campSvc.GCS = container.GetGCS()
	campSvc.GCSBucket = cfg.GCSBucket

	reviewSvc := application.NewReviewService(reviews, campgrounds, container.GetLogger())

	return CampgroundModuleDeps{
		CampRepo:   campgrounds,
		ReviewRepo: reviews,
		Campground: handlers.NewCampgroundHandler(campSvc, container.GetLogger()),
		Review:     handlers.NewReviewHandler(reviewSvc, container.GetLogger()),
	}
}

// InitModules initializes all application modules and registers them with the router registry
// This function should be called once during application startup to wire up all modules
func InitModules(r *Registry) {
	authDeps := buildAuthDeps()
	r.Add(modules.NewAuthModule(authDeps.Handler))

	cgDeps := buildCampgroundDeps()
	r.Add(modules.NewCampgroundModule(cgDeps.Campground, cgDeps.Review, cgDeps.CampRepo, cgDeps.ReviewRepo))

	if container.GetConfig().DebugMetricsEnabled {
		r.Add(modules.NewDebugModule())
	}
}
