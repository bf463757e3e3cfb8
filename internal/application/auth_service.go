package application

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/campverse/campground-service/internal/domain/entity"
	repo "github.com/campverse/campground-service/internal/domain/repository"
	"github.com/campverse/campground-service/pkg/helpers"
	"github.com/campverse/campground-service/pkg/mailer"
)

// AuthService is the credential store: it registers identities and verifies
// plaintext credentials against the stored bcrypt hash. Plaintext is never
// persisted and the hash never leaves the entity's unserialized field.
type AuthService struct {
	Users       repo.UserRepository
	Logger      *logrus.Logger
	Pub         *helpers.RabbitPublisher
	AppName     string
	MailEnabled bool
}

func NewAuthService(users repo.UserRepository, logger *logrus.Logger, pub *helpers.RabbitPublisher, appName string, mailEnabled bool) *AuthService {
	return &AuthService{Users: users, Logger: logger, Pub: pub, AppName: appName, MailEnabled: mailEnabled}
}

// Register creates a user with a hashed credential. A duplicate username or
// email fails with ErrDuplicateIdentity and persists nothing.
func (s *AuthService) Register(ctx context.Context, email, username, password string) (*entity.User, error) {
	if email == "" || username == "" || password == "" {
		return nil, fmt.Errorf("%w: email, username and password are required", ErrValidation)
	}
	hash, err := helpers.HashPassword(password)
	if err != nil {
		return nil, err
	}
	u := &entity.User{Username: username, Email: email, PasswordHash: hash}
	if err := s.Users.Create(ctx, u); err != nil {
		if errors.Is(err, repo.ErrDuplicate) {
			return nil, ErrDuplicateIdentity
		}
		return nil, err
	}
	s.queueWelcomeEmail(ctx, u)
	return u, nil
}

// Authenticate verifies the plaintext against the stored hash. An unknown
// username and a wrong password are indistinguishable to the caller.
func (s *AuthService) Authenticate(ctx context.Context, username, password string) (*entity.User, error) {
	u, err := s.Users.GetByUsername(ctx, username)
	if err != nil || u == nil {
		return nil, ErrInvalidCredential
	}
	if !helpers.CompareHashAndPassword(u.PasswordHash, password) {
		return nil, ErrInvalidCredential
	}
	return u, nil
}

// GetUser loads a user by id for the current-user surface.
func (s *AuthService) GetUser(ctx context.Context, id string) (*entity.User, error) {
	u, err := s.Users.GetByID(ctx, id)
	if err != nil || u == nil {
		return nil, ErrUserNotFound
	}
	return u, nil
}

func (s *AuthService) queueWelcomeEmail(ctx context.Context, u *entity.User) {
	if s.Pub == nil || !s.MailEnabled {
		return
	}
	job := mailer.EmailJob{
		To:       u.Email,
		Template: "welcome",
		Data:     map[string]any{"app_name": s.AppName, "username": u.Username},
	}
	if err := s.Pub.PublishJSON(ctx, job); err != nil && s.Logger != nil {
		s.Logger.WithError(err).WithField("user_id", u.ID).Warn("queue welcome email failed")
	}
}
