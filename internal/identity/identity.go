// Package identity implements the authentication collaborator from the
// original system: registration and credential verification. The core
// services never see raw credentials; this package hands the handler a
// signed token and nothing else.
package identity

import (
	"context"
	"errors"
	"time"

	pkgerrors "github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/Astemirdum/bookrental-service/internal/errs"
	"github.com/Astemirdum/bookrental-service/internal/model"
	"github.com/Astemirdum/bookrental-service/internal/repository"
	"github.com/Astemirdum/bookrental-service/pkg/auth"
)

var ErrInvalidCredentials = errors.New("invalid credentials")

type Service struct {
	log    *zap.Logger
	repo   repository.Repository
	secret []byte
	ttl    time.Duration
}

func NewService(repo repository.Repository, secret []byte, ttl time.Duration, log *zap.Logger) *Service {
	return &Service{
		log:    log.Named("identity"),
		repo:   repo,
		secret: secret,
		ttl:    ttl,
	}
}

func (s *Service) Register(ctx context.Context, req model.RegisterRequest) (model.User, error) {
	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return model.User{}, err
	}
	user, err := s.repo.CreateUser(ctx, model.User{
		Email:        req.Email,
		PasswordHash: hash,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Role:         model.RoleUser,
	})
	if err != nil {
		if errors.Is(err, errs.ErrConflict) {
			return model.User{}, pkgerrors.Wrap(errs.ErrConflict, "email already exists")
		}
		return model.User{}, err
	}
	return user, nil
}

// Login verifies the credentials and issues a bearer token. A missing
// account and a wrong password are reported identically.
func (s *Service) Login(ctx context.Context, req model.LoginRequest) (string, error) {
	user, err := s.repo.GetUserByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return "", ErrInvalidCredentials
		}
		return "", err
	}
	if !auth.CheckPassword(user.PasswordHash, req.Password) {
		return "", ErrInvalidCredentials
	}
	return auth.NewToken(s.secret, user.ID, user.Email, string(user.Role), s.ttl)
}
