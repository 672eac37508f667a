package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/saintreact/inventory-api/internal/core/domain"
	"github.com/saintreact/inventory-api/internal/core/ports"
)

// AuthService implements registration, login, and profile resolution.
type AuthService struct {
	repo   ports.UserRepository
	hasher ports.PasswordHasher
	codec  ports.TokenCodec
	log    zerolog.Logger
}

func NewAuthService(repo ports.UserRepository, hasher ports.PasswordHasher, codec ports.TokenCodec, log zerolog.Logger) *AuthService {
	return &AuthService{repo: repo, hasher: hasher, codec: codec, log: log}
}

func (s *AuthService) Register(ctx context.Context, input ports.RegisterInput) (*domain.User, error) {
	if input.FirstName == "" || input.LastName == "" || input.Email == "" ||
		input.Phone == "" || input.Password == "" {
		return nil, domain.ErrMissingFields
	}

	// Cheap existence pre-check so a taken email fails before the slow hash.
	// The unique index at the store remains the authoritative guard.
	_, err := s.repo.FindByEmail(ctx, input.Email)
	switch {
	case err == nil:
		return nil, domain.ErrUserExists
	case !errors.Is(err, domain.ErrUserNotFound):
		return nil, err
	}

	hash, err := s.hasher.Hash(input.Password)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	user := &domain.User{
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		Email:        input.Email,
		Phone:        input.Phone,
		PasswordHash: hash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		// A concurrent registration can still lose the insert race; the
		// duplicate-key sentinel surfaces as the same conflict.
		return nil, err
	}

	s.log.Info().Str("email", created.Email).Msg("user registered")
	return created, nil
}

func (s *AuthService) Login(ctx context.Context, email, password string) (string, error) {
	if email == "" || password == "" {
		return "", domain.ErrMissingFields
	}

	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			// Unknown email must be indistinguishable from a wrong password.
			return "", domain.ErrInvalidCredentials
		}
		return "", err
	}

	if !s.hasher.Verify(password, user.PasswordHash) {
		return "", domain.ErrInvalidCredentials
	}

	token, err := s.codec.Issue(user.Email)
	if err != nil {
		s.log.Error().Err(err).Msg("token issuance failed")
		return "", err
	}

	s.log.Info().Str("email", user.Email).Msg("login succeeded")
	return token, nil
}

func (s *AuthService) Profile(ctx context.Context, email string) (*domain.User, error) {
	return s.repo.FindByEmail(ctx, email)
}
