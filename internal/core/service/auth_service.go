package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/VictorManoelCostaDeBarros/acquisitions/internal/core/domain"
	"github.com/VictorManoelCostaDeBarros/acquisitions/internal/core/ports"
	"github.com/VictorManoelCostaDeBarros/acquisitions/internal/token"
)

// AuthService implements sign-up and sign-in: credential creation and
// verification composed with token minting. The cookie side of the session
// is handled by the transport layer from the returned token.
type AuthService struct {
	repo    ports.UserRepository
	codec   *token.Codec
	limiter ports.LoginLimiter
	cost    int
	logger  zerolog.Logger
}

func NewAuthService(repo ports.UserRepository, codec *token.Codec, limiter ports.LoginLimiter, bcryptCost int, logger zerolog.Logger) *AuthService {
	if bcryptCost < bcrypt.MinCost || bcryptCost > bcrypt.MaxCost {
		bcryptCost = bcrypt.DefaultCost
	}
	return &AuthService{repo: repo, codec: codec, limiter: limiter, cost: bcryptCost, logger: logger}
}

// Register creates a credential for a new user and mints a session token.
// The email is normalized before storage so uniqueness holds across casing
// and whitespace variants; a duplicate surfaces as domain.ErrUserExists.
func (s *AuthService) Register(ctx context.Context, name, email, password, role string) (string, *domain.User, error) {
	if name == "" || email == "" || password == "" {
		return "", nil, domain.ErrInvalidInput
	}
	if role == "" {
		role = domain.RoleUser
	}
	if !domain.ValidRole(role) {
		return "", nil, domain.ErrInvalidInput
	}

	email = domain.NormalizeEmail(email)

	// Fast pre-check. The unique index on email still backs the invariant
	// when two concurrent sign-ups race past this point.
	if _, err := s.repo.FindByEmail(ctx, email); err == nil {
		return "", nil, domain.ErrUserExists
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return "", nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.cost)
	if err != nil {
		return "", nil, err
	}

	now := time.Now().UTC()
	created, err := s.repo.Insert(ctx, &domain.User{
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		Role:         role,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		return "", nil, err
	}

	signed, err := s.codec.Sign(created.ID, created.Email, created.Role)
	if err != nil {
		return "", nil, err
	}

	s.logger.Info().Str("user_id", created.ID).Str("email", created.Email).Msg("user registered")
	return signed, created, nil
}

// Login verifies a password against the stored credential and mints a
// session token. Unknown email and wrong password are distinct failures;
// the HTTP layer decides how much of that distinction to expose.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	if email == "" || password == "" {
		return "", nil, domain.ErrInvalidInput
	}

	email = domain.NormalizeEmail(email)

	if err := s.checkAttempts(ctx, email); err != nil {
		return "", nil, err
	}

	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		return "", nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return "", nil, domain.ErrInvalidPassword
	}

	if s.limiter != nil {
		if err := s.limiter.Reset(ctx, email); err != nil {
			s.logger.Warn().Err(err).Msg("failed to reset login attempts")
		}
	}

	signed, err := s.codec.Sign(user.ID, user.Email, user.Role)
	if err != nil {
		return "", nil, err
	}

	s.logger.Info().Str("user_id", user.ID).Str("email", user.Email).Msg("user logged in")
	return signed, user, nil
}

// checkAttempts consults the limiter when one is configured. Limiter errors
// fail open: sign-in must not depend on the cache being up.
func (s *AuthService) checkAttempts(ctx context.Context, email string) error {
	if s.limiter == nil {
		return nil
	}
	ok, err := s.limiter.Allow(ctx, email)
	if err != nil {
		s.logger.Warn().Err(err).Msg("login limiter unavailable, allowing attempt")
		return nil
	}
	if !ok {
		s.logger.Warn().Str("email", email).Msg("sign-in throttled")
		return domain.ErrTooManyAttempts
	}
	return nil
}
