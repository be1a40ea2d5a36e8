package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/VictorManoelCostaDeBarros/acquisitions/internal/core/domain"
	"github.com/VictorManoelCostaDeBarros/acquisitions/internal/core/ports"
)

// UserService implements read and mutation operations on user records.
// Mutations consult the authorization policy before touching the repository.
type UserService struct {
	repo   ports.UserRepository
	cost   int
	logger zerolog.Logger
}

func NewUserService(repo ports.UserRepository, bcryptCost int, logger zerolog.Logger) *UserService {
	if bcryptCost < bcrypt.MinCost || bcryptCost > bcrypt.MaxCost {
		bcryptCost = bcrypt.DefaultCost
	}
	return &UserService{repo: repo, cost: bcryptCost, logger: logger}
}

func (s *UserService) List(ctx context.Context) ([]domain.User, error) {
	return s.repo.List(ctx)
}

func (s *UserService) Get(ctx context.Context, id string) (*domain.User, error) {
	return s.repo.FindByID(ctx, id)
}

// Update applies a partial update after the policy allows it. A password in
// the patch is re-hashed; an email is re-normalized so the uniqueness
// invariant survives updates too.
func (s *UserService) Update(ctx context.Context, actor domain.Subject, id string, input ports.UpdateUserInput) (*domain.User, error) {
	if d := domain.DecideUpdate(actor, id, input.Role != nil); !d.Allowed {
		return nil, fmt.Errorf("%w: %s", domain.ErrForbidden, d.Reason)
	}
	if input.Role != nil && !domain.ValidRole(*input.Role) {
		return nil, domain.ErrInvalidInput
	}

	patch := ports.UserPatch{Name: input.Name, Role: input.Role}

	if input.Email != nil {
		normalized := domain.NormalizeEmail(*input.Email)
		patch.Email = &normalized
	}

	if input.Password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*input.Password), s.cost)
		if err != nil {
			return nil, err
		}
		hashed := string(hash)
		patch.PasswordHash = &hashed
	}

	updated, err := s.repo.Update(ctx, id, patch)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("user_id", id).Str("actor_id", actor.ID).Msg("user updated")
	return updated, nil
}

// Delete removes a user record after the policy allows it.
func (s *UserService) Delete(ctx context.Context, actor domain.Subject, id string) error {
	if d := domain.CanDelete(actor, id); !d.Allowed {
		return fmt.Errorf("%w: %s", domain.ErrForbidden, d.Reason)
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info().Str("user_id", id).Str("actor_id", actor.ID).Msg("user deleted")
	return nil
}
