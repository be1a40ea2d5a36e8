package ports

import (
	"context"

	"github.com/VictorManoelCostaDeBarros/acquisitions/internal/core/domain"
)

// UserPatch is a partial update. Nil fields are left untouched.
type UserPatch struct {
	Name         *string
	Email        *string
	PasswordHash *string
	Role         *string
}

// UserRepository defines the persistence interface for user credentials.
// Email uniqueness is enforced here (unique index), since the service's
// check-then-create sequence is not atomic under concurrent sign-ups.
type UserRepository interface {
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	Insert(ctx context.Context, user *domain.User) (*domain.User, error)
	Update(ctx context.Context, id string, patch UserPatch) (*domain.User, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]domain.User, error)
}
