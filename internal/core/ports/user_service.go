package ports

import (
	"context"

	"github.com/VictorManoelCostaDeBarros/acquisitions/internal/core/domain"
)

// UpdateUserInput is the validated, partial update payload for a user.
// Nil fields were absent from the request.
type UpdateUserInput struct {
	Name     *string
	Email    *string
	Password *string
	Role     *string
}

// UserService defines use-case operations on user records. Mutating
// operations take the acting subject and run the authorization policy
// before touching the repository.
type UserService interface {
	List(ctx context.Context) ([]domain.User, error)
	Get(ctx context.Context, id string) (*domain.User, error)
	Update(ctx context.Context, actor domain.Subject, id string, input UpdateUserInput) (*domain.User, error)
	Delete(ctx context.Context, actor domain.Subject, id string) error
}
