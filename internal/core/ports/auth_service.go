package ports

import (
	"context"

	"github.com/VictorManoelCostaDeBarros/acquisitions/internal/core/domain"
)

// AuthService covers the sign-up and sign-in flows. Both return the signed
// session token alongside the user so the transport layer can attach it to
// a cookie without re-entering the service.
type AuthService interface {
	Register(ctx context.Context, name, email, password, role string) (string, *domain.User, error)
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
}

// LoginLimiter throttles repeated sign-in attempts per normalized email.
type LoginLimiter interface {
	// Allow records an attempt and reports whether it is within the window
	// limit.
	Allow(ctx context.Context, email string) (bool, error)
	// Reset clears the attempt counter after a successful sign-in.
	Reset(ctx context.Context, email string) error
}
