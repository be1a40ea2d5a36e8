package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/VictorManoelCostaDeBarros/acquisitions/internal/core/ports"
)

// AuditService persists auth events for the audit trail. It runs off the
// request path behind the dispatcher, so a failed write is logged and
// dropped rather than surfaced to the user.
type AuditService struct {
	repo   ports.AuditRepository
	logger zerolog.Logger
}

func NewAuditService(repo ports.AuditRepository, logger zerolog.Logger) *AuditService {
	return &AuditService{repo: repo, logger: logger}
}

func (s *AuditService) Record(ctx context.Context, event ports.AuthEvent) error {
	if err := s.repo.Insert(ctx, event); err != nil {
		s.logger.Error().Err(err).
			Str("action", event.Action).
			Str("email", event.Email).
			Msg("failed to record auth event")
		return err
	}
	return nil
}
