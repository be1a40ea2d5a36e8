package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/VictorManoelCostaDeBarros/acquisitions/internal/core/ports"
)

type stubAuditRepo struct {
	events []ports.AuthEvent
	err    error
}

func (r *stubAuditRepo) Insert(_ context.Context, event ports.AuthEvent) error {
	if r.err != nil {
		return r.err
	}
	r.events = append(r.events, event)
	return nil
}

func TestAuditService_Record(t *testing.T) {
	repo := &stubAuditRepo{}
	svc := NewAuditService(repo, zerolog.Nop())

	event := ports.AuthEvent{Action: "sign_in", Email: "alice@example.com", At: time.Now().UTC()}
	if err := svc.Record(context.Background(), event); err != nil {
		t.Fatalf("record failed: %v", err)
	}
	if len(repo.events) != 1 || repo.events[0].Action != "sign_in" {
		t.Fatalf("event not stored: %+v", repo.events)
	}
}

func TestAuditService_Record_RepoFailure(t *testing.T) {
	svc := NewAuditService(&stubAuditRepo{err: errors.New("mongo down")}, zerolog.Nop())

	if err := svc.Record(context.Background(), ports.AuthEvent{Action: "sign_out"}); err == nil {
		t.Fatalf("expected error to propagate to the dispatcher")
	}
}
