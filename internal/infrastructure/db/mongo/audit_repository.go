package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/VictorManoelCostaDeBarros/acquisitions/internal/core/ports"
)

const auditCollection = "auth_events"

// AuditRepository stores the auth audit trail. Append-only.
type AuditRepository struct {
	coll *mongo.Collection
}

func NewAuditRepository(db *mongo.Database) *AuditRepository {
	return &AuditRepository{coll: db.Collection(auditCollection)}
}

type mongoAuthEvent struct {
	Action    string `bson:"action"`
	UserID    string `bson:"user_id,omitempty"`
	Email     string `bson:"email,omitempty"`
	RequestID string `bson:"request_id,omitempty"`
	At        int64  `bson:"at"`
}

func (r *AuditRepository) Insert(ctx context.Context, event ports.AuthEvent) error {
	doc := mongoAuthEvent{
		Action:    event.Action,
		UserID:    event.UserID,
		Email:     event.Email,
		RequestID: event.RequestID,
		At:        event.At.Unix(),
	}
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("insert auth event: %w", err)
	}
	return nil
}
