package mongo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/inkwell/blog-api/internal/core/domain"
	"github.com/inkwell/blog-api/internal/core/ports"
)

const auditCollection = "auth_events"

// AuditRepository persists auth audit events.
type AuditRepository struct {
	coll *mongo.Collection
}

func NewAuditRepository(db *mongo.Database) ports.AuditRepository {
	return &AuditRepository{coll: db.Collection(auditCollection)}
}

// Insert appends an event to the audit trail.
func (r *AuditRepository) Insert(ctx context.Context, event *domain.AuthEvent) error {
	doc := bson.M{
		"actor":        event.Actor,
		"action":       event.Action,
		"timestamp":    event.Timestamp.UTC(),
		"processed_at": time.Now().UTC(),
	}
	if event.Reason != "" {
		doc["reason"] = event.Reason
	}

	_, err := r.coll.InsertOne(ctx, doc)
	return err
}
