package mongo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/pizzeria-brothers/restaurant-system/internal/core/domain"
)

const auditCollection = "auditoria"

// AuditRepository appends audit trail entries. Writes happen on dispatcher
// workers, never on the request path.
type AuditRepository struct {
	coll    *mongo.Collection
	timeout time.Duration
}

func NewAuditRepository(db *mongo.Database, timeout time.Duration) *AuditRepository {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &AuditRepository{coll: db.Collection(auditCollection), timeout: timeout}
}

func (r *AuditRepository) Insert(ctx context.Context, event *domain.AuditEvent) error {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	doc := bson.M{
		"accion":       string(event.Action),
		"entidad":      event.EntityKey,
		"exito":        event.Success,
		"timestamp":    event.Timestamp.UTC(),
		"registrado_a": time.Now().UTC(),
	}
	if event.UserID != 0 {
		doc["id_usuario"] = event.UserID
	}
	if event.Username != "" {
		doc["username"] = event.Username
	}
	if event.Detail != "" {
		doc["detalle"] = event.Detail
	}

	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return storeErr("insert auditoría", err)
	}
	return nil
}
