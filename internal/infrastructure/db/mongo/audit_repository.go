package mongo

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/qsafe/devicehub/internal/core/domain"
)

const (
	collectionAudit = "audit_events"
	defaultListSize = 100
	maxListSize     = 1000
)

// auditDoc is the stored shape of an AuditEvent. Amounts are kept as decimal
// strings so no precision is lost.
type auditDoc struct {
	ID       string    `bson:"_id"`
	Kind     string    `bson:"kind"`
	ActorID  int       `bson:"actor_id"`
	UserID   int       `bson:"user_id,omitempty"`
	DeviceID string    `bson:"device_id,omitempty"`
	Amount   string    `bson:"amount,omitempty"`
	Detail   string    `bson:"detail,omitempty"`
	At       time.Time `bson:"at"`
}

func toAuditDoc(e domain.AuditEvent) auditDoc {
	d := auditDoc{
		ID:       e.ID,
		Kind:     string(e.Kind),
		ActorID:  e.ActorID,
		UserID:   e.UserID,
		DeviceID: e.DeviceID,
		Detail:   e.Detail,
		At:       e.At.UTC(),
	}
	if e.Amount != nil {
		d.Amount = e.Amount.String()
	}
	return d
}

func (d auditDoc) event() (domain.AuditEvent, error) {
	e := domain.AuditEvent{
		ID:       d.ID,
		Kind:     domain.AuditKind(d.Kind),
		ActorID:  d.ActorID,
		UserID:   d.UserID,
		DeviceID: d.DeviceID,
		Detail:   d.Detail,
		At:       d.At,
	}
	if d.Amount != "" {
		amt, err := decimal.NewFromString(d.Amount)
		if err != nil {
			return e, fmt.Errorf("audit %s: bad amount %q: %w", d.ID, d.Amount, err)
		}
		e.Amount = &amt
	}
	return e, nil
}

func auditQuery(f domain.AuditFilter) bson.M {
	q := bson.M{}
	if f.Kind != "" {
		q["kind"] = string(f.Kind)
	}
	if f.DeviceID != "" {
		q["device_id"] = f.DeviceID
	}
	if f.UserID != 0 {
		q["user_id"] = f.UserID
	}
	return q
}

func listLimit(n int) int64 {
	switch {
	case n <= 0:
		return defaultListSize
	case n > maxListSize:
		return maxListSize
	}
	return int64(n)
}

// AuditRepository is the durable audit and payment ledger.
type AuditRepository struct {
	col *mongo.Collection
}

func NewAuditRepository(db *mongo.Database) *AuditRepository {
	return &AuditRepository{col: db.Collection(collectionAudit)}
}

// Insert appends one event.
func (r *AuditRepository) Insert(ctx context.Context, e domain.AuditEvent) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if _, err := r.col.InsertOne(ctx, toAuditDoc(e)); err != nil {
		return fmt.Errorf("insert audit event: %w", err)
	}
	return nil
}

// List returns matching events, newest first.
func (r *AuditRepository) List(ctx context.Context, f domain.AuditFilter) ([]domain.AuditEvent, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().
		SetSort(bson.D{{Key: "at", Value: -1}}).
		SetLimit(listLimit(f.Limit))
	cur, err := r.col.Find(ctx, auditQuery(f), opts)
	if err != nil {
		return nil, fmt.Errorf("find audit events: %w", err)
	}
	defer cur.Close(ctx)

	var docs []auditDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode audit events: %w", err)
	}
	out := make([]domain.AuditEvent, 0, len(docs))
	for _, d := range docs {
		e, err := d.event()
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, nil
}

// EnsureIndexes creates the query indexes on the audit collection.
func (r *AuditRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "at", Value: -1}}},
		{Keys: bson.D{{Key: "kind", Value: 1}, {Key: "at", Value: -1}}},
		{Keys: bson.D{{Key: "device_id", Value: 1}, {Key: "at", Value: -1}}},
	}
	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}
