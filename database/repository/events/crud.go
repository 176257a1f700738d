// File: database/repository/events/crud.go
package eventRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"resourcecal/eventsourcing"
	"resourcecal/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// PersistMany appends events in one transaction. Every stream touched must
// continue from its stored head.
func (r *mongoEventRepo) PersistMany(ctx context.Context, events []eventsourcing.Envelope) error {
	if len(events) == 0 {
		return nil
	}
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	docs := make([]interface{}, 0, len(events))
	for _, env := range events {
		doc, err := toStoredEvent(env)
		if err != nil {
			return err
		}
		docs = append(docs, doc)
	}

	sess, err := r.coll.Database().Client().StartSession()
	if err != nil {
		return fmt.Errorf("could not start mongo session: %w", err)
	}
	defer sess.EndSession(ctx)

	_, err = sess.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		if err := r.checkHeads(sc, events); err != nil {
			return nil, err
		}
		if _, err := r.coll.InsertMany(sc, docs, options.InsertMany().SetOrdered(true)); err != nil {
			if mongo.IsDuplicateKeyError(err) {
				return nil, fmt.Errorf("insert events: %w", eventsourcing.ErrConcurrencyConflict)
			}
			return nil, fmt.Errorf("insert events: %w", err)
		}
		for _, env := range events {
			for _, p := range r.projections {
				if err := p.Apply(sc, env); err != nil {
					return nil, fmt.Errorf("project %s v%d: %w", env.AggregateID, env.Version, err)
				}
			}
		}
		return nil, nil
	})
	if err != nil {
		if errors.Is(err, eventsourcing.ErrConcurrencyConflict) {
			return err
		}
		return fmt.Errorf("event transaction failed: %w", err)
	}
	return nil
}

// checkHeads verifies that the first new version of each stream follows the
// highest stored one.
func (r *mongoEventRepo) checkHeads(ctx context.Context, events []eventsourcing.Envelope) error {
	seen := make(map[string]bool)
	for _, env := range events {
		if seen[env.AggregateID] {
			continue
		}
		seen[env.AggregateID] = true
		head, err := r.head(ctx, env.AggregateID)
		if err != nil {
			return err
		}
		if env.Version != head+1 {
			return fmt.Errorf("%s version %d, stored head %d: %w", env.AggregateID, env.Version, head, eventsourcing.ErrConcurrencyConflict)
		}
	}
	return nil
}

func (r *mongoEventRepo) head(ctx context.Context, aggregateID string) (int, error) {
	opts := options.FindOne().
		SetSort(bson.D{{Key: "version", Value: -1}}).
		SetProjection(bson.M{"version": 1})
	var doc struct {
		Version int `bson:"version"`
	}
	err := r.coll.FindOne(ctx, bson.M{"aggregateId": aggregateID}, opts).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("read head of %s: %w", aggregateID, err)
	}
	return doc.Version, nil
}

func toStoredEvent(env eventsourcing.Envelope) (models.StoredEvent, error) {
	payload, err := models.EncodeEvent(env.Event)
	if err != nil {
		return models.StoredEvent{}, err
	}
	return models.StoredEvent{
		ID:          uuid.New().String(),
		AggregateID: env.AggregateID,
		Version:     env.Version,
		Name:        env.Name,
		Payload:     payload,
		RecordedAt:  env.RecordedAt.UTC(),
	}, nil
}

func (r *mongoEventRepo) fromStoredEvent(doc models.StoredEvent) (eventsourcing.Envelope, error) {
	e, err := models.DecodeEvent(doc.Name, doc.Payload)
	if err != nil {
		return eventsourcing.Envelope{}, fmt.Errorf("%s v%d: %w", doc.AggregateID, doc.Version, err)
	}
	if err := r.validate(e); err != nil {
		return eventsourcing.Envelope{}, fmt.Errorf("%s v%d: invalid %s: %w", doc.AggregateID, doc.Version, doc.Name, err)
	}
	return eventsourcing.Envelope{
		AggregateID: doc.AggregateID,
		Version:     doc.Version,
		Name:        doc.Name,
		RecordedAt:  doc.RecordedAt,
		Event:       e,
	}, nil
}
