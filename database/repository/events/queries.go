// File: database/repository/events/queries.go
package eventRepo

import (
	"context"
	"fmt"
	"time"

	"resourcecal/eventsourcing"
	"resourcecal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Retrieve returns the stream of aggregateID in version order.
func (r *mongoEventRepo) Retrieve(ctx context.Context, aggregateID string) ([]eventsourcing.Envelope, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "version", Value: 1}})
	cursor, err := r.coll.Find(ctx, bson.M{"aggregateId": aggregateID}, opts)
	if err != nil {
		return nil, fmt.Errorf("find events of %s: %w", aggregateID, err)
	}
	return r.decodeAll(ctx, cursor)
}

// RetrieveAll streams every event, grouped by aggregate. Used to rebuild
// projections.
func (r *mongoEventRepo) RetrieveAll(ctx context.Context) ([]eventsourcing.Envelope, error) {
	ctx, cancel := context.WithTimeout(ctx, 60*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "aggregateId", Value: 1}, {Key: "version", Value: 1}})
	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("find all events: %w", err)
	}
	return r.decodeAll(ctx, cursor)
}

func (r *mongoEventRepo) Count(ctx context.Context, aggregateID string) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	return r.coll.CountDocuments(ctx, bson.M{"aggregateId": aggregateID})
}

func (r *mongoEventRepo) decodeAll(ctx context.Context, cursor *mongo.Cursor) ([]eventsourcing.Envelope, error) {
	defer cursor.Close(ctx)

	var out []eventsourcing.Envelope
	for cursor.Next(ctx) {
		var doc models.StoredEvent
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode stored event: %w", err)
		}
		env, err := r.fromStoredEvent(doc)
		if err != nil {
			return nil, err
		}
		out = append(out, env)
	}
	if err := cursor.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
