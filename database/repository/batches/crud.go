// File: database/repository/batches/crud.go
package batchRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"resourcecal/eventsourcing"
	"resourcecal/models"
	"resourcecal/services/availability"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Apply records the owner of every batch that got an accepted blockade. Other
// events leave the index untouched. A batch owned by another resource fails
// the unique batchId index, which aborts the surrounding event transaction.
func (r *mongoBatchRepo) Apply(ctx context.Context, env eventsourcing.Envelope) error {
	ev, ok := env.Event.(models.AvailableTimeWasBlocked)
	if !ok || ev.BatchID == "" {
		return nil
	}
	filter := bson.M{"batchId": ev.BatchID, "resourceId": ev.ResourceID}
	update := bson.M{
		"$setOnInsert": models.BatchIndex{
			BatchID:    ev.BatchID,
			ResourceID: ev.ResourceID,
			CreatedAt:  env.RecordedAt.UTC(),
		},
	}
	if _, err := r.coll.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true)); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return fmt.Errorf("index batch %s for %s: %w", ev.BatchID, ev.ResourceID, availability.ErrBatchOwned)
		}
		return fmt.Errorf("index batch %s: %w", ev.BatchID, err)
	}
	return nil
}

// Reset drops every indexed batch.
func (r *mongoBatchRepo) Reset(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if _, err := r.coll.DeleteMany(ctx, bson.M{}); err != nil {
		return fmt.Errorf("reset batch index: %w", err)
	}
	return nil
}

func (r *mongoBatchRepo) FindResourceByBatch(ctx context.Context, batchID string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var doc models.BatchIndex
	err := r.coll.FindOne(ctx, bson.M{"batchId": batchID}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return "", fmt.Errorf("batch %s: %w", batchID, availability.ErrResourceNotFound)
	}
	if err != nil {
		return "", fmt.Errorf("find batch %s: %w", batchID, err)
	}
	return doc.ResourceID, nil
}
