// File: database/repository/batches/interface.go
package batchRepo

import (
	"context"

	"resourcecal/config"
	"resourcecal/database"
	"resourcecal/eventsourcing"

	"go.mongodb.org/mongo-driver/mongo"
)

// BatchRepository indexes which resource owns a batch. It is fed as a
// projection of the event store and answers batch lookups.
type BatchRepository interface {
	eventsourcing.Projection
	FindResourceByBatch(ctx context.Context, batchID string) (string, error)
	EnsureIndexes() error
}

type mongoBatchRepo struct {
	coll *mongo.Collection
}

// NewMongoBatchRepo constructs the batch index on the configured database.
func NewMongoBatchRepo() BatchRepository {
	db := database.MongoClient.Database(config.AppConfig.DatabaseName)
	return &mongoBatchRepo{coll: db.Collection("batches")}
}
