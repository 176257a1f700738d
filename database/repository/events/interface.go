// File: database/repository/events/interface.go
package eventRepo

import (
	"context"

	"resourcecal/config"
	"resourcecal/database"
	"resourcecal/eventsourcing"
	"resourcecal/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// EventRepository is the Mongo backed event store. Projections passed to the
// constructor are updated in the same transaction as the append.
type EventRepository interface {
	eventsourcing.Store
	RetrieveAll(ctx context.Context) ([]eventsourcing.Envelope, error)
	Count(ctx context.Context, aggregateID string) (int64, error)
	EnsureIndexes() error
}

// Validator rejects decoded payloads the domain cannot apply.
type Validator func(models.Named) error

type mongoEventRepo struct {
	coll        *mongo.Collection
	validate    Validator
	projections []eventsourcing.Projection
}

// NewMongoEventRepo constructs the events repository on the configured database.
func NewMongoEventRepo(validate Validator, projections ...eventsourcing.Projection) EventRepository {
	db := database.MongoClient.Database(config.AppConfig.DatabaseName)
	return NewEventRepoWithCollection(db.Collection("events"), validate, projections...)
}

func NewEventRepoWithCollection(coll *mongo.Collection, validate Validator, projections ...eventsourcing.Projection) EventRepository {
	if validate == nil {
		validate = func(models.Named) error { return nil }
	}
	return &mongoEventRepo{coll: coll, validate: validate, projections: projections}
}
