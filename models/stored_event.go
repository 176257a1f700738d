package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"
)

// StoredEvent is one document of the events collection.
type StoredEvent struct {
	ID          string    `bson:"id" json:"id"`
	AggregateID string    `bson:"aggregateId" json:"aggregateId"`
	Version     int       `bson:"version" json:"version"`
	Name        string    `bson:"name" json:"name"`
	Payload     bson.Raw  `bson:"payload" json:"-"`
	RecordedAt  time.Time `bson:"recordedAt" json:"recordedAt"`
}

// BatchIndex maps a batch to the resource that owns its blockades.
type BatchIndex struct {
	BatchID    string    `bson:"batchId" json:"batchId"`
	ResourceID string    `bson:"resourceId" json:"resourceId"`
	CreatedAt  time.Time `bson:"createdAt" json:"createdAt"`
}
