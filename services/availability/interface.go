package availability

import (
	"context"
	"fmt"
	"time"

	"resourcecal/eventsourcing"
	"resourcecal/models"
	"resourcecal/timespan"

	"go.uber.org/zap"
)

// AvailabilityService is the command and query surface used by the handlers
// and the release worker.
type AvailabilityService interface {
	PlanWeeklyAvailability(ctx context.Context, resourceID ResourceID, publishDate PublishDate, week OpeningHoursWeek) error
	BlockAvailableTime(ctx context.Context, cmd BlockCommand) (*models.BlockOutcome, error)
	ReleaseBlockedTime(ctx context.Context, resourceID ResourceID, batchID BatchID) error
	BatchReleaseBlockedTime(ctx context.Context, batchID BatchID) error
	ReleaseBlockedTimeWithBuffer(ctx context.Context, resourceID ResourceID, batchID BatchID, bufferID BlockadeID, buffer timespan.DateTimeSpan) (*models.BlockOutcome, error)
	ImportCalendar(ctx context.Context, resourceID ResourceID, kind BlockadeType, doc string) ([]models.BlockOutcome, error)

	Availability(ctx context.Context, resourceID ResourceID, date time.Time) (*models.AvailabilityView, error)
	History(ctx context.Context, resourceID ResourceID) ([]models.EventView, error)
	ExportCalendar(ctx context.Context, resourceID ResourceID) (string, error)
	Location() *time.Location
	Now() time.Time
}

// BlockCommand requests a blockade. Empty ids are generated.
type BlockCommand struct {
	ResourceID   ResourceID
	BlockadeID   BlockadeID
	Type         BlockadeType
	DateTimeSpan timespan.DateTimeSpan
	BatchID      BatchID
}

// BatchLookup resolves the resource owning a batch; unknown batches yield
// ErrResourceNotFound.
type BatchLookup interface {
	FindResourceByBatch(ctx context.Context, batchID string) (string, error)
}

// Locker serialises commands per key.
type Locker interface {
	Lock(ctx context.Context, key string) (unlock func(), err error)
}

// ViewCache stores computed availability views per resource and date. Set
// carries the aggregate version the view was computed from and must be dropped
// once Invalidate has seen a newer version, so a slow read cannot resurrect a
// view that a concurrent write already replaced.
type ViewCache interface {
	Get(ctx context.Context, resourceID, date string) (*models.AvailabilityView, bool)
	Set(ctx context.Context, resourceID, date string, version int, view *models.AvailabilityView)
	Invalidate(ctx context.Context, resourceID string, version int)
}

// ReleaseScheduler releases a batch at a later time.
type ReleaseScheduler interface {
	ScheduleRelease(ctx context.Context, resourceID, batchID string, at time.Time) error
}

// DefaultAvailabilityService is the production implementation. Locker, Cache and
// Releases are optional.
type DefaultAvailabilityService struct {
	Store           eventsourcing.Store
	Batches         BatchLookup
	Clock           Clock
	Locker          Locker
	Cache           ViewCache
	Releases        ReleaseScheduler
	ReservationHold time.Duration
	Logger          *zap.Logger
}

func NewDefaultAvailabilityService(store eventsourcing.Store, batches BatchLookup, clock Clock, logger *zap.Logger) (*DefaultAvailabilityService, error) {
	if store == nil || batches == nil || clock == nil {
		return nil, fmt.Errorf("availability service initialization error: one or more dependencies are nil")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DefaultAvailabilityService{
		Store:   store,
		Batches: batches,
		Clock:   clock,
		Logger:  logger,
	}, nil
}
