package models

import (
	"fmt"

	"resourcecal/eventsourcing"

	"go.mongodb.org/mongo-driver/bson"
)

// Event names as stored alongside the payload.
const (
	EventWeeklyAvailabilityPlanned = "WeeklyAvailabilityPlanned"
	EventAvailableTimeWasBlocked   = "AvailableTimeWasBlocked"
	EventTimeBlockRequestRejected  = "TimeBlockRequestRejected"
	EventBlockedTimeWasReleased    = "BlockedTimeWasReleased"
)

// WeeklyAvailabilityPlanned carries the week as weekday name -> "HH:MM-HH:MM",
// with "" for a closed day.
type WeeklyAvailabilityPlanned struct {
	ResourceID  string            `bson:"resourceId" json:"resourceId"`
	PublishDate string            `bson:"publishDate" json:"publishDate"`
	Week        map[string]string `bson:"week" json:"week"`
}

func (e WeeklyAvailabilityPlanned) EventName() string   { return EventWeeklyAvailabilityPlanned }
func (e WeeklyAvailabilityPlanned) AggregateID() string { return e.ResourceID }

// BlockadePayload is the field set shared by the blockade events. DateTimeSpan
// uses "YYYY-MM-DD HH:MM-HH:MM".
type BlockadePayload struct {
	ResourceID   string `bson:"resourceId" json:"resourceId"`
	BlockadeID   string `bson:"blockadeId" json:"blockadeId"`
	BlockadeType string `bson:"blockadeType" json:"blockadeType"`
	DateTimeSpan string `bson:"dateTimeSpan" json:"dateTimeSpan"`
	BatchID      string `bson:"batchId" json:"batchId"`
}

type AvailableTimeWasBlocked struct {
	BlockadePayload `bson:",inline"`
}

func (e AvailableTimeWasBlocked) EventName() string   { return EventAvailableTimeWasBlocked }
func (e AvailableTimeWasBlocked) AggregateID() string { return e.ResourceID }

// TimeBlockRequestRejected records a block request that failed validation.
type TimeBlockRequestRejected struct {
	BlockadePayload `bson:",inline"`
}

func (e TimeBlockRequestRejected) EventName() string   { return EventTimeBlockRequestRejected }
func (e TimeBlockRequestRejected) AggregateID() string { return e.ResourceID }

type BlockedTimeWasReleased struct {
	BlockadePayload `bson:",inline"`
}

func (e BlockedTimeWasReleased) EventName() string   { return EventBlockedTimeWasReleased }
func (e BlockedTimeWasReleased) AggregateID() string { return e.ResourceID }

// Named is satisfied by every event above.
type Named interface {
	EventName() string
	AggregateID() string
}

// EncodeEvent marshals an event payload to BSON.
func EncodeEvent(e Named) ([]byte, error) {
	raw, err := bson.Marshal(e)
	if err != nil {
		return nil, fmt.Errorf("encode %s: %w", e.EventName(), err)
	}
	return raw, nil
}

// DecodeEvent rebuilds an event from its stored name and BSON payload.
func DecodeEvent(name string, raw []byte) (Named, error) {
	switch name {
	case EventWeeklyAvailabilityPlanned:
		return decodeAs[WeeklyAvailabilityPlanned](name, raw)
	case EventAvailableTimeWasBlocked:
		return decodeAs[AvailableTimeWasBlocked](name, raw)
	case EventTimeBlockRequestRejected:
		return decodeAs[TimeBlockRequestRejected](name, raw)
	case EventBlockedTimeWasReleased:
		return decodeAs[BlockedTimeWasReleased](name, raw)
	}
	return nil, fmt.Errorf("event %q: %w", name, eventsourcing.ErrUnknownEvent)
}

func decodeAs[T Named](name string, raw []byte) (Named, error) {
	var v T
	if err := bson.Unmarshal(raw, &v); err != nil {
		return nil, fmt.Errorf("decode %s: %w", name, err)
	}
	return v, nil
}
