package models

import "time"

// PlanWeeklyAvailabilityRequest is the body of PUT /:id/weekly-availability.
type PlanWeeklyAvailabilityRequest struct {
	PublishDate string            `json:"publishDate" binding:"required,publishdate"`
	Week        map[string]string `json:"week" binding:"required,dive,keys,weekday,endkeys,omitempty,timespan"`
}

// BlockTimeRequest is the body of POST /:id/blockades.
type BlockTimeRequest struct {
	BlockadeID   string `json:"blockadeId" binding:"omitempty,uuid"`
	Type         string `json:"type" binding:"required,blockadetype"`
	DateTimeSpan string `json:"dateTimeSpan" binding:"required,datetimespan"`
	BatchID      string `json:"batchId" binding:"omitempty,uuid"`
}

// ReleaseWithBufferRequest is the body of POST /:id/batches/:batchId/release-with-buffer.
type ReleaseWithBufferRequest struct {
	BlockadeID   string `json:"blockadeId" binding:"omitempty,uuid"`
	DateTimeSpan string `json:"dateTimeSpan" binding:"required,datetimespan"`
}

// BlockOutcome tells the caller whether a block request was accepted.
type BlockOutcome struct {
	Accepted   bool   `json:"accepted"`
	BlockadeID string `json:"blockadeId"`
	BatchID    string `json:"batchId"`
	Event      Named  `json:"event"`
}

// AvailabilityView is the read model for one resource on one date.
type AvailabilityView struct {
	ResourceID       string    `json:"resourceId"`
	Date             string    `json:"date"`
	Opens            string    `json:"opens,omitempty"`
	Closes           string    `json:"closes,omitempty"`
	HasAvailableTime bool      `json:"hasAvailableTime"`
	Slots            []string  `json:"slots"`
	Version          int       `json:"version"`
	ComputedAt       time.Time `json:"computedAt"`
}

// EventView is one entry of GET /:id/events.
type EventView struct {
	Version    int       `json:"version"`
	Name       string    `json:"name"`
	RecordedAt time.Time `json:"recordedAt"`
	Payload    Named     `json:"payload"`
}
