package availability

import (
	"context"
	"fmt"
	"time"

	"resourcecal/eventsourcing"
	"resourcecal/models"
	"resourcecal/timespan"
)

// Resource is the aggregate guarding a resource's opening hours and blockades.
// Its state only changes by applying events.
type Resource struct {
	eventsourcing.Root
	id        ResourceID
	schedule  WeeklyOpeningHoursSchedule
	blockades BlockadeSet
	clock     Clock
}

// NewResource returns the empty aggregate for id.
func NewResource(id ResourceID, clock Clock) *Resource {
	r := &Resource{id: id, clock: clock, blockades: NewBlockadeSet(), schedule: NewSchedule()}
	r.Root = eventsourcing.NewRoot(id.String(), r.apply, clock.Now)
	return r
}

// RetrieveResource rebuilds the aggregate from its stored history. An event
// that cannot be applied fails the whole replay with ErrCorruptHistory.
func RetrieveResource(ctx context.Context, id ResourceID, store eventsourcing.Store, clock Clock) (*Resource, error) {
	history, err := store.Retrieve(ctx, id.String())
	if err != nil {
		return nil, fmt.Errorf("retrieve resource %s: %w", id, err)
	}
	for _, env := range history {
		if err := ValidateEvent(env.Event); err != nil {
			return nil, fmt.Errorf("replay %s v%d: %w: %w", id, env.Version, ErrCorruptHistory, err)
		}
	}
	r := NewResource(id, clock)
	r.Replay(history)
	return r, nil
}

func (r *Resource) ID() ResourceID                       { return r.id }
func (r *Resource) Schedule() WeeklyOpeningHoursSchedule { return r.schedule }
func (r *Resource) Blockades() BlockadeSet               { return r.blockades }

func (r *Resource) location() *time.Location {
	return r.clock.Now().Location()
}

// Availability computes the read-side view of date from the current state.
func (r *Resource) Availability(date time.Time) Availability {
	return NewAvailability(r.id, date, r.schedule.For(date), r.blockades, r.clock)
}

// PlanWeeklyAvailability publishes week from publishDate on. Publishing into
// the past is rejected.
func (r *Resource) PlanWeeklyAvailability(publishDate PublishDate, week OpeningHoursWeek) error {
	today := PublishDateOf(r.clock.Now())
	if publishDate.Before(today) {
		return fmt.Errorf("publish date %s is before %s: %w", publishDate, today, ErrInvalidArgument)
	}
	r.RecordAndApply(models.WeeklyAvailabilityPlanned{
		ResourceID:  r.id.String(),
		PublishDate: publishDate.String(),
		Week:        week.Strings(),
	})
	return nil
}

// BlockAvailableTime validates a draft blockade and records either
// AvailableTimeWasBlocked or TimeBlockRequestRejected. Only a reused id is an
// error.
func (r *Resource) BlockAvailableTime(id BlockadeID, kind BlockadeType, span timespan.DateTimeSpan, batch BatchID) (models.Named, error) {
	if r.blockades.Has(id) {
		return nil, fmt.Errorf("blockade %s on resource %s: %w", id, r.id, ErrDuplicateID)
	}
	draft := NewBlockade(id, span, kind, batch)
	payload := r.payload(draft)

	var outcome models.Named = models.TimeBlockRequestRejected{BlockadePayload: payload}
	if BlockingSpecification(r.clock.Now(), r.schedule, r.blockades).IsSatisfiedBy(draft) {
		outcome = models.AvailableTimeWasBlocked{BlockadePayload: payload}
	}
	r.RecordAndApply(outcome)
	return outcome, nil
}

// ReleaseBlockedTime records one release per blockade of batch.
func (r *Resource) ReleaseBlockedTime(batch BatchID) error {
	selected := r.blockades.ByBatch(batch)
	if selected.IsEmpty() {
		return fmt.Errorf("batch %s on resource %s: %w", batch, r.id, ErrBlockadeNotFound)
	}
	for _, b := range selected.Values() {
		r.RecordAndApply(models.BlockedTimeWasReleased{BlockadePayload: r.payload(b)})
	}
	return nil
}

// ReleaseBlockedTimeWithBuffer releases batch, then requests a buffer blockade
// in the same batch.
func (r *Resource) ReleaseBlockedTimeWithBuffer(batch BatchID, bufferID BlockadeID, buffer timespan.DateTimeSpan) (models.Named, error) {
	if err := r.ReleaseBlockedTime(batch); err != nil {
		return nil, err
	}
	return r.BlockAvailableTime(bufferID, Buffer, buffer, batch)
}

func (r *Resource) payload(b Blockade) models.BlockadePayload {
	return models.BlockadePayload{
		ResourceID:   r.id.String(),
		BlockadeID:   b.id.String(),
		BlockadeType: b.kind.String(),
		DateTimeSpan: b.span.String(),
		BatchID:      b.batch.String(),
	}
}

// apply is the single mutation path for live and replayed events.
func (r *Resource) apply(e eventsourcing.Event) {
	switch ev := e.(type) {
	case models.WeeklyAvailabilityPlanned:
		r.applyWeeklyAvailabilityPlanned(ev)
	case models.AvailableTimeWasBlocked:
		r.applyAvailableTimeWasBlocked(ev)
	case models.TimeBlockRequestRejected:
	case models.BlockedTimeWasReleased:
		r.blockades = r.blockades.Remove(BlockadeID(ev.BlockadeID))
	}
}

// The apply helpers only see events that passed ValidateEvent on replay or were
// built from parsed values, so their parse errors are unreachable.
func (r *Resource) applyWeeklyAvailabilityPlanned(ev models.WeeklyAvailabilityPlanned) {
	publishDate, err := ParsePublishDate(ev.PublishDate)
	if err != nil {
		return
	}
	week, err := WeekFromStrings(ev.Week)
	if err != nil {
		return
	}
	r.schedule = r.schedule.Plan(publishDate, week)
}

func (r *Resource) applyAvailableTimeWasBlocked(ev models.AvailableTimeWasBlocked) {
	b, err := BlockadeFromPayload(ev.BlockadePayload, r.location())
	if err != nil {
		return
	}
	r.blockades = r.blockades.Add(b)
}

// BlockadeFromPayload rebuilds a blockade from an event payload.
func BlockadeFromPayload(p models.BlockadePayload, loc *time.Location) (Blockade, error) {
	span, err := timespan.ParseDateTimeSpanIn(p.DateTimeSpan, loc)
	if err != nil {
		return Blockade{}, err
	}
	kind, err := ParseBlockadeType(p.BlockadeType)
	if err != nil {
		return Blockade{}, err
	}
	return NewBlockade(BlockadeID(p.BlockadeID), span, kind, BatchID(p.BatchID)), nil
}

// ValidateEvent checks that a decoded payload can be applied.
func ValidateEvent(e models.Named) error {
	switch ev := e.(type) {
	case models.WeeklyAvailabilityPlanned:
		if _, err := ParsePublishDate(ev.PublishDate); err != nil {
			return err
		}
		_, err := WeekFromStrings(ev.Week)
		return err
	case models.AvailableTimeWasBlocked:
		_, err := BlockadeFromPayload(ev.BlockadePayload, time.UTC)
		return err
	case models.TimeBlockRequestRejected:
		return nil
	case models.BlockedTimeWasReleased:
		return nil
	}
	return fmt.Errorf("event %s: %w", e.EventName(), eventsourcing.ErrUnknownEvent)
}
