package availability

import (
	"context"
	"errors"
	"fmt"
	"time"

	"resourcecal/models"
	"resourcecal/timespan"

	ics "github.com/arran4/golang-ical"
	"go.uber.org/zap"
)

func (s *DefaultAvailabilityService) Location() *time.Location {
	return s.Clock.Now().Location()
}

// Now is the service clock; "today" for every caller comes from here.
func (s *DefaultAvailabilityService) Now() time.Time {
	return s.Clock.Now()
}

// withResource runs fn on the freshly replayed aggregate under the resource lock
// and persists whatever it recorded.
func (s *DefaultAvailabilityService) withResource(ctx context.Context, id ResourceID, fn func(r *Resource) error) error {
	if s.Locker != nil {
		unlock, err := s.Locker.Lock(ctx, id.String())
		if err != nil {
			return fmt.Errorf("lock resource %s: %w", id, err)
		}
		defer unlock()
	}

	r, err := RetrieveResource(ctx, id, s.Store, s.Clock)
	if err != nil {
		return err
	}
	if err := fn(r); err != nil {
		return err
	}
	recorded := r.RecordedEvents()
	if err := r.Persist(ctx, s.Store); err != nil {
		return err
	}
	if s.Cache != nil && len(recorded) > 0 {
		s.Cache.Invalidate(ctx, id.String(), r.Version())
	}
	for _, env := range recorded {
		s.Logger.Debug("event recorded",
			zap.String("resourceId", id.String()),
			zap.String("event", env.Name),
			zap.Int("version", env.Version))
	}
	return nil
}

func (s *DefaultAvailabilityService) PlanWeeklyAvailability(ctx context.Context, resourceID ResourceID, publishDate PublishDate, week OpeningHoursWeek) error {
	err := s.withResource(ctx, resourceID, func(r *Resource) error {
		return r.PlanWeeklyAvailability(publishDate, week)
	})
	if err != nil {
		s.Logger.Warn("plan weekly availability failed", zap.String("resourceId", resourceID.String()), zap.Error(err))
		return err
	}
	s.Logger.Info("weekly availability planned",
		zap.String("resourceId", resourceID.String()),
		zap.String("publishDate", publishDate.String()))
	return nil
}

func (s *DefaultAvailabilityService) BlockAvailableTime(ctx context.Context, cmd BlockCommand) (*models.BlockOutcome, error) {
	if cmd.BlockadeID == "" {
		cmd.BlockadeID = NewBlockadeID()
	}
	if cmd.BatchID == "" {
		cmd.BatchID = NewBatchID()
	} else if err := s.checkBatchOwner(ctx, cmd.ResourceID, cmd.BatchID); err != nil {
		return nil, err
	}

	var outcome models.Named
	err := s.withResource(ctx, cmd.ResourceID, func(r *Resource) error {
		var err error
		outcome, err = r.BlockAvailableTime(cmd.BlockadeID, cmd.Type, cmd.DateTimeSpan, cmd.BatchID)
		return err
	})
	if err != nil {
		return nil, err
	}

	result := s.outcome(cmd.BlockadeID, cmd.BatchID, outcome)
	s.Logger.Info("block request handled",
		zap.String("resourceId", cmd.ResourceID.String()),
		zap.String("blockadeId", cmd.BlockadeID.String()),
		zap.String("span", cmd.DateTimeSpan.String()),
		zap.Bool("accepted", result.Accepted))

	if result.Accepted && cmd.Type == Reservation {
		s.scheduleHoldRelease(ctx, cmd.ResourceID, cmd.BatchID)
	}
	return result, nil
}

// checkBatchOwner fails when batch is already indexed under another resource.
// Batch ids are global: a batch release resolves exactly one owner.
func (s *DefaultAvailabilityService) checkBatchOwner(ctx context.Context, resourceID ResourceID, batch BatchID) error {
	owner, err := s.Batches.FindResourceByBatch(ctx, batch.String())
	if errors.Is(err, ErrResourceNotFound) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("look up batch %s: %w", batch, err)
	}
	if owner != resourceID.String() {
		return fmt.Errorf("batch %s: %w", batch, ErrBatchOwned)
	}
	return nil
}

func (s *DefaultAvailabilityService) outcome(blockadeID BlockadeID, batchID BatchID, e models.Named) *models.BlockOutcome {
	_, accepted := e.(models.AvailableTimeWasBlocked)
	return &models.BlockOutcome{
		Accepted:   accepted,
		BlockadeID: blockadeID.String(),
		BatchID:    batchID.String(),
		Event:      e,
	}
}

func (s *DefaultAvailabilityService) scheduleHoldRelease(ctx context.Context, resourceID ResourceID, batchID BatchID) {
	if s.Releases == nil || s.ReservationHold <= 0 {
		return
	}
	at := s.Clock.Now().Add(s.ReservationHold)
	if err := s.Releases.ScheduleRelease(ctx, resourceID.String(), batchID.String(), at); err != nil {
		s.Logger.Error("failed to schedule reservation release",
			zap.String("resourceId", resourceID.String()),
			zap.String("batchId", batchID.String()),
			zap.Error(err))
	}
}

func (s *DefaultAvailabilityService) ReleaseBlockedTime(ctx context.Context, resourceID ResourceID, batchID BatchID) error {
	err := s.withResource(ctx, resourceID, func(r *Resource) error {
		return r.ReleaseBlockedTime(batchID)
	})
	if err != nil {
		return fmt.Errorf("%w: batch %s: %w", ErrCouldNotRelease, batchID, err)
	}
	s.Logger.Info("blocked time released",
		zap.String("resourceId", resourceID.String()),
		zap.String("batchId", batchID.String()))
	return nil
}

func (s *DefaultAvailabilityService) BatchReleaseBlockedTime(ctx context.Context, batchID BatchID) error {
	owner, err := s.Batches.FindResourceByBatch(ctx, batchID.String())
	if err != nil {
		if errors.Is(err, ErrResourceNotFound) {
			return err
		}
		return fmt.Errorf("find resource for batch %s: %w", batchID, err)
	}
	return s.ReleaseBlockedTime(ctx, ResourceID(owner), batchID)
}

func (s *DefaultAvailabilityService) ReleaseBlockedTimeWithBuffer(ctx context.Context, resourceID ResourceID, batchID BatchID, bufferID BlockadeID, buffer timespan.DateTimeSpan) (*models.BlockOutcome, error) {
	if bufferID == "" {
		bufferID = NewBlockadeID()
	}
	var outcome models.Named
	err := s.withResource(ctx, resourceID, func(r *Resource) error {
		var err error
		outcome, err = r.ReleaseBlockedTimeWithBuffer(batchID, bufferID, buffer)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("%w: batch %s: %w", ErrCouldNotRelease, batchID, err)
	}
	return s.outcome(bufferID, batchID, outcome), nil
}

// ImportCalendar requests one blockade per VEVENT of doc, all in one new batch.
func (s *DefaultAvailabilityService) ImportCalendar(ctx context.Context, resourceID ResourceID, kind BlockadeType, doc string) ([]models.BlockOutcome, error) {
	spans, err := timespan.ParseICal(doc, s.Location())
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidArgument, err)
	}
	batchID := NewBatchID()
	outcomes := make([]models.BlockOutcome, 0, len(spans))
	err = s.withResource(ctx, resourceID, func(r *Resource) error {
		for _, span := range spans {
			id := NewBlockadeID()
			e, err := r.BlockAvailableTime(id, kind, span, batchID)
			if err != nil {
				return err
			}
			outcomes = append(outcomes, *s.outcome(id, batchID, e))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.Logger.Info("calendar imported",
		zap.String("resourceId", resourceID.String()),
		zap.String("batchId", batchID.String()),
		zap.Int("events", len(spans)))
	return outcomes, nil
}

func (s *DefaultAvailabilityService) Availability(ctx context.Context, resourceID ResourceID, date time.Time) (*models.AvailabilityView, error) {
	key := date.Format(timespan.DateLayout)
	today := isSameDay(date, s.Clock.Now())
	if s.Cache != nil && !today {
		if view, ok := s.Cache.Get(ctx, resourceID.String(), key); ok {
			return view, nil
		}
	}

	r, err := RetrieveResource(ctx, resourceID, s.Store, s.Clock)
	if err != nil {
		return nil, err
	}
	a := r.Availability(date)
	view := &models.AvailabilityView{
		ResourceID:       resourceID.String(),
		Date:             key,
		HasAvailableTime: a.HasAvailableTime(),
		Slots:            []string{},
		Version:          r.Version(),
		ComputedAt:       s.Clock.Now(),
	}
	if span, open := a.OpensCloses(); open {
		view.Opens, view.Closes = span.Start().String(), span.End().String()
	}
	for _, slot := range a.Slots() {
		view.Slots = append(view.Slots, slot.String())
	}

	// Today's view depends on the time of the request.
	if s.Cache != nil && !today {
		s.Cache.Set(ctx, resourceID.String(), key, r.Version(), view)
	}
	return view, nil
}

func (s *DefaultAvailabilityService) History(ctx context.Context, resourceID ResourceID) ([]models.EventView, error) {
	history, err := s.Store.Retrieve(ctx, resourceID.String())
	if err != nil {
		return nil, fmt.Errorf("history of %s: %w", resourceID, err)
	}
	out := make([]models.EventView, 0, len(history))
	for _, env := range history {
		payload, _ := env.Event.(models.Named)
		out = append(out, models.EventView{
			Version:    env.Version,
			Name:       env.Name,
			RecordedAt: env.RecordedAt,
			Payload:    payload,
		})
	}
	return out, nil
}

// ExportCalendar renders the current blockades as an iCalendar document.
func (s *DefaultAvailabilityService) ExportCalendar(ctx context.Context, resourceID ResourceID) (string, error) {
	r, err := RetrieveResource(ctx, resourceID, s.Store, s.Clock)
	if err != nil {
		return "", err
	}
	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId("-//resourcecal//availability//EN")
	for _, b := range r.Blockades().Values() {
		b.DateTimeSpan().AddToCalendar(cal, b.ID().String(), b.Type().String(), s.Location())
	}
	return cal.Serialize(), nil
}
