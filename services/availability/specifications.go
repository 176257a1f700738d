package availability

import (
	"time"

	"resourcecal/eventsourcing"
)

// FutureToleranceMinutes absorbs clock skew: a block may start this many minutes
// in the past.
const FutureToleranceMinutes = 5

// BlockadeSpecification validates a draft blockade.
type BlockadeSpecification = eventsourcing.Specification[Blockade]

// MustBeInFuture rejects blockades that started more than Tolerance minutes
// before Now.
type MustBeInFuture struct {
	Now       time.Time
	Tolerance int
}

func (s MustBeInFuture) IsSatisfiedBy(b Blockade) bool {
	after, err := b.span.IsAfterWithTolerance(s.Tolerance, s.Now)
	return err == nil && after
}

// MustBeAvailable requires the blockade to fit the opening hours in force on
// its date.
type MustBeAvailable struct {
	Schedule WeeklyOpeningHoursSchedule
}

func (s MustBeAvailable) IsSatisfiedBy(b Blockade) bool {
	date := b.span.Date()
	return s.Schedule.For(date).IsTimeSpanAvailable(date, b.TimeSpan())
}

// MustNotCollide requires that no existing blockade overlaps.
type MustNotCollide struct {
	Blockades BlockadeSet
}

func (s MustNotCollide) IsSatisfiedBy(b Blockade) bool {
	return s.Blockades.HasNoCollidingBlockadesFor(b)
}

// BlockingSpecification is the chain a block request must satisfy.
func BlockingSpecification(now time.Time, schedule WeeklyOpeningHoursSchedule, blockades BlockadeSet) BlockadeSpecification {
	return eventsourcing.And[Blockade](
		MustBeInFuture{Now: now, Tolerance: FutureToleranceMinutes},
		MustBeAvailable{Schedule: schedule},
		MustNotCollide{Blockades: blockades},
	)
}
