package availability

import (
	"time"

	"resourcecal/collection"
	"resourcecal/timespan"
)

// BlockadeSet holds blockades keyed by id. It does not check for collisions; the
// Resource does that before adding.
type BlockadeSet struct {
	items collection.Collection[Blockade]
}

func blockadeKey(b Blockade) string { return b.id.String() }

func NewBlockadeSet(blockades ...Blockade) BlockadeSet {
	return BlockadeSet{items: collection.New(blockadeKey, blockades...)}
}

func (s BlockadeSet) Add(b Blockade) BlockadeSet {
	items := s.items
	if items.IsEmpty() {
		items = collection.New(blockadeKey)
	}
	return BlockadeSet{items: items.Add(b)}
}

func (s BlockadeSet) Remove(id BlockadeID) BlockadeSet {
	return BlockadeSet{items: s.items.RemoveKey(id.String())}
}

func (s BlockadeSet) Has(id BlockadeID) bool { return s.items.Has(id.String()) }

func (s BlockadeSet) Get(id BlockadeID) (Blockade, error) {
	return s.items.Get(id.String())
}

func (s BlockadeSet) Len() int { return s.items.Len() }

func (s BlockadeSet) IsEmpty() bool { return s.items.IsEmpty() }

func (s BlockadeSet) Values() []Blockade { return s.items.Values() }

func (s BlockadeSet) where(pred func(Blockade) bool) BlockadeSet {
	return BlockadeSet{items: s.items.Where(pred)}
}

func (s BlockadeSet) ByBatch(batch BatchID) BlockadeSet {
	return s.where(func(b Blockade) bool { return b.batch == batch })
}

// OnDate keeps the blockades on the calendar day of date.
func (s BlockadeSet) OnDate(date time.Time) BlockadeSet {
	return s.where(func(b Blockade) bool { return b.span.IsSameDayAs(date) })
}

// SortedSpans returns every blockade's time span ordered by start.
func (s BlockadeSet) SortedSpans() timespan.Set {
	spans := collection.MapTo(s.items, Blockade.TimeSpan)
	return timespan.Set(spans).Sorted()
}

// TotalBlockedLength sums the merged spans, so overlapping blockades count once.
func (s BlockadeSet) TotalBlockedLength() timespan.TimeOfDay {
	return s.SortedSpans().TotalLength()
}

// ComputeAvailableSlots returns the free gaps of opening left by the blockades.
// Blocked time outside opening is ignored.
func (s BlockadeSet) ComputeAvailableSlots(opening timespan.TimeSpan) timespan.Set {
	if s.IsEmpty() {
		if opening.Length().Minutes() == 0 {
			return timespan.Set{}
		}
		return timespan.Set{opening}
	}

	blocked := clip(s.SortedSpans().Merge(), opening)
	if opening.Length().BeforeOrEqual(blocked.TotalLength()) {
		return timespan.Set{}
	}
	if len(blocked) == 0 {
		return timespan.Set{opening}
	}

	slots := timespan.Set{}
	first, last := blocked[0], blocked[len(blocked)-1]
	if first.Start().After(opening.Start()) {
		slots = append(slots, gap(opening.Start(), first.Start()))
	}
	for i := 1; i < len(blocked); i++ {
		prev, next := blocked[i-1], blocked[i]
		if prev.End().Before(next.Start()) {
			slots = append(slots, gap(prev.End(), next.Start()))
		}
	}
	if opening.End().After(last.End()) {
		slots = append(slots, gap(last.End(), opening.End()))
	}
	return slots
}

// clip intersects each merged span with window and drops the ones outside it.
func clip(merged timespan.Set, window timespan.TimeSpan) timespan.Set {
	out := timespan.Set{}
	for _, span := range merged {
		if !span.End().After(window.Start()) || !span.Start().Before(window.End()) {
			continue
		}
		start, end := span.Start(), span.End()
		if start.Before(window.Start()) {
			start = window.Start()
		}
		if end.After(window.End()) {
			end = window.End()
		}
		out = append(out, gap(start, end))
	}
	return out
}

// gap builds a span the caller already knows to be non-empty.
func gap(start, end timespan.TimeOfDay) timespan.TimeSpan {
	span, err := timespan.New(start, end)
	if err != nil {
		panic(err)
	}
	return span
}

// HasNoCollidingBlockadesFor is true when no member overlaps candidate.
func (s BlockadeSet) HasNoCollidingBlockadesFor(candidate Blockade) bool {
	colliding := false
	s.items.Each(func(_ string, b Blockade) bool {
		colliding = candidate.Overlaps(b)
		return !colliding
	})
	return !colliding
}

func (s BlockadeSet) HasNoBookingBlockades() bool {
	return s.where(func(b Blockade) bool { return b.kind == Booking }).IsEmpty()
}
