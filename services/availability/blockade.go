package availability

import (
	"time"

	"resourcecal/timespan"
)

// Blockade is one unavailable span of a resource.
type Blockade struct {
	id    BlockadeID
	span  timespan.DateTimeSpan
	kind  BlockadeType
	batch BatchID
}

func NewBlockade(id BlockadeID, span timespan.DateTimeSpan, kind BlockadeType, batch BatchID) Blockade {
	return Blockade{id: id, span: span, kind: kind, batch: batch}
}

func (b Blockade) ID() BlockadeID                      { return b.id }
func (b Blockade) DateTimeSpan() timespan.DateTimeSpan { return b.span }
func (b Blockade) TimeSpan() timespan.TimeSpan         { return b.span.TimeSpan() }
func (b Blockade) Type() BlockadeType                  { return b.kind }
func (b Blockade) BatchID() BatchID                    { return b.batch }
func (b Blockade) StartsAt() time.Time                 { return b.span.StartsAt() }
func (b Blockade) EndsAt() time.Time                   { return b.span.EndsAt() }

// Overlaps is true for blockades on the same date whose spans touch or intersect.
func (b Blockade) Overlaps(other Blockade) bool {
	return b.span.Overlaps(other.span)
}
