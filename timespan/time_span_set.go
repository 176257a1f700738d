// File: timespan/time_span_set.go
package timespan

import (
	"sort"
	"strings"
)

// Set is an ordered list of spans that may overlap.
type Set []TimeSpan

// Sorted returns a copy ordered by start, ties by end.
func (set Set) Sorted() Set {
	out := make(Set, len(set))
	copy(out, set)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].start.Equal(out[j].start) {
			return out[i].end.Before(out[j].end)
		}
		return out[i].start.Before(out[j].start)
	})
	return out
}

// Merge coalesces overlapping spans into maximal ones. Each merged span keeps the
// position of the first input that fed it; a sorted input gives a sorted result.
func (set Set) Merge() Set {
	out := make(Set, 0, len(set))
	for _, span := range set {
		idx := -1
		for i, acc := range out {
			if acc.Overlaps(span) {
				idx = i
				break
			}
		}
		if idx < 0 {
			out = append(out, span)
			continue
		}
		out[idx] = out[idx].union(span)
		out = absorb(out, idx)
	}
	return out
}

// absorb folds into out[idx] every other entry that now overlaps it, until none do.
func absorb(out Set, idx int) Set {
	for {
		merged := false
		for i := 0; i < len(out); i++ {
			if i == idx || !out[idx].Overlaps(out[i]) {
				continue
			}
			out[idx] = out[idx].union(out[i])
			out = append(out[:i], out[i+1:]...)
			if i < idx {
				idx--
			}
			merged = true
			break
		}
		if !merged {
			return out
		}
	}
}

// TotalLength sums the lengths of the merged spans.
func (set Set) TotalLength() TimeOfDay {
	total := Midnight
	for _, span := range set.Merge() {
		total = total.Add(span.Length())
	}
	return total
}

func (set Set) Equal(other Set) bool {
	if len(set) != len(other) {
		return false
	}
	for i := range set {
		if !set[i].Equal(other[i]) {
			return false
		}
	}
	return true
}

func (set Set) String() string {
	parts := make([]string, len(set))
	for i, span := range set {
		parts[i] = span.String()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
