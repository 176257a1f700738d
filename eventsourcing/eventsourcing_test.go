package eventsourcing

import (
	"context"
	"errors"
	"testing"
	"time"
)

type counted struct {
	id    string
	delta int
}

func (c counted) EventName() string   { return "counted" }
func (c counted) AggregateID() string { return c.id }

type counter struct {
	Root
	total int
}

func newCounter(id string) *counter {
	c := &counter{}
	c.Root = NewRoot(id, c.apply, func() time.Time { return time.Date(2021, 1, 1, 0, 0, 0, 0, time.UTC) })
	return c
}

func (c *counter) apply(e Event) {
	if ev, ok := e.(counted); ok {
		c.total += ev.delta
	}
}

// ── Root ──

func TestRoot_RecordAndApplyThenPersist(t *testing.T) {
	ctx := context.Background()
	store := NewInMemoryStore()

	c := newCounter("a")
	c.RecordAndApply(counted{id: "a", delta: 2})
	c.RecordAndApply(counted{id: "a", delta: 3})

	if c.total != 5 || c.Version() != 2 {
		t.Fatalf("total/version = %d/%d, want 5/2", c.total, c.Version())
	}
	if len(c.RecordedEvents()) != 2 {
		t.Fatalf("recorded = %d, want 2", len(c.RecordedEvents()))
	}
	if err := c.Persist(ctx, store); err != nil {
		t.Fatalf("Persist error: %v", err)
	}
	if len(c.RecordedEvents()) != 0 {
		t.Error("recorded events not cleared after persist")
	}

	history, _ := store.Retrieve(ctx, "a")
	replayed := newCounter("a")
	replayed.Replay(history)
	if replayed.total != c.total || replayed.Version() != c.Version() {
		t.Errorf("replayed total/version = %d/%d, want %d/%d", replayed.total, replayed.Version(), c.total, c.Version())
	}
}

func TestRoot_RecordDoesNotApply(t *testing.T) {
	c := newCounter("a")
	c.Record(counted{id: "a", delta: 7})
	if c.total != 0 {
		t.Errorf("Record applied the event: total %d", c.total)
	}
	env := c.RecordedEvents()[0]
	if env.Name != "counted" || env.Version != 1 || env.AggregateID != "a" {
		t.Errorf("envelope = %+v", env)
	}
}

// ── InMemoryStore ──

func TestInMemoryStore_ConcurrencyConflict(t *testing.T) {
	ctx := context.Background()
	store := NewInMemoryStore()

	first := newCounter("a")
	second := newCounter("a")
	first.RecordAndApply(counted{id: "a", delta: 1})
	second.RecordAndApply(counted{id: "a", delta: 1})

	if err := first.Persist(ctx, store); err != nil {
		t.Fatalf("first persist: %v", err)
	}
	if err := second.Persist(ctx, store); !errors.Is(err, ErrConcurrencyConflict) {
		t.Errorf("second persist err = %v, want ErrConcurrencyConflict", err)
	}
	if got, _ := store.Retrieve(ctx, "a"); len(got) != 1 {
		t.Errorf("stream length = %d, want 1", len(got))
	}
}

func TestInMemoryStore_RetrieveAll(t *testing.T) {
	ctx := context.Background()
	store := NewInMemoryStore()
	for _, id := range []string{"b", "a"} {
		c := newCounter(id)
		c.RecordAndApply(counted{id: id, delta: 1})
		_ = c.Persist(ctx, store)
	}
	all, _ := store.RetrieveAll(ctx)
	if len(all) != 2 || all[0].AggregateID != "a" {
		t.Errorf("RetrieveAll = %+v", all)
	}
}

// ── Specification ──

func TestSpecification_Chains(t *testing.T) {
	positive := SpecFunc[int](func(n int) bool { return n > 0 })
	even := SpecFunc[int](func(n int) bool { return n%2 == 0 })

	cases := []struct {
		name string
		spec Specification[int]
		in   int
		want bool
	}{
		{"and both", And[int](positive, even), 4, true},
		{"and one", And[int](positive, even), 3, false},
		{"or one", Or[int](positive, even), -2, true},
		{"or none", Or[int](positive, even), -3, false},
		{"not", Not[int](even), 3, true},
		{"empty and", And[int](), 1, true},
	}
	for _, tc := range cases {
		if got := tc.spec.IsSatisfiedBy(tc.in); got != tc.want {
			t.Errorf("%s(%d) = %v, want %v", tc.name, tc.in, got, tc.want)
		}
		if IsNotSatisfiedBy(tc.spec, tc.in) == tc.want {
			t.Errorf("%s IsNotSatisfiedBy disagrees", tc.name)
		}
	}
}

// ── Projection ──

type sumProjection struct {
	sum    int
	resets int
}

func (p *sumProjection) Apply(_ context.Context, env Envelope) error {
	p.sum += env.Event.(counted).delta
	return nil
}

func (p *sumProjection) Reset(context.Context) error {
	p.sum = 0
	p.resets++
	return nil
}

func TestRebuild(t *testing.T) {
	p := &sumProjection{sum: 99}
	history := []Envelope{
		{AggregateID: "a", Version: 1, Event: counted{id: "a", delta: 2}},
		{AggregateID: "a", Version: 2, Event: counted{id: "a", delta: 4}},
	}
	if err := Rebuild(context.Background(), p, history); err != nil {
		t.Fatalf("Rebuild error: %v", err)
	}
	if p.sum != 6 || p.resets != 1 {
		t.Errorf("sum/resets = %d/%d, want 6/1", p.sum, p.resets)
	}
}
