package eventsourcing

// Specification is a predicate over a candidate.
type Specification[T any] interface {
	IsSatisfiedBy(candidate T) bool
}

// SpecFunc adapts a function to Specification.
type SpecFunc[T any] func(T) bool

func (f SpecFunc[T]) IsSatisfiedBy(candidate T) bool { return f(candidate) }

// IsNotSatisfiedBy negates spec for candidate.
func IsNotSatisfiedBy[T any](spec Specification[T], candidate T) bool {
	return !spec.IsSatisfiedBy(candidate)
}

type andSpec[T any] []Specification[T]

// And is satisfied when every spec is; evaluation stops at the first failure.
func And[T any](specs ...Specification[T]) Specification[T] { return andSpec[T](specs) }

func (a andSpec[T]) IsSatisfiedBy(candidate T) bool {
	for _, s := range a {
		if !s.IsSatisfiedBy(candidate) {
			return false
		}
	}
	return true
}

type orSpec[T any] []Specification[T]

// Or is satisfied when any spec is.
func Or[T any](specs ...Specification[T]) Specification[T] { return orSpec[T](specs) }

func (o orSpec[T]) IsSatisfiedBy(candidate T) bool {
	for _, s := range o {
		if s.IsSatisfiedBy(candidate) {
			return true
		}
	}
	return false
}

type notSpec[T any] struct{ inner Specification[T] }

func Not[T any](spec Specification[T]) Specification[T] { return notSpec[T]{inner: spec} }

func (n notSpec[T]) IsSatisfiedBy(candidate T) bool { return !n.inner.IsSatisfiedBy(candidate) }
