// Package collection holds an immutable, insertion-ordered container keyed by an
// identity function.
package collection

import (
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strconv"
)

var (
	ErrTypeMismatch       = errors.New("element type mismatch")
	ErrNotFound           = errors.New("key not found")
	ErrEmpty              = errors.New("collection is empty")
	ErrMissingIdentifier  = errors.New("collection has no identity function")
	errNilIdentifiedValue = errors.New("identity function returned an empty key")
)

// Identity derives the key of an element.
type Identity[T any] func(T) string

// Collection is a value type; every mutating operation returns a new instance and
// leaves the receiver untouched.
type Collection[T any] struct {
	keys     []string
	items    map[string]T
	identify Identity[T]
	seq      int
}

// New builds a collection. With a nil identity, elements are keyed by insertion
// position.
func New[T any](identify Identity[T], items ...T) Collection[T] {
	c := Collection[T]{identify: identify, items: make(map[string]T, len(items))}
	for _, item := range items {
		c = c.put(item)
	}
	return c
}

// FromValues builds a collection from untyped input, checking that every value
// is a T. For interface element types any implementation is accepted.
func FromValues[T any](identify Identity[T], values ...any) (Collection[T], error) {
	items := make([]T, 0, len(values))
	for i, v := range values {
		item, ok := v.(T)
		if !ok {
			return Collection[T]{}, fmt.Errorf("value %d of type %T: %w", i, v, ErrTypeMismatch)
		}
		items = append(items, item)
	}
	return New(identify, items...), nil
}

func (c Collection[T]) clone() Collection[T] {
	out := Collection[T]{
		keys:     make([]string, len(c.keys)),
		items:    make(map[string]T, len(c.items)),
		identify: c.identify,
		seq:      c.seq,
	}
	copy(out.keys, c.keys)
	for k, v := range c.items {
		out.items[k] = v
	}
	return out
}

func (c Collection[T]) keyOf(item T) string {
	if c.identify == nil {
		return ""
	}
	return c.identify(item)
}

// put mutates c in place; callers clone first.
func (c Collection[T]) put(item T) Collection[T] {
	if c.items == nil {
		c.items = make(map[string]T)
	}
	key := c.keyOf(item)
	if c.identify == nil {
		key = strconv.Itoa(c.seq)
		c.seq++
	}
	if _, exists := c.items[key]; !exists {
		c.keys = append(c.keys, key)
	}
	c.items[key] = item
	return c
}

// Add appends item, or overwrites the element with the same key in place.
func (c Collection[T]) Add(item T) Collection[T] {
	return c.clone().put(item)
}

// AddValue is Add for untyped input.
func (c Collection[T]) AddValue(v any) (Collection[T], error) {
	item, ok := v.(T)
	if !ok {
		return c, fmt.Errorf("add %T: %w", v, ErrTypeMismatch)
	}
	return c.Add(item), nil
}

// Replace swaps the element sharing item's key, appending when absent.
func (c Collection[T]) Replace(item T) (Collection[T], error) {
	if c.identify == nil {
		return c, ErrMissingIdentifier
	}
	key := c.identify(item)
	if key == "" {
		return c, errNilIdentifiedValue
	}
	return c.clone().put(item), nil
}

// Remove drops the element matching item. Without an identity function the first
// deeply equal element is removed.
func (c Collection[T]) Remove(item T) Collection[T] {
	key, ok := c.lookup(item)
	if !ok {
		return c
	}
	return c.RemoveKey(key)
}

// RemoveValue is Remove for untyped input.
func (c Collection[T]) RemoveValue(v any) (Collection[T], error) {
	item, ok := v.(T)
	if !ok {
		return c, fmt.Errorf("remove %T: %w", v, ErrTypeMismatch)
	}
	return c.Remove(item), nil
}

func (c Collection[T]) RemoveKey(key string) Collection[T] {
	if _, ok := c.items[key]; !ok {
		return c
	}
	out := c.clone()
	delete(out.items, key)
	for i, k := range out.keys {
		if k == key {
			out.keys = append(out.keys[:i], out.keys[i+1:]...)
			break
		}
	}
	return out
}

func (c Collection[T]) lookup(item T) (string, bool) {
	if c.identify != nil {
		key := c.identify(item)
		_, ok := c.items[key]
		return key, ok
	}
	for _, k := range c.keys {
		if reflect.DeepEqual(c.items[k], item) {
			return k, true
		}
	}
	return "", false
}

// Find returns the stored element matching item.
func (c Collection[T]) Find(item T) (T, bool) {
	key, ok := c.lookup(item)
	if !ok {
		var zero T
		return zero, false
	}
	return c.items[key], true
}

// FindValue is Find for untyped input.
func (c Collection[T]) FindValue(v any) (T, bool, error) {
	item, ok := v.(T)
	if !ok {
		var zero T
		return zero, false, fmt.Errorf("find %T: %w", v, ErrTypeMismatch)
	}
	found, ok := c.Find(item)
	return found, ok, nil
}

func (c Collection[T]) Get(key string) (T, error) {
	item, ok := c.items[key]
	if !ok {
		var zero T
		return zero, fmt.Errorf("get %q: %w", key, ErrNotFound)
	}
	return item, nil
}

func (c Collection[T]) Has(key string) bool {
	_, ok := c.items[key]
	return ok
}

func (c Collection[T]) Keys() []string {
	out := make([]string, len(c.keys))
	copy(out, c.keys)
	return out
}

// Values returns the elements in iteration order.
func (c Collection[T]) Values() []T {
	out := make([]T, 0, len(c.keys))
	for _, k := range c.keys {
		out = append(out, c.items[k])
	}
	return out
}

// Each visits elements in order until fn returns false.
func (c Collection[T]) Each(fn func(key string, item T) bool) {
	for _, k := range c.keys {
		if !fn(k, c.items[k]) {
			return
		}
	}
}

// Map transforms every element, keeping keys.
func (c Collection[T]) Map(fn func(T) T) Collection[T] {
	out := c.clone()
	for _, k := range out.keys {
		out.items[k] = fn(out.items[k])
	}
	return out
}

// Where keeps the elements matching pred, keys preserved.
func (c Collection[T]) Where(pred func(T) bool) Collection[T] {
	out := Collection[T]{identify: c.identify, items: make(map[string]T), seq: c.seq}
	for _, k := range c.keys {
		if item := c.items[k]; pred(item) {
			out.keys = append(out.keys, k)
			out.items[k] = item
		}
	}
	return out
}

// Sort reorders iteration by less; keys are preserved.
func (c Collection[T]) Sort(less func(a, b T) bool) Collection[T] {
	out := c.clone()
	sort.SliceStable(out.keys, func(i, j int) bool {
		return less(out.items[out.keys[i]], out.items[out.keys[j]])
	})
	return out
}

func (c Collection[T]) Len() int      { return len(c.keys) }
func (c Collection[T]) IsEmpty() bool { return len(c.keys) == 0 }

func (c Collection[T]) First() (T, error) {
	if c.IsEmpty() {
		var zero T
		return zero, ErrEmpty
	}
	return c.items[c.keys[0]], nil
}

func (c Collection[T]) Last() (T, error) {
	if c.IsEmpty() {
		var zero T
		return zero, ErrEmpty
	}
	return c.items[c.keys[len(c.keys)-1]], nil
}

// MapTo projects every element into another type.
func MapTo[T, U any](c Collection[T], fn func(T) U) []U {
	out := make([]U, 0, c.Len())
	c.Each(func(_ string, item T) bool {
		out = append(out, fn(item))
		return true
	})
	return out
}
