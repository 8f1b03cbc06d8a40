// Package daystore holds per-day records for a month and partitions them by
// month key.
package daystore

import (
	"sort"

	"tableflip.dev/habitus/pkg/calendar"
)

// Store maps the days of one month to values. Days outside 1..days are
// rejected. Store is not safe for concurrent use; owners guard it.
type Store[V any] struct {
	days   int
	values map[calendar.Day]V
}

// New returns an empty store bounded to a month of the given length.
func New[V any](days int) *Store[V] {
	return &Store[V]{days: days, values: make(map[calendar.Day]V)}
}

// DaysInMonth returns the bound the store was created with.
func (s *Store[V]) DaysInMonth() int { return s.days }

// Get returns the value stored for day.
func (s *Store[V]) Get(day calendar.Day) (V, bool) {
	v, ok := s.values[day]
	return v, ok
}

// Set stores v for day. It reports false, leaving the store unchanged, when
// day is out of range.
func (s *Store[V]) Set(day calendar.Day, v V) bool {
	if !day.Valid(s.days) {
		return false
	}
	s.values[day] = v
	return true
}

// Clear removes the value for day and reports whether one was present.
func (s *Store[V]) Clear(day calendar.Day) bool {
	if _, ok := s.values[day]; !ok {
		return false
	}
	delete(s.values, day)
	return true
}

// Len returns the number of days holding a value.
func (s *Store[V]) Len() int { return len(s.values) }

// Days returns the days holding a value in ascending order.
func (s *Store[V]) Days() []calendar.Day {
	days := make([]calendar.Day, 0, len(s.values))
	for d := range s.values {
		days = append(days, d)
	}
	sort.Slice(days, func(i, j int) bool { return days[i] < days[j] })
	return days
}

// Each calls fn for every stored day in ascending order. Returning false
// stops the walk.
func (s *Store[V]) Each(fn func(day calendar.Day, v V) bool) {
	for _, d := range s.Days() {
		if !fn(d, s.values[d]) {
			return
		}
	}
}

// Update replaces the value for every stored day with fn's result. When fn
// reports keep=false the day is removed.
func (s *Store[V]) Update(fn func(day calendar.Day, v V) (V, bool)) {
	for d, v := range s.values {
		next, keep := fn(d, v)
		if !keep {
			delete(s.values, d)
			continue
		}
		s.values[d] = next
	}
}

// Snapshot returns a shallow copy of the stored values.
func (s *Store[V]) Snapshot() map[calendar.Day]V {
	out := make(map[calendar.Day]V, len(s.values))
	for d, v := range s.values {
		out[d] = v
	}
	return out
}

// Book partitions stores by month. It is not safe for concurrent use.
type Book[V any] struct {
	months map[calendar.MonthKey]*Store[V]
}

// NewBook returns an empty book.
func NewBook[V any]() *Book[V] {
	return &Book[V]{months: make(map[calendar.MonthKey]*Store[V])}
}

// For returns the store for month, creating it on first use.
func (b *Book[V]) For(month calendar.Month) *Store[V] {
	s, ok := b.months[month.Key]
	if !ok {
		s = New[V](month.Days)
		b.months[month.Key] = s
	}
	return s
}

// Lookup returns the store for key without creating it.
func (b *Book[V]) Lookup(key calendar.MonthKey) (*Store[V], bool) {
	s, ok := b.months[key]
	return s, ok
}

// Months returns the keys holding a store, sorted chronologically. Keys that
// do not parse sort last by name.
func (b *Book[V]) Months() []calendar.MonthKey {
	keys := make([]calendar.MonthKey, 0, len(b.months))
	for k := range b.months {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		left, lerr := calendar.ParseMonthKey(string(keys[i]))
		right, rerr := calendar.ParseMonthKey(string(keys[j]))
		switch {
		case lerr != nil && rerr != nil:
			return keys[i] < keys[j]
		case lerr != nil:
			return false
		case rerr != nil:
			return true
		default:
			return left.First().Before(right.First())
		}
	})
	return keys
}

// Each calls fn for every month store.
func (b *Book[V]) Each(fn func(key calendar.MonthKey, s *Store[V])) {
	for k, s := range b.months {
		fn(k, s)
	}
}
