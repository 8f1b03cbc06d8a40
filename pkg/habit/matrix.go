package habit

import (
	"sort"

	"tableflip.dev/habitus/pkg/calendar"
	"tableflip.dev/habitus/pkg/daystore"
)

// checks is the set of habit indices completed on a day.
type checks map[int]bool

// Matrix records completions for one month: day -> habit index -> done.
// A missing cell means not done; cells are created on first toggle and
// removed when toggled back.
type Matrix struct {
	days *daystore.Store[checks]
}

func newMatrix(days int) *Matrix {
	return &Matrix{days: daystore.New[checks](days)}
}

// Toggle flips the cell and returns the new state. It reports ok=false when
// day is out of range.
func (m *Matrix) Toggle(day calendar.Day, index int) (done bool, ok bool) {
	if !day.Valid(m.days.DaysInMonth()) {
		return false, false
	}
	set, _ := m.days.Get(day)
	if set[index] {
		delete(set, index)
		if len(set) == 0 {
			m.days.Clear(day)
		}
		return false, true
	}
	if set == nil {
		set = make(checks)
		m.days.Set(day, set)
	}
	set[index] = true
	return true, true
}

// Done reports whether the habit at index was completed on day.
func (m *Matrix) Done(day calendar.Day, index int) bool {
	set, _ := m.days.Get(day)
	return set[index]
}

// Completed returns the completed indices for day in ascending order.
func (m *Matrix) Completed(day calendar.Day) []int {
	set, _ := m.days.Get(day)
	out := make([]int, 0, len(set))
	for i := range set {
		out = append(out, i)
	}
	sort.Ints(out)
	return out
}

// Count returns how many days the habit at index was completed.
func (m *Matrix) Count(index int) int {
	n := 0
	m.days.Each(func(_ calendar.Day, set checks) bool {
		if set[index] {
			n++
		}
		return true
	})
	return n
}

// Days returns the days with at least one completion.
func (m *Matrix) Days() []calendar.Day { return m.days.Days() }

// removeIndex drops cells at index and shifts cells above it down by one.
// Days left without any cell are pruned.
func (m *Matrix) removeIndex(index int) {
	m.days.Update(func(_ calendar.Day, set checks) (checks, bool) {
		next := make(checks, len(set))
		for i, done := range set {
			switch {
			case i < index:
				next[i] = done
			case i > index:
				next[i-1] = done
			}
		}
		return next, len(next) > 0
	})
}
