package habit

import (
	"sync"

	"tableflip.dev/habitus/pkg/calendar"
	"tableflip.dev/habitus/pkg/notify"
)

// Tracker owns the habit registry and the completion matrix of every month.
// Registry changes and the matching matrix reindex happen under one lock, so
// readers never see a registry that disagrees with the checks.
type Tracker struct {
	mu       sync.RWMutex
	registry Registry
	months   map[calendar.MonthKey]*Matrix

	pending    int
	hasPending bool

	hub *notify.Hub
}

// NewTracker returns an empty tracker publishing to hub. A nil hub gets a
// private one.
func NewTracker(hub *notify.Hub) *Tracker {
	if hub == nil {
		hub = notify.NewHub()
	}
	return &Tracker{
		months: make(map[calendar.MonthKey]*Matrix),
		hub:    hub,
	}
}

// Subscribe registers l for change events.
func (t *Tracker) Subscribe(l notify.Listener) func() { return t.hub.Subscribe(l) }

// Append adds a habit and returns its index.
func (t *Tracker) Append(name string) (int, bool) {
	t.mu.Lock()
	index, ok := t.registry.Append(name)
	if ok {
		t.hasPending = false
	}
	t.mu.Unlock()
	if ok {
		t.hub.Publish(notify.Event{Type: notify.EventHabitAppended, Index: index})
	}
	return index, ok
}

// Rename changes the name of the habit at index.
func (t *Tracker) Rename(index int, name string) bool {
	t.mu.Lock()
	ok := t.registry.Rename(index, name)
	if ok {
		t.hasPending = false
	}
	t.mu.Unlock()
	if ok {
		t.hub.Publish(notify.Event{Type: notify.EventHabitRenamed, Index: index})
	}
	return ok
}

// Delete removes the habit at index and reindexes every month's checks.
func (t *Tracker) Delete(index int) bool {
	t.mu.Lock()
	ok := t.deleteLocked(index)
	t.mu.Unlock()
	if ok {
		t.hub.Publish(notify.Event{Type: notify.EventHabitDeleted, Index: index})
	}
	return ok
}

func (t *Tracker) deleteLocked(index int) bool {
	if !t.registry.Delete(index) {
		return false
	}
	for _, m := range t.months {
		m.removeIndex(index)
	}
	t.hasPending = false
	return true
}

// RequestDelete records index as awaiting confirmation. Nothing is removed
// until ConfirmDelete. A newer request replaces an older one.
func (t *Tracker) RequestDelete(index int) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	if !t.registry.has(index) {
		return false
	}
	t.pending = index
	t.hasPending = true
	return true
}

// PendingDelete returns the index awaiting confirmation.
func (t *Tracker) PendingDelete() (int, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.pending, t.hasPending
}

// ConfirmDelete deletes the pending habit. It reports false when nothing was
// pending, including when another registry change cancelled the request.
func (t *Tracker) ConfirmDelete() bool {
	t.mu.Lock()
	if !t.hasPending {
		t.mu.Unlock()
		return false
	}
	index := t.pending
	ok := t.deleteLocked(index)
	t.hasPending = false
	t.mu.Unlock()
	if ok {
		t.hub.Publish(notify.Event{Type: notify.EventHabitDeleted, Index: index})
	}
	return ok
}

// CancelDelete drops a pending request.
func (t *Tracker) CancelDelete() {
	t.mu.Lock()
	t.hasPending = false
	t.mu.Unlock()
}

// Toggle flips the check for the habit at index on day of month and returns
// the new state. Unknown habits and days outside the month are ignored.
func (t *Tracker) Toggle(month calendar.Month, day calendar.Day, index int) (done bool, ok bool) {
	t.mu.Lock()
	if !t.registry.has(index) || !month.Contains(day) {
		t.mu.Unlock()
		return false, false
	}
	m := t.matrixLocked(month)
	done, ok = m.Toggle(day, index)
	t.mu.Unlock()
	if ok {
		t.hub.Publish(notify.Event{Type: notify.EventHabitToggled, Month: month.Key, Day: day, Index: index})
	}
	return done, ok
}

func (t *Tracker) matrixLocked(month calendar.Month) *Matrix {
	m, ok := t.months[month.Key]
	if !ok {
		m = newMatrix(month.Days)
		t.months[month.Key] = m
	}
	return m
}

// Habits returns the habit names in order.
func (t *Tracker) Habits() []string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.registry.Names()
}

// Len returns the number of habits.
func (t *Tracker) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.registry.Len()
}

// Name returns the name of the habit at index.
func (t *Tracker) Name(index int) (string, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.registry.Name(index)
}

// Done reports whether the habit at index was completed on day of month.
func (t *Tracker) Done(month calendar.MonthKey, day calendar.Day, index int) bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	m, ok := t.months[month]
	if !ok {
		return false
	}
	return m.Done(day, index)
}

// Completed returns the indices completed on day of month.
func (t *Tracker) Completed(month calendar.MonthKey, day calendar.Day) []int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	m, ok := t.months[month]
	if !ok {
		return []int{}
	}
	return m.Completed(day)
}

// CountFor returns the number of days in month the habit at index was done.
func (t *Tracker) CountFor(month calendar.MonthKey, index int) int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	m, ok := t.months[month]
	if !ok {
		return 0
	}
	return m.Count(index)
}

// Streak counts consecutive completed days for the habit at index ending on
// day of month, walking back into earlier months.
func (t *Tracker) Streak(month calendar.Month, day calendar.Day, index int) int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	if !month.Contains(day) {
		return 0
	}
	n := 0
	for {
		m, ok := t.months[month.Key]
		if !ok || !m.Done(day, index) {
			return n
		}
		n++
		day--
		if day < 1 {
			month = month.Prev()
			day = calendar.Day(month.Days)
		}
	}
}
