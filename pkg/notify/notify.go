// Package notify delivers change notifications from the trackers to
// whoever renders them.
package notify

import (
	"fmt"
	"sort"
	"sync"

	"tableflip.dev/habitus/pkg/calendar"
)

// EventType describes the nature of a change notification.
type EventType int

const (
	// EventHabitAppended indicates a habit was added at Index.
	EventHabitAppended EventType = iota
	// EventHabitRenamed indicates the habit at Index changed name.
	EventHabitRenamed
	// EventHabitDeleted indicates the habit at Index was removed and all
	// later habits (and their checks) moved down by one.
	EventHabitDeleted
	// EventHabitToggled indicates the check for (Month, Day, Index) flipped.
	EventHabitToggled
	// EventSleepChanged indicates the hours for (Month, Day) were stored or
	// cleared.
	EventSleepChanged
	// EventMemoryChanged indicates the text for (Month, Day) changed.
	EventMemoryChanged
	// EventFavoriteChanged indicates the favorite day of Month changed.
	EventFavoriteChanged
)

var eventNames = map[EventType]string{
	EventHabitAppended:   "habit-appended",
	EventHabitRenamed:    "habit-renamed",
	EventHabitDeleted:    "habit-deleted",
	EventHabitToggled:    "habit-toggled",
	EventSleepChanged:    "sleep-changed",
	EventMemoryChanged:   "memory-changed",
	EventFavoriteChanged: "favorite-changed",
}

// String implements fmt.Stringer.
func (t EventType) String() string {
	if name, ok := eventNames[t]; ok {
		return name
	}
	return fmt.Sprintf("event(%d)", int(t))
}

// Event is published after a successful mutation.
type Event struct {
	Type  EventType
	Month calendar.MonthKey
	Day   calendar.Day
	Index int
}

// Describe renders the event for logs and status lines.
func (e Event) Describe() string {
	switch e.Type {
	case EventHabitAppended, EventHabitRenamed, EventHabitDeleted:
		return fmt.Sprintf("%s index:%d", e.Type, e.Index)
	case EventHabitToggled:
		return fmt.Sprintf("%s month:%q day:%d index:%d", e.Type, e.Month, e.Day, e.Index)
	default:
		return fmt.Sprintf("%s month:%q day:%d", e.Type, e.Month, e.Day)
	}
}

// Listener receives events.
type Listener func(Event)

// Hub fans events out to listeners in subscription order. The zero value is
// ready to use.
type Hub struct {
	mu        sync.Mutex
	next      int
	listeners map[int]Listener
}

// NewHub returns an empty hub.
func NewHub() *Hub { return &Hub{} }

// Subscribe registers l and returns a func that removes it. Calling the
// returned func more than once is harmless.
func (h *Hub) Subscribe(l Listener) func() {
	if l == nil {
		return func() {}
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.listeners == nil {
		h.listeners = make(map[int]Listener)
	}
	id := h.next
	h.next++
	h.listeners[id] = l
	return func() {
		h.mu.Lock()
		delete(h.listeners, id)
		h.mu.Unlock()
	}
}

// Publish calls every listener synchronously. Listeners run without the hub
// lock held, so they may subscribe, unsubscribe or read the stores.
func (h *Hub) Publish(ev Event) {
	h.mu.Lock()
	ids := make([]int, 0, len(h.listeners))
	for id := range h.listeners {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	ls := make([]Listener, 0, len(ids))
	for _, id := range ids {
		ls = append(ls, h.listeners[id])
	}
	h.mu.Unlock()

	for _, l := range ls {
		l(ev)
	}
}

// Len returns the number of registered listeners.
func (h *Hub) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.listeners)
}
