// Package sleep records hours slept per day.
package sleep

import (
	"strconv"
	"strings"
	"sync"

	"tableflip.dev/habitus/pkg/calendar"
	"tableflip.dev/habitus/pkg/daystore"
	"tableflip.dev/habitus/pkg/notify"
)

// DefaultMaxHours bounds accepted input when no other bound is configured.
const DefaultMaxHours = 24

// Outcome describes what SetText did with its input.
type Outcome int

const (
	// Rejected means the input was out of range; the prior value stands.
	Rejected Outcome = iota
	// Stored means the hours were recorded.
	Stored
	// Cleared means the input was empty and the entry was removed.
	Cleared
)

// String implements fmt.Stringer.
func (o Outcome) String() string {
	switch o {
	case Stored:
		return "stored"
	case Cleared:
		return "cleared"
	default:
		return "rejected"
	}
}

// ParseHours strips every non-digit from text and interprets the rest as
// hours. Empty input yields Cleared; values outside 1..max yield Rejected.
func ParseHours(text string, max int) (int, Outcome) {
	digits := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, text)
	if digits == "" {
		return 0, Cleared
	}
	// Long digit runs overflow; they are out of range either way.
	if len(strings.TrimLeft(digits, "0")) > 4 {
		return 0, Rejected
	}
	hours, err := strconv.Atoi(digits)
	if err != nil || hours < 1 || hours > max {
		return 0, Rejected
	}
	return hours, Stored
}

// Log holds hours slept per day, partitioned by month.
type Log struct {
	mu       sync.RWMutex
	maxHours int
	book     *daystore.Book[int]
	hub      *notify.Hub
}

// NewLog returns an empty log accepting 1..maxHours. A maxHours below 1 uses
// DefaultMaxHours; a nil hub gets a private one.
func NewLog(maxHours int, hub *notify.Hub) *Log {
	if maxHours < 1 {
		maxHours = DefaultMaxHours
	}
	if hub == nil {
		hub = notify.NewHub()
	}
	return &Log{
		maxHours: maxHours,
		book:     daystore.NewBook[int](),
		hub:      hub,
	}
}

// MaxHours returns the upper bound for accepted input.
func (l *Log) MaxHours() int { return l.maxHours }

// Subscribe registers fn for change events.
func (l *Log) Subscribe(fn notify.Listener) func() { return l.hub.Subscribe(fn) }

// SetText sanitizes raw user input and applies it to day of month.
func (l *Log) SetText(month calendar.Month, day calendar.Day, text string) Outcome {
	if !month.Contains(day) {
		return Rejected
	}
	hours, outcome := ParseHours(text, l.maxHours)
	switch outcome {
	case Stored:
		l.mu.Lock()
		s := l.book.For(month)
		prev, had := s.Get(day)
		s.Set(day, hours)
		l.mu.Unlock()
		if !had || prev != hours {
			l.publish(month.Key, day)
		}
	case Cleared:
		l.mu.Lock()
		removed := false
		if s, ok := l.book.Lookup(month.Key); ok {
			removed = s.Clear(day)
		}
		l.mu.Unlock()
		if removed {
			l.publish(month.Key, day)
		}
	}
	return outcome
}

// Clear removes the entry for day of month.
func (l *Log) Clear(month calendar.MonthKey, day calendar.Day) bool {
	l.mu.Lock()
	removed := false
	if s, ok := l.book.Lookup(month); ok {
		removed = s.Clear(day)
	}
	l.mu.Unlock()
	if removed {
		l.publish(month, day)
	}
	return removed
}

func (l *Log) publish(month calendar.MonthKey, day calendar.Day) {
	l.hub.Publish(notify.Event{Type: notify.EventSleepChanged, Month: month, Day: day})
}

// Hours returns the hours logged for day of month.
func (l *Log) Hours(month calendar.MonthKey, day calendar.Day) (int, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	s, ok := l.book.Lookup(month)
	if !ok {
		return 0, false
	}
	return s.Get(day)
}

// Month returns a copy of the hours logged in month.
func (l *Log) Month(month calendar.MonthKey) map[calendar.Day]int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	s, ok := l.book.Lookup(month)
	if !ok {
		return map[calendar.Day]int{}
	}
	return s.Snapshot()
}

// Total returns the hours logged across month.
func (l *Log) Total(month calendar.MonthKey) int {
	total := 0
	for _, h := range l.Month(month) {
		total += h
	}
	return total
}

// Average returns the mean hours over logged days of month and whether any
// day was logged.
func (l *Log) Average(month calendar.MonthKey) (float64, bool) {
	hours := l.Month(month)
	if len(hours) == 0 {
		return 0, false
	}
	total := 0
	for _, h := range hours {
		total += h
	}
	return float64(total) / float64(len(hours)), true
}
