// Package memory keeps a short written memory per day and one favorite day
// per month.
package memory

import (
	"sync"

	"tableflip.dev/habitus/pkg/calendar"
	"tableflip.dev/habitus/pkg/daystore"
	"tableflip.dev/habitus/pkg/notify"
)

type month struct {
	texts    *daystore.Store[string]
	favorite calendar.Day
}

// Journal stores memories per month plus each month's favorite day.
type Journal struct {
	mu     sync.RWMutex
	months map[calendar.MonthKey]*month
	hub    *notify.Hub
}

// NewJournal returns an empty journal. A nil hub gets a private one.
func NewJournal(hub *notify.Hub) *Journal {
	if hub == nil {
		hub = notify.NewHub()
	}
	return &Journal{
		months: make(map[calendar.MonthKey]*month),
		hub:    hub,
	}
}

// Subscribe registers l for change events.
func (j *Journal) Subscribe(l notify.Listener) func() { return j.hub.Subscribe(l) }

func (j *Journal) monthLocked(m calendar.Month) *month {
	md, ok := j.months[m.Key]
	if !ok {
		md = &month{texts: daystore.New[string](m.Days)}
		j.months[m.Key] = md
	}
	return md
}

// SetText records text for day of m. Empty text removes the entry. Days
// outside the month are ignored.
func (j *Journal) SetText(m calendar.Month, day calendar.Day, text string) bool {
	if !m.Contains(day) {
		return false
	}
	j.mu.Lock()
	md := j.monthLocked(m)
	prev, _ := md.texts.Get(day)
	if text == "" {
		md.texts.Clear(day)
	} else {
		md.texts.Set(day, text)
	}
	j.mu.Unlock()
	if prev != text {
		j.hub.Publish(notify.Event{Type: notify.EventMemoryChanged, Month: m.Key, Day: day})
	}
	return true
}

// Text returns the memory for day of month, or "" when none was written.
func (j *Journal) Text(key calendar.MonthKey, day calendar.Day) string {
	j.mu.RLock()
	defer j.mu.RUnlock()
	md, ok := j.months[key]
	if !ok {
		return ""
	}
	text, _ := md.texts.Get(day)
	return text
}

// Texts returns a copy of the memories written in month.
func (j *Journal) Texts(key calendar.MonthKey) map[calendar.Day]string {
	j.mu.RLock()
	defer j.mu.RUnlock()
	md, ok := j.months[key]
	if !ok {
		return map[calendar.Day]string{}
	}
	return md.texts.Snapshot()
}

// SetFavorite replaces the favorite day of m. calendar.NoDay clears it. A
// day outside the month is rejected and the favorite is left unchanged.
func (j *Journal) SetFavorite(m calendar.Month, day calendar.Day) bool {
	if day != calendar.NoDay && !m.Contains(day) {
		return false
	}
	j.mu.Lock()
	md := j.monthLocked(m)
	changed := md.favorite != day
	md.favorite = day
	j.mu.Unlock()
	if changed {
		j.hub.Publish(notify.Event{Type: notify.EventFavoriteChanged, Month: m.Key, Day: day})
	}
	return true
}

// Favorite returns the favorite day of month.
func (j *Journal) Favorite(key calendar.MonthKey) (calendar.Day, bool) {
	j.mu.RLock()
	defer j.mu.RUnlock()
	md, ok := j.favoriteLocked(key)
	if !ok {
		return calendar.NoDay, false
	}
	return md.favorite, true
}

func (j *Journal) favoriteLocked(key calendar.MonthKey) (*month, bool) {
	md, ok := j.months[key]
	if !ok || md.favorite == calendar.NoDay {
		return nil, false
	}
	if !md.favorite.Valid(md.texts.DaysInMonth()) {
		return nil, false
	}
	return md, true
}

// FavoriteText returns the memory written on the favorite day of month. It
// reports false when no favorite is set or nothing was written that day.
func (j *Journal) FavoriteText(key calendar.MonthKey) (string, bool) {
	j.mu.RLock()
	defer j.mu.RUnlock()
	md, ok := j.favoriteLocked(key)
	if !ok {
		return "", false
	}
	text, _ := md.texts.Get(md.favorite)
	if text == "" {
		return "", false
	}
	return text, true
}
