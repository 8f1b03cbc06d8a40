// Package app wires the trackers into a Session: the single in-memory
// instance a host (CLI runner or TUI) owns for as long as it runs.
package app

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"tableflip.dev/habitus/pkg/calendar"
	"tableflip.dev/habitus/pkg/habit"
	"tableflip.dev/habitus/pkg/memory"
	"tableflip.dev/habitus/pkg/notify"
	"tableflip.dev/habitus/pkg/sleep"
)

// Options configures a Session.
type Options struct {
	Clock         calendar.Clock
	Logger        *zap.Logger
	SleepMaxHours int
}

// Session holds every tracker for one run of the application. Nothing is
// persisted; all state is discarded with the Session.
type Session struct {
	ID string

	Habits   *habit.Tracker
	Sleep    *sleep.Log
	Memories *memory.Journal

	hub   *notify.Hub
	clock calendar.Clock
	log   *zap.Logger

	mu    sync.RWMutex
	month calendar.Month
}

// NewSession returns an empty session and resolves the current month.
func NewSession(opts Options) *Session {
	if opts.Clock == nil {
		opts.Clock = time.Now
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	hub := notify.NewHub()
	id := uuid.NewString()
	s := &Session{
		ID:       id,
		Habits:   habit.NewTracker(hub),
		Sleep:    sleep.NewLog(opts.SleepMaxHours, hub),
		Memories: memory.NewJournal(hub),
		hub:      hub,
		clock:    opts.Clock,
		log:      opts.Logger.With(zap.String("session", id)),
	}
	s.Activate()
	s.hub.Subscribe(func(ev notify.Event) {
		s.log.Debug("state changed",
			zap.Stringer("event", ev.Type),
			zap.String("month", string(ev.Month)),
			zap.Int("day", int(ev.Day)),
			zap.Int("index", ev.Index))
	})
	return s
}

// Subscribe registers l for every change made through any tracker of the
// session. The returned func unsubscribes.
func (s *Session) Subscribe(l notify.Listener) func() { return s.hub.Subscribe(l) }

// Activate re-resolves the working month from the clock. Screens call it when
// they become active; an open screen does not follow a month rollover.
func (s *Session) Activate() calendar.Month {
	m := calendar.Resolve(s.clock())
	s.mu.Lock()
	prev := s.month
	s.month = m
	s.mu.Unlock()
	if prev.Key != m.Key {
		s.log.Info("month activated", zap.String("month", string(m.Key)), zap.Int("days", m.Days))
	}
	return m
}

// Month returns the month resolved by the last Activate.
func (s *Session) Month() calendar.Month {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.month
}

// Today returns the current day when the clock is inside the active month,
// else NoDay.
func (s *Session) Today() calendar.Day {
	now := s.clock()
	m := s.Month()
	if now.Year() != m.Year || now.Month() != m.Month {
		return calendar.NoDay
	}
	return calendar.Day(now.Day())
}

// AppendHabit adds a habit. Blank names are ignored.
func (s *Session) AppendHabit(name string) (int, bool) {
	i, ok := s.Habits.Append(name)
	if !ok {
		s.log.Debug("habit append ignored", zap.String("reason", "blank name"))
	}
	return i, ok
}

// RenameHabit renames the habit at index.
func (s *Session) RenameHabit(index int, name string) bool {
	ok := s.Habits.Rename(index, name)
	if !ok {
		s.log.Debug("habit rename ignored", zap.Int("index", index))
	}
	return ok
}

// RequestHabitDelete starts the two-phase delete of the habit at index.
func (s *Session) RequestHabitDelete(index int) bool { return s.Habits.RequestDelete(index) }

// ConfirmHabitDelete deletes the habit awaiting confirmation.
func (s *Session) ConfirmHabitDelete() bool { return s.Habits.ConfirmDelete() }

// CancelHabitDelete abandons a pending delete.
func (s *Session) CancelHabitDelete() { s.Habits.CancelDelete() }

// PendingHabitDelete returns the habit index awaiting confirmation.
func (s *Session) PendingHabitDelete() (int, bool) { return s.Habits.PendingDelete() }

// DeleteHabit deletes the habit at index immediately.
func (s *Session) DeleteHabit(index int) bool { return s.Habits.Delete(index) }

// HabitList returns the habit names.
func (s *Session) HabitList() []string { return s.Habits.Habits() }

// ToggleCheck flips the habit at index on day of the active month.
func (s *Session) ToggleCheck(day calendar.Day, index int) (bool, bool) {
	return s.Habits.Toggle(s.Month(), day, index)
}

// Done reports whether the habit at index was done on day of the active
// month.
func (s *Session) Done(day calendar.Day, index int) bool {
	return s.Habits.Done(s.Month().Key, day, index)
}

// SetSleep applies raw text input to day of the active month.
func (s *Session) SetSleep(day calendar.Day, text string) sleep.Outcome {
	out := s.Sleep.SetText(s.Month(), day, text)
	if out == sleep.Rejected {
		s.log.Debug("sleep input rejected", zap.Int("day", int(day)), zap.Int("max_hours", s.Sleep.MaxHours()))
	}
	return out
}

// ClearSleep removes the hours for day of the active month.
func (s *Session) ClearSleep(day calendar.Day) bool {
	return s.Sleep.Clear(s.Month().Key, day)
}

// SleepHours returns the hours for day of the active month.
func (s *Session) SleepHours(day calendar.Day) (int, bool) {
	return s.Sleep.Hours(s.Month().Key, day)
}

// SetMemoryText records text for day of the active month.
func (s *Session) SetMemoryText(day calendar.Day, text string) bool {
	return s.Memories.SetText(s.Month(), day, text)
}

// MemoryText returns the memory for day of the active month.
func (s *Session) MemoryText(day calendar.Day) string {
	return s.Memories.Text(s.Month().Key, day)
}

// SetFavorite replaces the favorite day of month; calendar.NoDay clears it.
func (s *Session) SetFavorite(month calendar.Month, day calendar.Day) bool {
	return s.Memories.SetFavorite(month, day)
}

// ToggleFavorite marks day as the favorite of the active month, or clears
// the favorite when day already holds it. It returns the favorite after the
// change.
func (s *Session) ToggleFavorite(day calendar.Day) calendar.Day {
	m := s.Month()
	next := day
	if cur, ok := s.Memories.Favorite(m.Key); ok && cur == day {
		next = calendar.NoDay
	}
	if !s.Memories.SetFavorite(m, next) {
		cur, _ := s.Memories.Favorite(m.Key)
		return cur
	}
	return next
}

// Favorite returns the favorite day of the active month.
func (s *Session) Favorite() (calendar.Day, bool) {
	return s.Memories.Favorite(s.Month().Key)
}

// FavoriteText returns the favorite memory of month.
func (s *Session) FavoriteText(month calendar.MonthKey) (string, bool) {
	return s.Memories.FavoriteText(month)
}

// MonthFavorite is one row of the year overview.
type MonthFavorite struct {
	Month calendar.Month
	Day   calendar.Day
	Text  string
	OK    bool
}

// YearOverview returns the favorite memory of each month of year.
func (s *Session) YearOverview(year int) []MonthFavorite {
	months := calendar.YearMonths(year)
	out := make([]MonthFavorite, 0, len(months))
	for _, m := range months {
		row := MonthFavorite{Month: m}
		row.Day, _ = s.Memories.Favorite(m.Key)
		row.Text, row.OK = s.Memories.FavoriteText(m.Key)
		out = append(out, row)
	}
	return out
}
