package habit

import (
	"reflect"
	"testing"
	"time"

	"tableflip.dev/habitus/pkg/calendar"
	"tableflip.dev/habitus/pkg/notify"
)

var (
	march = calendar.Resolve(time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC))
	april = calendar.Resolve(time.Date(2025, time.April, 1, 0, 0, 0, 0, time.UTC))
)

func newTrackerWith(names ...string) *Tracker {
	tr := NewTracker(nil)
	for _, n := range names {
		tr.Append(n)
	}
	return tr
}

type cell struct {
	month calendar.MonthKey
	day   calendar.Day
	index int
}

func snapshot(tr *Tracker) map[cell]bool {
	out := make(map[cell]bool)
	tr.mu.RLock()
	defer tr.mu.RUnlock()
	for key, m := range tr.months {
		for _, d := range m.Days() {
			for _, i := range m.Completed(d) {
				out[cell{key, d, i}] = true
			}
		}
	}
	return out
}

func TestToggleIsInvolution(t *testing.T) {
	tr := newTrackerWith("read")
	before := tr.Done(march.Key, 5, 0)

	if done, ok := tr.Toggle(march, 5, 0); !ok || done == before {
		t.Fatalf("first toggle = %v, %v", done, ok)
	}
	if done, ok := tr.Toggle(march, 5, 0); !ok || done != before {
		t.Fatalf("second toggle = %v, %v", done, ok)
	}
	if tr.Done(march.Key, 5, 0) != before {
		t.Fatalf("state not restored")
	}
	if got := snapshot(tr); len(got) != 0 {
		t.Fatalf("toggled-off cell left behind: %v", got)
	}
}

func TestToggleIgnoresUnknownHabitAndDay(t *testing.T) {
	tr := newTrackerWith("read")
	if _, ok := tr.Toggle(march, 5, 1); ok {
		t.Fatalf("toggle accepted for unknown habit")
	}
	feb := calendar.Resolve(time.Date(2023, time.February, 1, 0, 0, 0, 0, time.UTC))
	if _, ok := tr.Toggle(feb, 29, 0); ok {
		t.Fatalf("toggle accepted for Feb 29 2023")
	}
	if _, ok := tr.Toggle(march, calendar.NoDay, 0); ok {
		t.Fatalf("toggle accepted for day 0")
	}
	if got := snapshot(tr); len(got) != 0 {
		t.Fatalf("unexpected cells: %v", got)
	}
}

func TestDeleteReindexesEveryMonth(t *testing.T) {
	tr := newTrackerWith("a", "b", "c", "d")
	const n = 4
	toggles := []cell{
		{march.Key, 1, 0}, {march.Key, 1, 1}, {march.Key, 1, 2}, {march.Key, 1, 3},
		{march.Key, 2, 1},
		{march.Key, 3, 3},
		{april.Key, 30, 0}, {april.Key, 30, 2},
	}
	for _, c := range toggles {
		m := march
		if c.month == april.Key {
			m = april
		}
		if _, ok := tr.Toggle(m, c.day, c.index); !ok {
			t.Fatalf("toggle %+v failed", c)
		}
	}
	before := snapshot(tr)

	const del = 1
	if !tr.Delete(del) {
		t.Fatalf("Delete(%d) failed", del)
	}
	if tr.Len() != n-1 {
		t.Fatalf("Len = %d, want %d", tr.Len(), n-1)
	}
	if want := []string{"a", "c", "d"}; !reflect.DeepEqual(tr.Habits(), want) {
		t.Fatalf("Habits = %v, want %v", tr.Habits(), want)
	}

	want := make(map[cell]bool)
	for c := range before {
		switch {
		case c.index < del:
			want[c] = true
		case c.index > del:
			want[cell{c.month, c.day, c.index - 1}] = true
		}
	}
	after := snapshot(tr)
	if !reflect.DeepEqual(after, want) {
		t.Fatalf("after delete = %v, want %v", after, want)
	}
	for c := range after {
		if c.index >= n-1 {
			t.Fatalf("stale index left: %+v", c)
		}
	}
	// Day 2 only had the deleted habit checked.
	if days := tr.months[march.Key].Days(); !reflect.DeepEqual(days, []calendar.Day{1, 3}) {
		t.Fatalf("march days = %v", days)
	}
}

func TestDeleteOnlyHabitPrunesDays(t *testing.T) {
	tr := newTrackerWith("only")
	tr.Toggle(march, 9, 0)
	tr.Toggle(march, 10, 0)

	if !tr.Delete(0) {
		t.Fatalf("Delete(0) failed")
	}
	if got := tr.Completed(march.Key, 9); len(got) != 0 {
		t.Fatalf("day 9 still has %v", got)
	}
	if days := tr.months[march.Key].Days(); len(days) != 0 {
		t.Fatalf("days not pruned: %v", days)
	}
}

func TestDeleteOutOfRangeIsNoop(t *testing.T) {
	tr := newTrackerWith("a")
	tr.Toggle(march, 1, 0)
	if tr.Delete(1) || tr.Delete(-1) {
		t.Fatalf("out of range delete accepted")
	}
	if !tr.Done(march.Key, 1, 0) || tr.Len() != 1 {
		t.Fatalf("state changed by rejected delete")
	}
}

func TestTwoPhaseDelete(t *testing.T) {
	tr := newTrackerWith("a", "b")

	if tr.ConfirmDelete() {
		t.Fatalf("confirm without request deleted something")
	}
	if tr.RequestDelete(7) {
		t.Fatalf("request accepted for unknown index")
	}

	if !tr.RequestDelete(0) {
		t.Fatalf("RequestDelete(0) failed")
	}
	if tr.Len() != 2 {
		t.Fatalf("request removed a habit")
	}
	tr.CancelDelete()
	if _, ok := tr.PendingDelete(); ok {
		t.Fatalf("cancel left a pending request")
	}
	if tr.ConfirmDelete() {
		t.Fatalf("confirm after cancel deleted")
	}

	tr.RequestDelete(0)
	tr.RequestDelete(1)
	if idx, ok := tr.PendingDelete(); !ok || idx != 1 {
		t.Fatalf("PendingDelete = %d, %v", idx, ok)
	}
	if !tr.ConfirmDelete() {
		t.Fatalf("ConfirmDelete failed")
	}
	if want := []string{"a"}; !reflect.DeepEqual(tr.Habits(), want) {
		t.Fatalf("Habits = %v", tr.Habits())
	}
}

func TestPendingDeleteInvalidatedByOtherMutations(t *testing.T) {
	tr := newTrackerWith("a", "b", "c")
	tr.RequestDelete(2)
	tr.Delete(0)
	if tr.ConfirmDelete() {
		t.Fatalf("confirm used an index shifted by another delete")
	}

	tr.RequestDelete(0)
	tr.Append("d")
	if _, ok := tr.PendingDelete(); ok {
		t.Fatalf("append did not cancel pending delete")
	}

	tr.RequestDelete(0)
	tr.Rename(1, "renamed")
	if tr.ConfirmDelete() {
		t.Fatalf("rename did not cancel pending delete")
	}
}

func TestCountAndStreak(t *testing.T) {
	tr := newTrackerWith("a", "b")
	for _, d := range []calendar.Day{29, 30, 31} {
		tr.Toggle(march, d, 0)
	}
	for _, d := range []calendar.Day{1, 2} {
		tr.Toggle(april, d, 0)
	}
	tr.Toggle(april, 2, 1)

	if got := tr.CountFor(march.Key, 0); got != 3 {
		t.Fatalf("CountFor(march, 0) = %d", got)
	}
	if got := tr.CountFor("June 2025", 0); got != 0 {
		t.Fatalf("CountFor(unknown) = %d", got)
	}
	if got := tr.Streak(april, 2, 0); got != 5 {
		t.Fatalf("Streak across months = %d, want 5", got)
	}
	if got := tr.Streak(april, 2, 1); got != 1 {
		t.Fatalf("Streak(b) = %d", got)
	}
	if got := tr.Streak(april, 3, 0); got != 0 {
		t.Fatalf("Streak on unchecked day = %d", got)
	}
}

func TestTrackerPublishesAfterMutation(t *testing.T) {
	hub := notify.NewHub()
	tr := NewTracker(hub)
	var events []notify.Event
	hub.Subscribe(func(ev notify.Event) {
		// Listeners may read the tracker; the lock is released.
		_ = tr.Len()
		events = append(events, ev)
	})

	tr.Append("a")
	tr.Append("")
	tr.Toggle(march, 3, 0)
	tr.Rename(0, "b")
	tr.RequestDelete(0)
	tr.ConfirmDelete()

	var got []notify.EventType
	for _, ev := range events {
		got = append(got, ev.Type)
	}
	want := []notify.EventType{
		notify.EventHabitAppended,
		notify.EventHabitToggled,
		notify.EventHabitRenamed,
		notify.EventHabitDeleted,
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("events = %v, want %v", got, want)
	}
	if ev := events[1]; ev.Month != march.Key || ev.Day != 3 || ev.Index != 0 {
		t.Fatalf("toggle event = %+v", ev)
	}
}
