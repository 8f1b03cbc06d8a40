package daystore

import (
	"reflect"
	"testing"
	"time"

	"tableflip.dev/habitus/pkg/calendar"
)

func TestStoreGetSetClear(t *testing.T) {
	s := New[string](30)

	if _, ok := s.Get(3); ok {
		t.Fatalf("expected empty store")
	}
	if !s.Set(3, "beach") {
		t.Fatalf("Set(3) rejected")
	}
	if v, ok := s.Get(3); !ok || v != "beach" {
		t.Fatalf("Get(3) = %q, %v", v, ok)
	}
	if !s.Clear(3) {
		t.Fatalf("Clear(3) reported nothing removed")
	}
	if s.Clear(3) {
		t.Fatalf("second Clear(3) reported a removal")
	}
	if s.Len() != 0 {
		t.Fatalf("Len = %d", s.Len())
	}
}

func TestStoreRejectsOutOfRangeDays(t *testing.T) {
	s := New[int](28)
	for _, d := range []calendar.Day{calendar.NoDay, -4, 29, 31} {
		if s.Set(d, 1) {
			t.Fatalf("Set(%d) accepted for a 28 day month", d)
		}
	}
	if s.Len() != 0 {
		t.Fatalf("store changed: %v", s.Snapshot())
	}
}

func TestStoreDaysSortedAndEach(t *testing.T) {
	s := New[int](31)
	for _, d := range []calendar.Day{20, 2, 11} {
		s.Set(d, int(d)*10)
	}
	want := []calendar.Day{2, 11, 20}
	if got := s.Days(); !reflect.DeepEqual(got, want) {
		t.Fatalf("Days = %v, want %v", got, want)
	}

	var seen []calendar.Day
	s.Each(func(day calendar.Day, v int) bool {
		seen = append(seen, day)
		return day < 11
	})
	if !reflect.DeepEqual(seen, []calendar.Day{2, 11}) {
		t.Fatalf("Each visited %v", seen)
	}
}

func TestStoreUpdatePrunes(t *testing.T) {
	s := New[int](31)
	s.Set(1, 1)
	s.Set(2, 2)
	s.Update(func(_ calendar.Day, v int) (int, bool) {
		return v * 2, v != 1
	})
	if _, ok := s.Get(1); ok {
		t.Fatalf("day 1 should be pruned")
	}
	if v, _ := s.Get(2); v != 4 {
		t.Fatalf("day 2 = %d", v)
	}
}

func TestBookPartitionsByMonth(t *testing.T) {
	b := NewBook[int]()
	mar := calendar.Resolve(time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC))
	feb := calendar.Resolve(time.Date(2025, time.February, 1, 0, 0, 0, 0, time.UTC))
	jan26 := calendar.Resolve(time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC))

	b.For(mar).Set(31, 7)
	if b.For(feb).Set(31, 7) {
		t.Fatalf("February store accepted day 31")
	}
	b.For(jan26)

	if s, ok := b.Lookup(mar.Key); !ok || s.Len() != 1 {
		t.Fatalf("Lookup(%s) = %v, %v", mar.Key, s, ok)
	}
	if _, ok := b.Lookup("April 2025"); ok {
		t.Fatalf("Lookup created a store")
	}

	want := []calendar.MonthKey{"February 2025", "March 2025", "January 2026"}
	if got := b.Months(); !reflect.DeepEqual(got, want) {
		t.Fatalf("Months = %v, want %v", got, want)
	}
}
