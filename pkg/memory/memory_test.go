package memory

import (
	"testing"
	"time"

	"tableflip.dev/habitus/pkg/calendar"
	"tableflip.dev/habitus/pkg/notify"
)

var (
	may = calendar.Resolve(time.Date(2025, time.May, 1, 0, 0, 0, 0, time.UTC))
	feb = calendar.Resolve(time.Date(2025, time.February, 1, 0, 0, 0, 0, time.UTC))
)

func TestTextRoundTrip(t *testing.T) {
	j := NewJournal(nil)
	if got := j.Text(may.Key, 3); got != "" {
		t.Fatalf("Text on empty journal = %q", got)
	}
	if !j.SetText(may, 3, "picnic") {
		t.Fatalf("SetText rejected")
	}
	if got := j.Text(may.Key, 3); got != "picnic" {
		t.Fatalf("Text = %q", got)
	}
	j.SetText(may, 3, "")
	if got := j.Texts(may.Key); len(got) != 0 {
		t.Fatalf("empty text kept an entry: %v", got)
	}
	if j.SetText(feb, 30, "nope") {
		t.Fatalf("SetText accepted Feb 30")
	}
}

func TestFavoriteTextNone(t *testing.T) {
	j := NewJournal(nil)
	if _, ok := j.FavoriteText(may.Key); ok {
		t.Fatalf("favorite text without favorite")
	}

	j.SetFavorite(may, 12)
	if text, ok := j.FavoriteText(may.Key); ok || text != "" {
		t.Fatalf("favorite on empty day = %q, %v", text, ok)
	}

	j.SetText(may, 12, "concert")
	if text, ok := j.FavoriteText(may.Key); !ok || text != "concert" {
		t.Fatalf("FavoriteText = %q, %v", text, ok)
	}

	j.SetText(may, 12, "")
	if _, ok := j.FavoriteText(may.Key); ok {
		t.Fatalf("cleared text still reported")
	}
	if day, ok := j.Favorite(may.Key); !ok || day != 12 {
		t.Fatalf("favorite lost when text cleared: %d, %v", day, ok)
	}
}

func TestSetFavoriteIsAssignment(t *testing.T) {
	j := NewJournal(nil)
	j.SetText(may, 1, "one")
	j.SetText(may, 2, "two")

	j.SetFavorite(may, 1)
	j.SetFavorite(may, 2)
	if text, _ := j.FavoriteText(may.Key); text != "two" {
		t.Fatalf("FavoriteText = %q", text)
	}

	j.SetFavorite(may, 2)
	if day, ok := j.Favorite(may.Key); !ok || day != 2 {
		t.Fatalf("repeat SetFavorite changed state: %d, %v", day, ok)
	}

	j.SetFavorite(may, calendar.NoDay)
	if _, ok := j.Favorite(may.Key); ok {
		t.Fatalf("NoDay did not clear favorite")
	}
}

func TestSetFavoriteRejectsOutOfRange(t *testing.T) {
	j := NewJournal(nil)
	j.SetText(feb, 28, "last day")
	j.SetFavorite(feb, 28)

	for _, d := range []calendar.Day{29, 31, -1} {
		if j.SetFavorite(feb, d) {
			t.Fatalf("SetFavorite(%d) accepted for February 2025", d)
		}
	}
	if text, ok := j.FavoriteText(feb.Key); !ok || text != "last day" {
		t.Fatalf("rejected favorite replaced previous: %q, %v", text, ok)
	}
}

func TestMonthsAreIndependent(t *testing.T) {
	j := NewJournal(nil)
	j.SetText(may, 5, "may")
	j.SetText(may.Next(), 5, "june")
	j.SetFavorite(may, 5)

	if _, ok := j.FavoriteText(may.Next().Key); ok {
		t.Fatalf("favorite leaked into June")
	}
	if got := j.Text(may.Next().Key, 5); got != "june" {
		t.Fatalf("June text = %q", got)
	}
}

func TestFavoriteEvents(t *testing.T) {
	hub := notify.NewHub()
	j := NewJournal(hub)
	var got []notify.Event
	hub.Subscribe(func(ev notify.Event) { got = append(got, ev) })

	j.SetFavorite(may, 4)
	j.SetFavorite(may, 4)
	j.SetFavorite(may, 40)
	j.SetFavorite(may, calendar.NoDay)

	if len(got) != 2 {
		t.Fatalf("events = %+v", got)
	}
	if got[0].Day != 4 || got[1].Day != calendar.NoDay {
		t.Fatalf("unexpected events %+v", got)
	}
}
