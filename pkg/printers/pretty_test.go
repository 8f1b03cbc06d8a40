package printers

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/fatih/color"

	"tableflip.dev/habitus/pkg/app"
	"tableflip.dev/habitus/pkg/calendar"
)

func newPrinter(t *testing.T) (*PrettyPrint, *bytes.Buffer) {
	t.Helper()
	prev := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = prev })
	var buf bytes.Buffer
	return &PrettyPrint{Out: &buf}, &buf
}

func TestMonthGrid(t *testing.T) {
	pp, buf := newPrinter(t)
	feb := calendar.Resolve(time.Date(2024, time.February, 1, 0, 0, 0, 0, time.UTC))
	pp.Month(feb, map[calendar.Day]bool{3: true}, 14)

	out := buf.String()
	if !strings.Contains(out, "February 2024") {
		t.Fatalf("missing title:\n%s", out)
	}
	lines := strings.Split(out, "\n")
	// Feb 1 2024 is a Thursday: four blank cells precede it.
	if !strings.HasPrefix(lines[2], strings.Repeat("   ", 4)+" 1  2  3") {
		t.Fatalf("first week misaligned: %q", lines[2])
	}
	if !strings.Contains(out, "29") || strings.Contains(out, "30") {
		t.Fatalf("unexpected day range:\n%s", out)
	}
}

func TestHabitsGrid(t *testing.T) {
	pp, buf := newPrinter(t)
	s := app.NewSession(app.Options{Clock: func() time.Time {
		return time.Date(2025, time.April, 2, 0, 0, 0, 0, time.UTC)
	}})
	pp.Habits(s, s.Month())
	if !strings.Contains(buf.String(), "no habits") {
		t.Fatalf("expected empty notice, got %q", buf.String())
	}

	buf.Reset()
	s.AppendHabit("read")
	s.AppendHabit("walk")
	s.ToggleCheck(2, 1)
	pp.Habits(s, s.Month())
	out := buf.String()
	if !strings.Contains(out, "read") || !strings.Contains(out, "walk") {
		t.Fatalf("missing header:\n%s", out)
	}
	var day2 string
	for _, line := range strings.Split(out, "\n") {
		if strings.HasPrefix(strings.TrimSpace(line), "2 We") {
			day2 = line
		}
	}
	fields := strings.Fields(day2)
	if len(fields) != 4 || fields[2] != "·" || fields[3] != "X" {
		t.Fatalf("day 2 row = %q", day2)
	}
	if strings.Count(out, "\n") < 31 {
		t.Fatalf("expected a row per day:\n%s", out)
	}
}

func TestSleepBars(t *testing.T) {
	pp, buf := newPrinter(t)
	jun := calendar.Resolve(time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC))
	pp.Sleep(jun, map[calendar.Day]int{2: 8, 1: 5}, 10)
	out := buf.String()
	first := strings.Index(out, " 1 █████")
	second := strings.Index(out, " 2 ████████")
	if first < 0 || second < 0 || first > second {
		t.Fatalf("unexpected bars:\n%s", out)
	}
	if !strings.Contains(out, "8h") {
		t.Fatalf("missing hours label:\n%s", out)
	}
}

func TestYearOverviewAndReport(t *testing.T) {
	pp, buf := newPrinter(t)
	s := app.NewSession(app.Options{Clock: func() time.Time {
		return time.Date(2025, time.March, 9, 0, 0, 0, 0, time.UTC)
	}})
	s.SetMemoryText(9, "first warm day")
	s.ToggleFavorite(9)

	pp.YearOverview(2025, s.YearOverview(2025))
	out := buf.String()
	if !strings.Contains(out, "first warm day (day 9)") {
		t.Fatalf("favorite missing:\n%s", out)
	}
	if strings.Count(out, "no favorite memory yet") != 11 {
		t.Fatalf("expected 11 empty months:\n%s", out)
	}

	buf.Reset()
	s.AppendHabit("read")
	s.ToggleCheck(9, 0)
	pp.Report(s.Report(s.Month()))
	out = buf.String()
	for _, want := range []string{"March 2025", "read", "1/31", "sleep: nothing logged", "★ 9: first warm day"} {
		if !strings.Contains(out, want) {
			t.Fatalf("report missing %q:\n%s", want, out)
		}
	}
}
