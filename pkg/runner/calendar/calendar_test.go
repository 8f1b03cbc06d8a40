package calendar

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/fatih/color"
)

func TestCalendarJSON(t *testing.T) {
	on := time.Date(2024, time.February, 29, 0, 0, 0, 0, time.UTC)
	var buf bytes.Buffer
	c := &Calendar{On: &on, JSON: true, Out: &buf}
	if err := c.Do(context.Background()); err != nil {
		t.Fatalf("Do: %v", err)
	}
	var got Summary
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("output is not json: %v\n%s", err, buf.String())
	}
	want := Summary{Month: "February 2024", Year: 2024, Days: 29, FirstWeekday: "Thursday", Day: 29}
	if got != want {
		t.Fatalf("summary = %+v, want %+v", got, want)
	}
}

func TestCalendarText(t *testing.T) {
	prev := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = prev })

	on := time.Date(2025, time.April, 2, 0, 0, 0, 0, time.UTC)
	var buf bytes.Buffer
	c := &Calendar{On: &on, Out: &buf}
	if err := c.Do(context.Background()); err != nil {
		t.Fatalf("Do: %v", err)
	}
	out := buf.String()
	for _, want := range []string{"April 2025", "Su Mo Tu We Th Fr Sa", "30", "April 2025 has 30 days"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}
