package demo

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"time"

	"tableflip.dev/habitus/pkg/app"
	"tableflip.dev/habitus/pkg/calendar"
	"tableflip.dev/habitus/pkg/config"
	"tableflip.dev/habitus/pkg/printers"
)

// Demo prints a throwaway session filled with sample data.
type Demo struct {
	Config config.Config
	On     *time.Time
	// JSON prints the month report as JSON instead of the pretty output.
	JSON bool
	Out  io.Writer
}

func (d *Demo) Do(_ context.Context) error {
	now := time.Now()
	if d.On != nil {
		now = *d.On
	}
	s := app.NewSession(app.Options{
		Clock:         func() time.Time { return now },
		SleepMaxHours: d.Config.SleepMaxHours,
	})
	Seed(s)

	month := s.Month()
	pp := &printers.PrettyPrint{Out: d.Out}

	if d.JSON {
		b, err := json.Marshal(s.Report(month))
		if err != nil {
			return fmt.Errorf("demo: encoding report: %w", err)
		}
		_, err = fmt.Fprintln(pp.Writer(), string(b))
		return err
	}

	marked := make(map[calendar.Day]bool)
	for day := range s.Memories.Texts(month.Key) {
		marked[day] = true
	}
	pp.Month(month, marked, s.Today())

	pp.Title("Habits")
	pp.Habits(s, month)

	pp.Sleep(month, s.Sleep.Month(month.Key), s.Sleep.MaxHours())

	pp.Report(s.Report(month))
	pp.NewLine()

	pp.YearOverview(month.Year, s.YearOverview(month.Year))
	return nil
}

var (
	sampleHabits = []string{"Read", "Run", "Meditate"}

	sampleMemories = []struct {
		day  calendar.Day
		text string
	}{
		{1, "Started a new notebook for the month."},
		{4, "Long walk by the river with an old friend, talked until the street lights came on."},
		{9, "Cooked dinner for everyone."},
		{15, "Finished the book I had been putting off."},
	}

	sampleSleep = []int{7, 6, 8, 5, 7, 9, 6, 7, 8, 4, 7, 7, 6, 8}
)

// Seed fills the active month of s with sample habits, checks, sleep and
// memories up to today, and marks one favorite in the active and previous
// month.
func Seed(s *app.Session) {
	month := s.Month()
	last := s.Today()
	if last == calendar.NoDay {
		last = calendar.Day(month.Days)
	}

	for _, name := range sampleHabits {
		s.AppendHabit(name)
	}
	for day := calendar.Day(1); day <= last; day++ {
		for i := range sampleHabits {
			// A different rhythm per habit keeps the grid readable.
			if int(day)%(i+2) != 0 {
				s.ToggleCheck(day, i)
			}
		}
		_ = s.SetSleep(day, strconv.Itoa(sampleSleep[int(day-1)%len(sampleSleep)]))
	}

	var favorite calendar.Day
	for _, mem := range sampleMemories {
		if mem.day > last {
			continue
		}
		s.SetMemoryText(mem.day, mem.text)
		favorite = mem.day
	}
	if favorite != calendar.NoDay {
		s.SetFavorite(month, favorite)
	}

	prev := month.Prev()
	s.Memories.SetText(prev, 12, "Quiet weekend at home, no plans at all.")
	s.SetFavorite(prev, 12)
}

