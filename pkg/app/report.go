package app

import (
	"tableflip.dev/habitus/pkg/calendar"
)

// HabitSummary is one habit's line in a month report.
type HabitSummary struct {
	Index  int    `json:"index"`
	Name   string `json:"name"`
	Done   int    `json:"done"`
	Streak int    `json:"streak"`
}

// ReportResult summarizes a month across every tracker.
type ReportResult struct {
	Month         calendar.MonthKey `json:"month"`
	Days          int               `json:"days"`
	Habits        []HabitSummary    `json:"habits"`
	SleepLogged   int               `json:"sleepLogged"`
	SleepAverage  float64           `json:"sleepAverage"`
	Memories      int               `json:"memories"`
	FavoriteDay   calendar.Day      `json:"favoriteDay,omitempty"`
	FavoriteText  string            `json:"favoriteText,omitempty"`
	HasFavorite   bool              `json:"hasFavorite"`
	StreakThrough calendar.Day      `json:"streakThrough"`
}

// Report summarizes month. Streaks are counted through the current day when
// month is the active month, else through the last day of month.
func (s *Session) Report(month calendar.Month) ReportResult {
	through := calendar.Day(month.Days)
	if month.Key == s.Month().Key {
		if today := s.Today(); today != calendar.NoDay {
			through = today
		}
	}

	res := ReportResult{
		Month:         month.Key,
		Days:          month.Days,
		StreakThrough: through,
	}
	for i, name := range s.Habits.Habits() {
		res.Habits = append(res.Habits, HabitSummary{
			Index:  i,
			Name:   name,
			Done:   s.Habits.CountFor(month.Key, i),
			Streak: s.Habits.Streak(month, through, i),
		})
	}

	res.SleepLogged = len(s.Sleep.Month(month.Key))
	res.SleepAverage, _ = s.Sleep.Average(month.Key)
	res.Memories = len(s.Memories.Texts(month.Key))
	if day, ok := s.Memories.Favorite(month.Key); ok {
		res.FavoriteDay = day
	}
	res.FavoriteText, res.HasFavorite = s.Memories.FavoriteText(month.Key)
	return res
}
