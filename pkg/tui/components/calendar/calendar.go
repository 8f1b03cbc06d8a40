// Package calendar renders a month grid for the terminal UI.
package calendar

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	cal "tableflip.dev/habitus/pkg/calendar"
	"tableflip.dev/habitus/pkg/tui/theme"
)

// Day describes a single day rendered in the calendar.
type Day struct {
	Day        cal.Day
	HasEntry   bool
	IsFavorite bool
	IsToday    bool
	IsSelected bool
}

// Options controls calendar styling.
type Options struct {
	HeaderStyle   lipgloss.Style
	EmptyStyle    lipgloss.Style
	EntryStyle    lipgloss.Style
	TodayStyle    lipgloss.Style
	SelectedStyle lipgloss.Style
	FavoriteStyle lipgloss.Style
	ShowHeader    bool
}

// OptionsFrom builds Options from a theme.
func OptionsFrom(t theme.CalendarTheme) Options {
	return Options{
		HeaderStyle:   t.Header,
		EmptyStyle:    t.Empty,
		EntryStyle:    t.Entry,
		TodayStyle:    t.Today,
		SelectedStyle: t.Selected,
		FavoriteStyle: t.Favorite,
		ShowHeader:    true,
	}
}

// Render produces a multi-line, Sunday-first grid for month.
func Render(month cal.Month, days []Day, opts Options) string {
	if month.IsZero() {
		return ""
	}

	byDay := make(map[cal.Day]Day, len(days))
	for _, d := range days {
		if month.Contains(d.Day) {
			byDay[d.Day] = d
		}
	}

	var lines []string
	if opts.ShowHeader {
		lines = append(lines, opts.HeaderStyle.Render("Su Mo Tu We Th Fr Sa"))
	}

	startOffset := int(month.Weekday(1) - time.Sunday)
	rows := (startOffset + month.Days + 6) / 7

	for row := 0; row < rows; row++ {
		cells := make([]string, 0, 7)
		for col := 0; col < 7; col++ {
			day := cal.Day(row*7 + col - startOffset + 1)
			if !month.Contains(day) {
				cells = append(cells, opts.EmptyStyle.Render("  "))
				continue
			}
			cells = append(cells, renderDay(byDay[day], day, opts))
		}
		lines = append(lines, strings.Join(cells, " "))
	}

	return strings.Join(lines, "\n")
}

func renderDay(info Day, day cal.Day, opts Options) string {
	text := fmt.Sprintf("%2d", day)

	style := opts.EmptyStyle
	if info.HasEntry {
		style = opts.EntryStyle
	}
	if info.IsFavorite {
		style = style.Inherit(opts.FavoriteStyle)
	}
	if info.IsToday {
		style = style.Inherit(opts.TodayStyle)
	}
	if info.IsSelected {
		style = opts.SelectedStyle
	}
	return style.Render(text)
}
