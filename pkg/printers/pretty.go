// Package printers renders session data for the non-interactive commands.
package printers

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"
	"github.com/muesli/reflow/wordwrap"

	"tableflip.dev/habitus/pkg/app"
	"tableflip.dev/habitus/pkg/calendar"
)

// PrettyPrint writes colored, human oriented output.
type PrettyPrint struct {
	// Out defaults to color.Output.
	Out io.Writer
}

func (pp *PrettyPrint) out() io.Writer {
	if pp.Out == nil {
		return color.Output
	}
	return pp.Out
}

// Writer returns the destination, color.Output when Out is unset.
func (pp *PrettyPrint) Writer() io.Writer { return pp.out() }

// NewLine prints an empty line.
func (pp *PrettyPrint) NewLine() {
	_, _ = fmt.Fprintln(pp.out(), "")
}

// Title prints a bold, underlined heading.
func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)
	_, _ = t.Fprintln(pp.out(), title)
}

// Habits prints the completion grid of month: one row per day, one column
// per habit.
func (pp *PrettyPrint) Habits(s *app.Session, month calendar.Month) {
	names := s.Habits.Habits()
	if len(names) == 0 {
		none := color.New(color.Faint, color.Italic)
		_, _ = none.Fprint(pp.out(), " no habits\n\n")
		return
	}

	table := uitable.New()
	table.MaxColWidth = 12
	header := []interface{}{"Day"}
	for _, n := range names {
		header = append(header, n)
	}
	table.AddRow(header...)

	for d := 1; d <= month.Days; d++ {
		day := calendar.Day(d)
		row := []interface{}{fmt.Sprintf("%2d %s", d, month.Weekday(day).String()[:2])}
		for i := range names {
			mark := "·"
			if s.Habits.Done(month.Key, day, i) {
				mark = "X"
			}
			row = append(row, mark)
		}
		table.AddRow(row...)
	}
	_, _ = fmt.Fprintln(pp.out(), table.String())
	pp.NewLine()
}

// Report prints a month summary.
func (pp *PrettyPrint) Report(r app.ReportResult) {
	pp.Title(string(r.Month))
	faint := color.New(color.Faint)

	table := uitable.New()
	table.AddRow("HABIT", "DONE", "STREAK")
	for _, h := range r.Habits {
		table.AddRow(h.Name, fmt.Sprintf("%d/%d", h.Done, r.Days), h.Streak)
	}
	if len(r.Habits) > 0 {
		_, _ = fmt.Fprintln(pp.out(), table.String())
	}

	if r.SleepLogged > 0 {
		_, _ = fmt.Fprintf(pp.out(), "sleep: %.1fh average over %d days\n", r.SleepAverage, r.SleepLogged)
	} else {
		_, _ = faint.Fprintln(pp.out(), "sleep: nothing logged")
	}
	_, _ = fmt.Fprintf(pp.out(), "memories: %d\n", r.Memories)
	if r.HasFavorite {
		star := color.New(color.FgHiYellow)
		_, _ = star.Fprintf(pp.out(), "★ %d: ", r.FavoriteDay)
		_, _ = fmt.Fprintln(pp.out(), r.FavoriteText)
	}
	pp.NewLine()
}

// YearOverview prints each month of the year with its favorite memory.
func (pp *PrettyPrint) YearOverview(year int, rows []app.MonthFavorite) {
	pp.Title(fmt.Sprintf("Year Overview %d", year))
	faint := color.New(color.Faint, color.Italic)
	month := color.New(color.Bold)

	for _, row := range rows {
		_, _ = month.Fprintf(pp.out(), "%-10s ", row.Month.Month.String())
		if !row.OK {
			_, _ = faint.Fprintln(pp.out(), "no favorite memory yet")
			continue
		}
		text := wordwrap.String(row.Text, 60)
		text = strings.ReplaceAll(text, "\n", "\n"+strings.Repeat(" ", 11))
		_, _ = fmt.Fprintf(pp.out(), "%s (day %d)\n", text, row.Day)
	}
	pp.NewLine()
}
