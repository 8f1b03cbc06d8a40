package printers

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/fatih/color"

	"tableflip.dev/habitus/pkg/calendar"
)

const width = len("11 12 13 14 15 16 17") // an example week

// Month prints a Sunday-first calendar grid of month. Marked days are bold;
// today is underlined.
func (pp *PrettyPrint) Month(month calendar.Month, marked map[calendar.Day]bool, today calendar.Day) {
	tf := color.New(color.FgWhite, color.Italic)

	title := string(month.Key)
	mid := (width - len(title)) / 2
	if mid < 0 {
		mid = 0
	}
	_, _ = tf.Fprintf(pp.out(), "%s%s\n", strings.Repeat(" ", mid), title)
	_, _ = color.New(color.Faint).Fprintln(pp.out(), "Su Mo Tu We Th Fr Sa")

	d := month.Weekday(1)
	// Pad out the start of the month.
	for i := time.Sunday; i < d; i++ {
		_, _ = fmt.Fprint(pp.out(), "   ")
	}

	l1 := color.New(color.Faint, color.FgWhite)
	l2 := color.New(color.Bold, color.FgHiWhite)

	for i := 1; i <= month.Days; i++ {
		day := calendar.Day(i)
		printer := l1
		if marked[day] {
			printer = l2
		}
		if day == today {
			printer = color.New(color.Bold, color.Underline)
		}
		_, _ = printer.Fprintf(pp.out(), "%2d", i)
		_, _ = fmt.Fprint(pp.out(), " ")

		d++
		if d > time.Saturday {
			d = time.Sunday
			_, _ = fmt.Fprint(pp.out(), "\n")
		}
	}
	_, _ = fmt.Fprint(pp.out(), "\n\n")
}

// Sleep prints one bar per logged day of month.
func (pp *PrettyPrint) Sleep(month calendar.Month, hours map[calendar.Day]int, max int) {
	pp.Title("Sleep · " + string(month.Key))
	if len(hours) == 0 {
		none := color.New(color.Faint, color.Italic)
		_, _ = none.Fprint(pp.out(), " nothing logged\n\n")
		return
	}
	days := make([]calendar.Day, 0, len(hours))
	for d := range hours {
		days = append(days, d)
	}
	sort.Slice(days, func(i, j int) bool { return days[i] < days[j] })

	low := color.New(color.FgRed)
	ok := color.New(color.FgGreen)
	for _, d := range days {
		h := hours[d]
		bar := low
		if h >= 7 {
			bar = ok
		}
		_, _ = fmt.Fprintf(pp.out(), "%2d ", d)
		_, _ = bar.Fprint(pp.out(), strings.Repeat("█", h))
		pad := max - h
		if pad < 0 {
			pad = 0
		}
		_, _ = fmt.Fprintf(pp.out(), "%s %dh\n", strings.Repeat(" ", pad), h)
	}
	pp.NewLine()
}
