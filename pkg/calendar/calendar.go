// Package calendar resolves the month a tracker is working in: its key, its
// length and the valid range of days.
package calendar

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// MonthKey identifies a calendar month, e.g. "March 2025". It is the
// partition key for all per-month data.
type MonthKey string

// String implements fmt.Stringer.
func (k MonthKey) String() string { return string(k) }

// Day is a day of the month, starting at 1.
type Day int

// NoDay is the zero Day, used where a day is optional.
const NoDay Day = 0

// Valid reports whether d falls inside a month of the given length.
func (d Day) Valid(days int) bool {
	return d >= 1 && int(d) <= days
}

// Clock returns the current time. Hosts inject time.Now; tests pin it.
type Clock func() time.Time

var (
	monthFormat     = "January 2006"
	monthKeyPattern = regexp.MustCompile(`^[A-Za-z]+ \d{4}$`)
)

// Month is a resolved calendar month.
type Month struct {
	Key   MonthKey
	Year  int
	Month time.Month
	Days  int
}

// Resolve returns the month containing t.
func Resolve(t time.Time) Month {
	return newMonth(t.Year(), t.Month())
}

func newMonth(year int, month time.Month) Month {
	// Normalise overflowed months (13 -> January next year).
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	return Month{
		Key:   Key(first.Year(), first.Month()),
		Year:  first.Year(),
		Month: first.Month(),
		Days:  DaysIn(first.Year(), first.Month()),
	}
}

// Key formats the MonthKey for a year and month.
func Key(year int, month time.Month) MonthKey {
	return MonthKey(fmt.Sprintf("%s %04d", month.String(), year))
}

// DaysIn returns the number of days in the month. Day 0 of the following
// month is the last day of this one.
func DaysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// ParseMonthKey parses "January 2006" style keys.
func ParseMonthKey(raw string) (Month, error) {
	name := strings.TrimSpace(raw)
	if !monthKeyPattern.MatchString(name) {
		return Month{}, fmt.Errorf("calendar: %q is not a month key", raw)
	}
	t, err := time.Parse(monthFormat, name)
	if err != nil {
		return Month{}, fmt.Errorf("calendar: parse %q: %w", raw, err)
	}
	return newMonth(t.Year(), t.Month()), nil
}

// Contains reports whether day is a valid day of m.
func (m Month) Contains(day Day) bool {
	return day.Valid(m.Days)
}

// First returns midnight UTC on the first day of m.
func (m Month) First() time.Time {
	return time.Date(m.Year, m.Month, 1, 0, 0, 0, 0, time.UTC)
}

// Weekday returns the weekday of the given day of m.
func (m Month) Weekday(day Day) time.Weekday {
	return m.First().AddDate(0, 0, int(day)-1).Weekday()
}

// Next returns the following month.
func (m Month) Next() Month { return newMonth(m.Year, m.Month+1) }

// Prev returns the preceding month.
func (m Month) Prev() Month { return newMonth(m.Year, m.Month-1) }

// IsZero reports whether m was never resolved.
func (m Month) IsZero() bool { return m.Key == "" }

// YearMonths returns January through December of year.
func YearMonths(year int) []Month {
	months := make([]Month, 0, 12)
	for mo := time.January; mo <= time.December; mo++ {
		months = append(months, newMonth(year, mo))
	}
	return months
}
