package calendar

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/fatih/color"

	cal "tableflip.dev/habitus/pkg/calendar"
	"tableflip.dev/habitus/pkg/printers"
)

// Calendar prints the month resolved for a date.
type Calendar struct {
	On   *time.Time
	JSON bool
	Out  io.Writer
}

// Summary is the JSON form of a resolved month.
type Summary struct {
	Month        cal.MonthKey `json:"month"`
	Year         int          `json:"year"`
	Days         int          `json:"days"`
	FirstWeekday string       `json:"first_weekday"`
	Day          int          `json:"day"`
}

func (c *Calendar) out() io.Writer {
	if c.Out == nil {
		return color.Output
	}
	return c.Out
}

func (c *Calendar) Do(_ context.Context) error {
	on := time.Now()
	if c.On != nil {
		on = *c.On
	}
	month := cal.Resolve(on)

	if c.JSON {
		b, err := json.Marshal(Summary{
			Month:        month.Key,
			Year:         month.Year,
			Days:         month.Days,
			FirstWeekday: month.Weekday(1).String(),
			Day:          on.Day(),
		})
		if err != nil {
			return fmt.Errorf("calendar: encoding summary: %w", err)
		}
		_, err = fmt.Fprintln(c.out(), string(b))
		return err
	}

	pp := &printers.PrettyPrint{Out: c.Out}
	pp.Month(month, nil, cal.Day(on.Day()))
	_, err := fmt.Fprintf(c.out(), "%s has %d days\n", month.Key, month.Days)
	return err
}
