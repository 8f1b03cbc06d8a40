package options

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

const (
	layoutISO      = "2006-1-2"
	layoutISOShort = "1/2"
	layoutMonth    = "2006-1"
)

// OnOptions selects the date a command works on.
type OnOptions struct {
	OnString string
}

func AddOnArgs(cmd *cobra.Command, o *OnOptions) {
	cmd.Flags().StringVar(&o.OnString, "on", "",
		`Specify a date, example: --on="2020-2-28", --on="2/28" or --on="2020-2".`)
}

// GetOn returns the parsed date, or nil when --on was not given.
func (o *OnOptions) GetOn() (*time.Time, error) {
	return o.getOn(time.Now())
}

func (o *OnOptions) getOn(now time.Time) (*time.Time, error) {
	if o.OnString == "" {
		return nil, nil
	}
	if t, err := time.Parse(layoutISO, o.OnString); err == nil {
		return &t, nil
	}
	if t, err := time.Parse(layoutMonth, o.OnString); err == nil {
		return &t, nil
	}
	md, err := time.Parse(layoutISOShort, o.OnString)
	if err != nil {
		return nil, fmt.Errorf("invalid --on %q: want YYYY-M-D, M/D or YYYY-M", o.OnString)
	}
	// Month and day alone mean this year, so 2/29 only exists in leap years.
	t := time.Date(now.Year(), md.Month(), md.Day(), 0, 0, 0, 0, now.Location())
	if t.Month() != md.Month() || t.Day() != md.Day() {
		return nil, fmt.Errorf("invalid --on %q: %d has no %s %d", o.OnString, now.Year(), md.Month(), md.Day())
	}
	return &t, nil
}
