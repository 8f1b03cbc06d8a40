package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/habitus/pkg/commands/options"
	"tableflip.dev/habitus/pkg/runner/calendar"
)

func addCalendar(topLevel *cobra.Command) {
	on := &options.OnOptions{}
	oo := &options.OutputOptions{}

	cmd := &cobra.Command{
		Use:   "calendar",
		Short: "Show the month a date resolves to.",
		Example: `
habitus calendar
habitus calendar --on=2024-2
habitus calendar --on=2/14 --json
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			t, err := on.GetOn()
			if err != nil {
				return oo.HandleError(cmd.OutOrStdout(), err)
			}
			c := calendar.Calendar{On: t, JSON: oo.JSON, Out: cmd.OutOrStdout()}
			return oo.HandleError(cmd.OutOrStdout(), c.Do(context.Background()))
		},
	}

	options.AddOnArgs(cmd, on)
	options.AddOutputArg(cmd, oo)

	topLevel.AddCommand(cmd)
}
