package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/habitus/pkg/commands/options"
	"tableflip.dev/habitus/pkg/config"
	"tableflip.dev/habitus/pkg/runner/demo"
)

func addDemo(topLevel *cobra.Command) {
	on := &options.OnOptions{}
	oo := &options.OutputOptions{}

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Print a month of sample data.",
		Long: `Demo fills a throwaway session with sample habits, sleep and memories
and prints it. Nothing is saved.`,
		Example: `
habitus demo
habitus demo --on=2024-2-29
habitus demo --json
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			t, err := on.GetOn()
			if err != nil {
				return oo.HandleError(cmd.OutOrStdout(), err)
			}
			cfg, err := config.Load()
			if err != nil {
				return oo.HandleError(cmd.OutOrStdout(), err)
			}
			d := demo.Demo{Config: cfg, On: t, JSON: oo.JSON, Out: cmd.OutOrStdout()}
			return oo.HandleError(cmd.OutOrStdout(), d.Do(context.Background()))
		},
	}

	options.AddOnArgs(cmd, on)
	options.AddOutputArg(cmd, oo)

	topLevel.AddCommand(cmd)
}
