package commands

import (
	"context"
	"errors"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"tableflip.dev/habitus/pkg/commands/options"
	"tableflip.dev/habitus/pkg/config"
	"tableflip.dev/habitus/pkg/runner/ui"
)

var errNoTerminal = errors.New("ui needs an interactive terminal")

func addUI(topLevel *cobra.Command) {
	to := &options.TabOptions{}
	demo := false

	cmd := &cobra.Command{
		Use:   "ui",
		Short: "open the text-based user interface",
		Example: `
habitus ui
habitus ui --tab habits
habitus ui --demo
`,
		ValidArgs: []string{},
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			if !isTerminal(os.Stdout.Fd()) || !isTerminal(os.Stdin.Fd()) {
				return errNoTerminal
			}
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if err := to.Apply(&cfg); err != nil {
				return err
			}
			i := ui.UI{Config: cfg, Demo: demo}
			return i.Do(context.Background())
		},
	}

	options.AddTabArg(cmd, to)
	cmd.Flags().BoolVar(&demo, "demo", false, "Start with sample data.")

	topLevel.AddCommand(cmd)
}

func isTerminal(fd uintptr) bool {
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
