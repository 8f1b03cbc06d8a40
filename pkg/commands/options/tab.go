package options

import (
	"fmt"

	"github.com/spf13/cobra"

	"tableflip.dev/habitus/pkg/config"
)

// TabOptions overrides the configured start screen.
type TabOptions struct {
	Tab string
}

func AddTabArg(cmd *cobra.Command, o *TabOptions) {
	cmd.Flags().StringVar(&o.Tab, "tab", "",
		"Screen to open first: memories, habits, sleep or profile.")
}

// Apply sets cfg.StartTab from --tab when given.
func (o *TabOptions) Apply(cfg *config.Config) error {
	if o.Tab == "" {
		return nil
	}
	t, ok := config.ParseTab(o.Tab)
	if !ok {
		return fmt.Errorf("unknown tab %q", o.Tab)
	}
	cfg.StartTab = t
	return nil
}
