package options

import (
	"encoding/json"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// OutputOptions selects between the colored text report and JSON. In JSON
// mode failures are reported on the output stream too, so a caller piping
// --json always receives one JSON document.
type OutputOptions struct {
	JSON bool
}

func AddOutputArg(cmd *cobra.Command, oo *OutputOptions) {
	cmd.Flags().BoolVar(&oo.JSON, "json", false,
		"Output as JSON, including errors.")
}

type jsonError struct {
	Error string `json:"error"`
}

// HandleError writes err to w as {"error": "..."} and returns nil when --json
// is set. Text mode returns err untouched for cobra to print. A nil w means
// color.Output.
func (o *OutputOptions) HandleError(w io.Writer, err error) error {
	if err == nil || !o.JSON {
		return err
	}
	if w == nil {
		w = color.Output
	}
	return json.NewEncoder(w).Encode(jsonError{Error: err.Error()})
}
