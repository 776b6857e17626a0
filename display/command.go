package display

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/teranos/rnokpp/am"
	"github.com/teranos/rnokpp/errors"
)

// ShouldOutputJSON determines if a command should output JSON. An explicit
// --json flag wins; otherwise output.format from configuration decides.
func ShouldOutputJSON(cmd *cobra.Command) bool {
	if cmd != nil {
		// Local or persistent flag set on the command line
		if f := cmd.Flags().Lookup("json"); f != nil && f.Changed {
			v, _ := cmd.Flags().GetBool("json")
			return v
		}
		if f := cmd.Root().PersistentFlags().Lookup("json"); f != nil && f.Changed {
			v, _ := cmd.Root().PersistentFlags().GetBool("json")
			return v
		}
	}

	cfg, err := am.Load()
	if err != nil {
		return false
	}
	return cfg.JSONOutput()
}

// OutputJSON marshals v with MarshalJSON and writes it to w
func OutputJSON(w io.Writer, v interface{}) error {
	data, err := MarshalJSON(v)
	if err != nil {
		return errors.Wrap(err, "failed to marshal JSON")
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}
