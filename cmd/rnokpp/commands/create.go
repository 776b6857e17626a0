package commands

import (
	"github.com/spf13/cobra"

	"github.com/teranos/rnokpp/display"
	"github.com/teranos/rnokpp/rnokpp"
)

// NewCreateCmd creates the create command
func NewCreateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "create <identifier>",
		Short: "Show an identifier as a value object",
		Long: `Wrap the identifier as a value object and print its label and fields.

Examples:
  rnokpp create 3013753530
  rnokpp create 3013753530 --json`,
		Args: cobra.ExactArgs(1),
		RunE: runCreate,
	}
}

func runCreate(cmd *cobra.Command, args []string) error {
	r, err := rnokpp.New(args[0])
	if err != nil {
		return err
	}

	if display.ShouldOutputJSON(cmd) {
		return display.OutputJSON(cmd.OutOrStdout(), r)
	}
	return renderValue(cmd.OutOrStdout(), r)
}
