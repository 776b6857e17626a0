package commands

import (
	"github.com/spf13/cobra"

	"github.com/teranos/rnokpp/display"
	"github.com/teranos/rnokpp/errors"
	"github.com/teranos/rnokpp/logger"
	"github.com/teranos/rnokpp/rnokpp"
)

// NewAnalyzeCmd creates the analyze command
func NewAnalyzeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "analyze <identifier>",
		Short: "Check an identifier and decode sex and date of birth",
		Long: `Check the identifier's check digit and decode the sex and date of birth.

A checksum mismatch is reported, not treated as an error; use --strict to
exit non-zero on a mismatch.

Examples:
  rnokpp analyze 3013753534
  rnokpp analyze 3013753530 --json
  rnokpp analyze 3013753534 --strict`,
		Args: cobra.ExactArgs(1),
		RunE: runAnalyze,
	}
	cmd.Flags().Bool("strict", false, "Exit with an error when the check digit does not match")
	return cmd
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	a, err := rnokpp.Analyze(args[0])
	if err != nil {
		return err
	}

	logger.ComponentLogger("rnokpp.analyze").Debugw("Analyzed identifier",
		logger.FieldSSN, a.ID.Masked(),
		logger.FieldValid, a.IsValid)

	out := cmd.OutOrStdout()
	if display.ShouldOutputJSON(cmd) {
		if err := display.OutputJSON(out, a); err != nil {
			return err
		}
	} else if err := renderAnalysis(out, a); err != nil {
		return err
	}

	if strict, _ := cmd.Flags().GetBool("strict"); strict && !a.IsValid {
		return errors.WithHintf(
			errors.NewInvalidRequestError("check digit %d does not match computed %d",
				a.ID.CheckDigit(), rnokpp.ChecksumDigit(a.ID)),
			"the identifier may be mistyped")
	}
	return nil
}
