package commands

import (
	"github.com/spf13/cobra"

	"github.com/teranos/rnokpp/am"
	"github.com/teranos/rnokpp/errors"
	"github.com/teranos/rnokpp/logger"
)

// Exit codes
const (
	ExitOK           = 0
	ExitFailure      = 1
	ExitInvalidInput = 2 // Malformed identifier, flag or config value
)

// NewRootCmd builds the rnokpp command tree.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "rnokpp",
		Short: "Validate and generate Ukrainian taxpayer identifiers (RNOKPP)",
		Long: `rnokpp - Ukrainian individual taxpayer identifier toolkit.

An RNOKPP is 10 digits: a day count from 1899-12-31 (date of birth),
three filler digits, a sex digit (odd male, even female) and a check digit.

Available commands:
  analyze  - Check an identifier and decode sex and date of birth
  generate - Generate a synthetic identifier with a valid check digit
  create   - Show an identifier as a value object
  am       - Manage rnokpp configuration ("I am")
  mcp      - Serve the codec as Model Context Protocol tools over stdio
  version  - Show version information

Examples:
  rnokpp analyze 3013753534
  rnokpp generate --dob 2000-01-01 --sex F
  rnokpp generate --seed 42 --json
  rnokpp am show --format yaml`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: setup,
	}

	root.PersistentFlags().Bool("json", false, "Output JSON (default from output.format)")
	root.PersistentFlags().CountP("verbose", "v", "Increase log verbosity (-v, -vv)")
	root.PersistentFlags().String("config", "", "Config file, merged above user and project files")

	root.AddCommand(NewAnalyzeCmd())
	root.AddCommand(NewGenerateCmd())
	root.AddCommand(NewCreateCmd())
	root.AddCommand(NewAmCmd())
	root.AddCommand(NewMcpCmd())
	root.AddCommand(NewVersionCmd())

	return root
}

// setup loads configuration and initializes the logger before any command runs
func setup(cmd *cobra.Command, args []string) error {
	if path, _ := cmd.Flags().GetString("config"); path != "" {
		am.SetConfigFile(path)
	}

	verbosity, _ := cmd.Flags().GetCount("verbose")

	cfg, err := am.Load()
	if err != nil {
		// Still log to the console so -v shows what failed
		_ = logger.InitializeWriter(cmd.ErrOrStderr(), false, verbosity)
		return errors.Wrap(err, "failed to load config")
	}

	if err := logger.InitializeWriter(cmd.ErrOrStderr(), cfg.Log.JSON, verbosity); err != nil {
		return errors.Wrap(err, "failed to initialize logger")
	}

	logger.Infow("Loaded config",
		logger.FieldOperation, cmd.Name(),
		logger.FieldConfigFile, am.ConfigFiles())
	return nil
}

// ExitCode maps an error to the process exit status.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case errors.IsInvalidRequestError(err):
		return ExitInvalidInput
	default:
		return ExitFailure
	}
}
