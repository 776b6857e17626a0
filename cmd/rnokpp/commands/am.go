package commands

import (
	"fmt"
	"os"
	"strings"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/teranos/rnokpp/am"
	"github.com/teranos/rnokpp/display"
	"github.com/teranos/rnokpp/errors"
)

// NewAmCmd creates the am (configuration) command
func NewAmCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "am",
		Short: "Manage rnokpp configuration",
		Long: `am - Manage rnokpp configuration ("I am")

Configuration sources (later overrides earlier):
1. Default values
2. User config (~/.rnokpp/am.toml)
3. Project config (./rnokpp.toml, searched up directories)
4. Explicit config (--config PATH)
5. Environment variables (RNOKPP_* prefix, e.g. RNOKPP_GENERATE_MIN_AGE)

Examples:
  rnokpp am show                    # Show current configuration
  rnokpp am show --format json      # Show configuration in JSON format
  rnokpp am get generate.max_age    # Get specific config value
  rnokpp am where                   # Show which source set each value
  rnokpp am validate                # Validate current configuration
  rnokpp am init                    # Write ./rnokpp.toml with defaults`,
	}

	show := &cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		Long:  "Display the effective rnokpp configuration merged from all sources",
		Args:  cobra.NoArgs,
		RunE:  runAmShow,
	}
	show.Flags().String("format", am.RenderTOML, "Output format: "+strings.Join(am.RenderFormats, ", "))

	get := &cobra.Command{
		Use:   "get <key>",
		Short: "Get a specific configuration value",
		Long:  "Get a specific configuration value using dot notation (e.g., generate.min_age, output.format)",
		Args:  cobra.ExactArgs(1),
		RunE:  runAmGet,
	}

	validate := &cobra.Command{
		Use:   "validate",
		Short: "Validate current configuration",
		Long: `Validate the effective configuration and report keys in the
contributing config files that rnokpp does not recognise.`,
		Args: cobra.NoArgs,
		RunE: runAmValidate,
	}

	where := &cobra.Command{
		Use:   "where",
		Short: "Show where configuration is loaded from",
		Long:  "List every setting with the source (default, file or environment variable) that set it.",
		Args:  cobra.NoArgs,
		RunE:  runAmWhere,
	}

	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Write a project config with the defaults",
		Long:  "Write ./rnokpp.toml holding the built-in defaults. An existing file is backed up when --force is given.",
		Args:  cobra.NoArgs,
		RunE:  runAmInit,
	}
	initCmd.Flags().Bool("force", false, "Overwrite an existing rnokpp.toml")

	cmd.AddCommand(show, get, validate, where, initCmd)
	return cmd
}

func runAmShow(cmd *cobra.Command, args []string) error {
	format, _ := cmd.Flags().GetString("format")
	if display.ShouldOutputJSON(cmd) {
		format = am.RenderJSON
	}

	settings, err := am.Settings()
	if err != nil {
		return errors.Wrap(err, "failed to load config")
	}

	data, err := am.Render(settings, format)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if format != am.RenderJSON {
		fmt.Fprintln(out, "# rnokpp configuration")
	}
	_, err = out.Write(data)
	return err
}

func runAmGet(cmd *cobra.Command, args []string) error {
	value, err := am.Get(args[0])
	if err != nil {
		return err
	}

	if display.ShouldOutputJSON(cmd) {
		return display.OutputJSON(cmd.OutOrStdout(), map[string]interface{}{args[0]: value})
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), value)
	return err
}

func runAmValidate(cmd *cobra.Command, args []string) error {
	cfg, err := am.Load()
	if err != nil {
		return errors.Wrap(err, "failed to load config")
	}

	if err := cfg.Validate(); err != nil {
		err = errors.Wrap(err, "configuration validation failed")
		for _, path := range invalidConfigFiles() {
			err = errors.WithHintf(err, "rejected value set in %s", path)
		}
		return err
	}

	var unknown []string
	for _, path := range am.ConfigFiles() {
		keys, err := am.CheckUnknownKeys(path)
		if err != nil {
			return err
		}
		for _, k := range keys {
			unknown = append(unknown, fmt.Sprintf("%s: %s", path, k))
		}
	}
	if len(unknown) > 0 {
		return errors.WithHint(
			errors.NewInvalidRequestError("unknown configuration keys:\n  %s", strings.Join(unknown, "\n  ")),
			"run 'rnokpp am show' to list the supported keys")
	}

	pterm.Success.WithWriter(cmd.OutOrStdout()).Println("Configuration is valid")
	return nil
}

// invalidConfigFiles returns the config files that fail validation when
// loaded on their own over the defaults.
func invalidConfigFiles() []string {
	var bad []string
	for _, path := range am.ConfigFiles() {
		cfg, err := am.LoadFromFile(path)
		if err != nil || cfg.Validate() != nil {
			bad = append(bad, path)
		}
	}
	return bad
}

func runAmWhere(cmd *cobra.Command, args []string) error {
	settings, err := am.Introspect()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if display.ShouldOutputJSON(cmd) {
		return display.OutputJSON(out, settings)
	}

	data := pterm.TableData{{"Key", "Value", "Source", "From"}}
	for _, s := range settings {
		data = append(data, []string{s.Key, fmt.Sprint(s.Value), string(s.Source), s.SourcePath})
	}
	return pterm.DefaultTable.WithWriter(out).WithHasHeader().WithData(data).Render()
}

func runAmInit(cmd *cobra.Command, args []string) error {
	force, _ := cmd.Flags().GetBool("force")

	dir, err := os.Getwd()
	if err != nil {
		return errors.Wrap(err, "failed to determine working directory")
	}

	path, err := am.InitProjectConfig(dir, force)
	if err != nil {
		return err
	}

	pterm.Success.WithWriter(cmd.OutOrStdout()).Printfln("Wrote %s", path)
	return nil
}
