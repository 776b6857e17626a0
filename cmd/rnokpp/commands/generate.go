package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/teranos/rnokpp/am"
	"github.com/teranos/rnokpp/display"
	"github.com/teranos/rnokpp/logger"
	"github.com/teranos/rnokpp/rnokpp"
)

// NewGenerateCmd creates the generate command
func NewGenerateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a synthetic identifier with a valid check digit",
		Long: `Generate one synthetic identifier. Fields not constrained by flags are
random: the date of birth falls between generate.min_age and
generate.max_age years (365-day years) before today.

Sex tokens: M, m, male, ч, чоловіча (male); F, f, female, ж, жіноча
(female). Any other token leaves the sex random.

Examples:
  rnokpp generate
  rnokpp generate --dob 2000-01-01 --sex F
  rnokpp generate --dob 06.07.1982 --sex ч --json
  rnokpp generate --seed 42`,
		Args: cobra.NoArgs,
		RunE: runGenerate,
	}
	cmd.Flags().String("dob", "", "Date of birth (YYYY-MM-DD, D.M.YYYY day-first, ...)")
	cmd.Flags().String("sex", "", "Sex token (M/F, male/female, ч/ж)")
	cmd.Flags().Uint64("seed", 0, "PRNG seed for reproducible output (default from generate.seed)")
	return cmd
}

func runGenerate(cmd *cobra.Command, args []string) error {
	cfg, err := am.Load()
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	dob, _ := cmd.Flags().GetString("dob")
	sex, _ := cmd.Flags().GetString("sex")
	params, err := rnokpp.ParseParams(dob, sex)
	if err != nil {
		return err
	}

	gen := newGenerator(cmd, cfg)
	id, err := gen.Generate(params)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if display.ShouldOutputJSON(cmd) {
		a, err := id.Analyze()
		if err != nil {
			return err
		}
		return display.OutputJSON(out, a)
	}

	// Bare identifier so the output can be used in scripts
	_, err = fmt.Fprintln(out, id.String())
	return err
}

// newGenerator builds a Generator from config, with --seed taking
// precedence over generate.seed.
func newGenerator(cmd *cobra.Command, cfg *am.Config) *rnokpp.Generator {
	seed := cfg.Generate.Seed
	if f := cmd.Flags().Lookup("seed"); f != nil && f.Changed {
		seed, _ = cmd.Flags().GetUint64("seed")
	}

	log := logger.ComponentLogger("rnokpp.generate")
	opts := []rnokpp.Option{
		rnokpp.WithAgeRange(cfg.Generate.MinAge, cfg.Generate.MaxAge),
		rnokpp.WithLogger(log),
	}
	if seed != 0 {
		opts = append(opts, rnokpp.WithSeed(seed))
		log.Debugw("Seeded generator", logger.FieldSeed, seed)
	}
	return rnokpp.NewGenerator(opts...)
}
