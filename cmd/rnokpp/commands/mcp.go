package commands

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/teranos/rnokpp/am"
	"github.com/teranos/rnokpp/errors"
	"github.com/teranos/rnokpp/logger"
	"github.com/teranos/rnokpp/mcpserver"
)

// NewMcpCmd creates the mcp command
func NewMcpCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "mcp",
		Short: "Serve the codec as Model Context Protocol tools over stdio",
		Long: `Start a Model Context Protocol server on stdin/stdout exposing:

  rnokpp_analyze  (ssn)        check and decode an identifier
  rnokpp_generate (dob?, sex?) generate a synthetic identifier
  rnokpp_create   (ssn)        value-object view of an identifier

Each tool returns JSON text. Changes to the loaded config files are picked
up without a restart (generate.min_age and generate.max_age).`,
		Args: cobra.NoArgs,
		RunE: runMcp,
	}
}

func runMcp(cmd *cobra.Command, args []string) error {
	cfg, err := am.Load()
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	gen := newGenerator(cmd, cfg)
	log := logger.ComponentLogger("mcp")

	if files := am.ConfigFiles(); len(files) > 0 {
		watcher, err := am.NewConfigWatcher(files...)
		if err != nil {
			// Serving still works with the config loaded at startup
			log.Warnw("Config watching disabled", logger.FieldError, err)
		} else {
			watcher.OnReload(func(c *am.Config) error {
				if err := gen.SetAgeRange(c.Generate.MinAge, c.Generate.MaxAge); err != nil {
					return errors.Wrap(err, "apply age window")
				}
				log.Infow("Applied config", "min_age", c.Generate.MinAge, "max_age", c.Generate.MaxAge)
				return nil
			})
			am.SetGlobalWatcher(watcher)
			watcher.Start()
			defer func() {
				am.SetGlobalWatcher(nil)
				_ = watcher.Stop()
			}()
		}
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return mcpserver.New(gen).Serve(ctx, cmd.InOrStdin(), cmd.OutOrStdout())
}
