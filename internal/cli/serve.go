package cli

import (
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/playfair/internal/server"
	"github.com/matzehuels/playfair/pkg/buildinfo"
	"github.com/matzehuels/playfair/pkg/config"
)

// serveOpts holds flags for the serve command.
type serveOpts struct {
	configPath string
	addr       string
}

// serveCommand creates the serve command, which runs the web form and API.
func (c *CLI) serveCommand() *cobra.Command {
	var opts serveOpts

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the Playfair web form and JSON API",
		Long: `Run the HTTP server.

Settings come from the TOML config file (see "playfair config path"); a
missing default file means built-in defaults. --addr overrides the file.
The server stops gracefully on SIGINT or SIGTERM.`,
		Example: `  playfair serve
  playfair serve --addr :8080
  playfair serve --config ./playfair.toml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runServe(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.configPath, "config", "c", "", "config file (default $XDG_CONFIG_HOME/playfair/config.toml)")
	cmd.Flags().StringVar(&opts.addr, "addr", "", "listen address, e.g. 127.0.0.1:5000")

	return cmd
}

func (c *CLI) runServe(cmd *cobra.Command, opts serveOpts) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)

	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return err
	}
	if opts.addr != "" {
		cfg.Server.Addr = opts.addr
	}

	// --verbose wins over the file.
	if logger.GetLevel() > log.DebugLevel {
		level, err := cfg.LogLevel()
		if err != nil {
			return err
		}
		logger.SetLevel(level)
	}

	srv, err := server.New(cfg.Server, c.newRunner(ctx), logger)
	if err != nil {
		return err
	}

	printKeyValue(cmd.OutOrStdout(), "Version", buildinfo.Get().Short())
	printKeyValue(cmd.OutOrStdout(), "Address", "http://"+cfg.Server.Addr)

	prog := newProgress(logger)
	if err := srv.Run(ctx); err != nil {
		return err
	}
	prog.done("Server stopped")
	return nil
}
