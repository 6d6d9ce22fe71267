package cli

import (
	"context"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/playfair/pkg/buildinfo"
	"github.com/matzehuels/playfair/pkg/pipeline"
)

// =============================================================================
// Constants
// =============================================================================

// appName is the application name used for display.
const appName = "playfair"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	// in and out default to stdin and stdout; tests replace them.
	in  io.Reader
	out io.Writer
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		in:     os.Stdin,
		out:    os.Stdout,
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "Playfair encrypts and decrypts text with the Playfair cipher",
		Long:         `Playfair derives a 5×5 key square from a keyword and uses it to encrypt or decrypt text two letters at a time. It runs as a command-line tool, an interactive terminal form, or a small web server.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.SetIn(c.in)
	root.SetOut(c.out)

	// Register all subcommands
	root.AddCommand(c.cipherCommand(pipeline.ActionEncrypt))
	root.AddCommand(c.cipherCommand(pipeline.ActionDecrypt))
	root.AddCommand(c.gridCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.interactiveCommand())
	root.AddCommand(c.configCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Runner Factory
// =============================================================================

// newRunner creates a pipeline runner that logs to the command's logger.
func (c *CLI) newRunner(ctx context.Context) *pipeline.Runner {
	return pipeline.NewRunner(loggerFromContext(ctx))
}
