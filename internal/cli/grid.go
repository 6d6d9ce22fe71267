package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	perrors "github.com/matzehuels/playfair/pkg/errors"
	"github.com/matzehuels/playfair/pkg/pipeline"
	"github.com/matzehuels/playfair/pkg/playfair"
)

// gridCommand creates the grid command, which prints the key square.
func (c *CLI) gridCommand() *cobra.Command {
	var (
		key   string
		plain bool
	)

	cmd := &cobra.Command{
		Use:   "grid",
		Short: "Print the 5×5 key square for a key",
		Long: `Print the key square the cipher builds from a key.

Letters from the key come first, in order of first appearance, followed by
the rest of the alphabet without J. Key letters are highlighted.`,
		Example: `  playfair grid --key "playfair example"
  playfair grid -k monarchy --plain`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := perrors.ValidateKey(key); err != nil {
				if msg := pipeline.MessageFor(err); msg != "" {
					return &refusedError{msg: msg, err: err}
				}
				return err
			}

			g := playfair.BuildGrid(key)
			out := cmd.OutOrStdout()
			if plain {
				for _, row := range g.Rows() {
					fmt.Fprintln(out, row)
				}
				return nil
			}
			fmt.Fprintln(out, renderGrid(g, keyLetters(key)))
			return nil
		},
	}

	cmd.Flags().StringVarP(&key, "key", "k", "", "cipher key (required)")
	cmd.Flags().BoolVar(&plain, "plain", false, "print five plain lines instead of a table")

	return cmd
}
