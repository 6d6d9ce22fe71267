package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/playfair/pkg/pipeline"
)

// cipherOpts holds flags for the encrypt and decrypt commands.
type cipherOpts struct {
	key      string
	showGrid bool
}

// cipherCommand creates the encrypt or decrypt command for action.
func (c *CLI) cipherCommand(action pipeline.Action) *cobra.Command {
	var opts cipherOpts
	name := action.Lower()

	cmd := &cobra.Command{
		Use:   name + " [text...]",
		Short: fmt.Sprintf("%s text with a Playfair key", action),
		Long: fmt.Sprintf(`%s text with the Playfair cipher.

The text is taken from the arguments, joined by spaces, or read from stdin
when no arguments are given. Letters are upper-cased, J becomes I, and
everything outside A-Z is dropped before the text is paired up.`, action),
		Example: fmt.Sprintf(`  playfair %s --key monarchy instruments
  echo "attack at dawn" | playfair %s -k zanzibar`, name, name),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readText(cmd.InOrStdin(), args)
			if err != nil {
				return err
			}
			return c.runCipher(cmd, action, text, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.key, "key", "k", "", "cipher key (required)")
	cmd.Flags().BoolVar(&opts.showGrid, "show-grid", false, "print the key square after the result")

	return cmd
}

// runCipher executes one request and prints the result line.
func (c *CLI) runCipher(cmd *cobra.Command, action pipeline.Action, text string, opts cipherOpts) error {
	ctx := cmd.Context()
	out := cmd.OutOrStdout()

	result, err := c.newRunner(ctx).Execute(ctx, pipeline.Options{
		Text:   text,
		Key:    opts.key,
		Action: string(action),
	})
	if err != nil {
		if msg := pipeline.MessageFor(err); msg != "" {
			return &refusedError{msg: msg, err: err}
		}
		return err
	}

	fmt.Fprintln(out, result.Output)
	if opts.showGrid {
		fmt.Fprintln(out, renderGrid(result.Grid, keyLetters(opts.key)))
	}
	return nil
}

// readText joins args, or reads all of r when there are none.
func readText(r io.Reader, args []string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("read stdin: %w", err)
	}
	return strings.TrimRight(string(data), "\r\n"), nil
}

// refusedError reports a refused request with its fixed message while
// keeping the structured cause for errors.Is and errors.As.
type refusedError struct {
	msg string
	err error
}

func (e *refusedError) Error() string { return e.msg }
func (e *refusedError) Unwrap() error { return e.err }
