// Package pipeline runs cipher requests for every Playfair front end.
//
// The web form, the JSON API, the CLI and the interactive TUI all collect
// the same three strings (text, key, action) and expect the same answers.
// This package holds that caller contract in one place so the front ends
// stay thin:
//
//  1. A blank or whitespace-only key is refused before the cipher runs.
//  2. An action other than Encrypt or Decrypt is refused before the cipher runs.
//  3. Otherwise the text is encrypted or decrypted with pkg/playfair.
//
// Refusals map to fixed messages ([MessageInvalidKey], [MessageInvalidAction])
// that the front ends show in place of a result.
//
// # Usage
//
//	runner := pipeline.NewRunner(logger)
//	result, err := runner.Execute(ctx, pipeline.Options{
//	    Text:   "instruments",
//	    Key:    "monarchy",
//	    Action: "Encrypt",
//	})
//	if err != nil {
//	    return err
//	}
//	fmt.Println(result.Output) // GATLMZCLRQXA
package pipeline

import (
	"strings"
	"time"

	perrors "github.com/matzehuels/playfair/pkg/errors"
	"github.com/matzehuels/playfair/pkg/playfair"
)

// =============================================================================
// Actions
// =============================================================================

// Action names a cipher direction as the front ends spell it.
type Action string

const (
	ActionEncrypt Action = "Encrypt"
	ActionDecrypt Action = "Decrypt"
)

// Actions lists the valid actions in display order.
var Actions = []Action{ActionEncrypt, ActionDecrypt}

// ParseAction converts s into an Action. The form values "Encrypt" and
// "Decrypt" are accepted along with their lowercase spellings used by the
// CLI and the JSON API. Anything else is an UNKNOWN_ACTION error.
func ParseAction(s string) (Action, error) {
	switch s {
	case "Encrypt", "encrypt":
		return ActionEncrypt, nil
	case "Decrypt", "decrypt":
		return ActionDecrypt, nil
	}
	return "", perrors.New(perrors.ErrCodeUnknownAction, "unknown action %q", s)
}

// Direction returns the cipher direction for a.
func (a Action) Direction() playfair.Direction {
	if a == ActionDecrypt {
		return playfair.Decrypting
	}
	return playfair.Encrypting
}

// Lower returns the lowercase spelling, e.g. "encrypt".
func (a Action) Lower() string {
	return strings.ToLower(string(a))
}

// =============================================================================
// Messages
// =============================================================================

// Fixed messages shown instead of a result when a request is refused.
const (
	MessageInvalidKey    = "Error: Please provide a valid key."
	MessageInvalidAction = "Invalid action!"
)

// MessageFor returns the fixed message for a refused request, or "" when err
// is not a refusal.
func MessageFor(err error) string {
	switch perrors.GetCode(err) {
	case perrors.ErrCodeInvalidKey:
		return MessageInvalidKey
	case perrors.ErrCodeUnknownAction:
		return MessageInvalidAction
	}
	return ""
}

// =============================================================================
// Options & Result
// =============================================================================

// Options is one cipher request as collected by a front end.
type Options struct {
	Text   string
	Key    string
	Action string
}

// Validate applies the caller contract in its fixed order: the key is
// checked before the action. It returns the parsed action.
func (o Options) Validate() (Action, error) {
	if strings.TrimSpace(o.Key) == "" {
		return "", perrors.New(perrors.ErrCodeInvalidKey, "key cannot be blank")
	}
	return ParseAction(o.Action)
}

// Result is the outcome of a successful run.
type Result struct {
	Action   Action
	Output   string
	Grid     playfair.Grid
	Duration time.Duration
}
