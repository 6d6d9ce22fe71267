package pipeline

import (
	"context"
	"time"

	"github.com/charmbracelet/log"

	perrors "github.com/matzehuels/playfair/pkg/errors"
	"github.com/matzehuels/playfair/pkg/observability"
	"github.com/matzehuels/playfair/pkg/playfair"
)

// Runner executes cipher requests.
//
// The Runner keeps nothing between calls except its logger: every run builds
// its own key square. Multiple goroutines can safely share one Runner.
type Runner struct {
	Logger *log.Logger
}

// NewRunner creates a runner that logs to logger.
// If logger is nil, log.Default() is used.
func NewRunner(logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Logger: logger}
}

// Execute validates opts and runs the cipher.
//
// Refused requests return INVALID_KEY or UNKNOWN_ACTION errors without
// touching the cipher. A LOOKUP_FAILED error from the cipher is wrapped as
// INTERNAL_ERROR; it means normalization was bypassed and is never the
// caller's fault.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	hooks := observability.Cipher()

	action, err := opts.Validate()
	if err != nil {
		code := perrors.GetCode(err)
		hooks.OnRejected(ctx, string(code))
		r.Logger.Debug("request refused", "code", code)
		return nil, err
	}

	start := time.Now()
	hooks.OnTransformStart(ctx, action.Lower(), len(opts.Text))

	c := playfair.New(opts.Key)
	var out string
	switch action {
	case ActionEncrypt:
		out, err = c.Encrypt(opts.Text)
	case ActionDecrypt:
		out, err = c.Decrypt(opts.Text)
	}
	elapsed := time.Since(start)
	hooks.OnTransformComplete(ctx, action.Lower(), len(out), elapsed, err)

	if err != nil {
		r.Logger.Error("cipher failed", "action", action.Lower(), "err", err)
		return nil, perrors.Wrap(perrors.ErrCodeInternal, err, "%s failed", action.Lower())
	}

	r.Logger.Debug("cipher complete",
		"action", action.Lower(),
		"in", len(opts.Text),
		"out", len(out),
		"duration", elapsed)

	return &Result{
		Action:   action,
		Output:   out,
		Grid:     c.Grid(),
		Duration: elapsed,
	}, nil
}

// Message runs opts and returns the single line a form shows: the output on
// success, or the fixed refusal message. Internal failures are returned as
// errors so the front end can report them as such.
func (r *Runner) Message(ctx context.Context, opts Options) (string, error) {
	result, err := r.Execute(ctx, opts)
	if err != nil {
		if msg := MessageFor(err); msg != "" {
			return msg, nil
		}
		return "", err
	}
	return result.Output, nil
}
