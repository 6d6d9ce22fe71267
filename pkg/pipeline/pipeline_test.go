package pipeline

import (
	"bytes"
	"context"
	"sync"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	perrors "github.com/matzehuels/playfair/pkg/errors"
	"github.com/matzehuels/playfair/pkg/observability"
	"github.com/matzehuels/playfair/pkg/playfair"
)

func TestParseAction(t *testing.T) {
	tests := []struct {
		in      string
		want    Action
		wantErr bool
	}{
		{"Encrypt", ActionEncrypt, false},
		{"encrypt", ActionEncrypt, false},
		{"Decrypt", ActionDecrypt, false},
		{"decrypt", ActionDecrypt, false},
		{"ENCRYPT", "", true},
		{" Encrypt", "", true},
		{"Sign", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		got, err := ParseAction(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseAction(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if err != nil && !perrors.Is(err, perrors.ErrCodeUnknownAction) {
			t.Errorf("ParseAction(%q) code = %v, want %v", tt.in, perrors.GetCode(err), perrors.ErrCodeUnknownAction)
		}
		if got != tt.want {
			t.Errorf("ParseAction(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestActionDirection(t *testing.T) {
	if ActionEncrypt.Direction() != playfair.Encrypting {
		t.Error("Encrypt should map to Encrypting")
	}
	if ActionDecrypt.Direction() != playfair.Decrypting {
		t.Error("Decrypt should map to Decrypting")
	}
	if ActionDecrypt.Lower() != "decrypt" {
		t.Errorf("Lower() = %q, want %q", ActionDecrypt.Lower(), "decrypt")
	}
}

func TestOptionsValidate(t *testing.T) {
	tests := []struct {
		name     string
		opts     Options
		wantCode perrors.Code
	}{
		{"valid", Options{Key: "k", Action: "Encrypt"}, ""},
		{"empty text is fine", Options{Text: "", Key: "k", Action: "Decrypt"}, ""},
		{"empty key", Options{Key: "", Action: "Encrypt"}, perrors.ErrCodeInvalidKey},
		{"whitespace key", Options{Key: " \t\n", Action: "Encrypt"}, perrors.ErrCodeInvalidKey},
		{"bad action", Options{Key: "k", Action: "Shred"}, perrors.ErrCodeUnknownAction},
		{"key checked before action", Options{Key: "", Action: "Shred"}, perrors.ErrCodeInvalidKey},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.opts.Validate()
			if got := perrors.GetCode(err); got != tt.wantCode {
				t.Errorf("Validate() code = %q, want %q (err %v)", got, tt.wantCode, err)
			}
		})
	}
}

func TestRunnerExecute(t *testing.T) {
	r := NewRunner(nil)
	ctx := context.Background()

	res, err := r.Execute(ctx, Options{Text: "instruments", Key: "monarchy", Action: "Encrypt"})
	if err != nil {
		t.Fatalf("Execute error: %v", err)
	}
	if res.Output != "GATLMZCLRQXA" {
		t.Errorf("Output = %q, want %q", res.Output, "GATLMZCLRQXA")
	}
	if res.Action != ActionEncrypt {
		t.Errorf("Action = %q, want %q", res.Action, ActionEncrypt)
	}
	if res.Grid.String() != "MONAR/CHYBD/EFGIK/LPQST/UVWXZ" {
		t.Errorf("Grid = %s", res.Grid)
	}

	res, err = r.Execute(ctx, Options{Text: "GATLMZCLRQXA", Key: "monarchy", Action: "decrypt"})
	if err != nil {
		t.Fatalf("Execute error: %v", err)
	}
	if res.Output != "INSTRUMENTS" {
		t.Errorf("Output = %q, want %q", res.Output, "INSTRUMENTS")
	}
}

func TestRunnerMessage(t *testing.T) {
	r := NewRunner(nil)
	ctx := context.Background()

	tests := []struct {
		name string
		opts Options
		want string
	}{
		{"encrypt", Options{Text: "INSTRUMENTS", Key: "MONARCHY", Action: "Encrypt"}, "GATLMZCLRQXA"},
		{"decrypt", Options{Text: "GATLMZCLRQXA", Key: "MONARCHY", Action: "Decrypt"}, "INSTRUMENTS"},
		{"blank key", Options{Text: "hello", Key: "   ", Action: "Encrypt"}, MessageInvalidKey},
		{"missing key", Options{Text: "hello", Action: "Decrypt"}, MessageInvalidKey},
		{"bad action", Options{Text: "hello", Key: "k", Action: "Rot13"}, MessageInvalidAction},
		{"empty text", Options{Key: "k", Action: "Decrypt"}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := r.Message(ctx, tt.opts)
			if err != nil {
				t.Fatalf("Message error: %v", err)
			}
			if got != tt.want {
				t.Errorf("Message() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRunnerLogs(t *testing.T) {
	var buf bytes.Buffer
	logger := log.NewWithOptions(&buf, log.Options{Level: log.DebugLevel})
	r := NewRunner(logger)

	if _, err := r.Execute(context.Background(), Options{Text: "secret words", Key: "hunter", Action: "Encrypt"}); err != nil {
		t.Fatal(err)
	}

	out := buf.String()
	if !bytes.Contains(buf.Bytes(), []byte("cipher complete")) {
		t.Errorf("expected completion log, got %q", out)
	}
	// Keys and texts are never logged.
	for _, secret := range []string{"hunter", "HUNTER", "secret words"} {
		if bytes.Contains(buf.Bytes(), []byte(secret)) {
			t.Errorf("log output leaks %q: %q", secret, out)
		}
	}
}

type recordingHooks struct {
	observability.NoopCipherHooks
	mu        sync.Mutex
	started   []string
	completed []string
	rejected  []string
}

func (h *recordingHooks) OnTransformStart(_ context.Context, action string, _ int) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.started = append(h.started, action)
}

func (h *recordingHooks) OnTransformComplete(_ context.Context, action string, _ int, _ time.Duration, _ error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.completed = append(h.completed, action)
}

func (h *recordingHooks) OnRejected(_ context.Context, reason string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.rejected = append(h.rejected, reason)
}

func TestRunnerHooks(t *testing.T) {
	hooks := &recordingHooks{}
	observability.SetCipherHooks(hooks)
	t.Cleanup(observability.Reset)

	r := NewRunner(nil)
	ctx := context.Background()
	_, _ = r.Execute(ctx, Options{Text: "abc", Key: "k", Action: "Encrypt"})
	_, _ = r.Execute(ctx, Options{Text: "abc", Key: "k", Action: "Decrypt"})
	_, _ = r.Execute(ctx, Options{Text: "abc", Key: "", Action: "Encrypt"})
	_, _ = r.Execute(ctx, Options{Text: "abc", Key: "k", Action: "Nope"})

	if len(hooks.started) != 2 || hooks.started[0] != "encrypt" || hooks.started[1] != "decrypt" {
		t.Errorf("started = %v, want [encrypt decrypt]", hooks.started)
	}
	if len(hooks.completed) != 2 {
		t.Errorf("completed = %v, want 2 events", hooks.completed)
	}
	want := []string{string(perrors.ErrCodeInvalidKey), string(perrors.ErrCodeUnknownAction)}
	if len(hooks.rejected) != 2 || hooks.rejected[0] != want[0] || hooks.rejected[1] != want[1] {
		t.Errorf("rejected = %v, want %v", hooks.rejected, want)
	}
}

func TestMessageFor(t *testing.T) {
	if got := MessageFor(perrors.New(perrors.ErrCodeInvalidKey, "x")); got != MessageInvalidKey {
		t.Errorf("MessageFor(INVALID_KEY) = %q", got)
	}
	if got := MessageFor(perrors.New(perrors.ErrCodeUnknownAction, "x")); got != MessageInvalidAction {
		t.Errorf("MessageFor(UNKNOWN_ACTION) = %q", got)
	}
	if got := MessageFor(perrors.New(perrors.ErrCodeInternal, "x")); got != "" {
		t.Errorf("MessageFor(INTERNAL_ERROR) = %q, want empty", got)
	}
}
