// Package observability provides hooks for metrics, tracing, and logging.
//
// This package enables optional instrumentation without adding hard dependencies
// on specific observability backends. Consumers can register hooks at startup
// to receive events about cipher runs and served HTTP requests.
//
// # Architecture
//
// The package uses a simple hooks pattern:
//   - Define hook interfaces for different event categories
//   - Provide no-op default implementations
//   - Allow registration of custom implementations at startup
//
// Hook events never carry keys or texts. Only the action, sizes and timings
// are reported, so a backend cannot end up persisting secrets.
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetCipherHooks(&myCipherHooks{})
//	    observability.SetHTTPHooks(&myHTTPHooks{})
//	    // ... run application
//	}
//
// Libraries call hooks to emit events:
//
//	observability.Cipher().OnTransformStart(ctx, "encrypt", len(text))
//	// ... transform ...
//	observability.Cipher().OnTransformComplete(ctx, "encrypt", len(out), duration, err)
package observability

import (
	"context"
	"sync"
	"time"
)

// =============================================================================
// Cipher Hooks
// =============================================================================

// CipherHooks receives events from pipeline runs.
type CipherHooks interface {
	// OnTransformStart records the start of an encrypt or decrypt run.
	OnTransformStart(ctx context.Context, action string, inputLen int)

	// OnTransformComplete records the end of a run. err is nil on success.
	OnTransformComplete(ctx context.Context, action string, outputLen int, duration time.Duration, err error)

	// OnRejected records a request refused before the cipher ran, such as
	// a blank key or an unknown action.
	OnRejected(ctx context.Context, reason string)
}

// =============================================================================
// HTTP Hooks
// =============================================================================

// HTTPHooks receives events from the HTTP server.
type HTTPHooks interface {
	// OnRequest records an incoming HTTP request.
	OnRequest(ctx context.Context, method, path string)

	// OnResponse records the response written for a request.
	OnResponse(ctx context.Context, method, path string, statusCode int, duration time.Duration)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopCipherHooks is a no-op implementation of CipherHooks.
type NoopCipherHooks struct{}

func (NoopCipherHooks) OnTransformStart(context.Context, string, int)                           {}
func (NoopCipherHooks) OnTransformComplete(context.Context, string, int, time.Duration, error) {}
func (NoopCipherHooks) OnRejected(context.Context, string)                                      {}

// NoopHTTPHooks is a no-op implementation of HTTPHooks.
type NoopHTTPHooks struct{}

func (NoopHTTPHooks) OnRequest(context.Context, string, string)                      {}
func (NoopHTTPHooks) OnResponse(context.Context, string, string, int, time.Duration) {}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	cipherHooks CipherHooks = NoopCipherHooks{}
	httpHooks   HTTPHooks   = NoopHTTPHooks{}
	hooksMu     sync.RWMutex
)

// SetCipherHooks registers custom cipher hooks.
// This should be called once at application startup before any pipeline runs.
func SetCipherHooks(h CipherHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		cipherHooks = h
	}
}

// SetHTTPHooks registers custom HTTP hooks.
// This should be called once at application startup before the server starts.
func SetHTTPHooks(h HTTPHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		httpHooks = h
	}
}

// Cipher returns the registered cipher hooks.
func Cipher() CipherHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return cipherHooks
}

// HTTP returns the registered HTTP hooks.
func HTTP() HTTPHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return httpHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	cipherHooks = NoopCipherHooks{}
	httpHooks = NoopHTTPHooks{}
}
