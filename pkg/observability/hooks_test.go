package observability

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestNoopHooksDoNotPanic(t *testing.T) {
	ctx := context.Background()

	// Cipher hooks
	c := NoopCipherHooks{}
	c.OnTransformStart(ctx, "encrypt", 11)
	c.OnTransformComplete(ctx, "encrypt", 12, time.Millisecond, nil)
	c.OnTransformComplete(ctx, "decrypt", 0, time.Millisecond, errors.New("boom"))
	c.OnRejected(ctx, "INVALID_KEY")

	// HTTP hooks
	h := NoopHTTPHooks{}
	h.OnRequest(ctx, "POST", "/")
	h.OnResponse(ctx, "POST", "/", 200, time.Second)
}

func TestGlobalHooksRegistry(t *testing.T) {
	// Reset to known state
	Reset()

	// Verify defaults are noop
	if _, ok := Cipher().(NoopCipherHooks); !ok {
		t.Error("Cipher() should return NoopCipherHooks by default")
	}
	if _, ok := HTTP().(NoopHTTPHooks); !ok {
		t.Error("HTTP() should return NoopHTTPHooks by default")
	}

	// Set custom hooks
	customCipher := &testCipherHooks{}
	SetCipherHooks(customCipher)
	if Cipher() != customCipher {
		t.Error("SetCipherHooks should set custom hooks")
	}

	customHTTP := &testHTTPHooks{}
	SetHTTPHooks(customHTTP)
	if HTTP() != customHTTP {
		t.Error("SetHTTPHooks should set custom hooks")
	}

	// Reset and verify
	Reset()
	if _, ok := Cipher().(NoopCipherHooks); !ok {
		t.Error("Reset() should restore NoopCipherHooks")
	}
	if _, ok := HTTP().(NoopHTTPHooks); !ok {
		t.Error("Reset() should restore NoopHTTPHooks")
	}
}

func TestSetNilHooksIsIgnored(t *testing.T) {
	Reset()

	custom := &testCipherHooks{}
	SetCipherHooks(custom)

	// Setting nil should be ignored
	SetCipherHooks(nil)

	if Cipher() != custom {
		t.Error("SetCipherHooks(nil) should be ignored")
	}

	Reset()
}

// Test implementations
type testCipherHooks struct{ NoopCipherHooks }
type testHTTPHooks struct{ NoopHTTPHooks }
