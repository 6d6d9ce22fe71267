package errors

import (
	"strings"
	"unicode"
)

// Limits for request fields arriving over the network. The cipher itself
// accepts any length; these only bound what the web layer will process.
const (
	MaxKeyLength  = 256
	MaxTextLength = 1 << 16
)

// ValidateKey validates a cipher key supplied by a caller.
//
// A key is rejected when it is empty or whitespace-only, matching the web
// form's contract. Keys that contain no letters at all are still accepted:
// the key square then falls back to plain alphabetical order.
func ValidateKey(key string) error {
	if strings.TrimSpace(key) == "" {
		return New(ErrCodeInvalidKey, "key cannot be blank")
	}

	if len(key) > MaxKeyLength {
		return New(ErrCodeInvalidKey, "key too long (max %d characters)", MaxKeyLength)
	}

	for _, r := range key {
		if r == '\x00' {
			return New(ErrCodeInvalidKey, "key contains invalid characters")
		}
	}

	return nil
}

// ValidateText validates text supplied for encryption or decryption.
// Empty text is allowed and produces empty output.
func ValidateText(text string) error {
	if len(text) > MaxTextLength {
		return New(ErrCodeInvalidInput, "text too long (max %d bytes)", MaxTextLength)
	}

	for _, r := range text {
		if r == '\x00' || (unicode.IsControl(r) && !unicode.IsSpace(r)) {
			return New(ErrCodeInvalidInput, "text contains invalid control characters")
		}
	}

	return nil
}
