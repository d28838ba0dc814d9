// internal/common/errors/errors_test.go
package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewUnsupportedIntentError(t *testing.T) {
	err := NewUnsupportedIntentError("CancelIntent")

	assert.Equal(t, ErrCodeUnsupportedIntent, err.Code)
	assert.False(t, err.Retryable)
	assert.Contains(t, err.Error(), "UNSUPPORTED_INTENT")
	assert.Contains(t, err.Message, "CancelIntent")
	assert.Equal(t, "CancelIntent", err.Metadata["intentName"])
}

func TestCodeOf(t *testing.T) {
	assert.Equal(t, ErrCodeMalformedEvent, CodeOf(NewMalformedEventError("bad")))
	assert.Equal(t, ErrorCode(""), CodeOf(errors.New("plain")))
	assert.Equal(t, ErrorCode(""), CodeOf(nil))

	// Wrapped errors still expose their code.
	wrapped := fmt.Errorf("handler: %w", NewMissingSlotError("environment"))
	assert.Equal(t, ErrCodeMissingSlot, CodeOf(wrapped))
}

func TestIsRetryable(t *testing.T) {
	assert.True(t, IsRetryable(NewNotificationSendFailedError("sns", errors.New("throttled"))))
	assert.True(t, IsRetryable(NewLexRuntimeFailedError(errors.New("timeout"))))
	assert.False(t, IsRetryable(NewUnsupportedIntentError("x")))
	assert.False(t, IsRetryable(NewMalformedEventError("x")))
	assert.False(t, IsRetryable(errors.New("plain")))
}
