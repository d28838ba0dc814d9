// internal/common/errors/errors.go

// Package errors provides standardized error handling for the fulfillment
// service. Errors carry a stable code the calling platform can key on.
package errors

import (
	"errors"
	"fmt"
	"time"
)

// ErrorCode represents standardized internal error codes.
type ErrorCode string

const (
	ErrCodeUnsupportedIntent      ErrorCode = "UNSUPPORTED_INTENT"
	ErrCodeMalformedEvent         ErrorCode = "MALFORMED_EVENT"
	ErrCodeMissingSlot            ErrorCode = "MISSING_SLOT"
	ErrCodeNotificationSendFailed ErrorCode = "NOTIFICATION_SEND_FAILED"
	ErrCodeLexRuntimeFailed       ErrorCode = "LEX_RUNTIME_FAILED"
)

// StandardError represents a structured application error.
type StandardError struct {
	Code      ErrorCode              `json:"code"`
	Message   string                 `json:"message"`
	Details   string                 `json:"details,omitempty"`
	Retryable bool                   `json:"retryable"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
	Timestamp time.Time              `json:"timestamp"`
}

func (e *StandardError) Error() string {
	return fmt.Sprintf("StandardError[%s]: %s", e.Code, e.Message)
}

// NewUnsupportedIntentError reports an intent name the dispatcher has no
// handler for. Fatal for the invocation, never retried.
func NewUnsupportedIntentError(intentName string) *StandardError {
	return &StandardError{
		Code:      ErrCodeUnsupportedIntent,
		Message:   fmt.Sprintf("Intent with name %s not supported", intentName),
		Details:   fmt.Sprintf("intentName: %s", intentName),
		Retryable: false,
		Metadata:  map[string]interface{}{"intentName": intentName},
		Timestamp: time.Now().UTC(),
	}
}

// NewMalformedEventError reports an inbound event that failed boundary
// validation.
func NewMalformedEventError(details string) *StandardError {
	return &StandardError{
		Code:      ErrCodeMalformedEvent,
		Message:   "Inbound event failed validation",
		Details:   details,
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewMissingSlotError reports a required slot with no value. A nil slot is
// normally an expected re-elicitation case, so handlers only construct
// this when the conversation cannot continue at all.
func NewMissingSlotError(slotName string) *StandardError {
	return &StandardError{
		Code:      ErrCodeMissingSlot,
		Message:   fmt.Sprintf("Required slot %s has no value", slotName),
		Details:   fmt.Sprintf("slot: %s", slotName),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewNotificationSendFailedError reports a retryable notification delivery
// failure.
func NewNotificationSendFailedError(channel string, err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeNotificationSendFailed,
		Message:   "Notification delivery failed",
		Details:   fmt.Sprintf("channel: %s, error: %s", channel, err.Error()),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewLexRuntimeFailedError reports a retryable Lex runtime call failure.
func NewLexRuntimeFailedError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeLexRuntimeFailed,
		Message:   "Lex runtime call failed",
		Details:   err.Error(),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// CodeOf extracts the error code from err, or empty when err is not a
// StandardError.
func CodeOf(err error) ErrorCode {
	var stdErr *StandardError
	if errors.As(err, &stdErr) {
		return stdErr.Code
	}
	return ""
}

// IsRetryable reports whether err is a retryable StandardError.
func IsRetryable(err error) bool {
	var stdErr *StandardError
	return errors.As(err, &stdErr) && stdErr.Retryable
}
