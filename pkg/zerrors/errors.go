package zerrors

import (
	"context"
	"errors"
	"fmt"
	"net"
)

/* ValidationError */

var ErrValidation = errors.New("validation failed")

type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid request: %s", e.Message)
}

func (*ValidationError) Unwrap() error {
	return ErrValidation
}

func NewValidationError(message string) error {
	return &ValidationError{Message: message}
}

/* PromptTooLargeError */

// PromptTooLargeError is a ValidationError raised before the outbound call when
// a prompt exceeds the configured token ceiling.
type PromptTooLargeError struct {
	Tokens int
	Limit  int
}

func (e *PromptTooLargeError) Error() string {
	return fmt.Sprintf("prompt is %d tokens, limit is %d", e.Tokens, e.Limit)
}

func (*PromptTooLargeError) Unwrap() error {
	return ErrValidation
}

func NewPromptTooLargeError(tokens, limit int) error {
	return &PromptTooLargeError{Tokens: tokens, Limit: limit}
}

/* ConfigurationError */

var ErrConfiguration = errors.New("invalid configuration")

type ConfigurationError struct {
	Message string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("configuration error: %s", e.Message)
}

func (*ConfigurationError) Unwrap() error {
	return ErrConfiguration
}

func NewConfigurationError(message string) error {
	return &ConfigurationError{Message: message}
}

/* UpstreamError */

var ErrUpstream = errors.New("inference backend error")

// UpstreamError carries the inference backend's status code and raw body so
// both can be relayed to the caller.
type UpstreamError struct {
	StatusCode int
	Body       string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("inference backend returned %d: %s", e.StatusCode, e.Body)
}

func (*UpstreamError) Unwrap() error {
	return ErrUpstream
}

func NewUpstreamError(statusCode int, body string) error {
	return &UpstreamError{StatusCode: statusCode, Body: body}
}

/* ConnectivityError */

var ErrConnectivity = errors.New("inference backend unreachable")

type ConnectivityError struct {
	Err error
}

func (e *ConnectivityError) Error() string {
	return fmt.Sprintf("unable to reach inference backend: %v", e.Err)
}

func (e *ConnectivityError) Unwrap() []error {
	return []error{ErrConnectivity, e.Err}
}

// Timeout reports whether the transport failure was a deadline or a
// client-side timeout.
func (e *ConnectivityError) Timeout() bool {
	if errors.Is(e.Err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(e.Err, &netErr) && netErr.Timeout()
}

func NewConnectivityError(err error) error {
	return &ConnectivityError{Err: err}
}
