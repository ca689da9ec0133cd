package llms

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRetryPolicy(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name        string
		resp        *http.Response
		err         error
		shouldRetry bool
	}{
		{"ok", &http.Response{StatusCode: http.StatusOK}, nil, false},
		{"bad request", &http.Response{StatusCode: http.StatusBadRequest}, nil, false},
		{"unauthorized", &http.Response{StatusCode: http.StatusUnauthorized}, nil, false},
		{"too many requests", &http.Response{StatusCode: http.StatusTooManyRequests}, nil, true},
		{"unavailable", &http.Response{StatusCode: http.StatusServiceUnavailable}, nil, true},
		{"connection error", nil, errors.New("connection refused"), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			shouldRetry, err := retryPolicy(ctx, tt.resp, tt.err)
			assert.NoError(t, err)
			assert.Equal(t, tt.shouldRetry, shouldRetry)
		})
	}
}

func TestRetryPolicyCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	shouldRetry, err := retryPolicy(ctx, &http.Response{StatusCode: http.StatusServiceUnavailable}, nil)
	assert.False(t, shouldRetry)
	assert.ErrorIs(t, err, context.Canceled)
}
