package handlertools

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chatapp/chatsummary/pkg/zerrors"
)

func TestHandleError(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		detail string
	}{
		{
			name:   "upstream keeps status and body",
			err:    fmt.Errorf("summarize: %w", zerrors.NewUpstreamError(503, "overloaded")),
			status: http.StatusServiceUnavailable,
			detail: "overloaded",
		},
		{
			name:   "validation",
			err:    zerrors.NewValidationError("message 0: missing sender"),
			status: http.StatusBadRequest,
			detail: "invalid request: message 0: missing sender",
		},
		{
			name:   "prompt too large",
			err:    zerrors.NewPromptTooLargeError(200, 100),
			status: http.StatusRequestEntityTooLarge,
			detail: "prompt is 200 tokens, limit is 100",
		},
		{
			name:   "connectivity",
			err:    zerrors.NewConnectivityError(errors.New("connection refused")),
			status: http.StatusBadGateway,
			detail: "unable to reach inference backend: connection refused",
		},
		{
			name:   "connectivity timeout",
			err:    zerrors.NewConnectivityError(context.DeadlineExceeded),
			status: http.StatusGatewayTimeout,
			detail: "unable to reach inference backend: context deadline exceeded",
		},
		{
			name:   "configuration",
			err:    zerrors.NewConfigurationError("inference url and api key must be set"),
			status: http.StatusInternalServerError,
			detail: "configuration error: inference url and api key must be set",
		},
		{
			name:   "body too large",
			err:    &http.MaxBytesError{Limit: 10},
			status: http.StatusRequestEntityTooLarge,
			detail: "request body too large",
		},
		{
			name:   "unknown",
			err:    errors.New("boom"),
			status: http.StatusInternalServerError,
			detail: "boom",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/", nil)
			res := httptest.NewRecorder()

			HandleError(res, req, tt.err)

			assert.Equal(t, tt.status, res.Code)
			assert.Equal(t, "application/json", res.Header().Get("Content-Type"))

			var body ErrorResponse
			require.NoError(t, json.NewDecoder(res.Body).Decode(&body))
			assert.Equal(t, tt.detail, body.Detail)
		})
	}
}

func TestWriteRawJSON(t *testing.T) {
	res := httptest.NewRecorder()
	body := []byte("{ \"response\" : \"x\" }")

	require.NoError(t, WriteRawJSON(res, http.StatusOK, body))
	assert.Equal(t, http.StatusOK, res.Code)
	assert.Equal(t, string(body), res.Body.String())
}

func TestReadBody(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`[{"sender":"a","message":"b"}]`))
	res := httptest.NewRecorder()
	req.Body = http.MaxBytesReader(res, req.Body, 5)

	_, err := ReadBody(req)

	var maxBytesErr *http.MaxBytesError
	assert.ErrorAs(t, err, &maxBytesErr)
}
