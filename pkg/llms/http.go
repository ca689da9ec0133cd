package llms

import (
	"context"
	"net/http"
	"time"

	"github.com/hashicorp/go-retryablehttp"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/chatapp/chatsummary/internal"
)

const (
	DefaultRetryWaitMin = 1 * time.Second
	DefaultRetryWaitMax = 30 * time.Second
	MaxIdleConnsPerHost = 20
)

// NewRetryableHTTPClient returns a client that makes retryMax additional attempts
// on connection errors and retryable statuses. The transport is instrumented with
// OpenTelemetry. The last response is always handed back, even when retries are
// exhausted, so its status and body can be relayed to the caller.
func NewRetryableHTTPClient(retryMax int, waitMin, waitMax time.Duration) *retryablehttp.Client {
	transport := http.DefaultTransport.(*http.Transport).Clone()
	transport.MaxIdleConnsPerHost = MaxIdleConnsPerHost

	retryableHTTPClient := retryablehttp.NewClient()
	retryableHTTPClient.HTTPClient = &http.Client{
		Transport: otelhttp.NewTransport(transport),
	}
	retryableHTTPClient.RetryMax = retryMax
	retryableHTTPClient.RetryWaitMin = waitMin
	retryableHTTPClient.RetryWaitMax = waitMax
	retryableHTTPClient.Logger = internal.NewLeveledLogrus(log)
	retryableHTTPClient.Backoff = retryablehttp.DefaultBackoff
	retryableHTTPClient.CheckRetry = retryPolicy
	retryableHTTPClient.ErrorHandler = retryablehttp.PassthroughErrorHandler

	return retryableHTTPClient
}

// retryPolicy is a retryablehttp.CheckRetry function. It is used to determine
// whether a request should be retried or not.
func retryPolicy(ctx context.Context, resp *http.Response, err error) (bool, error) {
	// do not retry on context.Canceled or context.DeadlineExceeded
	if ctx.Err() != nil {
		return false, ctx.Err()
	}

	// a 4xx other than 429 will not change on retry
	if resp != nil && resp.StatusCode >= 400 && resp.StatusCode < 500 &&
		resp.StatusCode != http.StatusTooManyRequests {
		return false, nil
	}

	shouldRetry, _ := retryablehttp.DefaultRetryPolicy(ctx, resp, err)
	return shouldRetry, nil
}
