package llms

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"github.com/hashicorp/go-retryablehttp"

	"github.com/chatapp/chatsummary/config"
	"github.com/chatapp/chatsummary/internal"
	"github.com/chatapp/chatsummary/pkg/models"
	"github.com/chatapp/chatsummary/pkg/zerrors"
)

const (
	RequestIDHeader = "X-Request-ID"
	// MaxResponseSize caps how much of a backend reply is read.
	MaxResponseSize = 10 << 20
)

var log = internal.GetLogger()

var _ models.InferenceClient = &InferenceClient{}

type generateRequest struct {
	Query string `json:"query"`
}

// InferenceClient posts prompts to the configured inference endpoint.
type InferenceClient struct {
	url     string
	apiKey  string
	timeout time.Duration
	client  *retryablehttp.Client
}

type InferenceClientOption func(*InferenceClient)

// WithRetryWait overrides the backoff bounds between retries.
func WithRetryWait(waitMin, waitMax time.Duration) InferenceClientOption {
	return func(c *InferenceClient) {
		c.client.RetryWaitMin = waitMin
		c.client.RetryWaitMax = waitMax
	}
}

func NewInferenceClient(cfg *config.InferenceConfig, opts ...InferenceClientOption) *InferenceClient {
	c := &InferenceClient{
		url:     cfg.URL,
		apiKey:  cfg.APIKey,
		timeout: cfg.Timeout,
		client:  NewRetryableHTTPClient(cfg.RetryMax, DefaultRetryWaitMin, DefaultRetryWaitMax),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Generate sends {"query": prompt} with the bearer key. A 200 reply is returned
// unchanged; any other status becomes an UpstreamError carrying the status and
// raw body, and transport failures become a ConnectivityError. The timeout, when
// set, bounds the whole call including retries.
func (c *InferenceClient) Generate(ctx context.Context, prompt string) (*models.SummaryResponse, error) {
	if c.url == "" || c.apiKey == "" {
		return nil, zerrors.NewConfigurationError("inference url and api key must be set")
	}

	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	payload, err := json.Marshal(generateRequest{Query: prompt})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal inference request: %w", err)
	}

	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(payload))
	if err != nil {
		return nil, zerrors.NewConfigurationError(fmt.Sprintf("invalid inference url: %v", err))
	}

	requestID := middleware.GetReqID(ctx)
	if requestID == "" {
		requestID = uuid.New().String()
	}

	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", config.UserAgent())
	req.Header.Set(RequestIDHeader, requestID)

	logger := internal.RequestLogger(ctx).WithField("inference_request_id", requestID)
	logger.Debugf("Sending %d byte prompt to inference backend", len(payload))

	start := time.Now()
	resp, err := c.client.Do(req)
	if err != nil {
		if resp != nil {
			resp.Body.Close()
		}
		return nil, zerrors.NewConnectivityError(err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, MaxResponseSize))
	if err != nil {
		return nil, zerrors.NewConnectivityError(fmt.Errorf("failed to read inference response: %w", err))
	}

	logger.WithField("status", resp.StatusCode).
		WithField("duration", time.Since(start)).
		Debug("Inference backend responded")

	if resp.StatusCode != http.StatusOK {
		return nil, zerrors.NewUpstreamError(resp.StatusCode, string(body))
	}

	summary, err := models.NewSummaryResponse(body)
	if err != nil {
		return nil, zerrors.NewUpstreamError(http.StatusBadGateway, string(body))
	}

	return summary, nil
}
