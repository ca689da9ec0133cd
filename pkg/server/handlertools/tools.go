package handlertools

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/chatapp/chatsummary/internal"
	"github.com/chatapp/chatsummary/pkg/zerrors"
)

var log = internal.GetLogger()

// ErrorResponse is the body of every error reply.
type ErrorResponse struct {
	Detail string `json:"detail"`
}

// EncodeJSON encodes data into JSON and writes it to the response writer.
func EncodeJSON(w http.ResponseWriter, data interface{}) error {
	w.Header().Set("Content-Type", "application/json")
	return json.NewEncoder(w).Encode(data)
}

// WriteRawJSON writes body unchanged with the given status.
func WriteRawJSON(w http.ResponseWriter, status int, body []byte) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, err := w.Write(body)
	return err
}

// ReadBody reads the whole request body. A body over the router's size limit is
// reported as a *http.MaxBytesError.
func ReadBody(r *http.Request) ([]byte, error) {
	return io.ReadAll(r.Body)
}

// RenderError renders a JSON error response with the given status.
func RenderError(w http.ResponseWriter, r *http.Request, err error, detail string, status int) {
	logger := internal.RequestLogger(r.Context()).
		WithField("status", status).
		WithError(err)
	if status >= http.StatusInternalServerError {
		logger.Error("request failed")
	} else {
		logger.Warn("request rejected")
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(status)
	if encErr := json.NewEncoder(w).Encode(ErrorResponse{Detail: detail}); encErr != nil {
		log.Errorf("error encoding error response: %v", encErr)
	}
}

// HandleError maps err to the most specific status available and renders it.
// Backend failures keep the backend's own status and body; configuration and
// unknown errors are a 500.
func HandleError(w http.ResponseWriter, r *http.Request, err error) {
	var (
		upstreamErr  *zerrors.UpstreamError
		connErr      *zerrors.ConnectivityError
		tooLargeErr  *zerrors.PromptTooLargeError
		maxBytesErr  *http.MaxBytesError
		validatorErr *zerrors.ValidationError
	)

	switch {
	case errors.As(err, &upstreamErr):
		RenderError(w, r, err, upstreamErr.Body, upstreamErr.StatusCode)
	case errors.As(err, &maxBytesErr):
		RenderError(w, r, err, "request body too large", http.StatusRequestEntityTooLarge)
	case errors.As(err, &tooLargeErr):
		RenderError(w, r, err, tooLargeErr.Error(), http.StatusRequestEntityTooLarge)
	case errors.As(err, &validatorErr):
		RenderError(w, r, err, validatorErr.Error(), http.StatusBadRequest)
	case errors.As(err, &connErr):
		status := http.StatusBadGateway
		if connErr.Timeout() {
			status = http.StatusGatewayTimeout
		}
		RenderError(w, r, err, connErr.Error(), status)
	default:
		RenderError(w, r, err, err.Error(), http.StatusInternalServerError)
	}
}
