package models

import (
	"encoding/json"
	"errors"

	"github.com/tidwall/gjson"
)

var ErrInvalidSummaryJSON = errors.New("inference backend returned malformed JSON")

// SummaryResponse is the inference backend's reply body. It is relayed to the
// caller byte for byte; nothing beyond JSON well-formedness is checked.
type SummaryResponse struct {
	raw json.RawMessage
}

// NewSummaryResponse wraps body, rejecting anything that is not valid JSON.
func NewSummaryResponse(body []byte) (*SummaryResponse, error) {
	if !json.Valid(body) {
		return nil, ErrInvalidSummaryJSON
	}
	raw := make(json.RawMessage, len(body))
	copy(raw, body)
	return &SummaryResponse{raw: raw}, nil
}

// Bytes returns the body exactly as the backend sent it.
func (s *SummaryResponse) Bytes() []byte {
	return s.raw
}

// Summary returns the "response" field, or "" when the backend used another shape.
func (s *SummaryResponse) Summary() string {
	return gjson.GetBytes(s.raw, "response").String()
}

func (s *SummaryResponse) MarshalJSON() ([]byte, error) {
	return s.raw, nil
}
