package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSummaryResponse(t *testing.T) {
	body := []byte(`{"response":"x"}`)

	resp, err := NewSummaryResponse(body)
	require.NoError(t, err)
	assert.Equal(t, `{"response":"x"}`, string(resp.Bytes()))
	assert.Equal(t, "x", resp.Summary())

	// the wrapped body is a copy
	body[2] = 'X'
	assert.Equal(t, `{"response":"x"}`, string(resp.Bytes()))
}

func TestSummaryResponseKeepsUnknownShape(t *testing.T) {
	body := []byte(`{ "summary": "other", "model": "llama3" }`)

	resp, err := NewSummaryResponse(body)
	require.NoError(t, err)
	assert.Equal(t, string(body), string(resp.Bytes()))
	assert.Equal(t, "", resp.Summary())
}

func TestSummaryResponseInvalidJSON(t *testing.T) {
	_, err := NewSummaryResponse([]byte(`overloaded`))
	assert.ErrorIs(t, err, ErrInvalidSummaryJSON)
}

func TestSummaryResponseMarshal(t *testing.T) {
	resp, err := NewSummaryResponse([]byte(`{"response":"x"}`))
	require.NoError(t, err)

	wrapped, err := json.Marshal(map[string]any{"result": resp})
	require.NoError(t, err)
	assert.JSONEq(t, `{"result":{"response":"x"}}`, string(wrapped))
}

func TestNotImplementedEmotionsResponse(t *testing.T) {
	b, err := json.Marshal(NewNotImplementedEmotionsResponse())
	require.NoError(t, err)
	assert.JSONEq(t, `{"implemented":false,"emotions":[]}`, string(b))
}
