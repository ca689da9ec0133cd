package llms

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTiktokenCounter(t *testing.T) {
	// loading an encoding downloads its BPE ranks
	if os.Getenv("CHATSUMMARY_TEST_TIKTOKEN") == "" {
		t.Skip("set CHATSUMMARY_TEST_TIKTOKEN to run tokenizer tests")
	}

	counter := NewTiktokenCounter("")
	n, err := counter.CountTokens("user1: Hello!\nuser2: Hi there!\n")
	require.NoError(t, err)
	assert.Greater(t, n, 0)

	empty, err := counter.CountTokens("")
	require.NoError(t, err)
	assert.Equal(t, 0, empty)
}

func TestTiktokenCounterBadEncoding(t *testing.T) {
	counter := NewTiktokenCounter("no_such_encoding")
	_, err := counter.CountTokens("hello")
	assert.Error(t, err)
}
