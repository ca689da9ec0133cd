package llms

import (
	"sync"

	"github.com/pkoukk/tiktoken-go"

	"github.com/chatapp/chatsummary/pkg/models"
)

const DefaultEncoding = "cl100k_base"

var _ models.TokenCounter = &TiktokenCounter{}

// TiktokenCounter approximates the backend's tokenizer with a BPE encoding. The
// encoding is loaded on first use since loading may fetch it over the network.
type TiktokenCounter struct {
	encoding string
	once     sync.Once
	tkm      *tiktoken.Tiktoken
	err      error
}

func NewTiktokenCounter(encoding string) *TiktokenCounter {
	if encoding == "" {
		encoding = DefaultEncoding
	}
	return &TiktokenCounter{encoding: encoding}
}

func (t *TiktokenCounter) CountTokens(text string) (int, error) {
	t.once.Do(func() {
		t.tkm, t.err = tiktoken.GetEncoding(t.encoding)
	})
	if t.err != nil {
		return 0, t.err
	}
	return len(t.tkm.Encode(text, nil, nil)), nil
}
