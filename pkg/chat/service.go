package chat

import (
	"context"

	"github.com/dustin/go-humanize"

	"github.com/chatapp/chatsummary/internal"
	"github.com/chatapp/chatsummary/pkg/models"
	"github.com/chatapp/chatsummary/pkg/zerrors"
)

// Force compiler to validate that Service implements the ChatService interface.
var _ models.ChatService = &Service{}

// PromptBuilder turns a transcript into a complete prompt.
type PromptBuilder interface {
	BuildSummaryPrompt(transcript string) string
}

// Service summarizes conversations by relaying a few-shot prompt to the
// inference backend. It keeps no state between calls.
type Service struct {
	builder         PromptBuilder
	inference       models.InferenceClient
	tokens          models.TokenCounter
	maxPromptTokens int
}

type ServiceOption func(*Service)

// WithTokenLimit rejects prompts over limit tokens, as counted by counter,
// before they are sent. A limit of 0 disables the check.
func WithTokenLimit(counter models.TokenCounter, limit int) ServiceOption {
	return func(s *Service) {
		s.tokens = counter
		s.maxPromptTokens = limit
	}
}

func NewService(builder PromptBuilder, inference models.InferenceClient, opts ...ServiceOption) *Service {
	s := &Service{
		builder:   builder,
		inference: inference,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// SummarizeChat serializes the conversation, builds the prompt and makes exactly
// one logical call to the inference backend. Backend errors are returned as-is so
// their status survives to the HTTP layer.
func (s *Service) SummarizeChat(
	ctx context.Context,
	conversation models.Conversation,
) (*models.SummaryResponse, error) {
	logger := internal.RequestLogger(ctx)

	transcript := FormatTranscript(conversation)
	prompt := s.builder.BuildSummaryPrompt(transcript)

	logger.Debugf(
		"Summarizing %d messages, prompt is %s",
		len(conversation),
		humanize.Bytes(uint64(len(prompt))),
	)

	if err := s.checkPromptSize(prompt); err != nil {
		return nil, err
	}

	summary, err := s.inference.Generate(ctx, prompt)
	if err != nil {
		return nil, err
	}

	logger.Debugf("Received summary of %d characters", len(summary.Summary()))

	return summary, nil
}

func (s *Service) checkPromptSize(prompt string) error {
	if s.maxPromptTokens <= 0 || s.tokens == nil {
		return nil
	}

	n, err := s.tokens.CountTokens(prompt)
	if err != nil {
		return err
	}
	if n > s.maxPromptTokens {
		return zerrors.NewPromptTooLargeError(n, s.maxPromptTokens)
	}
	return nil
}

// DetectEmotions is not implemented. It ignores its input and returns the
// not-implemented marker.
func (s *Service) DetectEmotions(
	_ context.Context,
	_ models.Conversation,
) (*models.EmotionsResponse, error) {
	return models.NewNotImplementedEmotionsResponse(), nil
}
