package models

import "context"

// ChatMessage is a single turn of a conversation as supplied by the caller.
type ChatMessage struct {
	Sender  string `json:"sender"`
	Message string `json:"message"`
}

// Conversation is an ordered, chronological list of messages.
type Conversation []ChatMessage

// ChatService summarizes conversations. Implementations hold no per-request state.
type ChatService interface {
	// SummarizeChat serializes the conversation, builds the few-shot prompt and
	// relays it to the inference backend.
	SummarizeChat(ctx context.Context, conversation Conversation) (*SummaryResponse, error)
	// DetectEmotions is not yet available and always reports so.
	DetectEmotions(ctx context.Context, conversation Conversation) (*EmotionsResponse, error)
}

// EmotionsResponse marks emotion detection as not implemented, so that callers can
// tell "not built yet" apart from "no emotions found".
type EmotionsResponse struct {
	Implemented bool     `json:"implemented"`
	Emotions    []string `json:"emotions"`
}

func NewNotImplementedEmotionsResponse() *EmotionsResponse {
	return &EmotionsResponse{Implemented: false, Emotions: []string{}}
}
