package chat

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/chatapp/chatsummary/pkg/models"
	"github.com/chatapp/chatsummary/pkg/zerrors"
)

var validate = validator.New()

// messageInput distinguishes an absent key from an empty string; only the former
// is rejected.
type messageInput struct {
	Sender  *string `json:"sender"  validate:"required"`
	Message *string `json:"message" validate:"required"`
}

// ParseConversation decodes the canonical request body, a JSON array of
// {"sender": ..., "message": ...} objects, and returns a ValidationError for
// anything else.
func ParseConversation(body []byte) (models.Conversation, error) {
	var inputs []*messageInput

	dec := json.NewDecoder(bytes.NewReader(body))
	if err := dec.Decode(&inputs); err != nil {
		return nil, zerrors.NewValidationError(
			fmt.Sprintf("body must be a JSON array of {\"sender\", \"message\"} objects: %v", err),
		)
	}
	if dec.More() {
		return nil, zerrors.NewValidationError("body must contain a single JSON array")
	}
	if inputs == nil {
		return nil, zerrors.NewValidationError("body must be a JSON array, got null")
	}

	conversation := make(models.Conversation, 0, len(inputs))
	for i, in := range inputs {
		if in == nil {
			return nil, zerrors.NewValidationError(fmt.Sprintf("message %d is null", i))
		}
		if err := validate.Struct(in); err != nil {
			return nil, zerrors.NewValidationError(fmt.Sprintf("message %d: %s", i, describe(err)))
		}
		conversation = append(conversation, models.ChatMessage{
			Sender:  *in.Sender,
			Message: *in.Message,
		})
	}

	return conversation, nil
}

func describe(err error) string {
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return err.Error()
	}
	missing := make([]string, 0, len(validationErrors))
	for _, fe := range validationErrors {
		missing = append(missing, strings.ToLower(fe.Field()))
	}
	return "missing " + strings.Join(missing, ", ")
}

// FormatTranscript renders each message as "sender: message\n", in order.
func FormatTranscript(conversation models.Conversation) string {
	var sb strings.Builder
	for _, m := range conversation {
		sb.WriteString(m.Sender)
		sb.WriteString(": ")
		sb.WriteString(m.Message)
		sb.WriteString("\n")
	}
	return sb.String()
}
