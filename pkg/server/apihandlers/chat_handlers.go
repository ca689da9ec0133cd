package apihandlers

import (
	"net/http"

	"github.com/chatapp/chatsummary/internal"
	"github.com/chatapp/chatsummary/pkg/chat"
	"github.com/chatapp/chatsummary/pkg/models"
	"github.com/chatapp/chatsummary/pkg/server/handlertools"
)

const CapabilityStatusHeader = "X-Capability-Status"

// SummarizeChatHandler summarizes a chat conversation.
//
// The body is a JSON array of messages, each with a "sender" and a "message".
// On success the inference backend's JSON reply is relayed unchanged. A backend
// failure is relayed with the backend's status code and raw body as the detail.
//
//	@Summary		Summarize a chat conversation
//	@Description	Builds a few-shot prompt from the conversation and relays it to the inference backend
//	@Tags			chat
//	@Accept			json
//	@Produce		json
//	@Param			body	body		[]models.ChatMessage	true	"Conversation, oldest message first"
//	@Success		200		{object}	object					"Backend reply, e.g. {\"response\": \"...\"}"
//	@Failure		400		{object}	APIError				"Bad Request"
//	@Failure		413		{object}	APIError				"Request or prompt too large"
//	@Failure		500		{object}	APIError				"Internal Server Error"
//	@Failure		502		{object}	APIError				"Inference backend unreachable"
//	@Failure		504		{object}	APIError				"Inference backend timed out"
//	@Router			/summarize_chat [post]
func SummarizeChatHandler(appState *models.AppState) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		body, err := handlertools.ReadBody(r)
		if err != nil {
			handlertools.HandleError(w, r, err)
			return
		}

		conversation, err := chat.ParseConversation(body)
		if err != nil {
			handlertools.HandleError(w, r, err)
			return
		}

		summary, err := appState.ChatService.SummarizeChat(r.Context(), conversation)
		if err != nil {
			handlertools.HandleError(w, r, err)
			return
		}

		if err := handlertools.WriteRawJSON(w, http.StatusOK, summary.Bytes()); err != nil {
			internal.RequestLogger(r.Context()).Errorf("error writing summary: %v", err)
		}
	}
}

// DetectEmotionsHandler is a placeholder for emotion detection. It accepts any
// body and always answers 200 with {"implemented": false, "emotions": []} and an
// X-Capability-Status: not-implemented header.
//
//	@Summary		Detect emotions in a chat conversation (not implemented)
//	@Tags			chat
//	@Produce		json
//	@Success		200	{object}	models.EmotionsResponse
//	@Router			/detect_emotions [post]
func DetectEmotionsHandler(appState *models.AppState) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		result, err := appState.ChatService.DetectEmotions(r.Context(), nil)
		if err != nil {
			handlertools.HandleError(w, r, err)
			return
		}

		if !result.Implemented {
			w.Header().Set(CapabilityStatusHeader, "not-implemented")
		}
		if err := handlertools.EncodeJSON(w, result); err != nil {
			handlertools.HandleError(w, r, err)
			return
		}
	}
}
