package apihandlers

import "github.com/chatapp/chatsummary/pkg/server/handlertools"

// APIError represents an error response. Used for swagger documentation.
type APIError = handlertools.ErrorResponse
