package models

import (
	"github.com/chatapp/chatsummary/config"
)

// AppState is a struct that holds the state of the application
// Use cmd.NewAppState to create a new instance. Every field is set once at startup.
type AppState struct {
	ChatService ChatService
	Config      *config.Config
}
