package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/chatapp/chatsummary/config"
	"github.com/chatapp/chatsummary/pkg/chat"
	"github.com/chatapp/chatsummary/pkg/llms"
	"github.com/chatapp/chatsummary/pkg/models"
	"github.com/chatapp/chatsummary/pkg/prompts"
	"github.com/chatapp/chatsummary/pkg/server"
	"github.com/chatapp/chatsummary/pkg/telemetry"
)

const ShutdownTimeout = 15 * time.Second

// run is the entrypoint for the chatsummary server. Missing or invalid
// configuration stops the process before the listener is opened.
func run() {
	if showVersion {
		fmt.Println(config.VersionString)
		os.Exit(0)
	}

	cfg, err := config.LoadConfig(cfgFile)
	if err != nil {
		log.Fatalf("Error configuring chatsummary: %s", err)
	}

	handleCLIOptions(cfg)

	log.Infof("Starting chatsummary server version %s", config.VersionString)

	config.SetLogLevel(cfg)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	shutdownTelemetry, err := telemetry.Setup(ctx, cfg)
	if err != nil {
		log.Fatalf("Error setting up telemetry: %s", err)
	}

	appState := NewAppState(cfg)

	srv, err := server.Create(appState)
	if err != nil {
		log.Fatal(err)
	}

	go func() {
		log.Infof("Listening on: %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal(err)
		}
	}()

	<-ctx.Done()
	log.Info("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Errorf("Error shutting down server: %v", err)
	}
	if err := shutdownTelemetry(shutdownCtx); err != nil {
		log.Errorf("Error flushing traces: %v", err)
	}
}

// NewAppState wires the chat service from the loaded config.
func NewAppState(cfg *config.Config) *models.AppState {
	inference := llms.NewInferenceClient(&cfg.Inference)

	var opts []chat.ServiceOption
	if cfg.Inference.MaxPromptTokens > 0 {
		log.Infof("Rejecting prompts over %d tokens", cfg.Inference.MaxPromptTokens)
		opts = append(opts, chat.WithTokenLimit(
			llms.NewTiktokenCounter(llms.DefaultEncoding),
			cfg.Inference.MaxPromptTokens,
		))
	}

	return &models.AppState{
		ChatService: chat.NewService(prompts.DefaultBuilder, inference, opts...),
		Config:      cfg,
	}
}

// handleCLIOptions handles CLI options that don't require the server to run
func handleCLIOptions(cfg *config.Config) {
	if dumpConfig {
		out, err := yaml.Marshal(cfg)
		if err != nil {
			log.Fatalf("Error dumping config: %s", err)
		}
		fmt.Print(string(out))
		os.Exit(0)
	}
}
