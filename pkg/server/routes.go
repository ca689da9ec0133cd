package server

import (
	"fmt"
	"net/http"
	"time"

	httpLogger "github.com/chi-middleware/logrus-logger"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/riandyrn/otelchi"

	"github.com/chatapp/chatsummary/internal"
	"github.com/chatapp/chatsummary/pkg/auth"
	"github.com/chatapp/chatsummary/pkg/models"
	"github.com/chatapp/chatsummary/pkg/server/apihandlers"
)

const (
	ReadHeaderTimeout = 5 * time.Second
	RouterName        = "chatsummary"
)

var log = internal.GetLogger()

// Create creates a new HTTP server with the given app state
func Create(appState *models.AppState) (*http.Server, error) {
	router, err := setupRouter(appState)
	if err != nil {
		return nil, err
	}

	return &http.Server{
		Addr:              fmt.Sprintf("%s:%d", appState.Config.Server.Host, appState.Config.Server.Port),
		Handler:           router,
		ReadHeaderTimeout: ReadHeaderTimeout,
	}, nil
}

// @title						Chat Summary API
// @version					0.x
// @BasePath					/
// @schemes					http https
// @securityDefinitions.apikey	Bearer
// @in							header
// @name						Authorization
// @description				Type "Bearer" followed by a space and JWT token. Only required when auth is enabled.
func setupRouter(appState *models.AppState) (*chi.Mux, error) {
	router := chi.NewRouter()
	router.Use(httpLogger.Logger("router", log))
	router.Use(middleware.Recoverer)
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(SendVersion)
	router.Use(middleware.Heartbeat("/healthz"))
	router.Use(otelchi.Middleware(
		RouterName,
		otelchi.WithChiRoutes(router),
		otelchi.WithRequestMethodInSpanName(true),
	))

	var authMiddleware []func(http.Handler) http.Handler
	if appState.Config.Auth.Required {
		log.Info("JWT authentication required")
		mw, err := auth.Middleware(&appState.Config.Auth)
		if err != nil {
			return nil, err
		}
		authMiddleware = mw
	}

	router.Group(func(r chi.Router) {
		r.Use(authMiddleware...)
		r.Use(middleware.RequestSize(appState.Config.Server.MaxRequestSize))

		r.Post("/summarize_chat", apihandlers.SummarizeChatHandler(appState))
		// original, misspelled route kept for existing callers
		r.Post("/sumarize_chat", apihandlers.SummarizeChatHandler(appState))
		r.Post("/detect_emotions", apihandlers.DetectEmotionsHandler(appState))
	})

	return router, nil
}
