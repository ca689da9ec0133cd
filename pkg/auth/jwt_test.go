package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chatapp/chatsummary/config"
)

func TestGenerateJWT(t *testing.T) {
	cfg := &config.AuthConfig{Secret: "test-secret"}

	token, err := GenerateJWT(cfg, time.Hour)
	require.NoError(t, err)

	claims := &jwt.RegisteredClaims{}
	parsedToken, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (interface{}, error) {
		return []byte(cfg.Secret), nil
	})
	require.NoError(t, err)
	assert.True(t, parsedToken.Valid)
	assert.Equal(t, TokenSubject, claims.Subject)
	assert.NotNil(t, claims.ExpiresAt)
}

func TestGenerateJWTNoSecret(t *testing.T) {
	_, err := GenerateJWT(&config.AuthConfig{}, 0)
	assert.ErrorIs(t, err, ErrSecretNotSet)

	_, err = Middleware(&config.AuthConfig{})
	assert.ErrorIs(t, err, ErrSecretNotSet)
}

func TestMiddleware(t *testing.T) {
	cfg := &config.AuthConfig{Secret: "test-secret", Required: true}

	mw, err := Middleware(cfg)
	require.NoError(t, err)

	router := chi.NewRouter()
	router.Use(mw...)
	router.Post("/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	validToken, err := GenerateJWT(cfg, time.Hour)
	require.NoError(t, err)
	otherToken, err := GenerateJWT(&config.AuthConfig{Secret: "other-secret"}, time.Hour)
	require.NoError(t, err)

	tests := []struct {
		name   string
		header string
		status int
	}{
		{"valid token", "Bearer " + validToken, http.StatusOK},
		{"missing token", "", http.StatusUnauthorized},
		{"garbage token", "Bearer invalid-token", http.StatusUnauthorized},
		{"wrong secret", "Bearer " + otherToken, http.StatusUnauthorized},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			res := httptest.NewRecorder()

			router.ServeHTTP(res, req)
			assert.Equal(t, tt.status, res.Code)
		})
	}
}
