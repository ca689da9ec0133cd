package auth

import (
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/golang-jwt/jwt/v5"

	"github.com/chatapp/chatsummary/config"
)

const (
	JwtAlg = "HS256"
	// TokenSubject identifies tokens minted by the generate-token command.
	TokenSubject = "chatsummary-client"
)

var ErrSecretNotSet = errors.New(
	"auth secret not set. Ensure CHATSUMMARY_AUTH_SECRET is set in your environment",
)

// GenerateJWT signs an HS256 token with the configured secret. A ttl of 0
// produces a token that never expires.
func GenerateJWT(cfg *config.AuthConfig, ttl time.Duration) (string, error) {
	secret := []byte(cfg.Secret)
	if len(secret) == 0 {
		return "", ErrSecretNotSet
	}

	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:  TokenSubject,
		IssuedAt: jwt.NewNumericDate(now),
	}
	if ttl > 0 {
		claims.ExpiresAt = jwt.NewNumericDate(now.Add(ttl))
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
}

// Middleware returns the verifier/authenticator pair that rejects requests
// without a valid bearer token signed with the configured secret.
func Middleware(cfg *config.AuthConfig) ([]func(http.Handler) http.Handler, error) {
	secret := []byte(cfg.Secret)
	if len(secret) == 0 {
		return nil, ErrSecretNotSet
	}

	tokenAuth := jwtauth.New(JwtAlg, secret, nil)
	return []func(http.Handler) http.Handler{
		jwtauth.Verifier(tokenAuth),
		jwtauth.Authenticator,
	}, nil
}
