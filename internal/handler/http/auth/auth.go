// Package auth issues and validates the bearer tokens that protect the
// analysis endpoints. Authentication is optional and disabled unless a
// signing secret is configured.
package auth

import (
	"context"
	"crypto/subtle"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"textstats/internal/handler/http/requestid"
	"textstats/internal/handler/http/respond"
)

type ctxKey string

const ctxUser ctxKey = "user"

// TokenTTL is how long an issued token stays valid.
const TokenTTL = time.Hour

// Issuer validates static API credentials and signs short-lived HS256
// tokens for them.
type Issuer struct {
	Secret   []byte
	Username string
	Password string
	Logger   *slog.Logger
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type tokenResponse struct {
	Token     string `json:"token"`
	ExpiresAt int64  `json:"expires_at"`
}

// TokenHandler serves POST /auth/token. It checks the configured
// credentials and returns a signed token.
func (i *Issuer) TokenHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := i.Logger.With(slog.String("request_id", requestid.FromContext(r.Context())))

		var req loginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respond.SafeError(w, http.StatusBadRequest, fmt.Errorf("invalid request body: %w", err))
			return
		}

		if !i.credentialsMatch(req.Username, req.Password) {
			logger.Warn("authentication failed", slog.String("reason", "invalid_credentials"))
			respond.SafeError(w, http.StatusUnauthorized, errors.New("invalid credentials"))
			return
		}

		expires := time.Now().Add(TokenTTL)
		token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
			"sub": req.Username,
			"exp": expires.Unix(),
		})
		signed, err := token.SignedString(i.Secret)
		if err != nil {
			logger.Error("token signing failed", slog.String("error", err.Error()))
			respond.SafeError(w, http.StatusInternalServerError, err)
			return
		}

		logger.Info("token issued", slog.String("user", req.Username))
		respond.JSON(w, http.StatusOK, tokenResponse{Token: signed, ExpiresAt: expires.Unix()})
	}
}

func (i *Issuer) credentialsMatch(username, password string) bool {
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(i.Username)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(password), []byte(i.Password)) == 1
	return userOK && passOK
}

// Authz returns middleware that requires a valid bearer token on every
// request it wraps. Routes that should stay public must be registered
// outside the wrapped handler.
func Authz(secret []byte) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user, err := validateToken(r.Header.Get("Authorization"), secret)
			if err != nil {
				w.Header().Set("WWW-Authenticate", "Bearer")
				respond.SafeError(w, http.StatusUnauthorized, fmt.Errorf("unauthorized: %w", err))
				return
			}
			ctx := context.WithValue(r.Context(), ctxUser, user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// UserFromContext returns the authenticated subject, if any.
func UserFromContext(ctx context.Context) string {
	user, _ := ctx.Value(ctxUser).(string)
	return user
}

func validateToken(authz string, secret []byte) (string, error) {
	const prefix = "Bearer "
	if !strings.HasPrefix(authz, prefix) {
		return "", errors.New("missing bearer token")
	}
	tok, err := jwt.Parse(strings.TrimPrefix(authz, prefix), func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, errors.New("unexpected signing method")
		}
		return secret, nil
	})
	if err != nil || !tok.Valid {
		return "", errors.New("invalid token")
	}
	claims, ok := tok.Claims.(jwt.MapClaims)
	if !ok {
		return "", errors.New("invalid claims")
	}
	if exp, ok := claims["exp"].(float64); !ok || int64(exp) < time.Now().Unix() {
		return "", errors.New("token expired")
	}
	sub, ok := claims["sub"].(string)
	if !ok {
		return "", errors.New("invalid sub claim")
	}
	return sub, nil
}
