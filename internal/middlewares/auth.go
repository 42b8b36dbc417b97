package middlewares

import (
	"context"
	"net/http"

	"github.com/css-society/events-api/internal/logger"
	"github.com/css-society/events-api/internal/models"
)

// SessionProvider defines the minimal interface needed by the middleware
type SessionProvider interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetSessionUser(ctx context.Context, tokenString string) (*models.SessionUser, error)
}

// AuthMiddleware returns a middleware that resolves the session user from
// the bearer token and stores it in the request context
func AuthMiddleware(sessions SessionProvider) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			tokenString, err := sessions.GetTokenFromRequest(ctx, r)
			if err != nil {
				logger.Log.Errorw("authorization failed", "err", err)
				w.WriteHeader(http.StatusUnauthorized)
				return
			}

			user, err := sessions.GetSessionUser(ctx, tokenString)
			if err != nil {
				logger.Log.Errorw("authorization failed", "err", err)
				w.WriteHeader(http.StatusUnauthorized)
				return
			}

			ctx = SetSessionUserToContext(ctx, user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

type sessionKeyType struct{}

var sessionKey = sessionKeyType{}

// SetSessionUserToContext stores the session user in the context
func SetSessionUserToContext(ctx context.Context, user *models.SessionUser) context.Context {
	return context.WithValue(ctx, sessionKey, user)
}

// GetSessionUserFromContext retrieves the session user from the context.
// Returns nil if the request did not pass the auth middleware.
func GetSessionUserFromContext(ctx context.Context) *models.SessionUser {
	user, _ := ctx.Value(sessionKey).(*models.SessionUser)
	return user
}
