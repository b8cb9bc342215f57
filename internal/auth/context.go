package auth

import (
	"context"
	"net/http"
	"strings"
)

const (
	SessionCookieName = "fitness_session"
	TokenHeader       = "Authorization"
)

type ctxKey struct{}

func ContextWithUserID(ctx context.Context, userID int) context.Context {
	return context.WithValue(ctx, ctxKey{}, userID)
}

// UserIDFromContext returns the authenticated user id, if any.
func UserIDFromContext(ctx context.Context) (int, bool) {
	userID, ok := ctx.Value(ctxKey{}).(int)
	return userID, ok && userID > 0
}

// TokenFromRequest reads the session token from the cookie, falling back to
// a bearer Authorization header.
func TokenFromRequest(r *http.Request) string {
	if cookie, err := r.Cookie(SessionCookieName); err == nil && cookie.Value != "" {
		return cookie.Value
	}

	header := strings.TrimSpace(r.Header.Get(TokenHeader))
	if token, found := strings.CutPrefix(header, "Bearer "); found {
		return strings.TrimSpace(token)
	}
	return ""
}
