package middleware

import (
	"context"
	"net/http"

	"github.com/2beens/fitnessapi/internal/auth"
	"github.com/2beens/fitnessapi/internal/telemetry/tracing"
	"github.com/2beens/fitnessapi/pkg"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

//go:generate mockgen -source=$GOFILE -destination=session_mocks_test.go -package=middleware_test

type sessionChecker interface {
	UserIDForToken(ctx context.Context, token string) (int, bool, error)
}

// ResolveSession puts the user owning the request's session token into the
// request context. Requests without a valid session pass through unchanged,
// handlers decide whether an authenticated user is required.
func ResolveSession(checker sessionChecker) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, span := tracing.GlobalTracer.Start(r.Context(), "middleware.session")

			token := auth.TokenFromRequest(r)
			if token == "" {
				span.SetStatus(codes.Ok, "anonymous")
				span.End()
				next.ServeHTTP(w, r)
				return
			}

			userID, ok, err := checker.UserIDForToken(ctx, token)
			if err != nil {
				log.Errorf("[session middleware] resolve session => %s: %s", r.URL.Path, err)
				span.SetStatus(codes.Error, "resolve-session-err")
				span.RecordError(err)
				span.End()
				pkg.WriteJSONError(w, "internal error", http.StatusInternalServerError)
				return
			}
			if !ok {
				log.Tracef("[session middleware] invalid token => %s", r.URL.Path)
				span.SetStatus(codes.Ok, "invalid-token")
				span.End()
				next.ServeHTTP(w, r)
				return
			}

			span.SetAttributes(attribute.Int("user.id", userID))
			span.SetStatus(codes.Ok, "ok")
			span.End()

			next.ServeHTTP(w, r.WithContext(auth.ContextWithUserID(r.Context(), userID)))
		})
	}
}
