package server

import (
	"context"
	"net/http"

	"github.com/sessionapi/go-session-server/internal/apperrors"
	"github.com/sessionapi/go-session-server/sessions"
	"github.com/sessionapi/go-session-server/users"
)

// ContextKey is a custom type for context keys to avoid collisions
type ContextKey string

const (
	// ContextKeySession stores the resolved session record
	ContextKeySession ContextKey = "session"
	// ContextKeyRequestID stores the request ID assigned by the logging middleware
	ContextKeyRequestID ContextKey = "request_id"
)

// SessionFromContext returns the session attached by RequireSession.
func SessionFromContext(ctx context.Context) (sessions.Session, bool) {
	session, ok := ctx.Value(ContextKeySession).(sessions.Session)
	return session, ok
}

// RequireSession is the auth gate: it resolves the session cookie and either
// attaches the live session to the request context or short-circuits with a
// 401. Expired sessions are indistinguishable from absent ones by design.
func (s *Server) RequireSession() func(http.HandlerFunc) http.HandlerFunc {
	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			token := s.cookies.Extract(r)
			session, ok := s.auth.Resolve(token)
			if !ok {
				s.writeError(w, apperrors.ErrAuthenticationRequired, "Please login first")
				return
			}

			ctx := context.WithValue(r.Context(), ContextKeySession, session)
			next(w, r.WithContext(ctx))
		}
	}
}

// RequireRole validates the session's role against the endpoint's required
// role. It must be chained after RequireSession. The 403 body reports the
// caller's actual role for diagnostics.
func (s *Server) RequireRole(required users.Role) func(http.HandlerFunc) http.HandlerFunc {
	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			session, ok := SessionFromContext(r.Context())
			if !ok {
				s.writeError(w, apperrors.ErrAuthenticationRequired, "Please login first")
				return
			}

			if session.Role != required {
				s.writeJSON(w, apperrors.HTTPStatus(apperrors.ErrAuthorizationDenied), errorResponse{
					Error:    apperrors.Code(apperrors.ErrAuthorizationDenied),
					Message:  string(required) + " role required",
					YourRole: string(session.Role),
				})
				return
			}

			next(w, r)
		}
	}
}
