package server

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/sessionapi/go-session-server/internal/apperrors"
	"github.com/sessionapi/go-session-server/users"
)

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type userSummary struct {
	ID       int        `json:"id"`
	Username string     `json:"username"`
	Email    string     `json:"email,omitempty"`
	Role     users.Role `json:"role"`
}

type sessionSummary struct {
	SessionID string    `json:"session_id"`
	LoginTime time.Time `json:"login_time"`
	ExpiresAt time.Time `json:"expires_at"`
	ExpiresIn int       `json:"expires_in"` // seconds, mirrors the cookie max-age
}

// LoginHandler authenticates credentials and issues a session. A repeat
// login from an already-authenticated caller simply issues a fresh token;
// the previous session is left to expire on its own.
func (s *Server) LoginHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req loginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			s.writeError(w, apperrors.ErrMalformedRequest, "Request body must be JSON")
			return
		}
		if req.Username == "" || req.Password == "" {
			s.writeError(w, apperrors.ErrMalformedRequest, "Username and password required")
			return
		}

		session, user, err := s.auth.Login(req.Username, req.Password)
		if err != nil {
			s.writeError(w, err, "Invalid credentials")
			return
		}

		s.cookies.Attach(w, session.Token)
		s.writeJSON(w, http.StatusOK, map[string]any{
			"success": true,
			"message": "Login successful",
			"user": userSummary{
				ID:       user.ID,
				Username: user.Username,
				Email:    user.Email,
				Role:     user.Role,
			},
			"session": sessionSummary{
				SessionID: session.Token,
				LoginTime: session.LoginTime,
				ExpiresAt: session.ExpiresAt,
				ExpiresIn: int(s.cookies.TTL().Seconds()),
			},
		})
	}
}

// SessionHandler reports session status. Absence of a session is a normal
// authenticated:false response, never an error status.
func (s *Server) SessionHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session, ok := s.auth.Resolve(s.cookies.Extract(r))
		if !ok {
			s.writeJSON(w, http.StatusOK, map[string]any{
				"authenticated": false,
				"message":       "No active session",
			})
			return
		}

		s.writeJSON(w, http.StatusOK, map[string]any{
			"authenticated": true,
			"user": userSummary{
				ID:       session.UserID,
				Username: session.Username,
				Role:     session.Role,
			},
			"session": sessionSummary{
				SessionID: session.Token,
				LoginTime: session.LoginTime,
				ExpiresAt: session.ExpiresAt,
				ExpiresIn: int(s.cookies.TTL().Seconds()),
			},
		})
	}
}

// LogoutHandler destroys the session if present and clears the cookie.
// Always 200; a second logout with the same cookie is a no-op.
func (s *Server) LogoutHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		token := s.cookies.Extract(r)
		session, hadSession := s.auth.Resolve(token)

		destroyed := s.auth.Logout(token)
		s.cookies.Clear(w)

		response := map[string]any{
			"success": true,
			"message": "Logout successful",
		}
		if hadSession && destroyed {
			response["logged_out_user"] = session.Username
			response["session_id"] = session.Token
		}
		s.writeJSON(w, http.StatusOK, response)
	}
}
