package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/sessionapi/go-session-server/internal/apperrors"
)

// ProfileHandler returns the caller's profile. The user record is
// re-resolved from the directory rather than read from the session cache so
// the response always reflects the authoritative record.
func (s *Server) ProfileHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session, _ := SessionFromContext(r.Context())

		user, err := s.repos.Users.GetByID(session.UserID)
		if err != nil {
			s.writeError(w, fmt.Errorf("%w: profile lookup: %w", apperrors.ErrInternal, err), "")
			return
		}

		s.writeJSON(w, http.StatusOK, map[string]any{
			"success": true,
			"profile": userSummary{
				ID:       user.ID,
				Username: user.Username,
				Email:    user.Email,
				Role:     user.Role,
			},
			"session_info": map[string]any{
				"session_id": session.Token,
				"login_time": session.LoginTime,
				"username":   session.Username,
			},
		})
	}
}

type profileUpdateRequest struct {
	Email    string `json:"email"`
	FullName string `json:"full_name"`
}

// ProfileUpdateHandler echoes the submitted update. Users are immutable
// reference data, so nothing is persisted; the endpoint exists to exercise
// a session-gated write.
func (s *Server) ProfileUpdateHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session, _ := SessionFromContext(r.Context())

		var req profileUpdateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			s.writeError(w, apperrors.ErrMalformedRequest, "Request body must be JSON")
			return
		}

		s.writeJSON(w, http.StatusOK, map[string]any{
			"success":      true,
			"message":      "Profile updated successfully",
			"updated_data": req,
			"updated_by":   session.Username,
			"update_time":  time.Now().UTC(),
		})
	}
}

func (s *Server) DashboardHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session, _ := SessionFromContext(r.Context())

		s.writeJSON(w, http.StatusOK, map[string]any{
			"success": true,
			"message": fmt.Sprintf("Welcome to dashboard, %s!", session.Username),
			"dashboard": map[string]any{
				"widgets":       []string{"Analytics", "Sales", "Reports", "Users"},
				"notifications": 3,
				"last_login":    session.LoginTime,
				"user_role":     session.Role,
			},
		})
	}
}

type dataCreateRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

func (s *Server) DataCreateHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session, _ := SessionFromContext(r.Context())

		var req dataCreateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			s.writeError(w, apperrors.ErrMalformedRequest, "Request body must be JSON")
			return
		}

		s.writeJSON(w, http.StatusOK, map[string]any{
			"success": true,
			"message": "Data created successfully",
			"data": map[string]any{
				"id":         uuid.NewString(),
				"title":      req.Title,
				"content":    req.Content,
				"created_by": session.Username,
				"created_at": time.Now().UTC(),
			},
		})
	}
}

func (s *Server) DataDeleteHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session, _ := SessionFromContext(r.Context())
		id := r.PathValue("id")

		s.writeJSON(w, http.StatusOK, map[string]any{
			"success":    true,
			"message":    fmt.Sprintf("Data with ID %s deleted successfully", id),
			"deleted_by": session.Username,
			"deleted_at": time.Now().UTC(),
		})
	}
}

// AdminUsersHandler returns the full user directory. Reached only through
// RequireSession + RequireRole(admin).
func (s *Server) AdminUsersHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session, _ := SessionFromContext(r.Context())

		directory := s.repos.Users.List()
		summaries := make([]userSummary, 0, len(directory))
		for _, user := range directory {
			summaries = append(summaries, userSummary{
				ID:       user.ID,
				Username: user.Username,
				Email:    user.Email,
				Role:     user.Role,
			})
		}

		s.writeJSON(w, http.StatusOK, map[string]any{
			"success":      true,
			"users":        summaries,
			"requested_by": session.Username,
		})
	}
}

// HealthHandler is the liveness probe. It reports whether a live session
// accompanied the request, purely for diagnostics.
func (s *Server) HealthHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		_, hasSession := s.auth.Resolve(s.cookies.Extract(r))

		s.writeJSON(w, http.StatusOK, map[string]any{
			"status":      "OK",
			"message":     "Server is running",
			"timestamp":   time.Now().UTC(),
			"has_session": hasSession,
		})
	}
}
