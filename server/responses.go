package server

import (
	"encoding/json"
	"net/http"

	"github.com/sessionapi/go-session-server/internal/apperrors"
)

// errorResponse is the JSON error envelope shared by every failure path.
type errorResponse struct {
	Error    string `json:"error"`
	Message  string `json:"message,omitempty"`
	YourRole string `json:"your_role,omitempty"` // set on authorization_denied only
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		s.log.Err(err).Msg("Failed to encode response payload")
	}
}

// writeError maps an error kind to its status and envelope. Internal faults
// are logged with detail and reported with a generic message so nothing
// internal leaks past the HTTP boundary.
func (s *Server) writeError(w http.ResponseWriter, err error, message string) {
	status := apperrors.HTTPStatus(err)
	if status == http.StatusInternalServerError {
		s.log.Err(err).Msg("Internal failure")
		message = "Internal server error"
	}
	s.writeJSON(w, status, errorResponse{
		Error:   apperrors.Code(err),
		Message: message,
	})
}
