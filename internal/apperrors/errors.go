package apperrors

import (
	"errors"
	"net/http"
)

// Common error kinds for the session API. Handlers and middleware wrap these
// with fmt.Errorf("...: %w", err) and the HTTP boundary maps them to a status
// code and a machine-readable code via HTTPStatus and Code.
var (
	// ErrMalformedRequest indicates a request body or parameter that could
	// not be parsed or is missing required fields.
	ErrMalformedRequest = errors.New("malformed request")

	// ErrInvalidCredentials indicates a failed username/password check.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrAuthenticationRequired indicates a missing or expired session.
	ErrAuthenticationRequired = errors.New("authentication required")

	// ErrAuthorizationDenied indicates a live session with an insufficient role.
	ErrAuthorizationDenied = errors.New("authorization denied")

	// ErrInternal indicates an unexpected server fault. The user-facing
	// message is generic; the underlying cause is logged server-side only.
	ErrInternal = errors.New("internal error")
)

// HTTPStatus maps an error chain to the HTTP status code of its kind.
// Unknown errors are treated as internal faults.
func HTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrMalformedRequest):
		return http.StatusBadRequest
	case errors.Is(err, ErrInvalidCredentials), errors.Is(err, ErrAuthenticationRequired):
		return http.StatusUnauthorized
	case errors.Is(err, ErrAuthorizationDenied):
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}

// Code returns the machine-readable error code used in JSON error envelopes.
func Code(err error) string {
	switch {
	case errors.Is(err, ErrMalformedRequest):
		return "malformed_request"
	case errors.Is(err, ErrInvalidCredentials):
		return "invalid_credentials"
	case errors.Is(err, ErrAuthenticationRequired):
		return "authentication_required"
	case errors.Is(err, ErrAuthorizationDenied):
		return "authorization_denied"
	default:
		return "internal_error"
	}
}

// Is reports whether any error in err's chain matches target
func Is(err, target error) bool {
	return errors.Is(err, target)
}
