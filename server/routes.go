package server

import "github.com/sessionapi/go-session-server/users"

func (s *Server) initRoutes() {
	// Auth lifecycle. Session and logout stay outside the auth gate: both
	// treat a missing session as a normal outcome, not a 401.
	s.RegisterRouteHandler("POST "+RouteLogin, ChainMiddleware(s.LoginHandler(), s.APIMiddleware()...))
	s.RegisterRouteHandler("GET "+RouteSession, ChainMiddleware(s.SessionHandler(), s.APIMiddleware()...))
	s.RegisterRouteHandler("POST "+RouteLogout, ChainMiddleware(s.LogoutHandler(), s.APIMiddleware()...))

	// Protected routes (require a live session)
	s.RegisterRouteHandler("GET "+RouteProfile, ChainMiddleware(s.ProfileHandler(), s.APIMiddleware(s.RequireSession())...))
	s.RegisterRouteHandler("PUT "+RouteProfile, ChainMiddleware(s.ProfileUpdateHandler(), s.APIMiddleware(s.RequireSession())...))
	s.RegisterRouteHandler("GET "+RouteDashboard, ChainMiddleware(s.DashboardHandler(), s.APIMiddleware(s.RequireSession())...))
	s.RegisterRouteHandler("POST "+RouteData, ChainMiddleware(s.DataCreateHandler(), s.APIMiddleware(s.RequireSession())...))
	s.RegisterRouteHandler("DELETE "+RouteDataByID, ChainMiddleware(s.DataDeleteHandler(), s.APIMiddleware(s.RequireSession())...))

	// Admin routes (require a live session AND the admin role)
	s.RegisterRouteHandler("GET "+RouteAdminUsers, ChainMiddleware(s.AdminUsersHandler(), s.APIMiddleware(s.RequireSession(), s.RequireRole(users.RoleAdmin))...))

	// Liveness probe, no auth
	s.RegisterRouteHandler("GET "+RouteHealth, ChainMiddleware(s.HealthHandler(), s.APIMiddleware()...))
}
