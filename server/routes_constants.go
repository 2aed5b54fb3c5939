package server

// Route path constants
// All application routes are defined here to ensure consistency and prevent typos
const (
	// Auth Routes
	RouteLogin   = "/api/login"
	RouteSession = "/api/session"
	RouteLogout  = "/api/logout"

	// Protected Routes
	RouteProfile   = "/api/profile"
	RouteDashboard = "/api/dashboard"
	RouteData      = "/api/data"
	RouteDataByID  = "/api/data/{id}"

	// Admin Routes
	RouteAdminUsers = "/api/admin/users"

	// Diagnostics
	RouteHealth = "/api/health"
)
