package server

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/rs/zerolog"
	"github.com/sessionapi/go-session-server/auth"
	"github.com/sessionapi/go-session-server/internal/config"
)

type Server struct {
	env     string // Environment (e.g., "DEV", "production")
	mux     *http.ServeMux
	routes  []string
	config  config.Config
	auth    *auth.AuthenticationService
	repos   auth.Repos
	cookies *CookieTransport
	log     zerolog.Logger
}

func New(config config.Config, repos auth.Repos, logger zerolog.Logger) (*Server, error) {
	authService, err := auth.NewAuthenticationService(repos, auth.BcryptVerifier{})
	if err != nil {
		return nil, fmt.Errorf("[Server New] failed to create authentication service: %w", err)
	}

	s := &Server{
		mux:     http.NewServeMux(),
		config:  config,
		repos:   repos,
		auth:    authService,
		cookies: NewCookieTransport(config),
		log:     logger,
	}
	s.env = config.GetEnv()

	s.initRoutes()
	s.logRoutes()

	return s, nil
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

func (s *Server) RegisterRouteHandler(pattern string, handler http.Handler) {
	s.routes = append(s.routes, pattern)
	s.mux.Handle(pattern, handler)
}

func (s *Server) RegisterRouteFunc(pattern string, handler func(http.ResponseWriter, *http.Request)) {
	s.routes = append(s.routes, pattern)
	s.mux.HandleFunc(pattern, handler)
}

func (s *Server) logRoutes() {
	if s.env != "DEV" {
		return // Skip logging in non-development environments
	}
	for _, route := range s.routes {
		parts := strings.SplitN(route, " ", 2)

		if len(parts) > 1 {
			s.logRoute(parts[0], parts[1])
		} else {
			s.logRoute("", parts[0])
		}
	}
}

func (s *Server) logRoute(method, path string) {
	var displayMethod string
	paddedMethod := fmt.Sprintf(" %-7s", method)
	if color, ok := methodColors[method]; ok {
		displayMethod = color + paddedMethod + ResetColor
	} else {
		displayMethod = Gray + paddedMethod + ResetColor
	}
	s.log.Info().Msgf("[%-19s] %s", displayMethod, path)
}
