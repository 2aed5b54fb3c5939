package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"
	"time"

	"github.com/common-nighthawk/go-figure"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/sessionapi/go-session-server/auth"
	"github.com/sessionapi/go-session-server/internal/config"
	"github.com/sessionapi/go-session-server/server"
	"github.com/sessionapi/go-session-server/sessions"
	"github.com/sessionapi/go-session-server/users"
)

const sweepInterval = 5 * time.Minute

func main() {
	for {
		if err := run(); err != nil {
			log.Fatal().Err(err).Msg("Error running server")
			time.Sleep(1 * time.Second)
		} else {
			break
		}
	}
	log.Info().Msg("Server stopped")
}

func run() (returnError error) {
	defer func() {
		if r := recover(); r != nil {
			log.Error().Interface("panic", r).Msg("Recovered from panic")
			debug.PrintStack()
			returnError = errors.New("panic recovered")
		}
	}()

	_ = godotenv.Load() // optional .env, real env vars win

	c := config.New()
	logger := newLogger(c.GetEnv())
	log.Logger = logger

	displayAppname(c.GetAppName())

	userRepo, err := users.NewInMemoryUserRepo(users.SeedUsers())
	if err != nil {
		return fmt.Errorf("users.NewInMemoryUserRepo: %w", err)
	}
	sessionRepo := sessions.NewInMemorySessionRepo(c.GetSessionTTL())

	srv, err := server.New(c, auth.Repos{Users: userRepo, Sessions: sessionRepo}, logger)
	if err != nil {
		return fmt.Errorf("server.New: %w", err)
	}

	sweepCtx, stopSweep := context.WithCancel(context.Background())
	defer stopSweep()
	go sweepExpiredSessions(sweepCtx, sessionRepo, logger)

	if c.GetEnv() == "DEV" {
		logger.Info().Msg("Test credentials: admin/admin123 (admin), user1/user123 (user)")
	}

	httpServer := &http.Server{Addr: c.GetPort(), Handler: srv}
	go listenAndServe(httpServer, logger)
	waitForStopSignal()
	returnError = shutdown(httpServer)
	return returnError
}

func listenAndServe(server *http.Server, logger zerolog.Logger) {
	logger.Info().Msgf("Server listening on %s", server.Addr)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Err(err).Msg("server.ListenAndServe")
	}
}

func waitForStopSignal() {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop
}

func shutdown(server *http.Server) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		return fmt.Errorf("server.Shutdown: %w", err)
	}
	return nil
}

// sweepExpiredSessions reclaims memory held by abandoned sessions. Expiry
// correctness does not depend on it; Get already expires lazily.
func sweepExpiredSessions(ctx context.Context, repo *sessions.InMemorySessionRepo, logger zerolog.Logger) {
	ticker := time.NewTicker(sweepInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			if removed := repo.DeleteExpired(now); removed > 0 {
				logger.Debug().Int("removed", removed).Msg("Swept expired sessions")
			}
		}
	}
}

func newLogger(env string) zerolog.Logger {
	if env == "DEV" {
		return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
	}
	return zerolog.New(os.Stderr).With().Timestamp().Logger()
}

func displayAppname(appname string) {
	myFigure := figure.NewFigure(appname, "cybermedium", true)
	myFigure.Print()
	fmt.Println()
}
