package rest

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rocketscienceinc/gomoku-backend/internal/service"
)

type Server struct {
	logger *slog.Logger

	gameplay service.GamePlayService
	matches  service.MatchService
	users    service.UserService
	auth     service.AuthService
}

func New(logger *slog.Logger, gameplay service.GamePlayService, matches service.MatchService, users service.UserService, auth service.AuthService) *Server {
	return &Server{
		logger:   logger,
		gameplay: gameplay,
		matches:  matches,
		users:    users,
		auth:     auth,
	}
}

// Routes wires the API surface and returns the root handler.
func (that *Server) Routes() http.Handler {
	router := chi.NewRouter()

	router.Get("/ping", that.handlePing)

	router.Route("/api/user", func(router chi.Router) {
		router.Post("/register", that.handleRegister)
		router.Post("/login", that.handleLogin)

		router.Group(func(router chi.Router) {
			router.Use(that.requireUser)
			router.Get("/me", that.handleMe)
			router.Get("/me/games", that.handleMyGames)
			router.Get("/me/games/finished", that.handleMyFinishedGames)
			router.Get("/{id}", that.handleUserInfo)
		})
	})

	router.Route("/api/games", func(router chi.Router) {
		router.Use(that.requireUser)

		router.Post("/", that.handleCreateMatch)
		router.Get("/", that.handleListUnfinished)

		router.Route("/{id}", func(router chi.Router) {
			router.Get("/", that.handleMatchDetail)
			router.Post("/join", that.handleJoin)
			router.Post("/start", that.handleStart)
			router.Post("/leave", that.handleLeave)
			router.Post("/surrender", that.handleSurrender)
			router.Get("/moves", that.handleListMoves)
			router.Post("/moves", that.handleSubmitMove)
			router.Get("/moves/last", that.handleLastMove)
		})
	})

	return router
}

// Start - starts the HTTP server and shuts it down when ctx is canceled.
func (that *Server) Start(ctx context.Context, port string) error {
	srv := &http.Server{
		Addr:         ":" + port,
		Handler:      that.Routes(),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  30 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("failed to start server: %w", err)
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("failed to shut down server: %w", err)
		}

		return nil
	}
}

func (that *Server) handlePing(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte("pong")); err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
}
