package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/AlexTLDR/valentine/internal/config"
	"github.com/AlexTLDR/valentine/internal/database"
	"github.com/AlexTLDR/valentine/internal/server/handlers"
	"github.com/gorilla/sessions"
	"go.uber.org/zap"
)

const shutdownTimeout = 10 * time.Second

type Server struct {
	config       *config.Config
	db           *database.DB
	logger       *zap.Logger
	sessionStore *sessions.CookieStore
	router       *http.ServeMux
	clock        func() time.Time
}

// Option customises a Server.
type Option func(*Server)

// WithClock replaces time.Now, mainly for tests.
func WithClock(clock func() time.Time) Option {
	return func(s *Server) {
		s.clock = clock
	}
}

// GetDB implements handlers.Server interface
func (s *Server) GetDB() *database.DB {
	return s.db
}

// GetConfig implements handlers.Server interface
func (s *Server) GetConfig() *config.Config {
	return s.config
}

// GetLogger implements handlers.Server interface
func (s *Server) GetLogger() *zap.Logger {
	return s.logger
}

// Now implements handlers.Server interface
func (s *Server) Now() time.Time {
	return s.clock()
}

func New(cfg *config.Config, db *database.DB, logger *zap.Logger, opts ...Option) *Server {
	s := &Server{
		config:       cfg,
		db:           db,
		logger:       logger,
		sessionStore: newSessionStore(cfg),
		router:       http.NewServeMux(),
		clock:        time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}

	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	// Static files
	fs := http.FileServer(http.Dir(s.config.StaticDir))
	s.router.Handle("GET /static/", http.StripPrefix("/static/", fs))

	// Pages
	s.router.HandleFunc("GET /{$}", handlers.HandleHome(s))
	s.router.HandleFunc("GET /love-notes", handlers.HandleLoveNotesPage(s))
	s.router.HandleFunc("GET /memories", handlers.HandleMemoriesPage(s))
	s.router.HandleFunc("GET /secret-note", handlers.HandleSecretNotePage(s))
	s.router.HandleFunc("GET /countdown", handlers.HandleCountdown(s))

	// API
	s.router.HandleFunc("POST /api/valentine-response", handlers.HandleValentineResponse(s))
	s.router.HandleFunc("GET /api/love-notes", handlers.HandleListLoveNotes(s))
	s.router.HandleFunc("POST /api/love-notes", handlers.HandleCreateLoveNote(s))
	s.router.HandleFunc("GET /api/memories", handlers.HandleListMemories(s))
	s.router.HandleFunc("POST /api/memories", handlers.HandleCreateMemory(s))
	s.router.HandleFunc("POST /api/check-secret", handlers.HandleCheckSecret(s))
	s.router.HandleFunc("GET /api/stats", handlers.HandleStats(s))

	// Everything else
	s.router.HandleFunc("/", handlers.HandleNotFound(s))
}

// Handler returns the router wrapped in the server's middleware.
func (s *Server) Handler() http.Handler {
	return s.logRequests(s.recoverPanics(s.router))
}

// Start serves on addr until ctx is cancelled, then shuts down gracefully.
func (s *Server) Start(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("starting server", zap.String("addr", addr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	s.logger.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shut down server: %w", err)
	}
	return nil
}
