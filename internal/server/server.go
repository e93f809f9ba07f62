// Package server wires the router, middleware, and handlers, and owns
// the server lifecycle. It is the composition root: the database,
// services, and handlers are all assembled here, so main.go stays
// minimal and tests can stand up the same server against an in-memory
// database.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/mvasquez/newsboard/internal/config"
	"github.com/mvasquez/newsboard/internal/handler"
	"github.com/mvasquez/newsboard/internal/middleware"
	sqliteRepo "github.com/mvasquez/newsboard/internal/repository/sqlite"
	"github.com/mvasquez/newsboard/internal/service"
)

// Server holds the router and the resources it owns. The database
// handle is closed during shutdown so the WAL is flushed and the file
// lock released.
type Server struct {
	router *chi.Mux
	config config.Config
	logger *slog.Logger
	db     *sqliteRepo.DB
}

// New opens the database and assembles the full dependency chain:
// sqlite.DB → services → handlers → routes. Each layer receives only
// the interfaces it consumes.
func New(cfg config.Config, logger *slog.Logger) (*Server, error) {
	db, err := sqliteRepo.New(cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &Server{
		router: chi.NewRouter(),
		config: cfg,
		logger: logger,
		db:     db,
	}
	s.setupRoutes()

	return s, nil
}

func (s *Server) setupRoutes() {
	s.router.Use(chimiddleware.RequestID)
	s.router.Use(chimiddleware.RealIP)
	s.router.Use(chimiddleware.Recoverer)
	s.router.Use(middleware.Logger(s.logger))

	topicService := service.NewTopicService(s.db, s.logger)
	articleService := service.NewArticleService(s.db, s.db, s.logger)
	commentService := service.NewCommentService(s.db, s.db, s.logger)
	userService := service.NewUserService(s.db, s.logger)

	topicHandler := handler.NewTopicHandler(topicService, s.logger)
	articleHandler := handler.NewArticleHandler(articleService, s.logger)
	commentHandler := handler.NewCommentHandler(commentService, s.logger)
	userHandler := handler.NewUserHandler(userService, s.logger)

	s.router.Route("/api", func(r chi.Router) {
		r.Get("/", handler.HandleEndpoints)
		r.Get("/topics", topicHandler.HandleList)

		r.Route("/articles", func(r chi.Router) {
			r.Get("/", articleHandler.HandleList)
			r.Post("/", articleHandler.HandleCreate)
			r.Get("/{article_id}", articleHandler.HandleGetByID)
			r.Patch("/{article_id}", articleHandler.HandleUpdateVotes)
			r.Get("/{article_id}/comments", commentHandler.HandleListByArticle)
			r.Post("/{article_id}/comments", commentHandler.HandleCreate)
		})

		r.Route("/comments", func(r chi.Router) {
			r.Patch("/{comment_id}", commentHandler.HandleUpdateVotes)
			r.Delete("/{comment_id}", commentHandler.HandleDelete)
		})

		r.Get("/users", userHandler.HandleList)
		r.Get("/users/{username}", userHandler.HandleGetByUsername)
	})

	// Any unmatched route gets the JSON fallback, not chi's plain 404.
	s.router.NotFound(handler.RouteNotFound)
	s.router.MethodNotAllowed(handler.RouteNotFound)
}

// ServeHTTP makes the server usable directly with httptest.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// Start runs the HTTP server until SIGINT/SIGTERM, then shuts down
// gracefully: stop accepting connections, give in-flight requests 30
// seconds, close the database.
func (s *Server) Start() error {
	defer s.db.Close()

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", s.config.Port),
		Handler:      s.router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	serverErrors := make(chan error, 1)

	go func() {
		s.logger.Info("server starting",
			slog.Int("port", s.config.Port),
			slog.String("database", s.config.DBPath),
		)
		serverErrors <- srv.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		if err != http.ErrServerClosed {
			return fmt.Errorf("server error: %w", err)
		}

	case sig := <-quit:
		s.logger.Info("shutdown signal received", slog.String("signal", sig.String()))

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := srv.Shutdown(ctx); err != nil {
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}
		s.logger.Info("server stopped gracefully")
	}

	return nil
}
