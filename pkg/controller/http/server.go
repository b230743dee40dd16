package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/m-mizutani/goerr/v2"

	"github.com/inventry-dev/inventry/pkg/usecase"
)

// Server exposes the chat API over HTTP. Every /api/chat route requires a
// verified identity; the verifier is injected via WithAuthn.
type Server struct {
	router *chi.Mux
	uc     *usecase.UseCases
	authn  usecase.Authn
}

type Options func(*Server)

// WithAuthn sets the identity verifier used by the auth middleware
func WithAuthn(authn usecase.Authn) Options {
	return func(s *Server) {
		s.authn = authn
	}
}

func New(uc *usecase.UseCases, opts ...Options) (*Server, error) {
	if uc == nil {
		return nil, goerr.New("use cases are required")
	}

	s := &Server{
		router: chi.NewRouter(),
		uc:     uc,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.authn == nil {
		return nil, goerr.New("authn is required")
	}

	r := s.router

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(accessLogger)
	r.Use(middleware.Recoverer)

	r.Route("/api", func(r chi.Router) {
		r.Use(authMiddleware(s.authn))

		r.Get("/auth/me", s.handleMe)

		r.Route("/chat", func(r chi.Router) {
			r.Post("/create", s.handleCreate)
			r.Get("/get", s.handleList)
			r.Post("/rename", s.handleRename)
			r.Post("/delete", s.handleDelete)
			r.Post("/ai", s.handleTurn)
		})
	})

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})

	return s, nil
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}
