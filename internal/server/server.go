// Package server serves the Playfair web form and JSON API.
//
// Routes:
//
//	GET  /                    the form with an empty result
//	POST /                    the form with the result for text, key and action
//	POST /api/v1/encrypt      JSON {"text", "key"} → {"result", "grid"}
//	POST /api/v1/decrypt      JSON {"text", "key"} → {"result", "grid"}
//	POST /api/v1/grid         JSON {"key"} → {"grid"}
//	GET  /healthz             "ok"
//	GET  /version             build information
//
// All cipher work is delegated to a [pipeline.Runner]. Nothing a client sends
// is stored or logged.
package server

import (
	"context"
	"embed"
	"errors"
	"html/template"
	"net"
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"golang.org/x/sync/errgroup"

	"github.com/matzehuels/playfair/pkg/config"
	"github.com/matzehuels/playfair/pkg/pipeline"
)

//go:embed templates/*.html
var templateFS embed.FS

// Server is the HTTP front end.
type Server struct {
	cfg    config.ServerConfig
	runner *pipeline.Runner
	logger *log.Logger
	page   *template.Template
	router chi.Router
}

// New creates a server. A nil runner or logger is replaced by a default.
func New(cfg config.ServerConfig, runner *pipeline.Runner, logger *log.Logger) (*Server, error) {
	if logger == nil {
		logger = log.Default()
	}
	if runner == nil {
		runner = pipeline.NewRunner(logger)
	}

	page, err := template.ParseFS(templateFS, "templates/index.html")
	if err != nil {
		return nil, err
	}

	s := &Server{
		cfg:    cfg,
		runner: runner,
		logger: logger,
		page:   page,
	}
	s.router = s.routes()
	return s, nil
}

// routes builds the chi router.
func (s *Server) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(requestID)
	r.Use(s.requestLogger)
	r.Use(middleware.Recoverer)
	if s.cfg.MaxBodyBytes > 0 {
		r.Use(middleware.RequestSize(s.cfg.MaxBodyBytes))
	}

	r.Get("/", s.handleIndex)
	r.Post("/", s.handleForm)

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/grid", s.handleGrid)
		r.Post("/{action}", s.handleTransform)
	})

	r.Get("/healthz", s.handleHealth)
	r.Get("/version", s.handleVersion)

	return r
}

// Handler returns the root HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Run listens on the configured address and serves until ctx is cancelled.
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.cfg.Addr)
	if err != nil {
		return err
	}
	return s.Serve(ctx, ln)
}

// Serve serves on ln until ctx is cancelled, then shuts down gracefully
// within the configured shutdown timeout.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:      s.router,
		ReadTimeout:  s.cfg.ReadTimeout.Duration,
		WriteTimeout: s.cfg.WriteTimeout.Duration,
		ErrorLog:     s.logger.StandardLog(log.StandardLogOptions{ForceLevel: log.ErrorLevel}),
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		s.logger.Info("listening", "addr", ln.Addr().String())
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout.Duration)
		defer cancel()
		s.logger.Info("shutting down")
		return srv.Shutdown(shutdownCtx)
	})
	return g.Wait()
}
