package web

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/websocket"
	"github.com/kapu/pitch-ai-go/internal/constants"
	"github.com/kapu/pitch-ai-go/internal/domain"
	"github.com/kapu/pitch-ai-go/internal/util"
	"go.uber.org/zap"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

// PitchGenerator is the orchestration the web layer depends on.
type PitchGenerator interface {
	Generate(ctx context.Context, idea string) (*domain.GenerationResult, error)
	Provider() string
}

// CircuitReporter is implemented by remote clients guarded by circuit breakers.
type CircuitReporter interface {
	CircuitStatus() map[string]util.CircuitBreakerStatus
}

type Options struct {
	Addr    string
	Circuit CircuitReporter
}

type Server struct {
	generator PitchGenerator
	circuit   CircuitReporter
	logger    *zap.Logger
	templates *template.Template
	validate  *validator.Validate
	upgrader  websocket.Upgrader
	http      *http.Server
}

func NewServer(generator PitchGenerator, opts Options, logger *zap.Logger) (*Server, error) {
	if generator == nil {
		return nil, fmt.Errorf("generator must not be nil")
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	tmpl, err := template.ParseFS(templateFS, "templates/*.tmpl")
	if err != nil {
		return nil, fmt.Errorf("parse web templates: %w", err)
	}

	addr := opts.Addr
	if addr == "" {
		addr = constants.ServerConfig.Addr
	}

	s := &Server{
		generator: generator,
		circuit:   opts.Circuit,
		logger:    logger,
		templates: tmpl,
		validate:  validator.New(),
		upgrader: websocket.Upgrader{
			ReadBufferSize:   4096,
			WriteBufferSize:  4096,
			HandshakeTimeout: 10 * time.Second,
		},
	}

	s.http = &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: constants.ServerConfig.ReadHeaderTimeout,
		ReadTimeout:       constants.ServerConfig.ReadTimeout,
		IdleTimeout:       constants.ServerConfig.IdleTimeout,
	}

	return s, nil
}

// Handler returns the routed handler.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", s.handleIndex)
	mux.HandleFunc("POST /generate", s.handleGenerateForm)
	mux.HandleFunc("POST /api/generate", s.handleGenerateAPI)
	mux.HandleFunc("GET /ws", s.handleWebSocket)
	mux.HandleFunc("GET /healthz", s.handleHealth)
	return mux
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("HTTP server listening", zap.String("addr", s.http.Addr))
		if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			return fmt.Errorf("http server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	s.logger.Info("Shutting down HTTP server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), constants.ServerConfig.ShutdownTimeout)
	defer cancel()

	if err := s.http.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http server shutdown: %w", err)
	}
	return nil
}
