package server

import (
	"context"
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/campushq/talent-match/internal/matching"
	"github.com/campushq/talent-match/internal/metrics"
	"github.com/campushq/talent-match/internal/ranking"
	"github.com/campushq/talent-match/internal/server/ratelimit"
	"github.com/campushq/talent-match/internal/taxonomy"
	"github.com/campushq/talent-match/internal/types"
	"github.com/campushq/talent-match/internal/vector"
)

// CandidateStore is the candidate-pool collaborator. Its failure is fatal to
// a search; all other collaborators degrade per candidate.
type CandidateStore interface {
	ListCandidates(ctx context.Context) ([]types.CandidateProfile, error)
	GetCandidatesByIDs(ctx context.Context, ids []string) ([]types.CandidateProfile, error)
}

// Config holds server configuration
type Config struct {
	Port            int
	SearchRateLimit int // search requests per client per minute
}

// Server represents the HTTP server
type Server struct {
	httpServer  *http.Server
	store       CandidateStore
	searcher    vector.Searcher // may be nil: semantic signal disabled
	ranker      *ranking.Ranker
	taxonomy    *taxonomy.Taxonomy
	matcher     *matching.Matcher
	validate    *validator.Validate
	rateLimiter *ratelimit.Limiter
	metrics     *metrics.Manager
	log         *zap.Logger
}

// New creates a new server instance. searcher may be nil when no embedding
// store is configured.
func New(
	cfg Config,
	store CandidateStore,
	searcher vector.Searcher,
	ranker *ranking.Ranker,
	tax *taxonomy.Taxonomy,
	log *zap.Logger,
) *Server {
	m, metricsHandler := metrics.New()

	s := &Server{
		store:       store,
		searcher:    searcher,
		ranker:      ranker,
		taxonomy:    tax,
		matcher:     matching.New(tax),
		validate:    validator.New(),
		rateLimiter: ratelimit.NewLimiter(ratelimit.Config{RequestsPerMinute: cfg.SearchRateLimit}),
		metrics:     m,
		log:         log,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("POST /search", s.withRateLimit(s.handleSearch))
	mux.HandleFunc("POST /match", s.handleMatch)
	mux.HandleFunc("GET /taxonomy/{skill}", s.handleTaxonomy)
	mux.HandleFunc("GET /health", s.handleHealth)
	mux.Handle("GET /metrics", metricsHandler)

	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      mux,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 120 * time.Second,
	}

	return s
}

// Start runs the server until SIGINT/SIGTERM, then shuts down gracefully.
func (s *Server) Start() error {
	listener, err := net.Listen("tcp", s.httpServer.Addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", s.httpServer.Addr, err)
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.Info("server listening", zap.String("addr", s.httpServer.Addr))
		if err := s.httpServer.Serve(listener); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return fmt.Errorf("server error: %w", err)
	case sig := <-sigCh:
		s.log.Info("shutting down", zap.String("signal", sig.String()))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	s.rateLimiter.Stop()
	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("failed to shut down cleanly: %w", err)
	}
	return nil
}

// Handler exposes the router for tests.
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// withRateLimit wraps a handler with per-client rate limiting keyed by
// remote IP.
func (s *Server) withRateLimit(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		clientID, _, err := net.SplitHostPort(r.RemoteAddr)
		if err != nil {
			clientID = r.RemoteAddr
		}
		if !s.rateLimiter.Allow(clientID) {
			s.errorResponse(w, http.StatusTooManyRequests, "rate limit exceeded")
			return
		}
		next(w, r)
	}
}

// handleHealth reports service liveness.
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleTaxonomy returns the related-skill set for one skill.
func (s *Server) handleTaxonomy(w http.ResponseWriter, r *http.Request) {
	skill := r.PathValue("skill")
	related := s.taxonomy.Related(skill)
	if related == nil {
		related = []string{}
	}
	s.jsonResponse(w, http.StatusOK, map[string]any{
		"skill":   taxonomy.Normalize(skill),
		"related": related,
	})
}

// jsonResponse writes a JSON response
func (s *Server) jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		s.log.Error("failed to encode JSON response", zap.Error(err))
	}
}

// errorResponse writes an error JSON response
func (s *Server) errorResponse(w http.ResponseWriter, status int, message string) {
	s.jsonResponse(w, status, map[string]string{"error": message})
}
