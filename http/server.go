// Package http provides the JSON web API for fundfaq and a client that
// implements the fundfaq service interfaces against it.
package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/fundfaq"
	"github.com/gorilla/mux"
	"github.com/rs/cors"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"
)

// DefaultShutdownTimeout bounds how long Serve waits for in-flight
// requests after its context is cancelled.
const DefaultShutdownTimeout = 5 * time.Second

// Error messages returned in JSON error bodies.
const (
	msgNoQuery     = "No query provided"
	msgInvalidID   = "Invalid FAQ id"
	msgRateLimited = "Rate limit exceeded"
	msgNotFound    = "Not found"
)

// Server serves the FAQ catalog over HTTP.
type Server struct {
	faqs     fundfaq.FAQService
	searcher fundfaq.Searcher
	logger   *slog.Logger

	allowedOrigins  []string
	limiter         *rate.Limiter
	shutdownTimeout time.Duration

	router  *mux.Router
	handler http.Handler
}

// ServerOption configures a Server.
type ServerOption func(*Server)

// WithLogger sets the logger used for access logs.
// Defaults to slog.Default().
func WithLogger(logger *slog.Logger) ServerOption {
	return func(s *Server) {
		s.logger = logger
	}
}

// WithAllowedOrigins sets the origins allowed by CORS. Defaults to "*".
func WithAllowedOrigins(origins ...string) ServerOption {
	return func(s *Server) {
		s.allowedOrigins = origins
	}
}

// WithRateLimit limits the server to rps requests per second with the
// given burst. A non-positive rps disables limiting.
func WithRateLimit(rps float64, burst int) ServerOption {
	return func(s *Server) {
		if rps <= 0 {
			s.limiter = nil
			return
		}
		if burst < 1 {
			burst = 1
		}
		s.limiter = rate.NewLimiter(rate.Limit(rps), burst)
	}
}

// WithShutdownTimeout sets the graceful shutdown timeout.
// Defaults to DefaultShutdownTimeout.
func WithShutdownTimeout(d time.Duration) ServerOption {
	return func(s *Server) {
		s.shutdownTimeout = d
	}
}

// NewServer creates a Server backed by the given catalog and searcher.
func NewServer(faqs fundfaq.FAQService, searcher fundfaq.Searcher, opts ...ServerOption) *Server {
	s := &Server{
		faqs:            faqs,
		searcher:        searcher,
		logger:          slog.Default(),
		allowedOrigins:  []string{"*"},
		shutdownTimeout: DefaultShutdownTimeout,
		router:          mux.NewRouter(),
	}
	for _, opt := range opts {
		opt(s)
	}

	s.registerRoutes()

	c := cors.New(cors.Options{
		AllowedOrigins: s.allowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodOptions},
		AllowedHeaders: []string{"*"},
		ExposedHeaders: []string{"ETag", requestIDHeader},
	})

	var h http.Handler = s.router
	h = s.rateLimit(h)
	h = c.Handler(h)
	h = s.accessLog(h)
	h = requestID(h)
	s.handler = h

	return s
}

func (s *Server) registerRoutes() {
	// Older web clients call the API under /api.
	for _, r := range []*mux.Router{s.router, s.router.PathPrefix("/api").Subrouter()} {
		r.HandleFunc("/faqs", s.handleFAQs).Methods(http.MethodGet)
		r.HandleFunc("/search", s.handleSearch).Methods(http.MethodGet)
		r.HandleFunc("/faq/{id}", s.handleFAQ).Methods(http.MethodGet)
	}
	s.router.HandleFunc("/healthz", s.handleHealth).Methods(http.MethodGet)
	s.router.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusNotFound, errorResponse{Error: msgNotFound})
	})
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.handler.ServeHTTP(w, r)
}

// ListenAndServe listens on addr and serves until ctx is cancelled.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", addr, err)
	}
	return s.Serve(ctx, ln)
}

// Serve accepts connections on ln until ctx is cancelled, then shuts down
// gracefully. It returns nil after a clean shutdown.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           s.handler,
		ReadHeaderTimeout: 5 * time.Second,
	}

	s.logger.Info("server listening", "addr", ln.Addr().String())

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
		defer cancel()
		s.logger.Info("server shutting down")
		return srv.Shutdown(shutdownCtx)
	})
	return g.Wait()
}

func (s *Server) handleFAQs(w http.ResponseWriter, r *http.Request) {
	summaries, err := s.faqs.FindFAQSummaries(r.Context())
	if err != nil {
		s.writeInternalError(w, r, err)
		return
	}

	body, err := json.Marshal(summaries)
	if err != nil {
		s.writeInternalError(w, r, err)
		return
	}

	etag := fmt.Sprintf(`"%016x"`, xxhash.Sum64(body))
	w.Header().Set("ETag", etag)
	if r.Header.Get("If-None-Match") == etag {
		w.WriteHeader(http.StatusNotModified)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(body)
}

func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	faq, err := s.searcher.Search(r.Context(), r.URL.Query().Get("q"))
	switch fundfaq.ErrorCode(err) {
	case "":
		writeJSON(w, http.StatusOK, newFAQResponse(faq))
	case fundfaq.ENOQUERY:
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: msgNoQuery})
	case fundfaq.ENOTFOUND:
		writeJSON(w, http.StatusOK, faqResponse{Found: false})
	default:
		s.writeInternalError(w, r, err)
	}
}

func (s *Server) handleFAQ(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: msgInvalidID})
		return
	}

	faq, err := s.faqs.FindFAQByID(r.Context(), id)
	switch fundfaq.ErrorCode(err) {
	case "":
		writeJSON(w, http.StatusOK, newFAQResponse(faq))
	case fundfaq.ENOTFOUND:
		writeJSON(w, http.StatusNotFound, faqResponse{Found: false})
	case fundfaq.EINVALID:
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: msgInvalidID})
	default:
		s.writeInternalError(w, r, err)
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) writeInternalError(w http.ResponseWriter, r *http.Request, err error) {
	s.logger.Error("request failed",
		"method", r.Method,
		"path", r.URL.Path,
		"request_id", RequestIDFromContext(r.Context()),
		"err", err,
	)
	writeJSON(w, http.StatusInternalServerError, errorResponse{Error: fundfaq.ErrorMessage(err)})
}

// faqResponse is the wire form of a search or lookup result.
type faqResponse struct {
	Found      bool   `json:"found"`
	Question   string `json:"question,omitempty"`
	Answer     string `json:"answer,omitempty"`
	Source     string `json:"source,omitempty"`
	SourceName string `json:"source_name,omitempty"`
}

func newFAQResponse(faq *fundfaq.FAQ) faqResponse {
	return faqResponse{
		Found:      true,
		Question:   faq.Question,
		Answer:     faq.Answer,
		Source:     faq.Source,
		SourceName: faq.SourceName,
	}
}

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
