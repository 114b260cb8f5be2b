package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/agbru/numlist/internal/digitlist"
	"github.com/agbru/numlist/internal/logging"
	"github.com/agbru/numlist/internal/metrics"
	"github.com/agbru/numlist/internal/numeric"
)

const (
	DefaultReadTimeout     = 5 * time.Second
	DefaultWriteTimeout    = 10 * time.Second
	DefaultShutdownTimeout = 5 * time.Second
)

// Config holds the listener settings.
type Config struct {
	Addr            string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
	Security        SecurityConfig
}

// DefaultConfig returns the default settings for addr.
func DefaultConfig(addr string) Config {
	return Config{
		Addr:            addr,
		ReadTimeout:     DefaultReadTimeout,
		WriteTimeout:    DefaultWriteTimeout,
		ShutdownTimeout: DefaultShutdownTimeout,
		Security:        DefaultSecurityConfig(),
	}
}

// Server is the HTTP front end of a numeric adapter.
type Server struct {
	config     Config
	adapter    *numeric.Adapter
	metrics    *Metrics
	logger     logging.Logger
	httpServer *http.Server
}

// ListResponse describes a digit list.
type ListResponse struct {
	Digits  string `json:"digits"`
	Base    int    `json:"base"`
	Decimal string `json:"decimal"`
	Swaps   *int   `json:"swaps,omitempty"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// New builds a server; its HTTP metrics are registered on c.
func New(config Config, a *numeric.Adapter, c *metrics.Collector, logger logging.Logger) (*Server, error) {
	if logger == nil {
		logger = logging.NewNopLogger()
	}
	m, err := NewMetrics(c)
	if err != nil {
		return nil, fmt.Errorf("registering HTTP metrics: %w", err)
	}
	s := &Server{config: config, adapter: a, metrics: m, logger: logger}
	s.httpServer = &http.Server{
		Addr:         config.Addr,
		Handler:      s.Handler(),
		ReadTimeout:  config.ReadTimeout,
		WriteTimeout: config.WriteTimeout,
	}
	return s, nil
}

// Handler returns the routed handler with every middleware applied.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	routes := map[string]http.HandlerFunc{
		"/health":  s.handleHealth,
		"/convert": s.handleConvert,
		"/or":      s.handleOr,
		"/sort":    s.handleSort,
		"/metrics": s.handleMetrics,
	}
	for path, h := range routes {
		mux.HandleFunc(path, SecurityMiddleware(s.config.Security, s.metricsMiddleware(h)))
	}
	return mux
}

// Start serves until ctx is done, then shuts down gracefully.
func (s *Server) Start(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.config.Addr)
	if err != nil {
		return err
	}
	return s.Serve(ctx, ln)
}

// Serve is Start on an existing listener.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	s.logger.Info("server listening", logging.String("addr", ln.Addr().String()))

	errCh := make(chan error, 1)
	go func() { errCh <- s.httpServer.Serve(ln) }()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.config.ShutdownTimeout)
		defer cancel()
		s.logger.Info("server shutting down")
		if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
			return err
		}
		<-errCh
		return nil
	}
}

func (s *Server) metricsMiddleware(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s.metrics.IncrementActiveRequests()
		defer s.metrics.DecrementActiveRequests()

		rec := &statusRecorder{ResponseWriter: w, code: http.StatusOK}
		next(rec, r)
		s.metrics.ObserveRequest(r.URL.Path, rec.code)
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if !s.allowGet(w, r) {
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleConvert(w http.ResponseWriter, r *http.Request) {
	if !s.allowGet(w, r) {
		return
	}
	l, ok := s.decimalParam(w, r, "value")
	if !ok {
		return
	}
	base := s.adapter.Alternate()
	if raw := r.URL.Query().Get("base"); raw != "" {
		b, err := strconv.Atoi(raw)
		if err != nil || !numeric.ValidBase(b) {
			s.writeError(w, http.StatusBadRequest,
				fmt.Sprintf("base must be between %d and %d", numeric.MinBase, numeric.MaxBase))
			return
		}
		base = b
	}
	s.writeJSON(w, http.StatusOK, s.listResponse(s.adapter.ConvertBase(l, base)))
}

func (s *Server) handleOr(w http.ResponseWriter, r *http.Request) {
	if !s.allowGet(w, r) {
		return
	}
	x, ok := s.decimalParam(w, r, "a")
	if !ok {
		return
	}
	y, ok := s.decimalParam(w, r, "b")
	if !ok {
		return
	}
	s.writeJSON(w, http.StatusOK, s.listResponse(s.adapter.BitwiseOr(x, y)))
}

func (s *Server) handleSort(w http.ResponseWriter, r *http.Request) {
	if !s.allowGet(w, r) {
		return
	}
	l, ok := s.decimalParam(w, r, "value")
	if !ok {
		return
	}
	var swaps int
	switch r.URL.Query().Get("order") {
	case "", "asc":
		swaps = l.SortAscending()
	case "desc":
		swaps = l.SortDescending()
	default:
		s.writeError(w, http.StatusBadRequest, "order must be asc or desc")
		return
	}
	resp := s.listResponse(l)
	resp.Swaps = &swaps
	s.writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleMetrics(w http.ResponseWriter, r *http.Request) {
	if !s.allowGet(w, r) {
		return
	}
	s.metrics.WritePrometheus(w, r)
}

func (s *Server) allowGet(w http.ResponseWriter, r *http.Request) bool {
	if r.Method == http.MethodGet {
		return true
	}
	w.Header().Set("Allow", http.MethodGet)
	s.writeError(w, http.StatusMethodNotAllowed, "method not allowed")
	return false
}

// decimalParam parses the named query parameter as a decimal value in the
// primary base, writing a 400 response when it is missing or malformed.
func (s *Server) decimalParam(w http.ResponseWriter, r *http.Request, name string) (*digitlist.List, bool) {
	raw := r.URL.Query().Get(name)
	if limit := s.config.Security.MaxValueDigits; limit > 0 && len(raw) > limit {
		s.writeError(w, http.StatusBadRequest, fmt.Sprintf("%s exceeds %d digits", name, limit))
		return nil, false
	}
	l := s.adapter.ParseDecimal(raw)
	if l.IsEmpty() {
		s.writeError(w, http.StatusBadRequest, fmt.Sprintf("%s must be a non-negative decimal integer", name))
		return nil, false
	}
	return l, true
}

func (s *Server) listResponse(l *digitlist.List) ListResponse {
	return ListResponse{
		Digits:  numeric.Display(l),
		Base:    l.Base(),
		Decimal: s.adapter.ToDecimalString(l),
	}
}

func (s *Server) writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("encoding response", err)
	}
}

func (s *Server) writeError(w http.ResponseWriter, code int, msg string) {
	s.logger.Debug("request rejected", logging.Int("status", code), logging.String("reason", msg))
	s.writeJSON(w, code, errorResponse{Error: msg})
}
