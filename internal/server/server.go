package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/julienschmidt/httprouter"

	"calcpad/internal/domain"
)

// Server serves the calculator over HTTP.
type Server struct {
	cfg    Config
	eval   domain.Evaluator
	keypad domain.KeypadService
	log    *slog.Logger
	router *httprouter.Router
}

// New builds a server and its routes. A nil logger discards output.
func New(cfg Config, eval domain.Evaluator, keypad domain.KeypadService, log *slog.Logger) *Server {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	if cfg.MaxBodyBytes <= 0 {
		cfg.MaxBodyBytes = 4096
	}
	s := &Server{
		cfg:    cfg,
		eval:   eval,
		keypad: keypad,
		log:    log,
		router: httprouter.New(),
	}
	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	s.router.POST("/v1/evaluate", s.handleEvaluate)
	s.router.POST("/v1/press", s.handlePress)
	s.router.GET("/healthz", s.handleHealth)

	s.router.NotFound = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, "not found")
	})
	s.router.MethodNotAllowed = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
	})
}

// Handler returns the routed handler wrapped in the access log.
func (s *Server) Handler() http.Handler { return accessLog(s.log, s.router) }

// Serve accepts connections on ln until ctx is cancelled, then shuts down
// gracefully within Config.ShutdownTimeout.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() { errCh <- srv.Serve(ln) }()
	s.log.Info("calcd listening", "addr", ln.Addr().String())

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	timeout := s.cfg.ShutdownTimeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	s.log.Info("calcd shutting down")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

// ListenAndServe listens on Config.Addr and calls Serve.
func (s *Server) ListenAndServe(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.cfg.Addr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", s.cfg.Addr, err)
	}
	return s.Serve(ctx, ln)
}

func (s *Server) handleEvaluate(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var req domain.EvaluateRequest
	if !s.decode(w, r, &req) {
		return
	}
	result, err := s.eval.Evaluate(req.Expression)
	if err != nil {
		if kind, ok := domain.KindOf(err); ok {
			s.log.Debug("evaluation rejected", "expr", req.Expression, "kind", kind.String())
			writeJSON(w, http.StatusUnprocessableEntity, domain.ErrorResponse{
				Error: domain.ErrorMarker.String(),
				Kind:  kind.String(),
			})
			return
		}
		s.log.Error("evaluate", "err", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(w, http.StatusOK, domain.EvaluateResponse{Result: result})
}

func (s *Server) handlePress(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var req domain.PressRequest
	if !s.decode(w, r, &req) {
		return
	}
	switch {
	case req.Button == nil && req.Key == "":
		writeError(w, http.StatusBadRequest, "button or key required")
		return
	case req.Button != nil && req.Key != "":
		writeError(w, http.StatusBadRequest, "only one of button or key may be set")
		return
	}
	buf, handled := s.keypad.Dispatch(req.Buffer, req.Input())
	writeJSON(w, http.StatusOK, domain.PressResponse{Buffer: buf, Handled: handled})
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request, _ httprouter.Params) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// decode reads a size-limited JSON body into v, writing the error response
// itself when it fails.
func (s *Server) decode(w http.ResponseWriter, r *http.Request, v any) bool {
	defer r.Body.Close()
	body := http.MaxBytesReader(w, r.Body, s.cfg.MaxBodyBytes)
	if err := json.NewDecoder(body).Decode(v); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(w, http.StatusRequestEntityTooLarge, "request body too large")
			return false
		}
		writeError(w, http.StatusBadRequest, "invalid JSON: "+err.Error())
		return false
	}
	return true
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, domain.ErrorResponse{Error: msg})
}
