// Package scoreboard serves a read-only JSON view of a running game
package scoreboard

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/lixenwraith/duck-goose/component"
	"github.com/lixenwraith/duck-goose/core"
	"github.com/lixenwraith/duck-goose/engine"
	"github.com/lixenwraith/duck-goose/status"
)

const (
	requestTimeout  = 5 * time.Second
	shutdownTimeout = 2 * time.Second
)

// Source is the game surface the scoreboard reads
type Source interface {
	Snapshot() engine.Snapshot
	Status() *status.Registry
}

// ScoresResponse is the body of GET /scores
type ScoresResponse struct {
	Scores []component.GameScore `json:"scores"`
}

// StatusResponse is the body of GET /status
type StatusResponse struct {
	Uptime  string         `json:"uptime"`
	Metrics map[string]any `json:"metrics"`
}

// Server handles HTTP requests
type Server struct {
	src       Source
	startTime time.Time
	httpSrv   *http.Server
}

// NewServer creates a scoreboard over src
func NewServer(src Source) *Server {
	return &Server{src: src, startTime: time.Now()}
}

// Routes sets up the HTTP routes
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()

	// Default middleware.Logger writes to stdout, which the terminal renderer owns
	r.Use(middleware.RequestLogger(&middleware.DefaultLogFormatter{Logger: log.Default(), NoColor: true}))
	r.Use(middleware.Recoverer)
	r.Use(middleware.Heartbeat("/health"))
	r.Use(middleware.Timeout(requestTimeout))

	r.Get("/scores", s.handleScores)
	r.Get("/state", s.handleState)
	r.Get("/status", s.handleStatus)

	return r
}

// Start listens on addr in the background
func (s *Server) Start(addr string) {
	s.httpSrv = &http.Server{
		Addr:              addr,
		Handler:           s.Routes(),
		ReadHeaderTimeout: requestTimeout,
	}
	srv := s.httpSrv
	core.Go(func() {
		log.Printf("scoreboard listening on %s", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Printf("scoreboard stopped: %v", err)
		}
	})
}

// Stop shuts the listener down, waiting briefly for in-flight requests
func (s *Server) Stop() error {
	if s.httpSrv == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return s.httpSrv.Shutdown(ctx)
}

func (s *Server) handleScores(w http.ResponseWriter, r *http.Request) {
	snap := s.src.Snapshot()
	scores := snap.History
	if scores == nil {
		scores = []component.GameScore{}
	}
	writeJSON(w, http.StatusOK, ScoresResponse{Scores: scores})
}

func (s *Server) handleState(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.src.Snapshot())
}

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, StatusResponse{
		Uptime:  time.Since(s.startTime).Truncate(time.Second).String(),
		Metrics: s.src.Status().Snapshot(),
	})
}

// writeJSON writes a JSON response with proper headers
func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("scoreboard: encode response: %v", err)
	}
}
