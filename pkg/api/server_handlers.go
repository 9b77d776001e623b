package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/gorilla/websocket"

	"github.com/SirJonasM/fpga-router/pkg/fasm"
	"github.com/SirJonasM/fpga-router/pkg/logging"
	"github.com/SirJonasM/fpga-router/pkg/plan"
	"github.com/SirJonasM/fpga-router/pkg/router"
)

// handleRoute runs the negotiated-congestion loop over the submitted plan
// against the server's graph, serializing with any other in-flight /route
// call (§5: one invocation owns the graph at a time).
func (s *Server) handleRoute(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		s.respondError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req RouteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	cfg := s.cfg
	if req.Config != nil {
		cfg = *req.Config
	}

	for _, sig := range req.Plan {
		if err := plan.Validate(s.graph, sig); err != nil {
			s.respondError(w, http.StatusBadRequest, err.Error())
			return
		}
	}

	cancel := make(chan struct{})
	ctx, stop := context.WithCancel(r.Context())
	defer stop()
	go func() {
		<-ctx.Done()
		close(cancel)
	}()

	s.mu.Lock()
	defer s.mu.Unlock()

	logger := router.MultiLogger{
		router.StructuredLogger{Logger: logging.NewDefaultLogger()},
		router.MetricsLogger{Registry: s.metricsRegistry},
		s.broadcaster,
	}

	start := time.Now()
	outcome, reporter, err := router.Route(s.graph, req.Plan, cfg, logger, cancel)
	if err != nil {
		s.respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	s.metricsRegistry.RecordOutcome(outcome.Kind.String(), time.Since(start))

	s.lastPlan = req.Plan
	s.lastOutcome = outcome
	s.lastRows = reporter.Rows()

	s.exportArtifacts(r.Context())

	s.respondJSON(w, http.StatusOK, RouteResponse{
		Outcome:    outcome.Kind.String(),
		Iterations: outcome.Iterations,
		Conflicts:  outcome.Conflicts,
		Rows:       s.lastRows,
		Plan:       s.lastPlan,
	})
}

// exportArtifacts uploads the FASM rendering and per-iteration metrics of
// the most recently completed run when a Server has an Uploader or history
// Store configured; both are optional (§11).
func (s *Server) exportArtifacts(ctx context.Context) {
	if s.uploader != nil {
		prefix := time.Now().UTC().Format("20060102T150405Z")
		if err := s.uploader.PutFASM(ctx, prefix, fasm.Render(s.lastPlan)); err != nil {
			logging.NewDefaultLogger().Warn("S3 FASM upload failed", logging.String("error", err.Error()))
		}
		if err := s.uploader.PutMetrics(ctx, prefix, s.lastRows); err != nil {
			logging.NewDefaultLogger().Warn("S3 metrics upload failed", logging.String("error", err.Error()))
		}
	}
	if s.history != nil {
		runID := time.Now().UTC().Format("20060102T150405.000000000Z")
		if err := s.history.SaveRun(ctx, runID, s.lastRows); err != nil {
			logging.NewDefaultLogger().Warn("history save failed", logging.String("error", err.Error()))
		}
	}
}

// handlePlan returns the most recently routed plan, with each signal's last
// committed tree.
func (s *Server) handlePlan(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.respondError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	s.mu.Lock()
	p := s.lastPlan
	s.mu.Unlock()

	s.respondJSON(w, http.StatusOK, PlanResponse{Plan: p})
}

// checkStreamOrigin rejects cross-site websocket upgrades the same way
// cors.go rejects cross-origin HTTP requests: same-origin is always
// allowed, a missing Origin header (non-browser clients) is allowed, and
// anything else must match the server's configured CORS allowlist.
func (s *Server) checkStreamOrigin(r *http.Request) bool {
	origin := r.Header.Get("Origin")
	if origin == "" {
		return true
	}
	u, err := url.Parse(origin)
	if err != nil {
		return false
	}
	if strings.EqualFold(u.Host, r.Host) {
		return true
	}
	if s.corsConfig == nil {
		return false
	}
	for _, allowed := range s.corsConfig.AllowedOrigins {
		if allowed == "*" || allowed == origin {
			return true
		}
	}
	return false
}

// handleStream upgrades to a websocket connection and pushes every Row
// emitted by subsequent /route invocations until the client disconnects,
// for dashboards other than the TUI (§11).
func (s *Server) handleStream(w http.ResponseWriter, r *http.Request) {
	upgrader := websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin:     s.checkStreamOrigin,
	}
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}
	defer conn.Close()

	rows, unsubscribe := s.broadcaster.Subscribe()
	defer unsubscribe()

	for {
		select {
		case row, ok := <-rows:
			if !ok {
				return
			}
			if err := conn.WriteJSON(row); err != nil {
				return
			}
		case <-r.Context().Done():
			return
		}
	}
}

// graphqlHandler wraps the conversion of an io.Reader-based GraphQL request
// into a response; implemented in pkg/api/graphql.
func (s *Server) graphqlHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			s.respondError(w, http.StatusMethodNotAllowed, "method not allowed")
			return
		}
		body, err := io.ReadAll(r.Body)
		if err != nil {
			s.respondError(w, http.StatusBadRequest, "failed to read request body")
			return
		}
		r.Body = io.NopCloser(bytes.NewReader(body))
		s.serveGraphQL(w, r)
	})
}
