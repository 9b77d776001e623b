package api

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Start builds the routing table, applies the middleware chain, and serves
// HTTP on addr until the process is terminated.
func (s *Server) Start(addr string) error {
	mux := http.NewServeMux()

	mux.HandleFunc("/health", s.handleHealth)
	mux.Handle("/metrics", promhttp.HandlerFor(s.metricsRegistry.GetPrometheusRegistry(), promhttp.HandlerOpts{}))
	mux.HandleFunc("/route", s.requireAuth(s.handleRoute))
	mux.HandleFunc("/plan", s.requireAuth(s.handlePlan))
	mux.HandleFunc("/stream", s.requireAuth(s.handleStream))
	mux.Handle("/graphql", s.graphqlHandler())

	handler := chain(mux,
		s.panicRecoveryMiddleware,
		s.requestIDMiddleware,
		s.loggingMiddleware,
		s.metricsMiddleware,
		s.securityHeadersMiddleware,
		s.corsMiddleware,
		s.bodySizeLimitMiddleware,
		s.rateLimitMiddleware,
	)

	log.Printf("router API listening on %s", addr)
	log.Printf("  GET  %s/health", addr)
	log.Printf("  GET  %s/metrics", addr)
	log.Printf("  POST %s/route", addr)
	log.Printf("  GET  %s/plan", addr)
	log.Printf("  GET  %s/stream", addr)
	log.Printf("  POST %s/graphql", addr)

	server := &http.Server{
		Addr:         addr,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 0, // /stream holds the connection open indefinitely
		IdleTimeout:  60 * time.Second,
	}
	return server.ListenAndServe()
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.respondJSON(w, http.StatusOK, HealthResponse{
		Status:  "healthy",
		Version: s.version,
		Started: s.startTime,
		Uptime:  fmt.Sprint(time.Since(s.startTime)),
	})
}
