package api

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	apigraphql "github.com/SirJonasM/fpga-router/pkg/api/graphql"
	"github.com/SirJonasM/fpga-router/pkg/api/middleware"
	"github.com/SirJonasM/fpga-router/pkg/auth"
	"github.com/SirJonasM/fpga-router/pkg/graph"
	"github.com/SirJonasM/fpga-router/pkg/metrics"
	"github.com/SirJonasM/fpga-router/pkg/router"
)

// NewServer constructs a Server over g, routing with cfg by default,
// authenticating callers against jwtManager and apiKeyChecker (either may
// be nil to disable that scheme), and recording metrics into registry.
func NewServer(g *graph.Graph, cfg router.Config, jwtManager *auth.JWTManager, apiKeyChecker *auth.StaticAPIKeyChecker, registry *metrics.Registry) *Server {
	if registry == nil {
		registry = metrics.DefaultRegistry()
	}

	s := &Server{
		graph:           g,
		cfg:             cfg,
		jwtManager:      jwtManager,
		apiKeyChecker:   apiKeyChecker,
		metricsRegistry: registry,
		broadcaster:     NewBroadcaster(),
		startTime:       time.Now(),
		version:         "1.0.0",
	}

	schema, err := apigraphql.GenerateSchema(s)
	if err != nil {
		log.Fatalf("failed to build graphql schema: %v", err)
	}
	s.graphqlSchema = schema

	s.InitCORSFromEnv()
	return s
}

// InitCORSFromEnv configures CORS from ROUTER_CORS_ALLOWED_ORIGINS, a
// comma-separated origin list, "*" to allow all (not recommended). With no
// origins configured, cross-origin requests are disabled by default.
func (s *Server) InitCORSFromEnv() {
	originsEnv := os.Getenv("ROUTER_CORS_ALLOWED_ORIGINS")
	if originsEnv == "" {
		s.corsConfig = middleware.DefaultCORSConfig()
		return
	}

	origins := strings.Split(originsEnv, ",")
	for i, o := range origins {
		origins[i] = strings.TrimSpace(o)
	}
	for _, o := range origins {
		if o == "*" {
			log.Printf("WARNING: CORS allows all origins (*)")
			break
		}
	}

	s.corsConfig = &middleware.CORSConfig{
		AllowedOrigins:   origins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization", "X-API-Key", "X-Request-ID"},
		AllowCredentials: os.Getenv("ROUTER_CORS_ALLOW_CREDENTIALS") == "true",
		MaxAge:           86400,
	}
}

// InitRateLimiterFromEnv enables per-client rate limiting when
// ROUTER_RATE_LIMIT_ENABLED is set, configurable via ROUTER_RATE_LIMIT_RPS
// and ROUTER_RATE_LIMIT_BURST.
func (s *Server) InitRateLimiterFromEnv() {
	enabled := os.Getenv("ROUTER_RATE_LIMIT_ENABLED")
	if enabled != "true" && enabled != "1" {
		return
	}

	config := middleware.DefaultRateLimitConfig()
	if rps := os.Getenv("ROUTER_RATE_LIMIT_RPS"); rps != "" {
		if val, err := strconv.ParseFloat(rps, 64); err == nil && val > 0 {
			config.RequestsPerSecond = val
		}
	}
	if burst := os.Getenv("ROUTER_RATE_LIMIT_BURST"); burst != "" {
		if val, err := strconv.Atoi(burst); err == nil && val > 0 {
			config.BurstSize = val
		}
	}

	s.rateLimiter = middleware.NewRateLimiter(config)
	log.Printf("rate limiting enabled: %.0f req/s, burst %d", config.RequestsPerSecond, config.BurstSize)
}
