package api

import (
	"sync"
	"time"

	graphqllib "github.com/graphql-go/graphql"

	"github.com/SirJonasM/fpga-router/pkg/api/middleware"
	"github.com/SirJonasM/fpga-router/pkg/auth"
	"github.com/SirJonasM/fpga-router/pkg/export"
	"github.com/SirJonasM/fpga-router/pkg/graph"
	"github.com/SirJonasM/fpga-router/pkg/history"
	"github.com/SirJonasM/fpga-router/pkg/metrics"
	"github.com/SirJonasM/fpga-router/pkg/plan"
	"github.com/SirJonasM/fpga-router/pkg/router"
)

// Server is the HTTP control surface over a single in-memory Graph. Only
// one route() invocation runs at a time (§5: a single invocation owns the
// graph); mu serializes POST /route against itself and against the
// GET /plan readers.
type Server struct {
	mu    sync.Mutex
	graph *graph.Graph
	cfg   router.Config

	lastPlan    plan.RoutingPlan
	lastOutcome router.Outcome
	lastRows    []router.Row

	jwtManager    *auth.JWTManager
	apiKeyChecker *auth.StaticAPIKeyChecker

	metricsRegistry *metrics.Registry
	broadcaster     *Broadcaster

	uploader *export.Uploader
	history  *history.Store

	corsConfig  *middleware.CORSConfig
	rateLimiter *middleware.RateLimiter

	graphqlSchema graphqllib.Schema

	startTime time.Time
	version   string
}

// SetUploader attaches an S3 uploader used to export the FASM/metrics
// artifacts of the most recently completed run; cmd/router serve attaches
// one when ROUTER_S3_BUCKET is set.
func (s *Server) SetUploader(u *export.Uploader) {
	s.uploader = u
}

// SetHistoryStore attaches a Postgres-backed run-history store.
func (s *Server) SetHistoryStore(h *history.Store) {
	s.history = h
}

// SetCORSConfig overrides CORS policy, e.g. for tests.
func (s *Server) SetCORSConfig(cfg *middleware.CORSConfig) {
	s.corsConfig = cfg
}
