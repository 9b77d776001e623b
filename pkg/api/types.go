package api

import (
	"time"

	"github.com/SirJonasM/fpga-router/pkg/plan"
	"github.com/SirJonasM/fpga-router/pkg/router"
)

// RouteRequest is the POST /route request body: a routing plan plus an
// optional override of the server's default negotiation config.
type RouteRequest struct {
	Plan   plan.RoutingPlan `json:"plan"`
	Config *router.Config   `json:"config,omitempty"`
}

// RouteResponse reports a completed route() invocation's terminal outcome
// and the per-iteration rows it produced.
type RouteResponse struct {
	Outcome    string      `json:"outcome"`
	Iterations int         `json:"iterations"`
	Conflicts  int         `json:"conflicts"`
	Rows       []router.Row `json:"rows"`
	Plan       plan.RoutingPlan `json:"plan"`
}

// PlanResponse is the GET /plan response: the most recently routed plan,
// with each signal's last committed tree in its Result field.
type PlanResponse struct {
	Plan plan.RoutingPlan `json:"plan"`
}

// HealthResponse reports basic liveness information.
type HealthResponse struct {
	Status  string    `json:"status"`
	Version string    `json:"version"`
	Started time.Time `json:"started"`
	Uptime  string    `json:"uptime"`
}

// ErrorResponse is the uniform error body for every non-2xx response.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Code    int    `json:"code"`
}
