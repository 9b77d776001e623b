package api

import (
	"net/http"

	apigraphql "github.com/SirJonasM/fpga-router/pkg/api/graphql"
	"github.com/SirJonasM/fpga-router/pkg/plan"
	"github.com/SirJonasM/fpga-router/pkg/router"
)

// Signal implements apigraphql.Source, looking up a signal of the most
// recently routed plan by its source node id.
func (s *Server) Signal(id string) (*plan.Signal, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, sig := range s.lastPlan {
		if sig.Source == id {
			return sig, true
		}
	}
	return nil, false
}

// Metrics implements apigraphql.Source, returning the per-iteration Rows of
// the most recently completed run.
func (s *Server) Metrics() []router.Row {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastRows
}

// serveGraphQL executes a GraphQL request against the schema built over this
// Server at construction time; resolvers read lastPlan/lastRows live, so the
// schema itself never needs rebuilding between /route calls.
func (s *Server) serveGraphQL(w http.ResponseWriter, r *http.Request) {
	apigraphql.NewGraphQLHandler(s.graphqlSchema).ServeHTTP(w, r)
}
