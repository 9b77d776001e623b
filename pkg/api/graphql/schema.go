package graphql

import (
	"fmt"

	"github.com/graphql-go/graphql"

	"github.com/SirJonasM/fpga-router/pkg/plan"
	"github.com/SirJonasM/fpga-router/pkg/router"
)

// Source supplies the state a generated schema reads from: the most
// recently routed plan and the Rows its run produced. *api.Server
// implements this by reading its lastPlan/lastRows under its mutex.
type Source interface {
	Signal(id string) (*plan.Signal, bool)
	Metrics() []router.Row
}

var pathEntryType = graphql.NewObject(graphql.ObjectConfig{
	Name: "PathEntry",
	Fields: graphql.Fields{
		"sink":  &graphql.Field{Type: graphql.String},
		"nodes": &graphql.Field{Type: graphql.NewList(graphql.String)},
	},
})

type pathEntry struct {
	Sink  string   `json:"sink"`
	Nodes []string `json:"nodes"`
}

var signalType = graphql.NewObject(graphql.ObjectConfig{
	Name: "Signal",
	Fields: graphql.Fields{
		"id": &graphql.Field{
			Type: graphql.NewNonNull(graphql.String),
			Resolve: func(p graphql.ResolveParams) (any, error) {
				s, _ := p.Source.(*plan.Signal)
				return s.Source, nil
			},
		},
		"sinks": &graphql.Field{
			Type: graphql.NewList(graphql.String),
			Resolve: func(p graphql.ResolveParams) (any, error) {
				s, _ := p.Source.(*plan.Signal)
				return s.Sinks, nil
			},
		},
		"nodes": &graphql.Field{
			Type: graphql.NewList(graphql.String),
			Resolve: func(p graphql.ResolveParams) (any, error) {
				s, _ := p.Source.(*plan.Signal)
				if s.Result == nil {
					return nil, nil
				}
				return s.Result.Nodes, nil
			},
		},
		"paths": &graphql.Field{
			Type: graphql.NewList(pathEntryType),
			Resolve: func(p graphql.ResolveParams) (any, error) {
				s, _ := p.Source.(*plan.Signal)
				if s.Result == nil {
					return nil, nil
				}
				out := make([]pathEntry, 0, len(s.Result.Paths))
				for sink, nodes := range s.Result.Paths {
					out = append(out, pathEntry{Sink: sink, Nodes: nodes})
				}
				return out, nil
			},
		},
	},
})

var metricsRowType = graphql.NewObject(graphql.ObjectConfig{
	Name: "MetricsRow",
	Fields: graphql.Fields{
		"invocationId": &graphql.Field{
			Type: graphql.String,
			Resolve: func(p graphql.ResolveParams) (any, error) {
				return p.Source.(router.Row).InvocationID, nil
			},
		},
		"iteration": &graphql.Field{
			Type: graphql.Int,
			Resolve: func(p graphql.ResolveParams) (any, error) {
				return p.Source.(router.Row).Iteration, nil
			},
		},
		"conflicts": &graphql.Field{
			Type: graphql.Int,
			Resolve: func(p graphql.ResolveParams) (any, error) {
				return p.Source.(router.Row).Conflicts, nil
			},
		},
		"longestPathCost": &graphql.Field{
			Type: graphql.Float,
			Resolve: func(p graphql.ResolveParams) (any, error) {
				return p.Source.(router.Row).LongestPathCost, nil
			},
		},
		"totalWireUse": &graphql.Field{
			Type: graphql.Int,
			Resolve: func(p graphql.ResolveParams) (any, error) {
				return p.Source.(router.Row).TotalWireUse, nil
			},
		},
		"wireReuse": &graphql.Field{
			Type: graphql.Float,
			Resolve: func(p graphql.ResolveParams) (any, error) {
				return p.Source.(router.Row).WireReuse, nil
			},
		},
		"unreachableSignals": &graphql.Field{
			Type: graphql.Int,
			Resolve: func(p graphql.ResolveParams) (any, error) {
				return p.Source.(router.Row).UnreachableSignals, nil
			},
		},
	},
})

// GenerateSchema builds a read-only query schema over src: a signal lookup
// by id, and the full metrics history of the last completed run.
func GenerateSchema(src Source) (graphql.Schema, error) {
	queryType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Query",
		Fields: graphql.Fields{
			"signal": &graphql.Field{
				Type: signalType,
				Args: graphql.FieldConfigArgument{
					"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				},
				Resolve: func(p graphql.ResolveParams) (any, error) {
					id, _ := p.Args["id"].(string)
					sig, ok := src.Signal(id)
					if !ok {
						return nil, nil
					}
					return sig, nil
				},
			},
			"metrics": &graphql.Field{
				Type: graphql.NewList(metricsRowType),
				Resolve: func(p graphql.ResolveParams) (any, error) {
					return src.Metrics(), nil
				},
			},
		},
	})

	schema, err := graphql.NewSchema(graphql.SchemaConfig{Query: queryType})
	if err != nil {
		return graphql.Schema{}, fmt.Errorf("build graphql schema: %w", err)
	}
	return schema, nil
}
