// Command tui is a live dashboard over a single route() invocation: it
// loads a graph and plan, runs the negotiated-congestion loop in the
// background, and renders each Row as it arrives.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/SirJonasM/fpga-router/pkg/dashboard"
	"github.com/SirJonasM/fpga-router/pkg/graph"
	"github.com/SirJonasM/fpga-router/pkg/plan"
	"github.com/SirJonasM/fpga-router/pkg/router"
)

func main() {
	graphPath := flag.String("graph", "", "routing-resource graph file")
	planPath := flag.String("plan", "", "routing plan JSON file")
	solver := flag.String("solver", "independent_paths", "independent_paths | steiner | simple_steiner")
	histFactor := flag.Float64("hist-factor", 0.1, "historic cost growth factor")
	presentFactor := flag.Float64("present-factor", 1.0, "present cost scale factor")
	maxIterations := flag.Int("max-iterations", 2000, "iteration cap")
	flag.Parse()

	if *graphPath == "" || *planPath == "" {
		fmt.Fprintln(os.Stderr, "usage: tui -graph <file> -plan <file> [-solver ...] [-hist-factor ...] [-present-factor ...] [-max-iterations ...]")
		os.Exit(1)
	}

	f, err := os.Open(*graphPath)
	if err != nil {
		log.Fatalf("open graph: %v", err)
	}
	g, err := graph.Parse(f)
	f.Close()
	if err != nil {
		log.Fatalf("parse graph: %v", err)
	}

	p, err := plan.Load(*planPath)
	if err != nil {
		log.Fatalf("load plan: %v", err)
	}

	cfg := router.Config{
		Solver:        *solver,
		HistFactor:    *histFactor,
		PresentFactor: *presentFactor,
		MaxIterations: *maxIterations,
	}

	if err := dashboard.Run(g, p, cfg); err != nil {
		log.Fatalf("tui error: %v", err)
	}
}
