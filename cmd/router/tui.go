package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/SirJonasM/fpga-router/pkg/dashboard"
	"github.com/SirJonasM/fpga-router/pkg/plan"
	"github.com/SirJonasM/fpga-router/pkg/router"
)

// runTUI delegates to pkg/dashboard, the same live view cmd/tui runs as its
// own binary, so the two entrypoints share one implementation.
func runTUI(args []string) {
	fs := flag.NewFlagSet("tui", flag.ExitOnError)
	graphPath := fs.String("graph", "", "routing-resource graph file")
	planPath := fs.String("plan", "", "routing plan JSON file")
	solver := fs.String("solver", "independent_paths", "independent_paths | steiner | simple_steiner")
	histFactor := fs.Float64("hist-factor", 0.1, "historic cost growth factor")
	presentFactor := fs.Float64("present-factor", 1.0, "present cost scale factor")
	maxIterations := fs.Int("max-iterations", 2000, "iteration cap")
	fs.Parse(args)

	if *graphPath == "" || *planPath == "" {
		fmt.Fprintln(os.Stderr, "usage: router tui -graph <file> -plan <file> [options]")
		os.Exit(1)
	}

	g, err := loadGraph(*graphPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	p, err := plan.Load(*planPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	cfg := router.Config{
		Solver:        *solver,
		HistFactor:    *histFactor,
		PresentFactor: *presentFactor,
		MaxIterations: *maxIterations,
	}

	if err := dashboard.Run(g, p, cfg); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
