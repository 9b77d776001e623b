package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/SirJonasM/fpga-router/pkg/fasm"
	"github.com/SirJonasM/fpga-router/pkg/graph"
	"github.com/SirJonasM/fpga-router/pkg/logging"
	"github.com/SirJonasM/fpga-router/pkg/plan"
	"github.com/SirJonasM/fpga-router/pkg/router"
)

// runRoute loads a graph and plan, runs the negotiated-congestion loop, and
// writes the routed plan (JSON, or FASM when -output ends in ".fasm").
func runRoute(args []string) {
	fs := flag.NewFlagSet("route", flag.ExitOnError)
	graphPath := fs.String("graph", "", "routing-resource graph file")
	planPath := fs.String("plan", "", "routing plan JSON file")
	output := fs.String("output", "", "output path (.json or .fasm)")
	solver := fs.String("solver", "independent_paths", "independent_paths | steiner | simple_steiner")
	histFactor := fs.Float64("hist-factor", 0.1, "historic cost growth factor")
	presentFactor := fs.Float64("present-factor", 1.0, "present cost scale factor")
	maxIterations := fs.Int("max-iterations", 2000, "iteration cap")
	logMode := fs.String("log", "terminal", "no | terminal | file")
	logFile := fs.String("log-file", "", "log file path, required when -log=file")
	fs.Parse(args)

	if *graphPath == "" || *planPath == "" || *output == "" {
		fmt.Fprintln(os.Stderr, "usage: router route -graph <file> -plan <file> -output <file> [options]")
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

	logger, closeLogger, err := buildLogger(*logMode, *logFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	defer closeLogger()

	cfg := router.Config{
		Solver:        *solver,
		HistFactor:    *histFactor,
		PresentFactor: *presentFactor,
		MaxIterations: *maxIterations,
	}

	outcome, _, err := router.Route(g, p, cfg, logger, nil)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	switch outcome.Kind {
	case router.Success:
		fmt.Printf("Success: %d iteration(s)\n", outcome.Iterations)
	case router.Failed:
		fmt.Printf("Failure: %d conflict(s) remaining after %d iteration(s)\n", outcome.Conflicts, outcome.Iterations)
	case router.Cancelled:
		fmt.Println("Cancelled")
	}

	if strings.HasSuffix(*output, ".fasm") {
		if err := os.WriteFile(*output, []byte(fasm.Render(p)), 0o644); err != nil {
			fmt.Fprintf(os.Stderr, "error writing output: %v\n", err)
			os.Exit(1)
		}
	} else if err := plan.Save(*output, p); err != nil {
		fmt.Fprintf(os.Stderr, "error writing output: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Wrote the routing into %s\n", *output)
}

func loadGraph(path string) (*graph.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open graph %s: %w", path, err)
	}
	defer f.Close()
	g, err := graph.Parse(f)
	if err != nil {
		return nil, fmt.Errorf("parse graph %s: %w", path, err)
	}
	return g, nil
}

// buildLogger maps the original's No/Terminal/File logger enum onto the
// concrete router.IterationLogger implementations.
func buildLogger(mode, logFile string) (router.IterationLogger, func(), error) {
	switch mode {
	case "no":
		return router.NoopLogger{}, func() {}, nil
	case "terminal":
		return router.WriterLogger{W: os.Stdout}, func() {}, nil
	case "file":
		if logFile == "" {
			return nil, nil, fmt.Errorf("-log-file is required when -log=file")
		}
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file %s: %w", logFile, err)
		}
		jsonLogger := logging.NewJSONLogger(f, logging.InfoLevel)
		return router.StructuredLogger{Logger: jsonLogger}, func() { f.Close() }, nil
	default:
		return nil, nil, fmt.Errorf("unknown -log mode %q (want no, terminal, or file)", mode)
	}
}
