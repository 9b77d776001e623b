package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/SirJonasM/fpga-router/pkg/plan"
)

// runValidate checks a plan's shape against a graph without routing it:
// every source/sink identifier resolves, no signal's sink equals its
// source, and no signal repeats a sink (§7's input errors).
func runValidate(args []string) {
	fs := flag.NewFlagSet("validate", flag.ExitOnError)
	graphPath := fs.String("graph", "", "routing-resource graph file")
	planPath := fs.String("plan", "", "routing plan JSON file")
	fs.Parse(args)

	if *graphPath == "" || *planPath == "" {
		fmt.Fprintln(os.Stderr, "usage: router validate -graph <file> -plan <file>")
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

	if err := plan.ValidatePlan(g, p); err != nil {
		fmt.Printf("invalid: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("valid: %d signal(s)\n", len(p))
}
