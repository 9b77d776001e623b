package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/SirJonasM/fpga-router/pkg/fasm"
	"github.com/SirJonasM/fpga-router/pkg/plan"
)

// runFasm renders an already-routed plan's paths to FASM, for plans
// produced by a prior "router route" call and kept around as JSON.
func runFasm(args []string) {
	fs := flag.NewFlagSet("fasm", flag.ExitOnError)
	planPath := fs.String("plan", "", "routed plan JSON file")
	output := fs.String("output", "", "output FASM path")
	fs.Parse(args)

	if *planPath == "" || *output == "" {
		fmt.Fprintln(os.Stderr, "usage: router fasm -plan <file> -output <file>")
		os.Exit(1)
	}

	p, err := plan.Load(*planPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	if err := os.WriteFile(*output, []byte(fasm.Render(p)), 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "error writing output: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Wrote FASM into %s\n", *output)
}
