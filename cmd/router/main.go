// Command router is the FPGA global router's entrypoint: route a plan
// against a resource graph, generate a synthetic test plan, render a routed
// plan to FASM, validate a plan, or run the HTTP control surface / live TUI.
package main

import (
	"fmt"
	"os"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]
	args := os.Args[2:]

	switch command {
	case "route":
		runRoute(args)
	case "create-test":
		runCreateTest(args)
	case "fasm":
		runFasm(args)
	case "validate":
		runValidate(args)
	case "serve":
		runServe(args)
	case "tui":
		runTUI(args)
	case "help", "--help", "-h":
		printUsage()
	case "version", "--version", "-v":
		fmt.Println("router v1.0.0")
	default:
		fmt.Fprintf(os.Stderr, "unknown command: %s\n\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	usage := `FPGA Global Router

Usage:
  router <command> [options]

Available Commands:
  route          Route a plan against a resource graph
  create-test    Generate a random synthetic routing plan
  fasm           Render an already-routed plan to FASM
  validate       Validate a plan against a graph without routing
  serve          Run the HTTP control surface
  tui            Run the live routing dashboard
  help           Show this help message
  version        Show version information

Use "router <command> --help" for more information about a command.
`
	fmt.Print(usage)
}
