package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"

	"github.com/SirJonasM/fpga-router/pkg/plan"
)

// runCreateTest builds a random-but-seeded routing plan by pairing a
// percentage of a graph's LUT outputs with unused LUT inputs, grounded on
// the original's create_test: bucket sources/sinks, shuffle, and zip.
func runCreateTest(args []string) {
	fs := flag.NewFlagSet("create-test", flag.ExitOnError)
	graphPath := fs.String("graph", "", "routing-resource graph file")
	output := fs.String("output", "", "output plan JSON path")
	destinations := fs.Int("destinations", 1, "sinks per generated signal")
	percentage := fs.Float64("percentage", 0.2, "fraction of LUT outputs to use as signal sources")
	seed := fs.Int64("seed", 1, "random seed")
	fs.Parse(args)

	if *graphPath == "" || *output == "" {
		fmt.Fprintln(os.Stderr, "usage: router create-test -graph <file> -output <file> [-destinations N] [-percentage F] [-seed N]")
		os.Exit(1)
	}
	if *destinations < 1 {
		fmt.Fprintln(os.Stderr, "error: -destinations must be at least 1")
		os.Exit(1)
	}

	g, err := loadGraph(*graphPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	rng := rand.New(rand.NewSource(*seed))

	sources := append([]int(nil), g.Sources()...)
	sinks := append([]int(nil), g.Sinks()...)
	rng.Shuffle(len(sources), func(i, j int) { sources[i], sources[j] = sources[j], sources[i] })
	rng.Shuffle(len(sinks), func(i, j int) { sinks[i], sinks[j] = sinks[j], sinks[i] })

	dests := *destinations
	sourceCount := int(*percentage * float64(len(sources)))
	sinkCount := sourceCount * dests
	if sinkCount > len(sinks) {
		sinkCount = len(sinks) - len(sinks)%dests
		sourceCount = sinkCount / dests
	}

	p := make(plan.RoutingPlan, 0, sourceCount)
	for i := 0; i < sourceCount; i++ {
		sinkIDs := make([]string, 0, dests)
		for j := 0; j < dests; j++ {
			sinkIDs = append(sinkIDs, g.Node(sinks[i*dests+j]).ID)
		}
		p = append(p, &plan.Signal{
			Source: g.Node(sources[i]).ID,
			Sinks:  sinkIDs,
		})
	}

	if err := plan.Save(*output, p); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Test route plan written to %s (%d signal(s))\n", *output, len(p))
}
