package graph

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"golang.org/x/exp/slices"
)

// Parse reads the §6 textual graph description: one directed edge per line,
// "<from-id>,<to-id>[,<base_cost>]", comments starting with '#' and blank
// lines skipped. Node identifiers use the "X<int>Y<int>.<name>" form.
// A missing base_cost defaults to 1 + Manhattan tile distance, matching the
// distance metric original_source/router/src/fabric_graph.rs uses to derive
// base costs from tile coordinates.
func Parse(r io.Reader) (*Graph, error) {
	g := New()
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		parts := strings.Split(line, ",")
		if len(parts) != 2 && len(parts) != 3 {
			return nil, fmt.Errorf("graph: line %d: expected 2 or 3 comma-separated fields, got %d", lineNo, len(parts))
		}
		fromID := strings.TrimSpace(parts[0])
		toID := strings.TrimSpace(parts[1])

		fx, fy, fname, err := ParseNodeID(fromID)
		if err != nil {
			return nil, fmt.Errorf("graph: line %d: %w", lineNo, err)
		}
		tx, ty, tname, err := ParseNodeID(toID)
		if err != nil {
			return nil, fmt.Errorf("graph: line %d: %w", lineNo, err)
		}

		u := g.AddNode(fromID, fx, fy, fname)
		v := g.AddNode(toID, tx, ty, tname)

		baseCost := manhattanBaseCost(fx, fy, tx, ty)
		if len(parts) == 3 {
			baseCost, err = strconv.ParseFloat(strings.TrimSpace(parts[2]), 64)
			if err != nil {
				return nil, fmt.Errorf("graph: line %d: bad base cost: %w", lineNo, err)
			}
			if baseCost <= 0 {
				return nil, fmt.Errorf("graph: line %d: base cost must be positive, got %v", lineNo, baseCost)
			}
		}
		g.AddEdge(u, v, baseCost)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("graph: read failed: %w", err)
	}
	return g, nil
}

// manhattanBaseCost mirrors FabricGraph::distance: 1 plus the Manhattan
// distance between tiles, used when a line omits an explicit base cost.
func manhattanBaseCost(x1, y1, x2, y2 int) float64 {
	return float64(1 + abs(x1-x2) + abs(y1-y2))
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// SortedNodeIDs returns every node identifier in lexicographic order, used
// by diagnostics and golden-output tests that need deterministic iteration
// over the identifier→id index.
func (g *Graph) SortedNodeIDs() []string {
	ids := make([]string, len(g.nodes))
	for i, n := range g.nodes {
		ids[i] = n.ID
	}
	slices.Sort(ids)
	return ids
}
