// Package fasm renders a routed plan's paths into FPGA Assembly (FASM)
// feature lines, one per intra-tile edge a path crosses.
package fasm

import (
	"strings"

	"golang.org/x/exp/slices"

	"github.com/SirJonasM/fpga-router/pkg/plan"
)

// Render emits one FASM feature line per intra-tile edge crossed by any
// committed path in p, deduplicated and sorted for a stable textual diff.
// Inter-tile edges (the two node ids carry different "X<x>Y<y>" coordinates)
// produce no line: FASM features describe a tile's internal mux selection,
// not the routing wire between tiles.
func Render(p plan.RoutingPlan) string {
	lines := make(map[string]struct{})

	for _, s := range p {
		if s.Result == nil {
			continue
		}
		for _, path := range s.Result.Paths {
			for i := 0; i+1 < len(path); i++ {
				if line, ok := edgeToFeature(path[i], path[i+1]); ok {
					lines[line] = struct{}{}
				}
			}
		}
	}

	sorted := make([]string, 0, len(lines))
	for line := range lines {
		sorted = append(sorted, line)
	}
	slices.Sort(sorted)
	return strings.Join(sorted, "\n")
}

// edgeToFeature extracts "<coord>.<u_name>.<v_name>" from two node ids
// sharing one tile coordinate. Node ids not in "X<x>Y<y>.<name>" form, or
// spanning two different tiles, produce no feature.
func edgeToFeature(uID, vID string) (string, bool) {
	uCoord, uName, ok := splitCoordName(uID)
	if !ok {
		return "", false
	}
	vCoord, vName, ok := splitCoordName(vID)
	if !ok {
		return "", false
	}
	if uCoord != vCoord {
		return "", false
	}
	return uCoord + "." + uName + "." + vName, true
}

func splitCoordName(id string) (coord, name string, ok bool) {
	i := strings.IndexByte(id, '.')
	if i < 0 {
		return "", "", false
	}
	return id[:i], id[i+1:], true
}
