package plan

import (
	"encoding/json"
	"fmt"
	"os"
)

// Load reads a RoutingPlan from its JSON file form (§6), satisfying the
// §8 round-trip property: decoding then re-encoding a plan produces the
// same signal/sink/result shape.
func Load(path string) (RoutingPlan, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read plan %s: %w", path, err)
	}
	var p RoutingPlan
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("parse plan %s: %w", path, err)
	}
	return p, nil
}

// Save writes p to path as indented JSON.
func Save(path string, p RoutingPlan) error {
	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return fmt.Errorf("encode plan: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write plan %s: %w", path, err)
	}
	return nil
}
