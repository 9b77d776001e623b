// Package config loads a RouterConfig from a YAML file on disk with a plain
// load-then-validate shape.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/SirJonasM/fpga-router/pkg/router"
	"github.com/SirJonasM/fpga-router/pkg/validation"
)

// File is the on-disk YAML shape for a router run: the routing config plus
// the graph and plan file paths it should be run against. Fields mirror
// router.Config's yaml tags directly for the routing block.
type File struct {
	Graph  string        `yaml:"graph"`
	Plan   string        `yaml:"plan"`
	Router router.Config `yaml:"router"`
}

// Load reads and parses path as YAML, defaulting any zero-valued router
// fields, then validates the result.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	f := File{Router: router.DefaultConfig()}
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}

	if err := Validate(&f); err != nil {
		return nil, err
	}
	return &f, nil
}

// Validate checks a loaded File for structurally and numerically sane
// values before it reaches the router.
func Validate(f *File) error {
	cv := validation.NewConfigValidator("RouterConfig")
	cv.Required("graph", f.Graph)
	cv.Required("plan", f.Plan)
	cv.OneOf("router.solver", f.Router.Solver, []string{
		"independent_paths", "steiner", "simple_steiner",
	})
	cv.NonNegativeFloat("router.hist_factor", f.Router.HistFactor)
	cv.NonNegativeFloat("router.present_factor", f.Router.PresentFactor)
	cv.Positive("router.max_iterations", f.Router.MaxIterations)
	return cv.Validate()
}
