package router

// Config is the §6 "config" invocation parameter.
type Config struct {
	Solver        string  `yaml:"solver"`
	HistFactor    float64 `yaml:"hist_factor"`
	PresentFactor float64 `yaml:"present_factor"`
	MaxIterations int     `yaml:"max_iterations"`
}

// DefaultConfig returns the §4.4 defaults: hist_factor 0.1, present_factor
// 1.0, max_iterations 2000, independent-paths solver.
func DefaultConfig() Config {
	return Config{
		Solver:        "independent_paths",
		HistFactor:    0.1,
		PresentFactor: 1.0,
		MaxIterations: 2000,
	}
}
