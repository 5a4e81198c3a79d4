package ensemble

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/samthorold/abm-sub000/sim/trace"
)

// Plan holds an ensemble run configuration, loadable from a YAML file.
// A plan carries everything about HOW to run (scenario count, horizon,
// worker cap, batching, seeding, tracing) and nothing about WHAT to
// run: the model itself comes from the Builder passed to RunPlan.
type Plan struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Scenarios   int    `yaml:"scenarios"`
	Horizon     int64  `yaml:"horizon"`
	Workers     int    `yaml:"workers"`
	BatchSize   int    `yaml:"batch_size"`
	BaseSeed    int64  `yaml:"base_seed"`
	Trace       string `yaml:"trace"`
}

// LoadPlan reads and parses a YAML run plan file.
func LoadPlan(path string) (*Plan, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading run plan: %w", err)
	}
	var plan Plan
	if err := yaml.Unmarshal(data, &plan); err != nil {
		return nil, fmt.Errorf("parsing run plan: %w", err)
	}
	return &plan, nil
}

// Validate checks that plan values are in range and names are recognized.
func (p *Plan) Validate() error {
	if p.Scenarios <= 0 {
		return fmt.Errorf("scenarios must be positive, got %d", p.Scenarios)
	}
	if p.Horizon < 0 {
		return fmt.Errorf("horizon must be non-negative, got %d", p.Horizon)
	}
	if p.Workers < 0 {
		return fmt.Errorf("workers must be non-negative, got %d", p.Workers)
	}
	if p.BatchSize < 0 {
		return fmt.Errorf("batch_size must be non-negative, got %d", p.BatchSize)
	}
	if !trace.IsValidLevel(p.Trace) {
		return fmt.Errorf("unknown trace level %q", p.Trace)
	}
	return nil
}

// SeedKey returns the plan's master seed key for scenario derivation.
func (p *Plan) SeedKey() SeedKey {
	return SeedKey(p.BaseSeed)
}

// TraceConfig returns the trace configuration the plan requests.
// Builders that want per-loop traces attach one themselves:
//
//	loop.Trace = trace.New(plan.TraceConfig())
func (p *Plan) TraceConfig() trace.Config {
	return trace.Config{Level: trace.Level(p.Trace)}
}

// RunPlan validates the plan and executes it with the given builder,
// honoring its worker cap and batch size. Results come back in scenario
// order.
//
// This is a free function rather than a Plan method because the builder
// introduces the loop's type parameters.
func RunPlan[T, S any](plan *Plan, build Builder[T, S]) ([]Result[S], error) {
	if err := plan.Validate(); err != nil {
		return nil, fmt.Errorf("invalid run plan: %w", err)
	}
	r := &Runner[T, S]{
		Scenarios: plan.Scenarios,
		Build:     build,
		Workers:   plan.Workers,
	}
	return r.RunBatched(plan.Horizon, plan.BatchSize), nil
}
