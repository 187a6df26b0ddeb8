package solver

import (
	"errors"
	"fmt"
	"sort"
)

// Strategy names
const (
	StrategyBaseline = "baseline"
	StrategyWeighted = "weighted"
)

// ErrUnknownStrategy is returned when a strategy name is not registered
var ErrUnknownStrategy = errors.New("unknown strategy")

// Strategy configures how the coverage engine orders candidates within a section
type Strategy interface {
	// Name returns the identifier used to select this strategy
	Name() string

	// Scorer builds the scorer for one solver run
	Scorer(data SolverData) Scorer
}

// BaselineStrategy ignores preferences entirely.
// Candidates are ordered by ascending hour capacity, then staff ID.
type BaselineStrategy struct{}

func (BaselineStrategy) Name() string {
	return StrategyBaseline
}

func (BaselineStrategy) Scorer(data SolverData) Scorer {
	return ZeroScorer{}
}

// WeightedStrategy orders candidates by the combined professor/staff preference score
type WeightedStrategy struct {
	Weights Weights
}

// NewWeightedStrategy creates a WeightedStrategy with the given weights
func NewWeightedStrategy(weights Weights) *WeightedStrategy {
	return &WeightedStrategy{Weights: weights}
}

func (s *WeightedStrategy) Name() string {
	return StrategyWeighted
}

func (s *WeightedStrategy) Scorer(data SolverData) Scorer {
	return NewPreferenceScorer(data, s.Weights)
}

// strategyFactories builds each registered strategy from the configured weights
var strategyFactories = map[string]func(weights Weights) Strategy{
	StrategyBaseline: func(Weights) Strategy { return BaselineStrategy{} },
	StrategyWeighted: func(weights Weights) Strategy { return NewWeightedStrategy(weights) },
}

// LookupStrategy returns the strategy registered under name.
// Weights are only used by strategies that score preferences.
func LookupStrategy(name string, weights Weights) (Strategy, error) {
	factory, ok := strategyFactories[name]
	if !ok {
		return nil, fmt.Errorf("%w %q (available: %v)", ErrUnknownStrategy, name, StrategyNames())
	}
	return factory(weights), nil
}

// StrategyNames returns the registered strategy names in sorted order
func StrategyNames() []string {
	names := make([]string, 0, len(strategyFactories))
	for name := range strategyFactories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
