package solver

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookupStrategy_Baseline(t *testing.T) {
	strategy, err := LookupStrategy(StrategyBaseline, DefaultWeights())
	require.NoError(t, err)

	assert.Equal(t, "baseline", strategy.Name())
	assert.IsType(t, ZeroScorer{}, strategy.Scorer(scoringData()))
}

func TestLookupStrategy_WeightedUsesWeights(t *testing.T) {
	strategy, err := LookupStrategy(StrategyWeighted, Weights{Professor: 10, Staff: 0})
	require.NoError(t, err)

	assert.Equal(t, "weighted", strategy.Name())

	scorer := strategy.Scorer(scoringData())
	assert.Equal(t, 10, scorer.Score("alice", "S1"))
	assert.Equal(t, 0, scorer.Score("bob", "S1"))
}

func TestLookupStrategy_Unknown(t *testing.T) {
	strategy, err := LookupStrategy("simulated-annealing", DefaultWeights())

	assert.Nil(t, strategy)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownStrategy))
	assert.Contains(t, err.Error(), "simulated-annealing")
	assert.Contains(t, err.Error(), "baseline")
}

func TestStrategyNames_Sorted(t *testing.T) {
	assert.Equal(t, []string{"baseline", "weighted"}, StrategyNames())
}
