package builder_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/reconf/builder"
)

func TestRandomIndependentSet_IsIndependent(t *testing.T) {
	g, err := builder.BuildGraph(nil, builder.Grid(4, 4))
	require.NoError(t, err)

	for seed := int64(0); seed < 20; seed++ {
		s, err := builder.RandomIndependentSet(g, 4, builder.WithSeed(seed))
		require.NoError(t, err)
		assert.Equal(t, 4, s.Count())
		assert.True(t, g.IsIndependent(s), "seed %d: %s", seed, s)
	}
}

func TestRandomIndependentSet_ZeroTokens(t *testing.T) {
	g, err := builder.BuildGraph(nil, builder.Path(3))
	require.NoError(t, err)

	s, err := builder.RandomIndependentSet(g, 0, builder.WithSeed(1))
	require.NoError(t, err)
	assert.True(t, s.Empty())
}

func TestRandomIndependentSet_Errors(t *testing.T) {
	g, err := builder.BuildGraph(nil, builder.Complete(4))
	require.NoError(t, err)

	_, err = builder.RandomIndependentSet(g, 2)
	assert.ErrorIs(t, err, builder.ErrNeedRandSource)

	_, err = builder.RandomIndependentSet(g, 5, builder.WithSeed(1))
	assert.ErrorIs(t, err, builder.ErrInvalidSize)

	_, err = builder.RandomIndependentSet(g, -1, builder.WithSeed(1))
	assert.ErrorIs(t, err, builder.ErrInvalidSize)

	// K4 has no independent pair.
	_, err = builder.RandomIndependentSet(g, 2, builder.WithSeed(1), builder.WithAttempts(3))
	assert.ErrorIs(t, err, builder.ErrNoIndependentSet)

	_, err = builder.RandomIndependentSet(nil, 1, builder.WithSeed(1))
	assert.ErrorIs(t, err, builder.ErrConstructFailed)
}

func TestRandomInstance_Deterministic(t *testing.T) {
	g, err := builder.BuildGraph(nil, builder.Cycle(10))
	require.NoError(t, err)

	s1, t1, err := builder.RandomInstance(g, 3, builder.WithSeed(42))
	require.NoError(t, err)
	s2, t2, err := builder.RandomInstance(g, 3, builder.WithRand(rand.New(rand.NewSource(42))))
	require.NoError(t, err)

	assert.True(t, s1.Equal(s2))
	assert.True(t, t1.Equal(t2))
	assert.True(t, g.IsIndependent(s1))
	assert.True(t, g.IsIndependent(t1))
}
