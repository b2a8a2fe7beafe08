package problem_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/roundelim/problem"
	"github.com/katalvlaran/roundelim/progress"
)

// Proper 3-coloring: an active node picks one of {A,B,C} independently per
// side ("ABC ABC"), the passive side already closed under the degree-2 rule
// ("A BC", "B AC", "C AB", the fixed point confirmed by
// constraint.TestMaximizeProperThreeColoring). Every pair of distinct colors
// is mutually compatible, so the compatibility graph over the three
// singleton choice sets is a triangle: clique size 3.
func TestComputeColoringSolvabilityThreeColoringCliqueSize(t *testing.T) {
	p, err := problem.FromText("ABC ABC", "A BC\nB AC\nC AB", progress.Null())
	require.NoError(t, err)

	err = p.ComputeColoringSolvability(progress.Null())
	require.NoError(t, err)
	require.NotNil(t, p.Coloring)
	require.Equal(t, 3, p.Coloring.CliqueSize)
}

func TestComputeColoringSolvabilityPanicsOnSecondCall(t *testing.T) {
	p, err := problem.FromText("ABC ABC", "A BC\nB AC\nC AB", progress.Null())
	require.NoError(t, err)

	require.NoError(t, p.ComputeColoringSolvability(progress.Null()))
	require.Panics(t, func() { _ = p.ComputeColoringSolvability(progress.Null()) })
}

func TestComputeColoringSolvabilityRejectsNonDegreeTwoPassive(t *testing.T) {
	p, err := problem.FromText("A A A", "A A A", progress.Null())
	require.NoError(t, err)

	err = p.ComputeColoringSolvability(progress.Null())
	require.ErrorIs(t, err, problem.ErrUnsupportedDegree)
}
