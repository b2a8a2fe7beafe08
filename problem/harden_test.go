package problem_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/roundelim/label"
	"github.com/katalvlaran/roundelim/problem"
	"github.com/katalvlaran/roundelim/progress"
)

// Hardening a symmetric constraint down to a single label leaves both
// sides non-empty, collapsing the repeated group into "^n" form.
func TestHardenKeepNonEmptyResult(t *testing.T) {
	p, err := problem.FromText("AB AB", "AB AB", progress.Null())
	require.NoError(t, err)

	labelA := mustLabel(t, p, "A")

	hardened, err := p.HardenKeep([]label.Label{labelA}, false, progress.Null())
	require.NoError(t, err)
	require.Equal(t, "A^2", formatConstraintForTest(t, hardened.Active, hardened.Interner))
	require.Equal(t, "A^2", formatConstraintForTest(t, hardened.Passive, hardened.Interner))
}

// Hardening a line of two distinct singleton groups down to only one of
// them empties the line's surviving side out entirely: ErrInfeasible.
func TestHardenKeepInfeasible(t *testing.T) {
	p, err := problem.FromText("A B", "A B", progress.Null())
	require.NoError(t, err)

	labelA := mustLabel(t, p, "A")

	_, err = p.HardenKeep([]label.Label{labelA}, false, progress.Null())
	require.ErrorIs(t, err, problem.ErrInfeasible)
}

// S3's diagram edge (P,U): hardening down to {U} alone drops every active
// line (neither "M U U" nor "P P P" survives intersecting with {U}), but
// with keepPredecessors set, U's diagram predecessor P is pulled back in
// and "P P P" survives, rescuing the hardening from infeasibility.
func TestHardenKeepPredecessorsRescuesInfeasibleCaseS3(t *testing.T) {
	p, err := problem.FromText("M U U\nP P P", "M UP\nU U", progress.Null())
	require.NoError(t, err)

	labelU := mustLabel(t, p, "U")

	_, err = p.HardenKeep([]label.Label{labelU}, false, progress.Null())
	require.ErrorIs(t, err, problem.ErrInfeasible)

	hardened, err := p.HardenKeep([]label.Label{labelU}, true, progress.Null())
	require.NoError(t, err)
	require.Equal(t, "P^3", formatConstraintForTest(t, hardened.Active, hardened.Interner))
	require.Equal(t, "U^2", formatConstraintForTest(t, hardened.Passive, hardened.Interner))
}

// HardenRemove(l) is HardenKeep(every other label): removing M from S3's
// problem keeps everything else and leaves the active/passive lines that
// never mentioned M untouched (modulo "^n" collapsing), while dropping the
// lines that did.
func TestHardenRemoveDropsOnlyLinesMentioningTheRemovedLabel(t *testing.T) {
	p, err := problem.FromText("M U U\nP P P", "M UP\nU U", progress.Null())
	require.NoError(t, err)

	labelM := mustLabel(t, p, "M")

	hardened, err := p.HardenRemove(labelM, false, progress.Null())
	require.NoError(t, err)
	require.Equal(t, "P^3", formatConstraintForTest(t, hardened.Active, hardened.Interner))
	require.Equal(t, "U^2", formatConstraintForTest(t, hardened.Passive, hardened.Interner))
}
