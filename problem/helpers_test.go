package problem_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/roundelim/constraint"
	"github.com/katalvlaran/roundelim/label"
	"github.com/katalvlaran/roundelim/problem"
)

// mustLabel looks up text's already-interned Label in p, failing the test
// if text was never seen while parsing p.
func mustLabel(t *testing.T, p problem.Problem, text string) label.Label {
	t.Helper()
	for _, l := range p.Labels() {
		if p.LabelText(l) == text {
			return l
		}
	}
	require.Failf(t, "label not found", "text %q not interned in problem", text)
	return 0
}

// formatConstraintForTest renders a lone Constraint the same way
// Problem.String() would, reusing it via a throwaway Problem so the
// formatting stays in exact lockstep with ParseText's grammar.
func formatConstraintForTest(t *testing.T, c constraint.Constraint, in *label.Interner) string {
	t.Helper()
	tmp := problem.Problem{Active: constraint.New(c.Degree), Passive: c, Interner: in}
	parts := strings.SplitN(tmp.String(), "\n\n", 2)
	require.Len(t, parts, 2)
	return parts[1]
}
