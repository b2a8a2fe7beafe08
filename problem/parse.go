package problem

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/roundelim/constraint"
	"github.com/katalvlaran/roundelim/label"
	"github.com/katalvlaran/roundelim/progress"
)

// ParseText parses the combined "<active>\n\n<passive>" text format: the
// first blank line separates the active lines from the passive lines.
func ParseText(text string, h progress.Handler) (Problem, error) {
	activeText, passiveText, ok := splitOnBlankLine(text)
	if !ok {
		return Problem{}, fmt.Errorf("%w: missing blank line separating active and passive constraints", ErrParse)
	}
	return FromText(activeText, passiveText, h)
}

func splitOnBlankLine(text string) (active, passive string, ok bool) {
	lines := strings.Split(text, "\n")
	for i, l := range lines {
		if strings.TrimSpace(l) == "" {
			return strings.Join(lines[:i], "\n"), strings.Join(lines[i+1:], "\n"), true
		}
	}
	return "", "", false
}

// FromText parses activeText and passiveText into a Problem, interning
// labels in first-seen order across both (active first). Lines of
// differing degree within one constraint are rejected (ErrMixedDegree);
// a label-set disagreement between active and passive is not an error,
// only a "parse:alphabet-mismatch" progress notification, per the design
// notes' "warning, not error" rule.
func FromText(activeText, passiveText string, h progress.Handler) (Problem, error) {
	in := label.NewInterner()

	activeLines, err := parseConstraintLines(activeText, in)
	if err != nil {
		return Problem{}, err
	}
	passiveLines, err := parseConstraintLines(passiveText, in)
	if err != nil {
		return Problem{}, err
	}

	activeDegree, err := commonDegree(activeLines)
	if err != nil {
		return Problem{}, err
	}
	passiveDegree, err := commonDegree(passiveLines)
	if err != nil {
		return Problem{}, err
	}

	active := constraint.Constraint{Lines: activeLines, Degree: activeDegree}
	passive := constraint.Constraint{Lines: passiveLines, Degree: passiveDegree}

	if !active.LabelsAppearing().Equal(passive.LabelsAppearing()) {
		progress.Notify(h, "parse:alphabet-mismatch", 0, 0)
	}

	return Problem{Active: active, Passive: passive, Interner: in}, nil
}

func parseConstraintLines(text string, in *label.Interner) ([]label.Line, error) {
	var lines []label.Line
	for _, raw := range strings.Split(text, "\n") {
		raw = strings.TrimSpace(raw)
		if raw == "" {
			continue
		}
		l, err := label.ParseLine(raw, in)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrParse, err)
		}
		lines = append(lines, l)
	}
	return lines, nil
}

// commonDegree returns the shared degree of every line, or
// ErrMixedDegree if they disagree. A Star-bearing constraint reports the
// finite part of its degree; LCL constraints over regular graphs rarely
// mix Star with a fixed alphabet-wide degree, so this is sufficient to
// drive Constraint.Degree without a separate "has star" flag at the
// constraint level.
func commonDegree(lines []label.Line) (int, error) {
	if len(lines) == 0 {
		return 0, nil
	}
	d := lines[0].Degree()
	for _, l := range lines[1:] {
		if ld := l.Degree(); ld != d {
			return 0, fmt.Errorf("%w: degrees %+v and %+v", ErrMixedDegree, d, ld)
		}
	}
	return d.N, nil
}
