package problem

import (
	"strings"

	"github.com/katalvlaran/roundelim/label"
)

const forbiddenRenameChars = "()*^ "

// Rename replaces every label's display text according to mapping,
// which must assign each of p's labels exactly one new name
// (ErrBijectionMismatch otherwise), every new name must be distinct
// (ErrDuplicateName) and free of the parser's special characters
// (ErrForbiddenCharacter): parentheses, '^', '*' and space.
func (p Problem) Rename(mapping map[label.Label]string) (Problem, error) {
	labels := p.Labels()
	if len(mapping) != len(labels) {
		return Problem{}, ErrBijectionMismatch
	}

	seen := make(map[string]bool, len(labels))
	for _, l := range labels {
		text, ok := mapping[l]
		if !ok {
			return Problem{}, ErrBijectionMismatch
		}
		if strings.ContainsAny(text, forbiddenRenameChars) {
			return Problem{}, ErrForbiddenCharacter
		}
		if seen[text] {
			return Problem{}, ErrDuplicateName
		}
		seen[text] = true
	}

	in := label.NewInterner()
	for _, l := range labels {
		in.Intern(mapping[l])
	}
	return p.cloned(p.Active, p.Passive, in, p.OldLabels), nil
}
