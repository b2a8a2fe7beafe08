package problem

import (
	"github.com/katalvlaran/roundelim/label"
	"github.com/katalvlaran/roundelim/progress"
)

// ComputeTriviality fills p.Trivial in place: the problem is 0-round
// solvable iff some minimal set of single-label active choices, read as
// a uniform group repeated across every passive position, is included
// by the passive constraint. It panics if p.Trivial is already
// populated.
func (p *Problem) ComputeTriviality(h progress.Handler) {
	if p.Trivial != nil {
		panic("problem: ComputeTriviality called with a cache already populated")
	}

	sets := p.Active.MinimalSetsOfAllChoices()
	mult := label.StarMultiplicity()
	if p.Passive.Degree >= 1 {
		mult = label.ManyMultiplicity(p.Passive.Degree)
	}

	var witnesses []label.Group
	for i, s := range sets {
		line := label.Line{Parts: []label.Part{{Group: s, Mult: mult}}}.Normalize()
		if p.Passive.Includes(line) {
			witnesses = append(witnesses, s)
		}
		progress.Notify(h, "triviality", i+1, len(sets))
	}

	p.Trivial = &TrivialityResult{
		Trivial:     len(witnesses) > 0,
		WitnessSets: witnesses,
	}
}
