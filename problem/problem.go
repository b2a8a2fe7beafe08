package problem

import (
	"github.com/katalvlaran/roundelim/bigset"
	"github.com/katalvlaran/roundelim/constraint"
	"github.com/katalvlaran/roundelim/label"
)

// TrivialityResult is the cached outcome of ComputeTriviality.
type TrivialityResult struct {
	Trivial     bool
	WitnessSets []label.Group
}

// ColoringResult is the cached outcome of ComputeColoringSolvability.
type ColoringResult struct {
	CliqueSize int
}

// DiagramResult is the cached outcome of ComputeDiagram.
//
// Indirect[a] is the reflexive, transitive set of labels b such that
// (a,b) is a diagram_indirect pair (a precedes b). DirectMembers maps
// each SCC representative to its full membership (singletons included);
// DirectEdges lists the transitively-reduced edges between
// representatives.
type DiagramResult struct {
	Indirect      map[label.Label]bigset.Set
	DirectMembers map[label.Label][]label.Label
	DirectEdges   [][2]label.Label
}

// Problem is the active/passive constraint pair this module revolves
// around, plus the label/text mapping, an optional old-label record left
// by Speedup, and the three derived-result caches.
//
// Every field but the caches is set at construction (FromText or a
// transformation) and never mutated afterward; the caches start nil and
// are filled in place by the Compute* methods, which panic if called
// when already filled.
type Problem struct {
	Active  constraint.Constraint
	Passive constraint.Constraint

	Interner  *label.Interner
	OldLabels map[label.Label]bigset.Set

	Trivial  *TrivialityResult
	Coloring *ColoringResult
	Diagram  *DiagramResult
}

// cloned returns a copy of p with every derived-result cache cleared,
// the shape every pure transformation (Speedup, Relax*, Harden*,
// MergeEquivalentLabels, Rename) returns.
func (p Problem) cloned(active, passive constraint.Constraint, interner *label.Interner, oldLabels map[label.Label]bigset.Set) Problem {
	return Problem{
		Active:    active,
		Passive:   passive,
		Interner:  interner,
		OldLabels: oldLabels,
	}
}

// LabelText returns l's display text, or, if unmapped, its integer in
// Group.String form ("{n}").
func (p Problem) LabelText(l label.Label) string {
	if p.Interner != nil {
		if s, ok := p.Interner.Text(l); ok {
			return s
		}
	}
	return label.NewGroup(l).String()
}

// Labels returns every label known to p's interner.
func (p Problem) Labels() []label.Label {
	if p.Interner == nil {
		return nil
	}
	return p.Interner.Labels()
}
