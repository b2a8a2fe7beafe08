package problem

import (
	"strconv"
	"strings"

	json "github.com/goccy/go-json"

	"github.com/katalvlaran/roundelim/bigset"
	"github.com/katalvlaran/roundelim/constraint"
	"github.com/katalvlaran/roundelim/label"
)

func textFor(in *label.Interner, l label.Label) string {
	if in != nil {
		if s, ok := in.Text(l); ok {
			return s
		}
	}
	return strconv.Itoa(int(l))
}

func formatGroup(g label.Group, in *label.Interner) string {
	var b strings.Builder
	for _, l := range g.Labels() {
		text := textFor(in, l)
		if len([]rune(text)) == 1 {
			b.WriteString(text)
		} else {
			b.WriteByte('(')
			b.WriteString(text)
			b.WriteByte(')')
		}
	}
	return b.String()
}

func formatPart(p label.Part, in *label.Interner) string {
	return formatGroup(p.Group, in) + p.Mult.String()
}

func formatLine(l label.Line, in *label.Interner) string {
	parts := make([]string, len(l.Parts))
	for i, p := range l.Parts {
		parts[i] = formatPart(p, in)
	}
	return strings.Join(parts, " ")
}

func formatConstraint(c constraint.Constraint, in *label.Interner) string {
	lines := make([]string, len(c.Lines))
	for i, l := range c.Lines {
		lines[i] = formatLine(l, in)
	}
	return strings.Join(lines, "\n")
}

// String renders p in the text format ParseText/FromText accept,
// substituting each label's interned text.
func (p Problem) String() string {
	return formatConstraint(p.Active, p.Interner) + "\n\n" + formatConstraint(p.Passive, p.Interner)
}

// wire* mirror Problem's fields in a form goccy/go-json can marshal
// directly: Group/Line/Interner hold unexported slices, so MarshalJSON
// goes through this flattened shape instead of relying on struct tags on
// the domain types themselves.

type wirePart struct {
	Group []int  `json:"group"`
	Kind  string `json:"kind"`
	N     int    `json:"n,omitempty"`
}

type wireLine struct {
	Parts []wirePart `json:"parts"`
}

type wireConstraint struct {
	Lines       []wireLine `json:"lines"`
	Degree      int        `json:"degree"`
	IsMaximized bool       `json:"is_maximized"`
}

type wireDiagram struct {
	Indirect      map[int][]int   `json:"indirect"`
	DirectMembers map[int][]int   `json:"direct_members"`
	DirectEdges   [][2]int        `json:"direct_edges"`
}

type wireProblem struct {
	Active    wireConstraint   `json:"active"`
	Passive   wireConstraint   `json:"passive"`
	LabelText map[int]string   `json:"label_text"`
	OldLabels map[int][]int    `json:"old_labels,omitempty"`
	Trivial   *TrivialityResultWire `json:"trivial,omitempty"`
	Coloring  *ColoringResult  `json:"coloring,omitempty"`
	Diagram   *wireDiagram     `json:"diagram,omitempty"`
}

// TrivialityResultWire is TrivialityResult with its Group witnesses
// flattened to plain label slices.
type TrivialityResultWire struct {
	Trivial     bool    `json:"trivial"`
	WitnessSets [][]int `json:"witness_sets"`
}

func multKind(m label.Multiplicity) string {
	switch m.Kind {
	case label.One:
		return "one"
	case label.Many:
		return "many"
	default:
		return "star"
	}
}

func multFromWire(kind string, n int) label.Multiplicity {
	switch kind {
	case "one":
		return label.OneMultiplicity()
	case "many":
		return label.ManyMultiplicity(n)
	default:
		return label.StarMultiplicity()
	}
}

func toWirePart(p label.Part) wirePart {
	labels := p.Group.Labels()
	ints := make([]int, len(labels))
	for i, l := range labels {
		ints[i] = int(l)
	}
	return wirePart{Group: ints, Kind: multKind(p.Mult), N: p.Mult.N}
}

func fromWirePart(w wirePart) label.Part {
	labels := make([]label.Label, len(w.Group))
	for i, g := range w.Group {
		labels[i] = label.Label(g)
	}
	return label.Part{Group: label.NewGroup(labels...), Mult: multFromWire(w.Kind, w.N)}
}

func toWireLine(l label.Line) wireLine {
	parts := make([]wirePart, len(l.Parts))
	for i, p := range l.Parts {
		parts[i] = toWirePart(p)
	}
	return wireLine{Parts: parts}
}

func fromWireLine(w wireLine) label.Line {
	parts := make([]label.Part, len(w.Parts))
	for i, p := range w.Parts {
		parts[i] = fromWirePart(p)
	}
	return label.Line{Parts: parts}
}

func toWireConstraint(c constraint.Constraint) wireConstraint {
	lines := make([]wireLine, len(c.Lines))
	for i, l := range c.Lines {
		lines[i] = toWireLine(l)
	}
	return wireConstraint{Lines: lines, Degree: c.Degree, IsMaximized: c.IsMaximized}
}

func fromWireConstraint(w wireConstraint) constraint.Constraint {
	lines := make([]label.Line, len(w.Lines))
	for i, l := range w.Lines {
		lines[i] = fromWireLine(l)
	}
	return constraint.Constraint{Lines: lines, Degree: w.Degree, IsMaximized: w.IsMaximized}
}

func toWireDiagram(d *DiagramResult) *wireDiagram {
	if d == nil {
		return nil
	}
	indirect := make(map[int][]int, len(d.Indirect))
	for a, set := range d.Indirect {
		indirect[int(a)] = set.Slice()
	}
	members := make(map[int][]int, len(d.DirectMembers))
	for rep, ms := range d.DirectMembers {
		ints := make([]int, len(ms))
		for i, m := range ms {
			ints[i] = int(m)
		}
		members[int(rep)] = ints
	}
	edges := make([][2]int, len(d.DirectEdges))
	for i, e := range d.DirectEdges {
		edges[i] = [2]int{int(e[0]), int(e[1])}
	}
	return &wireDiagram{Indirect: indirect, DirectMembers: members, DirectEdges: edges}
}

func fromWireDiagram(w *wireDiagram) *DiagramResult {
	if w == nil {
		return nil
	}
	indirect := make(map[label.Label]bigset.Set, len(w.Indirect))
	for a, bs := range w.Indirect {
		s := bigset.New()
		for _, b := range bs {
			s = s.With(b)
		}
		indirect[label.Label(a)] = s
	}
	members := make(map[label.Label][]label.Label, len(w.DirectMembers))
	for rep, ms := range w.DirectMembers {
		labels := make([]label.Label, len(ms))
		for i, m := range ms {
			labels[i] = label.Label(m)
		}
		members[label.Label(rep)] = labels
	}
	edges := make([][2]label.Label, len(w.DirectEdges))
	for i, e := range w.DirectEdges {
		edges[i] = [2]label.Label{label.Label(e[0]), label.Label(e[1])}
	}
	return &DiagramResult{Indirect: indirect, DirectMembers: members, DirectEdges: edges}
}

// MarshalJSON serializes every field listed in the external interfaces
// section: active, passive, the label/text map, the old-label record (if
// any), and whichever caches are populated.
func (p Problem) MarshalJSON() ([]byte, error) {
	w := wireProblem{
		Active:  toWireConstraint(p.Active),
		Passive: toWireConstraint(p.Passive),
	}
	if p.Interner != nil {
		w.LabelText = make(map[int]string, p.Interner.Len())
		for _, l := range p.Interner.Labels() {
			text, _ := p.Interner.Text(l)
			w.LabelText[int(l)] = text
		}
	}
	if p.OldLabels != nil {
		w.OldLabels = make(map[int][]int, len(p.OldLabels))
		for l, set := range p.OldLabels {
			w.OldLabels[int(l)] = set.Slice()
		}
	}
	if p.Trivial != nil {
		witnesses := make([][]int, len(p.Trivial.WitnessSets))
		for i, g := range p.Trivial.WitnessSets {
			labels := g.Labels()
			ints := make([]int, len(labels))
			for j, l := range labels {
				ints[j] = int(l)
			}
			witnesses[i] = ints
		}
		w.Trivial = &TrivialityResultWire{Trivial: p.Trivial.Trivial, WitnessSets: witnesses}
	}
	w.Coloring = p.Coloring
	w.Diagram = toWireDiagram(p.Diagram)
	return json.Marshal(w)
}

// UnmarshalJSON is the inverse of MarshalJSON; round-tripping
// Marshal/Unmarshal reproduces every field of the original Problem.
func (p *Problem) UnmarshalJSON(data []byte) error {
	var w wireProblem
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	in := label.NewInterner()
	if len(w.LabelText) > 0 {
		maxLabel := -1
		for l := range w.LabelText {
			if l > maxLabel {
				maxLabel = l
			}
		}
		ordered := make([]string, maxLabel+1)
		for l, text := range w.LabelText {
			ordered[l] = text
		}
		for _, text := range ordered {
			in.Intern(text)
		}
	}

	p.Active = fromWireConstraint(w.Active)
	p.Passive = fromWireConstraint(w.Passive)
	p.Interner = in

	if w.OldLabels != nil {
		p.OldLabels = make(map[label.Label]bigset.Set, len(w.OldLabels))
		for l, members := range w.OldLabels {
			s := bigset.New()
			for _, m := range members {
				s = s.With(m)
			}
			p.OldLabels[label.Label(l)] = s
		}
	}
	if w.Trivial != nil {
		sets := make([]label.Group, len(w.Trivial.WitnessSets))
		for i, ints := range w.Trivial.WitnessSets {
			labels := make([]label.Label, len(ints))
			for j, v := range ints {
				labels[j] = label.Label(v)
			}
			sets[i] = label.NewGroup(labels...)
		}
		p.Trivial = &TrivialityResult{Trivial: w.Trivial.Trivial, WitnessSets: sets}
	}
	p.Coloring = w.Coloring
	p.Diagram = fromWireDiagram(w.Diagram)
	return nil
}
