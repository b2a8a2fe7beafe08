package label

import (
	"strconv"
	"strings"
)

// Part is a Group tagged with how many positions of a Line it occupies.
type Part struct {
	Group Group
	Mult  Multiplicity
}

// IsStar reports whether p carries an unbounded multiplicity.
func (p Part) IsStar() bool { return p.Mult.Kind == Star }

// Equal reports whether p and o have the same group and multiplicity.
func (p Part) Equal(o Part) bool {
	return p.Group.Equal(o.Group) && p.Mult.Equal(o.Mult)
}

// Less orders Parts by Group first, then by Multiplicity, matching the
// canonical sort Line.Normalize produces.
func (p Part) Less(o Part) bool {
	if !p.Group.Equal(o.Group) {
		return p.Group.Less(o.Group)
	}
	return p.Mult.Less(o.Mult)
}

// String renders p using the raw integer value of each label, wrapped in
// parens; it is the fallback used when no Interner text mapping is
// available. Problem.String (problem/serial.go) substitutes each label's
// interned text instead so that
// round-elimination output shows the original alphabet.
func (p Part) String() string {
	var b strings.Builder
	for _, l := range p.Group.labels {
		b.WriteByte('(')
		b.WriteString(strconv.Itoa(int(l)))
		b.WriteByte(')')
	}
	b.WriteString(p.Mult.String())
	return b.String()
}
