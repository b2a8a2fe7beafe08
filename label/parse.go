package label

import (
	"fmt"
	"strconv"
	"strings"
)

// Interner assigns a fresh, stable Label to each distinct piece of label
// text seen while parsing a Problem, so the same character always maps
// to the same Label across the active and passive constraints.
type Interner struct {
	textToLabel map[string]Label
	labelText   []string
}

// NewInterner returns an empty Interner.
func NewInterner() *Interner {
	return &Interner{textToLabel: make(map[string]Label)}
}

// Intern returns text's Label, assigning it the next integer if text has
// not been seen before.
func (in *Interner) Intern(text string) Label {
	if l, ok := in.textToLabel[text]; ok {
		return l
	}
	l := Label(len(in.labelText))
	in.textToLabel[text] = l
	in.labelText = append(in.labelText, text)
	return l
}

// Text returns the text l was interned from, and whether l is known to
// in.
func (in *Interner) Text(l Label) (string, bool) {
	if int(l) < 0 || int(l) >= len(in.labelText) {
		return "", false
	}
	return in.labelText[l], true
}

// Len reports how many distinct labels have been interned.
func (in *Interner) Len() int { return len(in.labelText) }

// Labels returns every interned label, in assignment order.
func (in *Interner) Labels() []Label {
	out := make([]Label, len(in.labelText))
	for i := range out {
		out[i] = Label(i)
	}
	return out
}

// ParseLine parses one whitespace-separated line of tokens into a
// normalized Line, interning label text through in.
//
// Token grammar: part := group ('^' digits | '*')? ; group := (char |
// '(' char+ ')')+. Multi-character label names must be parenthesized.
func ParseLine(text string, in *Interner) (Line, error) {
	fields := strings.Fields(text)
	parts := make([]Part, 0, len(fields))
	for _, tok := range fields {
		p, err := parsePart(tok, in)
		if err != nil {
			return Line{}, err
		}
		parts = append(parts, p)
	}
	return Line{Parts: parts}.Normalize(), nil
}

func parsePart(tok string, in *Interner) (Part, error) {
	i := 0
	var labels []Label
	for i < len(tok) {
		c := tok[i]
		if c == '^' || c == '*' {
			break
		}
		if c == '(' {
			end := strings.IndexByte(tok[i+1:], ')')
			if end < 0 {
				return Part{}, fmt.Errorf("%w: unterminated '(' in %q", ErrParse, tok)
			}
			name := tok[i+1 : i+1+end]
			if name == "" {
				return Part{}, fmt.Errorf("%w: empty '()' in %q", ErrParse, tok)
			}
			labels = append(labels, in.Intern(name))
			i += 1 + end + 1
			continue
		}
		labels = append(labels, in.Intern(string(c)))
		i++
	}
	if len(labels) == 0 {
		return Part{}, fmt.Errorf("%w: token %q has no labels", ErrEmptyGroup, tok)
	}

	mult := OneMultiplicity()
	if i < len(tok) {
		switch tok[i] {
		case '*':
			if i != len(tok)-1 {
				return Part{}, fmt.Errorf("%w: trailing characters after '*' in %q", ErrParse, tok)
			}
			mult = StarMultiplicity()
		case '^':
			n, err := strconv.Atoi(tok[i+1:])
			if err != nil || n <= 0 {
				return Part{}, fmt.Errorf("%w: bad multiplicity suffix in %q", ErrBadMultiplicity, tok)
			}
			mult = ManyMultiplicity(n)
		}
	}
	return Part{Group: NewGroup(labels...), Mult: mult}, nil
}
