package property

import (
	"strings"
)

// TermAtom is one token of an unresolved value. An atom with an empty Variable
// is a literal Constant. Otherwise it references Variable (including the
// leading "--") and Constant is the optional fallback.
type TermAtom struct {
	Variable string
	Constant string
}

// Term is an ordered sequence of atoms. Resolved atoms are joined without any
// separator.
type Term []TermAtom

// Variables iterates referenced variable names in order, duplicates included.
func (t Term) Variables() []string {
	var names []string
	for _, a := range t {
		if a.Variable != "" {
			names = append(names, a.Variable)
		}
	}
	return names
}

// String reconstructs the authored form of the term.
func (t Term) String() string {
	var sb strings.Builder
	for _, a := range t {
		if a.Variable == "" {
			sb.WriteString(a.Constant)
			continue
		}
		sb.WriteString("var(")
		sb.WriteString(a.Variable)
		if a.Constant != "" {
			sb.WriteString(", ")
			sb.WriteString(a.Constant)
		}
		sb.WriteByte(')')
	}
	return sb.String()
}

// ParseTerm scans already split values for var(--name[, fallback]) references.
// The returned term always covers the full input, the boolean reports whether
// any reference was found.
func ParseTerm(values []string) (Term, bool) {
	var (
		term   Term
		anyVar bool
	)
	for _, value := range values {
		prev := 0
		for cursor := 0; cursor < len(value); {
			start, ok := varStart(value, cursor)
			if !ok {
				cursor++
				continue
			}
			if start > prev {
				term = append(term, TermAtom{Constant: value[prev:start]})
			}
			nameStart := start + len("var(")
			atom, end, ok := scanVar(value, nameStart)
			if ok {
				term = append(term, atom)
				anyVar = true
			}
			cursor = end
			prev = end
		}
		if prev < len(value) {
			term = append(term, TermAtom{Constant: value[prev:]})
		}
		term = append(term, TermAtom{Constant: " "})
	}
	if len(term) > 0 {
		term = term[:len(term)-1]
	}
	return term, anyVar
}

// varStart reports whether a "var(--" reference begins at or right after
// cursor, returning the offset of "var(".
func varStart(s string, cursor int) (int, bool) {
	at := cursor
	if cursor > 0 {
		switch s[cursor] {
		case ' ', '(', ',':
			at = cursor + 1
		default:
			return 0, false
		}
	}
	if strings.HasPrefix(s[at:], "var(--") {
		return at, true
	}
	return 0, false
}

// scanVar parses "--name)" or "--name, fallback)" starting at from. On a
// malformed reference the rest of the value is consumed without producing an
// atom.
func scanVar(s string, from int) (TermAtom, int, bool) {
	cursor := from
	for cursor < len(s) && s[cursor] != ',' && s[cursor] != ')' {
		cursor++
	}
	if cursor >= len(s) {
		return TermAtom{}, len(s), false
	}
	name := strings.TrimSpace(s[from:cursor])
	if s[cursor] == ')' {
		return TermAtom{Variable: name}, cursor + 1, true
	}
	cursor++
	fallbackStart := cursor
	depth := 0
	for cursor < len(s) {
		switch s[cursor] {
		case '(':
			depth++
		case ')':
			if depth == 0 {
				return TermAtom{Variable: name, Constant: strings.TrimSpace(s[fallbackStart:cursor])}, cursor + 1, true
			}
			depth--
		}
		cursor++
	}
	return TermAtom{}, len(s), false
}
