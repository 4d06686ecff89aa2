package css

import (
	"fmt"
	"io"
	"strings"
)

// cssEscapeDoubleQuoted escapes a string for use inside CSS double quotes.
func cssEscapeDoubleQuoted(s string) string {
	if !strings.ContainsAny(s, `"\`) {
		return s
	}
	var b strings.Builder
	b.Grow(len(s) + 4)
	for _, r := range s {
		switch r {
		case '\\':
			b.WriteString(`\\`)
		case '"':
			b.WriteString(`\"`)
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Declaration is a single "name: value" pair. Names of regular properties are
// lower case, custom property names keep their spelling.
type Declaration struct {
	Name      string
	Value     string
	Important bool
}

// IsCustom reports whether the declaration defines a custom property.
func (d Declaration) IsCustom() bool {
	return strings.HasPrefix(d.Name, "--")
}

func (d Declaration) String() string {
	if d.Important {
		return d.Name + ": " + d.Value + " !important"
	}
	return d.Name + ": " + d.Value
}

// MediaQuery represents a parsed @media query condition.
type MediaQuery struct {
	Raw      string         // Original media query string
	Type     string         // Media type, empty when the query starts with a feature
	Negated  bool           // "not" applied to the whole query
	Features []MediaFeature // Conditions joined with "and"
}

// MediaFeature is a single parenthesized condition, "(min-width: 600px)".
type MediaFeature struct {
	Name    string
	Value   float64 // Pixels for sizes, unused for orientation
	Keyword string  // Orientation keyword
}

// Evaluate reports whether the query matches a viewport of the given size.
// Unknown media types and features never match.
func (mq MediaQuery) Evaluate(width, height float64) bool {
	var matches bool
	switch strings.ToLower(mq.Type) {
	case "", "all", "screen":
		matches = true
	default:
		matches = false
	}
	if matches {
		for _, f := range mq.Features {
			if !f.evaluate(width, height) {
				matches = false
				break
			}
		}
	}
	if mq.Negated {
		return !matches
	}
	return matches
}

func (f MediaFeature) evaluate(width, height float64) bool {
	switch f.Name {
	case "min-width":
		return width >= f.Value
	case "max-width":
		return width <= f.Value
	case "width":
		return width == f.Value
	case "min-height":
		return height >= f.Value
	case "max-height":
		return height <= f.Value
	case "height":
		return height == f.Value
	case "orientation":
		if f.Keyword == "portrait" {
			return height >= width
		}
		return f.Keyword == "landscape" && width > height
	}
	return false
}

// Combinator relates a selector to its ancestor selector.
type Combinator uint8

const (
	CombinatorNone       Combinator = iota // No ancestor
	CombinatorDescendant                   // "a b"
	CombinatorChild                        // "a > b"
)

// Compound is a run of simple selectors without combinators, e.g.
// "div#main.note:hover".
type Compound struct {
	Tag           string // Lower case element name, empty for any element
	ID            string
	Classes       []string
	PseudoClasses []string
}

// IsEmpty reports whether the compound matches any element.
func (c Compound) IsEmpty() bool {
	return c.Tag == "" && c.ID == "" && len(c.Classes) == 0 && len(c.PseudoClasses) == 0
}

// Specificity weights follow the usual (ids, classes, tags) ordering.
const (
	SpecificityID    = 1_000_000
	SpecificityClass = 1_000
	SpecificityTag   = 1
)

func (c Compound) specificity() int {
	s := len(c.Classes)*SpecificityClass + len(c.PseudoClasses)*SpecificityClass
	if c.ID != "" {
		s += SpecificityID
	}
	if c.Tag != "" {
		s += SpecificityTag
	}
	return s
}

// Selector is a compound with an optional chain of ancestors. For "ul > li a"
// the rightmost compound is "a", its Ancestor is "li" with a descendant
// combinator, whose Ancestor is "ul" with a child combinator.
type Selector struct {
	Raw string
	Compound
	Combinator Combinator
	Ancestor   *Selector
}

// Specificity sums the specificity of every compound in the chain.
func (s Selector) Specificity() int {
	n := s.specificity()
	for a := s.Ancestor; a != nil; a = a.Ancestor {
		n += a.specificity()
	}
	return n
}

// IsDescendant returns true if the selector has ancestor requirements.
func (s Selector) IsDescendant() bool {
	return s.Ancestor != nil
}

// Rule represents a single CSS rule (selector + declarations).
type Rule struct {
	Selector     Selector
	Declarations []Declaration
	Order        int // Position among all rules of the stylesheet
	SourceLine   int // Line number in source for error reporting
}

// Declaration returns the last declaration named name.
func (r Rule) Declaration(name string) (Declaration, bool) {
	for i := len(r.Declarations) - 1; i >= 0; i-- {
		if r.Declarations[i].Name == name {
			return r.Declarations[i], true
		}
	}
	return Declaration{}, false
}

// FontFace represents an @font-face declaration.
type FontFace struct {
	Family string
	Src    string
	Style  string
	Weight string
}

// StylesheetItem is a single top-level item in a stylesheet.
// Exactly one of the fields is non-nil.
type StylesheetItem struct {
	Rule       *Rule
	MediaBlock *MediaBlock
	FontFace   *FontFace
	Import     *string
}

// MediaBlock represents a @media block with its query and nested rules.
type MediaBlock struct {
	Query MediaQuery
	Rules []Rule
}

// Stylesheet represents a parsed CSS stylesheet.
type Stylesheet struct {
	Items    []StylesheetItem // All top-level items in source order
	Warnings []string         // Warnings for unsupported features
}

// Imports returns all @import URLs from the stylesheet in source order.
func (s *Stylesheet) Imports() []string {
	var urls []string
	for _, item := range s.Items {
		if item.Import != nil {
			urls = append(urls, *item.Import)
		}
	}
	return urls
}

// FontFaces returns all @font-face declarations with a family in source order.
func (s *Stylesheet) FontFaces() []FontFace {
	var faces []FontFace
	for _, item := range s.Items {
		if item.FontFace != nil && item.FontFace.Family != "" {
			faces = append(faces, *item.FontFace)
		}
	}
	return faces
}

// Rules returns the top-level rules and the rules of every media block whose
// query matches the viewport, in source order.
func (s *Stylesheet) Rules(width, height float64) []Rule {
	var rules []Rule
	for _, item := range s.Items {
		switch {
		case item.Rule != nil:
			rules = append(rules, *item.Rule)
		case item.MediaBlock != nil && item.MediaBlock.Query.Evaluate(width, height):
			rules = append(rules, item.MediaBlock.Rules...)
		}
	}
	return rules
}

// RulesBySelector returns all top-level rules matching the given selector string.
func (s *Stylesheet) RulesBySelector(selector string) []Rule {
	var matches []Rule
	for _, item := range s.Items {
		if item.Rule != nil && item.Rule.Selector.Raw == selector {
			matches = append(matches, *item.Rule)
		}
	}
	return matches
}

// WriteTo writes the stylesheet to w in source order, implementing io.WriterTo.
func (s *Stylesheet) WriteTo(w io.Writer) (int64, error) {
	var total int64
	for i, item := range s.Items {
		var n int
		var err error

		switch {
		case item.Import != nil:
			n, err = fmt.Fprintf(w, "@import url(\"%s\");\n", cssEscapeDoubleQuoted(*item.Import))
		case item.FontFace != nil:
			n, err = writeFontFace(w, item.FontFace)
		case item.MediaBlock != nil:
			n, err = writeMediaBlock(w, item.MediaBlock)
		case item.Rule != nil:
			n, err = writeRule(w, item.Rule, "")
		}

		total += int64(n)
		if err != nil {
			return total, err
		}

		if i < len(s.Items)-1 {
			n, err = fmt.Fprint(w, "\n")
			total += int64(n)
			if err != nil {
				return total, err
			}
		}
	}
	return total, nil
}

// String returns the CSS text of the stylesheet.
func (s *Stylesheet) String() string {
	var sb strings.Builder
	s.WriteTo(&sb) //nolint:errcheck
	return sb.String()
}

func writeRule(w io.Writer, rule *Rule, indent string) (int, error) {
	var total int
	n, err := fmt.Fprintf(w, "%s%s {\n", indent, rule.Selector.Raw)
	total += n
	if err != nil {
		return total, err
	}
	for _, d := range rule.Declarations {
		n, err = fmt.Fprintf(w, "%s  %s;\n", indent, d)
		total += n
		if err != nil {
			return total, err
		}
	}
	n, err = fmt.Fprintf(w, "%s}\n", indent)
	total += n
	return total, err
}

func writeFontFace(w io.Writer, ff *FontFace) (int, error) {
	var total int
	n, err := fmt.Fprint(w, "@font-face {\n")
	total += n
	if err != nil {
		return total, err
	}

	lines := []struct{ format, value string }{
		{"  font-family: \"%s\";\n", cssEscapeDoubleQuoted(ff.Family)},
		{"  src: %s;\n", ff.Src},
		{"  font-style: %s;\n", ff.Style},
		{"  font-weight: %s;\n", ff.Weight},
	}
	for _, l := range lines {
		if l.value == "" {
			continue
		}
		n, err = fmt.Fprintf(w, l.format, l.value)
		total += n
		if err != nil {
			return total, err
		}
	}

	n, err = fmt.Fprint(w, "}\n")
	total += n
	return total, err
}

func writeMediaBlock(w io.Writer, mb *MediaBlock) (int, error) {
	var total int
	n, err := fmt.Fprintf(w, "@media %s {\n", mb.Query.Raw)
	total += n
	if err != nil {
		return total, err
	}

	for i := range mb.Rules {
		n, err = writeRule(w, &mb.Rules[i], "  ")
		total += n
		if err != nil {
			return total, err
		}
		if i < len(mb.Rules)-1 {
			n, err = fmt.Fprint(w, "\n")
			total += n
			if err != nil {
				return total, err
			}
		}
	}

	n, err = fmt.Fprint(w, "}\n")
	total += n
	return total, err
}
