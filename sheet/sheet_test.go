package sheet_test

import (
	"errors"
	"slices"
	"strings"
	"testing"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"rcss/css"
	"rcss/property"
	"rcss/sheet"
)

type el struct {
	tag, id string
	classes []string
	pseudo  []string
	parent  *el
}

func (e *el) Tag() string                       { return e.tag }
func (e *el) ID() string                        { return e.id }
func (e *el) IsClassSet(name string) bool       { return slices.Contains(e.classes, name) }
func (e *el) IsPseudoClassSet(name string) bool { return slices.Contains(e.pseudo, name) }
func (e *el) Parent() sheet.Element {
	if e.parent == nil {
		return nil
	}
	return e.parent
}

var desktop = sheet.Viewport{Width: 1024, Height: 768}

func compile(t *testing.T, text string) *sheet.Sheet {
	t.Helper()
	ss := css.NewParser(zap.NewNop()).Parse([]byte(text), "test.css")
	s, err := sheet.Compile(ss, property.Default(), zap.NewNop())
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	return s
}

func propertyOf(t *testing.T, dict *property.Dictionary, id property.ID) string {
	t.Helper()
	p := dict.Property(id)
	if p == nil {
		return ""
	}
	return p.String()
}

func want(t *testing.T, id property.ID, value string) string {
	t.Helper()
	p, err := property.Default().ParsePropertyValue(id, value)
	if err != nil {
		t.Fatalf("ParsePropertyValue(%s, %q): %v", id, value, err)
	}
	return p.String()
}

func TestCompile_AggregatesErrors(t *testing.T) {
	ss := css.NewParser(zap.NewNop()).Parse([]byte(`p { width: banana; height: 10px; bogus: 1 }`))
	s, err := sheet.Compile(ss, nil, nil)
	if err == nil {
		t.Fatal("expected an error")
	}
	errs := multierr.Errors(err)
	if len(errs) != 2 {
		t.Fatalf("expected 2 errors, got %d: %v", len(errs), err)
	}
	if !errors.Is(errs[0], property.ErrInvalidValue) {
		t.Errorf("first error = %v, want invalid value", errs[0])
	}
	if !errors.Is(errs[1], property.ErrUnknownProperty) {
		t.Errorf("second error = %v, want unknown property", errs[1])
	}

	rules := s.Rules()
	if len(rules) != 1 {
		t.Fatalf("expected 1 rule, got %d", len(rules))
	}
	if got := propertyOf(t, rules[0].Normal, property.Height); got != want(t, property.Height, "10px") {
		t.Errorf("height = %q", got)
	}
	if rules[0].Normal.Property(property.Width) != nil {
		t.Error("invalid width was stored")
	}
}

func TestCompile_Nil(t *testing.T) {
	s, err := sheet.Compile(nil, nil, nil)
	if err != nil || len(s.Rules()) != 0 {
		t.Fatalf("Compile(nil) = %v, %v", s.Rules(), err)
	}
}

func TestMatch_Cascade(t *testing.T) {
	s := compile(t, `
p { width: 2px; height: 2px; color: red !important }
.a { width: 1px }
.a { height: 3px }
#x { color: blue }
`)
	e := &el{tag: "p", id: "x", classes: []string{"a"}}

	rules := s.Match(e, desktop)
	if len(rules) != 4 {
		t.Fatalf("expected 4 rules, got %d", len(rules))
	}
	for i := 1; i < len(rules); i++ {
		if rules[i-1].Specificity > rules[i].Specificity {
			t.Fatalf("rules not sorted by specificity")
		}
	}

	dict := sheet.Definition(rules)
	tests := []struct {
		id    property.ID
		value string
	}{
		{property.Width, "1px"},  // class beats tag
		{property.Height, "3px"}, // later rule wins a tie
		{property.Color, "red"},  // important beats id
	}
	for _, tt := range tests {
		if got := propertyOf(t, dict, tt.id); got != want(t, tt.id, tt.value) {
			t.Errorf("%s = %q, want %q", tt.id, got, tt.value)
		}
	}
}

func TestMatchSelector(t *testing.T) {
	root := &el{tag: "html"}
	list := &el{tag: "ul", classes: []string{"menu"}, parent: root}
	item := &el{tag: "li", pseudo: []string{"hover"}, parent: list}
	link := &el{tag: "a", parent: item}

	tests := []struct {
		selector string
		element  *el
		want     bool
	}{
		{"li", item, true},
		{"li", link, false},
		{"*", link, true},
		{"ul a", link, true},
		{"ul > a", link, false},
		{"ul > li > a", link, true},
		{".menu li:hover", item, true},
		{"li:active", item, false},
		{"html .menu a", link, true},
		{"li ul a", link, false},
		{":root", root, true},
		{":root", list, false},
		{"html > ul.menu", list, true},
	}

	for _, tt := range tests {
		ss := css.NewParser(nil).Parse([]byte(tt.selector + " {}"))
		rules := ss.Rules(0, 0)
		if len(rules) != 1 {
			t.Fatalf("%q: expected 1 rule, got %d", tt.selector, len(rules))
		}
		if got := sheet.MatchSelector(&rules[0].Selector, tt.element); got != tt.want {
			t.Errorf("%q on %s: got %v, want %v", tt.selector, tt.element.tag, got, tt.want)
		}
	}
}

func TestMatch_Media(t *testing.T) {
	s := compile(t, `
div { width: 1px }
@media (max-width: 600px) { div { width: 2px } }
`)
	e := &el{tag: "div"}
	if got := len(s.Match(e, desktop)); got != 1 {
		t.Errorf("desktop matched %d rules", got)
	}
	phone := sheet.Viewport{Width: 360, Height: 640}
	dict := sheet.Definition(s.Match(e, phone))
	if got := propertyOf(t, dict, property.Width); got != want(t, property.Width, "2px") {
		t.Errorf("phone width = %q", got)
	}
}

func TestDefinition_Variables(t *testing.T) {
	s := compile(t, `
:root { --accent: red; --gap: 4px }
.dark { --accent: blue }
`)
	root := &el{tag: "html", classes: []string{"dark"}}
	dict := sheet.Definition(s.Match(root, desktop))
	if v := dict.Variable("--accent"); v == nil || v.String() != "blue" {
		t.Errorf("--accent = %v", v)
	}
	if v := dict.Variable("--gap"); v == nil {
		t.Error("--gap missing")
	}
}

func TestCache_SharesDefinitions(t *testing.T) {
	s := compile(t, `p { color: red } .a { width: 1px }`)
	c := sheet.NewCache(s, zap.NewNop())

	a := &el{tag: "p", classes: []string{"a"}}
	b := &el{tag: "p", classes: []string{"a"}}
	other := &el{tag: "p"}
	none := &el{tag: "div"}

	da := c.Definition(a, desktop)
	db := c.Definition(b, desktop)
	if da == nil || da != db {
		t.Fatalf("expected shared definition, got %p and %p", da, db)
	}
	if c.Definition(other, desktop) == da {
		t.Error("different rule set shares a definition")
	}
	if c.Definition(none, desktop) != nil {
		t.Error("unmatched element got a definition")
	}
	if c.Len() != 2 {
		t.Errorf("Len = %d, want 2", c.Len())
	}
	if hits, misses := c.Stats(); hits != 1 || misses != 2 {
		t.Errorf("Stats = %d/%d, want 1/2", hits, misses)
	}

	c.Clear()
	if c.Len() != 0 || c.Definition(a, desktop) == da {
		t.Error("Clear kept definitions")
	}
}

func TestSheet_Listing(t *testing.T) {
	s := compile(t, `
p { width: 10px; --gap: 4px }
@media (max-width: 500px) { .note { color: red !important } }
@font-face { font-family: Lato; src: url(lato.ttf) }
`)
	got := s.Listing()
	for _, line := range []string{
		"p  [specificity 1, order 0, line 2]\n",
		"  width: 10px\n",
		"  --gap: ",
		"@media (max-width:",
		"  color !important: rgba(255,0,0,255)\n",
		"@font-face\n  font-family: Lato\n",
	} {
		if !strings.Contains(got, line) {
			t.Errorf("listing lacks %q:\n%s", line, got)
		}
	}

	var none *sheet.Sheet
	if none.Listing() != "" {
		t.Error("nil sheet listing is not empty")
	}
}
