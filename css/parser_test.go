package css_test

import (
	"slices"
	"strings"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"rcss/css"
)

// allRules collects all top-level rules from a stylesheet's Items.
// It does NOT flatten @media blocks.
func allRules(sheet *css.Stylesheet) []css.Rule {
	var rules []css.Rule
	for _, item := range sheet.Items {
		if item.Rule != nil {
			rules = append(rules, *item.Rule)
		}
	}
	return rules
}

func parse(t *testing.T, text string) *css.Stylesheet {
	t.Helper()
	return css.NewParser(zap.NewNop()).Parse([]byte(text), "test.css")
}

func TestParser_Rules(t *testing.T) {
	sheet := parse(t, `
p { color: red; margin: 1px 2px }
.note, h1 { font-size: 2em !important; }
`)
	rules := allRules(sheet)
	if len(rules) != 3 {
		t.Fatalf("expected 3 rules, got %d", len(rules))
	}

	p := rules[0]
	if p.Selector.Tag != "p" || p.Order != 0 {
		t.Errorf("unexpected first rule %+v", p)
	}
	if p.SourceLine != 2 {
		t.Errorf("SourceLine = %d, want 2", p.SourceLine)
	}
	want := []css.Declaration{
		{Name: "color", Value: "red"},
		{Name: "margin", Value: "1px 2px"},
	}
	if !slices.Equal(p.Declarations, want) {
		t.Errorf("declarations = %v, want %v", p.Declarations, want)
	}

	for i, sel := range []string{".note", "h1"} {
		r := rules[i+1]
		if r.Selector.Raw != sel {
			t.Errorf("rule %d selector = %q, want %q", i+1, r.Selector.Raw, sel)
		}
		if r.Order != i+1 {
			t.Errorf("rule %d order = %d", i+1, r.Order)
		}
		d, ok := r.Declaration("font-size")
		if !ok || d.Value != "2em" || !d.Important {
			t.Errorf("rule %d font-size = %+v", i+1, d)
		}
	}
}

func TestParser_CustomProperties(t *testing.T) {
	sheet := parse(t, `:root {
  --main-color: #f00;
  --gap: 4px !important;
  --Mixed-Case:  a  b ;
  color: var(--main-color, blue);
}`)
	rules := allRules(sheet)
	if len(rules) != 1 {
		t.Fatalf("expected 1 rule, got %d", len(rules))
	}
	r := rules[0]
	if !slices.Equal(r.Selector.PseudoClasses, []string{"root"}) || r.Selector.Tag != "" {
		t.Errorf("unexpected selector %+v", r.Selector)
	}

	tests := []struct {
		name      string
		value     string
		important bool
	}{
		{"--main-color", "#f00", false},
		{"--gap", "4px", true},
		{"--Mixed-Case", "a  b", false},
	}
	for _, tt := range tests {
		d, ok := r.Declaration(tt.name)
		if !ok {
			t.Errorf("%s missing", tt.name)
			continue
		}
		if !d.IsCustom() {
			t.Errorf("%s not reported as custom", tt.name)
		}
		if d.Value != tt.value || d.Important != tt.important {
			t.Errorf("%s = %q important=%v, want %q important=%v", tt.name, d.Value, d.Important, tt.value, tt.important)
		}
	}

	d, ok := r.Declaration("color")
	if !ok {
		t.Fatal("color missing")
	}
	if !strings.HasPrefix(d.Value, "var(--main-color") || !strings.HasSuffix(d.Value, "blue)") {
		t.Errorf("color = %q", d.Value)
	}
}

func TestParser_Selectors(t *testing.T) {
	tests := []struct {
		selector    string
		tag, id     string
		classes     []string
		pseudo      []string
		combinator  css.Combinator
		ancestor    string
		specificity int
	}{
		{selector: "div", tag: "div", specificity: 1},
		{selector: "DIV", tag: "div", specificity: 1},
		{selector: "#main", id: "main", specificity: css.SpecificityID},
		{selector: "*", specificity: 0},
		{
			selector: "div.note.big:hover", tag: "div",
			classes: []string{"note", "big"}, pseudo: []string{"hover"},
			specificity: 1 + 3*css.SpecificityClass,
		},
		{
			selector: "ul li", tag: "li",
			combinator: css.CombinatorDescendant, ancestor: "ul",
			specificity: 2,
		},
		{
			selector: "ul > li.x", tag: "li", classes: []string{"x"},
			combinator: css.CombinatorChild, ancestor: "ul",
			specificity: 2 + css.SpecificityClass,
		},
		{
			selector: "#a .b > p", tag: "p",
			combinator: css.CombinatorChild, ancestor: "#a .b",
			specificity: css.SpecificityID + css.SpecificityClass + 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.selector, func(t *testing.T) {
			sheet := parse(t, tt.selector+" { color: red }")
			rules := allRules(sheet)
			if len(rules) != 1 {
				t.Fatalf("expected 1 rule, got %d (warnings %v)", len(rules), sheet.Warnings)
			}
			sel := rules[0].Selector
			if sel.Tag != tt.tag || sel.ID != tt.id {
				t.Errorf("tag/id = %q/%q, want %q/%q", sel.Tag, sel.ID, tt.tag, tt.id)
			}
			if !slices.Equal(sel.Classes, tt.classes) {
				t.Errorf("classes = %v, want %v", sel.Classes, tt.classes)
			}
			if !slices.Equal(sel.PseudoClasses, tt.pseudo) {
				t.Errorf("pseudo = %v, want %v", sel.PseudoClasses, tt.pseudo)
			}
			if sel.Combinator != tt.combinator {
				t.Errorf("combinator = %v, want %v", sel.Combinator, tt.combinator)
			}
			switch {
			case tt.ancestor == "" && sel.Ancestor != nil:
				t.Errorf("unexpected ancestor %q", sel.Ancestor.Raw)
			case tt.ancestor != "" && (sel.Ancestor == nil || sel.Ancestor.Raw != tt.ancestor):
				t.Errorf("ancestor = %+v, want %q", sel.Ancestor, tt.ancestor)
			}
			if got := sel.Specificity(); got != tt.specificity {
				t.Errorf("specificity = %d, want %d", got, tt.specificity)
			}
		})
	}
}

func TestParser_UnsupportedSelectors(t *testing.T) {
	for _, sel := range []string{"a + b", "a ~ b", "a[href]", "p::before", ":not(.x)", "li:nth-child(2)"} {
		t.Run(sel, func(t *testing.T) {
			sheet := parse(t, sel+" { color: red } h1 { color: blue }")
			rules := allRules(sheet)
			if len(rules) != 1 || rules[0].Selector.Tag != "h1" {
				t.Fatalf("expected only the h1 rule, got %+v", rules)
			}
			if len(sheet.Warnings) == 0 {
				t.Error("expected a warning")
			}
		})
	}
}

func TestParser_GroupKeepsSupportedSelectors(t *testing.T) {
	sheet := parse(t, "a[href], p { color: red }")
	rules := allRules(sheet)
	if len(rules) != 1 || rules[0].Selector.Raw != "p" {
		t.Fatalf("expected only p, got %+v", rules)
	}
}

func TestParser_MediaBlocks(t *testing.T) {
	sheet := parse(t, `
.base { width: 1px }
@media screen and (min-width: 600px) { .wide { width: 100px } }
@media (max-width: 599px) { .narrow { width: 10px } }
`)
	if len(sheet.Items) != 3 {
		t.Fatalf("expected 3 items, got %d", len(sheet.Items))
	}
	mb := sheet.Items[1].MediaBlock
	if mb == nil {
		t.Fatal("expected media block")
	}
	if mb.Query.Type != "screen" || len(mb.Query.Features) != 1 {
		t.Fatalf("unexpected query %+v", mb.Query)
	}
	if f := mb.Query.Features[0]; f.Name != "min-width" || f.Value != 600 {
		t.Errorf("unexpected feature %+v", f)
	}

	names := func(rules []css.Rule) []string {
		var out []string
		for _, r := range rules {
			out = append(out, r.Selector.Raw)
		}
		return out
	}
	if got := names(sheet.Rules(800, 600)); !slices.Equal(got, []string{".base", ".wide"}) {
		t.Errorf("wide viewport rules = %v", got)
	}
	if got := names(sheet.Rules(320, 480)); !slices.Equal(got, []string{".base", ".narrow"}) {
		t.Errorf("narrow viewport rules = %v", got)
	}

	orders := sheet.Rules(800, 600)
	if orders[1].Order <= orders[0].Order {
		t.Errorf("media rule order %d not after %d", orders[1].Order, orders[0].Order)
	}
}

func TestMediaQuery_Evaluate(t *testing.T) {
	tests := []struct {
		name string
		mq   css.MediaQuery
		w, h float64
		want bool
	}{
		{"empty", css.MediaQuery{}, 100, 100, true},
		{"all", css.MediaQuery{Type: "all"}, 100, 100, true},
		{"print", css.MediaQuery{Type: "print"}, 100, 100, false},
		{"not print", css.MediaQuery{Type: "print", Negated: true}, 100, 100, true},
		{"max-width hit", css.MediaQuery{Features: []css.MediaFeature{{Name: "max-width", Value: 500}}}, 500, 100, true},
		{"max-width miss", css.MediaQuery{Features: []css.MediaFeature{{Name: "max-width", Value: 500}}}, 501, 100, false},
		{"min-height", css.MediaQuery{Features: []css.MediaFeature{{Name: "min-height", Value: 200}}}, 100, 199, false},
		{"portrait", css.MediaQuery{Features: []css.MediaFeature{{Name: "orientation", Keyword: "portrait"}}}, 100, 200, true},
		{"landscape", css.MediaQuery{Features: []css.MediaFeature{{Name: "orientation", Keyword: "landscape"}}}, 100, 200, false},
		{"unknown feature", css.MediaQuery{Features: []css.MediaFeature{{}}}, 100, 200, false},
	}
	for _, tt := range tests {
		if got := tt.mq.Evaluate(tt.w, tt.h); got != tt.want {
			t.Errorf("%s: Evaluate(%v, %v) = %v, want %v", tt.name, tt.w, tt.h, got, tt.want)
		}
	}
}

func TestParser_FontFaceAndImport(t *testing.T) {
	sheet := parse(t, `@import url("base.css");
@font-face { font-family: "Lato"; src: url(lato.ttf); font-weight: bold }
@font-face { src: url(nameless.ttf) }
`)
	if got := sheet.Imports(); !slices.Equal(got, []string{"base.css"}) {
		t.Errorf("imports = %v", got)
	}
	faces := sheet.FontFaces()
	if len(faces) != 1 {
		t.Fatalf("expected 1 font face, got %d", len(faces))
	}
	if faces[0].Family != "Lato" || faces[0].Weight != "bold" || !strings.Contains(faces[0].Src, "lato.ttf") {
		t.Errorf("unexpected face %+v", faces[0])
	}
	if len(sheet.Warnings) != 1 {
		t.Errorf("expected a warning for the nameless face, got %v", sheet.Warnings)
	}
}

func TestParser_SkipsUnknownAtRules(t *testing.T) {
	sheet := parse(t, `@keyframes spin { from { opacity: 0 } to { opacity: 1 } }
p { color: red }`)
	rules := allRules(sheet)
	if len(rules) != 1 || rules[0].Selector.Tag != "p" {
		t.Fatalf("expected only p, got %+v", rules)
	}
}

func TestParser_RecoversFromBadDeclaration(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	p := css.NewParser(zap.New(core))

	sheet := p.Parse([]byte("p { color red; margin: 0 }\nh1 { color: blue }"), "bad.css")
	rules := allRules(sheet)
	if len(rules) != 2 {
		t.Fatalf("expected 2 rules, got %d", len(rules))
	}
	if _, ok := rules[0].Declaration("color"); ok {
		t.Error("malformed declaration was kept")
	}
	if d, ok := rules[0].Declaration("margin"); !ok || d.Value != "0" {
		t.Errorf("margin = %+v", d)
	}
	if logs.FilterMessage("CSS parse error").Len() == 0 {
		t.Error("expected parse error to be logged")
	}
	for _, e := range logs.All() {
		if e.LoggerName != "css-parser" {
			t.Errorf("logger name = %q", e.LoggerName)
		}
	}
}

func TestParser_ParseInline(t *testing.T) {
	p := css.NewParser(nil)
	decls := p.ParseInline([]byte("color: red; --x: 1px !important; width: var(--x) !important"))
	want := []css.Declaration{
		{Name: "color", Value: "red"},
		{Name: "--x", Value: "1px", Important: true},
		{Name: "width", Value: "var(--x)", Important: true},
	}
	if !slices.Equal(decls, want) {
		t.Errorf("ParseInline = %v, want %v", decls, want)
	}
	if got := p.ParseInline(nil); len(got) != 0 {
		t.Errorf("empty input gave %v", got)
	}
}

func TestStylesheet_WriteTo(t *testing.T) {
	sheet := parse(t, `@import "a.css";
p , div>span { color: red; width: 1px !important }
@media (min-width: 10px) { .x { --v: 1 } }
@font-face { font-family: "Lato"; font-style: Italic }
`)
	want := `@import url("a.css");

p {
  color: red;
  width: 1px !important;
}

div > span {
  color: red;
  width: 1px !important;
}

@media ` + sheet.Items[3].MediaBlock.Query.Raw + ` {
  .x {
    --v: 1;
  }
}

@font-face {
  font-family: "Lato";
  font-style: italic;
}
`
	if got := sheet.String(); got != want {
		t.Errorf("String() =\n%s\nwant\n%s", got, want)
	}
}
