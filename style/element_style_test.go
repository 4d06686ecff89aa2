package style

import (
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"rcss/property"
)

func TestComputeValuesIdempotent(t *testing.T) {
	root := newNode("body", nil)
	root.set(t, "color: red; width: 10px")

	if changed := root.compute(); !changed.Contains(property.Color) || !changed.Contains(property.Width) {
		t.Fatalf("first compute changed = %s, want color and width", changed)
	}
	if changed := root.compute(); !changed.Empty() {
		t.Fatalf("second compute changed = %s, want empty", changed)
	}
	if root.style.AnyPropertiesDirty() {
		t.Errorf("dirty sets not cleared")
	}
}

func TestInlineBeatsDefinition(t *testing.T) {
	n := newNode("div", nil)
	n.style.UpdateDefinition(definition(t, "color: blue"))
	n.set(t, "color: red")
	n.compute()

	if got := n.values.Inherited.Color; got != red {
		t.Fatalf("color = %v, want %v", got, red)
	}
	if got := n.style.Property(property.Color).Colour(); got != red {
		t.Errorf("Property(color) = %v, want %v", got, red)
	}

	n.style.RemoveProperty(property.Color)
	changed := n.compute()
	if !changed.Contains(property.Color) {
		t.Errorf("changed = %s, want color", changed)
	}
	if got := n.values.Inherited.Color; got != blue {
		t.Errorf("color after remove = %v, want %v", got, blue)
	}
}

func TestInheritanceThreeLevels(t *testing.T) {
	root := newNode("body", nil)
	mid := newNode("div", root)
	leaf := newNode("p", mid)
	root.set(t, "color: red; width: 50px")

	root.computeTree()

	if got := leaf.values.Inherited.Color; got != red {
		t.Errorf("leaf color = %v, want %v", got, red)
	}
	if got := leaf.style.Property(property.Color).Colour(); got != red {
		t.Errorf("leaf Property(color) = %v, want %v", got, red)
	}
	// not inherited
	if got := leaf.values.Common.Width; got.Type != Auto {
		t.Errorf("leaf width = %+v, want auto", got)
	}
	if got := leaf.style.Property(property.Width); got.Unit != property.UnitKeyword {
		t.Errorf("leaf Property(width) = %s, want default keyword", got)
	}

	other := newNode("span", nil)
	if got := other.style.Property(property.Color).Colour(); got != (property.Colour{R: 255, G: 255, B: 255, A: 255}) {
		t.Errorf("unset color = %v, want default white", got)
	}
}

func TestColorPropagation(t *testing.T) {
	a := newNode("a", nil)
	b := newNode("b", a)
	a.set(t, "color: red")

	a.compute()
	b.compute()
	if got := b.values.Inherited.Color; got != red {
		t.Fatalf("b color = %v, want %v", got, red)
	}

	a.set(t, "color: blue")
	changed := a.compute()
	if !changed.Contains(property.Color) {
		t.Fatalf("a changed = %s, want color", changed)
	}
	if !b.style.dirtyProperties.Contains(property.Color) {
		t.Fatalf("color not pushed to child, dirty = %s", b.style.dirtyProperties)
	}
	if got := b.values.Inherited.Color; got != red {
		t.Errorf("b color before own compute = %v, want %v", got, red)
	}
	b.compute()
	if got := b.values.Inherited.Color; got != blue {
		t.Errorf("b color = %v, want %v", got, blue)
	}
}

func TestVariableCycleTerminates(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	n := newNode("div", nil, WithLogger(zap.New(core)))
	n.set(t, "--a: var(--b, red); --b: var(--a, blue); color: var(--a); background-color: var(--b)")

	n.compute()

	if got := n.values.Inherited.Color; got != blue {
		t.Errorf("color = %v, want %v", got, blue)
	}
	if got := n.values.Common.BackgroundColor; got != blue {
		t.Errorf("background-color = %v, want %v", got, blue)
	}
	for _, name := range []string{"--a", "--b"} {
		if v := n.style.Variable(name); v == nil || v.IsTerm() {
			t.Errorf("variable %s left unresolved: %v", name, v)
		}
	}
	if got := logs.FilterMessage("Variable reference cycle").Len(); got != 1 {
		t.Errorf("cycle reports = %d, want 1", got)
	}
}

func TestVariableCycleReportLevel(t *testing.T) {
	tests := []struct {
		name    string
		level   zapcore.Level
		enabled bool
		want    int
	}{
		// below the logger level
		{"debug", zapcore.DebugLevel, true, 0},
		{"warn", zapcore.WarnLevel, true, 1},
		{"none", zapcore.WarnLevel, false, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			core, logs := observer.New(zapcore.InfoLevel)
			n := newNode("div", nil, WithLogger(zap.New(core)), WithCycleReport(tt.level, tt.enabled))
			n.set(t, "--a: var(--a, 1px); width: var(--a)")
			n.compute()

			if got := logs.FilterMessage("Variable reference cycle").Len(); got != tt.want {
				t.Errorf("cycle reports = %d, want %d", got, tt.want)
			}
			if got := n.values.Common.Width; got != (LengthPercentageAuto{Type: Length, Value: 1}) {
				t.Errorf("width = %+v, want 1px", got)
			}
		})
	}
}

func TestFontSizeReresolvesEm(t *testing.T) {
	n := newNode("div", nil)
	n.set(t, "font-size: 10px; width: 2em")
	n.compute()
	if got := n.values.Common.Width.Value; got != 20 {
		t.Fatalf("width = %v, want 20", got)
	}

	n.set(t, "font-size: 20px")
	changed := n.compute()
	if got := n.values.Common.Width.Value; got != 40 {
		t.Errorf("width = %v, want 40", got)
	}
	for _, id := range []property.ID{property.FontSize, property.Width, property.LineHeight} {
		if !changed.Contains(id) {
			t.Errorf("changed = %s, missing %s", changed, id)
		}
	}
	if got := n.values.Inherited.LineHeight.Value; got != 24 {
		t.Errorf("line-height = %v, want 24", got)
	}
}

func TestFontSizeRelativeUnits(t *testing.T) {
	tests := []struct {
		value string
		want  float64
	}{
		{"10px", 10},
		{"2em", 40},
		{"50%", 10},
		{"2rem", 60},
		{"1in", 96},
	}
	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			root := newNode("body", nil)
			root.set(t, "font-size: 30px")
			mid := newNode("div", root)
			mid.set(t, "font-size: 20px")
			leaf := newNode("p", mid)
			leaf.set(t, "font-size: "+tt.value)
			root.computeTree()

			if got := leaf.values.Inherited.FontSize; got != tt.want {
				t.Errorf("font-size = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestLineHeightInheritance(t *testing.T) {
	root := newNode("body", nil)
	root.set(t, "font-size: 10px; line-height: 2")
	child := newNode("div", root)
	child.set(t, "font-size: 20px")
	fixed := newNode("span", root)
	root.computeTree()

	if got := child.values.Inherited.LineHeight.Value; got != 40 {
		t.Errorf("number line-height = %v, want 40", got)
	}

	root.set(t, "line-height: 15px")
	root.computeTree()
	if got := child.values.Inherited.LineHeight.Value; got != 15 {
		t.Errorf("length line-height = %v, want 15", got)
	}
	if got := fixed.values.Inherited.LineHeight.Value; got != 15 {
		t.Errorf("sibling line-height = %v, want 15", got)
	}
}

func TestVariableDependentProperty(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	n := newNode("div", nil, WithLogger(zap.New(core)))
	n.set(t, "--w: 10px; width: var(--w)")
	n.compute()
	if got := n.values.Common.Width.Value; got != 10 {
		t.Fatalf("width = %v, want 10", got)
	}

	n.set(t, "--w: 25%")
	changed := n.compute()
	if !changed.Contains(property.Width) {
		t.Errorf("changed = %s, want width", changed)
	}
	if got := n.values.Common.Width; got != (LengthPercentageAuto{Type: Percentage, Value: 25}) {
		t.Errorf("width = %+v, want 25%%", got)
	}

	// a bad value keeps the previous one
	n.set(t, "--w: bogus")
	n.compute()
	if got := n.values.Common.Width; got != (LengthPercentageAuto{Type: Percentage, Value: 25}) {
		t.Errorf("width after bad value = %+v, want 25%%", got)
	}
	if got := logs.FilterMessage("Failed to parse variable dependent property").Len(); got != 1 {
		t.Errorf("parse failures logged = %d, want 1", got)
	}
}

func TestVariableChain(t *testing.T) {
	n := newNode("div", nil)
	n.set(t, "--a: 5px; --b: var(--a); width: var(--b)")
	n.compute()
	if got := n.values.Common.Width.Value; got != 5 {
		t.Fatalf("width = %v, want 5", got)
	}

	n.set(t, "--a: 7px")
	n.compute()
	if got := n.values.Common.Width.Value; got != 7 {
		t.Errorf("width = %v, want 7", got)
	}
}

func TestVariableFromAncestor(t *testing.T) {
	root := newNode("body", nil)
	root.set(t, "--c: red")
	child := newNode("div", root)
	child.set(t, "background-color: var(--c, blue)")
	root.computeTree()
	if got := child.values.Common.BackgroundColor; got != red {
		t.Fatalf("background-color = %v, want %v", got, red)
	}

	root.set(t, "--c: green")
	root.computeTree()
	if got := child.values.Common.BackgroundColor; got != green {
		t.Errorf("background-color = %v, want %v", got, green)
	}

	root.style.RemoveVariable("--c")
	root.computeTree()
	if got := child.values.Common.BackgroundColor; got != blue {
		t.Errorf("background-color after remove = %v, want fallback %v", got, blue)
	}
}

func TestUnresolvedVariable(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	n := newNode("div", nil, WithLogger(zap.New(core)))
	n.set(t, "width: var(--missing)")
	n.compute()

	if got := logs.FilterMessage("Unresolved variable, no fallback provided").Len(); got != 1 {
		t.Errorf("unresolved reports = %d, want 1", got)
	}
	if got := n.values.Common.Width.Type; got != Auto {
		t.Errorf("width type = %v, want auto", got)
	}
}

func TestDependentShorthand(t *testing.T) {
	n := newNode("div", nil)
	n.set(t, "--m: 4px 8px; margin: var(--m)")
	n.compute()

	want := [4]float64{4, 8, 4, 8}
	got := [4]float64{n.values.Common.MarginTop.Value, n.values.Common.MarginRight.Value, n.values.Common.MarginBottom.Value, n.values.Common.MarginLeft.Value}
	if got != want {
		t.Fatalf("margins = %v, want %v", got, want)
	}

	n.set(t, "--m: 1px")
	changed := n.compute()
	for _, id := range []property.ID{property.MarginTop, property.MarginRight, property.MarginBottom, property.MarginLeft} {
		if !changed.Contains(id) {
			t.Errorf("changed = %s, missing %s", changed, id)
		}
	}
	if got := n.values.Common.MarginRight.Value; got != 1 {
		t.Errorf("margin-right = %v, want 1", got)
	}
}

func TestDefinitionShorthandKeepsInline(t *testing.T) {
	n := newNode("div", nil)
	n.style.UpdateDefinition(definition(t, "--p: 3px; padding: var(--p)"))
	n.set(t, "padding-top: 9px")
	n.compute()

	if got := n.values.Common.PaddingTop.Value; got != 9 {
		t.Errorf("padding-top = %v, want inline 9", got)
	}
	if got := n.values.Common.PaddingLeft.Value; got != 3 {
		t.Errorf("padding-left = %v, want 3", got)
	}
}

func TestRemoveInlineRestoresDefinitionShorthand(t *testing.T) {
	n := newNode("div", nil)
	n.style.UpdateDefinition(definition(t, "--p: 3px; padding: var(--p)"))
	n.set(t, "padding-top: 9px")
	n.compute()

	n.style.RemoveProperty(property.PaddingTop)
	changed := n.compute()
	if !changed.Contains(property.PaddingTop) {
		t.Errorf("changed = %s, want padding-top", changed)
	}
	if got := n.values.Common.PaddingTop.Value; got != 3 {
		t.Errorf("padding-top = %v, want rule value 3", got)
	}
	if p := n.style.Property(property.PaddingTop); p == nil || p.String() != "3px" {
		t.Errorf("Property(padding-top) = %v, want 3px", p)
	}
	if got := n.values.Common.PaddingLeft.Value; got != 3 {
		t.Errorf("padding-left = %v, want 3", got)
	}
}

func TestUpdateDefinitionSkipsEqualValues(t *testing.T) {
	n := newNode("div", nil)
	n.style.UpdateDefinition(definition(t, "width: 10px; height: 5px"))
	n.compute()

	n.style.UpdateDefinition(definition(t, "width: 10px; height: 6px"))
	changed := n.compute()
	if changed.Contains(property.Width) {
		t.Errorf("changed = %s, width compares equal", changed)
	}
	if !changed.Contains(property.Height) {
		t.Errorf("changed = %s, want height", changed)
	}

	n.style.UpdateDefinition(nil)
	changed = n.compute()
	if !changed.Contains(property.Width) || !changed.Contains(property.Height) {
		t.Errorf("changed = %s, want width and height", changed)
	}
	if got := n.values.Common.Width.Type; got != Auto {
		t.Errorf("width type = %v, want auto", got)
	}
}

func TestUpdateDefinitionVariables(t *testing.T) {
	n := newNode("div", nil)
	n.set(t, "width: var(--w)")
	n.style.UpdateDefinition(definition(t, "--w: 10px"))
	n.compute()
	if got := n.values.Common.Width.Value; got != 10 {
		t.Fatalf("width = %v, want 10", got)
	}

	n.style.UpdateDefinition(definition(t, "--w: 30px"))
	n.compute()
	if got := n.values.Common.Width.Value; got != 30 {
		t.Errorf("width = %v, want 30", got)
	}
}

func TestTransitionClaimsChangedProperty(t *testing.T) {
	n := newNode("div", nil)
	n.acceptTransitions = true
	n.style.UpdateDefinition(definition(t, "transition: opacity 1s; opacity: 1; width: 10px"))
	n.compute()

	n.style.UpdateDefinition(definition(t, "transition: opacity 1s; opacity: 0.5; width: 20px"))
	changed := n.compute()

	if changed.Contains(property.Opacity) {
		t.Errorf("changed = %s, opacity is claimed by a transition", changed)
	}
	if !changed.Contains(property.Width) {
		t.Errorf("changed = %s, want width", changed)
	}
	if len(n.transitions) != 1 {
		t.Fatalf("transitions = %d, want 1", len(n.transitions))
	}
	tr := n.transitions[0]
	if tr.tr.ID != property.Opacity || tr.start.Number() != 1 || tr.target.Number() != 0.5 {
		t.Errorf("transition = %+v, want opacity 1 -> 0.5", tr)
	}
	if tr.tr.Duration != 1 {
		t.Errorf("duration = %v, want 1", tr.tr.Duration)
	}
}

func TestTransitionRejected(t *testing.T) {
	n := newNode("div", nil)
	n.style.UpdateDefinition(definition(t, "transition: all 0.2s; opacity: 1"))
	n.compute()
	n.style.UpdateDefinition(definition(t, "transition: all 0.2s; opacity: 0"))

	if changed := n.compute(); !changed.Contains(property.Opacity) {
		t.Errorf("changed = %s, want opacity when host rejects the transition", changed)
	}
	if got := n.values.Inherited.Opacity; got != 0 {
		t.Errorf("opacity = %v, want 0", got)
	}
}

func TestTransitionAll(t *testing.T) {
	n := newNode("div", nil)
	n.acceptTransitions = true
	n.style.UpdateDefinition(definition(t, "transition: all 0.2s; opacity: 1; width: 10px"))
	n.compute()
	n.style.UpdateDefinition(definition(t, "transition: all 0.2s; opacity: 0; width: 20px"))

	changed := n.compute()
	if changed.Contains(property.Opacity) || changed.Contains(property.Width) {
		t.Errorf("changed = %s, want both claimed", changed)
	}
	if len(n.transitions) != 2 {
		t.Errorf("transitions = %d, want 2", len(n.transitions))
	}
}

func TestFontFaceHandle(t *testing.T) {
	root := newNode("body", nil)
	root.set(t, "font-family: Lato; font-weight: bold; font-size: 16px")
	child := newNode("p", root)
	root.computeTree()

	if root.values.Inherited.FontFaceHandle == 0 {
		t.Fatalf("font face handle not set")
	}
	if got := root.values.Inherited.FontFamily; got != "lato" {
		t.Errorf("font-family = %q, want folded lato", got)
	}
	if child.values.Inherited.FontFaceHandle != root.values.Inherited.FontFaceHandle {
		t.Errorf("child handle = %v, want inherited %v", child.values.Inherited.FontFaceHandle, root.values.Inherited.FontFaceHandle)
	}
}

func TestDirtyPropertiesWithUnits(t *testing.T) {
	root := newNode("body", nil)
	root.set(t, "width: 10vw; height: 5px")
	child := newNode("div", root)
	child.set(t, "height: 50vh")
	root.computeTree()

	root.style.DirtyPropertiesWithUnitsRecursive(property.UnitVw | property.UnitVh)
	if !root.style.dirtyProperties.Contains(property.Width) || root.style.dirtyProperties.Contains(property.Height) {
		t.Errorf("root dirty = %s, want width only", root.style.dirtyProperties)
	}
	if !child.style.dirtyProperties.Contains(property.Height) {
		t.Errorf("child dirty = %s, want height", child.style.dirtyProperties)
	}
}

func TestLocalStyleIterators(t *testing.T) {
	n := newNode("div", nil)
	n.set(t, "--x: 1px; width: var(--x); color: red")

	var ids []property.ID
	for id := range n.style.LocalStyleProperties {
		ids = append(ids, id)
	}
	if len(ids) != 2 {
		t.Errorf("local properties = %v, want 2", ids)
	}
	var names []string
	for name := range n.style.LocalStyleVariables {
		names = append(names, name)
	}
	if len(names) != 1 || names[0] != "--x" {
		t.Errorf("local variables = %v, want [--x]", names)
	}
}

func TestSetPropertyRejectsUnknown(t *testing.T) {
	n := newNode("div", nil)
	if n.style.SetProperty(property.Invalid, property.NewNumber(1, property.UnitPx)) {
		t.Errorf("SetProperty(invalid) = true")
	}
	if n.style.SetVariable("color", property.NewString("red")) {
		t.Errorf("SetVariable(color) = true, not a variable name")
	}
}
