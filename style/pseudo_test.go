package style

import (
	"slices"
	"testing"
)

func TestNextPseudoClassState(t *testing.T) {
	tests := []struct {
		from     PseudoClassState
		activate bool
		override bool
		want     PseudoClassState
	}{
		{PseudoClear, true, false, PseudoSet},
		{PseudoClear, true, true, PseudoOverride},
		{PseudoSet, true, true, PseudoBoth},
		{PseudoOverride, true, false, PseudoBoth},
		{PseudoBoth, true, false, PseudoBoth},
		{PseudoSet, false, false, PseudoClear},
		{PseudoBoth, false, false, PseudoOverride},
		{PseudoBoth, false, true, PseudoSet},
		{PseudoOverride, false, false, PseudoOverride},
		{PseudoSet, false, true, PseudoSet},
		{PseudoClear, false, true, PseudoClear},
	}
	for _, tt := range tests {
		if got := NextPseudoClassState(tt.from, tt.activate, tt.override); got != tt.want {
			t.Errorf("NextPseudoClassState(%s, %v, %v) = %s, want %s", tt.from, tt.activate, tt.override, got, tt.want)
		}
	}
}

func TestSetPseudoClass(t *testing.T) {
	s := New(nil)

	steps := []struct {
		activate, override bool
		changed            bool
		set                bool
	}{
		{true, false, true, true},
		// second channel on an active class is not observable
		{true, true, false, true},
		{false, false, false, true},
		{false, true, true, false},
		{false, true, false, false},
	}
	for i, st := range steps {
		if got := s.SetPseudoClass("hover", st.activate, st.override); got != st.changed {
			t.Errorf("step %d: SetPseudoClass = %v, want %v", i, got, st.changed)
		}
		if got := s.IsPseudoClassSet("hover"); got != st.set {
			t.Errorf("step %d: IsPseudoClassSet = %v, want %v", i, got, st.set)
		}
	}
	if got := s.PseudoClassState("hover"); got != PseudoClear {
		t.Errorf("final state = %s, want clear", got)
	}
}

func TestActivePseudoClasses(t *testing.T) {
	s := New(nil)
	s.SetPseudoClass("hover", true, false)
	s.SetPseudoClass("active", true, true)
	s.SetPseudoClass("focus", true, false)
	s.SetPseudoClass("focus", false, false)

	if got := s.ActivePseudoClasses(); !slices.Equal(got, []string{"active", "hover"}) {
		t.Errorf("ActivePseudoClasses() = %v", got)
	}
}

func TestClasses(t *testing.T) {
	s := New(nil)
	s.SetClassNames("  btn primary btn ")
	if got := s.ClassNames(); got != "btn primary" {
		t.Fatalf("ClassNames() = %q", got)
	}

	if s.SetClass("btn", true) {
		t.Errorf("SetClass(btn, true) on a set class reported a change")
	}
	if !s.SetClass("wide", true) {
		t.Errorf("SetClass(wide, true) reported no change")
	}
	if !s.SetClass("btn", false) {
		t.Errorf("SetClass(btn, false) reported no change")
	}
	if s.SetClass("missing", false) {
		t.Errorf("SetClass(missing, false) reported a change")
	}
	if !s.IsClassSet("wide") || s.IsClassSet("btn") {
		t.Errorf("classes = %v", s.ClassNameList())
	}
	if got := s.ClassNames(); got != "primary wide" {
		t.Errorf("ClassNames() = %q, want %q", got, "primary wide")
	}
}
