package property

import (
	"errors"
	"testing"
)

func TestParsePropertyValue(t *testing.T) {
	reg := Default()
	tests := []struct {
		id    ID
		value string
		unit  Unit
		str   string
	}{
		{Width, "auto", UnitKeyword, "auto"},
		{Width, "10", UnitPx, "10px"},
		{Width, "1.5em", UnitEm, "1.5em"},
		{Width, "50%", UnitPercent, "50%"},
		{Width, "2REM", UnitRem, "2rem"},
		{Width, "3vw", UnitVw, "3vw"},
		{Width, "1in", UnitIn, "1in"},
		{LineHeight, "1.2", UnitNumber, "1.2"},
		{Opacity, "0.5", UnitNumber, "0.5"},
		{FontWeight, "bold", UnitKeyword, "bold"},
		{FontWeight, "300", UnitNumber, "300"},
		{FontFamily, `"Open Sans"`, UnitString, "Open Sans"},
		{Color, "#00ff00", UnitColour, "rgba(0,255,0,255)"},
		{Transform, "rotate(10deg) scale(2)", UnitTransform, "rotate(10deg) scale(2)"},
		{Transform, "none", UnitTransform, ""},
		{Decorator, "image( a.png )", UnitDecorator, "image( a.png )"},
	}
	for _, tt := range tests {
		t.Run(tt.id.String()+": "+tt.value, func(t *testing.T) {
			p, err := reg.ParsePropertyValue(tt.id, tt.value)
			if err != nil {
				t.Fatalf("error = %v", err)
			}
			if p.Unit != tt.unit {
				t.Errorf("unit = %v, want %v", p.Unit, tt.unit)
			}
			if got := p.String(); got != tt.str {
				t.Errorf("String() = %q, want %q", got, tt.str)
			}
			if p.Definition == nil || p.Definition.ID() != tt.id {
				t.Errorf("definition not attached")
			}
		})
	}
}

func TestParsePropertyValueRejects(t *testing.T) {
	reg := Default()
	tests := []struct {
		id    ID
		value string
	}{
		{Width, "10deg"},
		{Width, "wide"},
		{Width, "10px 20px"},
		{Opacity, "50%"},
		{Color, "not-a-colour"},
		{Transform, "rotate(10deg"},
		{FontWeight, "heavy"},
	}
	for _, tt := range tests {
		t.Run(tt.id.String()+": "+tt.value, func(t *testing.T) {
			_, err := reg.ParsePropertyValue(tt.id, tt.value)
			if !errors.Is(err, ErrInvalidValue) {
				t.Errorf("error = %v, want ErrInvalidValue", err)
			}
		})
	}
}

func TestParseNumeric(t *testing.T) {
	tests := []struct {
		value string
		want  NumericValue
		ok    bool
	}{
		{"12", NumericValue{12, UnitNumber}, true},
		{"-1.5px", NumericValue{-1.5, UnitPx}, true},
		{"+2dp", NumericValue{2, UnitDp}, true},
		{"45deg", NumericValue{45, UnitDeg}, true},
		{"10%", NumericValue{10, UnitPercent}, true},
		{"3furlongs", NumericValue{}, false},
		{"px", NumericValue{}, false},
	}
	for _, tt := range tests {
		got, ok := ParseNumeric(tt.value, UnitNumber)
		if ok != tt.ok || got != tt.want {
			t.Errorf("ParseNumeric(%q) = %v, %v, want %v, %v", tt.value, got, ok, tt.want, tt.ok)
		}
	}
}

func TestParseTransition(t *testing.T) {
	reg := Default()

	p, err := reg.ParsePropertyValue(Transition, "opacity 0.5s linear-in-out 100ms, color 1s")
	if err != nil {
		t.Fatalf("error = %v", err)
	}
	list := p.Transitions()
	if list.None || list.All || len(list.Transitions) != 2 {
		t.Fatalf("list = %+v", list)
	}
	first := list.Transitions[0]
	if first.ID != Opacity || first.Duration != 0.5 || first.Delay != 0.1 || first.Tween != "linear-in-out" {
		t.Errorf("first = %+v", first)
	}
	want := TransitionDef{ID: Color, Tween: "linear", Duration: 1}
	if second := list.Transitions[1]; second != want {
		t.Errorf("second = %+v, want %+v", second, want)
	}

	p, err = reg.ParsePropertyValue(Transition, "all 2s cubic-out 0s 0.5")
	if err != nil {
		t.Fatalf("error = %v", err)
	}
	if list := p.Transitions(); !list.All || len(list.Transitions) != 1 || list.Transitions[0].ReverseAdjustmentFactor != 0.5 {
		t.Errorf("all list = %+v", list)
	}

	p, err = reg.ParsePropertyValue(Transition, "none")
	if err != nil || !p.Transitions().None {
		t.Errorf("none = %+v, %v", p.Transitions(), err)
	}

	for _, bad := range []string{"opacity", "bogus 1s", "all 1s, opacity 1s", "opacity 1s 2s 3s"} {
		if _, err := reg.ParsePropertyValue(Transition, bad); err == nil {
			t.Errorf("transition %q accepted", bad)
		}
	}
}

func TestPropertyEqual(t *testing.T) {
	a := NewNumber(1, UnitPx)
	if !a.Equal(NewNumber(1, UnitPx)) {
		t.Errorf("equal numbers differ")
	}
	if a.Equal(NewNumber(1, UnitEm)) {
		t.Errorf("units ignored")
	}
	t1, _ := ParseTerm([]string{"var(--a)"})
	t2, _ := ParseTerm([]string{"var(--a)"})
	if !NewTerm(t1).Equal(NewTerm(t2)) {
		t.Errorf("equal terms differ")
	}
	a.Specificity = 10
	if !a.Equal(NewNumber(1, UnitPx)) {
		t.Errorf("specificity compared")
	}
}
