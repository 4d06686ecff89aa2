package property

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// Colour is a non-premultiplied 8-bit RGBA colour.
type Colour struct {
	R, G, B, A uint8
}

func (c Colour) String() string {
	return fmt.Sprintf("rgba(%d,%d,%d,%d)", c.R, c.G, c.B, c.A)
}

// NumericValue is a number tagged with its unit.
type NumericValue struct {
	Number float64
	Unit   Unit
}

// TransitionDef describes how a single property change is animated.
type TransitionDef struct {
	ID                      ID
	Tween                   string
	Duration                float64 // seconds
	Delay                   float64 // seconds
	ReverseAdjustmentFactor float64
}

// TransitionList is the value of the transition property.
type TransitionList struct {
	None        bool
	All         bool
	Transitions []TransitionDef
}

// Property is a single tagged style value. Value holds the payload matching
// Unit: float64 for numeric units, int for keywords, string for strings and
// opaque list values, Colour, Term or TransitionList.
type Property struct {
	Value       any
	Unit        Unit
	Definition  *Definition
	Specificity int
}

// NewNumber makes a numeric property.
func NewNumber(v float64, u Unit) Property {
	return Property{Value: v, Unit: u}
}

// NewString makes a string property.
func NewString(s string) Property {
	return Property{Value: s, Unit: UnitString}
}

// NewTerm makes an unresolved variable term property.
func NewTerm(t Term) Property {
	return Property{Value: t, Unit: UnitVariableTerm}
}

// Number returns the numeric payload or zero.
func (p Property) Number() float64 {
	switch v := p.Value.(type) {
	case float64:
		return v
	case int:
		return float64(v)
	}
	return 0
}

// NumericValue returns the payload together with its unit.
func (p Property) NumericValue() NumericValue {
	return NumericValue{Number: p.Number(), Unit: p.Unit}
}

// Keyword returns the keyword value, -1 when p is not a keyword.
func (p Property) Keyword() int {
	if v, ok := p.Value.(int); ok && p.Unit == UnitKeyword {
		return v
	}
	return -1
}

func (p Property) Colour() Colour {
	c, _ := p.Value.(Colour)
	return c
}

func (p Property) Str() string {
	s, _ := p.Value.(string)
	return s
}

func (p Property) Term() Term {
	t, _ := p.Value.(Term)
	return t
}

func (p Property) Transitions() TransitionList {
	t, _ := p.Value.(TransitionList)
	return t
}

// IsTerm reports whether p still holds an unresolved variable term.
func (p Property) IsTerm() bool {
	return p.Unit == UnitVariableTerm
}

// Equal compares unit and payload, ignoring definition and specificity.
func (p Property) Equal(o Property) bool {
	if p.Unit != o.Unit {
		return false
	}
	switch v := p.Value.(type) {
	case Term:
		w, ok := o.Value.(Term)
		return ok && slices.Equal(v, w)
	case TransitionList:
		w, ok := o.Value.(TransitionList)
		return ok && v.None == w.None && v.All == w.All && slices.Equal(v.Transitions, w.Transitions)
	case float64, int, string, Colour:
		return p.Value == o.Value
	case nil:
		return o.Value == nil
	}
	return false
}

// String renders the value the way it would be written in a stylesheet.
func (p Property) String() string {
	switch p.Unit {
	case UnitUnknown:
		return ""
	case UnitKeyword:
		if p.Definition != nil {
			if name, ok := p.Definition.KeywordName(p.Keyword()); ok {
				return name
			}
		}
		return strconv.Itoa(p.Keyword())
	case UnitColour:
		return p.Colour().String()
	case UnitVariableTerm:
		return p.Term().String()
	case UnitTransition:
		return p.Transitions().String()
	case UnitString, UnitAnimation, UnitTransform, UnitDecorator, UnitFilter, UnitFontEffect, UnitBoxShadow:
		return p.Str()
	}
	if p.Unit.Any(UnitNumeric) {
		return formatNumber(p.Number()) + p.Unit.Suffix()
	}
	return fmt.Sprint(p.Value)
}

func formatNumber(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}

func (t TransitionList) String() string {
	if t.None {
		return "none"
	}
	parts := make([]string, 0, len(t.Transitions))
	for _, tr := range t.Transitions {
		name := tr.ID.String()
		if t.All {
			name = "all"
		}
		s := fmt.Sprintf("%s %ss", name, formatNumber(tr.Duration))
		if tr.Tween != "" {
			s += " " + tr.Tween
		}
		if tr.Delay != 0 {
			s += fmt.Sprintf(" %ss", formatNumber(tr.Delay))
		}
		parts = append(parts, s)
	}
	return strings.Join(parts, ", ")
}
