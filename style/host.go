package style

import "rcss/property"

// Vector2 is a 2D size or position in pixels.
type Vector2 struct {
	X, Y float64
}

// Environment carries the per-context inputs of numeric conversion.
type Environment struct {
	DPRatio  float64
	Viewport Vector2
}

// FontFaceHandle identifies a font face resolved by the font subsystem. Zero
// means no face.
type FontFaceHandle uint64

// Host is the element an ElementStyle belongs to. It gives the style access to
// the tree and to the owning document without the style knowing about either.
type Host interface {
	// Tag is used in diagnostics only.
	Tag() string

	ParentStyle() *ElementStyle
	ChildStyles() []*ElementStyle

	Values() *ComputedValues
	ParentValues() *ComputedValues
	DocumentValues() *ComputedValues

	ContainingBlock() Vector2
	Environment() Environment

	// StartTransition reports whether the transition was accepted.
	StartTransition(t property.TransitionDef, start, target property.Property) bool
	FontFaceHandle(family string, style FontStyle, weight FontWeight, size int) FontFaceHandle
}
