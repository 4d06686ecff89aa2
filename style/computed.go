package style

import (
	"math"
	"sync"

	"rcss/property"
)

// LengthType tags the variants of sized values.
type LengthType uint8

const (
	Length LengthType = iota
	Percentage
	Auto
)

// LengthPercentageAuto is a computed length, a percentage left for layout to
// resolve, or auto.
type LengthPercentageAuto struct {
	Type  LengthType
	Value float64
}

// LengthPercentage never holds Auto.
type LengthPercentage = LengthPercentageAuto

// LineHeightInherit selects what children inherit from a line height.
type LineHeightInherit uint8

const (
	// Children inherit the computed length.
	LineHeightLength LineHeightInherit = iota
	// Children inherit the factor and multiply it by their own font size.
	LineHeightNumber
)

type LineHeight struct {
	Value        float64
	InheritType  LineHeightInherit
	InheritValue float64
}

type VerticalAlignType uint8

const (
	VerticalAlignBaseline VerticalAlignType = iota
	VerticalAlignMiddle
	VerticalAlignSub
	VerticalAlignSuper
	VerticalAlignTextTop
	VerticalAlignTextBottom
	VerticalAlignTop
	VerticalAlignCenter
	VerticalAlignBottom
	VerticalAlignLength
)

type VerticalAlign struct {
	Type  VerticalAlignType
	Value float64
}

type ZIndex struct {
	Auto  bool
	Value float64
}

type ClipType uint8

const (
	ClipAuto ClipType = iota
	ClipNone
	ClipAlways
	ClipNumber
)

type Clip struct {
	Type   ClipType
	Number int
}

// InheritedValues are copied from the parent before local values apply.
type InheritedValues struct {
	FontFaceHandle   FontFaceHandle
	FontFamily       string
	FontStyle        FontStyle
	FontWeight       FontWeight
	FontSize         float64
	HasLetterSpacing bool
	HasFontEffect    bool
	LineHeight       LineHeight

	Color   property.Colour
	Opacity float64

	TextAlign      TextAlign
	TextDecoration TextDecoration
	TextTransform  TextTransform
	WhiteSpace     WhiteSpace
	WordBreak      WordBreak

	Focus         Focus
	PointerEvents PointerEvents
	Language      string
	Direction     Direction
}

// CommonValues are the non-inherited values most layouts touch.
type CommonValues struct {
	Display   Display
	Position  Position
	Float     Float
	Clear     Clear
	BoxSizing BoxSizing

	MarginTop, MarginRight, MarginBottom, MarginLeft     LengthPercentageAuto
	PaddingTop, PaddingRight, PaddingBottom, PaddingLeft LengthPercentage

	BorderTopWidth, BorderRightWidth, BorderBottomWidth, BorderLeftWidth float64
	BorderTopColor, BorderRightColor, BorderBottomColor, BorderLeftColor property.Colour

	Top, Right, Bottom, Left LengthPercentageAuto
	Width, Height            LengthPercentageAuto
	ZIndex                   ZIndex

	OverflowX, OverflowY Overflow
	Visibility           Visibility
	VerticalAlign        VerticalAlign
	Clip                 Clip

	BackgroundColor property.Colour
	HasDecorator    bool
	FlexBasis       LengthPercentageAuto
}

// RareValues are non-inherited values few elements set.
type RareValues struct {
	MinWidth, MaxWidth, MinHeight, MaxHeight LengthPercentage
	RowGap, ColumnGap                        LengthPercentage

	BorderTopLeftRadius, BorderTopRightRadius, BorderBottomRightRadius, BorderBottomLeftRadius float64

	ImageColor property.Colour

	Perspective                            float64
	PerspectiveOriginX, PerspectiveOriginY LengthPercentage
	TransformOriginX, TransformOriginY     LengthPercentage
	TransformOriginZ                       float64

	HasLocalTransform   bool
	HasLocalPerspective bool
	HasMaskImage        bool
	HasFilter           bool
	HasBackdropFilter   bool
	HasBoxShadow        bool

	Drag               Drag
	TabIndex           TabIndex
	OverscrollBehavior OverscrollBehavior
	ScrollbarMargin    float64
}

// ComputedValues is the typed result of the cascade for one element. Heavy
// list values (decorators, filters, transforms, shadows) are only flagged here
// and must be fetched with ElementStyle.Property.
type ComputedValues struct {
	Inherited InheritedValues
	Common    CommonValues
	Rare      RareValues
}

func (v *ComputedValues) CopyInherited(from *ComputedValues) {
	v.Inherited = from.Inherited
}

func (v *ComputedValues) CopyNonInherited(from *ComputedValues) {
	v.Common = from.Common
	v.Rare = from.Rare
}

// MaxSize is the computed value of max-width and max-height "none".
const MaxSize = math.MaxFloat32

// DefaultComputedValues returns the shared values computed from the registered
// property defaults. The result must not be modified.
var DefaultComputedValues = sync.OnceValue(func() *ComputedValues {
	reg := property.Default()
	v := &ComputedValues{}
	const fontSize = 12.0
	c := converter{fontSize: fontSize, docFontSize: fontSize, dpRatio: 1}
	v.Inherited.FontSize = c.absoluteLength(reg.Definition(property.FontSize).Default().NumericValue())
	c.fontSize, c.docFontSize = v.Inherited.FontSize, v.Inherited.FontSize
	v.Inherited.LineHeight = c.lineHeight(reg.Definition(property.LineHeight).Default())
	for id := range reg.Registered().All() {
		c.apply(v, id, reg.Definition(id).Default())
	}
	return v
})
