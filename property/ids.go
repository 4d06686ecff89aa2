package property

// ID identifies a concrete style property. The id space is small and dense so
// sets of ids can be kept as bit-sets.
type ID uint8

const (
	Invalid ID = iota

	MarginTop
	MarginRight
	MarginBottom
	MarginLeft
	PaddingTop
	PaddingRight
	PaddingBottom
	PaddingLeft
	BorderTopWidth
	BorderRightWidth
	BorderBottomWidth
	BorderLeftWidth
	BorderTopColor
	BorderRightColor
	BorderBottomColor
	BorderLeftColor
	BorderTopLeftRadius
	BorderTopRightRadius
	BorderBottomRightRadius
	BorderBottomLeftRadius
	Display
	Position
	Top
	Right
	Bottom
	Left
	Float
	Clear
	BoxSizing
	ZIndex
	Width
	MinWidth
	MaxWidth
	Height
	MinHeight
	MaxHeight
	LineHeight
	VerticalAlign
	OverflowX
	OverflowY
	Clip
	Visibility
	BackgroundColor
	Color
	CaretColor
	ImageColor
	Opacity
	FontFamily
	FontStyle
	FontWeight
	FontSize
	LetterSpacing
	TextAlign
	TextDecoration
	TextTransform
	WhiteSpace
	WordBreak
	RowGap
	ColumnGap
	Cursor
	Drag
	TabIndex
	Focus
	ScrollbarMargin
	OverscrollBehavior
	PointerEvents
	Perspective
	PerspectiveOriginX
	PerspectiveOriginY
	Transform
	TransformOriginX
	TransformOriginY
	TransformOriginZ
	NavUp
	NavRight
	NavDown
	NavLeft
	Transition
	Animation
	Decorator
	MaskImage
	FontEffect
	Filter
	BackdropFilter
	BoxShadow
	FillImage
	AlignContent
	AlignItems
	AlignSelf
	FlexBasis
	FlexDirection
	FlexGrow
	FlexShrink
	FlexWrap
	JustifyContent
	Language
	Direction

	NumIDs
)

var idNames = [NumIDs]string{
	Invalid:                 "",
	MarginTop:               "margin-top",
	MarginRight:             "margin-right",
	MarginBottom:            "margin-bottom",
	MarginLeft:              "margin-left",
	PaddingTop:              "padding-top",
	PaddingRight:            "padding-right",
	PaddingBottom:           "padding-bottom",
	PaddingLeft:             "padding-left",
	BorderTopWidth:          "border-top-width",
	BorderRightWidth:        "border-right-width",
	BorderBottomWidth:       "border-bottom-width",
	BorderLeftWidth:         "border-left-width",
	BorderTopColor:          "border-top-color",
	BorderRightColor:        "border-right-color",
	BorderBottomColor:       "border-bottom-color",
	BorderLeftColor:         "border-left-color",
	BorderTopLeftRadius:     "border-top-left-radius",
	BorderTopRightRadius:    "border-top-right-radius",
	BorderBottomRightRadius: "border-bottom-right-radius",
	BorderBottomLeftRadius:  "border-bottom-left-radius",
	Display:                 "display",
	Position:                "position",
	Top:                     "top",
	Right:                   "right",
	Bottom:                  "bottom",
	Left:                    "left",
	Float:                   "float",
	Clear:                   "clear",
	BoxSizing:               "box-sizing",
	ZIndex:                  "z-index",
	Width:                   "width",
	MinWidth:                "min-width",
	MaxWidth:                "max-width",
	Height:                  "height",
	MinHeight:               "min-height",
	MaxHeight:               "max-height",
	LineHeight:              "line-height",
	VerticalAlign:           "vertical-align",
	OverflowX:               "overflow-x",
	OverflowY:               "overflow-y",
	Clip:                    "clip",
	Visibility:              "visibility",
	BackgroundColor:         "background-color",
	Color:                   "color",
	CaretColor:              "caret-color",
	ImageColor:              "image-color",
	Opacity:                 "opacity",
	FontFamily:              "font-family",
	FontStyle:               "font-style",
	FontWeight:              "font-weight",
	FontSize:                "font-size",
	LetterSpacing:           "letter-spacing",
	TextAlign:               "text-align",
	TextDecoration:          "text-decoration",
	TextTransform:           "text-transform",
	WhiteSpace:              "white-space",
	WordBreak:               "word-break",
	RowGap:                  "row-gap",
	ColumnGap:               "column-gap",
	Cursor:                  "cursor",
	Drag:                    "drag",
	TabIndex:                "tab-index",
	Focus:                   "focus",
	ScrollbarMargin:         "scrollbar-margin",
	OverscrollBehavior:      "overscroll-behavior",
	PointerEvents:           "pointer-events",
	Perspective:             "perspective",
	PerspectiveOriginX:      "perspective-origin-x",
	PerspectiveOriginY:      "perspective-origin-y",
	Transform:               "transform",
	TransformOriginX:        "transform-origin-x",
	TransformOriginY:        "transform-origin-y",
	TransformOriginZ:        "transform-origin-z",
	NavUp:                   "nav-up",
	NavRight:                "nav-right",
	NavDown:                 "nav-down",
	NavLeft:                 "nav-left",
	Transition:              "transition",
	Animation:               "animation",
	Decorator:               "decorator",
	MaskImage:               "mask-image",
	FontEffect:              "font-effect",
	Filter:                  "filter",
	BackdropFilter:          "backdrop-filter",
	BoxShadow:               "box-shadow",
	FillImage:               "fill-image",
	AlignContent:            "align-content",
	AlignItems:              "align-items",
	AlignSelf:               "align-self",
	FlexBasis:               "flex-basis",
	FlexDirection:           "flex-direction",
	FlexGrow:                "flex-grow",
	FlexShrink:              "flex-shrink",
	FlexWrap:                "flex-wrap",
	JustifyContent:          "justify-content",
	Language:                "--rcss-language",
	Direction:               "--rcss-direction",
}

// String returns the property name as written in stylesheets.
func (id ID) String() string {
	if id >= NumIDs {
		return ""
	}
	return idNames[id]
}

// Valid reports whether id names a defined property.
func (id ID) Valid() bool {
	return id > Invalid && id < NumIDs
}

// ShorthandID identifies a shorthand property.
type ShorthandID uint8

const (
	InvalidShorthand ShorthandID = iota

	Margin
	Padding
	BorderWidth
	BorderColor
	BorderTop
	BorderRight
	BorderBottom
	BorderLeft
	Border
	BorderRadius
	Overflow
	Background
	Font
	Gap
	PerspectiveOrigin
	TransformOrigin
	Flex
	FlexFlow
	Nav

	NumShorthandIDs
)

var shorthandNames = [NumShorthandIDs]string{
	InvalidShorthand:  "",
	Margin:            "margin",
	Padding:           "padding",
	BorderWidth:       "border-width",
	BorderColor:       "border-color",
	BorderTop:         "border-top",
	BorderRight:       "border-right",
	BorderBottom:      "border-bottom",
	BorderLeft:        "border-left",
	Border:            "border",
	BorderRadius:      "border-radius",
	Overflow:          "overflow",
	Background:        "background",
	Font:              "font",
	Gap:               "gap",
	PerspectiveOrigin: "perspective-origin",
	TransformOrigin:   "transform-origin",
	Flex:              "flex",
	FlexFlow:          "flex-flow",
	Nav:               "nav",
}

func (id ShorthandID) String() string {
	if id >= NumShorthandIDs {
		return ""
	}
	return shorthandNames[id]
}

func (id ShorthandID) Valid() bool {
	return id > InvalidShorthand && id < NumShorthandIDs
}
