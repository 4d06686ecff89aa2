package style

// Keyword types follow the keyword order of their property definitions.

type Display uint8

const (
	DisplayNone Display = iota
	DisplayBlock
	DisplayInline
	DisplayInlineBlock
	DisplayFlowRoot
	DisplayFlex
	DisplayInlineFlex
	DisplayTable
	DisplayInlineTable
	DisplayTableRow
	DisplayTableRowGroup
	DisplayTableColumn
	DisplayTableColumnGroup
	DisplayTableCell
)

type Position uint8

const (
	PositionStatic Position = iota
	PositionRelative
	PositionAbsolute
	PositionFixed
)

type Float uint8

const (
	FloatNone Float = iota
	FloatLeft
	FloatRight
)

type Clear uint8

const (
	ClearNone Clear = iota
	ClearLeft
	ClearRight
	ClearBoth
)

type BoxSizing uint8

const (
	BoxSizingContentBox BoxSizing = iota
	BoxSizingBorderBox
)

type Overflow uint8

const (
	OverflowVisible Overflow = iota
	OverflowHidden
	OverflowAuto
	OverflowScroll
)

type Visibility uint8

const (
	VisibilityVisible Visibility = iota
	VisibilityHidden
)

type FontStyle uint8

const (
	FontStyleNormal FontStyle = iota
	FontStyleItalic
)

// FontWeight is the numeric weight, keywords map to 400 and 700.
type FontWeight uint16

const (
	FontWeightNormal FontWeight = 400
	FontWeightBold   FontWeight = 700
)

type TextAlign uint8

const (
	TextAlignLeft TextAlign = iota
	TextAlignRight
	TextAlignCenter
	TextAlignJustify
)

type TextDecoration uint8

const (
	TextDecorationNone TextDecoration = iota
	TextDecorationUnderline
	TextDecorationOverline
	TextDecorationLineThrough
)

type TextTransform uint8

const (
	TextTransformNone TextTransform = iota
	TextTransformCapitalize
	TextTransformUppercase
	TextTransformLowercase
)

type WhiteSpace uint8

const (
	WhiteSpaceNormal WhiteSpace = iota
	WhiteSpacePre
	WhiteSpaceNowrap
	WhiteSpacePrewrap
	WhiteSpacePreline
)

type WordBreak uint8

const (
	WordBreakNormal WordBreak = iota
	WordBreakBreakAll
	WordBreakBreakWord
)

type Drag uint8

const (
	DragNone Drag = iota
	DragDrag
	DragDragDrop
	DragBlock
	DragClone
)

type TabIndex uint8

const (
	TabIndexNone TabIndex = iota
	TabIndexAuto
)

type Focus uint8

const (
	FocusNone Focus = iota
	FocusAuto
)

type PointerEvents uint8

const (
	PointerEventsNone PointerEvents = iota
	PointerEventsAuto
)

type OverscrollBehavior uint8

const (
	OverscrollBehaviorAuto OverscrollBehavior = iota
	OverscrollBehaviorContain
)

type Direction uint8

const (
	DirectionAuto Direction = iota
	DirectionLTR
	DirectionRTL
)
