package style

import (
	"math"

	"golang.org/x/text/cases"

	"rcss/property"
)

const pixelsPerInch = 96.0

var ppiConversion = map[property.Unit]float64{
	property.UnitIn: 1,
	property.UnitCm: 1 / 2.54,
	property.UnitMm: 1 / 25.4,
	property.UnitPt: 1.0 / 72.0,
	property.UnitPc: 1.0 / 6.0,
}

// ComputeLength converts a length to pixels. Angles are returned in radians.
// Percentages cannot be resolved here and yield zero.
func ComputeLength(v property.NumericValue, fontSize, docFontSize, dpRatio float64, viewport Vector2) float64 {
	switch v.Unit {
	case property.UnitNumber, property.UnitPx:
		return v.Number
	case property.UnitEm:
		return v.Number * fontSize
	case property.UnitRem:
		return v.Number * docFontSize
	case property.UnitDp:
		return v.Number * dpRatio
	case property.UnitVw:
		return v.Number * viewport.X * 0.01
	case property.UnitVh:
		return v.Number * viewport.Y * 0.01
	case property.UnitDeg, property.UnitRad:
		return ComputeAngle(v)
	}
	if f, ok := ppiConversion[v.Unit]; ok {
		return v.Number * f * pixelsPerInch * dpRatio
	}
	return 0
}

// ComputeAngle normalizes an angle to radians.
func ComputeAngle(v property.NumericValue) float64 {
	if v.Unit == property.UnitDeg {
		return v.Number * math.Pi / 180
	}
	return v.Number
}

// ComputeBorderWidth snaps border widths to whole pixels, keeping hairlines
// visible.
func ComputeBorderWidth(w float64) float64 {
	switch {
	case w <= 0:
		return 0
	case w <= 1:
		return 1
	}
	return math.Round(w)
}

// converter holds the inputs of one materialization pass.
type converter struct {
	fontSize    float64
	docFontSize float64
	dpRatio     float64
	viewport    Vector2
}

func (c converter) length(p *property.Property) float64 {
	return ComputeLength(p.NumericValue(), c.fontSize, c.docFontSize, c.dpRatio, c.viewport)
}

func (c converter) absoluteLength(v property.NumericValue) float64 {
	return ComputeLength(v, 0, 0, c.dpRatio, c.viewport)
}

func (c converter) lengthPercentageAuto(p *property.Property) LengthPercentageAuto {
	switch p.Unit {
	case property.UnitKeyword:
		return LengthPercentageAuto{Type: Auto}
	case property.UnitPercent:
		return LengthPercentageAuto{Type: Percentage, Value: p.Number()}
	}
	return LengthPercentageAuto{Type: Length, Value: c.length(p)}
}

func (c converter) lengthPercentage(p *property.Property) LengthPercentage {
	if p.Unit == property.UnitPercent {
		return LengthPercentage{Type: Percentage, Value: p.Number()}
	}
	return LengthPercentage{Type: Length, Value: c.length(p)}
}

func (c converter) maxSize(p *property.Property) LengthPercentage {
	if p.Unit == property.UnitKeyword {
		return LengthPercentage{Type: Length, Value: MaxSize}
	}
	return c.lengthPercentage(p)
}

// origin maps left/top, center and right/bottom to 0%, 50% and 100%.
func (c converter) origin(p *property.Property) LengthPercentage {
	if p.Unit == property.UnitKeyword {
		return LengthPercentage{Type: Percentage, Value: float64(p.Keyword()) * 50}
	}
	return c.lengthPercentage(p)
}

// fontSizeValue resolves em and percent against the parent font size and rem
// against the document font size.
func (c converter) fontSizeValue(v property.NumericValue, parentFontSize, docFontSize float64) float64 {
	switch v.Unit {
	case property.UnitPercent:
		return v.Number * 0.01 * parentFontSize
	case property.UnitEm:
		return v.Number * parentFontSize
	case property.UnitRem:
		return v.Number * docFontSize
	}
	return c.absoluteLength(v)
}

func (c converter) lineHeight(p *property.Property) LineHeight {
	if p.Unit.Any(property.UnitLength) {
		v := c.length(p)
		return LineHeight{Value: v, InheritType: LineHeightLength, InheritValue: v}
	}
	scale := p.Number()
	if p.Unit == property.UnitPercent {
		scale *= 0.01
	}
	return LineHeight{Value: c.fontSize * scale, InheritType: LineHeightNumber, InheritValue: scale}
}

func (c converter) verticalAlign(p *property.Property, lineHeight float64) VerticalAlign {
	switch {
	case p.Unit == property.UnitKeyword:
		return VerticalAlign{Type: VerticalAlignType(p.Keyword())}
	case p.Unit == property.UnitPercent:
		return VerticalAlign{Type: VerticalAlignLength, Value: p.Number() * lineHeight * 0.01}
	}
	return VerticalAlign{Type: VerticalAlignLength, Value: c.length(p)}
}

func clip(p *property.Property) Clip {
	if p.Unit == property.UnitKeyword {
		return Clip{Type: ClipType(p.Keyword())}
	}
	return Clip{Type: ClipNumber, Number: int(p.Number())}
}

func fontWeight(p *property.Property) FontWeight {
	if p.Unit == property.UnitKeyword {
		return FontWeight(p.Keyword())
	}
	return FontWeight(p.Number())
}

// apply converts one local property into v. It reports whether the property
// affects the font face and false for ok when id has no conversion.
func (c converter) apply(v *ComputedValues, id property.ID, p *property.Property) (fontFace, ok bool) {
	in, cm, rare := &v.Inherited, &v.Common, &v.Rare
	switch id {
	case property.MarginTop:
		cm.MarginTop = c.lengthPercentageAuto(p)
	case property.MarginRight:
		cm.MarginRight = c.lengthPercentageAuto(p)
	case property.MarginBottom:
		cm.MarginBottom = c.lengthPercentageAuto(p)
	case property.MarginLeft:
		cm.MarginLeft = c.lengthPercentageAuto(p)

	case property.PaddingTop:
		cm.PaddingTop = c.lengthPercentage(p)
	case property.PaddingRight:
		cm.PaddingRight = c.lengthPercentage(p)
	case property.PaddingBottom:
		cm.PaddingBottom = c.lengthPercentage(p)
	case property.PaddingLeft:
		cm.PaddingLeft = c.lengthPercentage(p)

	case property.BorderTopWidth:
		cm.BorderTopWidth = ComputeBorderWidth(c.length(p))
	case property.BorderRightWidth:
		cm.BorderRightWidth = ComputeBorderWidth(c.length(p))
	case property.BorderBottomWidth:
		cm.BorderBottomWidth = ComputeBorderWidth(c.length(p))
	case property.BorderLeftWidth:
		cm.BorderLeftWidth = ComputeBorderWidth(c.length(p))

	case property.BorderTopColor:
		cm.BorderTopColor = p.Colour()
	case property.BorderRightColor:
		cm.BorderRightColor = p.Colour()
	case property.BorderBottomColor:
		cm.BorderBottomColor = p.Colour()
	case property.BorderLeftColor:
		cm.BorderLeftColor = p.Colour()

	case property.BorderTopLeftRadius:
		rare.BorderTopLeftRadius = c.length(p)
	case property.BorderTopRightRadius:
		rare.BorderTopRightRadius = c.length(p)
	case property.BorderBottomRightRadius:
		rare.BorderBottomRightRadius = c.length(p)
	case property.BorderBottomLeftRadius:
		rare.BorderBottomLeftRadius = c.length(p)

	case property.Display:
		cm.Display = Display(p.Keyword())
	case property.Position:
		cm.Position = Position(p.Keyword())
	case property.Top:
		cm.Top = c.lengthPercentageAuto(p)
	case property.Right:
		cm.Right = c.lengthPercentageAuto(p)
	case property.Bottom:
		cm.Bottom = c.lengthPercentageAuto(p)
	case property.Left:
		cm.Left = c.lengthPercentageAuto(p)
	case property.Float:
		cm.Float = Float(p.Keyword())
	case property.Clear:
		cm.Clear = Clear(p.Keyword())
	case property.BoxSizing:
		cm.BoxSizing = BoxSizing(p.Keyword())
	case property.ZIndex:
		if p.Unit == property.UnitKeyword {
			cm.ZIndex = ZIndex{Auto: true}
		} else {
			cm.ZIndex = ZIndex{Value: p.Number()}
		}

	case property.Width:
		cm.Width = c.lengthPercentageAuto(p)
	case property.MinWidth:
		rare.MinWidth = c.lengthPercentage(p)
	case property.MaxWidth:
		rare.MaxWidth = c.maxSize(p)
	case property.Height:
		cm.Height = c.lengthPercentageAuto(p)
	case property.MinHeight:
		rare.MinHeight = c.lengthPercentage(p)
	case property.MaxHeight:
		rare.MaxHeight = c.maxSize(p)

	case property.LineHeight:
		// computed before the per-id pass
	case property.VerticalAlign:
		cm.VerticalAlign = c.verticalAlign(p, in.LineHeight.Value)

	case property.OverflowX:
		cm.OverflowX = Overflow(p.Keyword())
	case property.OverflowY:
		cm.OverflowY = Overflow(p.Keyword())
	case property.Clip:
		cm.Clip = clip(p)
	case property.Visibility:
		cm.Visibility = Visibility(p.Keyword())

	case property.BackgroundColor:
		cm.BackgroundColor = p.Colour()
	case property.Color:
		in.Color = p.Colour()
	case property.ImageColor:
		rare.ImageColor = p.Colour()
	case property.Opacity:
		in.Opacity = p.Number()

	case property.FontFamily:
		in.FontFamily = cases.Fold().String(p.Str())
		return true, true
	case property.FontStyle:
		in.FontStyle = FontStyle(p.Keyword())
		return true, true
	case property.FontWeight:
		in.FontWeight = fontWeight(p)
		return true, true
	case property.FontSize:
		// computed before the per-id pass
		return true, true
	case property.LetterSpacing:
		in.HasLetterSpacing = p.Unit != property.UnitKeyword
		return true, true

	case property.TextAlign:
		in.TextAlign = TextAlign(p.Keyword())
	case property.TextDecoration:
		in.TextDecoration = TextDecoration(p.Keyword())
	case property.TextTransform:
		in.TextTransform = TextTransform(p.Keyword())
	case property.WhiteSpace:
		in.WhiteSpace = WhiteSpace(p.Keyword())
	case property.WordBreak:
		in.WordBreak = WordBreak(p.Keyword())

	case property.RowGap:
		rare.RowGap = c.lengthPercentage(p)
	case property.ColumnGap:
		rare.ColumnGap = c.lengthPercentage(p)

	case property.Drag:
		rare.Drag = Drag(p.Keyword())
	case property.TabIndex:
		rare.TabIndex = TabIndex(p.Keyword())
	case property.Focus:
		in.Focus = Focus(p.Keyword())
	case property.ScrollbarMargin:
		rare.ScrollbarMargin = c.length(p)
	case property.OverscrollBehavior:
		rare.OverscrollBehavior = OverscrollBehavior(p.Keyword())
	case property.PointerEvents:
		in.PointerEvents = PointerEvents(p.Keyword())

	case property.Perspective:
		rare.Perspective = 0
		if p.Unit != property.UnitKeyword {
			rare.Perspective = c.length(p)
		}
		rare.HasLocalPerspective = rare.Perspective > 0
	case property.PerspectiveOriginX:
		rare.PerspectiveOriginX = c.origin(p)
	case property.PerspectiveOriginY:
		rare.PerspectiveOriginY = c.origin(p)

	case property.Transform:
		rare.HasLocalTransform = p.Str() != ""
	case property.TransformOriginX:
		rare.TransformOriginX = c.origin(p)
	case property.TransformOriginY:
		rare.TransformOriginY = c.origin(p)
	case property.TransformOriginZ:
		rare.TransformOriginZ = c.length(p)

	case property.Decorator:
		cm.HasDecorator = p.Str() != ""
	case property.MaskImage:
		rare.HasMaskImage = p.Str() != ""
	case property.FontEffect:
		in.HasFontEffect = p.Str() != ""
	case property.Filter:
		rare.HasFilter = p.Str() != ""
	case property.BackdropFilter:
		rare.HasBackdropFilter = p.Str() != ""
	case property.BoxShadow:
		rare.HasBoxShadow = p.Str() != ""

	case property.FlexBasis:
		cm.FlexBasis = c.lengthPercentageAuto(p)

	case property.Language:
		in.Language = p.Str()
	case property.Direction:
		in.Direction = Direction(p.Keyword())

	// Read through ElementStyle.Property by their consumers.
	case property.Cursor, property.Transition, property.Animation,
		property.AlignContent, property.AlignItems, property.AlignSelf,
		property.FlexDirection, property.FlexGrow, property.FlexShrink, property.FlexWrap, property.JustifyContent,
		property.NavUp, property.NavRight, property.NavDown, property.NavLeft,
		property.FillImage, property.CaretColor:

	default:
		return false, false
	}
	return false, true
}
