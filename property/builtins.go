package property

const (
	cbWidth  = RelativeContainingBlockWidth
	cbHeight = RelativeContainingBlockHeight
)

func (r *Registry) registerBuiltins() {
	for _, id := range []ID{MarginTop, MarginRight, MarginBottom, MarginLeft} {
		r.register(id, "0px", false, true).parser("keyword", "auto").parser("length_percent").relative(cbWidth)
	}
	r.registerShorthand(Margin, "margin-top, margin-right, margin-bottom, margin-left", ShorthandBox)

	for _, id := range []ID{PaddingTop, PaddingRight, PaddingBottom, PaddingLeft} {
		r.register(id, "0px", false, true).parser("length_percent").relative(cbWidth)
	}
	r.registerShorthand(Padding, "padding-top, padding-right, padding-bottom, padding-left", ShorthandBox)

	for _, id := range []ID{BorderTopWidth, BorderRightWidth, BorderBottomWidth, BorderLeftWidth} {
		r.register(id, "0px", false, true).parser("length")
	}
	r.registerShorthand(BorderWidth, "border-top-width, border-right-width, border-bottom-width, border-left-width", ShorthandBox)

	for _, id := range []ID{BorderTopColor, BorderRightColor, BorderBottomColor, BorderLeftColor} {
		r.register(id, "black", false, false).parser("color")
	}
	r.registerShorthand(BorderColor, "border-top-color, border-right-color, border-bottom-color, border-left-color", ShorthandBox)

	r.registerShorthand(BorderTop, "border-top-width, border-top-color", ShorthandFallThrough)
	r.registerShorthand(BorderRight, "border-right-width, border-right-color", ShorthandFallThrough)
	r.registerShorthand(BorderBottom, "border-bottom-width, border-bottom-color", ShorthandFallThrough)
	r.registerShorthand(BorderLeft, "border-left-width, border-left-color", ShorthandFallThrough)
	r.registerShorthand(Border, "border-top, border-right, border-bottom, border-left", ShorthandRecursiveRepeat)

	for _, id := range []ID{BorderTopLeftRadius, BorderTopRightRadius, BorderBottomRightRadius, BorderBottomLeftRadius} {
		r.register(id, "0px", false, false).parser("length")
	}
	r.registerShorthand(BorderRadius, "border-top-left-radius, border-top-right-radius, border-bottom-right-radius, border-bottom-left-radius", ShorthandBox)

	r.register(Display, "inline", false, true).
		parser("keyword", "none, block, inline, inline-block, flow-root, flex, inline-flex, table, inline-table, table-row, table-row-group, table-column, table-column-group, table-cell")
	r.register(Position, "static", false, true).parser("keyword", "static, relative, absolute, fixed")
	r.register(Top, "auto", false, false).parser("keyword", "auto").parser("length_percent").relative(cbHeight)
	r.register(Right, "auto", false, false).parser("keyword", "auto").parser("length_percent").relative(cbWidth)
	r.register(Bottom, "auto", false, false).parser("keyword", "auto").parser("length_percent").relative(cbHeight)
	r.register(Left, "auto", false, false).parser("keyword", "auto").parser("length_percent").relative(cbWidth)

	r.register(Float, "none", false, true).parser("keyword", "none, left, right")
	r.register(Clear, "none", false, true).parser("keyword", "none, left, right, both")
	r.register(BoxSizing, "content-box", false, true).parser("keyword", "content-box, border-box")
	r.register(ZIndex, "auto", false, false).parser("keyword", "auto").parser("number")

	r.register(Width, "auto", false, true).parser("keyword", "auto").parser("length_percent").relative(cbWidth)
	r.register(MinWidth, "0px", false, true).parser("length_percent").relative(cbWidth)
	r.register(MaxWidth, "none", false, true).parser("keyword", "none").parser("length_percent").relative(cbWidth)
	r.register(Height, "auto", false, true).parser("keyword", "auto").parser("length_percent").relative(cbHeight)
	r.register(MinHeight, "0px", false, true).parser("length_percent").relative(cbHeight)
	r.register(MaxHeight, "none", false, true).parser("keyword", "none").parser("length_percent").relative(cbHeight)

	r.register(LineHeight, "1.2", true, true).parser("number_length_percent").relative(RelativeFontSize)
	r.register(VerticalAlign, "baseline", false, true).
		parser("keyword", "baseline, middle, sub, super, text-top, text-bottom, top, center, bottom").
		parser("length_percent").relative(RelativeLineHeight)

	r.register(OverflowX, "visible", false, true).parser("keyword", "visible, hidden, auto, scroll")
	r.register(OverflowY, "visible", false, true).parser("keyword", "visible, hidden, auto, scroll")
	r.registerShorthand(Overflow, "overflow-x, overflow-y", ShorthandReplicate)
	r.register(Clip, "auto", false, false).parser("keyword", "auto, none, always").parser("number")
	r.register(Visibility, "visible", false, false).parser("keyword", "visible, hidden")

	r.register(BackgroundColor, "transparent", false, false).parser("color")
	r.registerShorthand(Background, "background-color", ShorthandFallThrough)
	r.register(Color, "white", true, false).parser("color")
	r.register(CaretColor, "auto", true, false).parser("keyword", "auto").parser("color")
	r.register(ImageColor, "white", false, false).parser("color")
	r.register(Opacity, "1", true, false).parser("number")

	r.register(FontFamily, "", true, true).parser("string")
	r.register(FontStyle, "normal", true, true).parser("keyword", "normal, italic")
	r.register(FontWeight, "normal", true, true).parser("keyword", "normal=400, bold=700").parser("number")
	r.register(FontSize, "12px", true, true).parser("length").parser("length_percent").relative(RelativeParentFontSize)
	r.register(LetterSpacing, "normal", true, true).parser("keyword", "normal").parser("length")
	r.registerShorthand(Font, "font-style, font-weight, font-size, font-family", ShorthandFallThrough)

	r.register(TextAlign, "left", true, true).parser("keyword", "left, right, center, justify")
	r.register(TextDecoration, "none", true, false).parser("keyword", "none, underline, overline, line-through")
	r.register(TextTransform, "none", true, true).parser("keyword", "none, capitalize, uppercase, lowercase")
	r.register(WhiteSpace, "normal", true, true).parser("keyword", "normal, pre, nowrap, pre-wrap, pre-line")
	r.register(WordBreak, "normal", true, true).parser("keyword", "normal, break-all, break-word")

	r.register(RowGap, "0px", false, true).parser("length_percent").relative(cbHeight)
	r.register(ColumnGap, "0px", false, true).parser("length_percent").relative(cbHeight)
	r.registerShorthand(Gap, "row-gap, column-gap", ShorthandReplicate)

	r.register(Cursor, "", true, false).parser("string")

	r.register(Drag, "none", false, false).parser("keyword", "none, drag, drag-drop, block, clone")
	r.register(TabIndex, "none", false, false).parser("keyword", "none, auto")
	r.register(Focus, "auto", true, false).parser("keyword", "none, auto")

	for _, id := range []ID{NavUp, NavRight, NavDown, NavLeft} {
		r.register(id, "none", false, false).parser("keyword", "none, auto, horizontal, vertical").parser("string")
	}
	r.registerShorthand(Nav, "nav-up, nav-right, nav-down, nav-left", ShorthandBox)

	r.register(ScrollbarMargin, "0", false, false).parser("length")
	r.register(OverscrollBehavior, "auto", false, false).parser("keyword", "auto, contain")
	r.register(PointerEvents, "auto", true, false).parser("keyword", "none, auto")

	r.register(Perspective, "none", false, false).parser("keyword", "none").parser("length")
	r.register(PerspectiveOriginX, "50%", false, false).parser("keyword", "left, center, right").parser("length_percent")
	r.register(PerspectiveOriginY, "50%", false, false).parser("keyword", "top, center, bottom").parser("length_percent")
	r.registerShorthand(PerspectiveOrigin, "perspective-origin-x, perspective-origin-y", ShorthandFallThrough)
	r.register(Transform, "none", false, false).parser("transform")
	r.register(TransformOriginX, "50%", false, false).parser("keyword", "left, center, right").parser("length_percent")
	r.register(TransformOriginY, "50%", false, false).parser("keyword", "top, center, bottom").parser("length_percent")
	r.register(TransformOriginZ, "0", false, false).parser("length")
	r.registerShorthand(TransformOrigin, "transform-origin-x, transform-origin-y, transform-origin-z", ShorthandFallThrough)

	r.register(Transition, "none", false, false).parser("transition")
	r.register(Animation, "none", false, false).parser("animation")

	r.register(Decorator, "", false, false).parser("decorator")
	r.register(MaskImage, "", false, false).parser("decorator")
	r.register(FontEffect, "", true, false).parser("font_effect")
	r.register(Filter, "", false, false).parser("filter")
	r.register(BackdropFilter, "", false, false).parser("filter")
	r.register(BoxShadow, "none", false, false).parser("box_shadow")
	r.register(FillImage, "", false, false).parser("string")

	r.register(AlignContent, "stretch", false, true).
		parser("keyword", "flex-start, flex-end, center, space-between, space-around, space-evenly, stretch")
	r.register(AlignItems, "stretch", false, true).parser("keyword", "flex-start, flex-end, center, baseline, stretch")
	r.register(AlignSelf, "auto", false, true).parser("keyword", "auto, flex-start, flex-end, center, baseline, stretch")
	r.register(FlexBasis, "auto", false, true).parser("keyword", "auto").parser("length_percent")
	r.register(FlexDirection, "row", false, true).parser("keyword", "row, row-reverse, column, column-reverse")
	r.register(FlexGrow, "0", false, true).parser("number")
	r.register(FlexShrink, "1", false, true).parser("number")
	r.register(FlexWrap, "nowrap", false, true).parser("keyword", "nowrap, wrap, wrap-reverse")
	r.register(JustifyContent, "flex-start", false, true).
		parser("keyword", "flex-start, flex-end, center, space-between, space-around, space-evenly")
	r.registerShorthand(Flex, "flex-grow, flex-shrink, flex-basis", ShorthandFlex)
	r.registerShorthand(FlexFlow, "flex-direction, flex-wrap", ShorthandFallThrough)

	r.register(Language, "", true, true).parser("string")
	r.register(Direction, "auto", true, true).parser("keyword", "auto, ltr, rtl")
}
