package document

import (
	"fmt"
	"strings"

	"go.uber.org/multierr"

	"rcss/property"
	"rcss/sheet"
	"rcss/style"
)

// Element is a node of the document. It implements style.Host.
type Element struct {
	doc      *Document
	id       ElementID
	parent   ElementID
	children []ElementID

	tag    string
	attrID string

	style  *style.ElementStyle
	values style.ComputedValues
	fresh  bool
}

func (e *Element) ID() ElementID              { return e.id }
func (e *Element) Tag() string                { return e.tag }
func (e *Element) AttrID() string             { return e.attrID }
func (e *Element) SetAttrID(id string)        { e.attrID = id }
func (e *Element) Style() *style.ElementStyle { return e.style }

// Parent returns nil for the root.
func (e *Element) Parent() *Element {
	return e.doc.Element(e.parent)
}

func (e *Element) Children() []*Element {
	out := make([]*Element, 0, len(e.children))
	for _, c := range e.children {
		out = append(out, e.doc.elements[c])
	}
	return out
}

// Label renders the element as a compound selector, "div#main.note".
func (e *Element) Label() string {
	var sb strings.Builder
	sb.WriteString(e.tag)
	if e.attrID != "" {
		sb.WriteString("#" + e.attrID)
	}
	for _, c := range e.style.ClassNameList() {
		sb.WriteString("." + c)
	}
	for _, p := range e.style.ActivePseudoClasses() {
		sb.WriteString(":" + p)
	}
	return sb.String()
}

func (e *Element) ParentStyle() *style.ElementStyle {
	if p := e.Parent(); p != nil {
		return p.style
	}
	return nil
}

func (e *Element) ChildStyles() []*style.ElementStyle {
	out := make([]*style.ElementStyle, 0, len(e.children))
	for _, c := range e.children {
		out = append(out, e.doc.elements[c].style)
	}
	return out
}

func (e *Element) Values() *style.ComputedValues { return &e.values }

func (e *Element) ParentValues() *style.ComputedValues {
	if p := e.Parent(); p != nil {
		return &p.values
	}
	return nil
}

func (e *Element) DocumentValues() *style.ComputedValues {
	return &e.doc.Root().values
}

// ContainingBlock is the computed size of the parent where it is a length and
// the viewport at the root.
func (e *Element) ContainingBlock() style.Vector2 {
	p := e.Parent()
	if p == nil {
		return e.doc.env.Viewport
	}
	cb := p.ContainingBlock()
	if w := p.values.Common.Width; w.Type == style.Length {
		cb.X = w.Value
	}
	if h := p.values.Common.Height; h.Type == style.Length {
		cb.Y = h.Value
	}
	return cb
}

func (e *Element) Environment() style.Environment {
	return e.doc.env
}

func (e *Element) StartTransition(t property.TransitionDef, start, target property.Property) bool {
	return e.doc.transitions.Start(e, t, start, target)
}

func (e *Element) FontFaceHandle(family string, fs style.FontStyle, weight style.FontWeight, size int) style.FontFaceHandle {
	return e.doc.fonts.FontFaceHandle(family, fs, weight, size)
}

func (e *Element) compute() property.IDSet {
	env := e.doc.env
	changed := e.style.ComputeValues(&e.values, e.ParentValues(), e.DocumentValues(), e.fresh, env.DPRatio, env.Viewport)
	e.fresh = false
	return changed
}

// SetProperty parses a declaration and sets it inline. Shorthands set every
// property they expand to.
func (e *Element) SetProperty(name, value string) error {
	dict := property.NewDictionary()
	if err := e.doc.reg.ParseDeclaration(dict, name, value); err != nil {
		return fmt.Errorf("element %s: %w", e.Label(), err)
	}
	for id, p := range dict.Properties {
		e.style.SetProperty(id, *p)
	}
	for name, p := range dict.Variables {
		e.style.SetVariable(name, *p)
	}
	for id := range dict.ShorthandIDs().All() {
		t, _ := dict.DependentShorthand(id)
		e.style.SetDependentShorthand(id, t)
	}
	return nil
}

// RemoveProperty removes an inline property, variable or every property of a
// shorthand.
func (e *Element) RemoveProperty(name string) error {
	reg := e.doc.reg
	if id, ok := reg.PropertyByName(name); ok {
		e.style.RemoveProperty(id)
		return nil
	}
	if id, ok := reg.ShorthandByName(name); ok {
		e.style.RemoveDependentShorthand(id)
		for p := range reg.ShorthandUnderlying(id).All() {
			e.style.RemoveProperty(p)
		}
		return nil
	}
	if property.IsVariableName(name) {
		e.style.RemoveVariable(name)
		return nil
	}
	return fmt.Errorf("element %s: %w: '%s'", e.Label(), property.ErrUnknownProperty, name)
}

// SetInlineStyle applies the declarations of a style attribute. Invalid
// declarations are skipped and reported together.
func (e *Element) SetInlineStyle(text string) error {
	var errs error
	for _, d := range e.doc.parser.ParseInline([]byte(text)) {
		errs = multierr.Append(errs, e.SetProperty(d.Name, d.Value))
	}
	return errs
}

func (e *Element) SetClass(name string, on bool) bool {
	return e.style.SetClass(name, on)
}

func (e *Element) SetPseudoClass(name string, on bool) bool {
	return e.style.SetPseudoClass(name, on, false)
}

// matchView adapts the element to sheet.Element.
func (e *Element) matchView() sheet.Element {
	return matchView{e}
}

type matchView struct {
	e *Element
}

func (m matchView) Tag() string                       { return m.e.tag }
func (m matchView) ID() string                        { return m.e.attrID }
func (m matchView) IsClassSet(name string) bool       { return m.e.style.IsClassSet(name) }
func (m matchView) IsPseudoClassSet(name string) bool { return m.e.style.IsPseudoClassSet(name) }

func (m matchView) Parent() sheet.Element {
	if p := m.e.Parent(); p != nil {
		return matchView{p}
	}
	return nil
}
