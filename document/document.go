// Package document keeps a tree of styled elements and drives the style
// engine over it.
package document

import (
	"errors"
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"rcss/css"
	"rcss/property"
	"rcss/sheet"
	"rcss/style"
)

// ElementID indexes an element in its document. IDs are stable for the life
// of the document.
type ElementID int32

// NoElement is the parent of the root.
const NoElement ElementID = -1

var ErrNoElement = errors.New("no such element")

// Document is an arena of elements plus the context they are computed in.
type Document struct {
	elements []*Element
	env      style.Environment

	reg         *property.Registry
	parser      *css.Parser
	sheet       *sheet.Sheet
	cache       *sheet.Cache
	fonts       FontEngine
	transitions *TransitionRecorder
	tracer      *style.Tracer

	cycleLevel  zapcore.Level
	cycleReport bool

	log *zap.Logger
}

type Option func(*Document)

func WithLogger(log *zap.Logger) Option {
	return func(d *Document) {
		if log != nil {
			d.log = log
		}
	}
}

func WithTracer(t *style.Tracer) Option {
	return func(d *Document) {
		d.tracer = t
	}
}

func WithFontEngine(f FontEngine) Option {
	return func(d *Document) {
		if f != nil {
			d.fonts = f
		}
	}
}

// WithCycleReport is passed on to every element style.
func WithCycleReport(level zapcore.Level, enabled bool) Option {
	return func(d *Document) {
		d.cycleLevel, d.cycleReport = level, enabled
	}
}

func WithEnvironment(env style.Environment) Option {
	return func(d *Document) {
		d.env = env
	}
}

func New(options ...Option) *Document {
	d := &Document{
		env:         style.Environment{DPRatio: 1, Viewport: style.Vector2{X: 1024, Y: 768}},
		reg:         property.Default(),
		cycleLevel:  zapcore.DebugLevel,
		cycleReport: true,
		log:         zap.NewNop(),
	}
	for _, o := range options {
		o(d)
	}
	if d.fonts == nil {
		d.fonts = NewMemoryFontEngine(d.log)
	}
	d.transitions = NewTransitionRecorder(d.log)
	d.parser = css.NewParser(d.log)
	d.cache = sheet.NewCache(nil, d.log)
	d.log = d.log.Named("document")
	return d
}

// AppendChild creates an element under parent. The first element must be
// created with NoElement as parent and becomes the root.
func (d *Document) AppendChild(parent ElementID, tag string) (ElementID, error) {
	switch {
	case parent == NoElement && len(d.elements) > 0:
		return NoElement, errors.New("document already has a root")
	case parent != NoElement && d.Element(parent) == nil:
		return NoElement, fmt.Errorf("parent %d: %w", parent, ErrNoElement)
	}

	id := ElementID(len(d.elements))
	e := &Element{
		doc:    d,
		id:     id,
		parent: parent,
		tag:    tag,
		values: *style.DefaultComputedValues(),
		fresh:  true,
	}
	e.style = style.New(e,
		style.WithLogger(d.log),
		style.WithRegistry(d.reg),
		style.WithTracer(d.tracer),
		style.WithCycleReport(d.cycleLevel, d.cycleReport),
	)
	e.style.DirtyInheritedProperties()
	d.elements = append(d.elements, e)
	if parent != NoElement {
		p := d.elements[parent]
		p.children = append(p.children, id)
	}
	return id, nil
}

// Element returns nil for unknown ids.
func (d *Document) Element(id ElementID) *Element {
	if id < 0 || int(id) >= len(d.elements) {
		return nil
	}
	return d.elements[id]
}

// Root returns nil for an empty document.
func (d *Document) Root() *Element {
	return d.Element(0)
}

func (d *Document) Len() int {
	return len(d.elements)
}

// ElementByID finds the first element in tree order with the id attribute.
func (d *Document) ElementByID(attr string) *Element {
	for _, e := range d.elements {
		if e.attrID == attr {
			return e
		}
	}
	return nil
}

func (d *Document) Environment() style.Environment {
	return d.env
}

func (d *Document) Fonts() FontEngine {
	return d.fonts
}

func (d *Document) Transitions() *TransitionRecorder {
	return d.transitions
}

func (d *Document) Sheet() *sheet.Sheet {
	return d.sheet
}

// Definitions exposes the definition cache.
func (d *Document) Definitions() *sheet.Cache {
	return d.cache
}

// SetStyleSheet replaces the active stylesheet. Declarations that fail to
// parse are reported in the returned error, the rest of the sheet is applied.
func (d *Document) SetStyleSheet(text []byte, source string) error {
	compiled, err := sheet.Compile(d.parser.Parse(text, source), d.reg, d.log)
	d.sheet = compiled
	d.cache = sheet.NewCache(compiled, d.log)
	if reg, ok := d.fonts.(interface{ Register(css.FontFace) }); ok {
		for _, face := range compiled.FontFaces() {
			reg.Register(face)
		}
	}
	for _, w := range compiled.Warnings() {
		d.log.Warn("Stylesheet construct ignored", zap.String("source", source), zap.String("warning", w))
	}
	if err != nil {
		return fmt.Errorf("stylesheet %s: %w", source, err)
	}
	return nil
}

// SetViewport changes the viewport and dirties viewport relative values.
func (d *Document) SetViewport(v style.Vector2) {
	if d.env.Viewport == v {
		return
	}
	d.env.Viewport = v
	if root := d.Root(); root != nil {
		root.style.DirtyPropertiesWithUnitsRecursive(property.UnitVw | property.UnitVh)
	}
}

// SetDPRatio changes the density ratio and dirties dp scaled values.
func (d *Document) SetDPRatio(ratio float64) {
	if ratio <= 0 || d.env.DPRatio == ratio {
		return
	}
	d.env.DPRatio = ratio
	if root := d.Root(); root != nil {
		root.style.DirtyPropertiesWithUnitsRecursive(property.UnitDPScalable)
	}
}

// Update matches every element against the stylesheet and computes values
// parents first. It returns the properties that changed per element.
func (d *Document) Update() map[ElementID]property.IDSet {
	changed := make(map[ElementID]property.IDSet)
	if root := d.Root(); root != nil {
		d.update(root, changed)
	}
	return changed
}

func (d *Document) update(e *Element, changed map[ElementID]property.IDSet) {
	vp := sheet.Viewport{Width: d.env.Viewport.X, Height: d.env.Viewport.Y}
	e.style.UpdateDefinition(d.cache.Definition(e.matchView(), vp))
	set := e.compute()
	if !set.Empty() {
		changed[e.id] = set
		d.log.Debug("Element computed", zap.String("element", e.Label()), zap.Stringer("changed", set))
	}
	// rem values below the root follow its font size
	remDirty := e == d.Root() && set.Contains(property.FontSize)
	for _, c := range e.children {
		child := d.elements[c]
		if remDirty {
			child.style.DirtyPropertiesWithUnitsRecursive(property.UnitRem)
		}
		d.update(child, changed)
	}
}
