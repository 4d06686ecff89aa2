package style

import (
	"maps"
	"slices"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"rcss/property"
)

// ElementStyle owns the style state of one element: inline values, the active
// rule definition, dirty sets, variable dependencies and pseudo class and
// class state. It is not safe for concurrent use.
type ElementStyle struct {
	host   Host
	reg    *property.Registry
	log    *zap.Logger
	tracer *Tracer

	cycleLevel  zapcore.Level
	cycleReport bool

	definition *ElementDefinition
	store      *Store
	deps       *Tracker

	dirtyProperties property.IDSet
	dirtyShorthands property.ShorthandSet
	dirtyVariables  map[string]struct{}

	pseudoClasses map[string]PseudoClassState
	classes       []string
}

type Option func(*ElementStyle)

func WithLogger(log *zap.Logger) Option {
	return func(s *ElementStyle) {
		if log != nil {
			s.log = log.Named("style")
		}
	}
}

func WithRegistry(reg *property.Registry) Option {
	return func(s *ElementStyle) {
		if reg != nil {
			s.reg = reg
		}
	}
}

func WithTracer(t *Tracer) Option {
	return func(s *ElementStyle) {
		s.tracer = t
	}
}

// WithCycleReport selects the level variable cycles are logged at. Cycles are
// always terminated, with enabled false they are not logged.
func WithCycleReport(level zapcore.Level, enabled bool) Option {
	return func(s *ElementStyle) {
		s.cycleLevel, s.cycleReport = level, enabled
	}
}

// New creates the style of host. Host may be nil for detached elements.
func New(host Host, options ...Option) *ElementStyle {
	s := &ElementStyle{
		host:           host,
		reg:            property.Default(),
		log:            zap.NewNop(),
		cycleLevel:     zapcore.DebugLevel,
		cycleReport:    true,
		store:          NewStore(),
		deps:           NewTracker(),
		dirtyVariables: make(map[string]struct{}),
		pseudoClasses:  make(map[string]PseudoClassState),
	}
	for _, o := range options {
		o(s)
	}
	return s
}

func (s *ElementStyle) parent() *ElementStyle {
	if s.host == nil {
		return nil
	}
	return s.host.ParentStyle()
}

func (s *ElementStyle) children() []*ElementStyle {
	if s.host == nil {
		return nil
	}
	return s.host.ChildStyles()
}

func (s *ElementStyle) tag() string {
	if s.host == nil {
		return ""
	}
	return s.host.Tag()
}

func (s *ElementStyle) warn(msg string, fields ...zap.Field) {
	s.log.Warn(msg, append([]zap.Field{zap.String("element", s.tag())}, fields...)...)
}

func (s *ElementStyle) reportCycle(stack []string, name string) {
	s.tracer.TraceCycle(s.tag(), stack, name)
	if !s.cycleReport {
		return
	}
	if ce := s.log.Check(s.cycleLevel, "Variable reference cycle"); ce != nil {
		ce.Write(zap.String("element", s.tag()), zap.Strings("chain", append(slices.Clone(stack), name)))
	}
}

// Definition returns the active rule definition, possibly nil.
func (s *ElementStyle) Definition() *ElementDefinition {
	return s.definition
}

// LocalProperty returns the inline value of id or the value of the active
// definition.
func (s *ElementStyle) LocalProperty(id property.ID) *property.Property {
	if p := s.store.Property(id); p != nil {
		return p
	}
	return s.definition.Property(id)
}

func (s *ElementStyle) LocalVariable(name string) *property.Property {
	if p := s.store.Variable(name); p != nil {
		return p
	}
	return s.definition.Variable(name)
}

// Property returns the value of id after the cascade: local resolved value,
// rule value, for inherited properties the nearest ancestor's local value and
// finally the registered default.
func (s *ElementStyle) Property(id property.ID) *property.Property {
	return s.cascade(id, s.store.Resolved(), s.definition)
}

func (s *ElementStyle) cascade(id property.ID, resolved *property.Dictionary, def *ElementDefinition) *property.Property {
	if p := resolved.Property(id); p != nil {
		return p
	}
	if p := def.Property(id); p != nil {
		return p
	}
	pd := s.reg.Definition(id)
	if pd == nil {
		return nil
	}
	if pd.Inherited() {
		for a := s.parent(); a != nil; a = a.parent() {
			if p := a.LocalProperty(id); p != nil {
				return p
			}
		}
	}
	return pd.Default()
}

// Variable returns the nearest local or ancestor value of a variable.
func (s *ElementStyle) Variable(name string) *property.Property {
	if p := s.LocalVariable(name); p != nil {
		return p
	}
	for a := s.parent(); a != nil; a = a.parent() {
		if p := a.LocalVariable(name); p != nil {
			return p
		}
	}
	return nil
}

// LocalStyleProperties iterates authored inline properties.
func (s *ElementStyle) LocalStyleProperties(yield func(property.ID, *property.Property) bool) {
	s.store.Source().Properties(yield)
}

// LocalStyleVariables iterates authored inline variables.
func (s *ElementStyle) LocalStyleVariables(yield func(string, *property.Property) bool) {
	s.store.Source().Variables(yield)
}

// Store exposes the inline values for dumps. Callers must not modify it.
func (s *ElementStyle) Store() *Store {
	return s.store
}

// SetProperty sets an inline value. Values holding a variable term are
// resolved on the next ComputeValues.
func (s *ElementStyle) SetProperty(id property.ID, p property.Property) bool {
	def := s.reg.Definition(id)
	if def == nil {
		return false
	}
	p.Definition = def
	s.store.SetProperty(id, p)
	s.updatePropertyDependencies(id)
	s.dirtyProperties.Insert(id)
	return true
}

func (s *ElementStyle) SetVariable(name string, p property.Property) bool {
	if !property.IsVariableName(name) {
		return false
	}
	s.store.SetVariable(name, p)
	s.dirtyVariables[name] = struct{}{}
	return true
}

func (s *ElementStyle) SetDependentShorthand(id property.ShorthandID, term property.Term) bool {
	if s.reg.Shorthand(id) == nil {
		return false
	}
	s.store.SetDependentShorthand(id, term)
	s.updateShorthandDependencies(id)
	s.dirtyShorthands.Insert(id)
	return true
}

// RemoveProperty drops an inline value. Any active dependent shorthand
// covering id is expanded again so a rule value can take its place.
func (s *ElementStyle) RemoveProperty(id property.ID) {
	removed := s.store.RemoveProperty(id)
	s.updatePropertyDependencies(id)
	if !removed {
		return
	}
	s.dirtyProperties.Insert(id)
	active := s.store.Source().ShorthandIDs().Union(s.definition.DependentShorthandIDs())
	for sid := range active.All() {
		if s.reg.ShorthandUnderlying(sid).Contains(id) {
			s.dirtyShorthands.Insert(sid)
		}
	}
}

func (s *ElementStyle) RemoveVariable(name string) {
	if s.store.RemoveVariable(name) {
		s.dirtyVariables[name] = struct{}{}
	}
}

func (s *ElementStyle) RemoveDependentShorthand(id property.ShorthandID) {
	if s.store.RemoveDependentShorthand(id) {
		s.updateShorthandDependencies(id)
		s.dirtyShorthands.Insert(id)
	}
}

// SetDictionary applies every entry of dict as inline values.
func (s *ElementStyle) SetDictionary(dict *property.Dictionary) {
	for id, p := range dict.Properties {
		s.SetProperty(id, *p)
	}
	for name, p := range dict.Variables {
		s.SetVariable(name, *p)
	}
	for id := range dict.ShorthandIDs().All() {
		t, _ := dict.DependentShorthand(id)
		s.SetDependentShorthand(id, t)
	}
}

func (s *ElementStyle) updatePropertyDependencies(id property.ID) {
	var term property.Term
	p := s.store.SourceProperty(id)
	if p == nil {
		p = s.definition.Property(id)
	}
	if p != nil && p.IsTerm() {
		term = p.Term()
	}
	s.deps.UpdateProperty(id, term)
}

func (s *ElementStyle) updateShorthandDependencies(id property.ShorthandID) {
	term, ok := s.store.SourceShorthand(id)
	if !ok {
		term, _ = s.definition.DependentShorthand(id)
	}
	s.deps.UpdateShorthand(id, term)
}

func (s *ElementStyle) DirtyProperty(id property.ID) {
	s.dirtyProperties.Insert(id)
}

func (s *ElementStyle) DirtyProperties(ids property.IDSet) {
	s.dirtyProperties = s.dirtyProperties.Union(ids)
}

func (s *ElementStyle) DirtyVariable(name string) {
	s.dirtyVariables[name] = struct{}{}
}

// DirtyInheritedProperties marks every inheritable property dirty, used when
// an element is attached to a new parent.
func (s *ElementStyle) DirtyInheritedProperties() {
	s.dirtyProperties = s.dirtyProperties.Union(s.reg.Inherited())
}

func (s *ElementStyle) localIDs() property.IDSet {
	return s.store.Resolved().PropertyIDs().Union(s.definition.PropertyIDs())
}

// DirtyPropertiesWithUnits marks dirty every local property using any of
// units.
func (s *ElementStyle) DirtyPropertiesWithUnits(units property.Unit) {
	for id := range s.localIDs().All() {
		if p := s.LocalProperty(id); p != nil && p.Unit.Any(units) {
			s.dirtyProperties.Insert(id)
		}
	}
}

func (s *ElementStyle) DirtyPropertiesWithUnitsRecursive(units property.Unit) {
	s.DirtyPropertiesWithUnits(units)
	for _, child := range s.children() {
		child.DirtyPropertiesWithUnitsRecursive(units)
	}
}

func (s *ElementStyle) AnyPropertiesDirty() bool {
	return !s.dirtyProperties.Empty() || !s.dirtyShorthands.Empty() || len(s.dirtyVariables) > 0
}

// DirtyVariables returns the pending variable names in sorted order.
func (s *ElementStyle) DirtyVariables() []string {
	return slices.Sorted(maps.Keys(s.dirtyVariables))
}

// expandDirtyVariables adds every local variable whose term references a
// dirty variable, transitively.
func (s *ElementStyle) expandDirtyVariables() {
	terms := make(map[string]property.Term)
	collect := func(name string, p *property.Property) {
		if _, ok := terms[name]; !ok && p.IsTerm() {
			terms[name] = p.Term()
		}
	}
	for name, p := range s.store.Source().Variables {
		collect(name, p)
	}
	for _, name := range s.definition.VariableNames() {
		if s.store.SourceVariable(name) == nil {
			collect(name, s.definition.Variable(name))
		}
	}
	for changed := true; changed; {
		changed = false
		for name, term := range terms {
			if _, ok := s.dirtyVariables[name]; ok {
				continue
			}
			for _, dep := range term.Variables() {
				if _, ok := s.dirtyVariables[dep]; ok {
					s.dirtyVariables[name] = struct{}{}
					changed = true
					break
				}
			}
		}
	}
}

// ComputeValues resolves everything dirty and writes the result into values.
// parent and document may be nil, fresh tells that values still hold the
// defaults. Dirty inheritable properties and dirty variables are handed to
// the children, which must compute their own values afterwards. The returned
// set holds the properties that were recomputed.
func (s *ElementStyle) ComputeValues(values, parent, document *ComputedValues, fresh bool, dpRatio float64, viewport Vector2) property.IDSet {
	r := s.newResolver(s.store, s.definition, s.dirtyVariables)

	if len(s.dirtyVariables) > 0 {
		s.expandDirtyVariables()
		for _, name := range s.DirtyVariables() {
			r.resolveVariable(name)
			ids, shorthands := s.deps.Dependents(name)
			s.dirtyProperties = s.dirtyProperties.Union(ids)
			s.dirtyShorthands = s.dirtyShorthands.Union(shorthands)
		}
	}

	for id := range s.dirtyShorthands.All() {
		s.dirtyProperties = s.dirtyProperties.Union(r.resolveShorthand(id))
	}
	s.dirtyShorthands.Clear()

	if !s.dirtyProperties.Empty() {
		for id := range s.dirtyProperties.All() {
			r.resolveProperty(id)
		}
		s.materialize(values, parent, document, fresh, dpRatio, viewport)
	}

	inherited := s.dirtyProperties.Intersect(s.reg.Inherited())
	if !inherited.Empty() || len(s.dirtyVariables) > 0 {
		for _, child := range s.children() {
			child.dirtyProperties = child.dirtyProperties.Union(inherited)
			for name := range s.dirtyVariables {
				child.dirtyVariables[name] = struct{}{}
			}
		}
	}

	result := s.dirtyProperties
	if !result.Empty() {
		s.tracer.TraceCompute(s.tag(), result.String())
	}
	s.dirtyProperties.Clear()
	clear(s.dirtyVariables)
	return result
}

var fontProperties = property.SetOf(property.FontFamily, property.FontStyle, property.FontWeight, property.FontSize)

// concreteLocal is LocalProperty without unresolved terms.
func (s *ElementStyle) concreteLocal(id property.ID) *property.Property {
	if p := s.LocalProperty(id); p != nil && !p.IsTerm() {
		return p
	}
	return nil
}

func (s *ElementStyle) materialize(values, parent, document *ComputedValues, fresh bool, dpRatio float64, viewport Vector2) {
	defaults := DefaultComputedValues()
	fontSizeBefore := values.Inherited.FontSize
	lineHeightBefore := values.Inherited.LineHeight

	// Removed properties must fall back to their defaults.
	if !fresh {
		values.CopyNonInherited(defaults)
	}
	if parent != nil {
		values.CopyInherited(parent)
	} else if !fresh {
		values.CopyInherited(defaults)
	}

	c := converter{dpRatio: dpRatio, viewport: viewport}
	in := &values.Inherited

	dirtyEm := false
	if s.dirtyProperties.Contains(property.FontSize) {
		if p := s.concreteLocal(property.FontSize); p != nil {
			parentFontSize, remBase := defaults.Inherited.FontSize, defaults.Inherited.FontSize
			if parent != nil {
				parentFontSize = parent.Inherited.FontSize
			}
			if document != nil && document != values {
				remBase = document.Inherited.FontSize
			}
			in.FontSize = c.fontSizeValue(p.NumericValue(), parentFontSize, remBase)
		} else if parent != nil {
			in.FontSize = parent.Inherited.FontSize
		}
		if in.FontSize != fontSizeBefore {
			dirtyEm = true
			s.dirtyProperties.Insert(property.LineHeight)
		}
	} else {
		in.FontSize = fontSizeBefore
	}

	c.fontSize = in.FontSize
	c.docFontSize = defaults.Inherited.FontSize
	if document != nil {
		c.docFontSize = document.Inherited.FontSize
	}

	// vertical-align depends on line-height
	if s.dirtyProperties.Contains(property.LineHeight) {
		if p := s.concreteLocal(property.LineHeight); p != nil {
			in.LineHeight = c.lineHeight(p)
		} else {
			from := parent
			if from == nil {
				from = defaults
			}
			plh := from.Inherited.LineHeight
			if plh.InheritType == LineHeightNumber {
				in.LineHeight = LineHeight{Value: c.fontSize * plh.InheritValue, InheritType: LineHeightNumber, InheritValue: plh.InheritValue}
			} else {
				in.LineHeight = plh
			}
		}
		if in.LineHeight.Value != lineHeightBefore.Value || in.LineHeight.InheritValue != lineHeightBefore.InheritValue {
			s.dirtyProperties.Insert(property.VerticalAlign)
		}
	} else {
		in.LineHeight = lineHeightBefore
	}

	fontFace := false
	for id := range s.localIDs().All() {
		p := s.concreteLocal(id)
		if p == nil {
			continue
		}
		if dirtyEm && (p.Unit == property.UnitEm || p.Unit == property.UnitRem && document == values) {
			s.dirtyProperties.Insert(id)
		}
		ff, ok := c.apply(values, id, p)
		if !ok {
			s.log.DPanic("Property has no computed value conversion", zap.String("element", s.tag()), zap.Uint8("id", uint8(id)))
			continue
		}
		fontFace = fontFace || ff
	}

	if (fontFace || !s.dirtyProperties.Intersect(fontProperties).Empty()) && s.host != nil {
		in.FontFaceHandle = s.host.FontFaceHandle(in.FontFamily, in.FontStyle, in.FontWeight, int(in.FontSize))
	}
}

// UpdateDefinition makes def the active rule definition. Properties whose
// value differs between the old and the new definition are marked dirty,
// unless a transition takes them over.
func (s *ElementStyle) UpdateDefinition(def *ElementDefinition) {
	if def == s.definition {
		return
	}
	old := s.definition

	all := old.PropertyIDs().Union(def.PropertyIDs())
	changed := all
	shorthands := old.DependentShorthandIDs().Union(def.DependentShorthandIDs())
	variables := make(map[string]struct{})
	for _, name := range append(old.VariableNames(), def.VariableNames()...) {
		variables[name] = struct{}{}
	}

	var transitioned property.IDSet
	if old != nil && def != nil {
		for id := range old.PropertyIDs().Intersect(def.PropertyIDs()).All() {
			if old.Property(id).Equal(*def.Property(id)) {
				changed.Remove(id)
			}
		}
		for id := range shorthands.All() {
			ot, inOld := old.DependentShorthand(id)
			nt, inNew := def.DependentShorthand(id)
			if inOld && inNew && slices.Equal(ot, nt) {
				shorthands.Remove(id)
			}
		}
		for _, name := range old.VariableNames() {
			if nv := def.Variable(name); nv != nil && old.Variable(name).Equal(*nv) {
				delete(variables, name)
			}
		}
		transitioned = s.transitionChanges(&changed, old, def)
	}

	s.definition = def

	for name := range variables {
		s.dirtyVariables[name] = struct{}{}
	}
	for id := range shorthands.All() {
		s.updateShorthandDependencies(id)
		s.dirtyShorthands.Insert(id)
	}
	for id := range all.All() {
		s.updatePropertyDependencies(id)
	}
	s.dirtyProperties = s.dirtyProperties.Union(changed)

	// Anything resolved from a term may now resolve differently.
	for id := range s.store.Resolved().PropertyIDs().All() {
		if src := s.store.SourceProperty(id); src == nil || src.IsTerm() || s.store.Derived(id) {
			s.store.dropResolved(id)
			s.dirtyProperties.Insert(id)
		}
	}
	s.dirtyShorthands = s.dirtyShorthands.Union(s.store.Source().ShorthandIDs()).Union(def.DependentShorthandIDs())
	for _, name := range s.store.Resolved().VariableNames() {
		if src := s.store.SourceVariable(name); src == nil || src.IsTerm() {
			s.store.Resolved().RemoveVariable(name)
			s.dirtyVariables[name] = struct{}{}
		}
	}

	if s.tracer.IsEnabled() {
		var claimed string
		if !transitioned.Empty() {
			claimed = transitioned.String()
		}
		s.tracer.TraceDefinition(s.tag(), changed.String(), claimed)
	}
}

// ResolveNumericValue converts lengths to pixels and scales numbers and
// percentages by base.
func (s *ElementStyle) ResolveNumericValue(v property.NumericValue, base float64) float64 {
	switch {
	case v.Unit.Any(property.UnitLength):
		return s.computeLength(v)
	case v.Unit == property.UnitNumber:
		return v.Number * base
	case v.Unit == property.UnitPercent:
		return v.Number * base * 0.01
	case v.Unit.Any(property.UnitAngle):
		return ComputeAngle(v)
	}
	return 0
}

// ResolveRelativeLength converts v to pixels, resolving numbers and
// percentages against target. For the parent font size target em is relative
// to the parent too.
func (s *ElementStyle) ResolveRelativeLength(v property.NumericValue, target property.RelativeTarget) float64 {
	if v.Unit.Any(property.UnitLength) && !(v.Unit == property.UnitEm && target == property.RelativeParentFontSize) {
		return s.computeLength(v)
	}

	var base float64
	switch target {
	case property.RelativeNone:
		base = 1
	case property.RelativeContainingBlockWidth:
		base = s.containingBlock().X
	case property.RelativeContainingBlockHeight:
		base = s.containingBlock().Y
	case property.RelativeFontSize:
		base = s.values().Inherited.FontSize
	case property.RelativeParentFontSize:
		base = DefaultComputedValues().Inherited.FontSize
		if s.host != nil {
			if pv := s.host.ParentValues(); pv != nil {
				base = pv.Inherited.FontSize
			}
		}
	case property.RelativeLineHeight:
		base = s.values().Inherited.LineHeight.Value
	}

	switch v.Unit {
	case property.UnitEm, property.UnitNumber:
		return v.Number * base
	case property.UnitPercent:
		return v.Number * base * 0.01
	}
	return 0
}

func (s *ElementStyle) computeLength(v property.NumericValue) float64 {
	env := Environment{DPRatio: 1}
	docFontSize := DefaultComputedValues().Inherited.FontSize
	if s.host != nil {
		env = s.host.Environment()
		if dv := s.host.DocumentValues(); dv != nil {
			docFontSize = dv.Inherited.FontSize
		}
	}
	return ComputeLength(v, s.values().Inherited.FontSize, docFontSize, env.DPRatio, env.Viewport)
}

func (s *ElementStyle) values() *ComputedValues {
	if s.host != nil {
		if v := s.host.Values(); v != nil {
			return v
		}
	}
	return DefaultComputedValues()
}

func (s *ElementStyle) containingBlock() Vector2 {
	if s.host == nil {
		return Vector2{}
	}
	return s.host.ContainingBlock()
}
