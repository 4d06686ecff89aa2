package property

import (
	"fmt"
	"strings"
	"sync"
)

// Registry is the immutable table of property and shorthand definitions.
// After construction it is safe for concurrent use.
type Registry struct {
	parsers    map[string]Parser
	props      [NumIDs]*Definition
	defaults   [NumIDs]string
	shorthands [NumShorthandIDs]*ShorthandDefinition

	registered   IDSet
	inherited    IDSet
	forcesLayout IDSet
	underlying   [NumShorthandIDs]IDSet
}

// Default returns the process wide registry holding the built-in properties.
var Default = sync.OnceValue(func() *Registry {
	r := &Registry{parsers: defaultParsers()}
	r.registerBuiltins()
	r.finalize()
	r.mustBeComplete()
	return r
})

func (r *Registry) register(id ID, defaultValue string, inherited, forcesLayout bool) builder {
	if r.props[id] != nil {
		panic(fmt.Sprintf("property %s registered twice", id))
	}
	def := &Definition{id: id, inherited: inherited, forcesLayout: forcesLayout}
	r.props[id] = def
	r.defaults[id] = defaultValue
	r.registered.Insert(id)
	if inherited {
		r.inherited.Insert(id)
	}
	if forcesLayout {
		r.forcesLayout.Insert(id)
	}
	return builder{reg: r, def: def}
}

// finalize parses default values once all parsers are attached.
func (r *Registry) finalize() {
	for id := range r.registered.All() {
		def := r.props[id]
		p, err := def.ParseValue(r.defaults[id])
		if err != nil {
			panic(fmt.Sprintf("default value of %s: %v", id, err))
		}
		def.defaultValue = p
	}
	for id := InvalidShorthand + 1; id < NumShorthandIDs; id++ {
		if r.shorthands[id] != nil {
			r.underlying[id] = r.collectUnderlying(id)
		}
	}
}

// mustBeComplete panics unless every known id has a definition.
func (r *Registry) mustBeComplete() {
	for id := InvalidShorthand + 1; id < NumShorthandIDs; id++ {
		if r.shorthands[id] == nil {
			panic(fmt.Sprintf("shorthand %s is not registered", id))
		}
	}
	for id := Invalid + 1; id < NumIDs; id++ {
		if r.props[id] == nil {
			panic(fmt.Sprintf("property %s is not registered", id))
		}
	}
}

func (r *Registry) collectUnderlying(id ShorthandID) IDSet {
	var s IDSet
	for _, item := range r.shorthands[id].items {
		if item.Shorthand.Valid() {
			s = s.Union(r.collectUnderlying(item.Shorthand))
			continue
		}
		s.Insert(item.Property)
	}
	return s
}

// Definition returns the definition of id or nil.
func (r *Registry) Definition(id ID) *Definition {
	if !id.Valid() {
		return nil
	}
	return r.props[id]
}

func (r *Registry) Shorthand(id ShorthandID) *ShorthandDefinition {
	if !id.Valid() {
		return nil
	}
	return r.shorthands[id]
}

func (r *Registry) Registered() IDSet   { return r.registered }
func (r *Registry) Inherited() IDSet    { return r.inherited }
func (r *Registry) ForcesLayout() IDSet { return r.forcesLayout }

// ShorthandUnderlying returns every concrete property a shorthand expands to,
// following nested shorthands.
func (r *Registry) ShorthandUnderlying(id ShorthandID) IDSet {
	if !id.Valid() {
		return IDSet{}
	}
	return r.underlying[id]
}

// PropertyByName looks up a property id, names are case insensitive.
func (r *Registry) PropertyByName(name string) (ID, bool) {
	id, ok := idByName[strings.ToLower(name)]
	return id, ok && r.props[id] != nil
}

func (r *Registry) ShorthandByName(name string) (ShorthandID, bool) {
	id, ok := shorthandByName[strings.ToLower(name)]
	return id, ok && r.shorthands[id] != nil
}

// IsVariableName reports whether name has the shape of a custom property.
func IsVariableName(name string) bool {
	return len(name) > 2 && strings.HasPrefix(name, "--")
}

// ParseDeclaration parses "name: value" into dict. Custom properties are stored
// as variables, shorthands are expanded or kept as dependent terms when they
// reference variables.
func (r *Registry) ParseDeclaration(dict *Dictionary, name, value string) error {
	if IsVariableName(name) {
		if _, ok := r.PropertyByName(name); !ok {
			r.parseVariable(dict, name, value)
			return nil
		}
	}
	if id, ok := r.PropertyByName(name); ok {
		return r.ParseProperty(dict, id, value)
	}
	if id, ok := r.ShorthandByName(name); ok {
		return r.ParseShorthand(dict, id, value)
	}
	return fmt.Errorf("%w: '%s'", ErrUnknownProperty, name)
}

// ParseProperty parses a value for a single concrete property.
func (r *Registry) ParseProperty(dict *Dictionary, id ID, value string) error {
	return r.parseProperty(dict, id, value)
}

func (r *Registry) parseProperty(dict *Dictionary, id ID, value string) error {
	def := r.Definition(id)
	if def == nil {
		return fmt.Errorf("%w: %d", ErrUnknownProperty, id)
	}
	values := SplitValues(value, SplitNone)
	if len(values) == 0 {
		return fmt.Errorf("%w: %s: empty value", ErrInvalidValue, id)
	}
	if term, ok := ParseTerm(values); ok {
		p := NewTerm(term)
		p.Definition = def
		dict.SetProperty(id, p)
		return nil
	}
	p, err := def.ParseValue(values[0])
	if err != nil {
		return err
	}
	dict.SetProperty(id, p)
	return nil
}

// ParseShorthand expands a shorthand value into dict. Nothing is written when
// the value is rejected.
func (r *Registry) ParseShorthand(dict *Dictionary, id ShorthandID, value string) error {
	scratch := NewDictionary()
	if err := r.parseShorthand(scratch, id, value); err != nil {
		return err
	}
	dict.Import(scratch, 0)
	return nil
}

func (r *Registry) parseVariable(dict *Dictionary, name, value string) {
	values := SplitValues(value, SplitWhitespace)
	if len(values) == 0 {
		return
	}
	if term, ok := ParseTerm(values); ok {
		dict.SetVariable(name, NewTerm(term))
		return
	}
	dict.SetVariable(name, NewString(strings.Join(values, " ")))
}

// ParseVariable stores a custom property value in dict.
func (r *Registry) ParseVariable(dict *Dictionary, name, value string) error {
	if !IsVariableName(name) {
		return fmt.Errorf("%w: '%s' is not a variable name", ErrUnknownProperty, name)
	}
	r.parseVariable(dict, name, value)
	return nil
}

// WithDefaults fills every property missing from dict with its default value.
func (r *Registry) WithDefaults(dict *Dictionary) {
	for id := range r.registered.All() {
		if dict.Property(id) == nil {
			dict.SetProperty(id, r.props[id].defaultValue)
		}
	}
}

// String renders dict as "name: value;" lines in id order.
func (r *Registry) String(dict *Dictionary) string {
	var sb strings.Builder
	for id, p := range dict.Properties {
		fmt.Fprintf(&sb, "%s: %s;\n", id, p)
	}
	for name, p := range dict.Variables {
		fmt.Fprintf(&sb, "%s: %s;\n", name, p)
	}
	for id := range dict.ShorthandIDs().All() {
		t, _ := dict.DependentShorthand(id)
		fmt.Fprintf(&sb, "%s: %s;\n", id, t)
	}
	return sb.String()
}

// Property is an alias of Definition.
func (r *Registry) Property(id ID) *Definition {
	return r.Definition(id)
}

// ParsePropertyValue parses value with the parsers of id without storing it.
func (r *Registry) ParsePropertyValue(id ID, value string) (Property, error) {
	def := r.Definition(id)
	if def == nil {
		return Property{}, fmt.Errorf("%w: %d", ErrUnknownProperty, id)
	}
	return def.ParseValue(value)
}
