package property

import (
	"maps"
	"slices"
)

// Dictionary holds concrete properties, custom variables and dependent
// shorthand terms. It is a plain value container, bookkeeping of dependencies
// and dirtiness belongs to its owner.
type Dictionary struct {
	properties map[ID]*Property
	variables  map[string]*Property
	shorthands map[ShorthandID]Term
}

func NewDictionary() *Dictionary {
	return &Dictionary{
		properties: make(map[ID]*Property),
		variables:  make(map[string]*Property),
		shorthands: make(map[ShorthandID]Term),
	}
}

// SetProperty stores a copy of p under id.
func (d *Dictionary) SetProperty(id ID, p Property) {
	d.properties[id] = &p
}

// Property returns the stored property or nil. Callers must not modify it.
func (d *Dictionary) Property(id ID) *Property {
	if d == nil {
		return nil
	}
	return d.properties[id]
}

// RemoveProperty reports whether something was removed.
func (d *Dictionary) RemoveProperty(id ID) bool {
	if _, ok := d.properties[id]; !ok {
		return false
	}
	delete(d.properties, id)
	return true
}

func (d *Dictionary) SetVariable(name string, p Property) {
	d.variables[name] = &p
}

func (d *Dictionary) Variable(name string) *Property {
	if d == nil {
		return nil
	}
	return d.variables[name]
}

func (d *Dictionary) RemoveVariable(name string) bool {
	if _, ok := d.variables[name]; !ok {
		return false
	}
	delete(d.variables, name)
	return true
}

func (d *Dictionary) SetDependentShorthand(id ShorthandID, t Term) {
	d.shorthands[id] = t
}

func (d *Dictionary) DependentShorthand(id ShorthandID) (Term, bool) {
	if d == nil {
		return nil, false
	}
	t, ok := d.shorthands[id]
	return t, ok
}

func (d *Dictionary) RemoveDependentShorthand(id ShorthandID) bool {
	if _, ok := d.shorthands[id]; !ok {
		return false
	}
	delete(d.shorthands, id)
	return true
}

func (d *Dictionary) NumProperties() int { return len(d.properties) }
func (d *Dictionary) NumVariables() int  { return len(d.variables) }

// PropertyIDs returns the set of ids with a stored property.
func (d *Dictionary) PropertyIDs() IDSet {
	var s IDSet
	if d == nil {
		return s
	}
	for id := range d.properties {
		s.Insert(id)
	}
	return s
}

func (d *Dictionary) ShorthandIDs() ShorthandSet {
	var s ShorthandSet
	if d == nil {
		return s
	}
	for id := range d.shorthands {
		s.Insert(id)
	}
	return s
}

// VariableNames returns variable names in sorted order.
func (d *Dictionary) VariableNames() []string {
	if d == nil {
		return nil
	}
	return slices.Sorted(maps.Keys(d.variables))
}

// Properties iterates properties in increasing id order.
func (d *Dictionary) Properties(yield func(ID, *Property) bool) {
	if d == nil {
		return
	}
	for id := range d.PropertyIDs().All() {
		if !yield(id, d.properties[id]) {
			return
		}
	}
}

// Variables iterates variables in name order.
func (d *Dictionary) Variables(yield func(string, *Property) bool) {
	for _, name := range d.VariableNames() {
		if !yield(name, d.variables[name]) {
			return
		}
	}
}

// Import copies every entry of other into d. Entries of other win unless the
// existing property has higher specificity.
func (d *Dictionary) Import(other *Dictionary, specificity int) {
	for id, p := range other.properties {
		cp := *p
		if specificity > 0 {
			cp.Specificity = specificity
		}
		if old, ok := d.properties[id]; ok && old.Specificity > cp.Specificity {
			continue
		}
		d.properties[id] = &cp
	}
	for name, p := range other.variables {
		cp := *p
		if specificity > 0 {
			cp.Specificity = specificity
		}
		if old, ok := d.variables[name]; ok && old.Specificity > cp.Specificity {
			continue
		}
		d.variables[name] = &cp
	}
	maps.Copy(d.shorthands, other.shorthands)
}
