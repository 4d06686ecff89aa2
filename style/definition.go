package style

import "rcss/property"

// ElementDefinition is the immutable set of rule-derived properties, variables
// and dependent shorthands matching an element. Definitions are shared between
// elements and must not be modified after construction. A nil definition is
// valid and empty.
type ElementDefinition struct {
	props *property.Dictionary
}

// NewElementDefinition takes ownership of dict.
func NewElementDefinition(dict *property.Dictionary) *ElementDefinition {
	if dict == nil {
		dict = property.NewDictionary()
	}
	return &ElementDefinition{props: dict}
}

func (d *ElementDefinition) Property(id property.ID) *property.Property {
	if d == nil {
		return nil
	}
	return d.props.Property(id)
}

func (d *ElementDefinition) Variable(name string) *property.Property {
	if d == nil {
		return nil
	}
	return d.props.Variable(name)
}

func (d *ElementDefinition) DependentShorthand(id property.ShorthandID) (property.Term, bool) {
	if d == nil {
		return nil, false
	}
	return d.props.DependentShorthand(id)
}

func (d *ElementDefinition) PropertyIDs() property.IDSet {
	if d == nil {
		return property.IDSet{}
	}
	return d.props.PropertyIDs()
}

func (d *ElementDefinition) DependentShorthandIDs() property.ShorthandSet {
	if d == nil {
		return property.ShorthandSet{}
	}
	return d.props.ShorthandIDs()
}

func (d *ElementDefinition) VariableNames() []string {
	if d == nil {
		return nil
	}
	return d.props.VariableNames()
}

// Dictionary exposes the underlying values for dumps. Callers must not modify
// the result.
func (d *ElementDefinition) Dictionary() *property.Dictionary {
	if d == nil {
		return nil
	}
	return d.props
}
