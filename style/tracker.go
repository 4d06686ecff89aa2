package style

import "rcss/property"

// Tracker maps variable names to the properties and dependent shorthands whose
// terms reference them.
type Tracker struct {
	properties map[string]property.IDSet
	shorthands map[string]property.ShorthandSet
}

func NewTracker() *Tracker {
	return &Tracker{
		properties: make(map[string]property.IDSet),
		shorthands: make(map[string]property.ShorthandSet),
	}
}

// UpdateProperty forgets every dependency of id and records the references of
// term instead. A nil term only removes.
func (t *Tracker) UpdateProperty(id property.ID, term property.Term) {
	for name, set := range t.properties {
		set.Remove(id)
		if set.Empty() {
			delete(t.properties, name)
			continue
		}
		t.properties[name] = set
	}
	for _, name := range term.Variables() {
		set := t.properties[name]
		set.Insert(id)
		t.properties[name] = set
	}
}

func (t *Tracker) UpdateShorthand(id property.ShorthandID, term property.Term) {
	for name, set := range t.shorthands {
		set.Remove(id)
		if set.Empty() {
			delete(t.shorthands, name)
			continue
		}
		t.shorthands[name] = set
	}
	for _, name := range term.Variables() {
		set := t.shorthands[name]
		set.Insert(id)
		t.shorthands[name] = set
	}
}

// Dependents returns what must be re-resolved when name changes.
func (t *Tracker) Dependents(name string) (property.IDSet, property.ShorthandSet) {
	return t.properties[name], t.shorthands[name]
}
