package style

import "rcss/property"

// Store keeps the inline values of one element twice: as authored (source)
// and fully expanded (resolved). Entries of resolved that came from a term can
// always be rebuilt from source and the current variable bindings.
//
// Store does no dependency or dirty bookkeeping.
type Store struct {
	source   *property.Dictionary
	resolved *property.Dictionary
	// ids written to resolved by dependent shorthand expansion
	derived property.IDSet
}

func NewStore() *Store {
	return &Store{
		source:   property.NewDictionary(),
		resolved: property.NewDictionary(),
	}
}

func (s *Store) SetProperty(id property.ID, p property.Property) {
	s.source.SetProperty(id, p)
	if !p.IsTerm() {
		s.resolved.SetProperty(id, p)
		s.derived.Remove(id)
	}
}

func (s *Store) SetVariable(name string, p property.Property) {
	s.source.SetVariable(name, p)
	if !p.IsTerm() {
		s.resolved.SetVariable(name, p)
	}
}

func (s *Store) SetDependentShorthand(id property.ShorthandID, t property.Term) {
	s.source.SetDependentShorthand(id, t)
}

// RemoveProperty reports whether an authored value was removed. A value
// expanded from a shorthand stays in place.
func (s *Store) RemoveProperty(id property.ID) bool {
	if !s.source.RemoveProperty(id) {
		return false
	}
	if !s.derived.Contains(id) {
		s.resolved.RemoveProperty(id)
	}
	return true
}

func (s *Store) RemoveVariable(name string) bool {
	s.resolved.RemoveVariable(name)
	return s.source.RemoveVariable(name)
}

func (s *Store) RemoveDependentShorthand(id property.ShorthandID) bool {
	return s.source.RemoveDependentShorthand(id)
}

// Property returns the resolved value.
func (s *Store) Property(id property.ID) *property.Property {
	return s.resolved.Property(id)
}

// Variable returns the resolved value.
func (s *Store) Variable(name string) *property.Property {
	return s.resolved.Variable(name)
}

func (s *Store) SourceProperty(id property.ID) *property.Property {
	return s.source.Property(id)
}

func (s *Store) SourceVariable(name string) *property.Property {
	return s.source.Variable(name)
}

func (s *Store) SourceShorthand(id property.ShorthandID) (property.Term, bool) {
	return s.source.DependentShorthand(id)
}

// Source and Resolved must be treated as read-only by callers.
func (s *Store) Source() *property.Dictionary   { return s.source }
func (s *Store) Resolved() *property.Dictionary { return s.resolved }

// Derived reports whether id came from dependent shorthand expansion.
func (s *Store) Derived(id property.ID) bool {
	return s.derived.Contains(id)
}

func (s *Store) setResolved(id property.ID, p property.Property) {
	s.resolved.SetProperty(id, p)
	s.derived.Remove(id)
}

func (s *Store) setDerived(id property.ID, p property.Property) {
	s.resolved.SetProperty(id, p)
	s.derived.Insert(id)
}

func (s *Store) dropResolved(id property.ID) {
	s.resolved.RemoveProperty(id)
	s.derived.Remove(id)
}

// dropDerived undoes a shorthand expansion of id, restoring the authored
// value when it needs no resolution.
func (s *Store) dropDerived(id property.ID) {
	if !s.derived.Contains(id) {
		return
	}
	s.dropResolved(id)
	if p := s.source.Property(id); p != nil && !p.IsTerm() {
		s.resolved.SetProperty(id, *p)
	}
}

// unresolvedCopy returns a store with the same authored values and nothing
// resolved from terms.
func (s *Store) unresolvedCopy() *Store {
	c := NewStore()
	for id, p := range s.source.Properties {
		c.SetProperty(id, *p)
	}
	for name, p := range s.source.Variables {
		c.SetVariable(name, *p)
	}
	for id := range s.source.ShorthandIDs().All() {
		t, _ := s.source.DependentShorthand(id)
		c.SetDependentShorthand(id, t)
	}
	return c
}
