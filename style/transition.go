package style

import "rcss/property"

// transitionChanges starts transitions for changed properties when the rule
// definition is about to switch from old to next. The start value is the
// cascade under old, the target is the cascade under next with variables
// resolved in a scratch store. Claimed ids are removed from changed and
// returned.
func (s *ElementStyle) transitionChanges(changed *property.IDSet, old, next *ElementDefinition) property.IDSet {
	var claimed property.IDSet
	if s.host == nil || changed.Empty() {
		return claimed
	}

	tp := s.store.Property(property.Transition)
	if tp == nil {
		tp = next.Property(property.Transition)
	}
	if tp == nil || tp.Unit != property.UnitTransition {
		return claimed
	}
	list := tp.Transitions()
	if list.None || len(list.Transitions) == 0 {
		return claimed
	}

	scratch := s.store.unresolvedCopy()
	dirty := make(map[string]struct{})
	for _, name := range append(scratch.Source().VariableNames(), next.VariableNames()...) {
		dirty[name] = struct{}{}
	}
	r := s.newResolver(scratch, next, dirty)
	for name := range dirty {
		r.resolveVariable(name)
	}
	for id := range scratch.Source().ShorthandIDs().Union(next.DependentShorthandIDs()).All() {
		r.resolveShorthand(id)
	}

	start := func(tr property.TransitionDef) bool {
		from := s.cascade(tr.ID, s.store.Resolved(), old)
		r.resolveProperty(tr.ID)
		to := s.cascade(tr.ID, scratch.Resolved(), next)
		if from == nil || to == nil || from.IsTerm() || to.IsTerm() || from.Equal(*to) {
			return false
		}
		return s.host.StartTransition(tr, *from, *to)
	}

	if list.All {
		for id := range changed.All() {
			tr := list.Transitions[0]
			tr.ID = id
			if start(tr) {
				claimed.Insert(id)
			}
		}
	} else {
		for _, tr := range list.Transitions {
			if changed.Contains(tr.ID) && start(tr) {
				claimed.Insert(tr.ID)
			}
		}
	}
	*changed = changed.Difference(claimed)
	return claimed
}
