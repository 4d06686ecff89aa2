package style

import (
	"maps"
	"slices"
)

// PseudoClassState records through which channels a pseudo class is active.
// Set is the regular channel, Override is used to force a class on or off
// independently of it.
type PseudoClassState uint8

const (
	PseudoClear PseudoClassState = iota
	PseudoSet
	PseudoOverride
	PseudoBoth
)

func (s PseudoClassState) String() string {
	switch s {
	case PseudoSet:
		return "set"
	case PseudoOverride:
		return "override"
	case PseudoBoth:
		return "both"
	}
	return "clear"
}

// indexed by [override][current state]
var (
	pseudoActivate = [2][4]PseudoClassState{
		{PseudoSet, PseudoSet, PseudoBoth, PseudoBoth},
		{PseudoOverride, PseudoBoth, PseudoOverride, PseudoBoth},
	}
	pseudoDeactivate = [2][4]PseudoClassState{
		{PseudoClear, PseudoClear, PseudoOverride, PseudoOverride},
		{PseudoClear, PseudoSet, PseudoClear, PseudoSet},
	}
)

func channel(override bool) int {
	if override {
		return 1
	}
	return 0
}

// NextPseudoClassState applies one activation or deactivation.
func NextPseudoClassState(s PseudoClassState, activate, override bool) PseudoClassState {
	if activate {
		return pseudoActivate[channel(override)][s]
	}
	return pseudoDeactivate[channel(override)][s]
}

// SetPseudoClass reports a change only when the class becomes active or
// inactive, toggling one channel while the other is set is not a change.
func (s *ElementStyle) SetPseudoClass(name string, activate, override bool) bool {
	old := s.pseudoClasses[name]
	next := NextPseudoClassState(old, activate, override)
	if next == PseudoClear {
		delete(s.pseudoClasses, name)
	} else {
		s.pseudoClasses[name] = next
	}
	return (old == PseudoClear) != (next == PseudoClear)
}

func (s *ElementStyle) IsPseudoClassSet(name string) bool {
	_, ok := s.pseudoClasses[name]
	return ok
}

// PseudoClassState returns the state of name, PseudoClear when inactive.
func (s *ElementStyle) PseudoClassState(name string) PseudoClassState {
	return s.pseudoClasses[name]
}

// ActivePseudoClasses returns active pseudo class names in sorted order.
func (s *ElementStyle) ActivePseudoClasses() []string {
	return slices.Sorted(maps.Keys(s.pseudoClasses))
}
