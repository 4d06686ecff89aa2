package sheet

import (
	"cmp"
	"slices"

	"rcss/css"
)

// Element is the view of a tree node selector matching needs.
type Element interface {
	Tag() string
	ID() string
	IsClassSet(name string) bool
	IsPseudoClassSet(name string) bool
	// Parent returns nil for the root.
	Parent() Element
}

// Viewport is the size media queries are evaluated against.
type Viewport struct {
	Width, Height float64
}

// Match returns the rules applying to el ordered by ascending specificity and
// source order.
func (s *Sheet) Match(el Element, vp Viewport) []*Rule {
	var matched []*Rule
	for _, r := range s.rules {
		if r.Media != nil && !r.Media.Evaluate(vp.Width, vp.Height) {
			continue
		}
		if MatchSelector(&r.Selector, el) {
			matched = append(matched, r)
		}
	}
	slices.SortStableFunc(matched, func(a, b *Rule) int {
		if c := cmp.Compare(a.Specificity, b.Specificity); c != 0 {
			return c
		}
		return cmp.Compare(a.Order, b.Order)
	})
	return matched
}

// MatchSelector reports whether sel matches el, walking ancestors for
// combinators.
func MatchSelector(sel *css.Selector, el Element) bool {
	if el == nil || !matchCompound(&sel.Compound, el) {
		return false
	}
	switch sel.Combinator {
	case css.CombinatorChild:
		return MatchSelector(sel.Ancestor, el.Parent())
	case css.CombinatorDescendant:
		for a := el.Parent(); a != nil; a = a.Parent() {
			if MatchSelector(sel.Ancestor, a) {
				return true
			}
		}
		return false
	}
	return true
}

func matchCompound(c *css.Compound, el Element) bool {
	if c.Tag != "" && c.Tag != el.Tag() {
		return false
	}
	if c.ID != "" && c.ID != el.ID() {
		return false
	}
	for _, name := range c.Classes {
		if !el.IsClassSet(name) {
			return false
		}
	}
	for _, name := range c.PseudoClasses {
		if name == "root" {
			if el.Parent() != nil {
				return false
			}
			continue
		}
		if !el.IsPseudoClassSet(name) {
			return false
		}
	}
	return true
}
