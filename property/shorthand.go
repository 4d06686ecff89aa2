package property

import (
	"fmt"
	"strings"
)

// ShorthandType selects how a shorthand value is distributed onto its items.
type ShorthandType uint8

const (
	// Values are matched to items in order, an item that fails to parse is
	// skipped and the value is offered to the next one.
	ShorthandFallThrough ShorthandType = iota
	// Values are matched in order, the last value fills the remaining items.
	ShorthandReplicate
	// Four sided top, right, bottom, left with CSS style replication.
	ShorthandBox
	// Like FallThrough with the special defaults of the flex shorthand.
	ShorthandFlex
	// The whole value is handed to every item, items may be shorthands.
	ShorthandRecursiveRepeat
	// Comma separated values are handed to items in order. Items may be
	// optional or consume all remaining values.
	ShorthandRecursiveCommaSeparated
)

// ShorthandItem is either a property or, for the recursive types, a nested
// shorthand.
type ShorthandItem struct {
	Property  ID
	Shorthand ShorthandID
	Optional  bool
	Repeats   bool
}

type ShorthandDefinition struct {
	id    ShorthandID
	typ   ShorthandType
	items []ShorthandItem
}

func (s *ShorthandDefinition) ID() ShorthandID        { return s.id }
func (s *ShorthandDefinition) Type() ShorthandType    { return s.typ }
func (s *ShorthandDefinition) Items() []ShorthandItem { return s.items }

// registerShorthand reads items as "a, b?, c#".
func (r *Registry) registerShorthand(id ShorthandID, items string, typ ShorthandType) {
	def := &ShorthandDefinition{id: id, typ: typ}
	recursive := typ == ShorthandRecursiveRepeat || typ == ShorthandRecursiveCommaSeparated
	for _, raw := range strings.Split(strings.ToLower(items), ",") {
		name := strings.TrimSpace(raw)
		var item ShorthandItem
		if n, ok := strings.CutSuffix(name, "?"); ok {
			item.Optional, name = true, n
		}
		if n, ok := strings.CutSuffix(name, "#"); ok {
			item.Repeats, name = true, n
		}
		if pid, ok := idByName[name]; ok && r.props[pid] != nil {
			item.Property = pid
		} else if sid, ok := shorthandByName[name]; ok && recursive && r.shorthands[sid] != nil {
			item.Shorthand = sid
		} else {
			panic(fmt.Sprintf("shorthand %s registered with invalid item %q", id, name))
		}
		def.items = append(def.items, item)
	}
	if typ == ShorthandBox && len(def.items) != 4 {
		panic(fmt.Sprintf("box shorthand %s needs four items", id))
	}
	if typ == ShorthandFlex && len(def.items) != 3 {
		panic(fmt.Sprintf("flex shorthand %s needs three items", id))
	}
	r.shorthands[id] = def
}

var flexOmittedDefaults = [3]string{"1", "1", "0"}

// parseShorthand expands value into dict. On failure dict may hold partial
// results, callers work on a scratch dictionary.
func (r *Registry) parseShorthand(dict *Dictionary, id ShorthandID, value string) error {
	def := r.Shorthand(id)
	if def == nil {
		return fmt.Errorf("%w: %d", ErrUnknownProperty, id)
	}
	fail := func() error {
		return fmt.Errorf("%w: %s: '%s'", ErrShorthand, id, value)
	}

	split := SplitWhitespace
	if def.typ == ShorthandRecursiveCommaSeparated {
		split = SplitComma
	}
	values := SplitValues(value, split)
	if len(values) == 0 {
		return fail()
	}

	if term, ok := ParseTerm(SplitValues(value, SplitWhitespace)); ok {
		dict.SetDependentShorthand(id, term)
		return nil
	}

	if def.typ == ShorthandFlex {
		if values[0] == "none" {
			values = []string{"0", "0", "auto"}
		} else {
			for i, item := range def.items {
				p, err := r.props[item.Property].ParseValue(flexOmittedDefaults[i])
				if err != nil {
					return err
				}
				dict.SetProperty(item.Property, p)
			}
		}
	}

	switch {
	case def.typ == ShorthandBox && len(values) < 4:
		var sides [4]int
		switch len(values) {
		case 2:
			sides = [4]int{0, 1, 0, 1}
		case 3:
			sides = [4]int{0, 1, 2, 1}
		}
		for i, item := range def.items {
			p, err := r.props[item.Property].ParseValue(values[sides[i]])
			if err != nil {
				return fail()
			}
			dict.SetProperty(item.Property, p)
		}

	case def.typ == ShorthandRecursiveRepeat:
		ok := true
		for _, item := range def.items {
			if item.Shorthand.Valid() {
				ok = r.parseShorthand(dict, item.Shorthand, value) == nil && ok
				continue
			}
			ok = r.parseProperty(dict, item.Property, value) == nil && ok
		}
		if !ok {
			return fail()
		}

	case def.typ == ShorthandRecursiveCommaSeparated:
		optional := 0
		for _, item := range def.items {
			if item.Optional {
				optional++
			}
		}
		if len(values)+optional < len(def.items) {
			return fail()
		}
		next := 0
		for _, item := range def.items {
			if next >= len(values) {
				break
			}
			sub := values[next]
			if item.Repeats {
				sub = strings.Join(values[next:], ", ")
			}
			var err error
			if item.Shorthand.Valid() {
				err = r.parseShorthand(dict, item.Shorthand, sub)
			} else {
				err = r.parseProperty(dict, item.Property, sub)
			}
			switch {
			case err == nil && item.Repeats:
				next = len(values)
			case err == nil:
				next++
			case item.Repeats || !item.Optional:
				return fail()
			}
		}
		if next < len(values) {
			return fail()
		}

	default:
		if len(values) > len(def.items) {
			return fail()
		}
		fallThrough := def.typ == ShorthandFallThrough || def.typ == ShorthandFlex
		vi, pi := 0, 0
		for ; vi < len(values) && pi < len(def.items); pi++ {
			item := def.items[pi]
			p, err := r.props[item.Property].ParseValue(values[vi])
			if err != nil {
				if fallThrough && pi+1 < len(def.items) {
					continue
				}
				return fail()
			}
			dict.SetProperty(item.Property, p)
			if def.typ != ShorthandReplicate || vi < len(values)-1 {
				vi++
			}
		}
		if def.typ != ShorthandReplicate && vi < len(values) {
			return fail()
		}
	}
	return nil
}
