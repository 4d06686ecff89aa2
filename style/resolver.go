package style

import (
	"slices"
	"strings"

	"go.uber.org/zap"

	"rcss/property"
)

// resolver expands variable terms and dependent shorthands of one element into
// a store. Besides the live store it is run against a scratch store to
// compute transition targets of a definition that is not active yet.
type resolver struct {
	style *ElementStyle
	store *Store
	def   *ElementDefinition

	dirty   map[string]struct{}
	visited map[string]bool
	stack   []string
}

func (s *ElementStyle) newResolver(store *Store, def *ElementDefinition, dirty map[string]struct{}) *resolver {
	return &resolver{
		style:   s,
		store:   store,
		def:     def,
		dirty:   dirty,
		visited: make(map[string]bool),
	}
}

// lookupVariable walks local resolved values, the definition and then the
// local values of each ancestor.
func (r *resolver) lookupVariable(name string) *property.Property {
	if p := r.store.Variable(name); p != nil {
		return p
	}
	if p := r.def.Variable(name); p != nil {
		return p
	}
	for a := r.style.parent(); a != nil; a = a.parent() {
		if p := a.LocalVariable(name); p != nil {
			return p
		}
	}
	return nil
}

// resolveTerm substitutes every reference of term. References that cannot be
// resolved use their fallback, or nothing.
func (r *resolver) resolveTerm(term property.Term, owner string) string {
	var sb strings.Builder
	for _, atom := range term {
		if atom.Variable == "" {
			sb.WriteString(atom.Constant)
			continue
		}
		if v := r.lookupVariable(atom.Variable); v != nil && !v.IsTerm() {
			sb.WriteString(v.String())
			continue
		}
		if atom.Constant == "" {
			r.style.warn("Unresolved variable, no fallback provided",
				zap.String("variable", atom.Variable), zap.String("in", owner))
		}
		sb.WriteString(atom.Constant)
	}
	return sb.String()
}

func (r *resolver) resolveVariable(name string) {
	if r.visited[name] {
		return
	}
	r.visited[name] = true

	src := r.store.SourceVariable(name)
	v := src
	if v == nil {
		v = r.def.Variable(name)
	}
	switch {
	case v == nil, src == nil && !v.IsTerm():
		r.store.resolved.RemoveVariable(name)
		return
	case !v.IsTerm():
		return
	}

	term := v.Term()
	r.stack = append(r.stack, name)
	for _, dep := range term.Variables() {
		if slices.Contains(r.stack, dep) {
			r.style.reportCycle(r.stack, dep)
			continue
		}
		if _, ok := r.dirty[dep]; ok {
			r.resolveVariable(dep)
		}
	}
	value := r.resolveTerm(term, name)
	r.stack = r.stack[:len(r.stack)-1]

	r.store.resolved.SetVariable(name, property.NewString(value))
	r.style.tracer.TraceVariable(r.style.tag(), name, value)
}

// resolveShorthand re-expands a dependent shorthand and returns the ids it
// covers, all of which must be treated as changed.
func (r *resolver) resolveShorthand(id property.ShorthandID) property.IDSet {
	reg := r.style.reg
	underlying := reg.ShorthandUnderlying(id)
	for uid := range underlying.All() {
		r.store.dropDerived(uid)
	}

	term, inline := r.store.SourceShorthand(id)
	fromDefinition := false
	if !inline {
		term, fromDefinition = r.def.DependentShorthand(id)
	}
	if !inline && !fromDefinition {
		return underlying
	}

	value := r.resolveTerm(term, id.String())
	scratch := property.NewDictionary()
	if err := reg.ParseShorthand(scratch, id, value); err != nil {
		r.style.warn("Failed to parse variable dependent shorthand",
			zap.String("shorthand", id.String()), zap.String("value", value), zap.Error(err))
		return underlying
	}
	for pid, p := range scratch.Properties {
		// rule shorthands never beat inline values
		if fromDefinition && r.store.SourceProperty(pid) != nil {
			continue
		}
		r.store.setDerived(pid, *p)
	}
	r.style.tracer.TraceShorthand(r.style.tag(), id.String(), value)
	return underlying
}

func (r *resolver) resolveProperty(id property.ID) {
	if r.store.Derived(id) {
		return
	}
	src := r.store.SourceProperty(id)
	p := src
	if p == nil {
		p = r.def.Property(id)
	}
	switch {
	case p == nil, src == nil && !p.IsTerm():
		r.store.dropResolved(id)
	case !p.IsTerm():
		r.store.setResolved(id, *p)
	default:
		def := r.style.reg.Definition(id)
		value := r.resolveTerm(p.Term(), id.String())
		parsed, err := def.ParseValue(value)
		if err != nil {
			r.style.warn("Failed to parse variable dependent property",
				zap.String("property", id.String()), zap.String("value", value), zap.Error(err))
			return
		}
		parsed.Specificity = p.Specificity
		r.store.setResolved(id, parsed)
		r.style.tracer.TraceProperty(r.style.tag(), id.String(), parsed.String())
	}
}
