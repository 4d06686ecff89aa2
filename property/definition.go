package property

import (
	"fmt"
	"strings"
)

// Keywords maps keyword names to the integer value stored in a property.
type Keywords map[string]int

type parserEntry struct {
	parser   Parser
	keywords Keywords
}

// Definition is the registry-owned static description of a property.
type Definition struct {
	id           ID
	defaultValue Property
	inherited    bool
	forcesLayout bool
	relative     RelativeTarget
	parsers      []parserEntry
}

func (d *Definition) ID() ID                         { return d.id }
func (d *Definition) Name() string                   { return d.id.String() }
func (d *Definition) Inherited() bool                { return d.inherited }
func (d *Definition) ForcesLayout() bool             { return d.forcesLayout }
func (d *Definition) RelativeTarget() RelativeTarget { return d.relative }

// Default returns the parsed default value.
func (d *Definition) Default() *Property {
	return &d.defaultValue
}

// ParseValue runs the property parsers in registration order and returns the
// first successful result.
func (d *Definition) ParseValue(value string) (Property, error) {
	value = strings.TrimSpace(value)
	for _, e := range d.parsers {
		if p, ok := e.parser.Parse(value, e.keywords); ok {
			p.Definition = d
			return p, nil
		}
	}
	return Property{}, fmt.Errorf("%w: %s: '%s'", ErrInvalidValue, d.Name(), value)
}

// KeywordName maps a keyword value back to its name.
func (d *Definition) KeywordName(v int) (string, bool) {
	for _, e := range d.parsers {
		for name, kv := range e.keywords {
			if kv == v {
				return name, true
			}
		}
	}
	return "", false
}

// builder wires parsers onto a definition while the registry is populated.
type builder struct {
	reg *Registry
	def *Definition
}

// parser appends a parser by name. Keyword lists are "a, b, c" for values 0,
// 1, 2 or "normal=400, bold=700" for explicit values.
func (b builder) parser(name string, keywords ...string) builder {
	p, ok := b.reg.parsers[name]
	if !ok {
		panic(fmt.Sprintf("property %s: unknown parser %q", b.def.Name(), name))
	}
	b.def.parsers = append(b.def.parsers, parserEntry{parser: p, keywords: parseKeywordList(strings.Join(keywords, ","))})
	return b
}

func (b builder) relative(t RelativeTarget) builder {
	b.def.relative = t
	return b
}

func parseKeywordList(s string) Keywords {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	kw := make(Keywords)
	for i, item := range strings.Split(s, ",") {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}
		name, val, found := strings.Cut(item, "=")
		if !found {
			kw[strings.ToLower(name)] = i
			continue
		}
		var n int
		if _, err := fmt.Sscanf(val, "%d", &n); err != nil {
			panic(fmt.Sprintf("bad keyword value %q", item))
		}
		kw[strings.ToLower(strings.TrimSpace(name))] = n
	}
	return kw
}
