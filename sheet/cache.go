package sheet

import (
	"strconv"
	"strings"

	"go.uber.org/zap"

	"rcss/style"
)

// Cache hands out shared element definitions keyed by the set of matched
// rules, so elements matching the same rules share one definition.
type Cache struct {
	sheet *Sheet
	defs  map[string]*style.ElementDefinition
	log   *zap.Logger

	hits, misses int
}

func NewCache(s *Sheet, log *zap.Logger) *Cache {
	if log == nil {
		log = zap.NewNop()
	}
	return &Cache{sheet: s, defs: make(map[string]*style.ElementDefinition), log: log.Named("sheet")}
}

// Definition returns the definition for el. Elements no rule matches get nil,
// the empty definition.
func (c *Cache) Definition(el Element, vp Viewport) *style.ElementDefinition {
	if c == nil || c.sheet == nil {
		return nil
	}
	rules := c.sheet.Match(el, vp)
	if len(rules) == 0 {
		return nil
	}
	key := signature(rules)
	if def, ok := c.defs[key]; ok {
		c.hits++
		return def
	}
	c.misses++
	def := style.NewElementDefinition(Definition(rules))
	c.defs[key] = def
	c.log.Debug("New element definition", zap.String("element", el.Tag()), zap.String("rules", key))
	return def
}

// Len returns the number of distinct definitions built.
func (c *Cache) Len() int {
	return len(c.defs)
}

// Stats returns lookups answered from the cache and lookups that built a new
// definition.
func (c *Cache) Stats() (hits, misses int) {
	return c.hits, c.misses
}

// Clear drops every cached definition, elements keep the ones they hold.
func (c *Cache) Clear() {
	clear(c.defs)
}

func signature(rules []*Rule) string {
	var sb strings.Builder
	for i, r := range rules {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(strconv.Itoa(r.Order))
	}
	return sb.String()
}
