package css

import (
	"bytes"
	"errors"
	"io"
	"strconv"
	"strings"

	parse "github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
	"go.uber.org/zap"
)

// Parser parses CSS stylesheets and inline declaration lists.
type Parser struct {
	log *zap.Logger
}

// NewParser creates a new CSS parser.
func NewParser(log *zap.Logger) *Parser {
	if log == nil {
		log = zap.NewNop()
	}
	return &Parser{log: log.Named("css-parser")}
}

// run holds the state of a single Parse call.
type run struct {
	*Parser
	parser  *css.Parser
	sheet   *Stylesheet
	data    []byte
	source  string
	order   int
	lastErr int
}

// Parse parses CSS text into a Stylesheet. Parse errors are logged and the
// offending construct is skipped. The optional source parameter identifies
// what's being parsed in log messages.
func (p *Parser) Parse(data []byte, source ...string) *Stylesheet {
	r := &run{
		Parser:  p,
		parser:  css.NewParser(parse.NewInput(bytes.NewReader(data)), false),
		sheet:   &Stylesheet{Items: make([]StylesheetItem, 0), Warnings: make([]string, 0)},
		data:    data,
		lastErr: -1,
	}
	if len(source) > 0 && source[0] != "" {
		r.source = source[0]
		p.log.Debug("Parsing CSS", zap.String("source", r.source), zap.Int("bytes", len(data)))
	}

	for {
		gt, _, data := r.parser.Next()

		switch gt {
		case css.ErrorGrammar:
			if r.stop() {
				return r.sheet
			}

		case css.BeginAtRuleGrammar:
			atRule := strings.ToLower(string(data))
			switch atRule {
			case "@media":
				mq := r.parseMediaQuery(r.parser.Values())
				rules := r.parseMediaBlockRules()
				p.log.Debug("Parsed @media block", zap.String("query", mq.Raw), zap.Int("rules", len(rules)))
				r.sheet.Items = append(r.sheet.Items, StylesheetItem{
					MediaBlock: &MediaBlock{Query: mq, Rules: rules},
				})
			case "@font-face":
				ff := r.parseFontFace()
				r.sheet.Items = append(r.sheet.Items, StylesheetItem{FontFace: &ff})
			default:
				r.skipAtRuleBlock()
				p.log.Debug("Skipping @-rule", zap.String("rule", atRule))
			}

		case css.AtRuleGrammar:
			atRule := strings.ToLower(string(data))
			if atRule == "@import" {
				if url := extractImportURL(r.parser.Values()); url != "" {
					r.sheet.Items = append(r.sheet.Items, StylesheetItem{Import: &url})
					p.log.Debug("Parsed @import", zap.String("url", url))
				}
			} else {
				p.log.Debug("Skipping @-rule", zap.String("rule", atRule))
			}

		case css.BeginRulesetGrammar:
			for _, rule := range r.parseRuleset() {
				r.sheet.Items = append(r.sheet.Items, StylesheetItem{Rule: &rule})
			}
		}
	}
}

// ParseInline parses the content of a style attribute, a declaration list
// without selectors or braces.
func (p *Parser) ParseInline(data []byte) []Declaration {
	r := &run{
		Parser:  p,
		parser:  css.NewParser(parse.NewInput(bytes.NewReader(data)), true),
		sheet:   &Stylesheet{},
		data:    data,
		source:  "inline",
		lastErr: -1,
	}
	decls, _ := r.parseDeclarations(css.ErrorGrammar)
	return decls
}

// stop reports whether the ErrorGrammar just returned ends the input. Parse
// errors are logged and parsing resumes after them.
func (r *run) stop() bool {
	if !r.parser.HasParseError() {
		if err := r.parser.Err(); err != nil && !errors.Is(err, io.EOF) {
			r.log.Warn("CSS read error", zap.String("source", r.source), zap.Error(err))
		}
		return true
	}
	offset := r.parser.Offset()
	if offset == r.lastErr {
		return true
	}
	r.lastErr = offset
	r.log.Warn("CSS parse error",
		zap.String("source", r.source),
		zap.Int("line", r.line()),
		zap.Error(r.parser.Err()))
	return false
}

func (r *run) line() int {
	return 1 + bytes.Count(r.data[:min(r.parser.Offset(), len(r.data))], []byte{'\n'})
}

func (r *run) warn(msg string) {
	r.sheet.Warnings = append(r.sheet.Warnings, msg)
}

// extractImportURL extracts the URL from @import tokens.
// Handles: @import "url"; @import url("url"); @import url(url);
func extractImportURL(tokens []css.Token) string {
	for _, t := range tokens {
		switch t.TokenType {
		case css.StringToken:
			return unquote(string(t.Data))
		case css.URLToken:
			s := string(t.Data)
			s = strings.TrimPrefix(s, "url(")
			s = strings.TrimSuffix(s, ")")
			return unquote(strings.TrimSpace(s))
		}
	}
	return ""
}

// joinTokens renders tokens back to text, collapsing whitespace runs.
func joinTokens(tokens []css.Token) string {
	var sb strings.Builder
	for _, t := range tokens {
		if t.TokenType == css.WhitespaceToken {
			if sb.Len() > 0 {
				sb.WriteByte(' ')
			}
			continue
		}
		sb.Write(t.Data)
	}
	return strings.TrimSpace(sb.String())
}

// parseRuleset reads the declarations of the ruleset just opened and returns
// one rule per supported selector of the group.
func (r *run) parseRuleset() []Rule {
	line := r.line()
	selectors := splitSelectors(joinTokens(r.parser.Values()))
	decls, _ := r.parseDeclarations(css.EndRulesetGrammar)

	var rules []Rule
	for _, raw := range selectors {
		sel, ok := r.parseSelector(raw)
		if !ok {
			continue
		}
		rules = append(rules, Rule{
			Selector:     sel,
			Declarations: append([]Declaration(nil), decls...),
			Order:        r.order,
			SourceLine:   line,
		})
		r.order++
	}
	return rules
}

// splitSelectors splits a selector group on top level commas.
func splitSelectors(s string) []string {
	var out []string
	depth, start := 0, 0
	for i := 0; i <= len(s); i++ {
		if i < len(s) {
			switch s[i] {
			case '(', '[':
				depth++
				continue
			case ')', ']':
				depth--
				continue
			case ',':
				if depth > 0 {
					continue
				}
			default:
				continue
			}
		}
		if part := strings.TrimSpace(s[start:i]); part != "" {
			out = append(out, part)
		}
		start = i + 1
	}
	return out
}

// parseDeclarations collects declarations until the end grammar. It reports
// false when the input ended first.
func (r *run) parseDeclarations(end css.GrammarType) ([]Declaration, bool) {
	var decls []Declaration
	for {
		gt, _, data := r.parser.Next()

		switch gt {
		case end:
			if end != css.ErrorGrammar {
				return decls, true
			}
			if r.stop() {
				return decls, false
			}

		case css.ErrorGrammar:
			if r.stop() {
				return decls, false
			}

		case css.DeclarationGrammar:
			value, important := declarationValue(r.parser.Values())
			if value == "" {
				r.log.Debug("Skipping empty declaration", zap.String("name", string(data)))
				continue
			}
			decls = append(decls, Declaration{Name: string(data), Value: value, Important: important})

		case css.CustomPropertyGrammar:
			var raw string
			if values := r.parser.Values(); len(values) > 0 {
				raw = string(values[0].Data)
			}
			value, important := customPropertyValue(raw)
			decls = append(decls, Declaration{Name: string(data), Value: value, Important: important})

		case css.BeginRulesetGrammar, css.BeginAtRuleGrammar:
			r.warn("unsupported nested rule: " + joinTokens(r.parser.Values()))
			r.skipAtRuleBlock()
		}
	}
}

// declarationValue renders value tokens and strips a trailing !important.
func declarationValue(tokens []css.Token) (string, bool) {
	end := len(tokens)
	trim := func() {
		for end > 0 && tokens[end-1].TokenType == css.WhitespaceToken {
			end--
		}
	}
	trim()

	important := false
	if end > 0 && tokens[end-1].TokenType == css.IdentToken && strings.EqualFold(string(tokens[end-1].Data), "important") {
		k := end - 2
		for k >= 0 && tokens[k].TokenType == css.WhitespaceToken {
			k--
		}
		if k >= 0 && tokens[k].TokenType == css.DelimToken && string(tokens[k].Data) == "!" {
			important = true
			end = k
			trim()
		}
	}
	return joinTokens(tokens[:end]), important
}

// customPropertyValue trims the raw value of a custom property. The value is
// kept verbatim apart from an !important suffix.
func customPropertyValue(raw string) (string, bool) {
	value := strings.TrimSpace(raw)
	if len(value) < len("important") || !strings.EqualFold(value[len(value)-len("important"):], "important") {
		return value, false
	}
	rest := strings.TrimSpace(value[:len(value)-len("important")])
	if before, ok := strings.CutSuffix(rest, "!"); ok {
		return strings.TrimSpace(before), true
	}
	return value, false
}

// parseSelector parses a complex selector made of compounds joined by
// descendant and child combinators. Raw is rebuilt in canonical spacing.
func (r *run) parseSelector(raw string) (Selector, bool) {
	var chain []Selector
	pending := CombinatorNone
	for i := 0; i < len(raw); {
		switch c := raw[i]; c {
		case ' ', '\t', '\n', '\r', '\f':
			if len(chain) > 0 && pending == CombinatorNone {
				pending = CombinatorDescendant
			}
			i++
		case '>':
			if len(chain) == 0 {
				r.unsupported("selector", raw)
				return Selector{}, false
			}
			pending = CombinatorChild
			i++
		default:
			if len(chain) > 0 && pending == CombinatorNone {
				r.unsupported("selector", raw)
				return Selector{}, false
			}
			comp, n, ok := parseCompound(raw[i:])
			if !ok {
				r.unsupported("selector", raw)
				return Selector{}, false
			}
			text := raw[i : i+n]
			switch pending {
			case CombinatorDescendant:
				text = chain[len(chain)-1].Raw + " " + text
			case CombinatorChild:
				text = chain[len(chain)-1].Raw + " > " + text
			}
			chain = append(chain, Selector{Raw: text, Compound: comp, Combinator: pending})
			pending = CombinatorNone
			i += n
		}
	}
	if len(chain) == 0 || pending != CombinatorNone {
		r.unsupported("selector", raw)
		return Selector{}, false
	}
	for k := 1; k < len(chain); k++ {
		chain[k].Ancestor = &chain[k-1]
	}
	return chain[len(chain)-1], true
}

func (r *run) unsupported(what, raw string) {
	r.warn("unsupported " + what + ": " + raw)
	r.log.Debug("Skipping unsupported "+what, zap.String("source", r.source), zap.String(what, raw))
}

// parseCompound reads a compound selector from the start of s and returns
// the number of bytes consumed. Attribute selectors, functional pseudo-classes,
// pseudo-elements and sibling combinators are not supported.
func parseCompound(s string) (Compound, int, bool) {
	var comp Compound
	i := 0
	for i < len(s) {
		c := s[i]
		switch {
		case c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\f' || c == '>':
			return comp, i, i > 0
		case c == '*':
			if i != 0 {
				return comp, i, false
			}
			i++
		case c == '#' || c == '.':
			name, n := readIdent(s[i+1:])
			if n == 0 {
				return comp, i, false
			}
			if c == '#' {
				comp.ID = name
			} else {
				comp.Classes = append(comp.Classes, name)
			}
			i += 1 + n
		case c == ':':
			name, n := readIdent(s[i+1:])
			if n == 0 {
				return comp, i, false
			}
			i += 1 + n
			if i < len(s) && s[i] == '(' {
				return comp, i, false
			}
			comp.PseudoClasses = append(comp.PseudoClasses, strings.ToLower(name))
		case isIdentByte(c) && c != '-' && (c < '0' || c > '9'):
			if i != 0 {
				return comp, i, false
			}
			name, n := readIdent(s)
			comp.Tag = strings.ToLower(name)
			i += n
		default:
			return comp, i, false
		}
	}
	return comp, i, i > 0
}

func isIdentByte(c byte) bool {
	return c == '-' || c == '_' || c >= 0x80 ||
		(c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9')
}

func readIdent(s string) (string, int) {
	n := 0
	for n < len(s) && isIdentByte(s[n]) {
		n++
	}
	return s[:n], n
}

// skipAtRuleBlock skips tokens until the matching end of a block.
func (r *run) skipAtRuleBlock() {
	depth := 1
	for depth > 0 {
		gt, _, _ := r.parser.Next()
		switch gt {
		case css.ErrorGrammar:
			if r.stop() {
				return
			}
		case css.BeginAtRuleGrammar, css.BeginRulesetGrammar:
			depth++
		case css.EndAtRuleGrammar, css.EndRulesetGrammar:
			depth--
		}
	}
}

// parseFontFace parses an @font-face block.
func (r *run) parseFontFace() FontFace {
	ff := FontFace{}
	decls, _ := r.parseDeclarations(css.EndAtRuleGrammar)
	for _, d := range decls {
		switch d.Name {
		case "font-family":
			ff.Family = unquote(d.Value)
		case "src":
			ff.Src = d.Value
		case "font-style":
			ff.Style = strings.ToLower(d.Value)
		case "font-weight":
			ff.Weight = strings.ToLower(d.Value)
		}
	}
	if ff.Family == "" {
		r.warn("@font-face without font-family")
	}
	return ff
}

// parseMediaQueryFromTokens parses a media query such as
// "screen and (min-width: 600px)". Only the first query of a comma separated
// list is used.
func (r *run) parseMediaQuery(tokens []css.Token) MediaQuery {
	mq := MediaQuery{Raw: joinTokens(tokens)}

	for i := 0; i < len(tokens); i++ {
		t := tokens[i]
		switch t.TokenType {
		case css.IdentToken:
			switch ident := strings.ToLower(string(t.Data)); ident {
			case "not":
				mq.Negated = true
			case "only", "and":
			default:
				if mq.Type == "" {
					mq.Type = ident
				}
			}
		case css.LeftParenthesisToken:
			end := i + 1
			for end < len(tokens) && tokens[end].TokenType != css.RightParenthesisToken {
				end++
			}
			f, ok := parseMediaFeature(tokens[i+1 : end])
			if !ok {
				r.unsupported("media feature", joinTokens(tokens[i:min(end+1, len(tokens))]))
			}
			mq.Features = append(mq.Features, f)
			i = end
		case css.CommaToken:
			r.unsupported("media query list", mq.Raw)
			return mq
		}
	}
	return mq
}

// parseMediaFeature parses "name: value" inside parentheses. Unsupported
// features are returned with an empty name which never matches.
func parseMediaFeature(tokens []css.Token) (MediaFeature, bool) {
	var parts []css.Token
	for _, t := range tokens {
		if t.TokenType != css.WhitespaceToken {
			parts = append(parts, t)
		}
	}
	if len(parts) != 3 || parts[0].TokenType != css.IdentToken || parts[1].TokenType != css.ColonToken {
		return MediaFeature{}, false
	}
	f := MediaFeature{Name: strings.ToLower(string(parts[0].Data))}
	value := parts[2]
	switch f.Name {
	case "orientation":
		if value.TokenType != css.IdentToken {
			return MediaFeature{}, false
		}
		f.Keyword = strings.ToLower(string(value.Data))
		return f, f.Keyword == "portrait" || f.Keyword == "landscape"
	case "width", "min-width", "max-width", "height", "min-height", "max-height":
		var num, unit string
		switch value.TokenType {
		case css.NumberToken:
			num = string(value.Data)
		case css.DimensionToken:
			num, unit = splitDimension(string(value.Data))
		default:
			return MediaFeature{}, false
		}
		if unit != "" && !strings.EqualFold(unit, "px") {
			return MediaFeature{}, false
		}
		v, err := strconv.ParseFloat(num, 64)
		if err != nil {
			return MediaFeature{}, false
		}
		f.Value = v
		return f, true
	}
	return MediaFeature{}, false
}

// splitDimension separates the number and unit of a dimension token.
func splitDimension(s string) (string, string) {
	end := 0
	for end < len(s) {
		c := s[end]
		if (c >= '0' && c <= '9') || c == '.' || c == '-' || c == '+' {
			end++
			continue
		}
		break
	}
	return s[:end], s[end:]
}

// parseMediaBlockRules parses rules inside an @media block.
func (r *run) parseMediaBlockRules() []Rule {
	var rules []Rule
	for {
		gt, _, _ := r.parser.Next()

		switch gt {
		case css.ErrorGrammar:
			if r.stop() {
				return rules
			}
		case css.EndAtRuleGrammar:
			return rules
		case css.BeginRulesetGrammar:
			rules = append(rules, r.parseRuleset()...)
		case css.BeginAtRuleGrammar:
			r.unsupported("nested at-rule", "@media")
			r.skipAtRuleBlock()
		}
	}
}

// unquote removes surrounding quotes from a string.
func unquote(s string) string {
	s = strings.TrimSpace(s)
	if len(s) < 2 {
		return s
	}
	if (s[0] == '"' && s[len(s)-1] == '"') ||
		(s[0] == '\'' && s[len(s)-1] == '\'') {
		return s[1 : len(s)-1]
	}
	return s
}
