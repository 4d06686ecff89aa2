package property

import (
	"strconv"
	"strings"
	"unicode"

	parse "github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
)

// Parser turns a single declaration value into a Property.
type Parser interface {
	Parse(value string, keywords Keywords) (Property, bool)
}

// ParserFunc adapts a function to Parser.
type ParserFunc func(value string, keywords Keywords) (Property, bool)

func (f ParserFunc) Parse(value string, keywords Keywords) (Property, bool) {
	return f(value, keywords)
}

func defaultParsers() map[string]Parser {
	return map[string]Parser{
		"keyword":               ParserFunc(parseKeyword),
		"number":                numberParser(UnitNumber, UnitNumber),
		"length":                numberParser(UnitLength, UnitPx),
		"length_percent":        numberParser(UnitLengthPercent, UnitPx),
		"number_length_percent": numberParser(UnitNumberLengthPercent, UnitNumber),
		"angle":                 numberParser(UnitAngle, UnitDeg),
		"string":                ParserFunc(parseString),
		"color":                 ParserFunc(parseColour),
		"transition":            ParserFunc(parseTransition),
		"animation":             opaqueParser(UnitAnimation),
		"transform":             opaqueParser(UnitTransform),
		"decorator":             opaqueParser(UnitDecorator),
		"filter":                opaqueParser(UnitFilter),
		"font_effect":           opaqueParser(UnitFontEffect),
		"box_shadow":            opaqueParser(UnitBoxShadow),
	}
}

type token struct {
	tt   css.TokenType
	data string
}

// tokenize runs the CSS lexer over a value, dropping whitespace and comments.
// The boolean is false when the lexer reports an error before end of input.
func tokenize(value string) ([]token, bool) {
	l := css.NewLexer(parse.NewInputString(value))
	var out []token
	for {
		tt, data := l.Next()
		switch tt {
		case css.ErrorToken:
			if err := l.Err(); err != nil && err.Error() != "EOF" {
				return out, false
			}
			return out, true
		case css.WhitespaceToken, css.CommentToken:
			continue
		case css.BadStringToken, css.BadURLToken:
			return out, false
		}
		out = append(out, token{tt: tt, data: string(data)})
	}
}

func parseKeyword(value string, keywords Keywords) (Property, bool) {
	v, ok := keywords[strings.ToLower(value)]
	if !ok {
		return Property{}, false
	}
	return Property{Value: v, Unit: UnitKeyword}, true
}

// numberParser accepts a single numeric token whose unit is in allowed.
// Unitless numbers are given unitless.
func numberParser(allowed, unitless Unit) Parser {
	return ParserFunc(func(value string, _ Keywords) (Property, bool) {
		nv, ok := ParseNumeric(value, unitless)
		if !ok || !nv.Unit.Any(allowed) {
			return Property{}, false
		}
		return Property{Value: nv.Number, Unit: nv.Unit}, true
	})
}

// ParseNumeric parses "12", "1.5em", "50%" and similar. Unitless numbers get
// the unit passed in.
func ParseNumeric(value string, unitless Unit) (NumericValue, bool) {
	toks, ok := tokenize(value)
	if !ok || len(toks) != 1 {
		return NumericValue{}, false
	}
	t := toks[0]
	switch t.tt {
	case css.NumberToken:
		n, err := strconv.ParseFloat(t.data, 64)
		if err != nil {
			return NumericValue{}, false
		}
		return NumericValue{Number: n, Unit: unitless}, true
	case css.PercentageToken:
		n, err := strconv.ParseFloat(strings.TrimSuffix(t.data, "%"), 64)
		if err != nil {
			return NumericValue{}, false
		}
		return NumericValue{Number: n, Unit: UnitPercent}, true
	case css.DimensionToken:
		n, suffix, ok := parseDimension(t.data)
		if !ok {
			return NumericValue{}, false
		}
		u, ok := unitFromSuffix(suffix)
		if !ok {
			return NumericValue{}, false
		}
		return NumericValue{Number: n, Unit: u}, true
	}
	return NumericValue{}, false
}

// parseDimension extracts numeric value and unit from dimension token.
func parseDimension(s string) (float64, string, bool) {
	numEnd := 0
	for i, r := range s {
		if unicode.IsDigit(r) || r == '.' || r == '-' || r == '+' {
			numEnd = i + 1
		} else {
			break
		}
	}
	if numEnd == 0 {
		return 0, "", false
	}
	num, err := strconv.ParseFloat(s[:numEnd], 64)
	if err != nil {
		return 0, "", false
	}
	return num, s[numEnd:], true
}

func parseString(value string, _ Keywords) (Property, bool) {
	return NewString(unquote(value)), true
}

func unquote(s string) string {
	if len(s) >= 2 && (s[0] == '"' || s[0] == '\'') && s[len(s)-1] == s[0] {
		return s[1 : len(s)-1]
	}
	return s
}

// opaqueParser keeps list-like values (transforms, decorators, filters) as
// normalized text. "none" and the empty string store an empty value.
func opaqueParser(u Unit) Parser {
	return ParserFunc(func(value string, _ Keywords) (Property, bool) {
		if value == "" || strings.EqualFold(value, "none") {
			return Property{Value: "", Unit: u}, true
		}
		toks, ok := tokenize(value)
		if !ok || len(toks) == 0 {
			return Property{}, false
		}
		depth := 0
		for _, t := range toks {
			switch t.tt {
			case css.FunctionToken, css.LeftParenthesisToken:
				depth++
			case css.RightParenthesisToken:
				depth--
			}
			if depth < 0 {
				return Property{}, false
			}
		}
		if depth != 0 {
			return Property{}, false
		}
		return Property{Value: strings.Join(strings.Fields(value), " "), Unit: u}, true
	})
}

var tweenFunctions = map[string]bool{
	"back": true, "bounce": true, "circular": true, "cubic": true, "elastic": true,
	"exponential": true, "linear": true, "quadratic": true, "quartic": true, "quintic": true,
	"sine": true,
}

func isTween(s string) bool {
	if s == "linear" {
		return true
	}
	for _, suffix := range []string{"-in-out", "-in", "-out"} {
		if name, ok := strings.CutSuffix(s, suffix); ok {
			return tweenFunctions[name]
		}
	}
	return false
}

// parseTransition accepts "none" or a comma separated list of
// "<property|all> <duration> [<tween>] [<delay>] [<reverse-adjustment-factor>]".
func parseTransition(value string, _ Keywords) (Property, bool) {
	if strings.EqualFold(strings.TrimSpace(value), "none") {
		return Property{Value: TransitionList{None: true}, Unit: UnitTransition}, true
	}
	var list TransitionList
	for _, item := range SplitValues(value, SplitComma) {
		tr := TransitionDef{Tween: "linear"}
		var (
			target      string
			haveTime    int
			haveFactor  bool
			haveTarget  bool
			haveTweenID bool
		)
		for _, field := range strings.Fields(item) {
			field = strings.ToLower(field)
			if nv, ok := ParseNumeric(field, UnitNumber); ok {
				switch {
				case nv.Unit == UnitNumber && !haveFactor && haveTime > 0:
					tr.ReverseAdjustmentFactor = nv.Number
					haveFactor = true
					continue
				case nv.Unit == UnitNumber:
					return Property{}, false
				}
				continue
			}
			if secs, ok := parseTime(field); ok {
				switch haveTime {
				case 0:
					tr.Duration = secs
				case 1:
					tr.Delay = secs
				default:
					return Property{}, false
				}
				haveTime++
				continue
			}
			if isTween(field) && !haveTweenID {
				tr.Tween = field
				haveTweenID = true
				continue
			}
			if haveTarget {
				return Property{}, false
			}
			target, haveTarget = field, true
		}
		if !haveTarget || haveTime == 0 {
			return Property{}, false
		}
		if target == "all" {
			if len(list.Transitions) > 0 {
				return Property{}, false
			}
			list.All = true
			list.Transitions = append(list.Transitions, tr)
			continue
		}
		if list.All {
			return Property{}, false
		}
		id, ok := idByName[target]
		if !ok {
			return Property{}, false
		}
		tr.ID = id
		list.Transitions = append(list.Transitions, tr)
	}
	if len(list.Transitions) == 0 {
		return Property{}, false
	}
	return Property{Value: list, Unit: UnitTransition}, true
}

// parseTime accepts "0.5s" and "200ms".
func parseTime(s string) (float64, bool) {
	toks, ok := tokenize(s)
	if !ok || len(toks) != 1 || toks[0].tt != css.DimensionToken {
		return 0, false
	}
	n, suffix, ok := parseDimension(toks[0].data)
	if !ok {
		return 0, false
	}
	switch strings.ToLower(suffix) {
	case "s":
		return n, true
	case "ms":
		return n / 1000, true
	}
	return 0, false
}

var idByName = func() map[string]ID {
	m := make(map[string]ID, NumIDs)
	for id := Invalid + 1; id < NumIDs; id++ {
		m[id.String()] = id
	}
	return m
}()

var shorthandByName = func() map[string]ShorthandID {
	m := make(map[string]ShorthandID, NumShorthandIDs)
	for id := InvalidShorthand + 1; id < NumShorthandIDs; id++ {
		m[id.String()] = id
	}
	return m
}()
