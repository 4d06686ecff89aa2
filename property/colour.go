package property

import (
	"strconv"
	"strings"

	"github.com/tdewolff/parse/v2/css"
)

var namedColours = map[string]Colour{
	"transparent": {0, 0, 0, 0},
	"black":       {0, 0, 0, 255},
	"silver":      {192, 192, 192, 255},
	"gray":        {128, 128, 128, 255},
	"grey":        {128, 128, 128, 255},
	"white":       {255, 255, 255, 255},
	"maroon":      {128, 0, 0, 255},
	"red":         {255, 0, 0, 255},
	"orange":      {255, 165, 0, 255},
	"purple":      {128, 0, 128, 255},
	"fuchsia":     {255, 0, 255, 255},
	"green":       {0, 128, 0, 255},
	"lime":        {0, 255, 0, 255},
	"olive":       {128, 128, 0, 255},
	"yellow":      {255, 255, 0, 255},
	"navy":        {0, 0, 128, 255},
	"blue":        {0, 0, 255, 255},
	"teal":        {0, 128, 128, 255},
	"aqua":        {0, 255, 255, 255},
}

// parseColour accepts #rgb, #rgba, #rrggbb, #rrggbbaa, rgb(), rgba() and the
// named colours above.
func parseColour(value string, _ Keywords) (Property, bool) {
	c, ok := ParseColour(value)
	if !ok {
		return Property{}, false
	}
	return Property{Value: c, Unit: UnitColour}, true
}

// ParseColour parses a colour value.
func ParseColour(value string) (Colour, bool) {
	value = strings.TrimSpace(value)
	if c, ok := namedColours[strings.ToLower(value)]; ok {
		return c, true
	}
	toks, ok := tokenize(value)
	if !ok || len(toks) == 0 {
		return Colour{}, false
	}
	switch toks[0].tt {
	case css.HashToken:
		if len(toks) != 1 {
			return Colour{}, false
		}
		return parseHexColour(strings.TrimPrefix(toks[0].data, "#"))
	case css.FunctionToken:
		name := strings.ToLower(strings.TrimSuffix(toks[0].data, "("))
		if name != "rgb" && name != "rgba" {
			return Colour{}, false
		}
		return parseRGBFunction(toks[1:])
	}
	return Colour{}, false
}

func parseHexColour(hex string) (Colour, bool) {
	expand := func(s string) string {
		var sb strings.Builder
		for i := range len(s) {
			sb.WriteByte(s[i])
			sb.WriteByte(s[i])
		}
		return sb.String()
	}
	switch len(hex) {
	case 3, 4:
		hex = expand(hex)
	case 6, 8:
	default:
		return Colour{}, false
	}
	if len(hex) == 6 {
		hex += "ff"
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return Colour{}, false
	}
	return Colour{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}, true
}

// parseRGBFunction reads the arguments following "rgb(" or "rgba(". Both comma
// and space separated forms are accepted, alpha may be a number or percentage.
func parseRGBFunction(toks []token) (Colour, bool) {
	var args []token
	closed := false
	for _, t := range toks {
		switch t.tt {
		case css.CommaToken:
			continue
		case css.RightParenthesisToken:
			closed = true
		case css.NumberToken, css.PercentageToken:
			if closed {
				return Colour{}, false
			}
			args = append(args, t)
		case css.DelimToken:
			if t.data == "/" {
				continue
			}
			return Colour{}, false
		default:
			return Colour{}, false
		}
	}
	if !closed || (len(args) != 3 && len(args) != 4) {
		return Colour{}, false
	}
	var out [4]uint8
	out[3] = 255
	for i, t := range args {
		isPercent := t.tt == css.PercentageToken
		n, err := strconv.ParseFloat(strings.TrimSuffix(t.data, "%"), 64)
		if err != nil {
			return Colour{}, false
		}
		switch {
		case isPercent:
			n = n / 100 * 255
		case i == 3 && n <= 1:
			n *= 255
		}
		out[i] = clampByte(n)
	}
	return Colour{R: out[0], G: out[1], B: out[2], A: out[3]}, true
}

func clampByte(n float64) uint8 {
	switch {
	case n <= 0:
		return 0
	case n >= 255:
		return 255
	}
	return uint8(n + 0.5)
}
