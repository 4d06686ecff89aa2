package property

import "strings"

// SplitOption selects how a declaration value is broken into sub-values.
type SplitOption int

const (
	SplitNone SplitOption = iota
	SplitWhitespace
	SplitComma
)

type splitState int

const (
	stateValue splitState = iota
	stateParenthesis
	stateQuote
	stateQuoteEscape
)

// SplitValues breaks value into sub-values. Parenthesised groups and quoted
// strings are never split. Quotes are dropped from the output except when
// splitting by comma, where they are kept so that each item can be parsed on
// its own. A ';' always terminates the current sub-value.
func SplitValues(value string, opt SplitOption) []string {
	var (
		out   []string
		cur   strings.Builder
		state = stateValue
		depth int
	)

	submit := func() {
		v := strings.TrimSpace(cur.String())
		cur.Reset()
		if v != "" {
			out = append(out, v)
		}
	}
	isSeparator := func(c byte) bool {
		if opt == SplitComma {
			return c == ','
		}
		return isSpace(c)
	}

	for i := 0; i < len(value); i++ {
		c := value[i]
		switch state {
		case stateValue:
			switch {
			case c == ';':
				submit()
			case isSeparator(c):
				if opt != SplitNone {
					submit()
				} else {
					cur.WriteByte(c)
				}
			case c == '"':
				state = stateQuote
				switch opt {
				case SplitWhitespace:
					submit()
				case SplitComma:
					cur.WriteByte('"')
				default:
					cur.WriteByte(' ')
				}
			case c == '(':
				depth = 1
				cur.WriteByte(c)
				state = stateParenthesis
			default:
				cur.WriteByte(c)
			}
		case stateParenthesis:
			switch c {
			case '(':
				depth++
			case ')':
				depth--
				if depth == 0 {
					state = stateValue
				}
			case '"':
				state = stateQuote
			}
			cur.WriteByte(c)
		case stateQuote:
			switch c {
			case '"':
				if depth > 0 {
					state = stateParenthesis
					cur.WriteByte(c)
					continue
				}
				state = stateValue
				switch opt {
				case SplitWhitespace:
					submit()
				case SplitComma:
					cur.WriteByte('"')
				default:
					cur.WriteByte(' ')
				}
			case '\\':
				state = stateQuoteEscape
			default:
				cur.WriteByte(c)
			}
		case stateQuoteEscape:
			if c != '"' && c != '\\' {
				cur.WriteByte('\\')
			}
			cur.WriteByte(c)
			state = stateQuote
		}
	}
	if state == stateValue {
		submit()
	}
	return out
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\f'
}
