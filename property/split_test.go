package property

import (
	"slices"
	"testing"
)

func TestSplitValues(t *testing.T) {
	tests := []struct {
		name  string
		value string
		opt   SplitOption
		want  []string
	}{
		{"none keeps spaces", "1px  solid red", SplitNone, []string{"1px  solid red"}},
		{"whitespace", " 1px \t 2px\n3px ", SplitWhitespace, []string{"1px", "2px", "3px"}},
		{"parentheses", "rgb(1, 2, 3) 4px", SplitWhitespace, []string{"rgb(1, 2, 3)", "4px"}},
		{"quotes", `"Open Sans" serif`, SplitWhitespace, []string{"Open Sans", "serif"}},
		{"comma", `a b, c(d, e), "f, g"`, SplitComma, []string{"a b", "c(d, e)", `"f, g"`}},
		{"semicolon", "a; b", SplitWhitespace, []string{"a", "b"}},
		{"escaped quote", `"a\"b"`, SplitWhitespace, []string{`a"b`}},
		{"empty", "   ", SplitWhitespace, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SplitValues(tt.value, tt.opt); !slices.Equal(got, tt.want) {
				t.Errorf("SplitValues(%q) = %q, want %q", tt.value, got, tt.want)
			}
		})
	}
}
