// Package debug has helpers producing human readable listings for debug
// reports.
package debug

import (
	"fmt"
	"strconv"
	"strings"
)

// TreeWriter accumulates indented lines, two spaces per level.
type TreeWriter struct {
	w *strings.Builder
}

func NewTreeWriter() *TreeWriter {
	return &TreeWriter{
		w: &strings.Builder{},
	}
}

func (tw TreeWriter) String() string {
	return tw.w.String()
}

func (tw TreeWriter) indent(depth int) {
	for range depth {
		tw.w.WriteString("  ")
	}
}

func (tw TreeWriter) Line(depth int, format string, args ...any) {
	tw.indent(depth)
	fmt.Fprintf(tw.w, format, args...)
	tw.w.WriteByte('\n')
}

// Value writes "label: value". Values with blanks, quotes or control
// characters are quoted so trailing space stays visible.
func (tw TreeWriter) Value(depth int, label, value string) {
	tw.indent(depth)
	tw.w.WriteString(label)
	tw.w.WriteString(": ")
	tw.w.WriteString(encodeValue(value))
	tw.w.WriteByte('\n')
}

func encodeValue(raw string) string {
	if raw == "" {
		return `""`
	}
	if strings.TrimSpace(raw) != raw || strings.ContainsAny(raw, "\"\n\t\r") {
		return strconv.Quote(raw)
	}
	return raw
}
