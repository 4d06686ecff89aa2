package style

import (
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"strings"
)

// Tracer records resolution and materialization steps for debugging. When
// enabled (via non-empty workDir) entries are buffered and written to
// style-trace.txt by Flush so they end up in the debug report.
type Tracer struct {
	enabled  bool
	workDir  string
	entries  []traceEntry
	sections map[string]int // operation -> entry count for summary
}

type traceEntry struct {
	operation string
	element   string
	details   string
}

// NewTracer creates a new tracer. If workDir is empty, tracing is disabled.
func NewTracer(workDir string) *Tracer {
	return &Tracer{
		workDir:  workDir,
		enabled:  workDir != "",
		sections: make(map[string]int),
	}
}

// IsEnabled returns true if tracing is active.
func (t *Tracer) IsEnabled() bool {
	if t == nil {
		return false
	}
	return t.enabled
}

func (t *Tracer) add(operation, element, details string) {
	t.entries = append(t.entries, traceEntry{operation: operation, element: element, details: details})
	t.sections[strings.ToLower(operation)]++
}

// TraceVariable logs a resolved variable.
func (t *Tracer) TraceVariable(element, name, value string) {
	if !t.IsEnabled() {
		return
	}
	t.add("VARIABLE", element, fmt.Sprintf("%s = %q", name, value))
}

// TraceCycle logs a variable met again while it was being resolved.
func (t *Tracer) TraceCycle(element string, stack []string, name string) {
	if !t.IsEnabled() {
		return
	}
	t.add("CYCLE", element, strings.Join(append(slices.Clone(stack), name), " -> "))
}

// TraceShorthand logs the expansion of a dependent shorthand.
func (t *Tracer) TraceShorthand(element, name, value string) {
	if !t.IsEnabled() {
		return
	}
	t.add("SHORTHAND", element, fmt.Sprintf("%s: %s", name, value))
}

// TraceProperty logs a variable dependent property after resolution.
func (t *Tracer) TraceProperty(element, name, value string) {
	if !t.IsEnabled() {
		return
	}
	t.add("PROPERTY", element, fmt.Sprintf("%s: %s", name, value))
}

// TraceDefinition logs a rule set swap with the properties it changed.
func (t *Tracer) TraceDefinition(element, changed, transitioned string) {
	if !t.IsEnabled() {
		return
	}
	details := "changed: " + changed
	if transitioned != "" {
		details += "\ntransitioned: " + transitioned
	}
	t.add("DEFINITION", element, details)
}

// TraceCompute logs the dirty set consumed by one materialization.
func (t *Tracer) TraceCompute(element, dirty string) {
	if !t.IsEnabled() {
		return
	}
	t.add("COMPUTE", element, dirty)
}

// Flush writes the trace to a file and clears the buffer.
// Returns the path to the trace file, or empty string if tracing is disabled.
func (t *Tracer) Flush() string {
	if !t.IsEnabled() || len(t.entries) == 0 {
		return ""
	}

	var sb strings.Builder
	sb.WriteString("=== Style Trace ===\n\n")

	sb.WriteString("Summary:\n")
	for _, section := range slices.Sorted(maps.Keys(t.sections)) {
		sb.WriteString(fmt.Sprintf("  %s: %d\n", section, t.sections[section]))
	}
	sb.WriteString("\n")

	sb.WriteString("Detailed Trace:\n")
	sb.WriteString(strings.Repeat("-", 80) + "\n")

	for i, entry := range t.entries {
		sb.WriteString(fmt.Sprintf("[%04d] %s: %s\n", i+1, entry.operation, entry.element))
		if entry.details != "" {
			for _, line := range strings.Split(entry.details, "\n") {
				sb.WriteString("       " + line + "\n")
			}
		}
		sb.WriteString("\n")
	}

	tracePath := filepath.Join(t.workDir, "style-trace.txt")
	if err := os.WriteFile(tracePath, []byte(sb.String()), 0644); err != nil {
		return ""
	}

	t.entries = nil
	t.sections = make(map[string]int)

	return tracePath
}
