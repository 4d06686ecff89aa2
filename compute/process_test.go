package compute

import (
	"archive/zip"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest"
	"go.uber.org/zap/zaptest/observer"

	"rcss/config"
	"rcss/state"
)

const tree = `
stylesheet: |
  :root { --accent: red }
  .note { color: var(--accent); opacity: 1; transition: opacity 1s }
  .note.faded { opacity: 0.5 }
root:
  tag: body
  children:
    - tag: div
      id: main
      class: note
steps:
  - name: accent
    style: "--accent: blue"
  - name: fade
    target: main
    classes:
      faded: true
`

func newEnv(t *testing.T) *state.LocalEnv {
	t.Helper()
	cfg, err := config.LoadConfiguration("")
	if err != nil {
		t.Fatalf("LoadConfiguration() error = %v", err)
	}
	return &state.LocalEnv{Cfg: cfg, Log: zaptest.NewLogger(t)}
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestProcess_FinalDump(t *testing.T) {
	env := newEnv(t)
	var out strings.Builder
	opts := Options{TreePath: writeFile(t, "tree.yaml", tree), Properties: []string{"color"}}
	if err := process(context.Background(), env, opts, &out, env.Log); err != nil {
		t.Fatalf("process() error = %v", err)
	}
	got := out.String()
	if !strings.Contains(got, "div#main.note") || !strings.Contains(got, "color: rgba(0,0,255,255)") {
		t.Errorf("output:\n%s", got)
	}
	if strings.Contains(got, "== final ==") {
		t.Errorf("stage headers printed without EachStep:\n%s", got)
	}
}

func TestProcess_EachStep(t *testing.T) {
	env := newEnv(t)
	var out strings.Builder
	opts := Options{
		TreePath:   writeFile(t, "tree.yaml", tree),
		Properties: []string{"color,background-color", "nonsense"},
		EachStep:   true,
	}
	if err := process(context.Background(), env, opts, &out, env.Log); err != nil {
		t.Fatalf("process() error = %v", err)
	}
	got := out.String()
	for _, want := range []string{
		"== initial ==",
		"color: rgba(255,0,0,255)",
		"== step accent ==",
		"changed div#main.note:",
		"== step fade ==",
		"opacity 1 -> 0.5",
		"== final ==",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("output lacks %q:\n%s", want, got)
		}
	}
}

func TestProcess_ExtraStylesheetAndRootStyle(t *testing.T) {
	env := newEnv(t)
	env.Cfg.Document.RootStyle = "--accent: green; width: 10px"
	var out strings.Builder
	opts := Options{
		TreePath:       writeFile(t, "tree.yaml", "root:\n  tag: body\n  children:\n    - tag: p\n"),
		StylesheetPath: writeFile(t, "extra.css", "p { color: var(--accent) }"),
		Properties:     []string{"color"},
	}
	if err := process(context.Background(), env, opts, &out, env.Log); err != nil {
		t.Fatalf("process() error = %v", err)
	}
	if !strings.Contains(out.String(), "color: rgba(0,128,0,255)") {
		t.Errorf("output:\n%s", out.String())
	}
}

func TestProcess_Errors(t *testing.T) {
	env := newEnv(t)
	var out strings.Builder

	if err := process(context.Background(), env, Options{TreePath: "/nonexistent/tree.yaml"}, &out, env.Log); err == nil {
		t.Error("missing tree expected error")
	}
	if err := process(context.Background(), env, Options{TreePath: writeFile(t, "bad.yaml", "root: {}\n")}, &out, env.Log); err == nil {
		t.Error("tree without root expected error")
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := process(ctx, env, Options{TreePath: writeFile(t, "tree.yaml", tree)}, &out, env.Log)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("cancelled context error = %v", err)
	}
}

func TestProcess_WarnsOnBadInput(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	env := newEnv(t)
	env.Log = zap.New(core)
	var out strings.Builder
	text := `
stylesheet: "p { width: banana }"
root:
  tag: body
  style: "bogus: 1"
steps:
  - name: lost
    target: nowhere
`
	if err := process(context.Background(), env, Options{TreePath: writeFile(t, "tree.yaml", text)}, &out, env.Log); err != nil {
		t.Fatalf("process() error = %v", err)
	}
	for _, msg := range []string{"Stylesheet has invalid declarations", "Tree has invalid inline styles", "Step partially applied"} {
		if logs.FilterMessage(msg).Len() != 1 {
			t.Errorf("expected warning %q, got %v", msg, logs.All())
		}
	}
}

func TestProcess_DebugReport(t *testing.T) {
	env := newEnv(t)
	dir := t.TempDir()
	rpt, err := (&config.ReporterConfig{Destination: filepath.Join(dir, "report.zip")}).Prepare()
	if err != nil {
		t.Fatalf("Prepare() error = %v", err)
	}
	env.Rpt = rpt
	env.Cfg.Diagnostics.Trace = true
	if err := env.PrepareTracer(); err != nil {
		t.Fatalf("PrepareTracer() error = %v", err)
	}

	var out strings.Builder
	if err := process(context.Background(), env, Options{TreePath: writeFile(t, "tree.yaml", tree)}, &out, env.Log); err != nil {
		t.Fatalf("process() error = %v", err)
	}
	if _, err := env.CloseTracer(); err != nil {
		t.Fatalf("CloseTracer() error = %v", err)
	}
	if err := rpt.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	zr, err := zip.OpenReader(rpt.Name())
	if err != nil {
		t.Fatalf("open report: %v", err)
	}
	defer zr.Close()
	names := make(map[string]bool)
	for _, f := range zr.File {
		names[f.Name] = true
	}
	for _, name := range []string{"MANIFEST", "input/tree.yaml", "sheet.txt", "tree.txt", "style-trace.txt"} {
		if !names[name] {
			t.Errorf("report lacks %s, has %v", name, names)
		}
	}
}
