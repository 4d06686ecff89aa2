package state

import (
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"

	"rcss/document"
	"rcss/misc"
	"rcss/style"
)

func newLocalEnv() *LocalEnv {
	return &LocalEnv{
		Log:   zap.NewNop(),
		start: time.Now(),
	}
}

// PrepareTracer enables the style tracer when diagnostics ask for it. The
// trace is written into a temporary directory removed by CloseTracer.
func (e *LocalEnv) PrepareTracer() error {
	if e.Cfg == nil || !e.Cfg.Diagnostics.Trace || e.Tracer != nil {
		return nil
	}
	dir, err := os.MkdirTemp("", misc.GetAppName()+"-trace-")
	if err != nil {
		return fmt.Errorf("unable to create trace directory: %w", err)
	}
	e.traceDir = dir
	e.Tracer = style.NewTracer(dir)
	return nil
}

// CloseTracer flushes the trace into the report, if any, and removes the
// temporary directory. It returns trace content for callers that print it.
func (e *LocalEnv) CloseTracer() ([]byte, error) {
	if e.Tracer == nil {
		return nil, nil
	}
	defer func() {
		os.RemoveAll(e.traceDir)
		e.Tracer, e.traceDir = nil, ""
	}()
	path := e.Tracer.Flush()
	if path == "" {
		return nil, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("unable to read style trace: %w", err)
	}
	e.Rpt.StoreData("style-trace.txt", data)
	return data, nil
}

// DocumentOptions translates configuration into document options.
func (e *LocalEnv) DocumentOptions() []document.Option {
	opts := []document.Option{document.WithLogger(e.Log)}
	if e.Tracer != nil {
		opts = append(opts, document.WithTracer(e.Tracer))
	}
	if e.Cfg == nil {
		return opts
	}
	dc := e.Cfg.Document
	level, enabled := e.Cfg.Diagnostics.VariableCycles.Level()
	return append(opts,
		document.WithEnvironment(style.Environment{
			DPRatio:  dc.DPRatio,
			Viewport: style.Vector2{X: dc.Viewport.Width, Y: dc.Viewport.Height},
		}),
		document.WithCycleReport(level, enabled),
	)
}
