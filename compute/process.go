package compute

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"go.uber.org/zap"

	"rcss/document"
	"rcss/property"
	"rcss/state"
)

// Options select the inputs and what gets printed.
type Options struct {
	TreePath string
	// StylesheetPath is appended to the stylesheet embedded in the tree.
	StylesheetPath string
	// Properties limits the dump, every non-default property when empty.
	Properties []string
	Variables  bool
	// EachStep prints the tree after every step, not only at the end.
	EachStep bool
}

func (o Options) dumpOptions(log *zap.Logger) document.DumpOptions {
	do := document.DumpOptions{Variables: o.Variables}
	reg := property.Default()
	for _, name := range o.Properties {
		for _, n := range strings.Split(name, ",") {
			n = strings.TrimSpace(n)
			if id, ok := reg.PropertyByName(n); ok {
				do.Properties = append(do.Properties, id)
			} else if n != "" {
				log.Warn("Unknown property requested, ignoring", zap.String("property", n))
			}
		}
	}
	return do
}

func readInput(env *state.LocalEnv, path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("unable to read '%s': %w", path, err)
	}
	if err := env.Rpt.StoreCopy("input/"+filepath.Base(path), path); err != nil {
		env.Log.Warn("Unable to store input in report", zap.String("file", path), zap.Error(err))
	}
	return data, nil
}

func process(ctx context.Context, env *state.LocalEnv, opts Options, out io.Writer, log *zap.Logger) error {
	data, err := readInput(env, opts.TreePath)
	if err != nil {
		return err
	}
	tree, err := document.LoadTree(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("unable to load tree '%s': %w", opts.TreePath, err)
	}

	css := []byte(tree.Stylesheet)
	source := filepath.Base(opts.TreePath)
	if opts.StylesheetPath != "" {
		extra, err := readInput(env, opts.StylesheetPath)
		if err != nil {
			return err
		}
		css = append(append(css, '\n'), extra...)
		source = filepath.Base(opts.StylesheetPath)
	}

	d := document.New(env.DocumentOptions()...)
	if err := d.SetStyleSheet(css, source); err != nil {
		log.Warn("Stylesheet has invalid declarations", zap.Error(err))
	}
	env.Rpt.StoreData("sheet.txt", []byte(d.Sheet().Listing()))
	root, err := d.Build(document.NoElement, tree.Root)
	if root == document.NoElement {
		return fmt.Errorf("unable to build tree: %w", err)
	}
	if err != nil {
		log.Warn("Tree has invalid inline styles", zap.Error(err))
	}
	if err := applyRootStyle(env, d, tree.Root.Style); err != nil {
		log.Warn("Root style has invalid declarations", zap.Error(err))
	}

	dumpOpts := opts.dumpOptions(log)
	changed := d.Update()
	log.Debug("Initial update", zap.Int("elements", d.Len()), zap.Int("changed", len(changed)))
	if opts.EachStep {
		if err := dumpStage(out, d, "initial", dumpOpts); err != nil {
			return err
		}
	}

	for _, step := range tree.Steps {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := d.Apply(step); err != nil {
			log.Warn("Step partially applied", zap.String("step", step.Name), zap.Error(err))
		}
		changed := d.Update()
		log.Debug("Step applied", zap.String("step", step.Name), zap.Int("changed", len(changed)))
		started := d.Transitions().Drain()
		for _, tr := range started {
			log.Info("Transition started", zap.String("step", step.Name), zap.String("element", tr.Label),
				zap.Stringer("property", tr.Transition.ID), zap.String("from", tr.Start.String()), zap.String("to", tr.Target.String()))
		}
		if opts.EachStep {
			if err := dumpStage(out, d, "step "+step.Name, dumpOpts); err != nil {
				return err
			}
			if err := writeChanges(out, d, changed, started); err != nil {
				return err
			}
		}
	}

	var final bytes.Buffer
	if err := d.Dump(&final, dumpOpts); err != nil {
		return err
	}
	env.Rpt.StoreData("tree.txt", final.Bytes())
	if opts.EachStep {
		if _, err := fmt.Fprintln(out, "== final =="); err != nil {
			return err
		}
	}
	_, err = out.Write(final.Bytes())
	return err
}

// applyRootStyle sets configured root declarations, then re-applies the
// tree's own root style so the tree wins.
func applyRootStyle(env *state.LocalEnv, d *document.Document, own string) error {
	if env.Cfg == nil || env.Cfg.Document.RootStyle == "" {
		return nil
	}
	root := d.Root()
	if err := root.SetInlineStyle(env.Cfg.Document.RootStyle); err != nil {
		return err
	}
	if own == "" {
		return nil
	}
	return root.SetInlineStyle(own)
}

func dumpStage(out io.Writer, d *document.Document, name string, opts document.DumpOptions) error {
	if _, err := fmt.Fprintf(out, "== %s ==\n", name); err != nil {
		return err
	}
	return d.Dump(out, opts)
}

func writeChanges(out io.Writer, d *document.Document, changed map[document.ElementID]property.IDSet, started []document.StartedTransition) error {
	for _, id := range slices.Sorted(maps.Keys(changed)) {
		if _, err := fmt.Fprintf(out, "changed %s: %s\n", d.Element(id).Label(), changed[id]); err != nil {
			return err
		}
	}
	for _, tr := range started {
		if _, err := fmt.Fprintf(out, "transition %s: %s %s -> %s\n", tr.Label, tr.Transition.ID, tr.Start, tr.Target); err != nil {
			return err
		}
	}
	return nil
}
