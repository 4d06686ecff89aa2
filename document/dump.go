package document

import (
	"fmt"
	"io"
	"slices"

	"github.com/xlab/treeprint"

	"rcss/property"
)

// DumpOptions selects what Dump prints per element.
type DumpOptions struct {
	// Properties limits the listing, all non-default properties when empty.
	Properties []property.ID
	// Variables adds the variables each element declares.
	Variables bool
}

// Dump renders the tree with the cascaded values of every element.
func (d *Document) Dump(w io.Writer, opts DumpOptions) error {
	root := d.Root()
	if root == nil {
		_, err := io.WriteString(w, "<empty>\n")
		return err
	}
	tree := treeprint.NewWithRoot(root.Label())
	d.dumpElement(tree, root, opts)
	_, err := io.WriteString(w, tree.String())
	return err
}

func (d *Document) dumpElement(branch treeprint.Tree, e *Element, opts DumpOptions) {
	for _, line := range d.describe(e, opts) {
		branch.AddNode(line)
	}
	for _, c := range e.Children() {
		d.dumpElement(branch.AddBranch(c.Label()), c, opts)
	}
}

func (d *Document) describe(e *Element, opts DumpOptions) []string {
	var lines []string
	ids := opts.Properties
	filter := len(ids) == 0
	if filter {
		ids = d.reg.Registered().Slice()
	}
	for _, id := range ids {
		p := e.style.Property(id)
		if p == nil {
			continue
		}
		if filter {
			if def := d.reg.Definition(id).Default(); def != nil && p.Equal(*def) {
				continue
			}
		}
		lines = append(lines, fmt.Sprintf("%s: %s", id, p))
	}
	if opts.Variables {
		names := e.style.Definition().VariableNames()
		for name := range e.style.LocalStyleVariables {
			names = append(names, name)
		}
		slices.Sort(names)
		for _, name := range slices.Compact(names) {
			if v := e.style.Variable(name); v != nil {
				lines = append(lines, fmt.Sprintf("%s: %s", name, v))
			}
		}
	}
	return lines
}
