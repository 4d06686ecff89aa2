package document

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"maps"
	"slices"

	"go.uber.org/multierr"
	yaml "gopkg.in/yaml.v3"

	"rcss/style"
)

type (
	// NodeSpec describes an element and its subtree.
	NodeSpec struct {
		Tag      string     `yaml:"tag"`
		ID       string     `yaml:"id,omitempty"`
		Class    string     `yaml:"class,omitempty"`
		Style    string     `yaml:"style,omitempty"`
		Pseudo   []string   `yaml:"pseudo,omitempty"`
		Children []NodeSpec `yaml:"children,omitempty"`
	}

	// ViewportSpec is a viewport size in pixels.
	ViewportSpec struct {
		Width  float64 `yaml:"width"`
		Height float64 `yaml:"height"`
	}

	// Step is a mutation applied to the tree between two updates. Target is
	// the id attribute of the element to change, empty means the root.
	Step struct {
		Name     string          `yaml:"name"`
		Target   string          `yaml:"target,omitempty"`
		Style    string          `yaml:"style,omitempty"`
		Remove   []string        `yaml:"remove,omitempty"`
		Classes  map[string]bool `yaml:"classes,omitempty"`
		Pseudo   map[string]bool `yaml:"pseudo,omitempty"`
		Viewport *ViewportSpec   `yaml:"viewport,omitempty"`
		DPRatio  float64         `yaml:"dp_ratio,omitempty"`
	}

	// Tree is the YAML description of a document and the mutations to replay
	// on it.
	Tree struct {
		Stylesheet string   `yaml:"stylesheet,omitempty"`
		Root       NodeSpec `yaml:"root"`
		Steps      []Step   `yaml:"steps,omitempty"`
	}
)

// LoadTree decodes a tree description. Unknown fields are rejected.
func LoadTree(r io.Reader) (*Tree, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read tree: %w", err)
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	var t Tree
	if err := dec.Decode(&t); err != nil {
		return nil, fmt.Errorf("failed to decode tree: %w", err)
	}
	if t.Root.Tag == "" {
		return nil, errors.New("tree has no root tag")
	}
	return &t, nil
}

// Build creates the elements of spec under parent, NoElement for the root.
// Invalid inline declarations are skipped and reported together.
func (d *Document) Build(parent ElementID, spec NodeSpec) (ElementID, error) {
	if spec.Tag == "" {
		return NoElement, errors.New("element without tag")
	}
	id, err := d.AppendChild(parent, spec.Tag)
	if err != nil {
		return NoElement, err
	}
	e := d.elements[id]
	e.attrID = spec.ID
	e.style.SetClassNames(spec.Class)
	for _, p := range spec.Pseudo {
		e.SetPseudoClass(p, true)
	}

	var errs error
	if spec.Style != "" {
		errs = multierr.Append(errs, e.SetInlineStyle(spec.Style))
	}
	for _, c := range spec.Children {
		_, err := d.Build(id, c)
		errs = multierr.Append(errs, err)
	}
	return id, errs
}

// Apply performs a step. The caller runs Update afterwards.
func (d *Document) Apply(step Step) error {
	e := d.Root()
	if step.Target != "" {
		e = d.ElementByID(step.Target)
	}
	if e == nil {
		return fmt.Errorf("step %q: target %q: %w", step.Name, step.Target, ErrNoElement)
	}

	for _, name := range slices.Sorted(maps.Keys(step.Classes)) {
		e.SetClass(name, step.Classes[name])
	}
	for _, name := range slices.Sorted(maps.Keys(step.Pseudo)) {
		e.SetPseudoClass(name, step.Pseudo[name])
	}

	var errs error
	for _, name := range step.Remove {
		errs = multierr.Append(errs, e.RemoveProperty(name))
	}
	if step.Style != "" {
		errs = multierr.Append(errs, e.SetInlineStyle(step.Style))
	}
	if step.Viewport != nil {
		d.SetViewport(style.Vector2{X: step.Viewport.Width, Y: step.Viewport.Height})
	}
	if step.DPRatio > 0 {
		d.SetDPRatio(step.DPRatio)
	}
	if errs != nil {
		return fmt.Errorf("step %q: %w", step.Name, errs)
	}
	return nil
}
