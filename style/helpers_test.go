package style

import (
	"strings"
	"testing"

	"go.uber.org/zap"

	"rcss/property"
)

type startedTransition struct {
	tr            property.TransitionDef
	start, target property.Property
}

// node is a minimal Host keeping the tree in memory.
type node struct {
	tag      string
	parent   *node
	children []*node
	style    *ElementStyle
	values   ComputedValues
	fresh    bool

	acceptTransitions bool
	transitions       []startedTransition
	fontRequests      int
}

func newNode(tag string, parent *node, options ...Option) *node {
	n := &node{tag: tag, parent: parent, values: *DefaultComputedValues(), fresh: true}
	n.style = New(n, append([]Option{WithLogger(zap.NewNop())}, options...)...)
	n.style.DirtyInheritedProperties()
	if parent != nil {
		parent.children = append(parent.children, n)
	}
	return n
}

func (n *node) Tag() string { return n.tag }

func (n *node) ParentStyle() *ElementStyle {
	if n.parent == nil {
		return nil
	}
	return n.parent.style
}

func (n *node) ChildStyles() []*ElementStyle {
	out := make([]*ElementStyle, 0, len(n.children))
	for _, c := range n.children {
		out = append(out, c.style)
	}
	return out
}

func (n *node) Values() *ComputedValues { return &n.values }

func (n *node) ParentValues() *ComputedValues {
	if n.parent == nil {
		return nil
	}
	return &n.parent.values
}

func (n *node) DocumentValues() *ComputedValues {
	root := n
	for root.parent != nil {
		root = root.parent
	}
	return &root.values
}

func (n *node) ContainingBlock() Vector2 { return Vector2{X: 200, Y: 100} }

func (n *node) Environment() Environment {
	return Environment{DPRatio: 1, Viewport: Vector2{X: 800, Y: 600}}
}

func (n *node) StartTransition(tr property.TransitionDef, start, target property.Property) bool {
	if !n.acceptTransitions {
		return false
	}
	n.transitions = append(n.transitions, startedTransition{tr: tr, start: start, target: target})
	return true
}

func (n *node) FontFaceHandle(family string, _ FontStyle, weight FontWeight, size int) FontFaceHandle {
	n.fontRequests++
	return FontFaceHandle(len(family)<<24 | int(weight)<<8 | size)
}

func (n *node) compute() property.IDSet {
	env := n.Environment()
	changed := n.style.ComputeValues(&n.values, n.ParentValues(), n.DocumentValues(), n.fresh, env.DPRatio, env.Viewport)
	n.fresh = false
	return changed
}

// computeTree computes n and then its subtree, parents first.
func (n *node) computeTree() {
	n.compute()
	for _, c := range n.children {
		c.computeTree()
	}
}

// declarations parses "name: value; name: value" into a dictionary.
func declarations(t *testing.T, src string) *property.Dictionary {
	t.Helper()
	dict := property.NewDictionary()
	for _, decl := range strings.Split(src, ";") {
		if strings.TrimSpace(decl) == "" {
			continue
		}
		name, value, ok := strings.Cut(decl, ":")
		if !ok {
			t.Fatalf("bad declaration %q", decl)
		}
		if err := property.Default().ParseDeclaration(dict, strings.TrimSpace(name), strings.TrimSpace(value)); err != nil {
			t.Fatalf("ParseDeclaration(%q) error = %v", decl, err)
		}
	}
	return dict
}

func (n *node) set(t *testing.T, src string) {
	t.Helper()
	n.style.SetDictionary(declarations(t, src))
}

func definition(t *testing.T, src string) *ElementDefinition {
	t.Helper()
	return NewElementDefinition(declarations(t, src))
}

var (
	red   = property.Colour{R: 255, A: 255}
	blue  = property.Colour{B: 255, A: 255}
	green = property.Colour{G: 128, A: 255}
)
