// Package fixture builds cst.Node trees by hand, without a real parser.
// The layout core's tests are written against these fixtures: spec.md
// treats the parser as an opaque external collaborator, so exercising the
// core's measurement and emission logic only requires something that
// satisfies the cst.Node contract, not a working Java grammar.
package fixture

import "github.com/javalayout/jfmt/cst"

// Node is a hand-built, mutable cst.Node used in tests.
type Node struct {
	kind       string
	startByte  uint
	endByte    uint
	start, end cst.Point
	named      bool
	extra      bool
	isError    bool
	hasErr     bool
	parent     *Node
	prev, next *Node
	children   []*Node
	fields     map[string]*Node
	listFields map[string][]*Node
}

// New creates a named, non-extra node covering source[start:end].
func New(kind string, start, end uint) *Node {
	return &Node{kind: kind, startByte: start, endByte: end, named: true}
}

// Leaf creates a named token node, e.g. an identifier or literal.
func Leaf(kind string, start, end uint) *Node { return New(kind, start, end) }

// Punct creates an unnamed punctuation/keyword node ("{", "public", ";", ...).
func Punct(kind string, start, end uint) *Node {
	n := New(kind, start, end)
	n.named = false
	return n
}

// Comment creates an "extra" node — a line_comment or block_comment.
func Comment(kind string, start, end uint) *Node {
	n := New(kind, start, end)
	n.extra = true
	return n
}

// WithError marks the node (and by extension its ancestors, via HasError)
// as covering a parse error region.
func (n *Node) WithError() *Node {
	n.isError = true
	return n
}

// At sets the node's row/column span explicitly; by default fixtures don't
// need it unless a test exercises row-based trailing-comment detection.
func (n *Node) At(startRow, startCol, endRow, endCol int) *Node {
	n.start = cst.Point{Row: startRow, Column: startCol}
	n.end = cst.Point{Row: endRow, Column: endCol}
	return n
}

// AddChild appends a child in source order, wiring its parent pointer and
// sibling links.
func (n *Node) AddChild(c *Node) *Node {
	if prev := len(n.children); prev > 0 {
		n.children[prev-1].next = c
		c.prev = n.children[prev-1]
	}
	c.parent = n
	n.children = append(n.children, c)
	if c.hasErr || c.isError {
		n.hasErr = true
	}
	return n
}

// Field assigns c as the named field on n (e.g. n.Field("object", obj)),
// without implying anything about sibling order; call AddChild separately
// if c should also be a positional child.
func (n *Node) Field(name string, c *Node) *Node {
	if n.fields == nil {
		n.fields = map[string]*Node{}
	}
	n.fields[name] = c
	return n
}

func (n *Node) Kind() string       { return n.kind }
func (n *Node) StartByte() uint    { return n.startByte }
func (n *Node) EndByte() uint      { return n.endByte }
func (n *Node) StartPoint() cst.Point { return n.start }
func (n *Node) EndPoint() cst.Point   { return n.end }
func (n *Node) IsNamed() bool      { return n.named }
func (n *Node) IsExtra() bool      { return n.extra }
func (n *Node) IsError() bool      { return n.isError }
func (n *Node) HasError() bool     { return n.hasErr || n.isError }

func (n *Node) Parent() cst.Node { return wrap(n.parent) }
func (n *Node) NextSibling() cst.Node {
	return wrap(n.next)
}
func (n *Node) PrevSibling() cst.Node {
	return wrap(n.prev)
}

func (n *Node) ChildByFieldName(name string) cst.Node {
	if n.fields == nil {
		return nil
	}
	return wrap(n.fields[name])
}

// AddFieldChild both appends c as a positional child and records it under
// the repeated field name, e.g. AddFieldChild("init", ...) for a classic
// for_statement's comma-separated initializers.
func (n *Node) AddFieldChild(name string, c *Node) *Node {
	n.AddChild(c)
	if n.listFields == nil {
		n.listFields = map[string][]*Node{}
	}
	n.listFields[name] = append(n.listFields[name], c)
	return n
}

func (n *Node) ChildrenByFieldName(name string) []cst.Node {
	out := make([]cst.Node, 0, len(n.listFields[name]))
	for _, c := range n.listFields[name] {
		out = append(out, c)
	}
	return out
}

func (n *Node) Children() []cst.Node {
	out := make([]cst.Node, 0, len(n.children))
	for _, c := range n.children {
		out = append(out, c)
	}
	return out
}

func (n *Node) NamedChildren() []cst.Node {
	out := make([]cst.Node, 0, len(n.children))
	for _, c := range n.children {
		if c.named && !c.extra {
			out = append(out, c)
		}
	}
	return out
}

func wrap(n *Node) cst.Node {
	if n == nil {
		return nil
	}
	return n
}
