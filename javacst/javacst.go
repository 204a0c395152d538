// Package javacst adapts github.com/tree-sitter/go-tree-sitter, loaded with
// the Java grammar from github.com/tree-sitter-grammars/tree-sitter-java,
// to the cst.Node contract that package layout consumes.
//
// This is the one concrete instance of the "external CST parser" collaborator
// spec.md §1 treats as opaque. Nothing under package layout imports this
// package directly; cmd/jfmt wires the two together.
package javacst

import (
	sitter "github.com/tree-sitter/go-tree-sitter"
	tsjava "github.com/tree-sitter-grammars/tree-sitter-java/bindings/go"

	"github.com/javalayout/jfmt/cst"
)

// Language returns the tree-sitter Java grammar.
func Language() *sitter.Language {
	return sitter.NewLanguage(tsjava.Language())
}

// Tree wraps a parsed tree-sitter tree together with the source bytes it was
// parsed from, since several cst.Node methods (none, currently, but future
// diagnostics do) need the source to render human-readable positions.
type Tree struct {
	source []byte
	tree   *sitter.Tree
}

// Parse parses source as Java and returns a cst.Tree. Malformed source does
// not make it fail: a source file tree-sitter cannot make sense of still
// produces a tree whose nodes report IsError()/HasError() — see
// cst.HasErrorRegion — per spec.md §7's "parse-error region" case. It
// returns an error only when the parser rejects the Java grammar or hands
// back a nil *sitter.Tree (spec.md §7's "parse failure" case).
func Parse(source []byte) (*Tree, error) {
	parser := sitter.NewParser()
	defer parser.Close()
	if err := parser.SetLanguage(Language()); err != nil {
		return nil, err
	}
	tree := parser.Parse(source, nil)
	if tree == nil {
		return nil, errNoRoot
	}
	return &Tree{source: source, tree: tree}, nil
}

// Close releases the underlying tree-sitter tree.
func (t *Tree) Close() {
	if t.tree != nil {
		t.tree.Close()
	}
}

// Root implements cst.Tree.
func (t *Tree) Root() cst.Node {
	root := t.tree.RootNode()
	if root == nil {
		return nil
	}
	return &node{n: root, source: t.source}
}

var errNoRoot = parseError("tree-sitter produced no parse tree")

type parseError string

func (e parseError) Error() string { return string(e) }

// node adapts *sitter.Node to cst.Node.
type node struct {
	n      *sitter.Node
	source []byte
}

func wrap(n *sitter.Node, source []byte) cst.Node {
	if n == nil {
		return nil
	}
	return &node{n: n, source: source}
}

func (w *node) Kind() string { return w.n.Kind() }

func (w *node) StartByte() uint { return uint(w.n.StartByte()) }
func (w *node) EndByte() uint   { return uint(w.n.EndByte()) }

func (w *node) StartPoint() cst.Point {
	p := w.n.StartPosition()
	return cst.Point{Row: int(p.Row), Column: int(p.Column)}
}

func (w *node) EndPoint() cst.Point {
	p := w.n.EndPosition()
	return cst.Point{Row: int(p.Row), Column: int(p.Column)}
}

func (w *node) IsNamed() bool  { return w.n.IsNamed() }
func (w *node) IsExtra() bool  { return w.n.IsExtra() }
func (w *node) IsError() bool  { return w.n.IsError() }
func (w *node) HasError() bool { return w.n.HasError() }

func (w *node) Parent() cst.Node      { return wrap(w.n.Parent(), w.source) }
func (w *node) NextSibling() cst.Node { return wrap(w.n.NextSibling(), w.source) }
func (w *node) PrevSibling() cst.Node { return wrap(w.n.PrevSibling(), w.source) }

func (w *node) ChildByFieldName(name string) cst.Node {
	return wrap(w.n.ChildByFieldName(name), w.source)
}

func (w *node) ChildrenByFieldName(name string) []cst.Node {
	count := int(w.n.ChildCount())
	var out []cst.Node
	for i := 0; i < count; i++ {
		if w.n.FieldNameForChild(uint32(i)) != name {
			continue
		}
		if c := w.n.Child(uint(i)); c != nil {
			out = append(out, wrap(c, w.source))
		}
	}
	return out
}

func (w *node) Children() []cst.Node {
	count := int(w.n.ChildCount())
	out := make([]cst.Node, 0, count)
	for i := 0; i < count; i++ {
		if c := w.n.Child(uint(i)); c != nil {
			out = append(out, wrap(c, w.source))
		}
	}
	return out
}

// NamedChildren returns only the named, non-extra children (cst.Node's
// contract). tree-sitter's own NamedChild cursor includes named extras
// (comments are a named node in this grammar), so those are filtered out
// here rather than left for callers to rediscover.
func (w *node) NamedChildren() []cst.Node {
	count := int(w.n.NamedChildCount())
	out := make([]cst.Node, 0, count)
	for i := 0; i < count; i++ {
		c := w.n.NamedChild(uint(i))
		if c == nil || c.IsExtra() {
			continue
		}
		out = append(out, wrap(c, w.source))
	}
	return out
}
