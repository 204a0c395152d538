// Package cst defines the contract the layout core expects of a parsed
// Java concrete syntax tree. The core never constructs nodes itself: it
// receives a Node and a Point from whatever parser the host wires in (see
// package javacst for the tree-sitter-backed implementation) and only ever
// reads through this interface.
//
// The shape mirrors github.com/google/gapid's core/text/parse/cst, with
// Branch/Leaf collapsed into a single Node interface because tree-sitter
// (and most modern CST libraries) expose a single flat node type rather
// than a Branch/Leaf split.
package cst

// Point is a zero-based row/column source position, matching tree-sitter's
// convention (row and column both start at 0, column counts bytes).
type Point struct {
	Row    int
	Column int
}

// Node is a single node of a parsed Java source file.
//
// Kind returns the grammar's node type, e.g. "class_declaration",
// "method_invocation", "binary_expression", "line_comment".
//
// IsNamed distinguishes grammar productions from bare punctuation/keyword
// tokens (tree-sitter's "named vs anonymous" split). IsExtra is true for
// nodes that can appear anywhere in the tree outside the grammar proper —
// comments, in this grammar.
type Node interface {
	Kind() string

	StartByte() uint
	EndByte() uint
	StartPoint() Point
	EndPoint() Point

	IsNamed() bool
	IsExtra() bool
	IsError() bool
	HasError() bool

	Parent() Node
	NextSibling() Node
	PrevSibling() Node

	// ChildByFieldName returns the node assigned to the given grammar field
	// on this node (e.g. "object", "name", "arguments"), or nil.
	ChildByFieldName(name string) Node

	// ChildrenByFieldName returns every child assigned to the given field,
	// in source order. Most fields hold at most one child (ChildByFieldName
	// covers that case); "init"/"update" on a classic for_statement are the
	// grammar's one repeated field.
	ChildrenByFieldName(name string) []Node

	// Children returns every child of this node in source order, including
	// unnamed (punctuation) and extra (comment) children.
	Children() []Node

	// NamedChildren returns only the named, non-extra children, in source
	// order.
	NamedChildren() []Node
}

// Tree is a parsed source file.
type Tree interface {
	// Root returns the tree's root node, or nil if parsing produced no
	// tree at all (spec.md §7's "parse failure" case).
	Root() Node
}

// Text returns the source bytes covered by n.
func Text(source []byte, n Node) []byte {
	if n == nil {
		return nil
	}
	s, e := n.StartByte(), n.EndByte()
	if e > uint(len(source)) {
		e = uint(len(source))
	}
	if s > e {
		return nil
	}
	return source[s:e]
}

// HasErrorRegion reports whether any node in the subtree rooted at n is an
// error node, or reports an internal error — spec.md §3 invariant 4 and §7's
// "parse-error region" case.
func HasErrorRegion(n Node) bool {
	if n == nil {
		return false
	}
	if n.IsError() || n.HasError() {
		return true
	}
	for _, c := range n.Children() {
		if HasErrorRegion(c) {
			return true
		}
	}
	return false
}
