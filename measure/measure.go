// Package measure implements the layout core's measurement utilities —
// component A of spec.md §4.1: flat width, chain depth, trailing-comment
// detection, chain prefix width, and the argument-list width rule chain
// wrapping needs.
//
// These are pure functions over a cst.Node and the source bytes it was
// parsed from; none of them hold state, mirroring how
// core/text/parse/cst's Token methods (Cursor, Len, String) are themselves
// stateless computations over a token's byte range.
package measure

import (
	"strings"

	"github.com/javalayout/jfmt/cst"
)

// FlatWidth returns the hypothetical line length of n laid out with every
// interior whitespace run (including newlines) collapsed to a single
// space, per spec.md §4.1 "Flat width".
func FlatWidth(source []byte, n cst.Node) int {
	if n == nil {
		return 0
	}
	return len(Flatten(source, n))
}

// Flatten returns n's source text with every interior whitespace run
// collapsed to a single space and leading/trailing whitespace trimmed.
func Flatten(source []byte, n cst.Node) string {
	text := string(cst.Text(source, n))
	var b strings.Builder
	inSpace := false
	for _, r := range text {
		if r == ' ' || r == '\t' || r == '\n' || r == '\r' {
			inSpace = true
			continue
		}
		if inSpace && b.Len() > 0 {
			b.WriteByte(' ')
		}
		inSpace = false
		b.WriteRune(r)
	}
	return b.String()
}

// ChainDepth walks n's "object" field while the child kind remains
// "method_invocation", counting hops, per spec.md §4.1 "Chain depth". A
// node with depth >= 1 is a multi-call chain.
func ChainDepth(n cst.Node) int {
	depth := 0
	cur := n
	for cur != nil && cur.Kind() == "method_invocation" {
		obj := cur.ChildByFieldName("object")
		if obj == nil || obj.Kind() != "method_invocation" {
			break
		}
		depth++
		cur = obj
	}
	return depth
}

// IsTrailingComment reports whether comment is "trailing": its first
// non-extra previous sibling ends on the same source row the comment
// starts on, per spec.md §4.1 "Trailing-comment detection".
func IsTrailingComment(comment cst.Node) bool {
	prev := firstNonExtraPrevSibling(comment)
	if prev == nil {
		return false
	}
	return prev.EndPoint().Row == comment.StartPoint().Row
}

func firstNonExtraPrevSibling(n cst.Node) cst.Node {
	for s := n.PrevSibling(); s != nil; s = s.PrevSibling() {
		if !s.IsExtra() {
			return s
		}
	}
	return nil
}

// ChainPrefixWidth computes the on-line prefix width that precedes a chain
// expression, per spec.md §4.1 "Chain prefix width". lhsWidth/typeWidth/
// nameWidth are the caller-measured widths of the relevant sibling nodes
// (LHS of an assignment, type tokens + name of a declarator, or the
// enclosing call's name when parent is an argument_list chained inside
// another chain).
type PrefixContext struct {
	ParentKind string
	LHSWidth   int // assignment_expression: flat-width(LHS)
	TypeWidth  int // variable_declarator: type-tokens width
	NameWidth  int // variable_declarator / argument_list: name width
}

func ChainPrefixWidth(pc PrefixContext) int {
	switch pc.ParentKind {
	case "assignment_expression":
		return pc.LHSWidth + 3 // " = "
	case "variable_declarator":
		return pc.TypeWidth + 1 + pc.NameWidth + 3
	case "return_statement":
		return 7 // "return "
	case "throw_statement":
		return 6 // "throw "
	case "argument_list":
		return 1 + pc.NameWidth + 1 // ".name("
	default:
		return 0
	}
}

// ArgumentListChainWidth returns the flat width to use for an argument list
// when measuring a chain, per spec.md §4.1 "Argument-list width for chain
// measurement": if the list contains a lambda with a brace-block body,
// only the width up to and including the opening '{' counts.
func ArgumentListChainWidth(source []byte, argumentList cst.Node) int {
	if argumentList == nil {
		return 0
	}
	for _, arg := range argumentList.NamedChildren() {
		if arg.Kind() != "lambda_expression" {
			continue
		}
		body := arg.ChildByFieldName("body")
		if body == nil || body.Kind() != "block" {
			continue
		}
		// Measure from the start of the argument list up to and including
		// the block's opening brace.
		start := argumentList.StartByte()
		end := body.StartByte() + 1 // one past the block's first byte, '{'.
		if end > argumentList.EndByte() {
			end = argumentList.EndByte()
		}
		return len(Flatten(source, sliceNode{start: start, end: end, Node: argumentList}))
	}
	return FlatWidth(source, argumentList)
}

// sliceNode presents a byte sub-range of an existing node as a cst.Node
// purely so Flatten can be reused; none of its structural methods are
// meaningful and none are called.
type sliceNode struct {
	cst.Node
	start, end uint
}

func (s sliceNode) StartByte() uint { return s.start }
func (s sliceNode) EndByte() uint   { return s.end }
