package layout

import (
	"github.com/javalayout/jfmt/cst"
	"github.com/javalayout/jfmt/measure"
)

// emitExtra emits a single extra child n. A comment with leadingNewLine
// false appends to the current line after a space; otherwise it starts its
// own line. WalkExtras decides leadingNewLine with
// measure.IsTrailingComment: a comment whose first non-extra previous
// sibling ends on the comment's own start row is trailing. Extras that are
// not comments are emitted verbatim.
//
// This is how the core satisfies spec.md §3 invariant 3 ("is_extra
// children are never dropped... comment nodes are emitted exactly once")
// and §9's "Extra comment children" design note: extras are discovered by
// walking Children() in source order, not by a separate comment pass.
func (e *Emitter) emitExtra(n cst.Node, leadingNewLine bool) {
	switch n.Kind() {
	case "line_comment", "block_comment":
		if leadingNewLine {
			e.NewLine()
		} else {
			e.Space()
		}
		e.EmitComment(n)
		if n.Kind() == "block_comment" {
			// line comments already end with a NewLine (spec.md invariant 2);
			// block/Javadoc comments don't, since they may be followed by
			// more same-line content (e.g. a trailing field comment).
		}
	default:
		e.Verbatim(n)
	}
}

// WalkExtras iterates every child of n (named, unnamed, and extra) and
// invokes onNamed for each non-extra child in source order, emitting any
// extra (comment) children in between automatically.
func (e *Emitter) WalkExtras(n cst.Node, onNamed func(c cst.Node)) {
	for _, c := range n.Children() {
		if c.IsExtra() {
			leading := !measure.IsTrailingComment(c)
			e.emitExtra(c, leading)
			continue
		}
		onNamed(c)
	}
}
