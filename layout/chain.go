// Method-invocation chain wrapping — spec.md §4.6.2, the palantir-java-
// format-style algorithm.
package layout

import (
	"unicode"

	"github.com/javalayout/jfmt/cst"
	"github.com/javalayout/jfmt/measure"
)

// chainSegment is one ".name(args)" hop in a flattened method-invocation
// chain.
type chainSegment struct {
	node          cst.Node // the method_invocation node for this hop
	name          cst.Node
	typeArguments cst.Node
	arguments     cst.Node
}

// flattenInvocationChain walks n's "object" field while it remains a
// method_invocation (measure.ChainDepth's traversal) and returns the root
// object plus the ordered segments from outermost-object to n itself.
func flattenInvocationChain(n cst.Node) (root cst.Node, segments []chainSegment) {
	var nodes []cst.Node
	cur := n
	for {
		nodes = append(nodes, cur)
		obj := cur.ChildByFieldName("object")
		if obj != nil && obj.Kind() == "method_invocation" {
			cur = obj
			continue
		}
		root = obj
		break
	}
	// nodes starts at n (the outermost invocation); reverse so segments reads
	// root-to-tip.
	for i := len(nodes) - 1; i >= 0; i-- {
		m := nodes[i]
		segments = append(segments, chainSegment{
			node:          m,
			name:          m.ChildByFieldName("name"),
			typeArguments: m.ChildByFieldName("type_arguments"),
			arguments:     m.ChildByFieldName("arguments"),
		})
	}
	return root, segments
}

// EmitMethodInvocation emits a method_invocation, applying chain wrapping
// (spec.md §4.6.2) when the node is the outermost invocation of its chain
// (i.e. not itself the "object" of an enclosing method_invocation).
func (e *Emitter) EmitMethodInvocation(n cst.Node) {
	if parent := n.Parent(); parent != nil && parent.Kind() == "method_invocation" &&
		parent.ChildByFieldName("object") == n {
		// An inner link of a chain being emitted by its outer caller's own
		// traversal; emitted via emitSegment instead, never directly.
		e.emitSegment(chainSegment{node: n, name: n.ChildByFieldName("name"),
			typeArguments: n.ChildByFieldName("type_arguments"), arguments: n.ChildByFieldName("arguments")})
		return
	}

	root, segments := flattenInvocationChain(n)

	// The effective threshold is line_width for a single-segment chain (the
	// "single-call optimization" of spec.md §4.6.2/§8) and
	// method_chain_threshold otherwise; both cases still go through
	// decideChainWrap, so an extreme single segment can still wrap at
	// line_width even though it never hits the (lower) chain threshold.
	prefixWidth := e.chainPrefixWidth(n)
	threshold := e.Ctx.Config.LineWidth
	if len(segments) > 1 {
		threshold = e.Ctx.Config.MethodChainThreshold
	}

	// A nil root means the first segment is a bare, receiver-less call
	// ("foo()") — the grammar omits both the object and the '.' token in
	// that case, so the first segment never gets a leading dot.
	hasRoot := root != nil

	shouldWrap, prefixCount := e.decideChainWrap(root, segments, prefixWidth, threshold)
	if !shouldWrap {
		e.emitRootText(root)
		for i, seg := range segments {
			if i > 0 || hasRoot {
				e.Text(".")
			}
			e.emitSegment(seg)
		}
		return
	}

	e.emitRootText(root)
	for i := 0; i < prefixCount; i++ {
		if i > 0 || hasRoot {
			e.Text(".")
		}
		e.emitSegment(segments[i])
	}
	e.DoubleIndent()
	for i := prefixCount; i < len(segments); i++ {
		seg := segments[i]
		suppressNewLine := i > prefixCount && segmentHasTrailingLineComment(segments[i-1])
		if !suppressNewLine {
			e.NewLine()
		}
		if i > 0 || hasRoot {
			e.Text(".")
		}
		e.emitSegment(seg)
	}
	e.FinishDoubleIndent()
}

func (e *Emitter) emitRootText(root cst.Node) {
	if root == nil {
		return
	}
	e.EmitExpression(root)
}

func (e *Emitter) emitSegment(seg chainSegment) {
	e.Token(seg.name)
	if seg.typeArguments != nil {
		e.EmitExpression(seg.typeArguments)
	}
	if seg.arguments != nil {
		e.emitArgumentList(seg.arguments)
	} else {
		e.Text("()")
	}
}

func segmentHasTrailingLineComment(seg chainSegment) bool {
	if seg.node == nil {
		return false
	}
	next := seg.node.NextSibling()
	return next != nil && next.IsExtra() && next.Kind() == "line_comment" && measure.IsTrailingComment(next)
}

// chainPrefixWidth computes the on-line prefix width per spec.md §4.1's
// table, using measure.ChainPrefixWidth with the widths measure. When a
// wrap-at-equals (spec.md §4.6.3) has already broken the line after "lhs =",
// the LHS/return/throw prefix is no longer on the chain's own line — the
// assignment-wrapped flag tells us not to double-count it.
func (e *Emitter) chainPrefixWidth(n cst.Node) int {
	if e.Ctx.IsAssignmentWrapped() {
		return 0
	}
	parent := n.Parent()
	if parent == nil {
		return 0
	}
	pc := measure.PrefixContext{ParentKind: parent.Kind()}
	switch parent.Kind() {
	case "assignment_expression":
		pc.LHSWidth = measure.FlatWidth(e.Ctx.Source, parent.ChildByFieldName("left"))
	case "variable_declarator":
		decl := parent.Parent()
		typeWidth := 0
		if decl != nil {
			typeWidth = measure.FlatWidth(e.Ctx.Source, decl.ChildByFieldName("type"))
		}
		pc.TypeWidth = typeWidth
		pc.NameWidth = measure.FlatWidth(e.Ctx.Source, parent.ChildByFieldName("name"))
	case "return_statement", "throw_statement":
		// Fixed keyword width, supplied by measure.ChainPrefixWidth.
	case "argument_list":
		if call := parent.Parent(); call != nil && call.Kind() == "method_invocation" &&
			call.Parent() != nil && call.Parent().Kind() == "method_invocation" {
			pc.NameWidth = measure.FlatWidth(e.Ctx.Source, call.ChildByFieldName("name"))
		} else {
			return 0
		}
	default:
		return 0
	}
	return measure.ChainPrefixWidth(pc)
}

// decideChainWrap implements spec.md §4.6.2's "should wrap" decision and
// prefix-count rule.
func (e *Emitter) decideChainWrap(root cst.Node, segments []chainSegment, prefixWidth, threshold int) (wrap bool, prefixCount int) {
	col := e.Ctx.EffectiveColumn() + prefixWidth + measure.FlatWidth(e.Ctx.Source, root)
	chainWidth := measure.FlatWidth(e.Ctx.Source, root)
	for i, seg := range segments {
		col++ // the '.'
		col += measure.FlatWidth(e.Ctx.Source, seg.name)
		if seg.typeArguments != nil {
			col += measure.FlatWidth(e.Ctx.Source, seg.typeArguments)
		}
		argWidth := 2
		if seg.arguments != nil {
			argWidth = measure.ArgumentListChainWidth(e.Ctx.Source, seg.arguments)
		}
		col += argWidth
		chainWidth += 1 + measure.FlatWidth(e.Ctx.Source, seg.name) + argWidth
		if i == 0 {
			continue
		}
		if col > threshold {
			wrap = true
		}
	}
	if e.Ctx.EffectiveColumn()+prefixWidth+chainWidth >= e.Ctx.Config.LineWidth {
		wrap = true
	}
	if !wrap {
		return false, 0
	}
	return true, e.prefixCount(root, segments)
}

func (e *Emitter) prefixCount(root cst.Node, segments []chainSegment) int {
	count := 0
	switch {
	case root != nil && lastComponentIsUpper(e.Ctx.Source, root):
		count = 1
	case root != nil && root.Kind() == "method_invocation":
		count = 0
	case root != nil && len(cst.Text(e.Ctx.Source, root)) <= 8:
		count = 1
	default:
		count = 0
	}
	return e.extendPrefixForStream(segments, count)
}

// extendPrefixForStream extends count to cover consecutive zero-arg
// segments up to and including a "stream"/"parallelStream" segment, per
// spec.md §4.6.2. The segment name is a grammar identifier node, so its
// spelling has to be read from source text, not its Kind() (which is
// always "identifier").
func (e *Emitter) extendPrefixForStream(segments []chainSegment, count int) int {
	streamIdx := -1
	for i := 0; i < len(segments); i++ {
		seg := segments[i]
		if !isZeroArg(seg) {
			break
		}
		name := e.segmentName(seg)
		if name == "stream" || name == "parallelStream" {
			streamIdx = i
			break
		}
	}
	if streamIdx >= 0 && streamIdx+1 > count {
		return streamIdx + 1
	}
	return count
}

func (e *Emitter) segmentName(seg chainSegment) string {
	if seg.name == nil {
		return ""
	}
	return string(cst.Text(e.Ctx.Source, seg.name))
}

func isZeroArg(seg chainSegment) bool {
	if seg.arguments == nil {
		return true
	}
	return len(seg.arguments.NamedChildren()) == 0
}

func lastComponentIsUpper(source []byte, root cst.Node) bool {
	text := string(cst.Text(source, root))
	last := text
	for i := len(text) - 1; i >= 0; i-- {
		if text[i] == '.' {
			last = text[i+1:]
			break
		}
	}
	for _, r := range last {
		return unicode.IsUpper(r)
	}
	return false
}
