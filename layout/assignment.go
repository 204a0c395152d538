// "Wrap at equals" assignment/declarator/return/throw RHS wrapping —
// spec.md §4.6.3.
package layout

import (
	"github.com/javalayout/jfmt/cst"
	"github.com/javalayout/jfmt/measure"
)

// emitAssignmentLikeRHS emits value, the right-hand side of an assignment
// expression, variable_declarator, return_statement, or throw_statement.
// When value is a method-invocation chain of depth >= 1 that doesn't fit on
// the current line but would fit indented two levels on its own line, the
// emitter breaks immediately after the already-emitted "lhs =" (or
// "return"/"throw") and indents the RHS, per spec.md §4.6.3.
func (e *Emitter) emitAssignmentLikeRHS(value cst.Node) {
	if value == nil {
		return
	}
	if value.Kind() != "method_invocation" || measure.ChainDepth(value) < 1 {
		e.EmitExpression(value)
		return
	}

	width := measure.FlatWidth(e.Ctx.Source, value)
	prefixWidth := e.chainPrefixWidth(value)
	col := e.Ctx.EffectiveColumn()
	if col+prefixWidth+width <= e.Ctx.Config.LineWidth {
		e.EmitExpression(value)
		return
	}

	indentedCol := col + 2*e.Ctx.Config.IndentWidth
	if indentedCol+width > e.Ctx.Config.LineWidth {
		// Doesn't fit even wrapped; let the chain's own wrapping decide,
		// emitted flush after the unbroken "lhs =".
		e.EmitExpression(value)
		return
	}

	e.Ctx.SetAssignmentWrapped(true)
	e.DoubleIndent()
	e.NewLine()
	e.EmitExpression(value)
	e.FinishDoubleIndent()
	e.Ctx.SetAssignmentWrapped(false)
}
