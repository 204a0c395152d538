// Ternary-expression wrapping — spec.md §4.6.4.
package layout

import (
	"github.com/javalayout/jfmt/cst"
	"github.com/javalayout/jfmt/measure"
)

// emitTernary emits a ternary_expression, breaking before '?' and ':' at a
// double-indent continuation when the flat form doesn't fit the line, per
// spec.md §4.6.4.
func (e *Emitter) emitTernary(n cst.Node) {
	cond := n.ChildByFieldName("condition")
	cons := n.ChildByFieldName("consequence")
	alt := n.ChildByFieldName("alternative")

	width := measure.FlatWidth(e.Ctx.Source, n)
	if e.Ctx.EffectiveColumn()+width <= e.Ctx.Config.LineWidth {
		e.EmitExpression(cond)
		e.Text(" ? ")
		e.EmitExpression(cons)
		e.Text(" : ")
		e.EmitExpression(alt)
		return
	}

	e.EmitExpression(cond)
	e.DoubleIndent()
	e.NewLine()
	e.Text("? ")
	e.EmitExpression(cons)
	e.NewLine()
	e.Text(": ")
	e.EmitExpression(alt)
	e.FinishDoubleIndent()
}
