// Array-initializer expansion — spec.md §4.6.5: a plain array_initializer
// expands one-element-per-line when it doesn't fit or contains a comment;
// an annotation's array-valued argument additionally drops the trailing
// comma that a plain array keeps.
package layout

import (
	"github.com/javalayout/jfmt/cst"
	"github.com/javalayout/jfmt/measure"
)

func (e *Emitter) emitArrayInitializer(n cst.Node) {
	elements := n.NamedChildren()
	if len(elements) == 0 && !hasExtraChildren(n) {
		e.Text("{}")
		return
	}

	annotationValued := n.Parent() != nil &&
		(n.Parent().Kind() == "element_value_pair" || n.Parent().Kind() == "annotation_argument_list")

	width := measure.FlatWidth(e.Ctx.Source, n)
	fits := e.Ctx.EffectiveColumn()+width <= e.Ctx.Config.LineWidth
	forceExpand := hasExtraChildren(n)
	if fits && !forceExpand {
		e.Text("{ ")
		for i, el := range elements {
			if i > 0 {
				e.Text(", ")
			}
			e.EmitExpression(el)
		}
		e.Text(" }")
		return
	}

	e.Text("{")
	e.StartIndent()
	for i, el := range elements {
		e.NewLine()
		e.EmitExpression(el)
		if i < len(elements)-1 || !annotationValued {
			e.Text(",")
		}
	}
	e.FinishIndent()
	e.NewLine()
	e.Text("}")
}
