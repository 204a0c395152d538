// Binary-expression wrapping — spec.md §4.6.1.
package layout

import (
	"github.com/javalayout/jfmt/cst"
	"github.com/javalayout/jfmt/measure"
)

var wrappableOperators = map[string]bool{"&&": true, "||": true, "+": true}

// isWrappable reports whether n (a binary_expression) uses a wrappable
// operator: "&&", "||", or a "+" where at least one operand is a string
// literal or a nested wrappable "+" chain, per spec.md §4.6.1 and the
// "Open question" in §9 about the string-concatenation approximation.
func isWrappable(n cst.Node) bool {
	if n.Kind() != "binary_expression" {
		return false
	}
	op := operatorText(n)
	if op == "&&" || op == "||" {
		return true
	}
	if op != "+" {
		return false
	}
	left, right := n.ChildByFieldName("left"), n.ChildByFieldName("right")
	return isStringConcatOperand(left) || isStringConcatOperand(right)
}

func isStringConcatOperand(n cst.Node) bool {
	if n == nil {
		return false
	}
	if n.Kind() == "string_literal" {
		return true
	}
	if n.Kind() == "binary_expression" && operatorText(n) == "+" {
		return isWrappable(n)
	}
	return false
}

func operatorText(n cst.Node) string {
	if op := n.ChildByFieldName("operator"); op != nil {
		return op.Kind()
	}
	for _, c := range n.Children() {
		if !c.IsNamed() {
			switch c.Kind() {
			case "&&", "||", "+":
				return c.Kind()
			}
		}
	}
	return ""
}

// isOutermostWrappable reports whether n is the outermost wrappable binary
// expression of its operator family: it is not the right child of a
// same-family parent, per spec.md §4.6.1.
func isOutermostWrappable(n cst.Node) bool {
	parent := n.Parent()
	if parent == nil || parent.Kind() != "binary_expression" {
		return true
	}
	if operatorText(parent) != operatorText(n) {
		return true
	}
	return parent.ChildByFieldName("right") != n
}

// flattenChain flattens a left-associative nest of same-family wrappable
// binary expressions into operands and the operators between them.
func flattenChain(n cst.Node) (operands []cst.Node, operators []string) {
	var walk func(cst.Node)
	walk = func(cur cst.Node) {
		left := cur.ChildByFieldName("left")
		if left != nil && left.Kind() == "binary_expression" && operatorText(left) == operatorText(cur) {
			walk(left)
		} else {
			operands = append(operands, left)
		}
		operators = append(operators, operatorText(cur))
		operands = append(operands, cur.ChildByFieldName("right"))
	}
	walk(n)
	return operands, operators
}

// EmitBinary emits a binary_expression, wrapping it per spec.md §4.6.1 when
// it is the outermost node of a wrappable chain and doesn't fit.
func (e *Emitter) EmitBinary(n cst.Node) {
	e.emitBinaryWithSuffix(n, 0)
}

// emitWrappableCondition emits the condition expression of an if/while/for/
// do/synchronized statement, passing suffixWidth through to the wrap
// decision so the trailing ") {" (or ");") is accounted for.
func (e *Emitter) emitWrappableCondition(n cst.Node, suffixWidth int) {
	if n == nil {
		return
	}
	if n.Kind() == "binary_expression" && isWrappable(n) && isOutermostWrappable(n) {
		e.emitBinaryWithSuffix(n, suffixWidth)
		return
	}
	e.EmitExpression(n)
}

func (e *Emitter) emitBinaryWithSuffix(n cst.Node, suffixWidth int) {
	if n.Kind() != "binary_expression" || !isWrappable(n) || !isOutermostWrappable(n) {
		e.emitBinaryFlat(n)
		return
	}
	operands, operators := flattenChain(n)
	width := measure.FlatWidth(e.Ctx.Source, n)
	if e.Ctx.EffectiveColumn()+width+suffixWidth <= e.Ctx.Config.LineWidth {
		e.emitOperandFlat(operands[0])
		for i, op := range operators {
			e.Space()
			e.Text(op)
			e.Space()
			e.emitOperandFlat(operands[i+1])
		}
		return
	}
	e.emitOperandFlat(operands[0])
	e.DoubleIndent()
	for i, op := range operators {
		e.NewLine()
		e.Text(op)
		e.Space()
		e.emitOperandFlat(operands[i+1])
	}
	e.FinishDoubleIndent()
}

func (e *Emitter) emitOperandFlat(n cst.Node) {
	if n == nil {
		return
	}
	e.EmitExpression(n)
}

// emitBinaryFlat emits a non-wrappable (or non-outermost) binary expression
// with no wrapping consideration: "left op right".
func (e *Emitter) emitBinaryFlat(n cst.Node) {
	left := n.ChildByFieldName("left")
	right := n.ChildByFieldName("right")
	e.EmitExpression(left)
	e.Space()
	e.Text(operatorText(n))
	e.Space()
	e.EmitExpression(right)
}
