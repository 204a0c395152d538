// Expression emitters — component F of spec.md §4.6, the measurement-driven
// wrapping rules for chains, binary operators, ternaries, assignments, and
// annotation arrays, plus everything else that isn't a statement or
// declaration.
package layout

import "github.com/javalayout/jfmt/cst"

// EmitExpression dispatches any expression-kind node to its emitter. Kinds
// with no wrapping rule of their own fall through to a generic
// token-and-recurse walk via WalkExtras, which is enough to reproduce their
// source structure with normalized whitespace.
func (e *Emitter) EmitExpression(n cst.Node) {
	if n == nil {
		return
	}
	switch n.Kind() {
	case "binary_expression":
		e.EmitBinary(n)
	case "ternary_expression":
		e.emitTernary(n)
	case "method_invocation":
		e.EmitMethodInvocation(n)
	case "argument_list":
		e.emitArgumentList(n)
	case "array_initializer":
		e.emitArrayInitializer(n)
	case "assignment_expression":
		e.emitAssignmentExpression(n)
	case "lambda_expression":
		e.emitLambda(n)
	case "cast_expression":
		e.emitCast(n)
	case "parenthesized_expression":
		e.emitParenthesized(n)
	case "object_creation_expression":
		e.emitObjectCreation(n)
	case "array_creation_expression":
		e.emitArrayCreation(n)
	case "field_access":
		e.emitFieldAccess(n)
	case "method_reference":
		e.emitMethodReference(n)
	case "instanceof_expression":
		e.emitInstanceof(n)
	case "unary_expression", "update_expression":
		e.emitUnary(n)
	case "class_declaration", "interface_declaration", "enum_declaration",
		"record_declaration", "annotation_type_declaration", "annotation",
		"marker_annotation", "method_declaration", "constructor_declaration",
		"field_declaration", "static_initializer", "annotation_type_element_declaration":
		e.EmitDeclaration(n)
	case "identifier", "this", "super", "type_identifier", "integer_literal",
		"decimal_floating_point_literal", "hex_integer_literal", "octal_integer_literal",
		"binary_integer_literal", "string_literal", "character_literal",
		"true", "false", "null_literal", "void_type", "scoped_type_identifier",
		"generic_type", "array_type", "boolean_type", "integral_type", "floating_point_type":
		e.Token(n)
	default:
		e.emitGeneric(n)
	}
}

// emitGeneric recurses through n's children verbatim-tokenized, with a space
// between consecutive non-punctuation tokens; the fallback for expression
// kinds (index/array access, wildcard bounds, dimensions, ...) that carry no
// wrapping rule of their own in spec.md §4.6.
func (e *Emitter) emitGeneric(n cst.Node) {
	children := n.Children()
	if len(children) == 0 {
		e.Token(n)
		return
	}
	prevNonPunct := false
	e.WalkExtras(n, func(c cst.Node) {
		if isPunct(c) {
			e.Token(c)
			prevNonPunct = false
			return
		}
		if prevNonPunct {
			e.Space()
		}
		e.EmitExpression(c)
		prevNonPunct = true
	})
}

func isPunct(n cst.Node) bool {
	switch n.Kind() {
	case "[", "]", "(", ")", "{", "}", ".", ",", ";", ":", "?", "::":
		return true
	default:
		return false
	}
}

func (e *Emitter) emitArgumentList(n cst.Node) {
	e.Text("(")
	args := n.NamedChildren()
	for i, a := range args {
		if i > 0 {
			e.Text(", ")
		}
		e.EmitExpression(a)
	}
	e.Text(")")
}

func (e *Emitter) emitCast(n cst.Node) {
	e.Text("(")
	e.EmitExpression(n.ChildByFieldName("type"))
	e.Text(")")
	e.EmitExpression(n.ChildByFieldName("value"))
}

func (e *Emitter) emitParenthesized(n cst.Node) {
	e.Text("(")
	children := n.NamedChildren()
	if len(children) > 0 {
		e.EmitExpression(children[0])
	}
	e.Text(")")
}

func (e *Emitter) emitFieldAccess(n cst.Node) {
	e.EmitExpression(n.ChildByFieldName("object"))
	e.Text(".")
	e.Token(n.ChildByFieldName("field"))
}

func (e *Emitter) emitMethodReference(n cst.Node) {
	children := n.NamedChildren()
	if len(children) > 0 {
		e.EmitExpression(children[0])
	}
	e.Text("::")
	if len(children) > 1 {
		e.Token(children[len(children)-1])
	}
}

func (e *Emitter) emitInstanceof(n cst.Node) {
	e.EmitExpression(n.ChildByFieldName("left"))
	e.Space()
	e.Text("instanceof")
	e.Space()
	e.EmitExpression(n.ChildByFieldName("right"))
	if name := n.ChildByFieldName("name"); name != nil {
		e.Space()
		e.Token(name)
	}
}

func (e *Emitter) emitUnary(n cst.Node) {
	e.WalkExtras(n, func(c cst.Node) {
		if isPunct(c) {
			e.Token(c)
			return
		}
		e.EmitExpression(c)
	})
}

func (e *Emitter) emitObjectCreation(n cst.Node) {
	e.Text("new")
	e.Space()
	e.WalkExtras(n, func(c cst.Node) {
		switch c.Kind() {
		case "new":
			// already emitted.
		case "argument_list":
			e.emitArgumentList(c)
		case "class_body":
			e.Space()
			e.emitBody(c)
		default:
			e.EmitExpression(c)
		}
	})
}

func (e *Emitter) emitArrayCreation(n cst.Node) {
	e.Text("new")
	e.Space()
	e.WalkExtras(n, func(c cst.Node) {
		switch c.Kind() {
		case "new":
		case "array_initializer":
			e.emitArrayInitializer(c)
		default:
			e.EmitExpression(c)
		}
	})
}

func (e *Emitter) emitLambda(n cst.Node) {
	params := n.ChildByFieldName("parameters")
	if params == nil {
		params = n.ChildByFieldName("parameter")
	}
	if params != nil {
		e.EmitExpression(params)
	}
	e.Space()
	e.Text("->")
	e.Space()
	body := n.ChildByFieldName("body")
	if body == nil {
		return
	}
	if body.Kind() == "block" {
		e.EmitStatement(body)
		return
	}
	e.EmitExpression(body)
}

func (e *Emitter) emitAssignmentExpression(n cst.Node) {
	e.EmitExpression(n.ChildByFieldName("left"))
	e.Space()
	e.Token(n.ChildByFieldName("operator"))
	e.Space()
	e.Ctx.PushParent("assignment_expression")
	defer e.Ctx.PopParent()
	e.emitAssignmentLikeRHS(n.ChildByFieldName("right"))
}
