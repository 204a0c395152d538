// Statement emitters — component E of spec.md §4.5.
package layout

import "github.com/javalayout/jfmt/cst"

// EmitStatement dispatches any statement-kind node to its emitter.
func (e *Emitter) EmitStatement(n cst.Node) {
	switch n.Kind() {
	case "block":
		e.emitBlock(n)
	case "if_statement":
		e.emitIf(n)
	case "for_statement":
		e.emitFor(n)
	case "enhanced_for_statement":
		e.emitEnhancedFor(n)
	case "while_statement":
		e.emitKeywordParenBody(n, "while", 3)
	case "do_statement":
		e.emitDoWhile(n)
	case "switch_statement", "switch_expression":
		e.emitSwitch(n)
	case "try_statement", "try_with_resources_statement":
		e.emitTry(n)
	case "synchronized_statement":
		e.emitKeywordParenBody(n, "synchronized", 3)
	case "assert_statement":
		e.emitAssert(n)
	case "labeled_statement":
		e.emitLabeled(n)
	case "return_statement":
		e.emitReturn(n)
	case "throw_statement":
		e.emitThrow(n)
	case "break_statement":
		e.emitKeywordOptionalIdentifier(n, "break")
	case "continue_statement":
		e.emitKeywordOptionalIdentifier(n, "continue")
	case "yield_statement":
		e.emitYield(n)
	case "local_variable_declaration":
		e.emitLocalVariableDeclaration(n)
	case "expression_statement":
		e.emitExpressionStatement(n)
	case ";":
		e.Text(";")
	default:
		e.EmitExpression(n)
	}
}

func (e *Emitter) emitBlock(n cst.Node) {
	e.Text("{")
	stmts := n.NamedChildren()
	if len(stmts) == 0 && !hasExtraChildren(n) {
		e.Text("}")
		return
	}
	e.StartIndent()
	for _, s := range stmts {
		e.NewLine()
		e.EmitStatement(s)
	}
	e.FinishIndent()
	e.NewLine()
	e.Text("}")
}

// emitKeywordParenBody emits "keyword (expr) body" with no space before
// ')' and no space inside '(', per spec.md §4.5. suffixWidth is the
// trailing-characters allowance (") {") the binary-wrapping decision for
// the condition needs, per spec.md §4.6.1.
func (e *Emitter) emitKeywordParenBody(n cst.Node, keyword string, suffixWidth int) {
	e.Text(keyword)
	e.Space()
	e.Text("(")
	cond := n.ChildByFieldName("condition")
	if cond == nil {
		cond = n.ChildByFieldName("value")
	}
	e.emitWrappableCondition(cond, suffixWidth)
	e.Text(")")
	body := n.ChildByFieldName("body")
	if body != nil {
		e.Space()
		e.EmitStatement(body)
	}
}

func (e *Emitter) emitIf(n cst.Node) {
	e.Text("if")
	e.Space()
	e.Text("(")
	e.emitWrappableCondition(n.ChildByFieldName("condition"), 3)
	e.Text(")")
	e.Space()
	e.EmitStatement(n.ChildByFieldName("consequence"))
	alt := n.ChildByFieldName("alternative")
	if alt == nil {
		return
	}
	e.Space()
	e.Text("else")
	if alt.Kind() == "if_statement" {
		e.Space()
		e.emitIf(alt)
		return
	}
	e.Space()
	e.EmitStatement(alt)
}

func (e *Emitter) emitFor(n cst.Node) {
	e.Text("for")
	e.Space()
	e.Text("(")
	for i, init := range n.ChildrenByFieldName("init") {
		if i > 0 {
			e.Text(", ")
		}
		e.EmitExpression(init)
	}
	e.Text(";")
	if cond := n.ChildByFieldName("condition"); cond != nil {
		e.Space()
		e.emitWrappableCondition(cond, 3)
	}
	e.Text(";")
	updates := n.ChildrenByFieldName("update")
	for i, u := range updates {
		if i == 0 {
			e.Space()
		} else {
			e.Text(", ")
		}
		e.EmitExpression(u)
	}
	e.Text(")")
	e.Space()
	e.EmitStatement(n.ChildByFieldName("body"))
}

func (e *Emitter) emitEnhancedFor(n cst.Node) {
	e.Text("for")
	e.Space()
	e.Text("(")
	if ty := n.ChildByFieldName("type"); ty != nil {
		e.Token(ty)
		e.Space()
	}
	e.Token(n.ChildByFieldName("name"))
	e.Space()
	e.Text(":")
	e.Space()
	e.EmitExpression(n.ChildByFieldName("value"))
	e.Text(")")
	e.Space()
	e.EmitStatement(n.ChildByFieldName("body"))
}

func (e *Emitter) emitDoWhile(n cst.Node) {
	e.Text("do")
	e.Space()
	e.EmitStatement(n.ChildByFieldName("body"))
	e.Space()
	e.Text("while")
	e.Space()
	e.Text("(")
	e.emitWrappableCondition(n.ChildByFieldName("condition"), 5) // ") ;"-ish allowance
	e.Text(");")
}

// emitSwitch handles both classic block-statement groups and arrow-rules,
// per spec.md §4.5: single-block case bodies stay on the same line as the
// colon, multi-statement bodies are indented and newline-separated.
func (e *Emitter) emitSwitch(n cst.Node) {
	e.Text("switch")
	e.Space()
	e.Text("(")
	e.EmitExpression(n.ChildByFieldName("condition"))
	e.Text(")")
	e.Space()
	e.Text("{")
	body := n.ChildByFieldName("body")
	if body == nil {
		e.Text("}")
		return
	}
	groups := body.NamedChildren()
	e.StartIndent()
	for _, g := range groups {
		e.NewLine()
		e.emitSwitchGroup(g)
	}
	e.FinishIndent()
	e.NewLine()
	e.Text("}")
}

func (e *Emitter) emitSwitchGroup(g cst.Node) {
	switch g.Kind() {
	case "switch_rule":
		e.emitSwitchLabel(g)
		e.Text(" ->")
		e.Space()
		body := g.ChildByFieldName("body")
		if body != nil {
			if body.Kind() == "block" || body.Kind() == "throw_statement" || body.Kind() == "expression_statement" {
				e.EmitStatement(body)
			} else {
				e.EmitExpression(body)
				e.Text(";")
			}
		}
	case "switch_block_statement_group":
		e.emitSwitchLabel(g)
		stmts := g.NamedChildren()
		// skip the label nodes already emitted by emitSwitchLabel: they are
		// "switch_label" children; the remainder are statements.
		var body []cst.Node
		for _, c := range stmts {
			if c.Kind() != "switch_label" {
				body = append(body, c)
			}
		}
		if len(body) == 1 {
			e.Space()
			e.EmitStatement(body[0])
			return
		}
		e.StartIndent()
		for _, s := range body {
			e.NewLine()
			e.EmitStatement(s)
		}
		e.FinishIndent()
	default:
		e.EmitStatement(g)
	}
}

func (e *Emitter) emitSwitchLabel(g cst.Node) {
	for _, c := range g.NamedChildren() {
		if c.Kind() == "switch_label" {
			e.Token(c)
			e.Text(":")
			return
		}
	}
}

// emitTry chains try/catch/finally on the same line, with
// "catch (Type | Type name)" using " | " around alternatives, per
// spec.md §4.5.
func (e *Emitter) emitTry(n cst.Node) {
	e.Text("try")
	if n.Kind() == "try_with_resources_statement" {
		e.Space()
		e.Text("(")
		if res := n.ChildByFieldName("resources"); res != nil {
			e.EmitExpression(res)
		}
		e.Text(")")
	}
	e.Space()
	e.EmitStatement(n.ChildByFieldName("body"))
	for _, c := range n.NamedChildren() {
		switch c.Kind() {
		case "catch_clause":
			e.Space()
			e.emitCatchClause(c)
		case "finally_clause":
			e.Space()
			e.Text("finally")
			e.Space()
			if block := c.ChildByFieldName("body"); block != nil {
				e.EmitStatement(block)
			}
		}
	}
}

func (e *Emitter) emitCatchClause(c cst.Node) {
	e.Text("catch")
	e.Space()
	e.Text("(")
	param := c.ChildByFieldName("parameter")
	if param != nil {
		alts := catchAlternatives(param)
		for i, t := range alts {
			if i > 0 {
				e.Text(" | ")
			}
			e.Token(t)
		}
		e.Space()
		e.Token(param.ChildByFieldName("name"))
	}
	e.Text(")")
	e.Space()
	e.EmitStatement(c.ChildByFieldName("body"))
}

func catchAlternatives(param cst.Node) []cst.Node {
	ty := param.ChildByFieldName("type")
	if ty == nil {
		return nil
	}
	if ty.Kind() == "catch_type" {
		return ty.NamedChildren()
	}
	return []cst.Node{ty}
}

func (e *Emitter) emitAssert(n cst.Node) {
	e.Text("assert")
	e.Space()
	children := n.NamedChildren()
	if len(children) > 0 {
		e.EmitExpression(children[0])
	}
	if len(children) > 1 {
		e.Text(" : ")
		e.EmitExpression(children[1])
	}
	e.Text(";")
}

func (e *Emitter) emitLabeled(n cst.Node) {
	e.Token(n.ChildByFieldName("label"))
	e.Text(": ")
	if body := n.NamedChildren(); len(body) > 1 {
		e.EmitStatement(body[len(body)-1])
	}
}

func (e *Emitter) emitReturn(n cst.Node) {
	e.Text("return")
	e.Ctx.PushParent("return_statement")
	defer e.Ctx.PopParent()
	if v := returnValue(n); v != nil {
		e.Space()
		e.emitAssignmentLikeRHS(v)
	}
	e.Text(";")
}

func returnValue(n cst.Node) cst.Node {
	children := n.NamedChildren()
	if len(children) == 0 {
		return nil
	}
	return children[0]
}

func (e *Emitter) emitThrow(n cst.Node) {
	e.Text("throw")
	e.Ctx.PushParent("throw_statement")
	defer e.Ctx.PopParent()
	children := n.NamedChildren()
	if len(children) > 0 {
		e.Space()
		e.emitAssignmentLikeRHS(children[0])
	}
	e.Text(";")
}

func (e *Emitter) emitKeywordOptionalIdentifier(n cst.Node, keyword string) {
	e.Text(keyword)
	for _, c := range n.NamedChildren() {
		if c.Kind() == "identifier" {
			e.Space()
			e.Token(c)
		}
	}
	e.Text(";")
}

func (e *Emitter) emitYield(n cst.Node) {
	e.Text("yield")
	children := n.NamedChildren()
	if len(children) > 0 {
		e.Space()
		e.EmitExpression(children[0])
	}
	e.Text(";")
}

func (e *Emitter) emitLocalVariableDeclaration(n cst.Node) {
	e.emitModifiers(n.ChildByFieldName("modifiers"))
	first := true
	for _, c := range n.NamedChildren() {
		switch c.Kind() {
		case "modifiers":
		case "variable_declarator":
			if !first {
				e.Text(", ")
			}
			e.emitVariableDeclarator(c)
			first = false
		default:
			e.Token(c)
			e.Space()
		}
	}
	e.Text(";")
}

func (e *Emitter) emitExpressionStatement(n cst.Node) {
	children := n.NamedChildren()
	if len(children) > 0 {
		e.EmitExpression(children[0])
	}
	e.Text(";")
}
