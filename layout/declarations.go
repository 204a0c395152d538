// Declaration emitters — component D of spec.md §4.4.
package layout

import "github.com/javalayout/jfmt/cst"

// EmitCompilationUnit emits a whole parsed file: package declaration,
// imports, then top-level type declarations, each separated per the
// body-with-members blank-line policy.
func (e *Emitter) EmitCompilationUnit(n cst.Node) {
	e.emitMembersFrom(n.NamedChildren(), false)
}

// EmitDeclaration dispatches any declaration-kind node to its emitter. It
// is also the entry point statements.go and expressions.go call back into
// for a nested declaration (e.g. a local class).
func (e *Emitter) EmitDeclaration(n cst.Node) {
	switch n.Kind() {
	case "package_declaration":
		e.emitPackageDeclaration(n)
	case "import_declaration":
		e.emitImportDeclaration(n)
	case "class_declaration", "interface_declaration", "enum_declaration",
		"record_declaration", "annotation_type_declaration":
		e.emitTypeDeclaration(n)
	case "method_declaration", "constructor_declaration":
		e.emitMethodLike(n)
	case "annotation_type_element_declaration":
		e.emitAnnotationElement(n)
	case "field_declaration":
		e.emitFieldDeclaration(n)
	case "static_initializer":
		e.emitStaticInitializer(n)
	case "annotation", "marker_annotation":
		e.emitAnnotation(n)
	default:
		e.EmitStatement(n)
	}
}

func (e *Emitter) emitPackageDeclaration(n cst.Node) {
	e.WalkExtras(n, func(c cst.Node) {
		switch c.Kind() {
		case "scoped_identifier", "identifier":
			e.Token(c)
		default:
			e.Token(c)
		}
	})
	e.NewLine()
}

func (e *Emitter) emitImportDeclaration(n cst.Node) {
	e.WalkExtras(n, func(c cst.Node) {
		switch c.Kind() {
		case "asterisk":
			e.Text(".*")
		default:
			e.Token(c)
			if c.Kind() != "import" && c.Kind() != "static" {
				return
			}
			e.Space()
		}
	})
	e.NewLine()
}

// emitTypeDeclaration emits a class/interface/enum/record/annotation-type
// declaration: modifiers, keyword, name, type-parameters,
// superclass/extends/implements, body, per spec.md §4.4.
func (e *Emitter) emitTypeDeclaration(n cst.Node) {
	e.emitModifiers(n.ChildByFieldName("modifiers"))
	e.WalkExtras(n, func(c cst.Node) {
		switch c.Kind() {
		case "modifiers":
			// already emitted above.
		case "class_body", "interface_body", "enum_body", "annotation_type_body":
			// The preceding token (name, or the last extends/implements
			// token) already appended its own trailing space via default.
			e.emitBody(c)
		default:
			e.Token(c)
			e.Space()
		}
	})
}

// emitModifiers emits a modifiers node: each annotation on its own line
// followed by NewLine, then keyword modifiers on one line separated by
// single spaces, per spec.md §4.4.
func (e *Emitter) emitModifiers(n cst.Node) {
	if n == nil {
		return
	}
	var keywords []cst.Node
	e.WalkExtras(n, func(c cst.Node) {
		if c.Kind() == "marker_annotation" || c.Kind() == "annotation" {
			e.emitAnnotation(c)
			e.NewLine()
			return
		}
		keywords = append(keywords, c)
	})
	for _, k := range keywords {
		e.Token(k)
		e.Space()
	}
}

// emitBody emits a "{ members }" body with the blank-line policy of
// spec.md §4.4: a blank line before/after every multiline member, exactly
// one blank line between adjacent multiline members, trailing comments
// stay on the same line, leading/standalone comments get their own line,
// and a comment block preceded by a multiline member gets a blank line
// first.
func (e *Emitter) emitBody(n cst.Node) {
	e.Text("{")
	members := n.NamedChildren()
	if n.Kind() == "enum_body" {
		e.emitEnumBody(n)
		return
	}
	if len(members) == 0 && !hasExtraChildren(n) {
		e.Text("}")
		return
	}
	e.StartIndent()
	e.emitMembers(members)
	e.FinishIndent()
	e.NewLine()
	e.Text("}")
}

func hasExtraChildren(n cst.Node) bool {
	for _, c := range n.Children() {
		if c.IsExtra() {
			return true
		}
	}
	return false
}

// emitMembers emits each member with the blank-line policy described on
// emitBody, used for a type body: the body's own "{" already ended the
// line, so the first member still gets a leading newline to separate it.
func (e *Emitter) emitMembers(members []cst.Node) {
	e.emitMembersFrom(members, true)
}

// emitMembersFrom is emitMembers generalized over whether the first member
// gets a leading newline: true for a type body (following "{"), false for a
// whole compilation unit (nothing precedes the first top-level
// declaration).
func (e *Emitter) emitMembersFrom(members []cst.Node, leadingNewLine bool) {
	prevWasMultiline := false
	for i, m := range members {
		multiline := isMultilineMember(m)
		if i > 0 {
			e.NewLine()
			if multiline || prevWasMultiline {
				e.NewLine()
			}
		} else if leadingNewLine {
			e.NewLine()
		}
		e.EmitDeclaration(m)
		prevWasMultiline = multiline
	}
}

// isMultilineMember reports whether m is one of the member kinds spec.md
// §4.4 treats as "multiline" for blank-line purposes: methods,
// constructors, nested types, static initializers, and raw blocks.
func isMultilineMember(m cst.Node) bool {
	switch m.Kind() {
	case "method_declaration", "constructor_declaration",
		"class_declaration", "interface_declaration", "enum_declaration",
		"record_declaration", "annotation_type_declaration",
		"static_initializer", "block":
		return true
	default:
		return false
	}
}

// emitEnumBody emits constants first (comma-separated with newlines
// between), terminates the constant list with ';', then emits any
// remaining members with the usual blank-line policy, per spec.md §4.4.
func (e *Emitter) emitEnumBody(n cst.Node) {
	var constants []cst.Node
	var rest []cst.Node
	for _, c := range n.NamedChildren() {
		if c.Kind() == "enum_constant" {
			constants = append(constants, c)
		} else {
			rest = append(rest, c)
		}
	}
	if len(constants) == 0 && len(rest) == 0 {
		e.Text("}")
		return
	}
	e.StartIndent()
	for i, c := range constants {
		e.NewLine()
		e.emitEnumConstant(c)
		if i < len(constants)-1 {
			e.Text(",")
		}
	}
	e.Text(";")
	if len(rest) > 0 {
		e.NewLine()
		e.emitMembers(rest)
	}
	e.FinishIndent()
	e.NewLine()
	e.Text("}")
}

func (e *Emitter) emitEnumConstant(n cst.Node) {
	e.emitModifiers(n.ChildByFieldName("modifiers"))
	e.WalkExtras(n, func(c cst.Node) {
		switch c.Kind() {
		case "modifiers":
		case "argument_list":
			e.EmitExpression(c)
		case "class_body":
			e.Space()
			e.emitBody(c)
		default:
			e.Token(c)
		}
	})
}

// emitMethodLike emits a method or constructor: modifiers, type-parameters,
// return type, name, formal parameters, throws, body-or-';', per spec.md
// §4.4.
func (e *Emitter) emitMethodLike(n cst.Node) {
	e.emitModifiers(n.ChildByFieldName("modifiers"))
	nameNode := n.ChildByFieldName("name")
	e.WalkExtras(n, func(c cst.Node) {
		switch {
		case c.Kind() == "modifiers":
		case c.Kind() == "block":
			e.Space()
			e.EmitStatement(c)
		case c.Kind() == ";":
			e.Text(";")
		case c.Kind() == "formal_parameters":
			e.emitFormalParameters(c)
		case c == nameNode:
			// No space before the parameter list's '('.
			e.Token(c)
		default:
			e.Token(c)
			e.Space()
		}
	})
}

func (e *Emitter) emitFormalParameters(n cst.Node) {
	e.Text("(")
	params := n.NamedChildren()
	for i, p := range params {
		if i > 0 {
			e.Text(", ")
		}
		e.emitFormalParameter(p)
	}
	e.Text(")")
}

func (e *Emitter) emitFormalParameter(n cst.Node) {
	e.WalkExtras(n, func(c cst.Node) {
		switch c.Kind() {
		case "identifier":
			e.Token(c)
		default:
			e.Token(c)
			e.Space()
		}
	})
}

// emitAnnotation emits a marker_annotation ("@Name") or annotation
// ("@Name(args)") node. It is a terminal emitter: an annotation's value can
// itself be a nested annotation (element_value_pair's "value" field), and
// without a dedicated case here that reaches EmitExpression, which would
// otherwise bounce through EmitDeclaration's and EmitStatement's default
// cases back into EmitExpression forever.
func (e *Emitter) emitAnnotation(n cst.Node) {
	e.Text("@")
	e.Token(n.ChildByFieldName("name"))
	if args := n.ChildByFieldName("arguments"); args != nil {
		e.emitAnnotationArguments(args)
	}
}

// emitAnnotationArguments emits an annotation_argument_list: either a single
// bare element_value ("@Foo(1)") or comma-separated element_value_pairs
// ("@Foo(a = 1, b = 2)").
func (e *Emitter) emitAnnotationArguments(n cst.Node) {
	e.Text("(")
	values := n.NamedChildren()
	for i, v := range values {
		if i > 0 {
			e.Text(", ")
		}
		e.emitElementValue(v)
	}
	e.Text(")")
}

// emitElementValue emits one annotation_argument_list element: an
// element_value_pair ("key = value") or a bare element_value (expression,
// array initializer, or nested annotation).
func (e *Emitter) emitElementValue(n cst.Node) {
	if n.Kind() != "element_value_pair" {
		e.EmitExpression(n)
		return
	}
	e.Token(n.ChildByFieldName("key"))
	e.Text(" = ")
	e.EmitExpression(n.ChildByFieldName("value"))
}

// emitAnnotationElement emits an annotation-type element declaration
// («int bar() default 0;»), per original_source/'s
// src/generation/declarations.rs (SPEC_FULL.md SUPPLEMENTED FEATURES):
// no body, an optional "default" clause.
func (e *Emitter) emitAnnotationElement(n cst.Node) {
	e.emitModifiers(n.ChildByFieldName("modifiers"))
	nameNode := n.ChildByFieldName("name")
	valueNode := n.ChildByFieldName("value")
	e.WalkExtras(n, func(c cst.Node) {
		switch {
		case c.Kind() == "modifiers":
		case c.Kind() == "default":
			e.Space()
			e.Token(c)
			e.Space()
		case c.Kind() == ";":
			e.Text(";")
		case c == nameNode:
			e.Token(c)
		case c == valueNode:
			e.EmitExpression(c)
		case isPunct(c):
			e.Token(c)
		default:
			e.Token(c)
			e.Space()
		}
	})
}

// emitFieldDeclaration emits modifiers, type, one or more comma-separated
// variable_declarators, ';', per spec.md §4.4.
func (e *Emitter) emitFieldDeclaration(n cst.Node) {
	e.emitModifiers(n.ChildByFieldName("modifiers"))
	declarators := 0
	e.WalkExtras(n, func(c cst.Node) {
		switch c.Kind() {
		case "modifiers":
		case "variable_declarator":
			if declarators > 0 {
				e.Text(", ")
			}
			e.emitVariableDeclarator(c)
			declarators++
		case ";":
			e.Text(";")
		default:
			e.Token(c)
			e.Space()
		}
	})
}

// emitVariableDeclarator emits "name [= value]".
func (e *Emitter) emitVariableDeclarator(n cst.Node) {
	e.Ctx.PushParent("variable_declarator")
	defer e.Ctx.PopParent()
	name := n.ChildByFieldName("name")
	value := n.ChildByFieldName("value")
	e.Token(name)
	if value != nil {
		e.Text(" = ")
		e.emitAssignmentLikeRHS(value)
	}
}

func (e *Emitter) emitStaticInitializer(n cst.Node) {
	e.WalkExtras(n, func(c cst.Node) {
		if c.Kind() == "block" {
			e.EmitStatement(c)
			return
		}
		e.Token(c)
		e.Space()
	})
}
